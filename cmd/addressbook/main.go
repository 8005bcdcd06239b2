package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/studiowebux/addressbook/internal/cli"
	"github.com/studiowebux/addressbook/internal/config"
	"github.com/studiowebux/addressbook/internal/history"
	"github.com/studiowebux/addressbook/internal/keybinds"
	"github.com/studiowebux/addressbook/internal/logging"
	"github.com/studiowebux/addressbook/internal/session"
	"github.com/studiowebux/addressbook/internal/tui"
	"github.com/studiowebux/addressbook/internal/web"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "addressbook",
	Short: "Address book with a terminal and a browser UI",
	Long: `Address book keeps a list of generated contacts you can search,
add, remove and edit.

Run without arguments to start the terminal UI, or use 'serve' to open the
same address book in a browser. Every session starts from freshly generated
contacts; nothing is persisted besides the activity history.

Examples:
  addressbook                          # Start the terminal UI
  addressbook serve --port 9000        # Serve the browser UI
  addressbook list --search smith      # Print matching contacts
  addressbook list -o json -q '[].lastName'
  addressbook history --limit 20       # Show recent activity`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := initialize()
		if err != nil {
			return err
		}
		return runTUI(settings)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the address book to browsers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := initialize()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("host") {
			settings.Server.Host = flagHost
		}
		if cmd.Flags().Changed("port") {
			settings.Server.Port = flagPort
		}
		return runServe(settings)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print generated contacts",
	Long: `Seed a session the way the UIs do and print its contacts.

--search uses the same substring match as the UIs (first name, last name and
company). --fuzzy ranks by display name instead. --filter and --query are
JMESPath expressions applied to the JSON listing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := initialize()
		if err != nil {
			return err
		}
		applySeedFlags(cmd, &settings)
		return cli.List(cli.ListOptions{
			Seed:   settings.Seed,
			Search: flagSearch,
			Fuzzy:  flagFuzzy,
			Output: flagOutput,
			Filter: flagFilter,
			Query:  flagQuery,
			Color:  flagColor,
			Logger: quietLogger(),
		})
	},
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a contact interactively and print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := initialize()
		if err != nil {
			return err
		}
		applySeedFlags(cmd, &settings)

		records, err := cli.Records(settings.Seed, flagSearch, flagFuzzy, quietLogger())
		if err != nil {
			return err
		}
		record, err := cli.Pick(records)
		if errors.Is(err, cli.ErrPickCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(record.Card())
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the activity history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := initialize(); err != nil {
			return err
		}

		mgr, err := history.NewManager(config.DatabasePath)
		if err != nil {
			return err
		}
		defer mgr.Close()

		return cli.History(mgr, cli.HistoryOptions{
			Limit:  flagLimit,
			Clear:  flagClear,
			Output: flagOutput,
			Query:  flagQuery,
			Color:  flagColor,
		})
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Check or create the terminal UI keybindings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := initialize(); err != nil {
			return err
		}

		if flagInit {
			if _, err := os.Stat(config.KeybindsFile); err == nil {
				return fmt.Errorf("%s already exists", config.KeybindsFile)
			}
			if err := keybinds.CreateExampleConfig(config.KeybindsFile); err != nil {
				return err
			}
			fmt.Printf("Wrote default keybindings to %s\n", config.KeybindsFile)
			return nil
		}

		if _, err := os.Stat(config.KeybindsFile); os.IsNotExist(err) {
			fmt.Printf("No keybindings file at %s, using defaults\n", config.KeybindsFile)
			return nil
		}
		cfg, err := keybinds.LoadConfig(config.KeybindsFile)
		if err != nil {
			return err
		}
		result := keybinds.NewValidator().ValidateConfig(cfg)
		fmt.Println(result.String())
		if result.HasErrors() {
			return fmt.Errorf("invalid keybindings in %s", config.KeybindsFile)
		}
		return nil
	},
}

// Flags for serve
var (
	flagHost string
	flagPort int
)

// Flags for list, pick and history
var (
	flagCount  int
	flagSeed   int64
	flagSearch string
	flagFuzzy  string
	flagOutput string
	flagFilter string
	flagQuery  string
	flagColor  string
	flagLimit  int
	flagClear  bool
	flagInit   bool
)

func init() {
	serveCmd.Flags().StringVar(&flagHost, "host", "localhost", "Host to listen on")
	serveCmd.Flags().IntVar(&flagPort, "port", 8080, "Port to listen on")

	for _, cmd := range []*cobra.Command{listCmd, pickCmd} {
		cmd.Flags().IntVarP(&flagCount, "count", "n", 0, "Number of generated contacts (default from settings)")
		cmd.Flags().Int64Var(&flagSeed, "seed", 0, "Fixed random seed for reproducible contacts")
		cmd.Flags().StringVarP(&flagSearch, "search", "s", "", "Substring search")
		cmd.Flags().StringVar(&flagFuzzy, "fuzzy", "", "Fuzzy match on the display name, best first")
	}

	listCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (json/yaml/text)")
	listCmd.Flags().StringVarP(&flagFilter, "filter", "f", "", "JMESPath filter expression")
	listCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath query expression")
	listCmd.Flags().StringVar(&flagColor, "color", cli.ColorAuto, "Highlight json/yaml output (auto/always/never)")

	historyCmd.Flags().IntVarP(&flagLimit, "limit", "l", 50, "Maximum number of entries, 0 for all")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all history")
	historyCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (json/yaml/text)")
	historyCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath query expression")
	historyCmd.Flags().StringVar(&flagColor, "color", cli.ColorAuto, "Highlight json/yaml output (auto/always/never)")

	keybindsCmd.Flags().BoolVar(&flagInit, "init", false, "Write the default keybindings file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(keybindsCmd)
}

// initialize prepares ~/.addressbook and loads the settings
func initialize() (config.Settings, error) {
	if err := config.Initialize(); err != nil {
		return config.Settings{}, fmt.Errorf("failed to initialize config: %w", err)
	}

	settings, err := config.Load()
	if err != nil {
		return settings, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func applySeedFlags(cmd *cobra.Command, settings *config.Settings) {
	if cmd.Flags().Changed("count") {
		settings.Seed.Count = flagCount
	}
	if cmd.Flags().Changed("seed") {
		settings.Seed.Random = flagSeed
	}
}

// quietLogger keeps one-shot commands' stderr clean
func quietLogger() *logrus.Logger {
	logger, _ := logging.New("warn", os.Stderr)
	return logger
}

// openJournal returns the history manager, or nil when history is off
func openJournal(settings config.Settings, logger *logrus.Logger) *history.Manager {
	if !settings.History.Enabled {
		return nil
	}
	mgr, err := history.NewManager(config.DatabasePath)
	if err != nil {
		logger.WithError(err).Warn("history disabled")
		return nil
	}
	return mgr
}

// runTUI starts the interactive terminal UI, logging to a file
func runTUI(settings config.Settings) error {
	logger, logFile, err := logging.NewFile(settings.Log.Level, config.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}
	if result := keybinds.NewValidator().ValidateRegistry(registry); result.HasErrors() || result.HasWarnings() {
		logger.Warn(result.String())
	}

	opts := tui.Options{
		Settings: settings,
		Keybinds: registry,
		Logger:   logger,
	}
	if journal := openJournal(settings, logger); journal != nil {
		defer journal.Close()
		opts.Journal = journal
	}

	return tui.Run(opts)
}

// runServe serves the browser UI until interrupted
func runServe(settings config.Settings) error {
	logger, err := logging.New(settings.Log.Level, os.Stderr)
	if err != nil {
		return err
	}

	var journal session.Journal
	if mgr := openJournal(settings, logger); mgr != nil {
		defer mgr.Close()
		journal = mgr
	}

	manager := session.NewManager(time.Duration(settings.Server.SessionTimeout), func(id string) *session.Session {
		return session.New(session.Options{
			ID:      id,
			Seed:    settings.Seed,
			Journal: journal,
			Logger:  logger,
		})
	})

	server := web.NewServer(settings.Server, manager, logger)
	if err := server.Start(); err != nil {
		return err
	}
	fmt.Printf("Address book available at %s (Ctrl+C to stop)\n", server.GetAddress())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	return server.Stop()
}
