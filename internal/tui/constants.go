package tui

import "time"

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Modal Dimensions - Standard margins for modal dialogs
	ModalWidthMarginNarrow = 10 // Narrow horizontal margin for focused modals (m.width - 10)
	ModalHeightMarginMed   = 4  // Medium vertical margin (m.height - 4)

	// Content Area Offsets
	ContentOffsetHelp   = 10 // m.height - 10 for help viewer
	ContentOffsetList   = 8  // m.height - 8 for contact rows (title, search, header, borders, status)
	HelpViewWidthOffset = 14 // m.width - 14 for help viewport width

	// Panes
	ListWidthRatio   = 0.55 // Share of the width given to the contact list
	MinListWidth     = 40
	EditorLabelWidth = 12

	// Editor inputs
	EditorCharLimit  = 256
	EditorInputWidth = 30

	// Contact list columns
	ColumnFirstNameWidth = 14
	ColumnLastNameWidth  = 14

	// StatusMessageTimeout is how long a status or error message stays in the footer
	StatusMessageTimeout = 4 * time.Second

	// StatusMaxLength truncates long footer messages
	StatusMaxLength = 100
)
