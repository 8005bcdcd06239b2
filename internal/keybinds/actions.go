package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal  Context = "global"  // Available everywhere
	ContextNormal  Context = "normal"  // Contact list focused
	ContextSearch  Context = "search"  // Search input focused
	ContextEditor  Context = "editor"  // Contact editor focused
	ContextConfirm Context = "confirm" // Confirmation dialogs
	ContextHelp    Context = "help"    // Help viewer
)

// Contexts lists every known context
var Contexts = []Context{
	ContextGlobal,
	ContextNormal,
	ContextSearch,
	ContextEditor,
	ContextConfirm,
	ContextHelp,
}

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Navigation actions
	ActionNavigateUp     Action = "navigate_up"       // Move up one contact
	ActionNavigateDown   Action = "navigate_down"     // Move down one contact
	ActionPageUp         Action = "page_up"           // Move up one page
	ActionPageDown       Action = "page_down"         // Move down one page
	ActionGoToTop        Action = "go_to_top"         // Go to first contact
	ActionGoToBottom     Action = "go_to_bottom"      // Go to last contact
	ActionGoToTopPrepare Action = "go_to_top_prepare" // First 'g' in 'gg' sequence

	// Contact actions (Normal mode)
	ActionOpenSearch    Action = "open_search"    // Focus the search field
	ActionClearSearch   Action = "clear_search"   // Remove the filter
	ActionAddContact    Action = "add_contact"    // Insert and select a new contact
	ActionDeleteContact Action = "delete_contact" // Delete selected contact (with confirm)
	ActionEditContact   Action = "edit_contact"   // Focus the editor
	ActionCopyContact   Action = "copy_contact"   // Copy selected contact to clipboard
	ActionDeselect      Action = "deselect"       // Clear the selection
	ActionOpenHelp      Action = "open_help"      // Open help viewer

	// Editor actions
	ActionNextField Action = "next_field" // Focus next editor field
	ActionPrevField Action = "prev_field" // Focus previous editor field

	// Text input actions
	ActionTextSubmit Action = "text_submit" // Submit text input
	ActionTextCancel Action = "text_cancel" // Leave text input

	// Modal actions
	ActionCloseModal Action = "close_modal" // Close current modal
	ActionConfirm    Action = "confirm"     // Confirm action (y/Y)
	ActionCancel     Action = "cancel"      // Cancel action (n/N)

	ActionNoOp Action = "noop" // No operation (ignore key)
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:           {ActionQuit, "Quit application", "Global"},
	ActionQuitForce:      {ActionQuitForce, "Force quit", "Global"},
	ActionNavigateUp:     {ActionNavigateUp, "Move up", "Navigation"},
	ActionNavigateDown:   {ActionNavigateDown, "Move down", "Navigation"},
	ActionPageUp:         {ActionPageUp, "Page up", "Navigation"},
	ActionPageDown:       {ActionPageDown, "Page down", "Navigation"},
	ActionGoToTop:        {ActionGoToTop, "Go to top", "Navigation"},
	ActionGoToBottom:     {ActionGoToBottom, "Go to bottom", "Navigation"},
	ActionGoToTopPrepare: {ActionGoToTopPrepare, "Start go to top sequence", "Navigation"},
	ActionOpenSearch:     {ActionOpenSearch, "Search contacts", "Contacts"},
	ActionClearSearch:    {ActionClearSearch, "Clear search", "Contacts"},
	ActionAddContact:     {ActionAddContact, "Add contact", "Contacts"},
	ActionDeleteContact:  {ActionDeleteContact, "Delete contact", "Contacts"},
	ActionEditContact:    {ActionEditContact, "Edit contact", "Contacts"},
	ActionCopyContact:    {ActionCopyContact, "Copy contact", "Contacts"},
	ActionDeselect:       {ActionDeselect, "Deselect contact", "Contacts"},
	ActionOpenHelp:       {ActionOpenHelp, "Open help", "Information"},
	ActionNextField:      {ActionNextField, "Next field", "Editor"},
	ActionPrevField:      {ActionPrevField, "Previous field", "Editor"},
	ActionTextSubmit:     {ActionTextSubmit, "Submit", "Input"},
	ActionTextCancel:     {ActionTextCancel, "Leave input", "Input"},
	ActionCloseModal:     {ActionCloseModal, "Close", "Modal"},
	ActionConfirm:        {ActionConfirm, "Confirm", "Modal"},
	ActionCancel:         {ActionCancel, "Cancel", "Modal"},
	ActionNoOp:           {ActionNoOp, "Ignore key", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is one the application handles
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

// IsKnownContext reports whether context is one the application uses
func IsKnownContext(context Context) bool {
	for _, c := range Contexts {
		if c == context {
			return true
		}
	}
	return false
}

// IsGlobalAction returns true if the action is available in all contexts
func IsGlobalAction(action Action) bool {
	return action == ActionQuitForce
}
