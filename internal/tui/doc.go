/*
Package tui implements the terminal user interface for the address book.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: owns one session.Session plus the widgets that show it
  - Update: turns key presses into session operations
  - View: renders the contact list, the editor and the status bar

# Key Components

  - model.go: Model, modes and the session change subscription
  - keys.go: keyboard input handling and keybind routing
  - actions.go: add, delete, edit, copy and search operations
  - editor.go: one bubbles textinput per contact field, bound through
    contacts.Binder
  - contact_list_state.go: visible rows, cursor and scroll offset
  - render.go / modals.go: lipgloss rendering

# Data Flow

The list, the selection and the editor never talk to each other directly.
Every operation goes through the session; the session's change stream then
refreshes the rows (inserted, removed, filter, and field edits that may
change filter membership) and moves the cursor onto the selected contact.
The editor inputs are contacts.Widget implementations, so the binder fills
and hides them when the selection changes, and each keystroke in an input
is written to the record with Session.Edit.

Moving the cursor selects the contact under it. ESC in the list clears the
selection and hides the editor.

# Keybind System

Keys are resolved through keybinds.Registry, using the context of the
current mode (normal, search, editor, confirm, help). In search and editor
modes, keys without a binding are typed into the focused input.
*/
package tui
