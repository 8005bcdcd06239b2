package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNormalModeBindings(r)
	registerSearchBindings(r)
	registerEditorBindings(r)
	registerConfirmBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerNormalModeBindings sets up keybindings for the contact list
func registerNormalModeBindings(r *Registry) {
	r.Register(ContextNormal, "q", ActionQuit)

	// Navigation
	r.RegisterMultiple(ContextNormal, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextNormal, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextNormal, []string{"pgup", "ctrl+u"}, ActionPageUp)
	r.RegisterMultiple(ContextNormal, []string{"pgdown", "ctrl+d"}, ActionPageDown)
	r.RegisterMultiple(ContextNormal, []string{"home", "gg"}, ActionGoToTop)
	r.RegisterMultiple(ContextNormal, []string{"end", "G"}, ActionGoToBottom)

	// Contacts
	r.Register(ContextNormal, "/", ActionOpenSearch)
	r.Register(ContextNormal, "ctrl+l", ActionClearSearch)
	r.RegisterMultiple(ContextNormal, []string{"a", "n"}, ActionAddContact)
	r.Register(ContextNormal, "D", ActionDeleteContact)
	r.RegisterMultiple(ContextNormal, []string{"enter", "e", "tab"}, ActionEditContact)
	r.Register(ContextNormal, "c", ActionCopyContact)
	r.Register(ContextNormal, "esc", ActionDeselect)
	r.Register(ContextNormal, "?", ActionOpenHelp)
}

// registerSearchBindings sets up keybindings for the search field.
// Unbound keys are typed into the input.
func registerSearchBindings(r *Registry) {
	r.RegisterMultiple(ContextSearch, []string{"enter", "down", "tab"}, ActionTextSubmit)
	r.Register(ContextSearch, "esc", ActionTextCancel)
	r.Register(ContextSearch, "ctrl+l", ActionClearSearch)
}

// registerEditorBindings sets up keybindings for the contact editor.
// Unbound keys are typed into the focused field.
func registerEditorBindings(r *Registry) {
	r.RegisterMultiple(ContextEditor, []string{"tab", "down", "enter"}, ActionNextField)
	r.RegisterMultiple(ContextEditor, []string{"shift+tab", "up"}, ActionPrevField)
	r.Register(ContextEditor, "esc", ActionTextCancel)
}

// registerConfirmBindings sets up keybindings for confirmation dialogs
func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y", "enter"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc", "q"}, ActionCancel)
}

// registerHelpBindings sets up keybindings for the help viewer
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "?", "q"}, ActionCloseModal)
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
}
