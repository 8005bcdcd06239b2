package keybinds

import "testing"

func TestRegistry_Match(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		name     string
		context  Context
		key      string
		expected Action
		found    bool
	}{
		{"normal quit", ContextNormal, "q", ActionQuit, true},
		{"normal add", ContextNormal, "a", ActionAddContact, true},
		{"normal delete", ContextNormal, "D", ActionDeleteContact, true},
		{"global fallback", ContextEditor, "ctrl+c", ActionQuitForce, true},
		{"editor next field", ContextEditor, "tab", ActionNextField, true},
		{"editor prev field", ContextEditor, "shift+tab", ActionPrevField, true},
		{"search letters are typed", ContextSearch, "q", "", false},
		{"confirm yes", ContextConfirm, "y", ActionConfirm, true},
		{"help close", ContextHelp, "?", ActionCloseModal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := r.Match(tt.context, tt.key)
			if ok != tt.found {
				t.Fatalf("Expected found=%v, got %v", tt.found, ok)
			}
			if action != tt.expected {
				t.Errorf("Expected action %s, got %s", tt.expected, action)
			}
		})
	}
}

func TestRegistry_MatchMultiKey(t *testing.T) {
	r := NewDefaultRegistry()

	action, complete, partial := r.MatchMultiKey(ContextNormal, "g")
	if complete || !partial {
		t.Fatalf("Expected partial match for 'g', got complete=%v partial=%v", complete, partial)
	}

	action, complete, partial = r.MatchMultiKey(ContextNormal, "g")
	if !complete || partial {
		t.Fatalf("Expected complete match for 'gg', got complete=%v partial=%v", complete, partial)
	}
	if action != ActionGoToTop {
		t.Errorf("Expected %s, got %s", ActionGoToTop, action)
	}

	// broken sequence
	r.MatchMultiKey(ContextNormal, "g")
	action, complete, _ = r.MatchMultiKey(ContextNormal, "x")
	if complete || action != "" {
		t.Errorf("Expected no match for 'gx', got %s", action)
	}

	// no sequence bound in help, so 'g' is a plain key
	_, _, partial = r.MatchMultiKey(ContextHelp, "g")
	if partial {
		t.Error("Did not expect a partial match in help context")
	}

	action, complete, _ = r.MatchMultiKey(ContextNormal, "G")
	if !complete || action != ActionGoToBottom {
		t.Errorf("Expected G to go to bottom, got %s", action)
	}
}

func TestRegistry_ClearMultiKeyState(t *testing.T) {
	r := NewDefaultRegistry()
	r.MatchMultiKey(ContextNormal, "g")
	r.ClearMultiKeyState(ContextNormal)

	action, complete, _ := r.MatchMultiKey(ContextNormal, "q")
	if !complete || action != ActionQuit {
		t.Errorf("Expected quit after clearing state, got %s", action)
	}
}

func TestRegistry_Unbind(t *testing.T) {
	r := NewDefaultRegistry()
	r.Unbind(ContextNormal, ActionAddContact)

	if r.HasBinding(ContextNormal, "a") || r.HasBinding(ContextNormal, "n") {
		t.Error("Expected add_contact keys to be removed")
	}
	if got := r.GetBindingString(ContextNormal, ActionAddContact); got != "unbound" {
		t.Errorf("Expected 'unbound', got %q", got)
	}
}

func TestRegistry_GetBindingString(t *testing.T) {
	r := NewDefaultRegistry()

	if got := r.GetBindingString(ContextNormal, ActionNavigateUp); got != "k, up" {
		t.Errorf("Expected 'k, up', got %q", got)
	}
	if got := r.GetBindingString(ContextNormal, ActionQuitForce); got != "ctrl+c" {
		t.Errorf("Expected global fallback 'ctrl+c', got %q", got)
	}
}

func TestRegistry_CloneAndMerge(t *testing.T) {
	base := NewDefaultRegistry()
	clone := base.Clone()
	clone.Register(ContextNormal, "x", ActionDeleteContact)

	if base.HasBinding(ContextNormal, "x") {
		t.Error("Clone should not share bindings with the original")
	}

	base.Merge(clone)
	if action, _ := base.Match(ContextNormal, "x"); action != ActionDeleteContact {
		t.Errorf("Expected merged binding, got %s", action)
	}
}
