/*
Package keybinds provides customizable keyboard binding management for the
terminal address book.

# Overview

Keys map to actions within a context. The TUI asks the registry which
action a key press means in the mode it is currently in, then handles the
action. Users can override any default through a keybinds.json file in the
configuration directory.

# Contexts

  - global: bindings available everywhere (ctrl+c)
  - normal: the contact list has focus
  - search: the search field has focus; unbound keys are typed
  - editor: an editor field has focus; unbound keys are typed
  - confirm: the delete confirmation is open
  - help: the help viewer is open

A key bound in a specific context shadows the same key in global.

# Configuration File Format

Each section maps an action to a comma separated list of keys. A configured
action replaces all of its default keys in that context:

	{
	  "version": "1.0",
	  "normal": {
	    "add_contact": "a,ctrl+n",
	    "delete_contact": "x"
	  },
	  "editor": {
	    "next_field": "tab,enter"
	  }
	}

Unknown action names are rejected when the file is applied.

# Multi-Key Sequences

Bindings made of one key repeated ("gg") are sequences. When the first key
of a sequence arrives, MatchMultiKey reports a partial match and waits for
the next key.

# Validation

The validator reports keys claimed by two actions of one section, invalid
keys, unknown actions and contexts, rebound reserved keys (ctrl+c) and
context bindings that shadow global ones.

# Example Usage

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	action, ok, partial := registry.MatchMultiKey(keybinds.ContextNormal, msg.String())

# Thread Safety

The Registry is not synchronized. Build it before the program starts and
only read it afterwards.
*/
package keybinds
