/*
Package contacts implements the address book core: an ordered, observable,
in-memory record store with a live filter, a single-record selection and a
field binder that connects editor widgets to the selected record.

# Overview

Nothing in this package renders anything or performs I/O. UI layers (the
terminal UI in internal/tui and the browser UI in internal/web) drive it
through a small set of operations and redraw when notified.

# Components

Schema (schema.go):
  - Fixed, ordered list of field descriptors (key + static label)
  - Every record carries exactly these fields

Record (record.go):
  - Store-assigned identity plus one text value per schema field
  - Values default to the empty string

Store (store.go):
  - Ordered records, insertion at any position
  - Removal by identity, tolerant of repeated calls
  - One active Filter, re-evaluated on every read
  - Synchronous observers, called in registration order

SubstringFilter (filter.go):
  - Case-insensitive match against first name + last name + company
  - Reports that it applies to every field

Selection (selection.go):
  - NoSelection or Selected(id)
  - Notifies subscribers on every transition

Binder (binder.go):
  - One binding per field, each attached to a Widget
  - Unbuffered write-through to the bound record
  - Cleared and hidden when there is no source

Seeder (seed.go):
  - Generates records from two name lists

# Caller Contract

The store does not watch the selection. A caller removing the selected
record must also call Selection.Select("") so the binder drops its source:

	store.Remove(id)
	selection.Select("")

# Concurrency

Nothing here is safe for concurrent use. A session owns one Store and runs
one turn at a time; see internal/session.
*/
package contacts
