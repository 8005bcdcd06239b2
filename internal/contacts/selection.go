package contacts

// Selection tracks at most one selected record
type Selection struct {
	store     *Store
	selected  ID
	observers observers[ID]
}

// NewSelection creates a selection over store, initially empty
func NewSelection(store *Store) *Selection {
	return &Selection{store: store}
}

// Select moves to Selected(id) when id is in the store, or to NoSelection when
// id is empty. Unknown ids leave the selection untouched and return false.
func (s *Selection) Select(id ID) bool {
	if id != "" {
		if _, ok := s.store.Get(id); !ok {
			return false
		}
	}

	s.selected = id
	s.observers.notify(id)
	return true
}

// Selected returns the selected identity and whether there is one
func (s *Selection) Selected() (ID, bool) {
	return s.selected, s.selected != ""
}

// Subscribe registers fn for selection changes. fn receives "" on deselect.
func (s *Selection) Subscribe(fn func(ID)) (unsubscribe func()) {
	return s.observers.add(fn)
}
