package contacts

// observers keeps subscribers in registration order
type observers[T any] struct {
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// add registers fn and returns a function that removes it again
func (o *observers[T]) add(fn func(T)) func() {
	id := o.nextID
	o.nextID++
	o.subs = append(o.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

// notify calls every subscriber registered at the time of the call
func (o *observers[T]) notify(v T) {
	subs := make([]subscriber[T], len(o.subs))
	copy(subs, o.subs)
	for _, s := range subs {
		s.fn(v)
	}
}
