package contacts

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleIDs(s *Store) []ID {
	var ids []ID
	for _, e := range s.Visible() {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestStore_InsertAtFrontReversesOrder(t *testing.T) {
	s := NewStore()

	var inserted []ID
	for i := 0; i < 5; i++ {
		inserted = append(inserted, s.Insert(0, map[Field]string{FieldFirstName: fmt.Sprintf("n%d", i)}))
	}

	got := visibleIDs(s)
	require.Len(t, got, 5)
	for i := range inserted {
		assert.Equal(t, inserted[len(inserted)-1-i], got[i])
	}
}

func TestStore_InsertPositions(t *testing.T) {
	s := NewStore()
	a := s.Append(nil)
	b := s.Append(nil)
	c := s.Insert(1, nil)
	d := s.Insert(100, nil)
	e := s.Insert(-3, nil)

	assert.Equal(t, []ID{e, a, c, b, d}, visibleIDs(s))
	assert.Equal(t, 2, s.Index(c))
	assert.Equal(t, -1, s.Index("missing"))
	assert.Equal(t, 5, s.Len())
}

func TestStore_InsertPopulatesSchema(t *testing.T) {
	s := NewStore()
	id := s.Insert(0, map[Field]string{FieldCity: "Turku", Field("nickname"): "ignored"})

	r, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, r.ID())
	assert.Equal(t, "Turku", r.Get(FieldCity))
	assert.Len(t, r.Map(), len(Schema))
	_, extra := r.Map()[Field("nickname")]
	assert.False(t, extra)
	for _, fv := range r.Values() {
		if fv.Field != FieldCity {
			assert.Empty(t, fv.Value, fv.Field)
		}
	}
}

func TestStore_IdentitiesUnique(t *testing.T) {
	s := NewStore()
	seen := make(map[ID]bool)
	for i := 0; i < 200; i++ {
		id := s.Append(nil)
		require.NotEmpty(t, id)
		require.False(t, seen[id], "identity reused: %s", id)
		seen[id] = true
		if i%3 == 0 {
			s.Remove(id)
		}
	}
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	s := NewStore()
	id := s.Append(nil)
	other := s.Append(nil)

	assert.True(t, s.Remove(id))
	assert.False(t, s.Remove(id))
	assert.False(t, s.Remove(""))

	_, ok := s.Get(id)
	assert.False(t, ok)
	assert.Equal(t, []ID{other}, visibleIDs(s))
}

func TestStore_EventsInRegistrationOrder(t *testing.T) {
	s := NewStore()

	var calls []string
	s.Subscribe(func(e Event) { calls = append(calls, "first:"+string(e.Kind)) })
	unsubscribe := s.Subscribe(func(e Event) { calls = append(calls, "second:"+string(e.Kind)) })

	id := s.Insert(0, nil)
	s.SetFilter(NewSubstringFilter("x"))
	unsubscribe()
	s.SetField(id, FieldCity, "Oslo")
	s.Remove(id)
	s.Remove(id)

	assert.Equal(t, []string{
		"first:inserted", "second:inserted",
		"first:filter", "second:filter",
		"first:field",
		"first:removed",
	}, calls)
}

func TestStore_EventsSeeCompletedMutation(t *testing.T) {
	s := NewStore()

	var lenAtNotify int
	s.Subscribe(func(e Event) { lenAtNotify = s.Len() })

	s.Append(nil)
	assert.Equal(t, 1, lenAtNotify)
}

func TestStore_SetFieldRefilterFlag(t *testing.T) {
	s := NewStore()
	id := s.Append(nil)

	var last Event
	s.Subscribe(func(e Event) { last = e })

	require.True(t, s.SetField(id, FieldZip, "00100"))
	assert.False(t, last.Refilter, "no filter installed")

	s.SetFilter(NewSubstringFilter("a"))
	require.True(t, s.SetField(id, FieldZip, "00200"))
	assert.True(t, last.Refilter, "substring filter applies to every field")
	assert.Equal(t, FieldZip, last.Field)
	assert.Equal(t, "00200", last.Value)

	assert.False(t, s.SetField(id, Field("nope"), "x"))
	assert.False(t, s.SetField("missing", FieldZip, "x"))
}

func TestStore_FilterLiveness(t *testing.T) {
	s := NewStore()
	id := s.Append(map[Field]string{FieldFirstName: "Rita", FieldLastName: "Ross"})
	s.SetFilter(NewSubstringFilter("gates"))
	assert.Empty(t, s.Visible())

	s.SetField(id, FieldLastName, "Gates")
	assert.Equal(t, []ID{id}, visibleIDs(s))

	r, _ := s.Get(id)
	r.Set(FieldLastName, "Tate")
	assert.Empty(t, s.Visible(), "direct writes are visible on the next read")
}

func TestStore_FilterFunc(t *testing.T) {
	s := NewStore()
	s.Append(map[Field]string{FieldCity: "Oslo"})
	b := s.Append(map[Field]string{FieldCity: "Bergen"})

	s.SetFilter(FilterFunc(func(r *Record) bool { return r.Get(FieldCity) == "Bergen" }))
	assert.Equal(t, []ID{b}, visibleIDs(s))
	assert.NotNil(t, s.Filter())

	s.ClearFilter()
	assert.Nil(t, s.Filter())
	assert.Len(t, s.Visible(), 2)
}

func TestStore_NilSubstringFilterMatchesAll(t *testing.T) {
	s := NewStore()
	a := s.Append(map[Field]string{FieldFirstName: "Rita"})
	b := s.Append(map[Field]string{FieldFirstName: "Bill"})

	var events []Event
	s.Subscribe(func(e Event) { events = append(events, e) })

	var nf *SubstringFilter
	s.SetFilter(nf)
	assert.Equal(t, []ID{a, b}, visibleIDs(s))
	assert.Equal(t, "", nf.Query())

	s.SetField(a, FieldLastName, "Ross")
	require.Len(t, events, 2)
	assert.Equal(t, EventFilter, events[0].Kind)
	assert.True(t, events[1].Refilter)
}

func TestStore_VisibleIsFreshEachCall(t *testing.T) {
	s := NewStore()
	s.Append(nil)
	first := s.Visible()
	s.Append(nil)

	assert.Len(t, first, 1)
	assert.Len(t, s.Visible(), 2)
}

func TestStore_EndToEndScenario(t *testing.T) {
	s := NewStore()
	NewSeeder(nil, nil).Seed(s, 20, rand.New(rand.NewSource(7)))
	for _, e := range s.Visible() {
		// keep the scenario unambiguous
		if e.Record.Get(FieldLastName) == "Smith" {
			s.SetField(e.ID, FieldLastName, "Gordon")
		}
	}
	peter := s.Insert(0, map[Field]string{FieldFirstName: "Peter", FieldLastName: "Smith"})
	total := s.Len()

	s.SetFilter(NewSubstringFilter("smith"))
	assert.Equal(t, []ID{peter}, visibleIDs(s))

	s.SetFilter(NewSubstringFilter("zzz"))
	assert.Empty(t, s.Visible())

	s.ClearFilter()
	assert.Len(t, s.Visible(), total)
}
