package contacts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWidget struct {
	value   string
	visible bool
	cleared int
}

func (w *fakeWidget) SetValue(v string) { w.value = v }
func (w *fakeWidget) Clear() { w.value = ""; w.cleared++ }
func (w *fakeWidget) SetVisible(v bool) { w.visible = v }

func bindAll(t *testing.T, b *Binder) map[Field]*fakeWidget {
	t.Helper()
	widgets := make(map[Field]*fakeWidget)
	for _, f := range b.Fields() {
		w := &fakeWidget{}
		require.NoError(t, b.Bind(f, w))
		widgets[f] = w
	}
	return widgets
}

func TestNewBinder_ConfigErrors(t *testing.T) {
	s := NewStore()

	_, err := NewBinder(s, FieldFirstName, Field("nickname"))
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, Field("nickname"), cfgErr.Field)
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = NewBinder(s, FieldCity, FieldCity)
	assert.ErrorIs(t, err, ErrDuplicateField)

	b, err := NewBinder(s, FieldCity)
	require.NoError(t, err)
	assert.ErrorIs(t, b.Bind(FieldZip, &fakeWidget{}), ErrNotBound)
	assert.ErrorIs(t, b.Bind(Field("x"), &fakeWidget{}), ErrUnknownField)
}

func TestSchemaBinder_FieldOrder(t *testing.T) {
	b := NewSchemaBinder(NewStore())
	assert.Equal(t, Fields(), b.Fields())
}

func TestBinder_RoundTrip(t *testing.T) {
	s := NewStore()
	id := s.Append(map[Field]string{FieldFirstName: "Nina", FieldLastName: "Verne"})
	b := NewSchemaBinder(s)
	widgets := bindAll(t, b)

	b.SetSource(id)
	assert.Equal(t, "Nina", widgets[FieldFirstName].value)
	assert.True(t, widgets[FieldCountry].visible)

	r, _ := s.Get(id)
	before := r.Map()

	require.True(t, b.Edit(FieldCity, "Lyon"))
	after := r.Map()
	assert.Equal(t, "Lyon", after[FieldCity])
	for f, v := range before {
		if f != FieldCity {
			assert.Equal(t, v, after[f], f)
		}
	}
}

func TestBinder_ClearedDiscardsWrites(t *testing.T) {
	s := NewStore()
	id := s.Append(map[Field]string{FieldFirstName: "Dan"})
	sel := NewSelection(s)
	b := NewSchemaBinder(s)
	widgets := bindAll(t, b)
	sel.Subscribe(b.SetSource)

	sel.Select(id)
	sel.Select("")

	for f, w := range widgets {
		assert.Empty(t, w.value, f)
		assert.False(t, w.visible, f)
	}
	_, ok := b.Source()
	assert.False(t, ok)
	assert.Nil(t, b.Values())

	var events int
	s.Subscribe(func(Event) { events++ })
	assert.False(t, b.Edit(FieldFirstName, "Changed"))

	r, _ := s.Get(id)
	assert.Equal(t, "Dan", r.Get(FieldFirstName))
	assert.Zero(t, events)
}

func TestBinder_SwitchSource(t *testing.T) {
	s := NewStore()
	a := s.Append(map[Field]string{FieldFirstName: "Alex", FieldCompany: "Acme"})
	c := s.Append(map[Field]string{FieldFirstName: "Lisa"})
	b := NewSchemaBinder(s)
	widgets := bindAll(t, b)

	b.SetSource(a)
	b.Edit(FieldStreet, "Main St")
	b.SetSource(c)

	assert.Equal(t, "Lisa", widgets[FieldFirstName].value)
	assert.Equal(t, "", widgets[FieldCompany].value)
	b.Edit(FieldStreet, "Side St")

	ra, _ := s.Get(a)
	rc, _ := s.Get(c)
	assert.Equal(t, "Main St", ra.Get(FieldStreet))
	assert.Equal(t, "Side St", rc.Get(FieldStreet))
}

func TestBinder_RemovedSourceIsNoop(t *testing.T) {
	s := NewStore()
	id := s.Append(nil)
	b := NewSchemaBinder(s)
	b.SetSource(id)
	s.Remove(id)

	assert.False(t, b.Edit(FieldCity, "Rome"))
	assert.Nil(t, b.Values())
}

func TestBinder_UnknownSourceClears(t *testing.T) {
	s := NewStore()
	b := NewSchemaBinder(s)
	widgets := bindAll(t, b)

	b.SetSource("missing")
	_, ok := b.Source()
	assert.False(t, ok)
	assert.Positive(t, widgets[FieldFirstName].cleared)
}

func TestBinder_LateBindSyncsWidget(t *testing.T) {
	s := NewStore()
	id := s.Append(map[Field]string{FieldState: "CA"})
	b, err := NewBinder(s, FieldState, FieldZip)
	require.NoError(t, err)
	b.SetSource(id)

	w := &fakeWidget{}
	require.NoError(t, b.Bind(FieldState, w))
	assert.Equal(t, "CA", w.value)
	assert.True(t, w.visible)

	assert.False(t, b.Edit(FieldCity, "LA"), "field not held by this binder")
	assert.Equal(t, []FieldValue{{FieldState, "CA"}, {FieldZip, ""}}, b.Values())
}
