package contacts

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Seed(t *testing.T) {
	s := NewStore()
	ids := NewSeeder(nil, nil).Seed(s, 300, rand.New(rand.NewSource(42)))
	require.Len(t, ids, 300)
	assert.Equal(t, 300, s.Len())

	firsts := make(map[string]bool)
	for _, n := range DefaultFirstNames {
		firsts[n] = true
	}
	lasts := make(map[string]bool)
	for _, n := range DefaultLastNames {
		lasts[n] = true
	}

	seenFirst := make(map[string]bool)
	for i, e := range s.Visible() {
		assert.Equal(t, ids[i], e.ID, "seeding appends")
		assert.True(t, firsts[e.Record.Get(FieldFirstName)])
		assert.True(t, lasts[e.Record.Get(FieldLastName)])
		assert.Empty(t, e.Record.Get(FieldCompany))
		seenFirst[e.Record.Get(FieldFirstName)] = true
	}
	assert.Len(t, seenFirst, len(DefaultFirstNames), "300 draws cover the pool")
}

func TestSeeder_Deterministic(t *testing.T) {
	names := func(seed int64) []string {
		s := NewStore()
		NewSeeder([]string{"A", "B", "C"}, []string{"X", "Y"}).Seed(s, 10, rand.New(rand.NewSource(seed)))
		var out []string
		for _, e := range s.Visible() {
			out = append(out, e.Record.DisplayName())
		}
		return out
	}
	assert.Equal(t, names(1), names(1))
}

func TestSeeder_EmptyPools(t *testing.T) {
	s := NewStore()
	Seeder{}.Seed(s, 2, rand.New(rand.NewSource(1)))
	for _, e := range s.Visible() {
		assert.Empty(t, e.Record.DisplayName())
	}
}
