package contacts

import "math/rand"

var (
	// DefaultFirstNames is the built-in first name pool for seed data
	DefaultFirstNames = []string{
		"Peter", "Alice", "Joshua", "Mike", "Olivia", "Nina", "Alex",
		"Rita", "Dan", "Umberto", "Henrik", "Rene", "Lisa", "Marge",
	}

	// DefaultLastNames is the built-in last name pool for seed data
	DefaultLastNames = []string{
		"Smith", "Gordon", "Simpson", "Brown", "Clavel", "Simons", "Verne",
		"Scott", "Allison", "Gates", "Rowling", "Barks", "Ross", "Schneider",
		"Tate",
	}
)

// DefaultSeedCount is the number of generated records at startup
const DefaultSeedCount = 1000

// Seeder generates dummy records by combining random first and last names
type Seeder struct {
	FirstNames []string
	LastNames  []string
}

// NewSeeder falls back to the default pools for empty lists
func NewSeeder(firstNames, lastNames []string) Seeder {
	if len(firstNames) == 0 {
		firstNames = DefaultFirstNames
	}
	if len(lastNames) == 0 {
		lastNames = DefaultLastNames
	}
	return Seeder{FirstNames: firstNames, LastNames: lastNames}
}

// Seed appends n records to store. Each name is picked independently and
// uniformly from its pool; all other fields stay empty.
func (s Seeder) Seed(store *Store, n int, rng *rand.Rand) []ID {
	ids := make([]ID, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, store.Append(map[Field]string{
			FieldFirstName: pick(s.FirstNames, rng),
			FieldLastName:  pick(s.LastNames, rng),
		}))
	}
	return ids
}

func pick(pool []string, rng *rand.Rand) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.Intn(len(pool))]
}
