package filter

import (
	"strings"
	"testing"
)

const listing = `[
  {"id": "a", "firstName": "Peter", "lastName": "Smith", "city": "Oslo"},
  {"id": "b", "firstName": "Alice", "lastName": "Gordon", "city": "Turku"},
  {"id": "c", "firstName": "Nina", "lastName": "Verne", "city": "Oslo"}
]`

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		filter  string
		query   string
		want    string
		wantErr bool
	}{
		{"passthrough", "", "", listing, false},
		{"query only", "", "[].lastName", `[
  "Smith",
  "Gordon",
  "Verne"
]`, false},
		{"filter then query", "[?city=='Oslo']", "[].firstName", `[
  "Peter",
  "Nina"
]`, false},
		{"null result", "", "[0].missing", "null", false},
		{"invalid expression", "", "[?", "", true},
		{"invalid filter", "[?", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(listing, tt.filter, tt.query)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if strings.TrimSpace(got) != strings.TrimSpace(tt.want) {
				t.Errorf("Apply() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestApply_InvalidJSON(t *testing.T) {
	if _, err := Apply("not json", "", "a"); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestIsValidJMESPath(t *testing.T) {
	if !IsValidJMESPath("[].id") {
		t.Error("Expected [].id to be valid")
	}
	if IsValidJMESPath("[?") {
		t.Error("Expected [? to be invalid")
	}
}

func TestValue(t *testing.T) {
	type contact struct {
		LastName string `json:"lastName"`
		City     string `json:"city"`
	}
	contacts := []contact{{"Smith", "Oslo"}, {"Gordon", "Turku"}}

	got, err := Value(contacts, "[?city=='Turku']", "[0].lastName")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "Gordon" {
		t.Errorf("Expected Gordon, got %v", got)
	}

	if _, err := Value(contacts, "", "[?"); err == nil {
		t.Error("Expected error for invalid query")
	}
}
