package uid

import "testing"

func TestGenerateGameIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateGameID()
		if !IsGameID(id) {
			t.Fatalf("generated id %q does not parse", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
	if IsGameID("not-a-game") {
		t.Fatalf("garbage accepted as game id")
	}
}
