package gamemode

import "testing"

func TestAllCopySemantics(t *testing.T) {
	got := All()
	if len(got) != 2 {
		t.Fatalf("unexpected mode count: %d", len(got))
	}
	if got[0] != (Mode{ID: DreamLeague, Name: "Dream League"}) {
		t.Fatalf("unexpected first mode: %+v", got[0])
	}
	if got[1] != (Mode{ID: ChampionsLeague, Name: "Champions League"}) {
		t.Fatalf("unexpected second mode: %+v", got[1])
	}

	got[0].Name = "mutated"
	if m, _ := ByID(DreamLeague); m.Name != "Dream League" {
		t.Fatalf("mode copy leaked mutation: %s", m.Name)
	}
}

func TestByID(t *testing.T) {
	tests := []struct {
		name     string
		id       ID
		wantMode Mode
		wantOK   bool
	}{
		{name: "dream league", id: 6, wantMode: Mode{ID: DreamLeague, Name: "Dream League"}, wantOK: true},
		{name: "champions league", id: 8, wantMode: Mode{ID: ChampionsLeague, Name: "Champions League"}, wantOK: true},
		{name: "unknown mode", id: 7},
		{name: "zero mode", id: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := ByID(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("ByID(%d) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if m != tt.wantMode {
				t.Fatalf("ByID(%d) = %+v, want %+v", tt.id, m, tt.wantMode)
			}
			if Valid(tt.id) != tt.wantOK {
				t.Fatalf("Valid(%d) = %v, want %v", tt.id, Valid(tt.id), tt.wantOK)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	if Default != DreamLeague {
		t.Fatalf("default mode = %d, want %d", Default, DreamLeague)
	}
}
