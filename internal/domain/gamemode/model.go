package gamemode

// ID selects an upstream game variant. The upstream API carries it in the
// seasonId query parameter.
type ID int64

const (
	DreamLeague     ID = 6
	ChampionsLeague ID = 8
)

// Default applies when a request does not pick a mode.
const Default = DreamLeague

// Mode pairs a game-mode id with its display name.
type Mode struct {
	ID   ID
	Name string
}

var modes = []Mode{
	{ID: DreamLeague, Name: "Dream League"},
	{ID: ChampionsLeague, Name: "Champions League"},
}

// All returns a copy of the supported modes.
func All() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

func ByID(id ID) (Mode, bool) {
	for _, m := range modes {
		if m.ID == id {
			return m, true
		}
	}
	return Mode{}, false
}

func Valid(id ID) bool {
	_, ok := ByID(id)
	return ok
}
