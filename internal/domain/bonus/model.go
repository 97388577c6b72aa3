package bonus

import (
	"fmt"
	"time"
)

// ID identifies one of the four season-long bonuses.
type ID int64

const (
	TripleCaptain   ID = 1
	FifteenSubs     ID = 2
	DoubleCaptains  ID = 3
	FullSquadPoints ID = 4
)

// Definition is one entry of the fixed bonus catalog.
type Definition struct {
	ID   ID
	Name string
}

// catalog order is the presentation order for remaining bonuses.
var catalog = []Definition{
	{ID: TripleCaptain, Name: "Triple Captain"},
	{ID: FifteenSubs, Name: "15 Subs"},
	{ID: DoubleCaptains, Name: "Double Captains"},
	{ID: FullSquadPoints, Name: "Full Squad Points"},
}

var namesByID = func() map[ID]string {
	m := make(map[ID]string, len(catalog))
	for _, def := range catalog {
		m[def.ID] = def.Name
	}
	return m
}()

// Catalog returns a copy of the fixed bonus table in catalog order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Count is the number of bonuses every team holds for a season.
func Count() int {
	return len(catalog)
}

func ValidID(id ID) bool {
	_, ok := namesByID[id]
	return ok
}

// Name returns the display name for a catalog id.
func Name(id ID) (string, bool) {
	name, ok := namesByID[id]
	return name, ok
}

// UsageEvent records a single bonus consumption by a team.
type UsageEvent struct {
	BonusID ID
	RoundID int64
	UsedAt  time.Time
}

func (e UsageEvent) Validate() error {
	if !ValidID(e.BonusID) {
		return fmt.Errorf("unknown bonus id: %d", e.BonusID)
	}
	if e.RoundID <= 0 {
		return fmt.Errorf("bonus usage round id must be greater than zero")
	}
	if e.UsedAt.IsZero() {
		return fmt.Errorf("bonus usage date is required")
	}

	return nil
}
