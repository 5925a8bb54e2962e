package game

import (
	"fmt"
	"slices"
)

// Rows, by the troops that usually fill them.
const (
	RowMelee  = 1
	RowRanged = 2
	RowSiege  = 3
)

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]func() *Card{
	// Melee
	"Footman":      func() *Card { return NewUnit("Footman", 1, RowMelee) },
	"Pikeman":      func() *Card { return NewUnit("Pikeman", 2, RowMelee) },
	"Shieldbearer": func() *Card { return NewUnit("Shieldbearer", 3, RowMelee) },
	"Knight":       func() *Card { return NewUnit("Knight", 5, RowMelee) },
	"Champion":     func() *Card { return NewUnit("Champion", 8, RowMelee) },

	// Ranged
	"Slinger":     func() *Card { return NewUnit("Slinger", 1, RowRanged) },
	"Archer":      func() *Card { return NewUnit("Archer", 2, RowRanged) },
	"Crossbowman": func() *Card { return NewUnit("Crossbowman", 3, RowRanged) },
	"Longbowman":  func() *Card { return NewUnit("Longbowman", 5, RowRanged) },
	"Marksman":    func() *Card { return NewUnit("Marksman", 8, RowRanged) },

	// Siege
	"Sapper":      func() *Card { return NewUnit("Sapper", 1, RowSiege) },
	"Mangonel":    func() *Card { return NewUnit("Mangonel", 2, RowSiege) },
	"Ballista":    func() *Card { return NewUnit("Ballista", 3, RowSiege) },
	"Trebuchet":   func() *Card { return NewUnit("Trebuchet", 5, RowSiege) },
	"Siege Tower": func() *Card { return NewUnit("Siege Tower", 8, RowSiege) },

	// Specials
	"Frost Snap":   func() *Card { return NewSpecial("Frost Snap", Sap(), RowMelee) },
	"Fog Bank":     func() *Card { return NewSpecial("Fog Bank", Sap(), RowRanged) },
	"Downpour":     func() *Card { return NewSpecial("Downpour", Sap(), RowSiege) },
	"Mud Pit":      func() *Card { return NewSpecial("Mud Pit", SetTo(2), RowSiege) },
	"Rally Banner": func() *Card { return NewSpecial("Rally Banner", Boost(1), RowMelee) },
	"Battle Hymn":  func() *Card { return NewSpecial("Battle Hymn", Boost(2), RowRanged) },
	"War Horn":     func() *Card { return NewSpecial("War Horn", Double(), RowMelee) },
}

// LookupCard looks up a card by name and returns a new instance.
func LookupCard(name string) (*Card, error) {
	ctor, ok := CardRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCard, name)
	}
	return ctor(), nil
}

// MustLookupCard is LookupCard for names known to be in the registry.
// Panics if the card is not found.
func MustLookupCard(name string) *Card {
	c, err := LookupCard(name)
	if err != nil {
		panic(err)
	}
	return c
}

// CardNames returns every registered card name, sorted.
func CardNames() []string {
	names := make([]string, 0, len(CardRegistry))
	for name := range CardRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
