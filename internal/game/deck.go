package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ParseDecks decodes deck YAML.
func ParseDecks(data []byte) (*DeckFile, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}
	return &df, nil
}

// LoadDeckFile reads and decodes a deck YAML file.
func LoadDeckFile(path string) (*DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDecks(data)
}

// Build resolves every entry of the deck against the card registry.
func (d DeckEntry) Build() ([]*Card, error) {
	var cards []*Card
	for _, entry := range d.Cards {
		if entry.Count < 0 {
			return nil, fmt.Errorf("deck %q: card %q has negative count %d", d.Name, entry.Name, entry.Count)
		}
		for i := 0; i < entry.Count; i++ {
			card, err := LookupCard(entry.Name)
			if err != nil {
				return nil, fmt.Errorf("deck %q: %w", d.Name, err)
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from the deck file.
func DeckByNumber(path string, n int) (string, []*Card, error) {
	df, err := LoadDeckFile(path)
	if err != nil {
		return "", nil, err
	}
	return df.DeckByNumber(n)
}

// DeckByNumber returns the Nth deck (1-indexed) of df.
func (df *DeckFile) DeckByNumber(n int) (string, []*Card, error) {
	if n < 1 || n > len(df.Decks) {
		return "", nil, fmt.Errorf("%w: deck %d (have %d decks)", ErrDeckNotFound, n, len(df.Decks))
	}

	deck := df.Decks[n-1]
	cards, err := deck.Build()
	if err != nil {
		return "", nil, err
	}
	return deck.Name, cards, nil
}

// --- Built-in decks ---

// SimpleDeck returns one melee unit per value from lo to hi, named c<value>.
func SimpleDeck(lo, hi int) []*Card {
	var cards []*Card
	for v := lo; v <= hi; v++ {
		cards = append(cards, NewUnit(fmt.Sprintf("c%d", v), v, RowMelee))
	}
	return cards
}

// BalancedDeck returns the same spread of weak and strong units on every row.
func BalancedDeck() []*Card {
	spread := []struct {
		value, count int
	}{
		{1, 3},
		{2, 2},
		{3, 1},
		{5, 1},
	}
	var cards []*Card
	for row := 1; row <= RowCount; row++ {
		for _, s := range spread {
			for i := 0; i < s.count; i++ {
				cards = append(cards, NewUnit(fmt.Sprintf("c%d", s.value), s.value, row))
			}
		}
	}
	return cards
}
