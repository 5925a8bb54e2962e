package game

import "fmt"

// --- Hand ---

// Hand holds the cards a player may still play this match.
type Hand struct {
	cards []*CardInstance
}

// Cards returns a copy of the cards in hand, in deal order.
func (h *Hand) Cards() []*CardInstance {
	return append([]*CardInstance(nil), h.cards...)
}

// Len returns the number of cards in hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Find returns the card with the given instance ID, or nil.
func (h *Hand) Find(id int) *CardInstance {
	for _, c := range h.cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Remove removes a card from the hand by instance ID.
func (h *Hand) Remove(id int) bool {
	for i, c := range h.cards {
		if c.ID == id {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) add(cards ...*CardInstance) {
	h.cards = append(h.cards, cards...)
}

// --- Deck ---

// Deck holds the cards that were not dealt. Nothing draws from it during a
// round; it only keeps the pool accounted for.
type Deck struct {
	cards []*CardInstance
}

// Cards returns a copy of the remaining cards, top first.
func (d *Deck) Cards() []*CardInstance {
	return append([]*CardInstance(nil), d.cards...)
}

// Len returns the number of cards remaining in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// --- Side ---

// Side is everything one seat owns across the rounds of a match.
type Side struct {
	Player    *Player
	Hand      *Hand
	Deck      *Deck
	Graveyard []*CardInstance // cards from finished rounds, in play order
	Victories int
	PoolSize  int
}

func newSide(p *Player) *Side {
	return &Side{Player: p, Hand: &Hand{}, Deck: &Deck{}}
}

// --- Rows ---

// EngagedCard is a unit in play, tracked with its current strength.
type EngagedCard struct {
	Instance     *CardInstance
	CurrentValue int
}

func newEngagedCard(ci *CardInstance) *EngagedCard {
	return &EngagedCard{Instance: ci, CurrentValue: ci.Card.Value}
}

// Name returns the underlying card's name.
func (ec *EngagedCard) Name() string {
	return ec.Instance.Card.Name
}

func (ec *EngagedCard) String() string {
	return fmt.Sprintf("%s (%d)", ec.Name(), ec.CurrentValue)
}

// Row is one lane of one player. Cards are kept in play order.
type Row struct {
	ID    int
	Cards []*EngagedCard
}

// Strength returns the sum of the current strength of every card in the row.
func (r *Row) Strength() int {
	total := 0
	for _, c := range r.Cards {
		total += c.CurrentValue
	}
	return total
}

// Len returns the number of cards in the row.
func (r *Row) Len() int {
	return len(r.Cards)
}

func (r *Row) String() string {
	s := fmt.Sprintf("row %d [%d]:", r.ID, r.Strength())
	for _, c := range r.Cards {
		s += " " + c.String()
	}
	return s
}

// newRowArena builds an empty set of rows for both seats.
func newRowArena() [2][RowCount]*Row {
	var rows [2][RowCount]*Row
	for p := 0; p < 2; p++ {
		for i := 0; i < RowCount; i++ {
			rows[p][i] = &Row{ID: i + 1}
		}
	}
	return rows
}
