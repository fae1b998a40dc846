package engine

import (
	"sort"

	"github.com/nathoo/raidcore/engine/character"
	"github.com/nathoo/raidcore/engine/rng"
)

// TurnOrder fixes who acts when for one round: living combatants,
// shuffled, then stably sorted by agility descending. The shuffle decides
// ties, so equal-agility combatants rotate between seeds instead of
// always following slice order.
type TurnOrder struct {
	queue []*character.Character
}

// NewTurnOrder draws the order for one round. It consumes exactly one
// RNG draw regardless of party size.
func NewTurnOrder(combatants []*character.Character, r *rng.RNG) *TurnOrder {
	living := character.Living(combatants)
	r.Shuffle(len(living), func(i, j int) {
		living[i], living[j] = living[j], living[i]
	})
	sort.SliceStable(living, func(i, j int) bool {
		return living[i].Agility.Get() > living[j].Agility.Get()
	})
	return &TurnOrder{queue: living}
}

// Next pops the next living combatant. Combatants that died since the
// order was drawn are skipped, not returned.
func (o *TurnOrder) Next() (*character.Character, bool) {
	for len(o.queue) > 0 {
		c := o.queue[0]
		o.queue = o.queue[1:]
		if c.Alive() {
			return c, true
		}
	}
	return nil, false
}

// Remaining reports how many combatants have not acted yet, dead or not.
func (o *TurnOrder) Remaining() int { return len(o.queue) }
