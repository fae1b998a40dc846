package engine

import (
	"fmt"

	"github.com/nathoo/raidcore/engine/character"
	"github.com/nathoo/raidcore/types"
)

// HeroStatus is a read-only view of one party member for front-ends.
type HeroStatus struct {
	Name     string
	Class    types.Class
	HP       float64
	MaxHP    float64
	MP       float64
	MaxMP    float64
	Shield   float64
	Alive    bool
	Silenced bool
	Effects  []string
}

// BossStatus is a read-only view of the boss.
type BossStatus struct {
	Name    string
	HP      float64
	MaxHP   float64
	Shield  float64
	Phase   int
	Alive   bool
	Effects []string
}

// Snapshot captures the battle state between lines of output. Front-ends
// render it; nothing in the engine reads it back.
type Snapshot struct {
	Round int
	Party []HeroStatus
	Boss  BossStatus
}

// Snapshot returns the current battle state.
func (b *Battle) Snapshot() Snapshot {
	snap := Snapshot{
		Round: b.Round,
		Party: make([]HeroStatus, len(b.Party)),
		Boss: BossStatus{
			Name:    b.Boss.Name,
			HP:      b.Boss.HP.Get(),
			MaxHP:   b.Boss.MaxHP,
			Shield:  b.Boss.Shield,
			Phase:   int(b.Boss.CurrentPhase()),
			Alive:   b.Boss.Alive(),
			Effects: effectLabels(&b.Boss.Character),
		},
	}
	for i, h := range b.Party {
		snap.Party[i] = HeroStatus{
			Name:     h.Name,
			Class:    h.Class,
			HP:       h.HP.Get(),
			MaxHP:    h.MaxHP,
			MP:       h.MP.Get(),
			MaxMP:    h.MaxMP,
			Shield:   h.Shield,
			Alive:    h.Alive(),
			Silenced: h.Silenced(),
			Effects:  effectLabels(h),
		}
	}
	return snap
}

func effectLabels(c *character.Character) []string {
	if len(c.Effects) == 0 {
		return nil
	}
	out := make([]string, len(c.Effects))
	for i, e := range c.Effects {
		out[i] = fmt.Sprintf("%s (%d)", e.Name(), e.Remaining())
	}
	return out
}
