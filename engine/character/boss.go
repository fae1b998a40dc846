package character

import (
	"github.com/nathoo/raidcore/engine/effect"
	"github.com/nathoo/raidcore/engine/rng"
	"github.com/nathoo/raidcore/types"
)

// Phase is the boss behavioral state, derived from remaining hp on every
// query. No transition history is kept; healing the boss back above a
// threshold would move the phase back up.
type Phase int

// Boss phases in escalation order.
const (
	Phase1 Phase = iota + 1
	Phase2
	Phase3
)

// Phase thresholds and boss skill scaling.
const (
	phase2Threshold = 0.66 // hp ratio at or below this enters phase 2
	phase3Threshold = 0.33 // hp ratio at or below this enters phase 3

	smashPower       = 2.2  // strength multiplier for Smash
	selfShieldPower  = 3.5  // intelligence multiplier for ShieldSelf
	selfShieldRounds = 2    // duration of the boss's own shield
	silenceRounds    = 1    // duration of a cast silence
	shieldFloor      = 0.15 // defensive re-shields below this fraction of max hp

	phase3SilenceChance = 0.5
)

// bossBase holds the stock encounter values.
var bossBase = types.BossDef{
	Level: 5,
	MaxHP: 600, MaxMP: 80,
	Strength: 26, Agility: 8, Intelligence: 14,
}

// Boss is the encounter's single adversary. It shares the character core
// but picks actions through a phase-driven strategy instead of the hero
// skill gate; its skills cost no mana and never cool down.
type Boss struct {
	Character
	Taunts map[int]string
}

// NewBoss builds the boss from def. Zero-valued fields fall back to the
// stock encounter values.
func NewBoss(def types.BossDef) *Boss {
	merged := mergeBossDef(bossBase, def)
	b := &Boss{
		Character: *newCharacter(merged.Name, merged.Level,
			merged.MaxHP, merged.MaxMP,
			merged.Strength, merged.Agility, merged.Intelligence),
		Taunts: def.Taunts,
	}
	b.CritChance = merged.CritChance
	return b
}

func mergeBossDef(base, def types.BossDef) types.BossDef {
	out := base
	out.ID = def.ID
	out.Name = def.Name
	if out.Name == "" {
		out.Name = def.ID
	}
	if def.Level > 0 {
		out.Level = def.Level
	}
	if def.MaxHP > 0 {
		out.MaxHP = def.MaxHP
	}
	if def.MaxMP > 0 {
		out.MaxMP = def.MaxMP
	}
	if def.Strength > 0 {
		out.Strength = def.Strength
	}
	if def.Agility > 0 {
		out.Agility = def.Agility
	}
	if def.Intelligence > 0 {
		out.Intelligence = def.Intelligence
	}
	if def.CritChance > 0 {
		out.CritChance = def.CritChance
	}
	return out
}

// HPRatio returns hp as a fraction of max hp.
func (b *Boss) HPRatio() float64 {
	if b.MaxHP <= 0 {
		return 0
	}
	return b.HP.Get() / b.MaxHP
}

// CurrentPhase derives the phase from the hp ratio.
func (b *Boss) CurrentPhase() Phase {
	switch ratio := b.HPRatio(); {
	case ratio > phase2Threshold:
		return Phase1
	case ratio > phase3Threshold:
		return Phase2
	default:
		return Phase3
	}
}

// strategy returns the acting strategy for the current phase. Phases 1
// and 3 hunt; phase 2 turtles.
func (b *Boss) strategy() Strategy {
	if b.CurrentPhase() == Phase2 {
		return Defensive{}
	}
	return Aggressive{}
}

// Smash is the boss's heavy strike. It neither crits nor jitters.
func (b *Boss) Smash(target *Character) {
	b.say("%s smashes %s", b.Name, target.Name)
	target.TakeDamage(b.Strength.Get()*smashPower, b.Name, false)
}

// ShieldSelf raises a temporary absorption shield scaled by intelligence.
func (b *Boss) ShieldSelf() {
	amount := b.Intelligence.Get() * selfShieldPower
	b.say("%s raises a shield of %.1f", b.Name, amount)
	b.ApplyEffect(effect.NewShield(b.Name, amount, selfShieldRounds))
}

// CastSilence mutes target for a round.
func (b *Boss) CastSilence(target *Character) {
	b.say("%s silences %s", b.Name, target.Name)
	target.ApplyEffect(effect.NewSilence(b.Name, silenceRounds))
}

// Act resolves one boss turn: the phase strategy picks the primary
// action, and in phase 3 an independent coin flip adds a silence on a
// random living enemy. The coin is drawn whenever enemies exist, even if
// none are living, so seeded runs stay aligned.
func (b *Boss) Act(enemies []*Character, r *rng.RNG) {
	target, action := b.strategy().ChooseAction(b, nil, enemies)
	switch {
	case action == BossSmash && target != nil:
		b.Smash(target)
	case action == BossShield:
		b.ShieldSelf()
	default:
		b.say("%s bides its time", b.Name)
	}

	if b.CurrentPhase() == Phase3 && len(enemies) > 0 && r.Chance(phase3SilenceChance) {
		if living := Living(enemies); len(living) > 0 {
			b.CastSilence(living[r.Intn(len(living))])
		}
	}
}
