// Package character implements the combatants of a battle: the hero
// variants built by NewHero, the Boss, and the state they share. All
// randomness flows through the battle's RNG, passed in explicitly, so a
// seeded battle replays draw for draw.
package character

import (
	"fmt"
	"math"

	"github.com/nathoo/raidcore/engine/effect"
	"github.com/nathoo/raidcore/engine/item"
	"github.com/nathoo/raidcore/engine/rng"
	"github.com/nathoo/raidcore/engine/stat"
	"github.com/nathoo/raidcore/types"
)

// critMultiplier scales damage on a successful crit roll. Every
// combatant uses the same multiplier.
const critMultiplier = 1.5

// Reporter receives combat narration. The battle wires a front-end in
// through SetReporter; with no reporter a character acts silently.
type Reporter interface {
	Say(line string)
}

// Character is one combatant. Heroes are Characters directly; the boss
// embeds one.
type Character struct {
	Name  string
	Class types.Class
	Level int

	HP           stat.Stat
	MP           stat.Stat
	Strength     stat.Stat
	Agility      stat.Stat
	Intelligence stat.Stat
	MaxHP        float64
	MaxMP        float64

	Shield    float64
	Effects   []effect.Effect
	Cooldowns map[string]int
	Inventory *item.Inventory

	CritChance     float64
	CritMultiplier float64

	Skill types.SkillDef

	rep Reporter
}

// newCharacter wires the shared combatant state. hp and mp start full.
func newCharacter(name string, level int, maxHP, maxMP, str, agi, intel float64) *Character {
	c := &Character{
		Name:           name,
		Level:          level,
		HP:             stat.NewBounded("hp", 0, maxHP),
		MP:             stat.NewBounded("mp", 0, maxMP),
		Strength:       stat.New("strength", 0),
		Agility:        stat.New("agility", 0),
		Intelligence:   stat.New("intelligence", 0),
		MaxHP:          maxHP,
		MaxMP:          maxMP,
		Cooldowns:      map[string]int{},
		Inventory:      item.NewInventory(),
		CritMultiplier: critMultiplier,
	}
	c.HP.SetFloat(maxHP)
	c.MP.SetFloat(maxMP)
	c.Strength.SetFloat(str)
	c.Agility.SetFloat(agi)
	c.Intelligence.SetFloat(intel)
	return c
}

// SetReporter routes this character's narration to rep.
func (c *Character) SetReporter(rep Reporter) { c.rep = rep }

func (c *Character) say(format string, args ...any) {
	if c.rep != nil {
		c.rep.Say(fmt.Sprintf(format, args...))
	}
}

// Alive reports whether the character can still act.
func (c *Character) Alive() bool { return c.HP.Get() > 0 }

// Silenced reports whether a silence effect is currently attached.
func (c *Character) Silenced() bool {
	for _, e := range c.Effects {
		if _, ok := e.(*effect.Silence); ok {
			return true
		}
	}
	return false
}

// AddShield raises the absorption buffer.
func (c *Character) AddShield(amount float64) {
	c.Shield += amount
}

// RemoveShield lowers the absorption buffer, floored at zero. The floor
// matters when an expiring shield was already chewed through.
func (c *Character) RemoveShield(amount float64) {
	c.Shield -= amount
	if c.Shield < 0 {
		c.Shield = 0
	}
}

// TakeDamage routes amount through shield absorption and subtracts the
// remainder from hp. dot flags burn ticks so narration and the battle's
// retaliation rule can tell them apart from direct hits.
func (c *Character) TakeDamage(amount float64, source string, dot bool) {
	if amount <= 0 {
		return
	}
	if c.Shield > 0 {
		absorbed := math.Min(c.Shield, amount)
		c.Shield -= absorbed
		amount -= absorbed
		c.say("%s's shield absorbs %.1f damage (%.1f shield left)", c.Name, absorbed, c.Shield)
		if amount <= 0 {
			return
		}
	}
	c.HP.SetFloat(c.HP.Get() - amount)
	verb := "takes"
	if dot {
		verb = "burns for"
	}
	c.say("%s %s %.1f damage from %s → %.1f/%.1f HP", c.Name, verb, amount, source, c.HP.Get(), c.MaxHP)
	if !c.Alive() {
		c.say("%s has fallen!", c.Name)
	}
}

// Heal restores amount hp, capped at max hp.
func (c *Character) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	before := c.HP.Get()
	c.HP.SetFloat(before + amount)
	c.say("%s recovers %.1f HP → %.1f/%.1f", c.Name, c.HP.Get()-before, c.HP.Get(), c.MaxHP)
}

// RestoreMP restores amount mp, capped at max mp.
func (c *Character) RestoreMP(amount float64) {
	if amount <= 0 {
		return
	}
	before := c.MP.Get()
	c.MP.SetFloat(before + amount)
	c.say("%s recovers %.1f MP → %.1f/%.1f", c.Name, c.MP.Get()-before, c.MP.Get(), c.MaxMP)
}

// SpendMP pays amount if available. The spend is all or nothing:
// insufficient mana costs nothing.
func (c *Character) SpendMP(amount float64) bool {
	if c.MP.Get() < amount {
		return false
	}
	c.MP.SetFloat(c.MP.Get() - amount)
	return true
}

// ApplyEffect attaches e, running its apply hook exactly once.
func (c *Character) ApplyEffect(e effect.Effect) {
	e.Apply(c)
	c.Effects = append(c.Effects, e)
	c.say("%s gains %s (%d rounds)", c.Name, e.Name(), e.Remaining())
}

// StartTurnEffects ticks every attached effect in attachment order, then
// expires the ones whose duration ran out. Expiry hooks run exactly once.
func (c *Character) StartTurnEffects() {
	if len(c.Effects) == 0 {
		return
	}
	// Tick over a snapshot; OnTurn may attach further effects.
	active := make([]effect.Effect, len(c.Effects))
	copy(active, c.Effects)
	for _, e := range active {
		e.OnTurn(c)
	}

	var kept []effect.Effect
	for _, e := range c.Effects {
		if e.Remaining() > 0 {
			kept = append(kept, e)
			continue
		}
		e.Expire(c)
		c.say("%s: %s wears off", c.Name, e.Name())
	}
	c.Effects = kept
}

// TickCooldowns burns one round off every armed cooldown.
func (c *Character) TickCooldowns() {
	for name, left := range c.Cooldowns {
		if left > 0 {
			c.Cooldowns[name] = left - 1
		}
	}
}

// rollCrit draws the crit chance. The draw happens before any damage
// jitter draw, and that order is observable under a fixed seed.
func (c *Character) rollCrit(r *rng.RNG) bool {
	return r.Chance(c.CritChance)
}

// BasicAttack strikes target for strength-scaled damage with a crit roll
// followed by a ±10% jitter roll.
func (c *Character) BasicAttack(target *Character, r *rng.RNG) {
	base := c.Strength.Get()
	if c.rollCrit(r) {
		base *= c.CritMultiplier
		c.say("%s lands a critical hit!", c.Name)
	}
	damage := base * r.Uniform(0.9, 1.1)
	target.TakeDamage(damage, c.Name, false)
}

// UseItem consumes one copy of the named item from the character's own
// inventory, applying it to target. It reports whether anything was used.
func (c *Character) UseItem(name string, target *Character) bool {
	return c.Inventory.Use(name, target)
}
