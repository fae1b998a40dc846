package character

import (
	"fmt"

	"github.com/nathoo/raidcore/engine/effect"
	"github.com/nathoo/raidcore/engine/rng"
	"github.com/nathoo/raidcore/types"
)

// Fireball leaves a burn behind: a quarter of the direct hit, spread
// over two rounds.
const (
	fireballDotFraction = 0.25
	fireballDotRounds   = 2
)

// classBase holds the stock construction values per hero class. A
// scenario overrides individual fields; zero-valued fields fall back to
// these.
var classBase = map[types.Class]types.HeroDef{
	types.ClassWarrior: {
		Class: types.ClassWarrior, Level: 1,
		MaxHP: 150, MaxMP: 30,
		Strength: 20, Agility: 12, Intelligence: 6,
		CritChance: 0.12,
		Skill:      types.SkillDef{Name: "power_strike", Cost: 8, Cooldown: 2, Power: 2.0},
	},
	types.ClassMage: {
		Class: types.ClassMage, Level: 1,
		MaxHP: 90, MaxMP: 140,
		Strength: 6, Agility: 10, Intelligence: 22,
		CritChance: 0.06,
		Skill:      types.SkillDef{Name: "fireball", Cost: 20, Cooldown: 3, Power: 3.0},
	},
	types.ClassHealer: {
		Class: types.ClassHealer, Level: 1,
		MaxHP: 110, MaxMP: 130,
		Strength: 6, Agility: 10, Intelligence: 20,
		CritChance: 0.03,
		Skill:      types.SkillDef{Name: "mass_heal", Cost: 25, Cooldown: 3, Power: 2.0},
	},
}

// skillBodies lands the class payload once the skill gate has passed.
var skillBodies = map[types.Class]func(c *Character, target *Character, allies []*Character, r *rng.RNG){
	types.ClassWarrior: powerStrike,
	types.ClassMage:    fireball,
	types.ClassHealer:  massHeal,
}

// BaseDef returns the stock definition for a hero class.
func BaseDef(class types.Class) (types.HeroDef, bool) {
	def, ok := classBase[class]
	return def, ok
}

// NewHero builds a hero from def. Unset numeric fields and a missing
// skill block fall back to the class base, so a scenario only has to
// name what it changes.
func NewHero(def types.HeroDef) (*Character, error) {
	base, ok := classBase[def.Class]
	if !ok {
		return nil, fmt.Errorf("unknown hero class %q", def.Class)
	}
	merged := mergeHeroDef(base, def)

	c := newCharacter(merged.Name, merged.Level,
		merged.MaxHP, merged.MaxMP,
		merged.Strength, merged.Agility, merged.Intelligence)
	c.Class = merged.Class
	c.CritChance = merged.CritChance
	c.Skill = merged.Skill
	c.Cooldowns[merged.Skill.Name] = 0
	return c, nil
}

func mergeHeroDef(base, def types.HeroDef) types.HeroDef {
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
	if def.Skill.Name != "" {
		out.Skill = def.Skill
	}
	return out
}

// UseSkill resolves the hero's signature skill. A blocked skill (silence,
// cooldown, or mana) degrades to a basic attack against target. The
// healer only swings on fallback when the target still stands; the
// attacking classes swing regardless.
func (c *Character) UseSkill(target *Character, allies []*Character, r *rng.RNG) {
	switch c.Class {
	case types.ClassHealer:
		if !c.useSignatureSkill(target, allies, r) && target != nil && target.Alive() {
			c.BasicAttack(target, r)
		}
	case types.ClassWarrior, types.ClassMage:
		if target == nil {
			return
		}
		if !c.useSignatureSkill(target, allies, r) {
			c.BasicAttack(target, r)
		}
	}
}

// useSignatureSkill runs the uniform gate: silence, then cooldown, then
// mana. Only when all three pass is the cost paid and the cooldown
// armed; a blocked skill costs nothing.
func (c *Character) useSignatureSkill(target *Character, allies []*Character, r *rng.RNG) bool {
	sk := c.Skill
	if c.Silenced() {
		c.say("%s is silenced and cannot cast %s", c.Name, sk.Name)
		return false
	}
	if c.Cooldowns[sk.Name] > 0 {
		c.say("%s: %s is on cooldown (%d rounds left)", c.Name, sk.Name, c.Cooldowns[sk.Name])
		return false
	}
	if !c.SpendMP(float64(sk.Cost)) {
		c.say("%s lacks the MP for %s (%d needed, %.0f left)", c.Name, sk.Name, sk.Cost, c.MP.Get())
		return false
	}
	c.Cooldowns[sk.Name] = sk.Cooldown
	skillBodies[c.Class](c, target, allies, r)
	return true
}

// powerStrike is the warrior payload: a heavy strength hit that can crit.
func powerStrike(c *Character, target *Character, _ []*Character, r *rng.RNG) {
	c.say("%s unleashes %s on %s", c.Name, c.Skill.Name, target.Name)
	damage := c.Strength.Get() * c.Skill.Power
	if c.rollCrit(r) {
		damage *= c.CritMultiplier
		c.say("%s lands a critical %s!", c.Name, c.Skill.Name)
	}
	target.TakeDamage(damage, c.Name, false)
}

// fireball is the mage payload: a flat intelligence hit, never critting,
// that leaves a burn on the target.
func fireball(c *Character, target *Character, _ []*Character, _ *rng.RNG) {
	c.say("%s hurls a %s at %s", c.Name, c.Skill.Name, target.Name)
	damage := c.Intelligence.Get() * c.Skill.Power
	target.TakeDamage(damage, c.Name, false)
	target.ApplyEffect(effect.NewDamageOverTime(c.Name, damage*fireballDotFraction, fireballDotRounds))
}

// massHeal is the healer payload: an intelligence-scaled heal on every
// living ally. The healer heals itself only if listed among the allies.
func massHeal(c *Character, _ *Character, allies []*Character, _ *rng.RNG) {
	amount := c.Intelligence.Get() * c.Skill.Power
	c.say("%s channels %s", c.Name, c.Skill.Name)
	for _, a := range allies {
		if a.Alive() {
			a.Heal(amount)
		}
	}
}
