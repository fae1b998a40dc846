// Package effect implements the timed modifiers a combatant can carry:
// shields, damage over time, regeneration, and silence. An effect is
// applied once when attached, ticks once per round while active, and
// expires exactly once when its duration runs out.
package effect

// Target is the slice of a combatant that effects act on. It is
// implemented by the character package; keeping it narrow lets effects
// be tested against a stub.
type Target interface {
	Alive() bool
	AddShield(amount float64)
	RemoveShield(amount float64)
	TakeDamage(amount float64, source string, dot bool)
	Heal(amount float64)
}

// Effect is one attached modifier. Apply runs at attach time, OnTurn at
// the start of each of the carrier's turns (consuming one round of
// duration), and Expire after the final tick, undoing any persistent
// change the effect made.
type Effect interface {
	Apply(t Target)
	OnTurn(t Target)
	Expire(t Target)
	Name() string
	Source() string
	Remaining() int
}

// base carries the fields shared by all effects: who cast it and how
// many rounds remain.
type base struct {
	source   string
	duration int
}

func (b *base) tick() { b.duration-- }

func (b *base) Source() string { return b.source }

func (b *base) Remaining() int { return b.duration }

// Shield raises the carrier's absorption buffer on apply and removes its
// contribution on expiry, so an expired shield never lingers.
type Shield struct {
	base
	amount float64
}

// NewShield creates a shield from source absorbing amount damage for
// duration rounds.
func NewShield(source string, amount float64, duration int) *Shield {
	return &Shield{base: base{source: source, duration: duration}, amount: amount}
}

func (s *Shield) Apply(t Target) { t.AddShield(s.amount) }

func (s *Shield) OnTurn(t Target) { s.tick() }

func (s *Shield) Expire(t Target) { t.RemoveShield(s.amount) }

func (s *Shield) Name() string { return "shield" }

// Amount returns the absorption this shield contributed.
func (s *Shield) Amount() float64 { return s.amount }

// DamageOverTime burns the carrier for a fixed amount each round. Tick
// damage goes through normal shield absorption but is flagged so the
// battle never treats it as a direct hit.
type DamageOverTime struct {
	base
	damage float64
}

// NewDamageOverTime creates a burn from source dealing damage per round
// for duration rounds.
func NewDamageOverTime(source string, damage float64, duration int) *DamageOverTime {
	return &DamageOverTime{base: base{source: source, duration: duration}, damage: damage}
}

func (d *DamageOverTime) Apply(t Target) {}

func (d *DamageOverTime) OnTurn(t Target) {
	if t.Alive() {
		t.TakeDamage(d.damage, d.source, true)
	}
	d.tick()
}

func (d *DamageOverTime) Expire(t Target) {}

func (d *DamageOverTime) Name() string { return "burn" }

// Damage returns the per-round burn amount.
func (d *DamageOverTime) Damage() float64 { return d.damage }

// Regen restores hp to the carrier each round, capped at max hp by the
// target's own Heal.
type Regen struct {
	base
	amount float64
}

// NewRegen creates a regeneration from source healing amount per round
// for duration rounds.
func NewRegen(source string, amount float64, duration int) *Regen {
	return &Regen{base: base{source: source, duration: duration}, amount: amount}
}

func (r *Regen) Apply(t Target) {}

func (r *Regen) OnTurn(t Target) {
	if t.Alive() {
		t.Heal(r.amount)
	}
	r.tick()
}

func (r *Regen) Expire(t Target) {}

func (r *Regen) Name() string { return "regen" }

// Silence is a pure marker: it changes nothing on the carrier, but its
// presence blocks skill use until it wears off.
type Silence struct {
	base
}

// NewSilence creates a silence from source lasting duration rounds.
func NewSilence(source string, duration int) *Silence {
	return &Silence{base: base{source: source, duration: duration}}
}

func (s *Silence) Apply(t Target) {}

func (s *Silence) OnTurn(t Target) { s.tick() }

func (s *Silence) Expire(t Target) {}

func (s *Silence) Name() string { return "silence" }
