package character

// BossAction is what a strategy chose to do.
type BossAction string

// Actions a boss strategy can return.
const (
	BossSmash  BossAction = "smash"
	BossShield BossAction = "shield"
	BossWait   BossAction = "wait"
)

// Strategy picks a boss action from the battlefield. Implementations are
// stateless; the same inputs always return the same choice, so all
// variation comes from the battle's RNG upstream.
type Strategy interface {
	ChooseAction(boss *Boss, allies, enemies []*Character) (*Character, BossAction)
}

// Aggressive hunts the living enemy with the lowest hp. Ties go to the
// earliest in party order.
type Aggressive struct{}

func (Aggressive) ChooseAction(_ *Boss, _, enemies []*Character) (*Character, BossAction) {
	living := Living(enemies)
	if len(living) == 0 {
		return nil, BossWait
	}
	target := living[0]
	for _, e := range living[1:] {
		if e.HP.Get() < target.HP.Get() {
			target = e
		}
	}
	return target, BossSmash
}

// Defensive re-shields when the buffer runs below the floor, otherwise
// strikes the living enemy with the highest strength. Ties go to the
// earliest in party order.
type Defensive struct{}

func (Defensive) ChooseAction(boss *Boss, _, enemies []*Character) (*Character, BossAction) {
	if boss.Shield < boss.MaxHP*shieldFloor {
		return &boss.Character, BossShield
	}
	living := Living(enemies)
	if len(living) == 0 {
		return nil, BossWait
	}
	target := living[0]
	for _, e := range living[1:] {
		if e.Strength.Get() > target.Strength.Get() {
			target = e
		}
	}
	return target, BossSmash
}

// Living filters combatants down to those still standing, preserving
// order.
func Living(cs []*Character) []*Character {
	var out []*Character
	for _, c := range cs {
		if c.Alive() {
			out = append(out, c)
		}
	}
	return out
}
