package character

import (
	"testing"

	"github.com/nathoo/raidcore/engine/rng"
	"github.com/nathoo/raidcore/types"
)

func TestNewBoss_StockValues(t *testing.T) {
	b := newTestBoss()

	if b.MaxHP != 600 || b.HP.Get() != 600 {
		t.Errorf("hp = %v/%v, want full 600", b.HP.Get(), b.MaxHP)
	}
	if b.MaxMP != 80 {
		t.Errorf("max mp = %v, want 80", b.MaxMP)
	}
	if b.Strength.Get() != 26 {
		t.Errorf("strength = %v, want 26", b.Strength.Get())
	}
	if b.Agility.Get() != 8 {
		t.Errorf("agility = %v, want 8", b.Agility.Get())
	}
	if b.Intelligence.Get() != 14 {
		t.Errorf("intelligence = %v, want 14", b.Intelligence.Get())
	}
	if b.Level != 5 {
		t.Errorf("level = %d, want 5", b.Level)
	}
	// The boss does not crit unless a scenario says so.
	if b.CritChance != 0 {
		t.Errorf("crit chance = %v, want 0", b.CritChance)
	}
}

func TestNewBoss_OverridesAndNameFallback(t *testing.T) {
	b := NewBoss(types.BossDef{ID: "lich", MaxHP: 900, CritChance: 0.2})

	if b.Name != "lich" {
		t.Errorf("name = %q, want ID fallback", b.Name)
	}
	if b.MaxHP != 900 {
		t.Errorf("MaxHP = %v, want 900", b.MaxHP)
	}
	if b.Strength.Get() != 26 {
		t.Errorf("strength = %v, want stock 26", b.Strength.Get())
	}
	if b.CritChance != 0.2 {
		t.Errorf("crit chance = %v, want 0.2", b.CritChance)
	}
}

func TestCurrentPhase(t *testing.T) {
	tests := []struct {
		hp   float64
		want Phase
	}{
		{600, Phase1},
		{397, Phase1}, // just above the 0.66 line
		{396, Phase2}, // exactly 0.66 drops to phase 2
		{300, Phase2},
		{199, Phase2}, // just above the 0.33 line
		{198, Phase3}, // exactly 0.33 drops to phase 3
		{50, Phase3},
		{0, Phase3},
	}

	b := newTestBoss()
	for _, tt := range tests {
		b.HP.SetFloat(tt.hp)
		if got := b.CurrentPhase(); got != tt.want {
			t.Errorf("phase at %v hp = %d, want %d", tt.hp, got, tt.want)
		}
	}
}

func TestSmash_NoDrawsNoCrit(t *testing.T) {
	b := newTestBoss()
	w := testWarrior(t)

	// Smash takes no RNG at all; the damage is exact.
	b.Smash(w)

	want := 150 - 26*2.2
	if got := w.HP.Get(); !closeTo(got, want) {
		t.Errorf("hp after smash = %v, want %v", got, want)
	}
}

func TestAct_Phase1SmashesLowestHP(t *testing.T) {
	b := newTestBoss()
	w := testWarrior(t)
	m, _ := NewHero(types.HeroDef{ID: "m", Name: "Gandalf", Class: types.ClassMage})
	h, _ := NewHero(types.HeroDef{ID: "h", Name: "Aragorn", Class: types.ClassHealer})
	m.HP.SetFloat(80) // lowest

	r := rng.New(7)
	b.Act([]*Character{w, m, h}, r)

	if got := 80 - m.HP.Get(); !closeTo(got, 26*2.2) {
		t.Errorf("lowest-hp hero lost %v, want smash damage %v", got, 26*2.2)
	}
	if w.HP.Get() != 150 || h.HP.Get() != 110 {
		t.Error("smash hit more than one hero")
	}
	// No silence coin outside phase 3.
	if r.Position() != 0 {
		t.Errorf("rng position = %d, want 0", r.Position())
	}
}

func TestAct_Phase2ShieldsWhenBufferLow(t *testing.T) {
	b := newTestBoss()
	b.HP.SetFloat(300) // phase 2
	w := testWarrior(t)

	r := rng.New(7)
	b.Act([]*Character{w}, r)

	if want := 14 * 3.5; !closeTo(b.Shield, want) {
		t.Errorf("shield = %v, want %v", b.Shield, want)
	}
	if w.HP.Get() != 150 {
		t.Error("boss smashed while shielding")
	}
}

func TestAct_Phase2SmashesStrongestWhenShielded(t *testing.T) {
	b := newTestBoss()
	b.HP.SetFloat(300) // phase 2
	b.AddShield(200)   // comfortably above the re-shield floor
	w := testWarrior(t)
	m, _ := NewHero(types.HeroDef{ID: "m", Name: "Gandalf", Class: types.ClassMage})

	r := rng.New(7)
	b.Act([]*Character{m, w}, r)

	if got := 150 - w.HP.Get(); !closeTo(got, 26*2.2) {
		t.Errorf("strongest hero lost %v, want smash damage %v", got, 26*2.2)
	}
	if m.HP.Get() != 90 {
		t.Error("smash hit the weaker hero")
	}
}

func TestAct_Phase3SilenceCoin(t *testing.T) {
	b := newTestBoss()
	b.HP.SetFloat(100) // phase 3
	w := testWarrior(t)
	m, _ := NewHero(types.HeroDef{ID: "m", Name: "Gandalf", Class: types.ClassMage})
	h, _ := NewHero(types.HeroDef{ID: "h", Name: "Aragorn", Class: types.ClassHealer})
	// High hp so the smash victim stays alive for the silence pick.
	w.HP.SetFloat(150)
	m.HP.SetFloat(90)
	h.HP.SetFloat(110)
	enemies := []*Character{w, m, h}

	const seed = 9
	r := rng.New(seed)
	b.Act(enemies, r)

	expect := rng.New(seed)
	silenced := -1
	if expect.Chance(0.5) {
		silenced = expect.Intn(len(enemies))
	}

	for i, e := range enemies {
		want := i == silenced
		if got := e.Silenced(); got != want {
			t.Errorf("enemy %d silenced = %v, want %v", i, got, want)
		}
	}
	if r.Position() != expect.Position() {
		t.Errorf("rng position = %d, want %d", r.Position(), expect.Position())
	}
}

func TestAct_Phase3CoinDrawnEvenWithNoneLiving(t *testing.T) {
	b := newTestBoss()
	b.HP.SetFloat(100) // phase 3
	w := testWarrior(t)
	w.HP.SetFloat(0)

	r := rng.New(9)
	b.Act([]*Character{w}, r)

	// Nobody to smash or silence, but the coin draw still happens so a
	// seeded battle stays aligned across rounds.
	if r.Position() != 1 {
		t.Errorf("rng position = %d, want 1", r.Position())
	}
	if w.Silenced() {
		t.Error("dead hero was silenced")
	}
}

func TestAct_NoEnemiesSkipsCoin(t *testing.T) {
	b := newTestBoss()
	b.HP.SetFloat(100) // phase 3

	r := rng.New(9)
	b.Act(nil, r)

	if r.Position() != 0 {
		t.Errorf("rng position = %d, want 0", r.Position())
	}
}
