package engine

import (
	"testing"

	"github.com/nathoo/raidcore/engine/character"
	"github.com/nathoo/raidcore/engine/rng"
	"github.com/nathoo/raidcore/types"
)

func agileHero(t *testing.T, name string, agility float64) *character.Character {
	t.Helper()
	h, err := character.NewHero(types.HeroDef{
		ID:      name,
		Name:    name,
		Class:   types.ClassWarrior,
		Agility: agility,
	})
	if err != nil {
		t.Fatalf("NewHero failed: %v", err)
	}
	return h
}

func popAll(o *TurnOrder) []string {
	var names []string
	for {
		c, ok := o.Next()
		if !ok {
			return names
		}
		names = append(names, c.Name)
	}
}

func TestTurnOrder_SortsByAgilityDescending(t *testing.T) {
	slow := agileHero(t, "slow", 4)
	mid := agileHero(t, "mid", 9)
	fast := agileHero(t, "fast", 17)

	o := NewTurnOrder([]*character.Character{slow, mid, fast}, rng.New(3))
	got := popAll(o)

	want := []string{"fast", "mid", "slow"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestTurnOrder_ExcludesDeadAtDraw(t *testing.T) {
	alive := agileHero(t, "alive", 10)
	dead := agileHero(t, "dead", 20)
	dead.HP.SetFloat(0)

	o := NewTurnOrder([]*character.Character{alive, dead}, rng.New(3))
	got := popAll(o)

	if len(got) != 1 || got[0] != "alive" {
		t.Fatalf("order = %v, want [alive]", got)
	}
}

func TestTurnOrder_SkipsNewlyDeadOnNext(t *testing.T) {
	first := agileHero(t, "first", 20)
	second := agileHero(t, "second", 10)
	third := agileHero(t, "third", 5)

	o := NewTurnOrder([]*character.Character{first, second, third}, rng.New(3))

	c, ok := o.Next()
	if !ok || c != first {
		t.Fatalf("first pop = %v", c)
	}
	second.HP.SetFloat(0) // dies before acting

	c, ok = o.Next()
	if !ok || c != third {
		t.Fatalf("second pop = %v, want third (second died)", c)
	}
	if _, ok := o.Next(); ok {
		t.Fatal("queue should be exhausted")
	}
}

func TestTurnOrder_SingleDraw(t *testing.T) {
	r := rng.New(3)
	NewTurnOrder([]*character.Character{
		agileHero(t, "a", 1),
		agileHero(t, "b", 2),
		agileHero(t, "c", 3),
	}, r)

	if r.Position() != 1 {
		t.Errorf("rng position = %d, want 1", r.Position())
	}
}

func TestTurnOrder_TieBreakIsSeeded(t *testing.T) {
	build := func(seed int64) []string {
		cs := []*character.Character{
			agileHero(t, "a", 10),
			agileHero(t, "b", 10),
			agileHero(t, "c", 10),
			agileHero(t, "d", 10),
		}
		return popAll(NewTurnOrder(cs, rng.New(seed)))
	}

	first := build(99)
	second := build(99)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed gave %v then %v", first, second)
		}
	}
}

func TestTurnOrder_Remaining(t *testing.T) {
	o := NewTurnOrder([]*character.Character{
		agileHero(t, "a", 1),
		agileHero(t, "b", 2),
	}, rng.New(3))

	if o.Remaining() != 2 {
		t.Fatalf("remaining = %d, want 2", o.Remaining())
	}
	o.Next()
	if o.Remaining() != 1 {
		t.Fatalf("remaining = %d, want 1", o.Remaining())
	}
}
