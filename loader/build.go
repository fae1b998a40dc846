package loader

import (
	"fmt"
	"sort"

	"github.com/nathoo/raidcore/engine/character"
	"github.com/nathoo/raidcore/engine/item"
	"github.com/nathoo/raidcore/types"
)

// Scenario is a fully compiled encounter: metadata, the party, the boss,
// and the item catalog heroes draw their inventories from.
type Scenario struct {
	Game   types.GameDef
	Heroes []types.HeroDef
	Boss   types.BossDef
	Items  map[string]types.ItemDef
}

// BuildParty constructs the party in scenario order and stocks each
// hero's inventory. Items are granted in sorted ID order so two builds
// of the same scenario are identical.
func (sc *Scenario) BuildParty() ([]*character.Character, error) {
	party := make([]*character.Character, 0, len(sc.Heroes))
	for _, def := range sc.Heroes {
		hero, err := character.NewHero(def)
		if err != nil {
			return nil, fmt.Errorf("building hero %q: %w", def.ID, err)
		}

		ids := make([]string, 0, len(def.Items))
		for id := range def.Items {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			itemDef, ok := sc.Items[id]
			if !ok {
				return nil, fmt.Errorf("hero %q references undefined item %q", def.ID, id)
			}
			hero.Inventory.Add(toItem(itemDef), def.Items[id])
		}
		party = append(party, hero)
	}
	return party, nil
}

// BuildBoss constructs the encounter boss.
func (sc *Scenario) BuildBoss() *character.Boss {
	return character.NewBoss(sc.Boss)
}

func toItem(def types.ItemDef) item.Item {
	name := def.Name
	if name == "" {
		name = def.ID
	}
	return item.Item{
		Name:        name,
		Description: def.Description,
		HPRestore:   def.HPRestore,
		MPRestore:   def.MPRestore,
	}
}

// Default returns the built-in encounter used when no scenario directory
// is given: the stock three-hero party against the dragon. Hero stats
// come from the class bases; only the roster and inventories are pinned
// here.
func Default() *Scenario {
	return &Scenario{
		Game: types.GameDef{
			Title:     "The Dragon's Lair",
			Author:    "raidcore",
			Version:   "1.0",
			MaxRounds: 50,
		},
		Heroes: []types.HeroDef{
			{
				ID: "legolas", Name: "Legolas", Class: types.ClassWarrior,
				Items: map[string]int{"life_elixir": 1},
			},
			{
				ID: "gandalf", Name: "Gandalf", Class: types.ClassMage,
				Items: map[string]int{"life_elixir": 1},
			},
			{
				ID: "aragorn", Name: "Aragorn", Class: types.ClassHealer,
				Items: map[string]int{"mana_draught": 1},
			},
		},
		Boss: types.BossDef{
			ID: "dragon", Name: "Fire-Breathing Dragon",
			Taunts: map[int]string{
				2: "You scratch my scales? I shall show you fire!",
				3: "ENOUGH! This lair will be your tomb!",
			},
		},
		Items: map[string]types.ItemDef{
			"life_elixir": {
				ID: "life_elixir", Name: "Life Elixir",
				Description: "Restores 50 HP.",
				HPRestore:   50,
			},
			"mana_draught": {
				ID: "mana_draught", Name: "Mana Draught",
				Description: "Restores 40 MP.",
				MPRestore:   40,
			},
		},
	}
}
