// Package loader loads Lua scenario content into Go structs at startup.
// The Lua VM is discarded after loading — zero Lua at runtime.
package loader

import (
	"fmt"
	"sort"

	"github.com/nathoo/raidcore/types"
	lua "github.com/yuin/gopher-lua"
)

// rawHero holds a hero table before compilation.
type rawHero struct {
	id    string
	table *lua.LTable
}

// rawBoss holds a boss table before compilation.
type rawBoss struct {
	id    string
	table *lua.LTable
}

// rawItem holds an item table before compilation.
type rawItem struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// compile converts all collected Lua data into a Scenario.
func compile(coll *collector) (*Scenario, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	switch len(coll.bosses) {
	case 0:
		return nil, fmt.Errorf("no Boss{} definition found")
	case 1:
	default:
		return nil, fmt.Errorf("scenario defines %d bosses, want exactly one", len(coll.bosses))
	}

	sc := &Scenario{
		Game:  compileGame(coll.game),
		Boss:  compileBoss(coll.bosses[0]),
		Items: map[string]types.ItemDef{},
	}
	for _, raw := range coll.heroes {
		sc.Heroes = append(sc.Heroes, compileHero(raw))
	}
	for _, raw := range coll.items {
		it := compileItem(raw)
		sc.Items[it.ID] = it
	}
	return sc, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:     getString(tbl, "title"),
		Author:    getString(tbl, "author"),
		Version:   getString(tbl, "version"),
		MaxRounds: getInt(tbl, "max_rounds"),
	}
}

func compileHero(raw rawHero) types.HeroDef {
	tbl := raw.table
	def := types.HeroDef{
		ID:           raw.id,
		Name:         getString(tbl, "name"),
		Class:        types.Class(getString(tbl, "class")),
		Level:        getInt(tbl, "level"),
		MaxHP:        getNumber(tbl, "max_hp"),
		MaxMP:        getNumber(tbl, "max_mp"),
		Strength:     getNumber(tbl, "strength"),
		Agility:      getNumber(tbl, "agility"),
		Intelligence: getNumber(tbl, "intelligence"),
		CritChance:   getNumber(tbl, "crit_chance"),
	}
	if skillTbl := getTable(tbl, "skill"); skillTbl != nil {
		def.Skill = compileSkill(skillTbl)
	}
	if itemsTbl := getTable(tbl, "items"); itemsTbl != nil {
		def.Items = compileItemCounts(itemsTbl)
	}
	return def
}

func compileSkill(tbl *lua.LTable) types.SkillDef {
	return types.SkillDef{
		Name:     getString(tbl, "name"),
		Cost:     getInt(tbl, "cost"),
		Cooldown: getInt(tbl, "cooldown"),
		Power:    getNumber(tbl, "power"),
	}
}

// compileItemCounts reads an items table of the form
// { life_elixir = 2, mana_draught = 1 }.
func compileItemCounts(tbl *lua.LTable) map[string]int {
	counts := map[string]int{}
	tbl.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			return
		}
		if n, ok := v.(lua.LNumber); ok {
			counts[string(ks)] = int(n)
		}
	})
	return counts
}

func compileBoss(raw rawBoss) types.BossDef {
	tbl := raw.table
	def := types.BossDef{
		ID:           raw.id,
		Name:         getString(tbl, "name"),
		Level:        getInt(tbl, "level"),
		MaxHP:        getNumber(tbl, "max_hp"),
		MaxMP:        getNumber(tbl, "max_mp"),
		Strength:     getNumber(tbl, "strength"),
		Agility:      getNumber(tbl, "agility"),
		Intelligence: getNumber(tbl, "intelligence"),
		CritChance:   getNumber(tbl, "crit_chance"),
	}
	if tauntsTbl := getTable(tbl, "taunts"); tauntsTbl != nil {
		def.Taunts = compileTaunts(tauntsTbl)
	}
	return def
}

// compileTaunts reads a taunts table keyed by phase number:
// { [2] = "...", [3] = "..." }.
func compileTaunts(tbl *lua.LTable) map[int]string {
	taunts := map[int]string{}
	tbl.ForEach(func(k, v lua.LValue) {
		kn, ok := k.(lua.LNumber)
		if !ok {
			return
		}
		if vs, ok := v.(lua.LString); ok {
			taunts[int(kn)] = string(vs)
		}
	})
	return taunts
}

func compileItem(raw rawItem) types.ItemDef {
	tbl := raw.table
	return types.ItemDef{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		HPRestore:   getNumber(tbl, "hp_restore"),
		MPRestore:   getNumber(tbl, "mp_restore"),
	}
}

// sortedLuaFiles returns .lua files with scenario.lua first and the rest
// sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var scenarioFile string
	var others []string
	for _, f := range files {
		if f == "scenario.lua" {
			scenarioFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if scenarioFile != "" {
		return append([]string{scenarioFile}, others...)
	}
	return others
}
