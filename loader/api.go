package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the scenario constructors as Lua globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	// Hero "id" { ... } — curried: Hero("id") returns a function that
	// takes a table.
	L.SetGlobal("Hero", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.heroes = append(coll.heroes, rawHero{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Boss "id" { ... } — curried. A scenario defines exactly one.
	L.SetGlobal("Boss", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.bosses = append(coll.bosses, rawBoss{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Item "id" { ... } — curried.
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.items = append(coll.items, rawItem{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}
