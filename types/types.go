// Package types defines the shared data structures for the RaidCore engine.
// This package contains plain definitions and carries no battle logic.
package types

// Class identifies a hero variant.
type Class string

// Hero classes recognized by the scenario loader and character builder.
const (
	ClassWarrior Class = "warrior"
	ClassMage    Class = "mage"
	ClassHealer  Class = "healer"
)

// ActionKind is the action a combatant resolves on its turn.
type ActionKind string

// Actions a decision provider (or boss strategy) may select.
const (
	ActionAttack  ActionKind = "attack"
	ActionSkill   ActionKind = "skill"
	ActionUseItem ActionKind = "item"
	ActionExit    ActionKind = "exit"
	ActionPass    ActionKind = "pass"
)

// Decision is one hero turn choice supplied by a decision provider.
// Item is the inventory key when Kind is ActionUseItem.
type Decision struct {
	Kind ActionKind
	Item string
}

// Outcome is the terminal result of a battle.
type Outcome int

// Battle outcomes.
const (
	OutcomeAborted Outcome = iota // confirmed early exit, no winner
	OutcomePartyVictory
	OutcomeBossVictory
)

// String returns the outcome label used in logs and the archive.
func (o Outcome) String() string {
	switch o {
	case OutcomePartyVictory:
		return "party_victory"
	case OutcomeBossVictory:
		return "boss_victory"
	default:
		return "aborted"
	}
}

// SkillDef describes a signature skill from a scenario.
type SkillDef struct {
	Name     string
	Cost     int
	Cooldown int
	Power    float64 // multiplier over the governing stat
}

// HeroDef is the base definition of a party member.
type HeroDef struct {
	ID           string
	Name         string
	Class        Class
	Level        int
	MaxHP        float64
	MaxMP        float64
	Strength     float64
	Agility      float64
	Intelligence float64
	CritChance   float64
	Skill        SkillDef
	Items        map[string]int // item ID → starting count
}

// BossDef is the base definition of the encounter boss.
type BossDef struct {
	ID           string
	Name         string
	Level        int
	MaxHP        float64
	MaxMP        float64
	Strength     float64
	Agility      float64
	Intelligence float64
	CritChance   float64
	Taunts       map[int]string // phase number (1..3) → line spoken on entry
}

// ItemDef is an immutable consumable definition.
type ItemDef struct {
	ID          string
	Name        string
	Description string
	HPRestore   float64
	MPRestore   float64
}

// GameDef holds scenario metadata from Lua.
type GameDef struct {
	Title     string
	Author    string
	Version   string
	MaxRounds int
}

// Record is one battle log entry. The msg key matches the persisted
// document shape consumed by downstream tooling.
type Record struct {
	Msg string `json:"msg"`
}

// BattleResult summarizes a finished battle for the archive.
type BattleResult struct {
	Seed      int64
	Rounds    int
	Outcome   Outcome
	Survivors int
	LogPath   string
}
