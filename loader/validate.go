package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/nathoo/raidcore/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Hero classes the character builder accepts.
var validClasses = map[types.Class]bool{
	types.ClassWarrior: true,
	types.ClassMage:    true,
	types.ClassHealer:  true,
}

// validate checks the compiled scenario for referential integrity and
// consistency. Warnings go to stderr; errors fail the load.
func validate(sc *Scenario) error {
	ve := &ValidationError{}

	// Game metadata.
	if sc.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}
	if sc.Game.MaxRounds < 0 {
		ve.Errors = append(ve.Errors, "Game.max_rounds must not be negative")
	}

	// Party.
	if len(sc.Heroes) == 0 {
		ve.Errors = append(ve.Errors, "scenario defines no heroes")
	}
	seen := map[string]bool{}
	for _, h := range sc.Heroes {
		if seen[h.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate hero ID %q", h.ID))
		}
		seen[h.ID] = true
		validateHero(h, sc, ve)
	}

	// Boss.
	validateStats(fmt.Sprintf("boss %q", sc.Boss.ID), statFields(sc.Boss.MaxHP,
		sc.Boss.MaxMP, sc.Boss.Strength, sc.Boss.Agility, sc.Boss.Intelligence), ve)
	if sc.Boss.CritChance < 0 || sc.Boss.CritChance > 1 {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"boss %q crit_chance %v is outside [0, 1]", sc.Boss.ID, sc.Boss.CritChance))
	}
	for phase := range sc.Boss.Taunts {
		if phase < 1 || phase > 3 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"boss %q taunt for phase %d will never play (phases run 1..3)", sc.Boss.ID, phase))
		}
	}

	// Items.
	granted := map[string]bool{}
	for _, h := range sc.Heroes {
		for id := range h.Items {
			granted[id] = true
		}
	}
	for id, it := range sc.Items {
		if it.HPRestore == 0 && it.MPRestore == 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"item %q restores neither HP nor MP", id))
		}
		if !granted[id] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"item %q is never granted to a hero", id))
		}
	}

	// Print warnings to stderr.
	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateHero(h types.HeroDef, sc *Scenario, ve *ValidationError) {
	who := fmt.Sprintf("hero %q", h.ID)

	if !validClasses[h.Class] {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s has unknown class %q", who, h.Class))
	}
	validateStats(who, statFields(h.MaxHP, h.MaxMP, h.Strength, h.Agility, h.Intelligence), ve)
	if h.Level < 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s has negative level", who))
	}
	if h.CritChance < 0 || h.CritChance > 1 {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"%s crit_chance %v is outside [0, 1]", who, h.CritChance))
	}
	if h.Skill.Name != "" {
		if h.Skill.Cost < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s skill has negative cost", who))
		}
		if h.Skill.Cooldown < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s skill has negative cooldown", who))
		}
	}

	for id, count := range h.Items {
		if _, ok := sc.Items[id]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"%s starts with undefined item %q", who, id))
		}
		if count <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"%s item %q count must be positive", who, id))
		}
	}
}

type statField struct {
	name  string
	value float64
}

func statFields(hp, mp, str, agi, intel float64) []statField {
	return []statField{
		{"max_hp", hp}, {"max_mp", mp},
		{"strength", str}, {"agility", agi}, {"intelligence", intel},
	}
}

func validateStats(who string, fields []statField, ve *ValidationError) {
	for _, f := range fields {
		if f.value < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"%s has negative %s", who, f.name))
		}
	}
}
