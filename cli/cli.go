// Package cli provides plain-terminal battle interaction: it prints
// narration lines and reads a numbered menu choice for each hero turn.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nathoo/raidcore/engine"
	"github.com/nathoo/raidcore/engine/character"
	"github.com/nathoo/raidcore/types"
)

// CLI reads decisions from In and prints narration to Out. It serves a
// battle as both its reporter and its decision provider.
type CLI struct {
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)

	scanner *bufio.Scanner
}

// New creates a CLI on stdin/stdout.
func New() *CLI {
	return &CLI{In: os.Stdin, Out: os.Stdout}
}

// Say prints one narration line.
func (c *CLI) Say(line string) {
	c.printLine(line)
}

// Decide shows the action menu for hero and reads one choice. Empty
// lines re-prompt; EOF flees the battle so script files end cleanly.
func (c *CLI) Decide(hero *character.Character, _ *engine.Battle) types.Decision {
	c.printLine("")
	c.printLine(fmt.Sprintf("Hero turn: %s (HP %.1f/%.1f, MP %.1f/%.1f)",
		hero.Name, hero.HP.Get(), hero.MaxHP, hero.MP.Get(), hero.MaxMP))
	c.printLine("  1) Basic attack")
	c.printLine(fmt.Sprintf("  2) Use skill (%s)", hero.Skill.Name))
	c.printLine("  3) Use item")
	c.printLine("  0) Flee the battle")

	for {
		c.print("> ")
		input, ok := c.readLine()
		if !ok {
			return types.Decision{Kind: types.ActionExit}
		}
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "1", "attack", "a":
			return types.Decision{Kind: types.ActionAttack}
		case "2", "skill", "s":
			return types.Decision{Kind: types.ActionSkill}
		case "3", "item", "i", "use":
			return c.pickItem(hero)
		case "0", "exit", "flee", "quit":
			return types.Decision{Kind: types.ActionExit}
		default:
			c.printLine("Invalid choice. Attacking instead.")
			return types.Decision{Kind: types.ActionAttack}
		}
	}
}

// ConfirmExit double-checks a flee request. EOF counts as yes so a
// script that ends mid-battle exits instead of hanging.
func (c *CLI) ConfirmExit() bool {
	c.print("Really flee the battle? (yes/no): ")
	input, ok := c.readLine()
	if !ok {
		return true
	}
	switch strings.ToLower(input) {
	case "yes", "y":
		return true
	default:
		return false
	}
}

// pickItem lists the hero's inventory and reads a selection by number
// or name. An empty line cancels; the turn is still spent.
func (c *CLI) pickItem(hero *character.Character) types.Decision {
	entries := hero.Inventory.List()
	if len(entries) == 0 {
		c.printLine("No items held. Attacking instead.")
		return types.Decision{Kind: types.ActionAttack}
	}

	for i, e := range entries {
		c.printLine(fmt.Sprintf("  %d) %s x%d (%s)", i+1, e.Item.Name, e.Count, e.Item.Description))
	}
	c.print("item> ")

	input, ok := c.readLine()
	if !ok || input == "" {
		c.printLine("No item chosen. The turn is skipped.")
		return types.Decision{Kind: types.ActionPass}
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(entries) {
			return types.Decision{Kind: types.ActionUseItem, Item: entries[n-1].Item.Name}
		}
		c.printLine("Invalid item selection. The turn is skipped.")
		return types.Decision{Kind: types.ActionPass}
	}

	for _, e := range entries {
		if strings.EqualFold(e.Item.Name, input) {
			return types.Decision{Kind: types.ActionUseItem, Item: e.Item.Name}
		}
	}
	c.printLine("Invalid item selection. The turn is skipped.")
	return types.Decision{Kind: types.ActionPass}
}

// readLine reads the next input line, trimmed. Comment lines are
// skipped (for script files). ok is false at EOF.
func (c *CLI) readLine() (string, bool) {
	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.In)
	}
	for c.scanner.Scan() {
		line := strings.TrimSpace(c.scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(line)
		}
		return line, true
	}
	return "", false
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

var (
	_ engine.DecisionProvider = (*CLI)(nil)
	_ character.Reporter      = (*CLI)(nil)
)
