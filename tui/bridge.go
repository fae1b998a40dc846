package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/raidcore/engine"
	"github.com/nathoo/raidcore/engine/character"
	"github.com/nathoo/raidcore/types"
)

// sayMsg carries one narration line into the Update loop.
type sayMsg struct{ line string }

// actionPromptMsg asks the player to pick an action for hero.
type actionPromptMsg struct {
	hero  *character.Character
	reply chan<- types.Decision
}

// confirmPromptMsg double-checks a flee request.
type confirmPromptMsg struct{ reply chan<- bool }

// battleDoneMsg reports the finished battle's outcome.
type battleDoneMsg struct{ outcome types.Outcome }

// Bridge connects a battle running on its own goroutine to the Bubble
// Tea event loop. The battle blocks inside Decide and ConfirmExit until
// the player answers; closing the bridge answers every pending and
// future query with a flee so the battle goroutine always terminates.
type Bridge struct {
	events    chan tea.Msg
	quit      chan struct{}
	closeOnce sync.Once
}

func newBridge() *Bridge {
	return &Bridge{
		events: make(chan tea.Msg, 64),
		quit:   make(chan struct{}),
	}
}

// Say forwards a narration line to the UI.
func (br *Bridge) Say(line string) {
	br.send(sayMsg{line: line})
}

// Decide asks the UI for hero's action and blocks until it answers.
func (br *Bridge) Decide(hero *character.Character, _ *engine.Battle) types.Decision {
	reply := make(chan types.Decision, 1)
	if !br.send(actionPromptMsg{hero: hero, reply: reply}) {
		return types.Decision{Kind: types.ActionExit}
	}
	select {
	case d := <-reply:
		return d
	case <-br.quit:
		return types.Decision{Kind: types.ActionExit}
	}
}

// ConfirmExit asks the UI to confirm fleeing the battle.
func (br *Bridge) ConfirmExit() bool {
	reply := make(chan bool, 1)
	if !br.send(confirmPromptMsg{reply: reply}) {
		return true
	}
	select {
	case ok := <-reply:
		return ok
	case <-br.quit:
		return true
	}
}

// finish reports the battle outcome to the UI.
func (br *Bridge) finish(outcome types.Outcome) {
	br.send(battleDoneMsg{outcome: outcome})
}

// send delivers msg unless the bridge is closed. It reports whether the
// message went through.
func (br *Bridge) send(msg tea.Msg) bool {
	select {
	case br.events <- msg:
		return true
	case <-br.quit:
		return false
	}
}

// close unblocks every pending bridge operation. Safe to call more than
// once.
func (br *Bridge) close() {
	br.closeOnce.Do(func() { close(br.quit) })
}

var (
	_ engine.DecisionProvider = (*Bridge)(nil)
	_ character.Reporter      = (*Bridge)(nil)
)
