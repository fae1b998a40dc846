// Package engine runs the battle loop: it owns turn order, the
// retaliation rule, round bookkeeping, and the split between broadcast
// lines (logged and displayed) and narration (displayed only).
package engine

import (
	"fmt"

	"github.com/nathoo/raidcore/engine/battlelog"
	"github.com/nathoo/raidcore/engine/character"
	"github.com/nathoo/raidcore/engine/rng"
	"github.com/nathoo/raidcore/types"
)

// DefaultMaxRounds caps a battle when neither the scenario nor the
// configuration says otherwise.
const DefaultMaxRounds = 50

// DecisionProvider supplies hero decisions. The CLI and TUI implement
// it interactively; tests script it.
type DecisionProvider interface {
	// Decide picks the action for hero's turn.
	Decide(hero *character.Character, b *Battle) types.Decision

	// ConfirmExit is asked once when a Decide returned ActionExit. A
	// false answer turns the exit into a no-op turn.
	ConfirmExit() bool
}

// autoAttack is the fallback provider: every hero swings every turn.
// It drives unattended battles and keeps NewBattle total.
type autoAttack struct{}

func (autoAttack) Decide(*character.Character, *Battle) types.Decision {
	return types.Decision{Kind: types.ActionAttack}
}

func (autoAttack) ConfirmExit() bool { return true }

// Options configures a battle.
type Options struct {
	Seed      int64
	MaxRounds int              // <= 0 means DefaultMaxRounds
	Provider  DecisionProvider // nil means every hero auto-attacks
	Reporter  character.Reporter
}

// Battle is one encounter between a party and a boss.
type Battle struct {
	Party []*character.Character
	Boss  *character.Boss
	Round int
	RNG   *rng.RNG
	Log   *battlelog.Log

	maxRounds int
	provider  DecisionProvider
	rep       character.Reporter
	lastPhase character.Phase
	aborted   bool
}

// NewBattle wires a battle together. The reporter is attached to every
// combatant so their narration reaches the same front-end.
func NewBattle(party []*character.Character, boss *character.Boss, opts Options) *Battle {
	maxRounds := opts.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	provider := opts.Provider
	if provider == nil {
		provider = autoAttack{}
	}

	b := &Battle{
		Party:     party,
		Boss:      boss,
		RNG:       rng.New(opts.Seed),
		Log:       battlelog.New(),
		maxRounds: maxRounds,
		provider:  provider,
		rep:       opts.Reporter,
	}
	for _, h := range party {
		h.SetReporter(opts.Reporter)
	}
	boss.SetReporter(opts.Reporter)
	return b
}

// broadcast records a battle-level line and shows it.
func (b *Battle) broadcast(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	b.Log.Record(msg)
	if b.rep != nil {
		b.rep.Say(msg)
	}
}

// narrate shows a line without recording it.
func (b *Battle) narrate(format string, args ...any) {
	if b.rep != nil {
		b.rep.Say(fmt.Sprintf(format, args...))
	}
}

// Combatants returns the party followed by the boss. The order seeds the
// turn-order shuffle, so it is part of the deterministic contract.
func (b *Battle) Combatants() []*character.Character {
	out := make([]*character.Character, 0, len(b.Party)+1)
	out = append(out, b.Party...)
	return append(out, &b.Boss.Character)
}

// Run plays rounds until the boss falls, the party is wiped, the party
// flees, or the round cap runs out. The cap counts as a boss victory.
func (b *Battle) Run() types.Outcome {
	b.broadcast("The battle begins!")

	b.Round = 1
	for b.Round <= b.maxRounds && b.Boss.Alive() && b.partyAlive() {
		if b.playRound() {
			break
		}
		b.Round++
	}

	outcome := b.outcome()
	switch outcome {
	case types.OutcomePartyVictory:
		b.broadcast("*** The party is victorious! ***")
	case types.OutcomeBossVictory:
		b.broadcast("*** The boss stands victorious... ***")
	}
	return outcome
}

// playRound resolves one full round. It reports true when the party
// confirmed an early exit; cooldowns do not tick on that path.
func (b *Battle) playRound() (aborted bool) {
	b.Log.Record(fmt.Sprintf("--- Round %d begins ---", b.Round))
	defer b.Log.Record(fmt.Sprintf("--- Round %d ends ---", b.Round))

	phase := b.Boss.CurrentPhase()
	b.broadcast("*** Round %d (boss phase %d) ***", b.Round, phase)
	b.announcePhase(phase)

	order := NewTurnOrder(b.Combatants(), b.RNG)
	for {
		actor, ok := order.Next()
		if !ok {
			break
		}
		actor.StartTurnEffects()
		if !actor.Alive() {
			continue
		}

		if actor == &b.Boss.Character {
			b.Boss.Act(b.Party, b.RNG)
			if !b.partyAlive() {
				break
			}
			continue
		}

		bossHPBefore := b.Boss.HP.Get()
		if b.heroTurn(actor) {
			b.aborted = true
			b.broadcast("The party flees. The battle ends early.")
			return true
		}
		// The boss strikes back whenever a hero turn cost it hp. Damage
		// soaked entirely by its shield provokes nothing.
		if b.Boss.Alive() && b.Boss.HP.Get() < bossHPBefore {
			living := character.Living(b.Party)
			victim := living[b.RNG.Intn(len(living))]
			b.broadcast(">>> %s retaliates against %s!", b.Boss.Name, victim.Name)
			b.Boss.Smash(victim)
		}
		if !b.Boss.Alive() || !b.partyAlive() {
			break
		}
	}

	for _, c := range b.Combatants() {
		c.TickCooldowns()
	}
	return false
}

// announcePhase speaks the boss taunt the first time a phase shows up at
// a round header.
func (b *Battle) announcePhase(phase character.Phase) {
	if phase == b.lastPhase {
		return
	}
	b.lastPhase = phase
	if line, ok := b.Boss.Taunts[int(phase)]; ok {
		b.broadcast("%s: %q", b.Boss.Name, line)
	}
}

// heroTurn resolves one hero decision. It reports true when the hero
// confirmed fleeing the battle.
func (b *Battle) heroTurn(hero *character.Character) bool {
	dec := b.provider.Decide(hero, b)
	switch dec.Kind {
	case types.ActionExit:
		// An unconfirmed exit burns the turn silently.
		return b.provider.ConfirmExit()
	case types.ActionSkill:
		hero.UseSkill(&b.Boss.Character, b.Party, b.RNG)
	case types.ActionUseItem:
		if hero.Inventory.Has(dec.Item) {
			b.narrate("%s uses %s.", hero.Name, dec.Item)
			hero.UseItem(dec.Item, hero)
		} else {
			b.narrate("%s could not use %s.", hero.Name, dec.Item)
		}
	case types.ActionPass:
		// Chosen when an item pick was cancelled; the turn is spent.
	default:
		hero.BasicAttack(&b.Boss.Character, b.RNG)
	}
	return false
}

func (b *Battle) partyAlive() bool {
	for _, h := range b.Party {
		if h.Alive() {
			return true
		}
	}
	return false
}

func (b *Battle) outcome() types.Outcome {
	switch {
	case b.aborted:
		return types.OutcomeAborted
	case !b.Boss.Alive() && b.partyAlive():
		return types.OutcomePartyVictory
	default:
		return types.OutcomeBossVictory
	}
}

// Survivors counts the party members still standing.
func (b *Battle) Survivors() int {
	return len(character.Living(b.Party))
}

// RoundsPlayed reports how many rounds actually ran. An aborted battle
// counts its final, partial round.
func (b *Battle) RoundsPlayed() int {
	if b.aborted {
		return b.Round
	}
	if b.Round > 0 {
		return b.Round - 1
	}
	return 0
}
