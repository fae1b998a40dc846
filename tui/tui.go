package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/nathoo/raidcore/engine"
	"github.com/nathoo/raidcore/engine/character"
	"github.com/nathoo/raidcore/engine/item"
	"github.com/nathoo/raidcore/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text    string
	kind    lineKind
	isInput bool // echoed player input
	isMenu  bool // prompt and menu lines
}

// promptMode tracks what the input line currently answers.
type promptMode int

const (
	promptNone promptMode = iota
	promptAction
	promptItem
	promptConfirm
)

// Model is the Bubble Tea model for a RaidCore battle.
type Model struct {
	battle *engine.Battle
	bridge *Bridge

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated battle lines (unstyled, for re-wrapping)

	mode         promptMode
	hero         *character.Character // hero awaiting a decision
	items        []item.Entry         // listing shown while picking an item
	actionReply  chan<- types.Decision
	confirmReply chan<- bool

	done    bool
	outcome types.Outcome

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a TUI model wired to the given battle and bridge.
func New(b *engine.Battle, bridge *Bridge, title string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 64
	ti.PromptStyle = styleInputPrompt

	m := Model{
		battle:  b,
		bridge:  bridge,
		input:   ti,
		history: NewHistory(100),
	}
	if title != "" {
		m.rawLines = append(m.rawLines, rawLine{text: title, kind: kindBanner}, rawLine{})
	}
	return m
}

// Run plays one battle in the terminal UI. The battle runs on its own
// goroutine; decisions and narration cross the bridge. The finished
// battle is returned so the caller can persist its log and result.
func Run(party []*character.Character, boss *character.Boss, opts engine.Options, title string) (*engine.Battle, types.Outcome, error) {
	bridge := newBridge()
	opts.Provider = bridge
	opts.Reporter = bridge
	b := engine.NewBattle(party, boss, opts)

	p := tea.NewProgram(New(b, bridge, title), tea.WithAltScreen(), tea.WithMouseCellMotion())

	var outcome types.Outcome
	g := new(errgroup.Group)
	g.Go(func() error {
		outcome = b.Run()
		bridge.finish(outcome)
		return nil
	})

	_, err := p.Run()
	bridge.close()
	if werr := g.Wait(); werr != nil && err == nil {
		err = werr
	}
	return b, outcome, err
}

// Init arms the input cursor and the bridge listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listen())
}

// listen waits for the next bridge event. A closed bridge yields nil,
// which Bubble Tea ignores.
func (m Model) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.bridge.events:
			return msg
		case <-m.bridge.quit:
			return nil
		}
	}
}

// Update handles messages (key presses, window resize, bridge events).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case sayMsg:
		m = m.appendBattleLine(msg.line)
		return m, m.listen()

	case actionPromptMsg:
		m.mode = promptAction
		m.hero = msg.hero
		m.actionReply = msg.reply
		m = m.appendMenu(
			"",
			fmt.Sprintf("Hero turn: %s (HP %.1f/%.1f, MP %.1f/%.1f)",
				msg.hero.Name, msg.hero.HP.Get(), msg.hero.MaxHP, msg.hero.MP.Get(), msg.hero.MaxMP),
			fmt.Sprintf("  1) Basic attack   2) Use skill (%s)   3) Use item   0) Flee", msg.hero.Skill.Name),
		)
		return m, m.listen()

	case confirmPromptMsg:
		m.mode = promptConfirm
		m.confirmReply = msg.reply
		m = m.appendMenu("Really flee the battle? (yes/no)")
		return m, m.listen()

	case battleDoneMsg:
		m.done = true
		m.outcome = msg.outcome
		m.mode = promptNone
		m = m.appendMenu("", "Press Enter to leave the battlefield.")
		return m, nil
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line against the current
// prompt mode.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if m.mode == promptNone {
		if m.done {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if input != "" {
		m.history.Push(input)
		m.history.ResetCursor()
	}

	switch m.mode {
	case promptAction:
		return m.handleAction(input)
	case promptItem:
		return m.handleItem(input)
	default:
		return m.handleConfirm(input)
	}
}

// handleAction resolves the main action menu.
func (m Model) handleAction(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		return m, nil
	}
	m = m.appendInput(input)

	switch strings.ToLower(input) {
	case "1", "attack", "a":
		return m.reply(types.Decision{Kind: types.ActionAttack})
	case "2", "skill", "s":
		return m.reply(types.Decision{Kind: types.ActionSkill})
	case "3", "item", "i", "use":
		entries := m.hero.Inventory.List()
		if len(entries) == 0 {
			m = m.appendMenu("No items held. Attacking instead.")
			return m.reply(types.Decision{Kind: types.ActionAttack})
		}
		m.items = entries
		m.mode = promptItem
		lines := make([]string, 0, len(entries)+1)
		for i, e := range entries {
			lines = append(lines, fmt.Sprintf("  %d) %s x%d (%s)", i+1, e.Item.Name, e.Count, e.Item.Description))
		}
		lines = append(lines, "Pick an item by number or name (empty cancels).")
		m = m.appendMenu(lines...)
		return m, nil
	case "0", "exit", "flee", "quit":
		return m.reply(types.Decision{Kind: types.ActionExit})
	default:
		m = m.appendMenu("Invalid choice. Attacking instead.")
		return m.reply(types.Decision{Kind: types.ActionAttack})
	}
}

// handleItem resolves the item picker. An empty line cancels; the turn
// is still spent.
func (m Model) handleItem(input string) (tea.Model, tea.Cmd) {
	m = m.appendInput(input)

	if input == "" {
		m = m.appendMenu("No item chosen. The turn is skipped.")
		return m.reply(types.Decision{Kind: types.ActionPass})
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(m.items) {
			return m.reply(types.Decision{Kind: types.ActionUseItem, Item: m.items[n-1].Item.Name})
		}
		m = m.appendMenu("Invalid item selection. The turn is skipped.")
		return m.reply(types.Decision{Kind: types.ActionPass})
	}

	for _, e := range m.items {
		if strings.EqualFold(e.Item.Name, input) {
			return m.reply(types.Decision{Kind: types.ActionUseItem, Item: e.Item.Name})
		}
	}
	m = m.appendMenu("Invalid item selection. The turn is skipped.")
	return m.reply(types.Decision{Kind: types.ActionPass})
}

// handleConfirm resolves the flee confirmation.
func (m Model) handleConfirm(input string) (tea.Model, tea.Cmd) {
	m = m.appendInput(input)

	confirmed := false
	switch strings.ToLower(input) {
	case "yes", "y":
		confirmed = true
	}
	if m.confirmReply != nil {
		m.confirmReply <- confirmed
		m.confirmReply = nil
	}
	m.mode = promptNone
	return m, nil
}

// reply answers the pending action prompt and returns to passive mode.
func (m Model) reply(d types.Decision) (tea.Model, tea.Cmd) {
	if m.actionReply != nil {
		m.actionReply <- d
		m.actionReply = nil
	}
	m.mode = promptNone
	m.hero = nil
	m.items = nil
	return m, nil
}

// appendBattleLine adds one narration line, with a blank line ahead of
// banners so rounds stay visually separated.
func (m Model) appendBattleLine(line string) Model {
	kind := classifyLine(line)
	if kind == kindBanner && len(m.rawLines) > 0 {
		m.rawLines = append(m.rawLines, rawLine{})
	}
	m.rawLines = append(m.rawLines, rawLine{text: line, kind: kind})
	m.refreshViewport()
	return m
}

// appendMenu adds prompt or menu lines.
func (m Model) appendMenu(lines ...string) Model {
	for _, line := range lines {
		m.rawLines = append(m.rawLines, rawLine{text: line, isMenu: line != ""})
	}
	m.refreshViewport()
	return m
}

// appendInput echoes a submitted input line.
func (m Model) appendInput(input string) Model {
	if input == "" {
		return m
	}
	m.rawLines = append(m.rawLines, rawLine{text: "> " + input, isInput: true})
	m.refreshViewport()
	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isMenu:
			styled = append(styled, styleMenu.Render(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries. Preserves existing newlines within the text.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
