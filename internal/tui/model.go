// Package tui is the terminal front end: a menu state machine that turns key
// presses into game requests and renders their results.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/osse101/TextMaple_Go/internal/enhancement"
	"github.com/osse101/TextMaple_Go/internal/game"
	"github.com/osse101/TextMaple_Go/internal/logger"
)

// Dispatcher runs game requests. *game.Session satisfies it.
type Dispatcher interface {
	Dispatch(ctx context.Context, req game.Request) (*game.Result, error)
}

// Screen is a node of the menu state machine
type Screen int

const (
	ScreenTown Screen = iota
	ScreenStatus
	ScreenInventory
	ScreenShop
	ScreenZones
	ScreenEnhance
	ScreenEncounter
	ScreenSaves
)

type Model struct {
	ctx     context.Context
	session Dispatcher

	Screen   Screen
	Cursor   int
	Loading  bool
	Quitting bool
	Spinner  spinner.Model

	// Last results, kept for rendering
	Status    *game.StatusView
	Inventory []game.ItemView
	Shop      []game.ListingView
	Zones     []game.ZoneView
	Encounter *game.EncounterView
	Saves     *game.SavesView
	Quote     *enhancement.Quote
	Attempt   *enhancement.Result
	Last      *game.Result

	Notice string
	Err    error
}

type dispatchedMsg struct {
	req  game.Request
	next Screen
	res  *game.Result
	err  error
}

// stay keeps the current screen after a dispatch
const stay Screen = -1

// NewModel builds the UI in town
func NewModel(ctx context.Context, session Dispatcher) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		session: session,
		Spinner: s,
	}
}

// Init loads the character sheet for the town header
func (m Model) Init() tea.Cmd {
	return m.dispatch(game.Request{Command: game.CommandViewStatus}, stay)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Loading {
			return m, nil
		}
		return m.handleKey(msg.String())

	case dispatchedMsg:
		return m.apply(msg)

	case spinner.TickMsg:
		if m.Loading {
			var cmd tea.Cmd
			m.Spinner, cmd = m.Spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch m.Screen {
	case ScreenTown:
		return m.townKey(key)
	case ScreenEncounter:
		return m.encounterKey(key)
	case ScreenEnhance:
		switch key {
		case KeyConfirm:
			return m.run(game.Request{Command: game.CommandEnhance, Index: m.Cursor}, stay)
		case KeyBack:
			m.Screen = ScreenInventory
			m.Notice, m.Err = "", nil
		}
		return m, nil
	}

	switch key {
	case KeyBack:
		return m.backToTown()
	case KeyUp, KeyUpAlt:
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case KeyDown, KeyDownAlt:
		if m.Cursor < m.listLen()-1 {
			m.Cursor++
		}
		return m, nil
	}

	switch m.Screen {
	case ScreenInventory:
		switch key {
		case KeyEquip:
			return m.run(game.Request{Command: game.CommandEquipToggle, Index: m.Cursor}, stay)
		case KeyEnhance:
			return m.run(game.Request{Command: game.CommandEnhanceQuote, Index: m.Cursor}, ScreenEnhance)
		case KeySell:
			return m.run(game.Request{Command: game.CommandSell, Index: m.Cursor}, stay)
		}
	case ScreenShop:
		if key == KeyEnter {
			return m.run(game.Request{Command: game.CommandPurchase, Index: m.Cursor}, stay)
		}
	case ScreenZones:
		if key == KeyEnter && m.Cursor < len(m.Zones) {
			return m.run(game.Request{Command: game.CommandEnterZone, ZoneID: m.Zones[m.Cursor].ID}, ScreenEncounter)
		}
	}
	return m, nil
}

func (m Model) townKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case KeyQuit:
		return m.run(game.Request{Command: game.CommandQuit}, stay)
	case KeyStatus:
		return m.run(game.Request{Command: game.CommandViewStatus}, ScreenStatus)
	case KeyItems:
		return m.run(game.Request{Command: game.CommandViewInventory}, ScreenInventory)
	case KeyShop:
		return m.run(game.Request{Command: game.CommandOpenShop}, ScreenShop)
	case KeyHunt:
		return m.run(game.Request{Command: game.CommandViewZones}, ScreenZones)
	case KeyRest:
		return m.run(game.Request{Command: game.CommandRest}, stay)
	case KeyAdvance:
		return m.run(game.Request{Command: game.CommandClassChange}, stay)
	case KeySave:
		return m.run(game.Request{Command: game.CommandSave}, stay)
	case KeySaves:
		return m.run(game.Request{Command: game.CommandViewSaves}, ScreenSaves)
	}
	return m, nil
}

func (m Model) encounterKey(key string) (tea.Model, tea.Cmd) {
	if m.Encounter == nil || m.Encounter.State.Terminal() {
		return m.backToTown()
	}
	switch key {
	case KeyAttack:
		return m.run(game.Request{Command: game.CommandAttack}, stay)
	case KeyDefend:
		return m.run(game.Request{Command: game.CommandDefend}, stay)
	case KeyFlee:
		return m.run(game.Request{Command: game.CommandFlee}, stay)
	}
	return m, nil
}

// backToTown returns to the main menu and refreshes the character sheet
func (m Model) backToTown() (tea.Model, tea.Cmd) {
	m.Screen = ScreenTown
	m.Cursor = 0
	m.Notice, m.Err = "", nil
	return m.run(game.Request{Command: game.CommandViewStatus}, stay)
}

// apply folds a dispatch outcome into the model and moves between screens
func (m Model) apply(msg dispatchedMsg) (tea.Model, tea.Cmd) {
	m.Loading = false
	m.Notice = ""
	m.Err = nil

	if msg.err != nil {
		if !game.IsGameplayError(msg.err) {
			logger.FromContext(m.ctx).Error(LogMsgCommandFailed, "command", msg.req.Command.String(), "error", msg.err)
		}
		m.Err = msg.err
		return m, nil
	}

	res := msg.res
	m.Last = res
	m.Notice = res.Warning

	if res.Status != nil {
		m.Status = res.Status
	}
	if res.Inventory != nil {
		m.Inventory = res.Inventory
	}
	if res.Shop != nil {
		m.Shop = res.Shop
	}
	if res.Zones != nil {
		m.Zones = res.Zones
	}
	if res.Encounter != nil {
		m.Encounter = res.Encounter
	}
	if res.Quote != nil {
		m.Quote = res.Quote
	}
	if res.Saves != nil {
		m.Saves = res.Saves
	}

	if res.Quit {
		if res.Warning != "" {
			logger.FromContext(m.ctx).Warn(LogMsgQuitUnsaved, "warning", res.Warning)
		}
		m.Quitting = true
		return m, tea.Quit
	}
	if res.Saved && res.Warning == "" {
		m.Notice = MsgSaved
	}

	if msg.next != stay && msg.next != m.Screen {
		m.Screen = msg.next
		if msg.next != ScreenEnhance {
			m.Cursor = 0
		}
	}
	if m.Cursor >= m.listLen() && m.Cursor > 0 {
		m.Cursor = m.listLen() - 1
	}

	switch msg.req.Command {
	case game.CommandEnhanceQuote:
		if msg.next == ScreenEnhance {
			m.Attempt = nil
		}
	case game.CommandEnhance:
		// refresh the preview for the next star
		m.Attempt = res.Enhancement
		return m.run(game.Request{Command: game.CommandEnhanceQuote, Index: m.Cursor}, stay)
	}
	return m, nil
}

func (m Model) listLen() int {
	switch m.Screen {
	case ScreenInventory, ScreenEnhance:
		return len(m.Inventory)
	case ScreenShop:
		return len(m.Shop)
	case ScreenZones:
		return len(m.Zones)
	}
	return 0
}

// run sends req to the session in the background and shows the spinner until it answers
func (m Model) run(req game.Request, next Screen) (tea.Model, tea.Cmd) {
	m.Loading = true
	return m, m.dispatch(req, next)
}

func (m Model) dispatch(req game.Request, next Screen) tea.Cmd {
	ctx, session := m.ctx, m.session
	run := func() tea.Msg {
		res, err := session.Dispatch(ctx, req)
		return dispatchedMsg{req: req, next: next, res: res, err: err}
	}
	return tea.Batch(run, m.Spinner.Tick)
}

// Run starts the program on the terminal and blocks until the player quits
// or ctx is cancelled.
func Run(ctx context.Context, session Dispatcher, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewModel(ctx, session), opts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
