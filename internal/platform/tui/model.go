package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Options configures a game session.
type Options struct {
	Config  config.TetrisConfig     // loaded config, before any preset
	Preset  config.DifficultyPreset // initial preset; empty means normal
	Player  string                  // name recorded with results
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Model is the Bubble Tea model for one game session. Update is the only
// place the game is mutated, so gravity ticks, keys and pointer samples
// are applied strictly one after another.
type Model struct {
	game   *tetris.Game
	router *tetris.Router
	opts   Options
	setup  Setup
	cfg    config.TetrisConfig // opts.Config with the setup applied

	keys   KeyMap
	help   help.Model
	hold   softDropHold
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	clock  func() time.Time

	width, height int

	armedGen     uint64 // generation of the gravity tick in flight
	flushPending bool
	highScore    int
	roundStart   time.Time
	saved        bool

	scores   *ScoreboardModel
	options  *SetupModel
	quitting bool
}

// NewModel creates a game session. The round starts on the first start
// command.
func NewModel(opts Options, store *storage.Store) (Model, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	if opts.Preset == "" {
		opts.Preset = config.DifficultyNormal
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	setup := Setup{Preset: opts.Preset, Randomizer: opts.Config.Randomizer}
	cfg, sel, err := sessionConfig(opts.Config, setup, opts.Runtime.Seed)
	if err != nil {
		return Model{}, err
	}
	game := tetris.New(cfg.Engine(), tetris.DefaultCatalog(), sel)

	m := Model{
		game:   game,
		router: tetris.NewRouter(game),
		opts:   opts,
		setup:  setup,
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		store:  store,
		logger: logger,
		clock:  time.Now,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		} else {
			logger.Warn("could not load high score", "error", err)
		}
	}
	return m, nil
}

// sessionConfig applies a setup to the loaded config and creates the
// selector it names.
func sessionConfig(base config.TetrisConfig, s Setup, seed int64) (config.TetrisConfig, tetris.Selector, error) {
	cfg := base
	cfg.Randomizer = s.Randomizer
	config.ApplyPreset(&cfg, s.Preset)
	if err := cfg.Validate(); err != nil {
		return cfg, nil, fmt.Errorf("tui: %w", err)
	}
	sel, err := registry.Create(cfg.Randomizer, seed)
	if err != nil {
		return cfg, nil, fmt.Errorf("tui: %w", err)
	}
	return cfg, sel, nil
}

// Game returns the session's engine.
func (m Model) Game() *tetris.Game {
	return m.game
}

// Setup returns the session's current difficulty and randomizer.
func (m Model) Setup() Setup {
	return m.setup
}

// Init sets the window title; gravity is armed once a round starts.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("tetris")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.help.Width = ws.Width
	}

	// Secondary screens take user input; timer messages still reach the
	// game below.
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg, tea.WindowSizeMsg:
		if m.scores != nil {
			return m.updateScores(msg)
		}
		if m.options != nil {
			return m.updateOptions(msg)
		}
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case gravityMsg:
		m.handleGravity(msg)
	case holdCheckMsg:
		if m.hold.expired(msg.seq) {
			m.apply(tetris.Input{Command: tetris.CmdSoftDropRelease})
		}
	case pointerFlushMsg:
		m.flushPending = false
		m.afterTransition(m.router.FlushPointer(m.clock()))
		cmd = m.armFlush()
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.armGravity())
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Scores):
		if !m.game.InProgress() {
			sb := NewScoreboardModel(m.store, m.width, m.height)
			m.scores = &sb
		}
		return nil
	case key.Matches(msg, m.keys.Options):
		if !m.game.InProgress() {
			sm := NewSetupModel(m.setup, m.width, m.height)
			m.options = &sm
		}
		return nil
	}

	in := tetris.Input{Command: m.keys.Command(msg)}
	var cmd tea.Cmd
	if in.Command == tetris.CmdSoftDropPress {
		repeat, seq := m.hold.press()
		in.Repeat = repeat
		cmd = holdCheckCmd(m.cfg.Input.SoftDropRelease, seq)
	}
	m.apply(in)
	return cmd
}

// handleMouse steers the piece toward the pointer column; a left click
// rotates.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	l := m.layout()
	if msg.Y < l.frame.Y || msg.Y >= l.frame.Bottom() {
		return nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if l.frame.Contains(msg.X, msg.Y) {
			m.apply(tetris.Input{Command: tetris.CmdRotate})
		}
		return nil
	}
	if msg.Action != tea.MouseActionMotion {
		return nil
	}

	out, _ := m.router.Pointer(l.board.Column(msg.X), m.clock())
	m.afterTransition(out)
	return m.armFlush()
}

// handleGravity applies a gravity tick if it belongs to the current
// schedule.
func (m *Model) handleGravity(msg gravityMsg) {
	if msg.gen == m.armedGen {
		m.armedGen = 0
	}
	out, ok := m.game.Tick(msg.gen)
	if !ok {
		return
	}
	m.afterTransition(out)
}

// apply routes one input event and reacts to its outcome. Restarting a
// round in progress records it as finished first.
func (m *Model) apply(in tetris.Input) {
	if in.Command == tetris.CmdStart && m.game.InProgress() {
		st := m.game.Status()
		m.logger.Info("round abandoned", "player", m.opts.Player, "score", st.Score)
		m.saveResult()
	}

	out := m.router.Handle(in)
	if in.Command == tetris.CmdStart {
		m.hold.reset()
		m.roundStart = m.clock()
		m.saved = false
		m.logger.Info("round started", "player", m.opts.Player,
			"preset", m.setup.Preset, "randomizer", m.setup.Randomizer)
	}
	m.afterTransition(out)
}

// applySetup rebuilds the idle game for a new setup. An invalid setup
// keeps the current one.
func (m *Model) applySetup(s Setup) {
	cfg, sel, err := sessionConfig(m.opts.Config, s, m.opts.Runtime.Seed)
	if err != nil {
		m.logger.Warn("setup rejected", "preset", s.Preset, "randomizer", s.Randomizer, "error", err)
		return
	}
	m.game.Reconfigure(cfg.Engine(), sel)
	m.router = tetris.NewRouter(m.game)
	m.cfg = cfg
	m.setup = s
	m.logger.Info("setup changed", "preset", s.Preset, "randomizer", s.Randomizer)
}

// afterTransition logs notable events and saves the result once per round.
func (m *Model) afterTransition(out tetris.Outcome) {
	st := m.game.Status()
	if out.Cleared > 0 {
		m.logger.Debug("rows cleared", "rows", out.Cleared, "points", out.Points, "score", st.Score)
	}
	if out.LeveledUp {
		m.logger.Info("level up", "level", st.Level, "interval", m.game.Gravity().Interval())
	}
	if out.GameOver {
		m.logger.Info("game over", "player", m.opts.Player, "score", st.Score, "rows", st.Rows, "level", st.Level)
		m.saveResult()
	}
}

// saveResult stores the finished round once.
func (m *Model) saveResult() {
	if m.saved {
		return
	}
	m.saved = true

	st := m.game.Status()
	m.highScore = max(m.highScore, st.Score)
	if m.store == nil || st.Score == 0 {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		Player:     m.opts.Player,
		Score:      st.Score,
		Rows:       st.Rows,
		Level:      st.Level,
		Randomizer: m.setup.Randomizer,
		Duration:   m.clock().Sub(m.roundStart),
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

// armGravity arms a tick for the current schedule unless one is already
// in flight for it.
func (m *Model) armGravity() tea.Cmd {
	g := m.game.Gravity()
	if !g.Running() || g.Generation() == m.armedGen {
		return nil
	}
	m.armedGen = g.Generation()
	return gravityCmd(g.Delay(), m.armedGen)
}

// armFlush schedules delivery of a held pointer sample.
func (m *Model) armFlush() tea.Cmd {
	deadline, pending := m.router.PointerPending()
	if !pending || m.flushPending {
		return nil
	}
	m.flushPending = true
	return pointerFlushCmd(deadline.Sub(m.clock()))
}

// updateScores forwards input to the scoreboard until it is closed.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		return m, nil
	}
	m.scores = &sb
	return m, cmd
}

// updateOptions forwards input to the setup screen and applies the
// choice once it is made.
func (m Model) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.options.Update(msg)
	sm, ok := next.(SetupModel)
	if !ok {
		return m, cmd
	}
	switch {
	case sm.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sm.WantsBack():
		m.options = nil
		return m, nil
	}
	if s := sm.Selected(); s != nil {
		m.options = nil
		m.applySetup(*s)
		return m, nil
	}
	m.options = &sm
	return m, cmd
}

// layout computes board placement for the current window.
func (m Model) layout() layout {
	cfg := m.game.Config()
	return newLayout(m.width, m.height-lipgloss.Height(m.help.View(m.keys)), cfg.Width, cfg.Height)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}
	if m.options != nil {
		return m.options.View()
	}

	helpView := m.help.View(m.keys)
	m.screen.Resize(m.width, max(0, m.height-lipgloss.Height(helpView)))
	drawGame(m.screen, m.game, m.layout(), hudView{
		highScore: m.highScore,
		player:    m.opts.Player,
		preset:    string(m.setup.Preset),
	})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(helpView)
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options, store *storage.Store) error {
	model, err := NewModel(opts, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err = p.Run()
	return err
}
