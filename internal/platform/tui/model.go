package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/game"
	"github.com/vovakirdan/brick-breaker/internal/render/raster"
)

// footerRows is the space reserved below the frame for status and help.
const footerRows = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	modalStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 4).
			Bold(true)
)

// Commander accepts paddle commands. *game.Loop implements it.
type Commander interface {
	Send(cmd game.Command) bool
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	loop      Commander
	presenter *Presenter
	keys      KeyMap
	mapper    *KeyMapper
	help      help.Model
	total     int // Bricks in a full grid

	frame   string
	round   int
	left    int
	confirm *ConfirmMsg
	notice  string
	width   int
	height  int

	quitting bool
}

// NewModel creates a model sending commands to loop.
func NewModel(loop Commander, presenter *Presenter, totalBricks int) Model {
	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	return Model{
		loop:      loop,
		presenter: presenter,
		keys:      keys,
		mapper:    NewKeyMapper(keys),
		help:      h,
		total:     totalBricks,
	}
}

// Init implements tea.Model. The loop drives frames, so there is nothing to
// start here.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.presenter != nil {
			m.presenter.SetCells(msg.Width, msg.Height-footerRows)
		}
		return m, nil

	case FrameMsg:
		m.frame = RenderFrame(msg.Image)
		m.round = msg.Round
		m.left = msg.Left
		return m, nil

	case ConfirmMsg:
		m.confirm = &msg
		return m, nil

	case ScreenshotMsg:
		if msg.Err != nil {
			m.notice = "screenshot failed: " + msg.Err.Error()
		} else {
			m.notice = "saved " + msg.Path
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if m.presenter != nil {
			m.presenter.RequestScreenshot()
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// While the round-over modal is up only quit and acknowledge apply.
	if m.confirm != nil {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Ack) {
			close(m.confirm.ack)
			m.confirm = nil
		}
		return m, nil
	}

	cmd, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if cmd != game.CommandNone {
		m.loop.Send(cmd)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.confirm != nil {
		box := modalStyle.Render(m.confirm.Message + "\n\n" + helpStyle.Render("press enter"))
		b.WriteString(lipgloss.Place(m.width, max(m.height-footerRows, lipgloss.Height(box)),
			lipgloss.Center, lipgloss.Center, box))
	} else {
		b.WriteString(m.frame)
	}

	b.WriteString("\n")
	status := fmt.Sprintf("round %d  bricks %d/%d", m.round, m.left, m.total)
	if m.notice != "" {
		status += "  " + m.notice
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Options configures Run.
type Options struct {
	Runtime       core.RuntimeConfig
	Logger        *log.Logger
	ScreenshotDir string
	Watch         string // Config file to follow for palette changes; empty disables
}

// Run plays the game in the terminal until the user quits or ctx is done.
func Run(ctx context.Context, cfg config.Config, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	runtime := opts.Runtime
	if runtime.TickRate <= 0 {
		runtime.TickRate = cfg.Loop.FPS
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		runtime.ScreenW, runtime.ScreenH = w, h
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = ScreenshotDir()
	}

	backend := raster.New(int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	presenter := NewPresenter(backend, dir)
	presenter.SetCells(runtime.ScreenW, runtime.ScreenH-footerRows)
	confirmer := &Confirmer{}
	scheduler := game.NewTickerScheduler(runtime.TickRate)
	defer scheduler.Stop()

	loop, err := game.NewLoop(cfg, backend,
		game.WithScheduler(scheduler),
		game.WithConfirmer(confirmer),
		game.WithFrameFunc(presenter.Present),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer loop.Close()

	model := NewModel(loop, presenter, cfg.Bricks.Rows*cfg.Bricks.Cols)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	presenter.attach(p.Send)
	confirmer.attach(p.Send)

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.Watch != "" {
		go func() {
			err := config.Watch(loopCtx, opts.Watch, func(c config.Config) {
				loop.SetPalette(game.PaletteFromConfig(c.Palette))
				logger.Info("palette reloaded", "path", opts.Watch)
			}, func(err error) {
				logger.Warn("config reload failed", "error", err)
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("config watch stopped", "error", err)
			}
		}()
	}

	loopErr := make(chan error, 1)
	go func() {
		err := loop.Run(loopCtx)
		if !errors.Is(err, context.Canceled) {
			p.Quit()
		}
		loopErr <- err
	}()

	logger.Info("terminal session started", "cols", runtime.ScreenW, "rows", runtime.ScreenH, "fps", runtime.TickRate)
	_, err = p.Run()
	cancel()
	if lerr := <-loopErr; lerr != nil && !errors.Is(lerr, context.Canceled) {
		return lerr
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
