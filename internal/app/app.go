package app

import (
	"fmt"
	"io"
	"time"

	"dial-sweep.klederson.com/internal/config"
	"dial-sweep.klederson.com/internal/dial"
	"dial-sweep.klederson.com/internal/raster"
	"dial-sweep.klederson.com/internal/ui"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	widget   *dial.Widget
	settings *config.SafeSettings
	frames   *FrameTimes
	reload   <-chan struct{}
	log      logrus.FieldLogger
}

// AppModel is the root Bubble Tea model for the dial.
type AppModel struct {
	width  int
	height int

	showHelp bool
	lastTick time.Time

	keys keyMap
	help help.Model

	shared *shared
}

// New creates an AppModel whose widget is built from the current settings.
// reload may be nil when the config file is not watched.
func New(settings *config.SafeSettings, reload <-chan struct{}, log logrus.FieldLogger) (AppModel, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	s := settings.Get()
	cfg, err := s.DialConfig()
	if err != nil {
		return AppModel{}, err
	}

	return AppModel{
		keys: defaultKeys(),
		help: help.New(),
		shared: &shared{
			widget:   dial.New(cfg, dial.WithLogger(log), dial.WithDiagnostics(s.Render.Diagnostics)),
			settings: settings,
			frames:   NewFrameTimes(config.FrameHistory),
			reload:   reload,
			log:      log,
		},
	}, nil
}

// Widget returns the dial driven by this model.
func (m AppModel) Widget() *dial.Widget {
	return m.shared.widget
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		waitReload(m.shared.reload),
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeDial()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.shared.widget.OnAdvance()
		}
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			elapsed := now.Sub(m.lastTick)
			m.shared.frames.Push(elapsed)
			if !m.shared.widget.IsIdle() {
				m.shared.widget.OnTick(float64(elapsed) / float64(time.Millisecond))
			}
		}
		m.lastTick = now
		return m, m.tickCmd()

	case ConfigReloadMsg:
		m.rebuildWidget()
		return m, waitReload(m.shared.reload)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Advance):
		m.shared.widget.OnAdvance()

	case key.Matches(msg, m.keys.Diagnostics):
		w := m.shared.widget
		w.SetDiagnostics(!w.Diagnostics())

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.resizeDial()
	}

	return m, nil
}

// rebuildWidget replaces the dial with one built from the reloaded
// settings. Animation state starts over; diagnostics carry across.
func (m AppModel) rebuildWidget() {
	s := m.shared.settings.Get()
	cfg, err := s.DialConfig()
	if err != nil {
		m.shared.log.WithError(err).Warn("reloaded dial config rejected")
		return
	}
	diag := m.shared.widget.Diagnostics()
	m.shared.widget = dial.New(cfg, dial.WithLogger(m.shared.log), dial.WithDiagnostics(diag))
	m.resizeDial()
	m.shared.log.WithFields(logrus.Fields{
		"selections": cfg.SelectionCount,
		"duration":   cfg.DurationMs,
	}).Info("dial rebuilt")
}

type layout struct {
	bodyH         int
	dialW, stateW int
	cols, rows    int
}

func (m AppModel) layout() layout {
	chrome := 2 // menu bar + status bar
	if m.showHelp {
		chrome++
	}
	l := layout{bodyH: max(m.height-chrome, 5)}
	l.dialW, l.stateW = ui.Split(m.width)
	l.cols, l.rows = ui.PanelInner(l.dialW, l.bodyH)
	return l
}

// resizeDial maps the dial panel's cell area to viewport pixels.
func (m AppModel) resizeDial() {
	if m.width == 0 || m.height == 0 {
		return
	}
	l := m.layout()
	m.shared.widget.OnResize(float64(l.cols)*config.CellWidthPx, float64(l.rows)*config.CellHeightPx)
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return fmt.Sprintf("Initializing %s...", config.AppName)
	}

	w := m.shared.widget
	cfg := w.Config()
	st := w.State()
	l := m.layout()

	menuBar := ui.RenderMenuBar(m.width, cfg.SelectionCount, cfg.DurationMs)

	content := raster.Terminal(l.cols, l.rows, config.CellWidthPx, config.CellHeightPx, w.BuildDrawCommands())
	dialPanel := ui.RenderDialPanel(l.dialW, l.bodyH, content)
	statePanel := ui.RenderStatePanel(st, cfg.SelectionCount, l.stateW, l.bodyH, m.shared.frames.Millis())

	statusBar := ui.RenderStatusBar(m.width, st, w.Diagnostics(), m.shared.frames.FPS())

	var helpView string
	if m.showHelp {
		helpView = m.help.View(m.keys)
	}

	return ui.ComposeLayout(menuBar, dialPanel, statePanel, statusBar, helpView)
}

func (m AppModel) tickCmd() tea.Cmd {
	fps := m.shared.settings.Get().Render.FPS
	if fps <= 0 {
		fps = config.TargetFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func waitReload(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return ConfigReloadMsg{}
	}
}
