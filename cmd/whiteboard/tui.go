package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkboard/canvashost"
	"github.com/inkboard/canvashost/host"
	"github.com/inkboard/canvashost/lifecycle"
	"github.com/inkboard/canvashost/mount"
	"github.com/inkboard/canvashost/status"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	canvasStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type storeReadyMsg struct{}

type appModel struct {
	cfg Config

	h         *host.Host
	construct canvashost.EngineConstructor
	container *termContainer
	user      *staticUser
	stores    []*memStore
	storeIdx  int
	sws       status.StoreWithStatus

	construction lifecycle.ConstructionOptions
	live         lifecycle.LiveOptions
	zoomed       bool

	cursorX, cursorY int
	input            textinput.Model
	typing           bool

	view host.View
}

func newAppModel(cfg Config) *appModel {
	scheme := canvashost.SchemeLight
	if cfg.Dark {
		scheme = canvashost.SchemeDark
	}

	m := &appModel{
		cfg:       cfg,
		construct: newEngineConstructor(cfg.Canvas.Width, cfg.Canvas.Height),
		container: &termContainer{name: "terminal"},
		user:      &staticUser{name: "demo", scheme: scheme},
		stores:    []*memStore{{name: "board-1"}},
		sws:       status.Loading(),
		construction: lifecycle.ConstructionOptions{
			AutoFocus:     cfg.AutoFocus,
			InferDarkMode: cfg.Dark,
			InitialState:  "select",
		},
	}

	ti := textinput.New()
	ti.Placeholder = "label text"
	ti.Prompt = "label: "
	ti.Width = 32
	m.input = ti

	m.h = host.New(host.Components{
		LoadingScreen: func() string {
			return loadingStyle.Render("loading document" + strings.Repeat(".", 3))
		},
		ErrorFallback: func(err error) string {
			return errorStyle.Render(fmt.Sprintf("editor failed: %v", err))
		},
		Canvas: func(inst *lifecycle.Instance) string {
			ge, ok := inst.Engine().(*gridEngine)
			if !ok {
				return ""
			}
			return canvasStyle.Render(strings.TrimRight(ge.Snapshot(m.cursorX, m.cursorY), "\n"))
		},
	})

	return m
}

func (m *appModel) frame() host.Frame {
	return host.Frame{
		Store:        m.sws,
		Container:    m.container,
		User:         m.user,
		LicenseKey:   m.cfg.LicenseKey,
		Construct:    m.construct,
		Construction: m.construction,
		Live:         m.live,
		OnMount: func(e canvashost.Engine) func() {
			return nil
		},
	}
}

func (m *appModel) engine() *gridEngine {
	if m.view.Instance == nil {
		return nil
	}
	ge, _ := m.view.Instance.Engine().(*gridEngine)
	return ge
}

func (m *appModel) Init() tea.Cmd {
	// Simulated async document load.
	return tea.Tick(750*time.Millisecond, func(time.Time) tea.Msg {
		return storeReadyMsg{}
	})
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeReadyMsg:
		m.sws = status.SyncedLocal(m.stores[m.storeIdx])

	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.h.Close()
			return m, tea.Quit

		case "left", "h":
			if m.cursorX > 0 {
				m.cursorX--
			}
		case "right", "l":
			if m.cursorX < m.cfg.Canvas.Width-1 {
				m.cursorX++
			}
		case "up", "k":
			if m.cursorY > 0 {
				m.cursorY--
			}
		case "down", "j":
			if m.cursorY < m.cfg.Canvas.Height-1 {
				m.cursorY++
			}

		case " ":
			if ge := m.engine(); ge != nil {
				ge.Paint(m.cursorX, m.cursorY)
			}

		case "t":
			if m.engine() != nil {
				m.typing = true
				m.input.SetValue("")
				m.input.Focus()
			}

		case "z":
			m.zoomed = !m.zoomed
			zoom := 1.0
			if m.zoomed {
				zoom = m.cfg.Canvas.ZoomMax
			}
			// Fresh pointer: the controller sees a live-option change.
			m.live = lifecycle.LiveOptions{
				CameraOptions: &canvashost.CameraOptions{ZoomMin: 0.25, ZoomMax: zoom},
			}

		case "s":
			// Identity churn: a new store disposes the instance and
			// constructs a successor bound to the new document.
			m.storeIdx++
			m.stores = append(m.stores, &memStore{name: fmt.Sprintf("board-%d", m.storeIdx+1)})
			m.sws = status.SyncedLocal(m.stores[m.storeIdx])

		case "x":
			if ge := m.engine(); ge != nil {
				ge.Fail(fmt.Errorf("synthetic gpu fault"))
			}
		}
	}

	m.view = m.h.Apply(m.frame())
	return m, nil
}

func (m *appModel) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if ge := m.engine(); ge != nil && m.input.Value() != "" {
			ge.AddLabel(m.input.Value())
		}
		m.typing = false
	case "esc":
		m.typing = false
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	m.view = m.h.Apply(m.frame())
	return m, nil
}

func (m *appModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.cfg.Title))
	b.WriteString("\n\n")

	storeName := "-"
	if m.sws.Ready() {
		storeName = m.sws.Store().ID()
	}
	history := 0
	if ge := m.engine(); ge != nil {
		history = ge.historyLen()
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"view=%s store=%s theme=%s ready=%v history=%d",
		m.view.Kind, storeName, m.container.theme, mount.Ready(), history)))
	b.WriteString("\n\n")

	b.WriteString(m.view.Render())
	b.WriteString("\n")

	if m.typing {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter add label • esc cancel"))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←↓↑→ move • space paint • t label • z zoom • s swap store • x crash • q quit"))
	return b.String()
}
