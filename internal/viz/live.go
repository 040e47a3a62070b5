// Package viz renders a running drop test in the terminal with
// bubbletea: a parameter panel, the body's live state, and an asciigraph
// of its height over time.
package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/bodysim/internal/config"
	"github.com/san-kum/bodysim/internal/experiment"
	"github.com/san-kum/bodysim/internal/rigidbody"
)

const (
	graphWidth      = 70
	graphHeight     = 12
	historyCapacity = 600
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	asleepStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps an experiment and draws its state each frame.
type Model struct {
	exp     *experiment.Experiment
	preset  string
	fps     int
	running bool
	err     error
	heights []float64
}

// NewModel builds a live view for the given scenario.
func NewModel(exp *experiment.Experiment, preset string, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		exp:     exp,
		preset:  preset,
		fps:     fps,
		running: true,
		heights: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and advances the simulation on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "i":
			m.exp.Body.ApplyForce(mgl64.Vec3{0, 4, 0}, rigidbody.Impulse)
		case "t":
			m.exp.Body.ApplyTorque(mgl64.Vec3{0, 0, 2}, rigidbody.Impulse)
		case "s":
			m.exp.Body.Deactivate()
		case "r":
			exp, err := experiment.New(m.exp.Config())
			if err != nil {
				m.err = err
				break
			}
			m.exp = exp
			m.heights = m.heights[:0]
		}
	case TickMsg:
		if m.running && !m.exp.Done() {
			sample := m.exp.Step()
			m.heights = append(m.heights, sample.Position[1])
			if len(m.heights) > historyCapacity {
				m.heights = m.heights[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	cfg := m.exp.Config()
	body := m.exp.Body
	pos := body.Position()
	vel := body.LinearVelocity()

	state := asleepStyle.Render("asleep")
	if body.IsActive() {
		state = activeStyle.Render("active")
	}

	stats := lipgloss.JoinVertical(lipgloss.Left,
		row("preset", m.preset),
		row("t", fmt.Sprintf("%.2fs / %.0fs", m.exp.Time(), cfg.Duration)),
		row("position", fmt.Sprintf("(%.2f, %.2f, %.2f)", pos[0], pos[1], pos[2])),
		row("velocity", fmt.Sprintf("(%.2f, %.2f, %.2f)", vel[0], vel[1], vel[2])),
		row("mass", fmt.Sprintf("%.2f", body.Mass())),
		row("kinematic", fmt.Sprintf("%v", body.Kinematic())),
		row("in world", fmt.Sprintf("%v", body.InWorld())),
		labelStyle.Render("state")+state,
	)

	graph := ""
	if len(m.heights) > 1 {
		graph = asciigraph.Plot(m.heights,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("height vs time"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("bodysim live"),
		statsStyle.Render(stats),
		graphStyle.Render(graph),
		helpStyle.Render("space pause · i impulse · t torque · s sleep · r reset · q quit"),
	) + "\n"
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// Run starts the live view and blocks until the user quits.
func Run(cfg *config.Config, preset string, fps int) error {
	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(NewModel(exp, preset, fps))
	_, err = p.Run()
	return err
}
