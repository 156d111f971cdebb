package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeengine"
	"github.com/SeamusWaldron/cubeengine/internal/render"
	"github.com/SeamusWaldron/cubeengine/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the active cube interactively",
	Long: `Start an interactive TUI on the active session. Every move is saved.

Keyboard shortcuts:
  l r u d f b  - Turn that face clockwise
  L R U D F B  - Turn that face counter-clockwise
  1-9          - Toggle which layers the next turn moves
  s            - Scramble
  z            - Undo the last move
  x            - Run the daisy solver
  q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const recentMoves = 20

var faceKeys = map[string]cubeengine.Face{
	"l": cubeengine.FaceL,
	"r": cubeengine.FaceR,
	"u": cubeengine.FaceU,
	"d": cubeengine.FaceD,
	"f": cubeengine.FaceF,
	"b": cubeengine.FaceB,
}

type playModel struct {
	svc           *session.Service
	id            string
	scrambleCount int

	state   *session.State
	layers  map[int]bool
	applied []string

	err      error
	quitting bool
}

func newPlayModel(svc *session.Service, id string, scrambleCount int) (*playModel, error) {
	st, err := svc.Get(id)
	if err != nil {
		return nil, err
	}
	return &playModel{
		svc:           svc,
		id:            id,
		scrambleCount: scrambleCount,
		state:         st,
		layers:        map[int]bool{},
	}, nil
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	k := key.String()
	switch k {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "s":
		m.run(m.svc.Scramble(m.id, m.scrambleCount))

	case "z":
		m.run(m.svc.Undo(m.id))

	case "x":
		m.run(m.svc.Solve(m.id))

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n := int(k[0] - '0')
		if n <= m.state.Dim {
			m.layers[n] = !m.layers[n]
			if !m.layers[n] {
				delete(m.layers, n)
			}
		}

	default:
		if len(k) != 1 {
			return m, nil
		}
		face, ok := faceKeys[strings.ToLower(k)]
		if !ok {
			return m, nil
		}
		turns := 1
		if k != strings.ToLower(k) {
			turns = 3
		}
		m.run(m.svc.Apply(m.id, cubeengine.Move{Layers: m.selectedLayers(), Face: face, Turns: turns}))
	}

	return m, nil
}

// run records the outcome of a service call.
func (m *playModel) run(res *session.Result, err error) {
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.state = res.State
	m.applied = res.Applied
}

func (m *playModel) selectedLayers() []int {
	if len(m.layers) == 0 {
		return []int{1}
	}
	layers := make([]int, 0, len(m.layers))
	for l := range m.layers {
		layers = append(layers, l)
	}
	sort.Ints(layers)
	return layers
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Cube %dx%dx%d", m.state.Dim, m.state.Dim, m.state.Dim)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("Session: " + m.id))
	b.WriteString("\n\n")

	b.WriteString(render.Render(m.state.Cube()))
	b.WriteString("\n\n")

	phase := m.state.Cube().DetectPhase().DisplayName()
	b.WriteString(fmt.Sprintf("Phase: %s  Moves: %d\n", phaseStyle.Render(phase), len(m.state.History)))

	layers := make([]string, 0, len(m.layers))
	for _, l := range m.selectedLayers() {
		layers = append(layers, fmt.Sprint(l))
	}
	b.WriteString(fmt.Sprintf("Layers: %s\n", strings.Join(layers, " ")))

	if h := m.state.History; len(h) > 0 {
		b.WriteString("Moves: ")
		if len(h) > recentMoves {
			h = h[len(h)-recentMoves:]
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(strings.Join(h, " ")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: lrudfb=turn  shift=reverse  1-9=layers  s=scramble  z=undo  x=solve  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		id, err := a.activeID()
		if err != nil {
			return err
		}
		model, err := newPlayModel(a.svc, id, a.cfg.Cube.ScrambleLength)
		if err != nil {
			return err
		}

		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	})
}
