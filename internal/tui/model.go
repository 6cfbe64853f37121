package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chainsawriot/methodshub-weat/internal/domain"
)

// QueryPort is the TUI-facing subset of the association service.
type QueryPort interface {
	Query(s, t, a, b []string, method string) (*domain.QueryResult, error)
	Neighbors(word string, topK int) ([]domain.WordScore, error)
}

// Model is the Bubble Tea model for the interactive query session. Word sets
// are entered as commands ("s: he, him"), then "run" executes the query and
// the viewport shows the effect size with a per-word bar chart.
type Model struct {
	service QueryPort
	input   textinput.Model
	vp      viewport.Model
	sets    map[string][]string
	method  string
	status  string
	ready   bool
}

// New creates a new TUI model instance.
func New(service QueryPort, spaceInfo string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = `s: he,him | a: career | method weat | run | near word`
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service: service,
		input:   ti,
		vp:      vp,
		sets:    map[string][]string{},
		method:  "guess",
		status:  spaceInfo,
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 3 + qh + 1 // header + sets + status, input frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.vp.Width = max(20, msg.Width)
		m.vp.Height = max(3, vh-rh)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			line := strings.TrimSpace(m.input.Value())
			if line != "" {
				m = m.execute(line)
				m.input.SetValue("")
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute interprets one input line.
func (m Model) execute(line string) Model {
	lower := strings.ToLower(line)
	switch {
	case lower == "quit" || lower == "exit":
		m.status = "Press Ctrl+C to quit."
	case lower == "clear":
		m.sets = map[string][]string{}
		m.method = "guess"
		m.vp.SetContent("")
		m.status = "Cleared word sets."
	case lower == "run":
		res, err := m.service.Query(m.sets["s"], m.sets["t"], m.sets["a"], m.sets["b"], m.method)
		if err != nil {
			m.status = "Error: " + err.Error()
			return m
		}
		m.vp.SetContent(renderResult(res, m.vp.Width))
		m.status = fmt.Sprintf("%s effect size: %.4f", res.Method, res.EffectSize)
	case strings.HasPrefix(lower, "near "):
		word := strings.TrimSpace(line[len("near "):])
		// topK 0 lets the service apply its configured limit.
		neighbors, err := m.service.Neighbors(strings.ToLower(word), 0)
		if err != nil {
			m.status = "Error: " + err.Error()
			return m
		}
		m.vp.SetContent(renderNeighbors(word, neighbors))
		m.status = fmt.Sprintf("Nearest neighbours of %q", word)
	case strings.HasPrefix(lower, "method "):
		m.method = strings.TrimSpace(lower[len("method "):])
		m.status = "Method set to " + m.method
	default:
		key, words, ok := parseSetLine(line)
		if !ok {
			m.status = "Unrecognized command: " + line
			return m
		}
		m.sets[key] = words
		m.status = fmt.Sprintf("Set %s (%d words)", strings.ToUpper(key), len(words))
	}
	return m
}

// parseSetLine parses "s: w1, w2" style assignments for the four word sets.
func parseSetLine(line string) (string, []string, bool) {
	key, rest, found := strings.Cut(line, ":")
	if !found {
		return "", nil, false
	}
	key = strings.ToLower(strings.TrimSpace(key))
	switch key {
	case "s", "t", "a", "b":
	default:
		return "", nil, false
	}
	var words []string
	for _, w := range strings.FieldsFunc(rest, func(r rune) bool { return r == ',' || r == ' ' }) {
		if w = strings.TrimSpace(strings.ToLower(w)); w != "" {
			words = append(words, w)
		}
	}
	return key, words, true
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Embedding Association Queries")
	sets := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.renderSets())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.vp.View())
	return header + "\n" + sets + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderSets() string {
	parts := make([]string, 0, 5)
	for _, key := range []string{"s", "t", "a", "b"} {
		if words := m.sets[key]; len(words) > 0 {
			parts = append(parts, fmt.Sprintf("%s={%s}", strings.ToUpper(key), strings.Join(words, ",")))
		}
	}
	parts = append(parts, "method="+m.method)
	return strings.Join(parts, "  ")
}

// renderResult draws the effect size and a signed bar chart of the per-word
// breakdown.
func renderResult(res *domain.QueryResult, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s effect size: %.4f\n\n", res.Method, res.EffectSize)
	if len(res.Breakdown) == 0 {
		return b.String()
	}
	maxAbs := 0.0
	wordWidth := 0
	for _, ws := range res.Breakdown {
		if abs := math.Abs(ws.Score); abs > maxAbs {
			maxAbs = abs
		}
		if len(ws.Word) > wordWidth {
			wordWidth = len(ws.Word)
		}
	}
	barMax := width - wordWidth - 14
	if barMax < 10 {
		barMax = 10
	}
	for _, ws := range res.Breakdown {
		bar := ""
		if maxAbs > 0 {
			n := int(math.Round(math.Abs(ws.Score) / maxAbs * float64(barMax)))
			bar = strings.Repeat("█", n)
		}
		style := positiveBarStyle
		if ws.Score < 0 {
			style = negativeBarStyle
		}
		fmt.Fprintf(&b, "%-*s %8.4f %s\n", wordWidth, ws.Word, ws.Score, style.Render(bar))
	}
	return b.String()
}

func renderNeighbors(word string, neighbors []domain.WordScore) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nearest neighbours of %q:\n\n", word)
	for i, ws := range neighbors {
		fmt.Fprintf(&b, "%2d. %-20s %.4f\n", i+1, ws.Word, ws.Score)
	}
	return b.String()
}

var (
	resultBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	positiveBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	negativeBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
