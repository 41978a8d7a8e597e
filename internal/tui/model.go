package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textprep/internal/domain"
)

// pane identifies which result view the viewport shows.
type pane int

const (
	paneSummary pane = iota
	paneStatistics
	panePreview
	paneCount
)

func (p pane) title() string {
	switch p {
	case paneSummary:
		return "Summary"
	case paneStatistics:
		return "Statistics"
	case panePreview:
		return "Cleaned text"
	}
	return ""
}

// Model is the Bubble Tea model for the interactive analyzer.
type Model struct {
	service  domain.Preprocessor
	input    textinput.Model
	viewport viewport.Model
	result   *domain.Result
	active   pane
	status   string
	ready    bool
}

// New creates a new TUI model instance.
func New(service domain.Preprocessor) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Paste a .txt URL and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{service: service, input: ti, viewport: vp, status: "Ready. Tab cycles panes."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and input boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		reserved := 2 + qh + 1 // header + pane title, input box, status
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderActivePane())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			url := strings.TrimSpace(m.input.Value())
			if url != "" {
				m.status = "Fetching " + url + " ..."
				result, err := m.service.ProcessURL(context.Background(), url)
				if err != nil {
					m.status = "Error: " + err.Error()
					m.result = nil
				} else {
					m.status = fmt.Sprintf("Analyzed %q", url)
					m.result = result
					m.active = paneSummary
				}
				m.viewport.SetContent(m.renderActivePane())
				return m, nil
			}
		case "tab":
			if m.result != nil {
				m.active = (m.active + 1) % paneCount
				m.viewport.SetContent(m.renderActivePane())
				return m, nil
			}
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the active pane.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Text Preprocessor")
	title := paneTitleStyle.Render(m.active.title())
	body := resultBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + title + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) renderActivePane() string {
	if m.result == nil {
		return "No document analyzed yet."
	}
	switch m.active {
	case paneSummary:
		return m.result.Summary
	case paneStatistics:
		return renderStatistics(m.result.Statistics)
	case panePreview:
		return m.result.CleanedText
	}
	return ""
}

func renderStatistics(st domain.Statistics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Characters      %d\n", st.TotalCharacters)
	fmt.Fprintf(&b, "Words           %d\n", st.TotalWords)
	fmt.Fprintf(&b, "Sentences       %d\n", st.TotalSentences)
	fmt.Fprintf(&b, "Avg word len    %.2f\n", st.AvgWordLength)
	fmt.Fprintf(&b, "Avg sent len    %.2f\n", st.AvgSentenceLength)
	b.WriteString("\nMost common words:\n")
	for i, wc := range st.MostCommonWords {
		fmt.Fprintf(&b, "%2d. %-20s %d\n", i+1, wc.Word, wc.Count)
	}
	return b.String()
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	paneTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
