package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bloatai/bloatiq/internal/quiz"
	"github.com/bloatai/bloatiq/internal/ui/components"
	"github.com/bloatai/bloatiq/internal/ui/layout"
	"github.com/bloatai/bloatiq/internal/ui/theme"
)

// noteLimit caps the free-text note attached to an assessment.
const noteLimit = 200

type phase int

const (
	phaseQuestion phase = iota
	phaseNote
	phaseDone
)

// Options configures a quiz run.
type Options struct {
	// Questions defaults to the full bank.
	Questions []quiz.Question
	// Prefill positions the cursor on earlier answers, e.g. from the
	// previous assessment.
	Prefill quiz.Answers
	// AskNote adds a final free-text step.
	AskNote bool
}

// Outcome is what the user entered.
type Outcome struct {
	Answers quiz.Answers
	Note    string
	Aborted bool
}

// Model is the Bubble Tea model that walks the user through the quiz.
type Model struct {
	opts     Options
	idx      int
	answers  quiz.Answers
	selector components.Selector
	note     components.NoteInput
	phase    phase
	aborted  bool
	width    int
	height   int
}

// New creates a quiz model positioned on the first question.
func New(opts Options) Model {
	if len(opts.Questions) == 0 {
		opts.Questions = quiz.Questions()
	}
	m := Model{opts: opts, answers: quiz.Answers{}}
	m.selector = m.selectorFor(0)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = true
			m.phase = phaseDone
			return m, tea.Quit
		}
	}

	switch m.phase {
	case phaseQuestion:
		return m.updateQuestion(msg)
	case phaseNote:
		return m.updateNote(msg)
	}
	return m, nil
}

func (m Model) updateQuestion(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			m.aborted = true
			m.phase = phaseDone
			return m, tea.Quit
		case "left", "backspace":
			if m.idx > 0 {
				m.idx--
				m.selector = m.selectorFor(m.idx)
			}
			return m, nil
		case "s":
			delete(m.answers, m.current().ID)
			return m.advance()
		}
	}

	var cmd tea.Cmd
	m.selector, cmd = m.selector.Update(msg)
	if m.selector.Done() {
		q := m.current()
		m.answers[q.ID] = answerValue(q, m.selector.Chosen)
		return m.advance()
	}
	return m, cmd
}

func (m Model) updateNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			m.phase = phaseDone
			return m, tea.Quit
		case "esc":
			m.note.Model.SetValue("")
			m.phase = phaseDone
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return m, cmd
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	m.idx++
	if m.idx < len(m.opts.Questions) {
		m.selector = m.selectorFor(m.idx)
		return m, nil
	}
	if m.opts.AskNote {
		m.phase = phaseNote
		m.note = components.NewNoteInput("e.g. after a week off dairy", noteLimit)
		return m, m.note.Init()
	}
	m.phase = phaseDone
	return m, tea.Quit
}

func (m Model) current() quiz.Question {
	return m.opts.Questions[m.idx]
}

// selectorFor builds the option list for question i, with the cursor on the
// answer already given in this run or, failing that, the prefilled one.
func (m Model) selectorFor(i int) components.Selector {
	q := m.opts.Questions[i]
	cursor := 0
	if v, ok := m.answers[q.ID]; ok {
		cursor = optionIndex(q, v)
	} else if v, ok := m.opts.Prefill[q.ID]; ok {
		cursor = optionIndex(q, v)
	}
	return components.NewSelector(q.Text, optionLabels(q), cursor)
}

// Outcome returns the answers collected so far.
func (m Model) Outcome() Outcome {
	out := Outcome{Answers: m.answers, Aborted: m.aborted}
	if m.phase == phaseDone && !m.aborted && m.opts.AskNote {
		out.Note = m.note.Value()
	}
	return out
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

func (m Model) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	total := len(m.opts.Questions)
	var title, step, body string
	var hints []layout.KeyHint

	switch m.phase {
	case phaseNote:
		title = "Anything to add?"
		body = theme.Body.Render("Add a short note to this assessment (optional).") + "\n\n" + m.note.View()
		hints = []layout.KeyHint{
			{Key: "Enter", Description: "Finish"},
			{Key: "Esc", Description: "Skip note"},
		}
	default:
		q := m.current()
		title = "Screening"
		if !q.Screening() {
			title = q.Category.DisplayName()
		}
		step = fmt.Sprintf("Question %d of %d", m.idx+1, total)
		bar := components.ProgressBar{Value: m.idx, Max: total, Width: 30}
		body = m.selector.View() + "\n" + bar.View()
		hints = []layout.KeyHint{
			{Key: "↑↓/1-9", Description: "Choose"},
			{Key: "Enter", Description: "Next"},
			{Key: "←", Description: "Back"},
			{Key: "s", Description: "Skip"},
			{Key: "Esc", Description: "Quit"},
		}
	}

	header := layout.RenderHeader(title, step, m.width)
	footer := layout.RenderFooter(hints, m.width)
	body = lipgloss.NewStyle().Padding(1, 2).Render(body)
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and returns what the user entered.
func Run(opts Options) (Outcome, error) {
	final, err := tea.NewProgram(New(opts)).Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("run quiz: %w", err)
	}
	return final.(Model).Outcome(), nil
}

func optionLabels(q quiz.Question) []string {
	switch q.Kind {
	case quiz.KindScale:
		return q.ScaleLabels()
	case quiz.KindYesNo:
		return []string{"No", "Yes"}
	default:
		labels := make([]string, len(q.Options))
		for i, o := range q.Options {
			labels[i] = o.Label
		}
		return labels
	}
}

// answerValue converts a selected index into the value the scorer expects.
func answerValue(q quiz.Question, i int) any {
	switch q.Kind {
	case quiz.KindScale:
		return i
	case quiz.KindYesNo:
		return i == 1
	default:
		return q.Options[i].ID
	}
}

func optionIndex(q quiz.Question, v any) int {
	if q.Kind == quiz.KindChoice {
		s, _ := v.(string)
		for i, o := range q.Options {
			if o.ID == strings.TrimSpace(s) {
				return i
			}
		}
		return 0
	}
	n, _ := q.Points(v)
	return n
}
