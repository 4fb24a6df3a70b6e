package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lukaswerner/daygrid/pkg/errors"
	"github.com/lukaswerner/daygrid/pkg/glyph"
	"github.com/lukaswerner/daygrid/pkg/journal"
)

// noticeTTL is how long the post-submit notice stays on screen.
const noticeTTL = 3 * time.Second

// noticeExpiredMsg clears the transient notice.
type noticeExpiredMsg struct{ id int }

// JournalModel is the bubbletea model for the interactive journal: one day
// on screen at a time, its glyph above, its entry (or the editable draft for
// today) below.
type JournalModel struct {
	session *journal.Session
	ctx     context.Context

	input   textarea.Model
	editing bool

	notice   string
	noticeID int
	err      error
}

// NewJournalModel creates the journal model positioned on today.
func NewJournalModel(ctx context.Context, session *journal.Session) JournalModel {
	ta := textarea.New()
	ta.Placeholder = "What happened today?"
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(4)
	ta.ShowLineNumbers = false

	return JournalModel{
		session: session,
		ctx:     ctx,
		input:   ta,
	}
}

func (m JournalModel) Init() tea.Cmd {
	return nil
}

func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeExpiredMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

// updateBrowsing handles keys while the cursor moves between days.
func (m JournalModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.session.GoToPreviousDay()
		m.err = nil
	case "right", "l":
		m.session.GoToNextDay()
		m.err = nil
	case "t":
		m.session.GoToToday()
		m.err = nil
	case "e", "i", "enter":
		if m.session.IsEditable() {
			m.editing = true
			m.err = nil
			return m, m.input.Focus()
		}
	}
	return m, nil
}

// updateEditing handles keys while the draft textarea has focus.
func (m JournalModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	case "ctrl+s":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit records the draft as today's entry and shows a transient notice.
func (m JournalModel) submit() (tea.Model, tea.Cmd) {
	if err := m.session.Submit(m.ctx, m.input.Value()); err != nil {
		m.err = err
		return m, nil
	}

	m.editing = false
	m.input.Blur()
	m.err = nil
	m.notice = "saved — " + string(m.session.Today()) + " is now locked"
	m.noticeID++

	id := m.noticeID
	return m, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func (m JournalModel) View() string {
	selected := m.session.Selected()
	art := glyph.Generate(string(selected))

	var b strings.Builder

	header := string(selected)
	if m.session.IsTodaySelected() {
		header += "  (today)"
	}
	b.WriteString(StyleTitle.Render(header))
	b.WriteString("\n\n")

	b.WriteString(renderGlyph(art))
	b.WriteString("\n\n")

	b.WriteString(m.entryView(selected))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(errors.UserMessage(m.err)))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(StyleSuccess.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(StyleDim.Render(m.helpLine()))
	return b.String()
}

// entryView renders the stored entry, the draft textarea, or a hint.
func (m JournalModel) entryView(selected journal.DateKey) string {
	if text, ok := m.session.Entry(selected); ok {
		if text == "" {
			return StyleDim.Render("(an empty entry was recorded)")
		}
		return lipgloss.NewStyle().Width(60).Render(StyleValue.Render(text))
	}

	if m.session.IsEditable() {
		if m.editing {
			return m.input.View()
		}
		return StyleDim.Render("no entry yet — press e to write")
	}
	return StyleDim.Render("no entry was recorded for this day")
}

// helpLine shows the key bindings for the current mode.
func (m JournalModel) helpLine() string {
	if m.editing {
		return "ctrl+s submit  esc cancel"
	}
	if m.session.IsEditable() {
		return "←/→ navigate  t today  e write  q quit"
	}
	return "←/→ navigate  t today  q quit"
}
