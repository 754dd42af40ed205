package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/notes"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type focusArea int

const (
	focusTitle focusArea = iota
	focusContent
	focusSubmit
	focusList

	focusAreas
)

// refreshQueue carries the list reload requested by the create flow's
// callback out of Apply and into the next command.
type refreshQueue struct {
	next func() notes.ListResult
}

type mainLoopModel struct {
	ctx     context.Context
	adapter adapter.NotesAdapter
	loc     *time.Location

	list    *notes.ListFlow
	form    *notes.CreateFlow
	refresh *refreshQueue

	inputs  []textinput.Model
	focus   focusArea
	idx     int
	spinner spinner.Model
	status  string

	detail       *detailModel
	detailSeq    int
	detailCancel context.CancelFunc
}

func newMainLoopModel(ctx context.Context, notesAdapter adapter.NotesAdapter, loc *time.Location) mainLoopModel {
	list := notes.NewListFlow(ctx, notesAdapter)
	refresh := &refreshQueue{}
	form := notes.NewCreateFlow(ctx, notesAdapter, func() {
		refresh.next = list.Reload()
	})

	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].Prompt = ""
	}
	inputs[0].Placeholder = "Title"
	inputs[1].Placeholder = "Content"
	inputs[0].Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:     ctx,
		adapter: notesAdapter,
		loc:     loc,
		list:    list,
		form:    form,
		refresh: refresh,
		inputs:  inputs,
		spinner: s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, cmdLoadNotes(m.list.Reload()))
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.list.Apply(msg.result)
		m.clampSelection()
		return m, nil
	case noteCreatedMsg:
		if !m.form.Apply(msg.result) {
			return m, nil
		}
		view := m.form.View()
		m.inputs[0].SetValue(view.Title)
		m.inputs[1].SetValue(view.Content)
		if next := m.refresh.next; next != nil {
			m.refresh.next = nil
			return m, cmdLoadNotes(next)
		}
		return m, nil
	case noteLoadedMsg:
		if m.detail == nil || msg.seq != m.detailSeq {
			return m, nil
		}
		m.detail.loading = false
		if msg.err != nil {
			m.detail.err = msg.err
			return m, nil
		}
		note := msg.note
		m.detail.note = &note
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("Copy failed: " + msg.err.Error())
		} else {
			m.status = successStyle.Render("Copied to clipboard")
		}
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if m.detail != nil {
		return m.updateDetail(keyMsg)
	}

	if m.list.View().State != notes.ListLoaded {
		// the form is hidden until the list has loaded
		if key.Matches(keyMsg, keys.reload) {
			return m, cmdLoadNotes(m.list.Reset())
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.tab):
		m.setFocus((m.focus + 1) % focusAreas)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.setFocus((m.focus + focusAreas - 1) % focusAreas)
		return m, nil
	}

	if m.focus == focusList {
		return m.updateList(keyMsg)
	}

	if key.Matches(keyMsg, keys.enter) {
		return m.submit()
	}

	if m.focus == focusSubmit {
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	m.form.SetTitle(m.inputs[0].Value())
	m.form.SetContent(m.inputs[1].Value())

	return m, tea.Batch(cmds...)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.list.View()

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(view.Notes)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.reload):
		return m, cmdLoadNotes(m.list.Reset())
	case key.Matches(keyMsg, keys.enter):
		if m.idx < 0 || m.idx >= len(view.Notes) {
			return m, nil
		}
		return m.openDetail(view.Notes[m.idx].ID)
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.closeDetail()
	case key.Matches(keyMsg, keys.copy):
		if m.detail.note == nil {
			return m, nil
		}
		content := m.detail.note.Content
		return m, func() tea.Msg {
			return copiedMsg{err: writeClipboard(content)}
		}
	}

	return m, nil
}

func (m mainLoopModel) submit() (tea.Model, tea.Cmd) {
	run, err := m.form.Submit()
	if err != nil {
		// in flight, or empty input: the form view shows the latter
		return m, nil
	}

	return m, func() tea.Msg {
		return noteCreatedMsg{result: run()}
	}
}

func (m mainLoopModel) openDetail(id int) (tea.Model, tea.Cmd) {
	m.closeDetail()

	ctx, cancel := context.WithCancel(m.ctx)
	m.detailSeq++
	m.detailCancel = cancel
	m.detail = &detailModel{id: id, loading: true}

	seq := m.detailSeq
	notesAdapter := m.adapter
	return m, func() tea.Msg {
		note, err := notesAdapter.GetNote(ctx, id)
		return noteLoadedMsg{seq: seq, note: note, err: err}
	}
}

func (m *mainLoopModel) closeDetail() {
	if m.detailCancel != nil {
		m.detailCancel()
		m.detailCancel = nil
	}
	m.detail = nil
	m.status = ""
}

func (m *mainLoopModel) setFocus(focus focusArea) {
	m.focus = focus
	for i := range m.inputs {
		if focusArea(i) == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *mainLoopModel) clampSelection() {
	count := len(m.list.View().Notes)
	if m.idx >= count {
		m.idx = count - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// close cancels every outstanding request of the screen.
func (m *mainLoopModel) close() {
	m.closeDetail()
	m.list.Close()
	m.form.Close()
}

func (m mainLoopModel) View() string {
	if m.detail != nil {
		return m.detail.View(m.loc, m.spinner.View(), m.status)
	}

	listView := m.list.View()
	switch listView.State {
	case notes.ListLoading:
		return renderPage("Notes App", m.spinner.View()+" "+mutedStyle.Render(listView.Status()), "")
	case notes.ListFailed:
		out := errorStyle.Render(listView.Status())
		if hint := humanizeServerUnavailableError(listView.Err); hint != "" {
			out += "\n" + mutedStyle.Render(hint)
		}
		return renderPage("Notes App", out, "r: reload")
	}

	var b strings.Builder
	b.WriteString(m.viewForm())
	b.WriteString("\n")
	b.WriteString(m.viewList(listView))

	hotKeys := "tab: next field │ enter: submit"
	if m.focus == focusList {
		hotKeys = "↑/↓: select │ enter: open │ r: reload │ v: about │ tab: form"
	}

	return renderPage("Notes App", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewForm() string {
	view := m.form.View()

	var b strings.Builder
	b.WriteString(titleStyle.Render("New note") + "\n\n")
	b.WriteString("Title    [" + m.inputs[0].View() + "]\n")
	b.WriteString("Content  [" + m.inputs[1].View() + "]\n")

	submit := "[ Submit ]"
	if m.focus == focusSubmit {
		submit = selectedStyle.Render(submit)
	}
	b.WriteString(submit + "\n")

	lines := view.StatusLines()
	if len(lines) > 0 {
		b.WriteString("\n")
	}
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "Created note"):
			b.WriteString(successStyle.Render(line))
		case line == "Loading...":
			b.WriteString(m.spinner.View() + " " + mutedStyle.Render(line))
		default:
			b.WriteString(errorStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if hint := humanizeServerUnavailableError(view.Err); hint != "" {
		b.WriteString(mutedStyle.Render(hint) + "\n")
	}

	return b.String()
}

func (m mainLoopModel) viewList(view notes.ListView) string {
	if status := view.Status(); status != "" {
		return status + "\n"
	}

	var b strings.Builder
	for i, note := range view.Notes {
		cursor := "  "
		heading := titleStyle.Render(fitText(notes.Heading(note), 60))
		if m.focus == focusList && i == m.idx {
			cursor = "> "
			heading = selectedStyle.Render(fitText(notes.Heading(note), 60))
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, heading))
		b.WriteString("  " + contentStyle.Render(note.Content) + "\n")
		b.WriteString("  " + mutedStyle.Render(notes.FormatCreatedAt(note, m.loc)) + "\n")
		if i < len(view.Notes)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func cmdLoadNotes(fetch func() notes.ListResult) tea.Cmd {
	return func() tea.Msg {
		return listLoadedMsg{result: fetch()}
	}
}
