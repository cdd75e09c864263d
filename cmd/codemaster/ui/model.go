package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codemaster/internal/errors"
	"codemaster/internal/logging"
	"codemaster/internal/session"
	"codemaster/internal/types"
)

// Pane is one of the three top-level views.
type Pane int

const (
	PaneExplore Pane = iota
	PaneRoadmap
	PaneTutor
	paneCount
)

// Label returns the pane's tab title.
func (p Pane) Label(loc types.Locale) string {
	switch p {
	case PaneRoadmap:
		return T(LabelRoadmap, loc)
	case PaneTutor:
		return T(LabelTutor, loc)
	}
	return T(LabelExplore, loc)
}

// Async results. Each flow reports back on its own message type so one
// flow's completion never touches another flow's state.
type (
	searchResultMsg struct {
		entity *types.LanguageEntity
		err    error
	}
	roadmapResultMsg struct {
		roadmap *types.ProjectRoadmap
		err     error
	}
	chatResultMsg struct {
		err error
	}
)

// fixed rows: header, tabs, two dividers, input, status, footer
const chromeHeight = 7

// Model is the bubbletea model for the interactive app.
type Model struct {
	ctx    context.Context
	state  *session.State
	locale types.Locale

	styles   Styles
	renderer *Renderer

	pane     Pane
	search   textinput.Model
	idea     textinput.Model
	chat     textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	catalog []*types.LanguageEntity
	cursor  int

	// notices holds the latest out-of-band error per pane.
	notices map[Pane]string

	width  int
	height int
	ready  bool
}

// New creates the model. ctx is passed to every generation call.
func New(ctx context.Context, st *session.State, loc types.Locale) Model {
	styles := DefaultStyles()

	search := textinput.New()
	search.Prompt = "🔍 "
	search.CharLimit = 80
	search.PromptStyle = styles.Prompt
	search.Cursor.Style = styles.Cursor
	_ = search.Cursor.SetMode(cursor.CursorStatic)
	search.Focus()

	idea := textinput.New()
	idea.Prompt = "💡 "
	idea.CharLimit = 400
	idea.PromptStyle = styles.Prompt
	idea.Cursor.Style = styles.Cursor
	_ = idea.Cursor.SetMode(cursor.CursorStatic)

	chat := textarea.New()
	chat.ShowLineNumbers = false
	chat.SetHeight(1)
	chat.CharLimit = 2000
	chat.KeyMap.InsertNewline.SetEnabled(false)
	chat.Cursor.Style = styles.Cursor
	_ = chat.Cursor.SetMode(cursor.CursorStatic)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m := Model{
		ctx:      ctx,
		state:    st,
		locale:   loc,
		styles:   styles,
		renderer: NewThemedRenderer(0, styles.Theme),
		search:   search,
		idea:     idea,
		chat:     chat,
		viewport: viewport.New(80, 20),
		spinner:  sp,
		catalog:  st.Selection.Catalog().All(),
		notices:  make(map[Pane]string),
	}
	m.applyLocale()
	m.refreshContent()
	return m
}

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, st *session.State, loc types.Locale) error {
	logging.UI("starting interactive session (locale=%s)", loc)
	p := tea.NewProgram(New(ctx, st, loc), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Locale returns the active locale.
func (m Model) Locale() types.Locale { return m.locale }

// ActivePane returns the focused pane.
func (m Model) ActivePane() Pane { return m.pane }

// Notice returns the pending notice for p.
func (m Model) Notice(p Pane) string { return m.notices[p] }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchResultMsg:
		if msg.err != nil {
			m.notices[PaneExplore] = retryNotice(msg.err, m.locale)
		} else {
			delete(m.notices, PaneExplore)
			m.search.SetValue("")
			logging.UIDebug("showing %s", msg.entity.ID)
		}
		m.refreshContent()
		m.viewport.GotoTop()
		return m, nil

	case roadmapResultMsg:
		if msg.err != nil {
			m.notices[PaneRoadmap] = retryNotice(msg.err, m.locale)
		} else {
			delete(m.notices, PaneRoadmap)
			m.idea.SetValue("")
		}
		m.refreshContent()
		m.viewport.GotoTop()
		return m, nil

	case chatResultMsg:
		if msg.err != nil {
			m.notices[PaneTutor] = errors.Notice(msg.err, m.locale)
		} else {
			delete(m.notices, PaneTutor)
		}
		m.refreshContent()
		m.viewport.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.anyBusy() {
			// the chat log grows as soon as a send starts
			m.refreshContent()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// retryNotice is the notice for a failed submission whose input is kept, so
// Enter sends it again.
func retryNotice(err error, loc types.Locale) string {
	n := errors.Notice(err, loc)
	if errors.Retryable(err) {
		n += " " + T(LabelRetryHint, loc)
	}
	return n
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyTab:
		m.focusPane((m.pane + 1) % paneCount)
		return m, nil

	case tea.KeyShiftTab:
		m.focusPane((m.pane + paneCount - 1) % paneCount)
		return m, nil

	case tea.KeyCtrlL:
		m.locale = m.locale.Toggle()
		logging.UI("locale switched to %s", m.locale)
		m.applyLocale()
		m.refreshContent()
		return m, nil

	case tea.KeyEsc:
		delete(m.notices, m.pane)
		if m.pane == PaneExplore {
			m.state.Selection.Clear()
			m.search.SetValue("")
		}
		m.refreshContent()
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyUp, tea.KeyDown:
		if m.pane == PaneExplore && m.search.Value() == "" && m.state.Selection.Selected() == nil {
			m.moveCursor(msg.Type)
			m.refreshContent()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	switch m.pane {
	case PaneExplore:
		m.search, cmd = m.search.Update(msg)
	case PaneRoadmap:
		m.idea, cmd = m.idea.Update(msg)
	case PaneTutor:
		m.chat, cmd = m.chat.Update(msg)
	}
	return m, cmd
}

// submit dispatches the focused pane's action. A flow that already has a
// call in flight ignores the submission.
func (m Model) submit() (tea.Model, tea.Cmd) {
	ctx, st, loc := m.ctx, m.state, m.locale

	switch m.pane {
	case PaneExplore:
		query := strings.TrimSpace(m.search.Value())
		if query == "" {
			if len(m.catalog) == 0 {
				return m, nil
			}
			if _, err := st.Selection.Select(m.catalog[m.cursor].ID); err != nil {
				m.notices[PaneExplore] = errors.Notice(err, loc)
			}
			m.refreshContent()
			m.viewport.GotoTop()
			return m, nil
		}
		if st.Selection.Busy() {
			return m, nil
		}
		return m, tea.Batch(func() tea.Msg {
			e, err := st.Selection.Search(ctx, query, loc)
			return searchResultMsg{entity: e, err: err}
		}, m.spinner.Tick)

	case PaneRoadmap:
		idea := strings.TrimSpace(m.idea.Value())
		if idea == "" || st.Roadmap.Busy() {
			return m, nil
		}
		return m, tea.Batch(func() tea.Msg {
			r, err := st.Roadmap.Generate(ctx, idea, loc)
			return roadmapResultMsg{roadmap: r, err: err}
		}, m.spinner.Tick)

	case PaneTutor:
		text := strings.TrimSpace(m.chat.Value())
		if text == "" || st.Conversation.Busy() {
			return m, nil
		}
		m.chat.Reset()
		return m, tea.Batch(func() tea.Msg {
			_, err := st.Conversation.Send(ctx, text, loc)
			return chatResultMsg{err: err}
		}, m.spinner.Tick)
	}
	return m, nil
}

func (m *Model) focusPane(p Pane) {
	m.pane = p
	m.search.Blur()
	m.idea.Blur()
	m.chat.Blur()
	switch p {
	case PaneExplore:
		m.search.Focus()
	case PaneRoadmap:
		m.idea.Focus()
	case PaneTutor:
		m.chat.Focus()
	}
	m.refreshContent()
	if p == PaneTutor {
		m.viewport.GotoBottom()
	} else {
		m.viewport.GotoTop()
	}
}

func (m *Model) moveCursor(dir tea.KeyType) {
	if len(m.catalog) == 0 {
		return
	}
	if dir == tea.KeyUp {
		m.cursor = (m.cursor + len(m.catalog) - 1) % len(m.catalog)
	} else {
		m.cursor = (m.cursor + 1) % len(m.catalog)
	}
}

func (m *Model) applyLocale() {
	m.search.Placeholder = T(LabelSearchPlaceholder, m.locale)
	m.idea.Placeholder = T(LabelIdeaPlaceholder, m.locale)
	m.chat.Placeholder = T(LabelQuestionPlaceholder, m.locale)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	vpHeight := height - chromeHeight
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.search.Width = width - 6
	m.idea.Width = width - 6
	m.chat.SetWidth(width - 4)
	m.renderer = NewThemedRenderer(width-4, m.styles.Theme)
	m.ready = true
	m.refreshContent()
}

func (m Model) anyBusy() bool {
	return m.state.Selection.Busy() || m.state.Roadmap.Busy() || m.state.Conversation.Busy()
}

func (m Model) paneBusy(p Pane) bool {
	switch p {
	case PaneRoadmap:
		return m.state.Roadmap.Busy()
	case PaneTutor:
		return m.state.Conversation.Busy()
	}
	return m.state.Selection.Busy()
}

// ContentMarkdown returns the markdown shown in the viewport for the active
// pane.
func (m Model) ContentMarkdown() string {
	loc := m.locale
	switch m.pane {
	case PaneRoadmap:
		var b strings.Builder
		fmt.Fprintf(&b, "# %s\n\n%s\n\n", T(LabelProjectBuilder, loc), T(LabelProjectIntro, loc))
		b.WriteString(RoadmapMarkdown(m.state.Roadmap.Current(), loc))
		return b.String()

	case PaneTutor:
		var b strings.Builder
		fmt.Fprintf(&b, "# %s\n\n_%s_\n\n", T(LabelTutor, loc), T(LabelTutorSubtitle, loc))
		b.WriteString(ChatMarkdown(m.state.Conversation.Messages(), loc))
		return b.String()
	}

	if selected := m.state.Selection.Selected(); selected != nil {
		return EntityMarkdown(selected, loc)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n## %s\n\n", T(LabelHeadline, loc), T(LabelIntro, loc), T(LabelSuggested, loc))
	for i, e := range m.catalog {
		marker := "  "
		if i == m.cursor {
			marker = "▸ "
		}
		fmt.Fprintf(&b, "%s%s **%s** · %s  \n", marker, e.Icon, e.Name, DifficultyLabel(e.Difficulty, loc))
	}
	return b.String()
}

func (m *Model) refreshContent() {
	m.viewport.SetContent(m.renderer.Render(m.ContentMarkdown()))
}

// View implements tea.Model.
func (m Model) View() string {
	loc := m.locale
	width := m.width
	if width <= 0 {
		width = 80
	}

	header := m.styles.Header.Width(width).Render(
		fmt.Sprintf("%s · %s   [ctrl+l: %s]", T(LabelAppTitle, loc), T(LabelTagline, loc), T(LabelSwitchLanguage, loc)),
	)

	tabs := make([]string, 0, paneCount)
	for p := Pane(0); p < paneCount; p++ {
		style := m.styles.Tab
		if p == m.pane {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(p.Label(loc)))
	}
	if selected := m.state.Selection.Selected(); selected != nil {
		tabs = append(tabs, "   ", m.styles.EntityName(selected), " ", m.styles.DifficultyBadge(selected.Difficulty, loc))
	}

	var input string
	switch m.pane {
	case PaneExplore:
		input = m.search.View()
	case PaneRoadmap:
		input = m.idea.View()
	case PaneTutor:
		input = m.chat.View()
	}

	status := ""
	if m.paneBusy(m.pane) {
		status = m.spinner.View() + " " + m.styles.Muted.Render(m.busyLabel())
	} else if n := m.notices[m.pane]; n != "" {
		status = m.styles.Error.Render(n)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		m.styles.RenderDivider(width),
		m.viewport.View(),
		m.styles.RenderDivider(width),
		m.styles.Content.Render(input),
		m.styles.Content.Render(status),
		m.styles.Footer.Render(T(LabelHelp, loc)),
	)
}

func (m Model) busyLabel() string {
	switch m.pane {
	case PaneRoadmap:
		return T(LabelPlanning, m.locale)
	case PaneTutor:
		return T(LabelThinking, m.locale)
	}
	return T(LabelSearching, m.locale)
}
