package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/orderchat/internal/chat"
	"github.com/muurk/orderchat/internal/session"
)

// GoBackText labels the button returning to the form.
const GoBackText = "Go Back"

type slotKind int

const (
	slotMenu slotKind = iota
	slotAction
	slotInput
	slotBack
)

// chatSlot is one stop of the cursor on the chat screen.
type chatSlot struct {
	kind slotKind
	item chat.MenuItem
}

// ChatModel is the scripted support screen.
type ChatModel struct {
	session *session.Session
	styles  Styles

	input  textinput.Model
	cursor int

	// Set during Update and collected by AppModel
	dialog        *chat.Dialog
	backRequested bool

	Width  int
	Height int

	Help help.Model
	Keys chatKeyMap
}

// NewChatModel creates the chat screen for a session already in chat mode.
func NewChatModel(sess *session.Session, styles Styles) ChatModel {
	ti := textinput.New()
	ti.Placeholder = chat.WrongOrderHint
	ti.CharLimit = 32
	ti.Width = InputWidth
	ti.Prompt = "› "
	ti.Cursor.SetMode(cursor.CursorStatic)

	return ChatModel{
		session: sess,
		styles:  styles,
		input:   ti,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Help:    help.New(),
		Keys:    newChatKeyMap(),
	}
}

// Init initializes the chat screen
func (m ChatModel) Init() tea.Cmd {
	return nil
}

// slots lists the cursor stops for the current state: the menu, then the
// response block's input and actions, then the go back button.
func (m ChatModel) slots() []chatSlot {
	v := m.session.View()

	slots := make([]chatSlot, 0, len(v.Menu)+len(v.Actions)+2)
	for _, item := range v.Menu {
		slots = append(slots, chatSlot{kind: slotMenu, item: item})
	}
	if v.Input != nil {
		slots = append(slots, chatSlot{kind: slotInput})
	}
	for _, item := range v.Actions {
		slots = append(slots, chatSlot{kind: slotAction, item: item})
	}
	return append(slots, chatSlot{kind: slotBack})
}

func (m ChatModel) currentSlot() chatSlot {
	slots := m.slots()
	if m.cursor >= len(slots) {
		return slots[len(slots)-1]
	}
	return slots[m.cursor]
}

// Cursor returns the index of the highlighted slot.
func (m ChatModel) Cursor() int {
	return m.cursor
}

// InputFocused reports whether keystrokes go to the wrong-order input.
func (m ChatModel) InputFocused() bool {
	return m.currentSlot().kind == slotInput
}

// Update handles messages and updates the model
func (m ChatModel) Update(msg tea.Msg) (ChatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m ChatModel) handleKey(msg tea.KeyMsg) (ChatModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Back):
		m.backRequested = true
		return m, nil

	case key.Matches(msg, m.Keys.Up):
		return m.moveCursor(-1), nil

	case key.Matches(msg, m.Keys.Down):
		return m.moveCursor(1), nil

	case key.Matches(msg, m.Keys.Select):
		return m.activate(m.currentSlot()), nil
	}

	if m.InputFocused() {
		return m.updateInput(msg)
	}

	if key.Matches(msg, m.Keys.Choose) {
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(chat.Menu) {
			return m.dispatch(chat.Menu[idx].Event), nil
		}
	}

	return m, nil
}

func (m ChatModel) updateInput(msg tea.Msg) (ChatModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SetWrongOrderID(m.input.Value())
	return m, cmd
}

func (m ChatModel) moveCursor(delta int) ChatModel {
	n := len(m.slots())
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.syncInputFocus()
	return m
}

func (m ChatModel) activate(slot chatSlot) ChatModel {
	switch slot.kind {
	case slotBack:
		m.backRequested = true
		return m
	case slotInput:
		return m.dispatch(chat.EventSubmitWrongOrder)
	default:
		return m.dispatch(slot.item.Event)
	}
}

// dispatch applies an event to the session. When the new state has a
// response block to interact with, the cursor jumps to its first stop.
func (m ChatModel) dispatch(e chat.Event) ChatModel {
	before := m.session.ChatState()
	dialog := m.session.Dispatch(e)
	if !dialog.Empty() {
		m.dialog = &dialog
	}

	after := m.session.ChatState()
	if after != before {
		if after == chat.StateWrongOrder {
			m.input.SetValue(m.session.WrongOrderID())
		}
		v := m.session.View()
		if v.Input != nil || len(v.Actions) > 0 {
			m.cursor = len(v.Menu)
		} else if idx := menuIndex(e); idx >= 0 {
			m.cursor = idx
		}
	}
	if n := len(m.slots()); m.cursor >= n {
		m.cursor = n - 1
	}
	m.syncInputFocus()
	return m
}

// menuIndex returns the position of e in the chat menu, or -1.
func menuIndex(e chat.Event) int {
	for i, item := range chat.Menu {
		if item.Event == e {
			return i
		}
	}
	return -1
}

func (m *ChatModel) syncInputFocus() {
	if m.InputFocused() {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// TakeDialog returns and clears the dialog raised by the last update.
func (m *ChatModel) TakeDialog() *chat.Dialog {
	d := m.dialog
	m.dialog = nil
	return d
}

// IsBackRequested reports whether the user asked to return to the form.
func (m ChatModel) IsBackRequested() bool {
	return m.backRequested
}

// View renders the chat screen
func (m ChatModel) View() string {
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.styles.ChatAccent, m.Width, m.Height)
}

func (m ChatModel) buildContent() string {
	v := m.session.View()
	cur := m.cursor

	var menu []string
	menu = append(menu, m.styles.Text.Render(v.Greeting), "")
	for i, item := range v.Menu {
		menu = append(menu, RenderMenuItem(item.Label, m.styles.ChatButton, cur == i))
	}

	var b strings.Builder
	b.WriteString(m.styles.Bubble.Render(lipgloss.JoinVertical(lipgloss.Left, menu...)))
	b.WriteString("\n")

	if response := m.buildResponse(v, len(v.Menu)); response != "" {
		b.WriteString(m.styles.Bubble.Render(response))
		b.WriteString("\n")
	}

	backIdx := len(m.slots()) - 1
	b.WriteString(RenderButton(GoBackText, m.styles.BackButton, cur == backIdx))
	b.WriteString("\n")

	return b.String()
}

// buildResponse renders the block for the selected option. offset is the
// slot index of the block's first stop.
func (m ChatModel) buildResponse(v chat.View, offset int) string {
	var lines []string
	for _, line := range v.Lines {
		lines = append(lines, m.styles.Text.Render(line))
	}

	idx := offset
	if v.Input != nil {
		lines = append(lines, m.styles.Text.Render(v.Input.Prompt), m.input.View())
		idx++
	}

	for _, action := range v.Actions {
		lines = append(lines, RenderButton(action.Label, m.styles.ChatButton, m.cursor == idx))
		idx++
	}

	if len(lines) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
