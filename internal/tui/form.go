package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/orderchat/internal/chat"
	"github.com/muurk/orderchat/internal/profile"
	"github.com/muurk/orderchat/internal/session"
)

// Focus slots on the form screen. The text inputs come first, in
// profile.Fields order.
const (
	focusFirstName = iota
	focusLastName
	focusAddress
	focusPhone
	focusGender
	focusSubmit
	focusChat
)

const textFieldCount = 4

// Labels and copy for the form screen
const (
	FormHeading      = "Enter your details"
	SubmitButtonText = "Submit Details and Get Order ID"
	ChatButtonText   = "Chat with our Bot"
	OrderCreated     = "Order Created"
	ErrorTitle       = "Error"
)

// FormModel is the profile entry screen.
type FormModel struct {
	session *session.Session
	styles  Styles

	inputs    [textFieldCount]textinput.Model
	genderIdx int
	focus     int

	// Set during Update and collected by AppModel
	dialog        *chat.Dialog
	chatRequested bool

	Width  int
	Height int

	Help help.Model
	Keys formKeyMap
}

// NewFormModel creates the form screen, pre-filled from the session profile.
func NewFormModel(sess *session.Session, styles Styles) FormModel {
	p := sess.Profile()

	var inputs [textFieldCount]textinput.Model
	for i := 0; i < textFieldCount; i++ {
		field := profile.Fields[i]
		ti := textinput.New()
		ti.Placeholder = field.Label()
		ti.CharLimit = 128
		ti.Width = InputWidth
		ti.Prompt = "› "
		ti.Cursor.SetMode(cursor.CursorStatic)
		ti.SetValue(p.Value(field))
		inputs[i] = ti
	}

	m := FormModel{
		session:   sess,
		styles:    styles,
		inputs:    inputs,
		genderIdx: genderIndex(p.Gender),
		focus:     focusFirstName,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Help:      help.New(),
		Keys:      newFormKeyMap(),
	}
	m.inputs[m.focus].Focus()
	return m
}

func genderIndex(g profile.Gender) int {
	for i, candidate := range profile.Genders {
		if candidate == g {
			return i
		}
	}
	return 0
}

// Init initializes the form
func (m FormModel) Init() tea.Cmd {
	return nil
}

// Focus returns the focused slot.
func (m FormModel) Focus() int {
	return m.focus
}

// slotCount is the number of focusable slots; the chat button only exists
// once an order id has been assigned.
func (m FormModel) slotCount() int {
	if m.session.CanEnterChat() {
		return focusChat + 1
	}
	return focusSubmit + 1
}

// Update handles messages and updates the model
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
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

func (m FormModel) handleKey(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Next):
		return m.moveFocus(1), nil

	case key.Matches(msg, m.Keys.Prev):
		return m.moveFocus(-1), nil

	case key.Matches(msg, m.Keys.Select):
		return m.activate()
	}

	if m.focus == focusGender {
		switch {
		case key.Matches(msg, m.Keys.Right):
			m.setGender(m.genderIdx + 1)
		case key.Matches(msg, m.Keys.Left):
			m.setGender(m.genderIdx - 1)
		}
		return m, nil
	}

	if m.focus < textFieldCount {
		return m.updateInput(msg)
	}

	return m, nil
}

// updateInput forwards a key to the focused text input and mirrors the new
// value into the session profile.
func (m FormModel) updateInput(msg tea.Msg) (FormModel, tea.Cmd) {
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if value := m.inputs[m.focus].Value(); value != before {
		m.session.UpdateField(profile.Fields[m.focus], value)
	}
	return m, cmd
}

func (m *FormModel) setGender(idx int) {
	n := len(profile.Genders)
	m.genderIdx = (idx%n + n) % n
	m.session.UpdateField(profile.FieldGender, string(profile.Genders[m.genderIdx]))
}

func (m FormModel) moveFocus(delta int) FormModel {
	if m.focus < textFieldCount {
		m.inputs[m.focus].Blur()
	}

	n := m.slotCount()
	m.focus = ((m.focus+delta)%n + n) % n

	if m.focus < textFieldCount {
		m.inputs[m.focus].Focus()
	}
	return m
}

// activate handles enter on the focused slot.
func (m FormModel) activate() (FormModel, tea.Cmd) {
	switch m.focus {
	case focusSubmit:
		return m.submit(), nil
	case focusChat:
		m.chatRequested = true
		return m, nil
	default:
		return m.moveFocus(1), nil
	}
}

func (m FormModel) submit() FormModel {
	id, err := m.session.Submit()
	if err != nil {
		m.dialog = &chat.Dialog{Title: ErrorTitle, Message: profile.IncompleteMessage}
		return m
	}
	m.dialog = &chat.Dialog{Title: OrderCreated, Message: "Your order ID is " + id}
	return m
}

// TakeDialog returns and clears the dialog raised by the last update.
func (m *FormModel) TakeDialog() *chat.Dialog {
	d := m.dialog
	m.dialog = nil
	return d
}

// IsChatRequested reports whether the user pressed the chat button.
func (m FormModel) IsChatRequested() bool {
	return m.chatRequested
}

// View renders the form screen
func (m FormModel) View() string {
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.styles.FormAccent, m.Width, m.Height)
}

func (m FormModel) buildContent() string {
	var b strings.Builder

	b.WriteString(m.styles.Heading.Render(FormHeading))
	b.WriteString("\n")

	for i := 0; i < textFieldCount; i++ {
		b.WriteString(m.styles.Label.Render(profile.Fields[i].Label() + ":"))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Label.Render(profile.FieldGender.Label() + ":"))
	b.WriteString("\n")
	b.WriteString(m.renderGender())
	b.WriteString("\n\n")

	b.WriteString(RenderButton(SubmitButtonText, m.styles.SubmitButton, m.focus == focusSubmit))
	b.WriteString("\n")

	if m.session.CanEnterChat() {
		b.WriteString("\n")
		b.WriteString(RenderButton(ChatButtonText, m.styles.ChatButton, m.focus == focusChat))
		b.WriteString("\n")
	}

	return b.String()
}

func (m FormModel) renderGender() string {
	label := profile.Genders[m.genderIdx].Label()
	if m.focus == focusGender {
		return RenderMenuItem("‹ "+label+" ›", m.styles.FormAccent, true)
	}
	return RenderMenuItem("  "+label, m.styles.FormAccent, false)
}
