package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/orderchat/internal/chat"
	"github.com/muurk/orderchat/internal/logging"
	"github.com/muurk/orderchat/internal/session"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenForm Screen = "form"
	ScreenChat Screen = "chat"
)

// AppModel is the top-level coordinator model that manages screen transitions
// and the dialog overlay.
type AppModel struct {
	CurrentScreen Screen

	FormModel FormModel
	ChatModel ChatModel

	Session *session.Session
	Styles  Styles

	// Dialog is the advisory currently shown, if any
	Dialog *chat.Dialog

	Width  int
	Height int

	Help       help.Model
	DialogKeys dialogKeyMap
}

// NewAppModel creates the application model on the form screen.
func NewAppModel(sess *session.Session, styles Styles) AppModel {
	return AppModel{
		CurrentScreen: ScreenForm,
		FormModel:     NewFormModel(sess, styles),
		Session:       sess,
		Styles:        styles,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Help:          help.New(),
		DialogKeys:    newDialogKeyMap(),
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.FormModel.Init()
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.FormModel.Width = msg.Width
		m.FormModel.Height = msg.Height
		m.ChatModel.Width = msg.Width
		m.ChatModel.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Any key dismisses an open dialog
		if m.Dialog != nil {
			m.Dialog = nil
			return m, nil
		}
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenForm:
		m.FormModel, cmd = m.FormModel.Update(msg)
		if d := m.FormModel.TakeDialog(); d != nil {
			m.Dialog = d
		}
		if m.FormModel.IsChatRequested() {
			return m.transitionTo(ScreenChat)
		}

	case ScreenChat:
		m.ChatModel, cmd = m.ChatModel.Update(msg)
		if d := m.ChatModel.TakeDialog(); d != nil {
			m.Dialog = d
		}
		if m.ChatModel.IsBackRequested() {
			return m.goBack()
		}
	}

	return m, cmd
}

// transitionTo transitions to a new screen
func (m AppModel) transitionTo(screen Screen) (tea.Model, tea.Cmd) {
	switch screen {
	case ScreenChat:
		if err := m.Session.EnterChat(); err != nil {
			// The chat button is hidden until an order exists
			logging.Warn("Chat transition refused")
			m.FormModel.chatRequested = false
			return m, nil
		}
		m.ChatModel = NewChatModel(m.Session, m.Styles)
		m.ChatModel.Width = m.Width
		m.ChatModel.Height = m.Height
		m.CurrentScreen = ScreenChat
		return m, m.ChatModel.Init()

	case ScreenForm:
		m.FormModel = NewFormModel(m.Session, m.Styles)
		m.FormModel.Width = m.Width
		m.FormModel.Height = m.Height
		m.CurrentScreen = ScreenForm
		return m, m.FormModel.Init()
	}

	return m, nil
}

// goBack leaves chat mode. The profile survives; the chat selection does not.
func (m AppModel) goBack() (tea.Model, tea.Cmd) {
	if m.CurrentScreen != ScreenChat {
		return m, nil
	}
	m.Session.GoBack()
	return m.transitionTo(ScreenForm)
}

// View renders the current screen, with the dialog on top when one is open
func (m AppModel) View() string {
	if m.Dialog != nil {
		return RenderModal(m.renderDialog(*m.Dialog), m.Width, m.Height)
	}

	switch m.CurrentScreen {
	case ScreenForm:
		return m.FormModel.View()
	case ScreenChat:
		return m.ChatModel.View()
	default:
		return "Unknown screen"
	}
}

// renderDialog renders an advisory box
func (m AppModel) renderDialog(d chat.Dialog) string {
	accent := m.Styles.ChatButton
	if d.Title == ErrorTitle {
		accent = ErrorColor
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(TextColor).Render(d.Message))
	b.WriteString("\n\n")
	b.WriteString(m.Help.View(m.DialogKeys))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 3).
		Render(b.String())
}
