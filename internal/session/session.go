// Package session composes the profile form controller and the chat menu
// state machine into one interactive session.
//
// A Session starts on the form screen. Chat mode becomes reachable only after
// a successful submit has assigned an order id, and leaving chat mode resets
// the menu without touching the profile.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/muurk/orderchat/internal/chat"
	"github.com/muurk/orderchat/internal/logging"
	"github.com/muurk/orderchat/internal/profile"
)

// Mode is the active screen.
type Mode int

const (
	ModeForm Mode = iota
	ModeChat
)

// String returns the mode name used in logs
func (m Mode) String() string {
	switch m {
	case ModeForm:
		return "form"
	case ModeChat:
		return "chat"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ErrChatUnavailable is returned by EnterChat before an order id exists.
var ErrChatUnavailable = errors.New("chat is unavailable until an order has been created")

// Session holds the state of one run of the application.
// It is driven from a single event loop and is not safe for concurrent use.
type Session struct {
	id           string
	controller   *profile.Controller
	mode         Mode
	chatState    chat.State
	wrongOrderID string
}

// Option configures a Session.
type Option func(*Session)

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// New creates a session on the form screen with an empty profile.
func New(gen profile.IDGenerator, opts ...Option) *Session {
	s := &Session{
		id:         uuid.New().String(),
		controller: profile.NewController(gen),
		mode:       ModeForm,
		chatState:  chat.StateAbsent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session correlation id.
func (s *Session) ID() string { return s.id }

// Mode returns the active screen.
func (s *Session) Mode() Mode { return s.mode }

// Profile returns a snapshot of the profile.
func (s *Session) Profile() profile.UserProfile { return s.controller.Profile() }

// ChatState returns the selected chat option.
func (s *Session) ChatState() chat.State { return s.chatState }

// WrongOrderID returns the text entered in the wrong-order prompt.
func (s *Session) WrongOrderID() string { return s.wrongOrderID }

// UpdateField edits the profile. Edits are accepted in either mode.
func (s *Session) UpdateField(f profile.Field, value string) {
	s.controller.UpdateField(f, value)
	logging.LogFieldUpdate(s.id, f.String(), len(value))
}

// Submit validates the profile and assigns an order id.
func (s *Session) Submit() (string, error) {
	id, err := s.controller.Submit()
	if err != nil {
		var subErr *profile.SubmissionError
		if errors.As(err, &subErr) {
			logging.LogSubmission(s.id, "", subErr.MissingFields())
		}
		return "", err
	}
	logging.LogSubmission(s.id, id, nil)
	return id, nil
}

// CanEnterChat reports whether the chat entry point is offered.
func (s *Session) CanEnterChat() bool {
	return s.controller.Profile().HasOrder()
}

// EnterChat switches to chat mode with no option selected.
func (s *Session) EnterChat() error {
	if !s.CanEnterChat() {
		logging.Warn("Chat entry refused")
		return ErrChatUnavailable
	}
	s.setMode(ModeChat)
	s.chatState = chat.StateAbsent
	return nil
}

// Dispatch applies a chat event and returns the dialog it raises.
// Outside chat mode it does nothing.
func (s *Session) Dispatch(e chat.Event) chat.Dialog {
	if s.mode != ModeChat {
		logging.Debug("Chat event ignored outside chat mode")
		return chat.Dialog{}
	}

	from := s.chatState
	next, dialog := chat.Transition(from, e)
	s.chatState = next
	logging.LogTransition(s.id, from.String(), e.String(), next.String())
	return dialog
}

// SetWrongOrderID stores the wrong-order text. It is never validated.
func (s *Session) SetWrongOrderID(text string) {
	s.wrongOrderID = text
}

// GoBack returns to the form screen and clears the chat selection.
// The profile, including its order id, is kept.
func (s *Session) GoBack() {
	s.setMode(ModeForm)
	s.chatState = chat.StateAbsent
	s.wrongOrderID = ""
}

// View renders the chat screen for the current state.
func (s *Session) View() chat.View {
	return chat.Render(s.chatState, s.controller.Profile(), s.wrongOrderID)
}

func (s *Session) setMode(m Mode) {
	if s.mode == m {
		return
	}
	logging.LogModeChange(s.id, s.mode.String(), m.String())
	s.mode = m
}
