package session

import (
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muurk/orderchat/internal/chat"
	"github.com/muurk/orderchat/internal/logging"
	"github.com/muurk/orderchat/internal/profile"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fillProfile(s *Session, first, last, address, phone, gender string) {
	s.UpdateField(profile.FieldFirstName, first)
	s.UpdateField(profile.FieldLastName, last)
	s.UpdateField(profile.FieldAddress, address)
	s.UpdateField(profile.FieldPhone, phone)
	s.UpdateField(profile.FieldGender, gender)
}

func submittedSession(t *testing.T) *Session {
	t.Helper()
	s := New(profile.NewSequenceGenerator("ORD-4821"))
	fillProfile(s, "Ann", "Lee", "1 Rd", "555", "female")
	_, err := s.Submit()
	require.NoError(t, err)
	require.NoError(t, s.EnterChat())
	return s
}

func TestNew(t *testing.T) {
	s := New(nil)

	assert.Equal(t, ModeForm, s.Mode())
	assert.Equal(t, chat.StateAbsent, s.ChatState())
	assert.False(t, s.CanEnterChat())
	_, err := uuid.Parse(s.ID())
	assert.NoError(t, err, "session id should be a uuid")

	assert.Equal(t, "fixed", New(nil, WithID("fixed")).ID())
}

// Scenario A
func TestSubmit_IncompleteLeavesOrderAbsent(t *testing.T) {
	s := New(profile.NewRandomGenerator())
	fillProfile(s, "", "Lee", "1 Rd", "555", "male")

	_, err := s.Submit()

	require.Error(t, err)
	assert.True(t, errors.Is(err, profile.ErrIncomplete))
	assert.False(t, s.Profile().HasOrder())
	assert.False(t, s.CanEnterChat())
	assert.ErrorIs(t, s.EnterChat(), ErrChatUnavailable)
	assert.Equal(t, ModeForm, s.Mode())
}

// Scenario B
func TestSubmit_CompleteEnablesChat(t *testing.T) {
	s := New(profile.NewRandomGenerator())
	fillProfile(s, "Ann", "Lee", "1 Rd", "555", "female")

	id, err := s.Submit()

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{1,4}$`), id)
	n, ok := profile.ParseOrderID(id)
	require.True(t, ok)
	assert.Less(t, n, 10000)
	assert.True(t, s.CanEnterChat())
	assert.Equal(t, ModeForm, s.Mode(), "submit alone does not switch screens")

	require.NoError(t, s.EnterChat())
	assert.Equal(t, ModeChat, s.Mode())
	assert.Equal(t, chat.StateAbsent, s.ChatState())
}

// Scenario C
func TestDetailsShowsSnapshot(t *testing.T) {
	s := submittedSession(t)

	s.Dispatch(chat.EventShowDetails)
	v := s.View()

	assert.Equal(t, chat.StateDetails, s.ChatState())
	assert.Equal(t, []string{
		"Order Details:",
		"Order ID: ORD-4821",
		"Name: Ann Lee",
		"Address: 1 Rd",
		"Phone: 555",
		"Gender: female",
	}, v.Lines)
}

// Scenario D
func TestWrongOrderSubmitIgnoresText(t *testing.T) {
	for _, text := range []string{"", "ORD-4821", "not an id at all"} {
		t.Run(text, func(t *testing.T) {
			s := submittedSession(t)

			s.Dispatch(chat.EventReportWrongOrder)
			require.Equal(t, chat.StateWrongOrder, s.ChatState())

			s.SetWrongOrderID(text)
			assert.Equal(t, text, s.View().Input.Value)

			dialog := s.Dispatch(chat.EventSubmitWrongOrder)
			assert.True(t, dialog.Empty())
			assert.Equal(t, chat.StateWrongOrderOptions, s.ChatState())
		})
	}
}

// Scenario E
func TestRefundKeepsOptions(t *testing.T) {
	s := submittedSession(t)
	s.Dispatch(chat.EventReportWrongOrder)
	s.Dispatch(chat.EventSubmitWrongOrder)

	dialog := s.Dispatch(chat.EventChooseRefund)

	assert.Equal(t, "Your refund has been processed.", dialog.Message)
	assert.Equal(t, chat.StateWrongOrderOptions, s.ChatState())

	dialog = s.Dispatch(chat.EventChooseInvestigate)
	assert.Equal(t, "We will investigate the issue.", dialog.Message)
	assert.Equal(t, chat.StateWrongOrderOptions, s.ChatState())
}

func TestTopLevelChoiceOverridesSubMenu(t *testing.T) {
	s := submittedSession(t)
	s.Dispatch(chat.EventReportWrongOrder)
	s.Dispatch(chat.EventSubmitWrongOrder)

	s.Dispatch(chat.EventCheckStatus)

	assert.Equal(t, chat.StateStatus, s.ChatState())
	assert.Equal(t, []string{chat.StatusMessage}, s.View().Lines)
}

func TestGoBackResetsChatOnly(t *testing.T) {
	states := []chat.Event{
		chat.EventShowDetails,
		chat.EventCheckStatus,
		chat.EventReportWrongOrder,
	}

	for _, e := range states {
		t.Run(e.String(), func(t *testing.T) {
			s := submittedSession(t)
			s.Dispatch(e)
			s.SetWrongOrderID("typed")
			before := s.Profile()

			s.GoBack()

			assert.Equal(t, ModeForm, s.Mode())
			assert.Equal(t, chat.StateAbsent, s.ChatState())
			assert.Empty(t, s.WrongOrderID())
			assert.Equal(t, before, s.Profile())
			assert.True(t, s.CanEnterChat())
		})
	}
}

func TestReenterChatStartsAbsent(t *testing.T) {
	s := submittedSession(t)
	s.Dispatch(chat.EventShowDetails)
	s.GoBack()

	require.NoError(t, s.EnterChat())
	assert.Equal(t, chat.StateAbsent, s.ChatState())
}

func TestDispatchOutsideChatIsIgnored(t *testing.T) {
	s := New(profile.NewSequenceGenerator("ORD-1"))

	dialog := s.Dispatch(chat.EventShowDetails)

	assert.True(t, dialog.Empty())
	assert.Equal(t, chat.StateAbsent, s.ChatState())
}

func TestSessionLogsCarrySessionID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetLogger(zap.New(core))
	defer logging.SetLogger(nil)

	s := New(profile.NewSequenceGenerator("ORD-9"), WithID("sess-1"))
	fillProfile(s, "Ann", "Lee", "1 Rd", "555", "other")
	_, err := s.Submit()
	require.NoError(t, err)
	require.NoError(t, s.EnterChat())
	s.Dispatch(chat.EventCheckStatus)
	s.GoBack()

	for _, entry := range logs.All() {
		if _, ok := entry.ContextMap()["session_id"]; !ok {
			continue
		}
		assert.Equal(t, "sess-1", entry.ContextMap()["session_id"], entry.Message)
	}
	assert.Equal(t, 1, logs.FilterMessage("Order created").Len())
	assert.Equal(t, 1, logs.FilterMessage("Chat transition").Len())
	assert.Equal(t, 2, logs.FilterMessage("Screen mode changed").Len())
	assert.Equal(t, 5, logs.FilterMessage("Profile field updated").Len())
}
