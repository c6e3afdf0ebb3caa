package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStates = []State{StateAbsent, StateDetails, StateStatus, StateWrongOrder, StateWrongOrderOptions}

func TestTransition_TopLevelFromAnyState(t *testing.T) {
	tests := []struct {
		event Event
		want  State
	}{
		{EventShowDetails, StateDetails},
		{EventReportWrongOrder, StateWrongOrder},
		{EventCheckStatus, StateStatus},
	}

	for _, from := range allStates {
		for _, tt := range tests {
			t.Run(from.String()+"/"+tt.event.String(), func(t *testing.T) {
				got, dialog := Transition(from, tt.event)
				assert.Equal(t, tt.want, got)
				assert.True(t, dialog.Empty())
			})
		}
	}
}

func TestTransition_SubmitWrongOrder(t *testing.T) {
	got, dialog := Transition(StateWrongOrder, EventSubmitWrongOrder)
	assert.Equal(t, StateWrongOrderOptions, got)
	assert.True(t, dialog.Empty())
}

func TestTransition_RefundStaysInOptions(t *testing.T) {
	got, dialog := Transition(StateWrongOrderOptions, EventChooseRefund)
	assert.Equal(t, StateWrongOrderOptions, got)
	assert.Equal(t, RefundDialog, dialog)
	assert.Equal(t, "Your refund has been processed.", dialog.Message)
}

func TestTransition_InvestigateStaysInOptions(t *testing.T) {
	got, dialog := Transition(StateWrongOrderOptions, EventChooseInvestigate)
	assert.Equal(t, StateWrongOrderOptions, got)
	assert.Equal(t, InvestigateDialog, dialog)
	assert.Equal(t, "We will investigate the issue.", dialog.Message)
}

func TestTransition_SubEventsOutsideTheirStateAreIgnored(t *testing.T) {
	for _, from := range allStates {
		for _, e := range []Event{EventSubmitWrongOrder, EventChooseRefund, EventChooseInvestigate} {
			if Accepts(from, e) {
				continue
			}
			got, dialog := Transition(from, e)
			assert.Equal(t, from, got, "%s in %s", e, from)
			assert.True(t, dialog.Empty(), "%s in %s", e, from)
		}
	}
}

func TestAccepts(t *testing.T) {
	assert.True(t, Accepts(StateAbsent, EventShowDetails))
	assert.True(t, Accepts(StateWrongOrderOptions, EventCheckStatus))
	assert.True(t, Accepts(StateWrongOrder, EventSubmitWrongOrder))
	assert.False(t, Accepts(StateDetails, EventSubmitWrongOrder))
	assert.True(t, Accepts(StateWrongOrderOptions, EventChooseRefund))
	assert.False(t, Accepts(StateWrongOrder, EventChooseInvestigate))
	assert.False(t, Accepts(StateAbsent, Event(42)))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "absent", StateAbsent.String())
	assert.Equal(t, "wrongOrderOptions", StateWrongOrderOptions.String())
	assert.Equal(t, "State(9)", State(9).String())
	assert.Equal(t, "choose_refund", EventChooseRefund.String())
}
