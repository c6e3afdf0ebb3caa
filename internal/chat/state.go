package chat

import "fmt"

// State is the selected option of the chat menu.
type State int

const (
	StateAbsent State = iota
	StateDetails
	StateStatus
	StateWrongOrder
	StateWrongOrderOptions
)

// String returns the option key used in logs
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateDetails:
		return "details"
	case StateStatus:
		return "status"
	case StateWrongOrder:
		return "wrongOrder"
	case StateWrongOrderOptions:
		return "wrongOrderOptions"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event is a discrete user choice inside chat mode.
type Event int

const (
	EventShowDetails Event = iota
	EventReportWrongOrder
	EventCheckStatus
	EventSubmitWrongOrder
	EventChooseRefund
	EventChooseInvestigate
)

// String returns the event name used in logs
func (e Event) String() string {
	switch e {
	case EventShowDetails:
		return "show_details"
	case EventReportWrongOrder:
		return "report_wrong_order"
	case EventCheckStatus:
		return "check_status"
	case EventSubmitWrongOrder:
		return "submit_wrong_order"
	case EventChooseRefund:
		return "choose_refund"
	case EventChooseInvestigate:
		return "choose_investigate"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Dialog is a fire-and-forget advisory shown to the user.
// The zero value means no dialog.
type Dialog struct {
	Title   string
	Message string
}

// Empty reports whether d carries no dialog.
func (d Dialog) Empty() bool {
	return d.Title == "" && d.Message == ""
}

// Advisory dialogs raised from the wrong-order options.
var (
	RefundDialog      = Dialog{Title: "Refund", Message: "Your refund has been processed."}
	InvestigateDialog = Dialog{Title: "Issue", Message: "We will investigate the issue."}
)

// Transition returns the state that follows s when e occurs, and the dialog
// the event raises, if any.
//
// Top-level choices are accepted from every state. Sub-menu events are only
// meaningful in the state that offers them; elsewhere they leave s unchanged
// and raise nothing.
func Transition(s State, e Event) (State, Dialog) {
	switch e {
	case EventShowDetails:
		return StateDetails, Dialog{}
	case EventReportWrongOrder:
		return StateWrongOrder, Dialog{}
	case EventCheckStatus:
		return StateStatus, Dialog{}
	case EventSubmitWrongOrder:
		if s == StateWrongOrder {
			return StateWrongOrderOptions, Dialog{}
		}
	case EventChooseRefund:
		if s == StateWrongOrderOptions {
			return s, RefundDialog
		}
	case EventChooseInvestigate:
		if s == StateWrongOrderOptions {
			return s, InvestigateDialog
		}
	}
	return s, Dialog{}
}

// Accepts reports whether e is offered to the user while in s.
func Accepts(s State, e Event) bool {
	switch e {
	case EventShowDetails, EventReportWrongOrder, EventCheckStatus:
		return true
	case EventSubmitWrongOrder:
		return s == StateWrongOrder
	case EventChooseRefund, EventChooseInvestigate:
		return s == StateWrongOrderOptions
	default:
		return false
	}
}
