package chat

import (
	"slices"

	"github.com/muurk/orderchat/internal/profile"
)

// Fixed copy used by the chat screen.
const (
	Greeting         = "Hi, how can I help you?"
	StatusMessage    = "Order is on the way and will arrive shortly."
	WrongOrderPrompt = "Enter your Order ID:"
	WrongOrderHint   = "Order ID"
	ProblemPrompt    = "What seems to be the problem?"
	DetailsHeading   = "Order Details:"
	SubmitLabel      = "Submit"
	RefundLabel      = "1. Do you want a refund?"
	InvestigateLabel = "2. Order not delivered but showing delivered?"
	ShowDetailsLabel = "1. Display Order Details"
	ReportWrongLabel = "2. Received Wrong Order"
	CheckStatusLabel = "3. Has the Order Been Dispatched?"
)

// MenuItem is a selectable option and the event it raises.
type MenuItem struct {
	Label string
	Event Event
}

// Menu is the top-level menu, rendered in every chat state.
var Menu = []MenuItem{
	{Label: ShowDetailsLabel, Event: EventShowDetails},
	{Label: ReportWrongLabel, Event: EventReportWrongOrder},
	{Label: CheckStatusLabel, Event: EventCheckStatus},
}

// View is everything the chat screen shows for one state.
type View struct {
	Greeting string
	Menu     []MenuItem

	// Response block for the current state; empty for StateAbsent.
	Lines   []string
	Actions []MenuItem

	// Input is set in StateWrongOrder.
	Input *InputField
}

// InputField describes the free-text box in the wrong-order state.
type InputField struct {
	Prompt      string
	Placeholder string
	Value       string
}

// Render builds the view for s. p is read, never modified.
func Render(s State, p profile.UserProfile, wrongOrderID string) View {
	v := View{
		Greeting: Greeting,
		Menu:     slices.Clone(Menu),
	}

	switch s {
	case StateDetails:
		v.Lines = DetailLines(p)
	case StateStatus:
		v.Lines = []string{StatusMessage}
	case StateWrongOrder:
		v.Input = &InputField{
			Prompt:      WrongOrderPrompt,
			Placeholder: WrongOrderHint,
			Value:       wrongOrderID,
		}
		v.Actions = []MenuItem{{Label: SubmitLabel, Event: EventSubmitWrongOrder}}
	case StateWrongOrderOptions:
		v.Lines = []string{ProblemPrompt}
		v.Actions = []MenuItem{
			{Label: RefundLabel, Event: EventChooseRefund},
			{Label: InvestigateLabel, Event: EventChooseInvestigate},
		}
	}

	return v
}

// DetailLines formats the order details snapshot.
func DetailLines(p profile.UserProfile) []string {
	return []string{
		DetailsHeading,
		"Order ID: " + p.OrderID,
		"Name: " + p.FullName(),
		"Address: " + p.Address,
		"Phone: " + p.Phone,
		"Gender: " + string(p.Gender),
	}
}

// Selectable returns the menu followed by the state's actions, in the order
// the cursor walks them.
func (v View) Selectable() []MenuItem {
	items := make([]MenuItem, 0, len(v.Menu)+len(v.Actions))
	items = append(items, v.Menu...)
	items = append(items, v.Actions...)
	return items
}
