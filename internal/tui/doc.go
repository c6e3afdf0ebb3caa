// Package tui implements the interactive terminal interface for orderchat.
//
// Built on Bubble Tea, it follows the Elm architecture: an AppModel
// coordinates two screen models and owns the advisory dialog overlay. All
// domain state lives in a session.Session; the models here only hold widget
// state (focus, cursor, text inputs) and translate key presses into session
// operations.
//
// # Screens
//
//  1. Form screen (FormModel):
//     - First name, last name, address and phone text inputs
//     - Gender selector cycled with ←/→
//     - "Submit Details and Get Order ID" button
//     - "Chat with our Bot" button, shown once an order id exists
//
//  2. Chat screen (ChatModel):
//     - Greeting and the three top-level menu options, always visible
//     - Response block for the selected option (details, status, wrong
//       order prompt, wrong order sub-options)
//     - "Go Back" button returning to the form
//
// # Dialogs
//
// Submissions and the wrong-order sub-options raise advisory dialogs. A
// dialog is drawn over the current screen and dismissed by any key. The state
// change that raised it has already happened by the time it is shown.
//
// # Layout
//
// Every screen is wrapped with RenderApplicationContainer, which draws the
// header, the bordered content area and the key help footer.
package tui
