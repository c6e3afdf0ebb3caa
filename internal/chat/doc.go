// Package chat implements the scripted support menu shown after an order has
// been created.
//
// The menu is an explicit finite-state machine. State is the currently
// selected option, Transition maps (State, Event) to the next State plus an
// optional advisory Dialog, and Render turns a State and a read-only profile
// snapshot into a View. None of these functions touch the terminal; the tui
// package draws whatever View says.
//
// The three top-level options are always offered, so choosing one of them is
// a valid transition from every state. Returning to the form screen is not a
// chat event; see session.Session.GoBack.
package chat
