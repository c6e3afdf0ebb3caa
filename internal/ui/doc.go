// Package ui provides non-interactive terminal output for the orderchat CLI.
//
// This package uses Lipgloss to render styled boxes for commands that run once
// and exit, such as "orderchat order". The interactive screens live in the
// tui package.
//
// # Components
//
//   - Header: Command banner showing operation name and parameters
//   - Success box: Result title plus ordered key/value details
//   - Error box: Result title, error message and optional hints
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Create Order", "orderchat order", []ui.Detail{
//	    {Key: "Name", Value: "Ann Lee"},
//	})
//	p.PrintSuccess("Order Created", []ui.Detail{
//	    {Key: "Order ID", Value: "ORD-4821"},
//	})
//
// # Logging Integration
//
// Output here is curated for humans. Logging stays silent unless
// ORDERCHAT_LOG_LEVEL is set, so the boxes are never interleaved with log
// lines by default.
package ui
