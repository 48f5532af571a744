// @focus: #sys { term }
// Package terminal owns the platform boundary: the drawing surface, raw-mode lifecycle and input decoding.
//
// Features:
//   - Surface and EventSource contracts consumed by the render loop
//   - tcell-backed Screen with a simulation constructor for tests
//   - One-time conversion of tcell events into Event values
//   - Bracketed paste folded into a single EventPaste
//   - Crash-path restoration via EmergencyReset
package terminal
