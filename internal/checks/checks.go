// Package checks implements the structural checks run against one
// patient export. Each check is a pure function of the resolved file
// inventory; failures are returned as data, never as Go errors, so a
// failing check can never stop the checks after it.
package checks

import "exportcheck/internal/inventory"

// Result is the outcome of one check: either a pass, or an ordered list
// of human-readable failure messages. It is never both.
type Result struct {
	msgs []string
}

// Pass returns a passing Result.
func Pass() Result { return Result{} }

// Fail returns a failing Result carrying the given messages.
func Fail(msgs ...string) Result { return Result{msgs: msgs} }

// Passed reports whether the check produced no failure messages.
func (r Result) Passed() bool { return len(r.msgs) == 0 }

// Messages returns the failure messages in the order they were produced.
func (r Result) Messages() []string { return r.msgs }

// Check is one independently runnable structural check.
type Check interface {
	Name() string
	Run(inv *inventory.Inventory) Result
}
