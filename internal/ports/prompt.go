package ports

import "errors"

// ErrInputClosed is returned when the person at the console can no longer answer.
var ErrInputClosed = errors.New("input closed")

// PromptPort asks a person to pick one of several labelled options.
type PromptPort interface {
	// Choose shows title and options and returns the 0-based index picked.
	// Invalid answers are handled inside the port; only a closed input is
	// reported, as ErrInputClosed.
	Choose(title string, options []string) (int, error)
}
