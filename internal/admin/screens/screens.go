// Package screens contains the view-controllers of the admin console, one
// per entity collection. Each controller owns the snapshot of its last
// successful list fetch, the current page, and any transient edit state;
// nothing is shared between screens and nothing survives past the process.
//
// All controllers follow the same shape: fetch a page, keep the previous
// snapshot on failure, surface failures through the Notifier, and require
// interactive confirmation before deletes. After a successful delete every
// screen re-fetches the current page, so pagination counts stay correct.
package screens

// Notifier surfaces transient notifications to the operator. Failures are
// never fatal: every error degrades to a notification plus the previous
// good state.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer asks the operator to confirm a destructive or sensitive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// TotalPages derives the page count from a collection total, never less
// than one page.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}
