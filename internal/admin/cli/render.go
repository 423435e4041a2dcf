package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor  = color.New(color.FgGreen)
	errorColor    = color.New(color.FgRed)
	headerColor   = color.New(color.Bold)
	badgeColor    = color.New(color.FgYellow, color.Bold)
	skeletonColor = color.New(color.FgHiBlack)
)

// notifier renders transient notifications the way the browser dashboard
// showed toasts.
type notifier struct {
	w io.Writer
}

func (n *notifier) Success(msg string) {
	successColor.Fprintf(n.w, "✓ %s\n", msg)
}

func (n *notifier) Error(msg string) {
	errorColor.Fprintf(n.w, "✗ %s\n", msg)
}

// skeleton prints fixed-count placeholder rows while a screen is loading.
// Purely cosmetic.
func skeleton(w io.Writer, rows int) {
	for i := 0; i < rows; i++ {
		skeletonColor.Fprintln(w, strings.Repeat("░", 40))
	}
}

func header(w io.Writer, title string) {
	headerColor.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("─", len([]rune(title))))
}

func pageLine(w io.Writer, page, totalPages int) {
	fmt.Fprintf(w, "page %d of %d\n", page, totalPages)
}
