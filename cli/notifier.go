package cli

import (
	"fmt"
	"io"

	"github.com/autolife-uz/autolife-go/auth"
)

// TerminalNotifier renders the manager's transient notifications as coloured
// lines, the terminal stand-in for the web client's toasts.
type TerminalNotifier struct {
	Out io.Writer
}

func (n TerminalNotifier) Notify(level auth.Level, message string) {
	colour, ok := levelColors[level.String()]
	if !ok {
		colour = Gray
	}
	fmt.Fprintf(n.Out, "%s» %s%s\n", colour, message, ResetColor)
}
