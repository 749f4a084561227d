package cli

import (
	"fmt"
	"io"
	"strings"

	"prescreen/internal/diag"
)

// editorHost says how edit presents the session: the interactive editor,
// or a plain preview for pipes, CI, and verbose runs.
type editorHost struct {
	interactive bool
	notice      string
}

// isTerminal reports whether the editor can take over the writer.
var isTerminal = diag.IsTerminal

// chooseEditorHost maps the --ui value (auto|live|plain) onto a host.
// Verbose runs always print plainly so log lines stay readable.
func chooseEditorHost(mode string, verbose bool, stdout io.Writer) (editorHost, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return editorHost{interactive: !verbose && isTerminal(stdout)}, nil
	case "live":
		switch {
		case verbose:
			return editorHost{notice: "Verbose output replaces the interactive editor; printing the session instead."}, nil
		case !isTerminal(stdout):
			return editorHost{notice: "The interactive editor needs a terminal; printing the session instead."}, nil
		}
		return editorHost{interactive: true}, nil
	case "plain":
		return editorHost{}, nil
	}
	return editorHost{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
}
