package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"prescreen/internal/config"
	"prescreen/internal/question"
	"prescreen/internal/sessionstore"
	"prescreen/internal/ui/editor"
)

func runEditCommand(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(append([]string{"edit"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

// TestEditPlainPersistsSession verifies the first run saves and the next restores.
func TestEditPlainPersistsSession(t *testing.T) {
	cfgPath := writeProject(t, "")

	code, out, errOut := runEditCommand(t, "--config", cfgPath)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "loaded from fallback") {
		t.Fatalf("expected fallback source, got %q", out)
	}

	code, out, _ = runEditCommand(t, "--config", cfgPath)
	if code != ExitOK || !strings.Contains(out, "loaded from persisted") {
		t.Fatalf("expected persisted source, got %d %q", code, out)
	}

	code, out, _ = runEditCommand(t, "--config", cfgPath, "--reset")
	if code != ExitOK || !strings.Contains(out, "loaded from fallback") {
		t.Fatalf("expected reset to rehydrate, got %d %q", code, out)
	}
}

// TestEditLiveSavesEdits verifies edits made in the live editor are persisted.
func TestEditLiveSavesEdits(t *testing.T) {
	cfgPath := writeProject(t, "")

	originalTTY := isTerminal
	originalRun := runEditor
	t.Cleanup(func() {
		isTerminal = originalTTY
		runEditor = originalRun
	})
	isTerminal = func(io.Writer) bool { return true }
	runEditor = func(ctx context.Context, model editor.Model, stdout io.Writer) error {
		var m tea.Model = model
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("A")})
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
		_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return nil
	}

	code, _, errOut := runEditCommand(t, "--config", cfgPath, "--ui", "live")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}

	dbPath := config.ResolvePath(config.RootFromConfigPath(cfgPath), config.DefaultDBPath)
	ctx := context.Background()
	sessions, err := sessionstore.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("open session store: %v", err)
	}
	defer sessions.Close()
	data, ok, err := sessions.Load(ctx, "test")
	if err != nil || !ok {
		t.Fatalf("load session: ok=%v err=%v", ok, err)
	}
	if len(data.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(data.Questions))
	}
	if data.Questions[3].Title != question.UntitledQuestion {
		t.Fatalf("expected appended question moved up, got %q", data.Questions[3].Title)
	}
	info, _, err := sessions.Info(ctx, "test")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if info.Revision != 3 {
		t.Fatalf("expected revision 3, got %d", info.Revision)
	}
}

// TestEditRejectsUnknownMode verifies an invalid --ui value is a usage error.
func TestEditRejectsUnknownMode(t *testing.T) {
	cfgPath := writeProject(t, "")
	code, _, errOut := runEditCommand(t, "--config", cfgPath, "--ui", "fancy")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut, "invalid ui mode") {
		t.Fatalf("expected mode error, got %q", errOut)
	}
}
