package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"prescreen/internal/bridge"
	"prescreen/internal/diag"
	"prescreen/internal/preview"
	"prescreen/internal/question"
	"prescreen/internal/sessionstore"
	"prescreen/internal/store"
	"prescreen/internal/ui/editor"
)

// runEditor hosts the live editor. Tests replace it to drive the model
// without a terminal.
var runEditor = defaultRunEditor

func defaultRunEditor(ctx context.Context, model editor.Model, stdout io.Writer) error {
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(stdout),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// runEdit builds the handler for the edit command.
func runEdit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .prescreen/config.yml)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (default: config ui.mode)")
		reset := flags.Bool("reset", false, "Discard the saved session and hydrate again")
		verbose := flags.Bool("verbose", false, "Log hydration and save details (disables the live UI)")
		noColor := flags.Bool("no-color", false, "Disable colors")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		proj, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Edit failed: %v\n", err)
			return ExitError
		}
		mode := proj.cfg.UI.Mode
		if strings.TrimSpace(*uiMode) != "" {
			mode = *uiMode
		}
		host, err := chooseEditorHost(mode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Edit failed: %v\n", err)
			return ExitUsage
		}
		if host.notice != "" {
			fmt.Fprintln(stderr, host.notice)
		}
		colorOff := *noColor || proj.cfg.UI.NoColor
		logger := diag.New(stderr, *verbose, colorOff)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sessionID := proj.cfg.Session.ID
		sessions, err := sessionstore.Open(ctx, proj.dbPath())
		if err != nil {
			fmt.Fprintf(stderr, "Edit failed: %v\n", err)
			return ExitError
		}
		defer sessions.Close()

		if *reset {
			if err := sessions.Delete(ctx, sessionID); err != nil {
				fmt.Fprintf(stderr, "Edit failed: %v\n", err)
				return ExitError
			}
			logger.Info("session reset", "session", sessionID)
		}

		opts := proj.hydrateOptions(logger)
		opts.Persisted = func(ctx context.Context) (question.ScreeningData, bool, error) {
			return sessions.Load(ctx, sessionID)
		}
		result, err := bridge.Hydrate(ctx, opts)
		if err != nil {
			fmt.Fprintf(stderr, "Edit failed: %v\n", err)
			return ExitError
		}
		if result.Source == bridge.SourceFallback && result.Cause != nil && !*verbose {
			fmt.Fprintf(stderr, "Using fallback questions: %v\n", result.Cause)
		}

		save := func(data question.ScreeningData) error {
			changed, err := sessions.Save(ctx, sessionID, data)
			if err != nil {
				logger.Error("save failed", "session", sessionID, "err", err)
				return err
			}
			logger.Debug("session saved", "session", sessionID, "changed", changed)
			return nil
		}
		if err := save(result.Data); err != nil {
			fmt.Fprintf(stderr, "Edit failed: %v\n", err)
			return ExitError
		}

		if !host.interactive {
			fmt.Fprintf(stdout, "Session %q loaded from %s.\n\n", sessionID, result.Source)
			if err := preview.Render(stdout, result.Data, preview.Evaluate(result.Data)); err != nil {
				fmt.Fprintf(stderr, "Edit failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}

		st := store.New(result.Data)
		model := editor.New(st, editor.Options{NoColor: colorOff, OnChange: save})
		if err := runEditor(ctx, model, stdout); err != nil {
			fmt.Fprintf(stderr, "Edit failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
