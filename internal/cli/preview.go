package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"prescreen/internal/bridge"
	"prescreen/internal/diag"
	"prescreen/internal/preview"
	"prescreen/internal/question"
)

// runPreview builds the handler for the preview command.
func runPreview(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		payloadPath := flags.String("payload", "", "Payload file to preview instead of the configured session")
		configPath := flags.String("config", "", "Path to config file (default: search for .prescreen/config.yml)")
		verbose := flags.Bool("verbose", false, "Log hydration details to stderr")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		var data question.ScreeningData
		if path := strings.TrimSpace(*payloadPath); path != "" {
			loaded, err := question.LoadData(path)
			if err != nil {
				printPayloadFailure(stderr, err)
				return ExitError
			}
			data = loaded
		} else {
			proj, err := loadProject(*configPath)
			if err != nil {
				fmt.Fprintf(stderr, "Preview failed: %v\n", err)
				return ExitError
			}
			logger := diag.New(stderr, *verbose, proj.cfg.UI.NoColor)
			opts := proj.hydrateOptions(logger)
			opts.Persisted = proj.persistedReader()
			result, err := bridge.Hydrate(context.Background(), opts)
			if err != nil {
				fmt.Fprintf(stderr, "Preview failed: %v\n", err)
				return ExitError
			}
			data = result.Data
		}

		if err := preview.Render(stdout, data, preview.Evaluate(data)); err != nil {
			fmt.Fprintf(stderr, "Preview failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
