package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"prescreen/internal/config"
	"prescreen/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		payloadPath := flags.String("payload", "", "Payload file to validate (json or yaml)")
		configPath := flags.String("config", "", "Config file to validate (default: search for .prescreen/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		payloadValue := strings.TrimSpace(*payloadPath)
		configValue := strings.TrimSpace(*configPath)

		if configValue != "" || payloadValue == "" {
			resolved, err := resolveConfigPath(configValue)
			if err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
				return ExitError
			}
			if resolved == "" {
				fmt.Fprintf(stderr, "Validation failed:\nno %s found; run \"prescreen init\" or pass --payload\n", config.ConfigFileName)
				return ExitError
			}
			if _, err := config.Load(resolved); err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
				return ExitError
			}
			fmt.Fprintln(stdout, "Config OK")
		}

		if payloadValue != "" {
			data, err := question.LoadData(payloadValue)
			if err != nil {
				printPayloadFailure(stderr, err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Payload OK (%d questions)\n", len(data.Questions))
		}
		return ExitOK
	}
}

func printPayloadFailure(w io.Writer, err error) {
	fmt.Fprintln(w, "Validation failed:")
	var validation *question.ValidationError
	if errors.As(err, &validation) {
		for _, issue := range validation.Issues {
			fmt.Fprintf(w, "  %s: %s\n", issue.Field, issue.Message)
		}
		return
	}
	fmt.Fprintln(w, err.Error())
}
