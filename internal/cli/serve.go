package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"prescreen/internal/diag"
	"prescreen/internal/payloadserver"
)

var servePayload = payloadserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		payloadPath := flags.String("payload", "", "Payload file to serve (json or yaml)")
		addr := flags.String("addr", payloadserver.DefaultAddr, "Address to listen on")
		origins := flags.String("origins", "", "Comma-separated CORS origins (default: any)")
		verbose := flags.Bool("verbose", false, "Log requests and lifecycle details")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if strings.TrimSpace(*payloadPath) == "" {
			fmt.Fprintln(stderr, "serve requires --payload")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg := payloadserver.Config{
			Addr:           *addr,
			PayloadPath:    strings.TrimSpace(*payloadPath),
			AllowedOrigins: splitList(*origins),
			Logger:         diag.New(stderr, *verbose, false),
			Ready: func(bound string) {
				fmt.Fprintf(stdout, "Serving payload at http://%s/v1/screening\n", bound)
			},
		}
		if err := servePayload(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Serve failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
