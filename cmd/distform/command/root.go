// Package command provides the distform terminal front end for the place
// distance API. The root command runs an interactive form; the "route"
// sub-command resolves two places and prints their distance in one shot.
//
//	./distform [--server http://127.0.0.1:8000] [--timeout 15s]
//	./distform route --from "Seoul Station" --to "Gangnam Station"
package command

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"place-distance-service/internal/client"
	"place-distance-service/internal/config"
	"place-distance-service/internal/form"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	timeout   time.Duration
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "distform",
	Short: "Measure the distance between two places",
	Long: `Interactive distance form backed by the place distance API.

Commands:
  start <place>   search the starting place
  end <place>     search the destination
  calc            calculate the distance once both places are found
  status          print the current form state
  quit            exit`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the literal to break the
	// rootCmd -> newForm -> rootCmd initialization cycle.
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		f, err := newForm()
		if err != nil {
			return err
		}
		return runShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), f)
	}
	cobra.OnInitialize(config.Load)
	rootCmd.PersistentFlags().StringVarP(
		&serverURL, "server", "s", "", "API base URL (env DISTANCE_API_URL)",
	)
	rootCmd.PersistentFlags().DurationVarP(
		&timeout, "timeout", "t", 0, "per-request timeout (env CLIENT_TIMEOUT)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log failed requests to stderr",
	)
}

// newForm resolves flags against their env fallbacks and builds a form
// rendering to stdout.
func newForm() (*form.Form, error) {
	if serverURL == "" {
		serverURL = config.Get("DISTANCE_API_URL", "http://127.0.0.1:8000")
	}
	if timeout <= 0 {
		timeout = config.Duration("CLIENT_TIMEOUT", 15*time.Second)
	}

	c, err := client.New(serverURL, timeout)
	if err != nil {
		return nil, err
	}

	opts := []form.Option{}
	if verbose {
		opts = append(opts, form.WithLogger(log.New(os.Stderr, "distform: ", log.LstdFlags)))
	}
	return form.New(c, form.NewTextView(rootCmd.OutOrStdout()), opts...), nil
}
