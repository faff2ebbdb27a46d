// Command oraculo computes numerology readings and birth charts from the
// command line, one at a time or in batches.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vanshika/oraculo/internal/config"
	"github.com/vanshika/oraculo/internal/logging"
	"github.com/vanshika/oraculo/internal/service"
)

type rootOptions struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "oraculo",
		Short:         "Numerology pyramids and birth charts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newNumerologyCmd(opts),
		newAstrologyCmd(opts),
		newBatchCmd(opts),
		newDatagenCmd(opts),
	)
	return root
}

// logger writes to the command's stderr so stdout only carries results.
func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	return logging.NewWithWriter(cmd.ErrOrStderr(), config.LoggingConfig{
		Level:  o.logLevel,
		Format: o.logFormat,
	})
}

// readingService builds a service without archive or metrics.
func (o *rootOptions) readingService(cmd *cobra.Command) *service.ReadingService {
	return service.NewReadingService(nil, o.logger(cmd), nil)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
