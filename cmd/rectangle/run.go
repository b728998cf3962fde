package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kula-app/rectangle/internal/config"
	"github.com/kula-app/rectangle/internal/logging"
	"github.com/kula-app/rectangle/internal/rectangle"
)

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function finishes without an error, the rectangle was printed.
// If the run function returns an error, the input could not be read or the output could not be written.
func run(ctx context.Context, args []string, getenv func(key string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	// The program takes no flags or arguments; the FlagSet still provides -h
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s\n\nReads \"<width> <height>\" from standard input and prints a rectangle outline.\n", args[0])
	}
	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	// Stop waiting for input on Ctrl+C or SIGTERM
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(getenv)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Diagnostics go to stderr so stdout only carries the prompt and the rectangle
	logger := slog.New(logging.NewTerminalHandler(stderr, cfg.LogLevel))
	logger.Debug("configuration loaded", "log_level", cfg.LogLevel, "prompt", cfg.Prompt)

	if _, err := fmt.Fprintln(stdout, cfg.Prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	dims, err := readDimensions(ctx, stdin)
	if err != nil {
		return err
	}
	if dims.Width <= 0 || dims.Height <= 0 {
		logger.Warn("non-positive dimensions, output is degenerate",
			"width", dims.Width,
			"height", dims.Height)
	}

	return rectangle.NewPrinter(logger).Print(stdout, dims)
}

// readDimensions reads the dimensions from r, giving up when ctx is canceled.
// On cancellation the reading goroutine stays blocked until r returns.
func readDimensions(ctx context.Context, r io.Reader) (rectangle.Dimensions, error) {
	type result struct {
		dims rectangle.Dimensions
		err  error
	}
	done := make(chan result, 1)

	go func() {
		dims, err := rectangle.ReadDimensions(r)
		done <- result{dims: dims, err: err}
	}()

	select {
	case <-ctx.Done():
		return rectangle.Dimensions{}, fmt.Errorf("reading dimensions aborted: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return rectangle.Dimensions{}, fmt.Errorf("failed to read dimensions: %w", res.err)
		}
		return res.dims, nil
	}
}
