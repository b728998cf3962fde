package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	// The root context for the program. run derives a cancelable context from it.
	ctx := context.Background()

	// Pass in the command line arguments, environment variables and standard streams
	// so that run can be tested in isolation.
	if err := run(ctx, os.Args, os.Getenv, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
