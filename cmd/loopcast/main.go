package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

// run keeps exit handling in one place. A context.Canceled error means the
// operator interrupted the command, so no message is printed for it.
func run() int {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
