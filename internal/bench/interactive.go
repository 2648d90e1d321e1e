package bench

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
)

// Executor performs one run. ports.RunService satisfies it.
type Executor interface {
	Execute(ctx context.Context, mode run.Mode) (*run.Run, error)
}

const menuPrompt = "Continue? 1 - clean, 2 - fault, 0 - stop"

// Interactive performs a clean run, then keeps asking for the next mode
// until the user enters 0, input ends, or ctx is canceled. A failed run is
// reported and the menu continues.
func Interactive(ctx context.Context, in io.Reader, out io.Writer, exec Executor) error {
	scanner := bufio.NewScanner(in)
	mode := run.ModeClean

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\nTesting %s\n", mode)
		r, err := exec.Execute(ctx, mode)
		if err != nil {
			fmt.Fprintf(out, "Run failed: %v\n", err)
		} else if err := Render(out, r); err != nil {
			return err
		}

		next, ok, err := prompt(scanner, out)
		if err != nil || !ok {
			return err
		}
		mode = next
	}
}

// prompt reads choices until one is valid. ok is false when the user
// stops or input ends.
func prompt(scanner *bufio.Scanner, out io.Writer) (run.Mode, bool, error) {
	for {
		fmt.Fprintf(out, "\n%s\n", menuPrompt)
		if !scanner.Scan() {
			return "", false, scanner.Err()
		}

		choice := strings.TrimSpace(scanner.Text())
		if choice == "0" {
			return "", false, nil
		}
		mode, err := run.ParseMode(choice)
		if err != nil {
			fmt.Fprintf(out, "Unknown choice %q\n", choice)
			continue
		}
		return mode, true, nil
	}
}
