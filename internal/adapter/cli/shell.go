package cli

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/iho/chching/internal/usecase"
)

// Executor runs a command against a ledger.
type Executor interface {
	Execute(ctx context.Context, cmd usecase.Command, ui usecase.Renderer) error
}

// Shell reads command lines and executes them until exit or end of input.
type Shell struct {
	ledger Executor
	ui     *UI
	prompt string
}

// NewShell creates a Shell. An empty prompt prints none.
func NewShell(ledger Executor, ui *UI, prompt string) *Shell {
	return &Shell{ledger: ledger, ui: ui, prompt: prompt}
}

// ReportedError wraps a failure that has already been shown through the UI.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

// Exec parses and executes a single line. A failure is shown through the UI
// and returned as a *ReportedError.
func (s *Shell) Exec(ctx context.Context, line string) error {
	_, err := s.exec(ctx, line)
	return err
}

// RunLine is Exec for interactive use. It returns false once the line asked
// to exit.
func (s *Shell) RunLine(ctx context.Context, line string) bool {
	cmd, _ := s.exec(ctx, line)
	return cmd == nil || !usecase.IsExit(cmd)
}

func (s *Shell) exec(ctx context.Context, line string) (usecase.Command, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		s.ui.ShowError(err)
		return nil, &ReportedError{Err: err}
	}

	if err := s.ledger.Execute(ctx, cmd, s.ui); err != nil {
		s.ui.ShowError(err)
		return cmd, &ReportedError{Err: err}
	}

	return cmd, nil
}

// Run processes lines from in.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for {
		if s.prompt != "" {
			io.WriteString(s.ui.out, s.prompt)
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !s.RunLine(ctx, line) {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
