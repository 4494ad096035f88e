package autoprompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrInterrupted is returned when the user cancels the prompt with Esc or Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
	// ErrEOF is returned when the user presses Ctrl+D on an empty input or
	// the input stream ends.
	ErrEOF = errors.New("EOF")
)

// Run reads keys from the terminal until the prompt is submitted or
// cancelled. It is RunWithContext with a background context.
//
// Example:
//
//	in := autoprompt.NewTextInput("Name")
//	defer in.Close()
//
//	name, err := in.Run()
//	if errors.Is(err, autoprompt.ErrInterrupted) {
//		return
//	}
func (in *Input[T]) Run() (T, error) {
	return in.RunWithContext(context.Background())
}

// RunWithContext reads keys from the terminal until the prompt is submitted
// or cancelled, redrawing the prompt after every key.
//
// It returns the parsed value on submission, ErrInterrupted on cancellation,
// ErrEOF when Ctrl+D is pressed on an empty input, and ctx.Err() when the
// context is done. Errors reported by Handle, such as a failing validator,
// are drawn and the prompt keeps reading. The context is checked between
// keys.
func (in *Input[T]) RunWithContext(ctx context.Context) (T, error) {
	var zero T

	if in.terminal == nil {
		terminal, err := newRealTerminal()
		if err != nil {
			return zero, fmt.Errorf("failed to create terminal: %w", err)
		}
		in.terminal = terminal
	}
	// Every run draws below the output of the previous one.
	in.screen = newScreen(in.terminal.Output(), 0)

	if err := in.terminal.SetRaw(); err != nil {
		return zero, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := in.terminal.Restore(); err != nil {
			in.logger.Warn("failed to restore terminal state", "error", err)
		}
	}()

	if err := in.screen.hideCursor(); err != nil {
		return zero, fmt.Errorf("failed to render prompt: %w", err)
	}
	defer func() {
		if err := in.screen.showCursor(); err != nil {
			in.logger.Warn("failed to show cursor", "error", err)
		}
	}()

	if err := in.draw(Active[T]()); err != nil {
		return zero, err
	}

	reader := newKeyReader(in.terminal, in.cfg.keyMap)
	for {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		key, err := reader.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return zero, ErrEOF
			}
			return zero, fmt.Errorf("failed to read input: %w", err)
		}

		switch key.Code {
		case KeyUnknown:
			continue
		case KeyEOF:
			if !in.input.IsEmpty() {
				continue
			}
			if err := in.draw(Cancel[T]()); err != nil {
				return zero, err
			}
			return zero, ErrEOF
		}

		state := in.Handle(key)
		if err := in.draw(state); err != nil {
			return zero, err
		}

		switch {
		case state.Kind == StateSubmit:
			in.logger.Debug("prompt submitted", "label", in.label)
			return state.Value, nil
		case state.Cancelled():
			in.logger.Debug("prompt cancelled", "label", in.label)
			return zero, ErrInterrupted
		}
	}
}

// draw renders state and replaces the previous frame.
func (in *Input[T]) draw(state State[T]) error {
	if width, _, err := in.terminal.Size(); err == nil {
		in.screen.width = width
	}
	if err := in.screen.draw(in.Render(state)); err != nil {
		return fmt.Errorf("failed to render prompt: %w", err)
	}
	return nil
}

// Close saves the history configured with WithHistory and releases the
// terminal. It is safe to call Close more than once, and errors from both
// steps are returned together.
func (in *Input[T]) Close() error {
	var result *multierror.Error

	if in.cfg.history != nil {
		if err := in.cfg.history.SaveHistory(); err != nil {
			in.logger.Warn("failed to save history", "error", err)
			result = multierror.Append(result, err)
		}
	}
	if in.terminal != nil {
		if err := in.terminal.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to close terminal: %w", err))
		}
	}
	return result.ErrorOrNil()
}
