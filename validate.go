package autoprompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidFormat is wrapped by parsers when the text cannot be converted to
// the target type.
var ErrInvalidFormat = errors.New("invalid format")

// ParseFunc converts the submitted text into the prompt's value type.
type ParseFunc[T any] func(text string) (T, error)

// ParseString returns the text unchanged. It never fails.
func ParseString(text string) (string, error) {
	return text, nil
}

// ParseInt parses a base-10 integer.
func ParseInt(text string) (int, error) {
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidFormat, text)
	}
	return v, nil
}

// ParseFloat parses a 64-bit floating point number.
func ParseFloat(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidFormat, text)
	}
	return v, nil
}

// ParseBool parses the forms accepted by strconv.ParseBool.
func ParseBool(text string) (bool, error) {
	v, err := strconv.ParseBool(text)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidFormat, text)
	}
	return v, nil
}

// Validator checks the current text. A non-nil error rejects it and its
// message is shown to the user.
type Validator func(text string) error

// Validators combines several validators into one that runs all of them and
// reports every failure, joined by "; ".
//
// Example:
//
//	v := autoprompt.Validators(
//		autoprompt.MinLength(3),
//		autoprompt.MaxLength(16),
//	)
func Validators(validators ...Validator) Validator {
	return func(text string) error {
		var result *multierror.Error
		for _, v := range validators {
			if v == nil {
				continue
			}
			result = multierror.Append(result, v(text))
		}
		if result == nil {
			return nil
		}
		result.ErrorFormat = joinErrors
		return result.ErrorOrNil()
	}
}

func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// MinLength rejects text shorter than n characters.
func MinLength(n int) Validator {
	return func(text string) error {
		if utf8.RuneCountInString(text) < n {
			return fmt.Errorf("must be at least %d characters", n)
		}
		return nil
	}
}

// MaxLength rejects text longer than n characters.
func MaxLength(n int) Validator {
	return func(text string) error {
		if utf8.RuneCountInString(text) > n {
			return fmt.Errorf("must be at most %d characters", n)
		}
		return nil
	}
}
