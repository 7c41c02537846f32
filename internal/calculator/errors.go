package calculator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNegativesNotAllowed = errors.New("negatives not allowed")
	ErrMalformedToken      = errors.New("malformed token")
	ErrMalformedHeader     = errors.New("malformed delimiter header")
)

// NegativesError reports every negative value found in the input, in the
// order they appeared.
type NegativesError struct {
	Values []int
}

func (e *NegativesError) Error() string {
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = strconv.Itoa(v)
	}
	return ErrNegativesNotAllowed.Error() + ": " + strings.Join(parts, ", ")
}

func (e *NegativesError) Unwrap() error { return ErrNegativesNotAllowed }

// MalformedTokenError is returned when a token is not a base-10 integer.
type MalformedTokenError struct {
	Token string
	Err   error // underlying strconv error
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMalformedToken, e.Token)
}

func (e *MalformedTokenError) Is(target error) bool { return target == ErrMalformedToken }

func (e *MalformedTokenError) Unwrap() error { return e.Err }

// MalformedHeaderError is returned when a "//" header declares no usable
// delimiter.
type MalformedHeaderError struct {
	Header string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMalformedHeader, e.Header)
}

func (e *MalformedHeaderError) Unwrap() error { return ErrMalformedHeader }
