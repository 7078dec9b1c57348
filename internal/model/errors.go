package model

import (
	"errors"
	"fmt"
)

// ErrInvalidData is matched by every InvalidDataError.
var ErrInvalidData = errors.New("invalid stats data")

// NetworkError reports a failed request or a non-successful HTTP status.
type NetworkError struct {
	Player     string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request for player %s failed with status %d", e.Player, e.StatusCode)
	}
	return fmt.Sprintf("request for player %s failed: %v", e.Player, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not valid JSON.
type ParseError struct {
	Player string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed stats response for player %s: %v", e.Player, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidDataError reports valid JSON that lacks the expected structure.
type InvalidDataError struct {
	Reason string
	Err    error
}

func (e *InvalidDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrInvalidData, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidData, e.Reason)
}

func (e *InvalidDataError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidData, e.Err}
	}
	return []error{ErrInvalidData}
}

// NotFoundError reports a character id missing from a player's characters.
type NotFoundError struct {
	Player      string
	CharacterID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Character with UUID %s not found for player %s.", e.CharacterID, e.Player)
}

// Cause returns the innermost NetworkError, ParseError or InvalidDataError in
// err's chain, or err itself when there is none.
func Cause(err error) error {
	var (
		netErr   *NetworkError
		parseErr *ParseError
		dataErr  *InvalidDataError
	)
	switch {
	case errors.As(err, &netErr):
		return netErr
	case errors.As(err, &parseErr):
		return parseErr
	case errors.As(err, &dataErr):
		return dataErr
	default:
		return err
	}
}
