package game

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCommand is returned for blank command text.
	ErrEmptyCommand = errors.New("empty command")

	// ErrUnknownCommand is returned when the command token matches no alias.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnsupportedGame is returned for an unrecognised game identifier.
	ErrUnsupportedGame = errors.New("the given game is either invalid or unsupported")
)

// ValidationError reports command text that cannot be turned into input.
type ValidationError struct {
	Command string
	Msg     string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Command, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ErrEmpty reports blank command text.
func ErrEmpty() error {
	return &ValidationError{Err: ErrEmptyCommand}
}

// ErrUnknown reports a command token with no matching alias.
func ErrUnknown(command string) error {
	return &ValidationError{Command: command, Err: ErrUnknownCommand}
}

// ErrInvalidArgument reports a bad or missing argument for a known command.
func ErrInvalidArgument(command, msg string) error {
	return &ValidationError{Command: command, Msg: msg}
}
