package config

import "fmt"

// Error is a configuration problem that prevents the bot from starting.
type Error struct {
	Key string
	Msg string
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("invalid configuration: %s: %s", e.Key, e.Msg)
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrMissing reports a required key with no value.
func ErrMissing(key, msg string) error {
	return &Error{Key: key, Msg: msg}
}

// ErrInvalid reports a key whose value is unusable.
func ErrInvalid(key, msg string) error {
	return &Error{Key: key, Msg: msg}
}

// ErrSource reports a configuration source that could not be read.
func ErrSource(key string, err error) error {
	return &Error{Key: key, Msg: "could not be loaded", Err: err}
}
