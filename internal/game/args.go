package game

import (
	"strconv"
)

// Magnitude validates a signed integer argument whose absolute value lies in [1, max].
// The sign is preserved.
func Magnitude(command, arg string, hasArg bool, max int, msg string) (int, error) {
	if !hasArg {
		return 0, ErrInvalidArgument(command, msg)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, ErrInvalidArgument(command, msg)
	}
	a := n
	if a < 0 {
		a = -a
	}
	if a < 1 || a > max {
		return 0, ErrInvalidArgument(command, msg)
	}
	return n, nil
}

// Choice validates an integer argument in the closed range [lo, hi].
func Choice(command, arg string, hasArg bool, lo, hi int, msg string) (int, error) {
	if !hasArg {
		return 0, ErrInvalidArgument(command, msg)
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < lo || n > hi {
		return 0, ErrInvalidArgument(command, msg)
	}
	return n, nil
}

// Keyword validates that arg is exactly one of the given keywords and returns its index.
func Keyword(command, arg string, hasArg bool, msg string, keywords ...string) (int, error) {
	if hasArg {
		for i, k := range keywords {
			if arg == k {
				return i, nil
			}
		}
	}
	return 0, ErrInvalidArgument(command, msg)
}
