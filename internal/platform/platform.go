// Package platform is the boundary to the operating system: reading the foreground window
// title and injecting key presses.
package platform

import (
	"context"
	"fmt"

	"github.com/connorhough/chatkeys/internal/key"
)

// Platform defines the OS-specific operations the bot needs.
type Platform interface {
	// ActiveWindowTitle returns the title of the currently focused window.
	ActiveWindowTitle(ctx context.Context) (string, error)

	// KeyDown presses k without releasing it.
	KeyDown(ctx context.Context, k key.Key) error

	// KeyUp releases k.
	KeyUp(ctx context.Context, k key.Key) error
}

// Backend names.
const (
	BackendRobotgo = "robotgo"
	BackendExec    = "exec"
)

// ExecPlatform drives external tools (xdotool, osascript). It is set by the
// platform-specific files and is nil where no such tool is supported.
var ExecPlatform Platform

// New returns the Platform for the named backend. An empty name selects robotgo.
func New(backend string) (Platform, error) {
	switch backend {
	case "", BackendRobotgo:
		return &robotgoPlatform{}, nil
	case BackendExec:
		if ExecPlatform == nil {
			return nil, fmt.Errorf("the %q input backend is not supported on this platform", backend)
		}
		return ExecPlatform, nil
	}
	return nil, fmt.Errorf("unknown input backend %q (supported: %s, %s)", backend, BackendRobotgo, BackendExec)
}
