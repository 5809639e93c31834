//go:build linux

package platform

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/connorhough/chatkeys/internal/key"
)

type linuxPlatform struct{}

func init() {
	ExecPlatform = &linuxPlatform{}
}

func (p *linuxPlatform) ActiveWindowTitle(ctx context.Context) (string, error) {
	out, err := runXdotool(ctx, "getwindowfocus", "getwindowname")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (p *linuxPlatform) KeyDown(ctx context.Context, k key.Key) error {
	_, err := runXdotool(ctx, "keydown", xdotoolName(k))
	return err
}

func (p *linuxPlatform) KeyUp(ctx context.Context, k key.Key) error {
	_, err := runXdotool(ctx, "keyup", xdotoolName(k))
	return err
}

func runXdotool(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "xdotool", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("xdotool %s failed: %w (stderr: %s)", args[0], err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
