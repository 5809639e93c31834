//go:build darwin

package platform

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/connorhough/chatkeys/internal/key"
)

type darwinPlatform struct{}

func init() {
	ExecPlatform = &darwinPlatform{}
}

func (p *darwinPlatform) ActiveWindowTitle(ctx context.Context) (string, error) {
	const windowName = `tell application "System Events" to get name of window 1 of (first process whose frontmost is true)`
	const processName = `tell application "System Events" to get name of first process whose frontmost is true`

	out, err := runOsaScript(ctx, windowName)
	if err == nil {
		return strings.TrimSpace(out), nil
	}
	// Untitled or fullscreen windows: match on the owning process instead.
	if out, perr := runOsaScript(ctx, processName); perr == nil {
		return strings.TrimSpace(out), nil
	}
	return "", err
}

// KeyDown holds modifiers and characters. Keys that System Events can only send by key
// code are tapped here and KeyUp is a no-op for them.
func (p *darwinPlatform) KeyDown(ctx context.Context, k key.Key) error {
	if code, ok := macKeyCodes[k]; ok {
		_, err := runOsaScript(ctx, fmt.Sprintf(`tell application "System Events" to key code %d`, code))
		return err
	}
	_, err := runOsaScript(ctx, `tell application "System Events" to key down `+appleScriptKey(k))
	return err
}

func (p *darwinPlatform) KeyUp(ctx context.Context, k key.Key) error {
	if _, ok := macKeyCodes[k]; ok {
		return nil
	}
	_, err := runOsaScript(ctx, `tell application "System Events" to key up `+appleScriptKey(k))
	return err
}

func appleScriptKey(k key.Key) string {
	if m, ok := macModifiers[k]; ok {
		return m
	}
	escaped := strings.ReplaceAll(k.String(), "\\", "\\\\")
	escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
	return `"` + escaped + `"`
}

func runOsaScript(ctx context.Context, script string) (string, error) {
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("osascript failed: %w (stderr: %s)", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
