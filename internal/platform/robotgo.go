package platform

import (
	"context"

	"github.com/connorhough/chatkeys/internal/key"
	"github.com/go-vgo/robotgo"
)

type robotgoPlatform struct{}

func (p *robotgoPlatform) ActiveWindowTitle(ctx context.Context) (string, error) {
	return robotgo.GetTitle(), nil
}

func (p *robotgoPlatform) KeyDown(ctx context.Context, k key.Key) error {
	return robotgo.KeyToggle(k.String(), "down")
}

func (p *robotgoPlatform) KeyUp(ctx context.Context, k key.Key) error {
	return robotgo.KeyToggle(k.String(), "up")
}
