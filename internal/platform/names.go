package platform

import "github.com/connorhough/chatkeys/internal/key"

var xdotoolNames = map[key.Key]string{
	key.Up:        "Up",
	key.Down:      "Down",
	key.Left:      "Left",
	key.Right:     "Right",
	key.Enter:     "Return",
	key.Space:     "space",
	key.Escape:    "Escape",
	key.Tab:       "Tab",
	key.Backspace: "BackSpace",
	key.Shift:     "shift",
	key.Control:   "ctrl",
	key.Alt:       "alt",
	key.Slash:     "slash",
	key.Comma:     "comma",
	key.Period:    "period",
	key.Minus:     "minus",
	key.Equal:     "equal",
}

// xdotoolName returns the X keysym name xdotool expects for k.
func xdotoolName(k key.Key) string {
	if n, ok := xdotoolNames[k]; ok {
		return n
	}
	return k.String()
}

// macKeyCodes are virtual key codes for keys System Events cannot hold by name.
var macKeyCodes = map[key.Key]int{
	key.Up:        126,
	key.Down:      125,
	key.Left:      123,
	key.Right:     124,
	key.Enter:     36,
	key.Space:     49,
	key.Escape:    53,
	key.Tab:       48,
	key.Backspace: 51,
}

var macModifiers = map[key.Key]string{
	key.Shift:   "shift",
	key.Control: "control",
	key.Alt:     "option",
}
