// Package key names the physical keys that can be injected into a target application.
package key

import (
	"fmt"
	"sort"
	"strings"
)

// Key identifies one physical key. The value is the key's canonical lowercase name, which is
// also the name understood by the robotgo input backend.
type Key string

// Letters.
const (
	A Key = "a"
	B Key = "b"
	C Key = "c"
	D Key = "d"
	E Key = "e"
	F Key = "f"
	G Key = "g"
	H Key = "h"
	I Key = "i"
	J Key = "j"
	K Key = "k"
	L Key = "l"
	M Key = "m"
	N Key = "n"
	O Key = "o"
	P Key = "p"
	Q Key = "q"
	R Key = "r"
	S Key = "s"
	T Key = "t"
	U Key = "u"
	V Key = "v"
	W Key = "w"
	X Key = "x"
	Y Key = "y"
	Z Key = "z"
)

// Digit row (not the keypad).
const (
	Num0 Key = "0"
	Num1 Key = "1"
	Num2 Key = "2"
	Num3 Key = "3"
	Num4 Key = "4"
	Num5 Key = "5"
	Num6 Key = "6"
	Num7 Key = "7"
	Num8 Key = "8"
	Num9 Key = "9"
)

// Symbolic keys.
const (
	Up        Key = "up"
	Down      Key = "down"
	Left      Key = "left"
	Right     Key = "right"
	Enter     Key = "enter"
	Space     Key = "space"
	Escape    Key = "esc"
	Tab       Key = "tab"
	Backspace Key = "backspace"
	Shift     Key = "shift"
	Control   Key = "ctrl"
	Alt       Key = "alt"
	Slash     Key = "/"
	Comma     Key = ","
	Period    Key = "."
	Minus     Key = "-"
	Equal     Key = "="
)

var known = func() map[Key]struct{} {
	m := make(map[Key]struct{})
	for _, k := range []Key{
		A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P, Q, R, S, T, U, V, W, X, Y, Z,
		Num0, Num1, Num2, Num3, Num4, Num5, Num6, Num7, Num8, Num9,
		Up, Down, Left, Right, Enter, Space, Escape, Tab, Backspace,
		Shift, Control, Alt, Slash, Comma, Period, Minus, Equal,
	} {
		m[k] = struct{}{}
	}
	return m
}()

var aliases = map[string]Key{
	"return":  Enter,
	"escape":  Escape,
	"lshift":  Shift,
	"control": Control,
	"slash":   Slash,
	"comma":   Comma,
	"period":  Period,
	"minus":   Minus,
	"equal":   Equal,
}

// Parse resolves a key name as written in a keymap file. Matching is case-insensitive and a
// few spelled-out aliases ("return", "slash") are accepted.
func Parse(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := aliases[n]; ok {
		return k, nil
	}
	k := Key(n)
	if !k.Valid() {
		return "", fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// Valid reports whether k is one of the keys this package defines.
func (k Key) Valid() bool {
	_, ok := known[k]
	return ok
}

func (k Key) String() string {
	return string(k)
}

// All returns every defined key in lexical order.
func All() []Key {
	keys := make([]Key, 0, len(known))
	for k := range known {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Join renders a key sequence as "a+shift+1".
func Join(keys []Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, "+")
}
