package input

import (
	"sync"
	"unicode/utf8"
)

// DefaultHold is how many reads a keypress stays down. Terminals repeat a
// held key roughly every 30-50ms, so this bridges the gap between repeats.
const DefaultHold = 6

// Keys is a joystick fed by terminal key bytes. Each arrow or WASD press
// holds its direction for Hold reads.
type Keys struct {
	Hold int

	mu   sync.Mutex
	left [4]int // remaining reads per direction bit
	quit bool
}

func NewKeys() *Keys { return &Keys{Hold: DefaultHold} }

// Feed parses raw terminal input. It reports true once a quit key (q, Q or
// Ctrl-C) has been seen.
func (k *Keys) Feed(data []byte) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	i := 0
	for i < len(data) {
		// Arrow keys arrive as ESC [ A..D
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				k.press(BitUp)
			case 'B':
				k.press(BitDown)
			case 'C':
				k.press(BitRight)
			case 'D':
				k.press(BitLeft)
			}
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'w', 'W':
			k.press(BitUp)
		case 's', 'S':
			k.press(BitDown)
		case 'a', 'A':
			k.press(BitLeft)
		case 'd', 'D':
			k.press(BitRight)
		case 'q', 'Q', 3:
			k.quit = true
		}
		i += size
	}
	return k.quit
}

func (k *Keys) press(bit int) {
	k.left[bit] = k.Hold
	// Opposite directions cancel so the newest press wins.
	k.left[bit^1] = 0
}

// Read returns the held directions and ages them by one read.
func (k *Keys) Read() Port {
	k.mu.Lock()
	defer k.mu.Unlock()

	p := Released
	for bit := range k.left {
		if k.left[bit] > 0 {
			p &^= 1 << bit
			k.left[bit]--
		}
	}
	return p
}
