package input

import (
	"fmt"
	"strconv"
	"strings"
)

type routeStep struct {
	port   Port
	frames int
}

// Script is a joystick that replays a route such as "R40 D20 DR10 W5 UL3":
// each token is a direction (U, D, L, R or a two-letter diagonal, W to wait)
// followed by the number of reads to hold it. After the last step the stick
// is released, or the route restarts if Loop is set.
type Script struct {
	Loop bool

	steps []routeStep
	step  int
	used  int
}

// ParseRoute compiles a route description.
func ParseRoute(route string) (*Script, error) {
	s := &Script{}
	for _, tok := range strings.Fields(strings.ToUpper(route)) {
		split := strings.IndexFunc(tok, func(r rune) bool { return r >= '0' && r <= '9' })
		if split <= 0 {
			return nil, fmt.Errorf("route token %q: want direction followed by a count", tok)
		}
		n, err := strconv.Atoi(tok[split:])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("route token %q: bad count", tok)
		}
		p, err := routePort(tok[:split])
		if err != nil {
			return nil, fmt.Errorf("route token %q: %w", tok, err)
		}
		s.steps = append(s.steps, routeStep{port: p, frames: n})
	}
	return s, nil
}

func routePort(dir string) (Port, error) {
	if dir == "W" {
		return Released, nil
	}
	var up, down, left, right bool
	for _, r := range dir {
		switch r {
		case 'U':
			up = true
		case 'D':
			down = true
		case 'L':
			left = true
		case 'R':
			right = true
		default:
			return 0, fmt.Errorf("unknown direction %q", r)
		}
	}
	if len(dir) > 2 || up && down || left && right {
		return 0, fmt.Errorf("invalid direction %q", dir)
	}
	return MakePort(up, down, left, right, false), nil
}

// Frames returns the length of one pass through the route.
func (s *Script) Frames() int {
	n := 0
	for _, st := range s.steps {
		n += st.frames
	}
	return n
}

// Done reports whether a non-looping route has finished.
func (s *Script) Done() bool { return !s.Loop && s.step >= len(s.steps) }

func (s *Script) Read() Port {
	if len(s.steps) == 0 {
		return Released
	}
	if s.step >= len(s.steps) {
		if !s.Loop {
			return Released
		}
		s.step = 0
	}
	st := s.steps[s.step]
	s.used++
	if s.used >= st.frames {
		s.step++
		s.used = 0
	}
	return st.port
}
