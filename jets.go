package main

import (
	"errors"
	"fmt"
)

const (
	JetLeft  = -1
	JetRight = 1
)

var ErrNoJets = errors.New("input contains no jet directions")

// JetFeed is the cyclic sequence of pushes applied to falling rocks, one per
// gravity tick.
type JetFeed struct {
	dirs []int8
}

// ParseJets converts '<' and '>' into left and right pushes. Every other
// character, including line breaks, is ignored.
func ParseJets(input string) (JetFeed, error) {
	var f JetFeed
	for _, c := range input {
		switch c {
		case '<':
			f.dirs = append(f.dirs, JetLeft)
		case '>':
			f.dirs = append(f.dirs, JetRight)
		}
	}
	if len(f.dirs) == 0 {
		return JetFeed{}, fmt.Errorf("parsing jets (%d characters): %w",
			len(input), ErrNoJets)
	}
	return f, nil
}

// RandomJets makes a feed of n random pushes.
func RandomJets(r *Rand, n int) JetFeed {
	f := JetFeed{dirs: make([]int8, n)}
	for i := range f.dirs {
		f.dirs[i] = int8(2*r.RInt(0, 1) - 1)
	}
	return f
}

func (f JetFeed) Len() int {
	return len(f.dirs)
}

// Next returns the push at index i and the index of the push after it.
func (f JetFeed) Next(i int) (dir int, next int) {
	return int(f.dirs[i]), (i + 1) % len(f.dirs)
}

func (f JetFeed) String() string {
	b := make([]byte, len(f.dirs))
	for i, d := range f.dirs {
		if d == JetLeft {
			b[i] = '<'
		} else {
			b[i] = '>'
		}
	}
	return string(b)
}
