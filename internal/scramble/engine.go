// Package scramble produces alternate-but-equivalent renderings of a board
// by permuting rows, columns, and digits. Permutations move whole bands
// and whole digit classes, never individual cells, so a valid board stays
// valid.
package scramble

import (
	"math/rand"
	"time"
)

// Source yields the permutation set a scramble applies. Engine draws
// seeded pseudo-random sets; Identity disables scrambling while keeping
// the same call shape.
type Source interface {
	Permutations() Set
}

// Engine draws permutation sets from a seeded generator.
type Engine struct {
	options *Options
	rng     *rand.Rand
}

// New creates an engine with the given options. A zero seed falls back to
// the current time so consecutive scrambles differ; pass a fixed seed for
// reproducible draws.
func New(options *Options) *Engine {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Permutations draws a fresh row, column, and digit permutation.
func (e *Engine) Permutations() Set {
	return Set{
		Rows:   e.scramble9(),
		Cols:   e.scramble9(),
		Digits: e.scramble9(),
	}
}

// perm3 draws a permutation of {0,1,2}. An unconstrained draw argsorts
// three random keys; a symmetric draw is limited to the identity or the
// full reversal, chosen by the parity of one draw.
func (e *Engine) perm3() [3]int {
	if e.options.Symmetric {
		if e.rng.Int()%2 == 0 {
			return [3]int{0, 1, 2}
		}
		return [3]int{2, 1, 0}
	}

	keys := [3]int{e.rng.Int(), e.rng.Int(), e.rng.Int()}
	perm := [3]int{0, 1, 2}

	// Three-element sort network ordering perm by key.
	if keys[perm[0]] > keys[perm[1]] {
		perm[0], perm[1] = perm[1], perm[0]
	}
	if keys[perm[1]] > keys[perm[2]] {
		perm[1], perm[2] = perm[2], perm[1]
	}
	if keys[perm[0]] > keys[perm[1]] {
		perm[0], perm[1] = perm[1], perm[0]
	}
	return perm
}

// scramble9 composes band and in-band permutations into a permutation of
// 0-8: slot j of target band i pulls from source band band[i], slot
// blocks[i][j]. Lines never leave their band, so block structure is
// preserved. In symmetric mode the middle band mirrors the first band's
// in-band order.
func (e *Engine) scramble9() [9]int {
	band := e.perm3()
	blocks := [3][3]int{e.perm3(), e.perm3(), e.perm3()}
	if e.options.Symmetric {
		blocks[1] = [3]int{blocks[0][2], blocks[0][1], blocks[0][0]}
	}

	var out [9]int
	for i := range 9 {
		out[i] = band[i/3]*3 + blocks[i/3][i%3]
	}
	return out
}

// Identity is the no-scramble strategy: its set leaves every row, column,
// and digit in place.
type Identity struct{}

// Permutations returns the identity set.
func (Identity) Permutations() Set {
	return IdentitySet()
}
