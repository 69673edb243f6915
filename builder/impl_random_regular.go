// SPDX-License-Identifier: MIT
// Package: isomatch/builder
//
// impl_random_regular.go - random d-regular graphs via stub matching.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n, n*d even (else ErrTooFewVertices).
//   • cfg.rng is required (ErrNeedRandSource).
//   • Up to maxStubMatchingAttempts shuffles; a pairing with a loop or a
//     repeated pair is rejected. Exhausting the attempts yields ErrConstructFailed.
//
// Complexity: O(n*d) per attempt.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor that builds a random d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomRegular, n, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomRegular, n); err != nil {
			return err
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !validPairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := addEdge(g, cfg, methodRandomRegular, cfg.idFn(stubs[i]), cfg.idFn(stubs[i+1])); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// validPairing reports whether consecutive stub pairs form a simple graph.
func validPairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
