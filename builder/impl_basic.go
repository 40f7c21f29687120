// SPDX-License-Identifier: MIT
//
// impl_basic.go: deterministic topologies: Path, Cycle, Star, Complete.

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
)

// Path emits airports 0→1→…→n-1, leg i in wave i (n ≥ 2).
func Path(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodPath, n, ErrTooFewAirports)
		}
		for i := 0; i < n-1; i++ {
			net.addFlight(cfg, cfg.idFn(i), cfg.idFn(i+1), i)
		}

		return nil
	}
}

// Cycle emits Path(n) closed by n-1→0 in wave n-1 (n ≥ 3).
func Cycle(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("%s: n=%d < min=3: %w", methodCycle, n, ErrTooFewAirports)
		}
		for i := 0; i < n; i++ {
			net.addFlight(cfg, cfg.idFn(i), cfg.idFn((i+1)%n), i)
		}

		return nil
	}
}

// Star emits a hub (airport 0) with n-1 spokes: every spoke flies to the
// hub in wave 0 and the hub flies to every spoke in wave 1, so each
// spoke→hub→spoke pair connects (n ≥ 2).
func Star(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodStar, n, ErrTooFewAirports)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			net.addFlight(cfg, cfg.idFn(i), hub, 0)
		}
		for i := 1; i < n; i++ {
			net.addFlight(cfg, hub, cfg.idFn(i), 1)
		}

		return nil
	}
}

// Complete emits one flight for every ordered pair i≠j. Flights leaving
// airport i belong to wave i, so connections only run towards higher
// indices (n ≥ 2).
func Complete(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodComplete, n, ErrTooFewAirports)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					net.addFlight(cfg, cfg.idFn(i), cfg.idFn(j), i)
				}
			}
		}

		return nil
	}
}
