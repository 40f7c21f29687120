// SPDX-License-Identifier: MIT

package builder

import "fmt"

const methodRandomSparse = "RandomSparse"

// RandomSparse includes each ordered pair i≠j independently with
// probability p, in wave i. Trials run in i-then-j ascending order, so a
// fixed seed yields a fixed dataset. An RNG is required when 0 < p < 1
// (n ≥ 2).
func RandomSparse(n int, p float64) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodRandomSparse, n, ErrTooFewAirports)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				keep := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					net.addFlight(cfg, cfg.idFn(i), cfg.idFn(j), i)
				}
			}
		}

		return nil
	}
}
