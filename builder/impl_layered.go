// SPDX-License-Identifier: MIT

package builder

import "fmt"

const methodLayered = "Layered"

// Layered emits an origin (airport 0), layers×width intermediate airports
// and a destination (airport layers·width+1). The origin flies to every
// airport of layer 1, every airport of layer l to every airport of layer
// l+1, and the last layer to the destination. Hop k is wave k, so with the
// default schedule there are exactly width^layers origin→destination paths
// (layers ≥ 1, width ≥ 1).
func Layered(layers, width int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if layers < 1 || width < 1 {
			return fmt.Errorf("%s: layers=%d width=%d < min=1: %w",
				methodLayered, layers, width, ErrTooFewAirports)
		}
		node := func(l, k int) string { return cfg.idFn(1 + (l-1)*width + k) }
		origin, dest := cfg.idFn(0), cfg.idFn(layers*width+1)

		for k := 0; k < width; k++ {
			net.addFlight(cfg, origin, node(1, k), 0)
		}
		for l := 1; l < layers; l++ {
			for i := 0; i < width; i++ {
				for j := 0; j < width; j++ {
					net.addFlight(cfg, node(l, i), node(l+1, j), l)
				}
			}
		}
		for k := 0; k < width; k++ {
			net.addFlight(cfg, node(layers, k), dest, layers)
		}

		return nil
	}
}

// LayeredEnds returns the origin and destination codes of Layered(layers,
// width) under the given scheme.
func LayeredEnds(layers, width int, idFn IDFn) (origin, destination string) {
	return idFn(0), idFn(layers*width + 1)
}
