// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"time"

	"github.com/katalvlaran/flightpath/core"
)

// Network accumulates the records emitted by constructors.
type Network struct {
	records []core.Record
	seq     int // last flight number issued
}

// Len returns the number of records emitted so far.
func (n *Network) Len() int { return len(n.records) }

// addFlight emits one from→to flight of the given wave per scheduled day.
func (n *Network) addFlight(cfg builderConfig, from, to string, wave int) {
	dep := cfg.start.Add(time.Duration(wave) * cfg.spacing)
	for day := 0; day < cfg.days; day++ {
		d := dep.AddDate(0, 0, day)
		n.seq++
		n.records = append(n.records, core.Record{
			FlightNo:    fmt.Sprintf("%s%04d", cfg.carrier, n.seq),
			Origin:      from,
			Destination: to,
			Departure:   d,
			Arrival:     d.Add(cfg.legDuration),
			BasePrice:   cfg.priceFn(cfg.rng),
			BagPrice:    cfg.bagPrice,
			BagsAllowed: cfg.bagsAllowed,
		})
	}
}

// Constructor emits one topology into a Network. Constructors validate
// their parameters before emitting anything and return only sentinel
// errors wrapped with context.
type Constructor func(n *Network, cfg builderConfig) error

// Build resolves opts and applies cons in order, returning every emitted
// record. Constructors share airport codes: index i is the same airport in
// all of them.
func Build(opts []Option, cons ...Constructor) ([]core.Record, error) {
	cfg := newBuilderConfig(opts...)
	net := &Network{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(net, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return net.records, nil
}
