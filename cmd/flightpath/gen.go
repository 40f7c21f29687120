package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flightpath/builder"
	"github.com/katalvlaran/flightpath/config"
)

type genFlags struct {
	topology string
	airports int
	layers   int
	width    int
	prob     float64
	seed     int64
	days     int
	start    string
	minPrice int64
	maxPrice int64
	output   string
}

// constructor maps the topology flag to a builder constructor.
func (f *genFlags) constructor() (builder.Constructor, error) {
	switch f.topology {
	case "path":
		return builder.Path(f.airports), nil
	case "cycle":
		return builder.Cycle(f.airports), nil
	case "star":
		return builder.Star(f.airports), nil
	case "complete":
		return builder.Complete(f.airports), nil
	case "layered":
		return builder.Layered(f.layers, f.width), nil
	case "random":
		return builder.RandomSparse(f.airports, f.prob), nil
	default:
		return nil, fmt.Errorf("unknown topology %q (want path, cycle, star, complete, layered or random)", f.topology)
	}
}

func newGenCmd(stdout io.Writer) *cobra.Command {
	f := &genFlags{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic flight dataset",
		Long: `gen writes a deterministic synthetic dataset in the CSV format read by
search. Waves of flights are spaced so that consecutive legs connect with one
hour on the ground.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			con, err := f.constructor()
			if err != nil {
				return err
			}
			day, err := time.Parse(config.DateLayout, f.start)
			if err != nil {
				return fmt.Errorf("%w: start: %w", config.ErrInvalid, err)
			}
			if f.minPrice < 0 || f.minPrice > f.maxPrice {
				return fmt.Errorf("%w: price range [%d, %d]", config.ErrInvalid, f.minPrice, f.maxPrice)
			}
			if f.days < 1 {
				return fmt.Errorf("%w: days must be >= 1", config.ErrInvalid)
			}

			opts := []builder.Option{
				builder.WithSeed(f.seed),
				builder.WithDays(f.days),
				builder.WithSchedule(day.Add(6*time.Hour), 3*time.Hour, 2*time.Hour),
				builder.WithPriceFn(builder.UniformPrice(f.minPrice, f.maxPrice)),
			}
			recs, err := builder.Build(opts, con)
			if err != nil {
				return err
			}

			out := stdout
			if f.output != "" && f.output != "-" {
				file, err := os.Create(f.output)
				if err != nil {
					return err
				}
				defer file.Close()
				out = file
			}

			return builder.WriteCSV(out, recs)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.topology, "topology", "layered", "path, cycle, star, complete, layered or random")
	fs.IntVar(&f.airports, "airports", 10, "number of airports (all topologies but layered)")
	fs.IntVar(&f.layers, "layers", 3, "intermediate layers (layered)")
	fs.IntVar(&f.width, "width", 3, "airports per layer (layered)")
	fs.Float64Var(&f.prob, "prob", 0.2, "flight probability per airport pair (random)")
	fs.Int64Var(&f.seed, "seed", 1, "random seed")
	fs.IntVar(&f.days, "days", 1, "days the schedule repeats")
	fs.StringVar(&f.start, "start", "2021-09-01", "first day, YYYY-MM-DD")
	fs.Int64Var(&f.minPrice, "min-price", 50, "lowest base price")
	fs.Int64Var(&f.maxPrice, "max-price", 300, "highest base price")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")

	return cmd
}
