package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flightpath/config"
	"github.com/katalvlaran/flightpath/render"
	"github.com/katalvlaran/flightpath/search"
)

type searchFlags struct {
	bags       int
	reverse    bool
	minLayover int
	maxLayover int
	startDate  string
	format     string
}

// bindSearch installs the search flags and RunE on cmd.
func bindSearch(cmd *cobra.Command, g *globals, stdout, stderr io.Writer) {
	f := &searchFlags{}
	fs := cmd.Flags()
	fs.IntVar(&f.bags, "bags", 0, "number of checked bags")
	fs.BoolVarP(&f.reverse, "reverse", "r", false, "also search the return trip")
	fs.IntVar(&f.minLayover, "min-layover", config.DefaultMinLayover, "minimum layover in hours")
	fs.IntVar(&f.maxLayover, "max-layover", config.DefaultMaxLayover, "maximum layover in hours")
	fs.StringVar(&f.startDate, "start-date", config.DefaultStartDate, "earliest departure date, YYYY-MM-DD")
	fs.StringVar(&f.format, "format", string(render.FormatJSON), "output format: json or text")

	cmd.Args = cobra.ExactArgs(3)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, log, err := g.setup(cmd, stderr)
		if err != nil {
			return err
		}
		format, err := render.ParseFormat(f.format)
		if err != nil {
			return err
		}

		q := f.apply(cmd, cfg.Search, args)
		if q.LayoverInverted() {
			log.Warn("--min-layover is greater than --max-layover")
		}
		res, err := search.New(search.WithLogger(log)).Run(cmd.Context(), q)
		if err != nil {
			return err
		}

		return render.Write(stdout, format, res.Itineraries)
	}
}

// apply layers positional arguments and changed flags over base.
func (f *searchFlags) apply(cmd *cobra.Command, base config.Query, args []string) config.Query {
	q := base
	q.CSV, q.Origin, q.Destination = args[0], args[1], args[2]

	fs := cmd.Flags()
	if fs.Changed("bags") {
		q.Bags = f.bags
	}
	if fs.Changed("reverse") {
		q.Reverse = f.reverse
	}
	if fs.Changed("min-layover") {
		q.MinLayover = f.minLayover
	}
	if fs.Changed("max-layover") {
		q.MaxLayover = f.maxLayover
	}
	if fs.Changed("start-date") {
		q.StartDate = f.startDate
	}

	return q
}
