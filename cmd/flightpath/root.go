package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flightpath/config"
	"github.com/katalvlaran/flightpath/logging"
)

// globals are the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
	logJSON    bool
}

// setup loads the config file and builds the logger. Flags set on the
// command line win over the file.
func (g *globals) setup(cmd *cobra.Command, stderr io.Writer) (config.File, *slog.Logger, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.File{}, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = g.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = g.logJSON
	}
	log, err := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		JSON:    cfg.Log.JSON,
		Output:  stderr,
		Service: "flightpath",
	})
	if err != nil {
		return config.File{}, nil, err
	}

	return cfg, log, nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "flightpath",
		Short: "Find flight combinations between two airports",
		Long: `flightpath reads a CSV dataset of flights and lists every combination
of connecting flights from an origin to a destination that respects the
layover window, the number of bags and the start date, cheapest first.

With no subcommand, flightpath runs "search".`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&g.logJSON, "log-json", false, "log as JSON")

	// The root command doubles as "search" so the positional form works.
	bindSearch(root, g, stdout, stderr)
	search := &cobra.Command{
		Use:   "search <csv> <origin> <destination>",
		Short: "Search a dataset and print the itineraries",
	}
	bindSearch(search, g, stdout, stderr)

	root.AddCommand(search, newServeCmd(g, stderr), newGenCmd(stdout), newVersionCmd(stdout))

	return root
}
