package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/isomatch/cmd/util"
	"github.com/katalvlaran/isomatch/converters"
	"github.com/katalvlaran/isomatch/screen"
)

const (
	targetsFlag     = "targets"
	concurrencyFlag = "concurrency"
	countLimitFlag  = "count-limit"
	metricsFlag     = "metrics"
)

// screenHit is one target with at least one mapping. Path identifies the
// target; Target is its document name, which need not be unique.
type screenHit struct {
	Target string `json:"target"`
	Path   string `json:"path"`
	Count  int    `json:"count"`
}

// screenReport is the JSON document printed by the screen command.
type screenReport struct {
	Query    string            `json:"query"`
	Targets  int               `json:"targets"`
	Screened int               `json:"screened"`
	Hits     []screenHit       `json:"hits"`
	Errors   map[string]string `json:"errors,omitempty"` // keyed by target path
	Elapsed  string            `json:"elapsed"`
}

// NewScreenCommand returns the command that runs one query against many
// target graphs in parallel.
func NewScreenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Screen a query graph against many target graphs",
		Long: `Screen a query graph against many target graphs.

Targets too small to host the query are skipped without searching. The report
lists every target with at least one mapping and its mapping count.`,
		RunE: runScreen,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			bindSearchFlags(flags)
			util.MustBindPFlag(targetsFlag, flags.Lookup(targetsFlag))
			util.MustBindPFlag(concurrencyFlag, flags.Lookup(concurrencyFlag))
			util.MustBindPFlag(countLimitFlag, flags.Lookup(countLimitFlag))
			util.MustBindPFlag(metricsFlag, flags.Lookup(metricsFlag))
		},
	}

	flags := cmd.Flags()
	addSearchFlags(flags)
	flags.StringSlice(targetsFlag, nil, "paths of the target graph documents")
	flags.Int(concurrencyFlag, 0, "targets searched in parallel (0 = GOMAXPROCS)")
	flags.Int(countLimitFlag, 0, "stop counting a target after this many mappings (0 = all)")
	flags.Bool(metricsFlag, false, "write screening metrics in Prometheus text format to stderr")

	// NOTE: if you add a new flag here, add the binding in PreRun

	return cmd
}

func runScreen(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	paths := viper.GetStringSlice(targetsFlag)
	if viper.GetString(queryFlag) == "" || len(paths) == 0 {
		return fmt.Errorf("both --%s and --%s are required", queryFlag, targetsFlag)
	}

	query, queryName, err := loadIndexed(viper.GetString(queryFlag))
	if err != nil {
		return err
	}
	targets := make([]*converters.Indexed, len(paths))
	names := make([]string, len(paths))
	for i, p := range paths {
		if targets[i], names[i], err = loadIndexed(p); err != nil {
			return err
		}
	}
	sopts, err := searchOptions()
	if err != nil {
		return err
	}
	m, err := newMatchers()
	if err != nil {
		return err
	}

	opts := []screen.Option{
		screen.WithSearchOptions(sopts...),
		screen.WithMatchers(m.options),
		screen.WithCountLimit(viper.GetInt(countLimitFlag)),
		screen.WithLogger(log),
	}
	if n := viper.GetInt(concurrencyFlag); n > 0 {
		opts = append(opts, screen.WithConcurrency(n))
	}
	reg := prometheus.NewRegistry()
	if viper.GetBool(metricsFlag) {
		opts = append(opts, screen.WithObserver(screen.NewPrometheusObserver(reg)))
	}

	start := time.Now()
	res, err := screen.Run(cmd.Context(), query, targets, opts...)
	if err != nil {
		return err
	}
	if err := m.err(); err != nil {
		log.Warn("predicate evaluation failed", zap.Error(err))
	}

	report := screenReport{
		Query:    queryName,
		Targets:  len(targets),
		Screened: int(res.Screened.GetCardinality()),
		Hits:     make([]screenHit, 0, res.Hits.GetCardinality()),
		Elapsed:  time.Since(start).String(),
	}
	it := res.Hits.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		report.Hits = append(report.Hits, screenHit{Target: names[i], Path: paths[i], Count: res.Counts[i]})
	}
	if len(res.Errors) > 0 {
		report.Errors = make(map[string]string, len(res.Errors))
		for i, e := range res.Errors {
			report.Errors[paths[i]] = e.Error()
		}
	}

	// print the report in json format to allow piping to other commands, e.g. jq
	marshalled, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("error gathering screen results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(marshalled))

	if viper.GetBool(metricsFlag) {
		return writeMetrics(reg)
	}

	return nil
}

func writeMetrics(reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("error gathering metrics: %w", err)
	}
	enc := expfmt.NewEncoder(os.Stderr, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("error writing metrics: %w", err)
		}
	}

	return nil
}
