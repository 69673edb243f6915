package cmd

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/isomatch/cmd/util"
	"github.com/katalvlaran/isomatch/isomorphism"
)

const (
	targetFlag = "target"
	limitFlag  = "limit"
	uniqueFlag = "unique"
)

// NewMatchCommand returns the command that prints every mapping of a query
// graph into one target graph.
func NewMatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Enumerate mappings of a query graph into a target graph",
		Long: `Enumerate mappings of a query graph into a target graph.

Each mapping is printed as one JSON object per line, keyed by query vertex ID,
so the output can be piped to other commands, e.g. jq.`,
		RunE: runMatch,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			bindSearchFlags(flags)
			util.MustBindPFlag(targetFlag, flags.Lookup(targetFlag))
			util.MustBindPFlag(limitFlag, flags.Lookup(limitFlag))
			util.MustBindPFlag(uniqueFlag, flags.Lookup(uniqueFlag))
		},
	}

	flags := cmd.Flags()
	addSearchFlags(flags)
	flags.String(targetFlag, "", "path of the target graph document")
	flags.Int(limitFlag, 0, "stop after this many mappings (0 = all)")
	flags.String(uniqueFlag, "none", "collapse mappings sharing a target 'vertices' or 'edges' set, or 'none'")

	// NOTE: if you add a new flag here, add the binding in PreRun

	return cmd
}

func runMatch(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	if viper.GetString(queryFlag) == "" || viper.GetString(targetFlag) == "" {
		return fmt.Errorf("both --%s and --%s are required", queryFlag, targetFlag)
	}

	query, _, err := loadIndexed(viper.GetString(queryFlag))
	if err != nil {
		return err
	}
	target, _, err := loadIndexed(viper.GetString(targetFlag))
	if err != nil {
		return err
	}
	opts, err := searchOptions()
	if err != nil {
		return err
	}
	m, err := newMatchers()
	if err != nil {
		return err
	}
	opts = append(opts, isomorphism.WithContext(cmd.Context()))
	opts = append(opts, m.options(query, target)...)

	e, err := isomorphism.NewSearch(query.Graph, target.Graph, opts...)
	if err != nil {
		return err
	}

	var seq iter.Seq[isomorphism.Mapping]
	switch unique := viper.GetString(uniqueFlag); unique {
	case "none", "":
		seq = e.All()
	case "vertices":
		seq = isomorphism.UniqueVertexSets(e.All())
	case "edges":
		seq = isomorphism.UniqueEdgeSets(query.Graph, target.Graph, e.All())
	default:
		return fmt.Errorf("invalid --%s value: %s", uniqueFlag, unique)
	}
	if limit := viper.GetInt(limitFlag); limit > 0 {
		seq = isomorphism.Limit(seq, limit)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	printed := 0
	for mapping := range seq {
		if err := enc.Encode(query.Translate(mapping, target)); err != nil {
			return fmt.Errorf("error writing mapping: %w", err)
		}
		printed++
	}
	if err := e.Err(); err != nil {
		return err
	}
	if err := m.err(); err != nil {
		log.Warn("predicate evaluation failed", zap.Error(err))
	}

	stats := e.Stats()
	log.Info("match finished",
		zap.Int("mappings", printed),
		zap.Int("maps", stats.Maps),
		zap.Int("unmaps", stats.Unmaps),
	)

	return nil
}
