package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/isomatch/cmd/util"
	"github.com/katalvlaran/isomatch/converters"
	"github.com/katalvlaran/isomatch/graphfile"
	"github.com/katalvlaran/isomatch/isomorphism"
	"github.com/katalvlaran/isomatch/logger"
	"github.com/katalvlaran/isomatch/predicate"
)

const (
	queryFlag      = "query"
	modeFlag       = "mode"
	algorithmFlag  = "algorithm"
	maxStepsFlag   = "max-steps"
	vertexExprFlag = "vertex-expr"
	edgeExprFlag   = "edge-expr"
	labelsFlag     = "labels"
)

// addSearchFlags registers the flags shared by match and screen.
func addSearchFlags(flags *pflag.FlagSet) {
	flags.String(queryFlag, "", "path of the query graph document")
	flags.String(modeFlag, "subgraph", "matching mode: 'subgraph' or 'exact'")
	flags.String(algorithmFlag, "vf2", "search algorithm: 'vf2' or 'ullmann'")
	flags.Int(maxStepsFlag, 0, "abort a search after this many map steps (0 = unbounded)")
	flags.String(vertexExprFlag, "", "CEL vertex predicate over q and t, e.g. 'q.label == t.label'")
	flags.String(edgeExprFlag, "", "CEL edge predicate over q and t")
	flags.Bool(labelsFlag, true, "require equal labels ('*' in the query matches any) when no expression is given")
}

func bindSearchFlags(flags *pflag.FlagSet) {
	for _, name := range []string{queryFlag, modeFlag, algorithmFlag, maxStepsFlag, vertexExprFlag, edgeExprFlag, labelsFlag} {
		util.MustBindPFlag(name, flags.Lookup(name))
	}
}

func newLogger() (logger.Logger, error) {
	format, level := viper.GetString(logFormatFlag), viper.GetString(logLevelFlag)
	if level == "" {
		level = "none"
	}
	if format == "" {
		format = "text"
	}

	return logger.NewLogger(format, level)
}

// loadIndexed reads a graph document and snapshots it for searching.
func loadIndexed(path string) (*converters.Indexed, string, error) {
	doc, err := graphfile.Load(path)
	if err != nil {
		return nil, "", err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	x, err := converters.FromCore(g)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	return x, doc.Name, nil
}

// searchOptions resolves the mode, algorithm and budget flags.
func searchOptions() ([]isomorphism.Option, error) {
	mode, err := isomorphism.ParseMode(viper.GetString(modeFlag))
	if err != nil {
		return nil, err
	}
	algo, err := isomorphism.ParseAlgorithm(viper.GetString(algorithmFlag))
	if err != nil {
		return nil, err
	}

	return []isomorphism.Option{
		isomorphism.WithMode(mode),
		isomorphism.WithAlgorithm(algo),
		isomorphism.WithMaxSteps(viper.GetInt(maxStepsFlag)),
	}, nil
}

// matchers holds the compiled predicate flags.
type matchers struct {
	vertex *predicate.VertexExpr
	edge   *predicate.EdgeExpr
	labels bool
}

func newMatchers() (*matchers, error) {
	m := &matchers{labels: viper.GetBool(labelsFlag)}
	if src := viper.GetString(vertexExprFlag); src != "" {
		x, err := predicate.CompileVertex(src)
		if err != nil {
			return nil, err
		}
		m.vertex = x
	}
	if src := viper.GetString(edgeExprFlag); src != "" {
		x, err := predicate.CompileEdge(src)
		if err != nil {
			return nil, err
		}
		m.edge = x
	}

	return m, nil
}

// options binds the predicates to one query/target pair.
func (m *matchers) options(q, t *converters.Indexed) []isomorphism.Option {
	var out []isomorphism.Option
	switch {
	case m.vertex != nil:
		out = append(out, isomorphism.WithVertexMatcher(m.vertex.Matcher(q, t)))
	case m.labels:
		out = append(out, isomorphism.WithVertexMatcher(predicate.LabelOrWildcard(q, t)))
	}
	switch {
	case m.edge != nil:
		out = append(out, isomorphism.WithEdgeMatcher(m.edge.Matcher(q, t)))
	case m.labels:
		out = append(out, isomorphism.WithEdgeMatcher(predicate.EdgeLabelOrWildcard(q, t)))
	}

	return out
}

// err returns the first predicate evaluation error, if any.
func (m *matchers) err() error {
	if m.vertex != nil {
		if err := m.vertex.Err(); err != nil {
			return err
		}
	}
	if m.edge != nil {
		return m.edge.Err()
	}

	return nil
}
