package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomatch/cmd/util"
	"github.com/katalvlaran/isomatch/predicate"
)

const (
	triangleDoc = `name: triangle
generate:
  kind: cycle
  n: 3
`
	k4Doc = `name: k4
generate:
  kind: complete
  n: 4
`
	c6Doc = `name: c6
generate:
  kind: cycle
  n: 6
`
	carbonylDoc = `name: carbonyl
vertices:
  - {id: c, label: C}
  - {id: o, label: O}
edges:
  - {from: c, to: o, label: "2"}
`
	aldehydeDoc = `name: aldehyde
vertices:
  - {id: c1, label: C}
  - {id: c2, label: C}
  - {id: o, label: O}
edges:
  - {from: c1, to: c2, label: "1"}
  - {from: c2, to: o, label: "2"}
`
)

func writeDoc(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

// execute runs the root command with match and screen attached.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	root.AddCommand(NewMatchCommand(), NewScreenCommand())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func lines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

func TestMatchCommandCountsMappings(t *testing.T) {
	dir := t.TempDir()
	q := writeDoc(t, dir, "q.yaml", triangleDoc)
	k4 := writeDoc(t, dir, "k4.yaml", k4Doc)

	for _, tc := range []struct {
		name string
		args []string
		want int
	}{
		{name: "all", want: 24},
		{name: "ullmann", args: []string{"--algorithm", "ullmann"}, want: 24},
		{name: "limit", args: []string{"--limit", "5"}, want: 5},
		{name: "unique_vertices", args: []string{"--unique", "vertices"}, want: 4},
		{name: "unique_edges", args: []string{"--unique", "edges"}, want: 4},
		{name: "exact", args: []string{"--mode", "exact"}, want: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"match", "--query", q, "--target", k4}, tc.args...)
			out, err := execute(t, args...)
			require.NoError(t, err)
			require.Len(t, lines(out), tc.want)
		})
	}
}

func TestMatchCommandLabels(t *testing.T) {
	dir := t.TempDir()
	q := writeDoc(t, dir, "q.yaml", carbonylDoc)
	ald := writeDoc(t, dir, "ald.yaml", aldehydeDoc)

	out, err := execute(t, "match", "--query", q, "--target", ald)
	require.NoError(t, err)
	require.Equal(t, []string{`{"c":"c2","o":"o"}`}, lines(out))

	out, err = execute(t, "match", "--query", q, "--target", ald,
		"--labels=false", "--vertex-expr", "q.label == t.label")
	require.NoError(t, err)
	require.Equal(t, []string{`{"c":"c2","o":"o"}`}, lines(out), "edge labels ignored, adjacency still required")

	out, err = execute(t, "match", "--query", q, "--target", ald, "--labels=false")
	require.NoError(t, err)
	require.Len(t, lines(out), 4)
}

func TestMatchCommandErrors(t *testing.T) {
	dir := t.TempDir()
	q := writeDoc(t, dir, "q.yaml", triangleDoc)
	bad := writeDoc(t, dir, "bad.yaml", "generate: {kind: hypercube, n: 3}\n")

	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{name: "missing_target", args: []string{"match", "--query", q}, want: "are required"},
		{name: "bad_unique", args: []string{"match", "--query", q, "--target", q, "--unique", "faces"}, want: "invalid --unique value"},
		{name: "bad_mode", args: []string{"match", "--query", q, "--target", q, "--mode", "induced"}, want: "unknown mode"},
		{name: "bad_generator", args: []string{"match", "--query", q, "--target", bad}, want: "unknown generator"},
		{name: "missing_file", args: []string{"match", "--query", q, "--target", filepath.Join(dir, "nope.yaml")}, want: "no such file"},
		{name: "budget", args: []string{"match", "--query", q, "--target", q, "--max-steps", "1"}, want: "step budget exceeded"},
		{name: "bad_log_level", args: []string{"--log-level", "loud", "match", "--query", q, "--target", q}, want: "unknown log level"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.ErrorContains(t, err, tc.want)
		})
	}

	_, err := execute(t, "match", "--query", q, "--target", q, "--vertex-expr", "q.label +")
	require.ErrorIs(t, err, predicate.ErrCompile)
}

func TestScreenCommand(t *testing.T) {
	dir := t.TempDir()
	q := writeDoc(t, dir, "q.yaml", triangleDoc)
	k4 := writeDoc(t, dir, "k4.yaml", k4Doc)
	c6 := writeDoc(t, dir, "c6.yaml", c6Doc)
	small := writeDoc(t, dir, "p2.yaml", "name: p2\ngenerate: {kind: path, n: 2}\n")

	out, err := execute(t, "screen", "--query", q, "--targets", strings.Join([]string{k4, c6, small}, ","),
		"--concurrency", "2")
	require.NoError(t, err)

	var report screenReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, "triangle", report.Query)
	require.Equal(t, 3, report.Targets)
	require.Equal(t, 2, report.Screened)
	require.Equal(t, []screenHit{{Target: "k4", Path: k4, Count: 24}}, report.Hits)
	require.Empty(t, report.Errors)

	out, err = execute(t, "screen", "--query", q, "--targets", k4, "--max-steps", "1")
	require.NoError(t, err)
	report = screenReport{}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Empty(t, report.Hits)
	require.Contains(t, report.Errors[k4], "step budget exceeded")

	_, err = execute(t, "screen", "--query", q)
	require.ErrorContains(t, err, "are required")
}

func TestRootCommandConfigFileValuesAreParsed(t *testing.T) {
	util.PrepareTempConfigFile(t, `log:
    format: json
    level: warn
`)

	matchCmd := NewMatchCommand()
	matchCmd.RunE = func(_ *cobra.Command, _ []string) error {
		require.Equal(t, "json", viper.GetString(logFormatFlag))
		require.Equal(t, "warn", viper.GetString(logLevelFlag))
		return nil
	}

	cmd := NewRootCommand()
	cmd.AddCommand(matchCmd)
	cmd.SetArgs([]string{"match"})
	require.NoError(t, cmd.Execute())
}

func TestRootCommandEnvOverridesDefaults(t *testing.T) {
	util.PrepareTempConfigDir(t)
	t.Setenv("ISOMATCH_LOG_LEVEL", "debug")

	matchCmd := NewMatchCommand()
	matchCmd.RunE = func(_ *cobra.Command, _ []string) error {
		require.Equal(t, "debug", viper.GetString(logLevelFlag))
		require.Equal(t, "text", viper.GetString(logFormatFlag))
		return nil
	}

	cmd := NewRootCommand()
	cmd.AddCommand(matchCmd)
	cmd.SetArgs([]string{"match"})
	require.NoError(t, cmd.Execute())
}

func TestScreenCommandDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	q := writeDoc(t, dir, "q.yaml", triangleDoc)
	first := writeDoc(t, dir, "first.yaml", k4Doc)
	second := writeDoc(t, dir, "second.yaml", k4Doc)

	out, err := execute(t, "screen", "--query", q, "--targets", first+","+second)
	require.NoError(t, err)
	var report screenReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, []screenHit{
		{Target: "k4", Path: first, Count: 24},
		{Target: "k4", Path: second, Count: 24},
	}, report.Hits)

	out, err = execute(t, "screen", "--query", q, "--targets", first+","+second, "--max-steps", "1")
	require.NoError(t, err)
	report = screenReport{}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Errors, 2)
	require.Contains(t, report.Errors[first], "step budget exceeded")
	require.Contains(t, report.Errors[second], "step budget exceeded")
}
