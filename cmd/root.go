// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/isomatch/cmd/util"
)

const (
	logFormatFlag = "log-format"
	logFormatConf = "log.format"
	logLevelFlag  = "log-level"
	logLevelConf  = "log.level"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables
// prefixed with ISOMATCH, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ISOMATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/isomatch", "$HOME/.isomatch", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetDefault(logFormatFlag, "text")
	viper.SetDefault(logLevelFlag, "none")
	err := viper.ReadInConfig()
	if err == nil {
		if v := viper.Get(logFormatConf); v != nil {
			viper.SetDefault(logFormatFlag, v)
		}
		if v := viper.Get(logLevelConf); v != nil {
			viper.SetDefault(logLevelFlag, v)
		}
	}

	cmd := &cobra.Command{
		Use:   "isomatch",
		Short: "Subgraph and graph isomorphism search over labeled graphs",
		Long: `Subgraph and graph isomorphism search over labeled graphs.

Graphs are read from YAML or JSON documents, either listing vertices and edges
or naming a generator (cycle, wheel, platonic, random, ...). Queries are matched
with VF2 or Ullmann, optionally filtered by label or CEL predicates.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			util.MustBindPFlag(logFormatFlag, flags.Lookup(logFormatFlag))
			util.MustBindPFlag(logLevelFlag, flags.Lookup(logLevelFlag))
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(logFormatFlag, "text", "the log format to output logs in: 'text' or 'json'")
	flags.String(logLevelFlag, "none", "the log level: 'none', 'debug', 'info', 'warn' or 'error'")

	return cmd
}
