package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "trellis",
	Short: "Resolve style and layout for a declarative UI document",
	Long: `trellis loads a declarative UI document and computes the two
outputs a presentation backend needs: resolved visual style per
element and concrete pixel geometry per element.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		viper.SetEnvPrefix("TRELLIS")
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()

		if verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			logger = l
		}
		return nil
	},
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
