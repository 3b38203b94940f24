package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	verbose       bool
	parallel      bool
	warnThreshold int
)

// rootCmd is ipmctl's base command.
var rootCmd = &cobra.Command{
	Use:   "ipmctl",
	Short: "Run the embedded exact-reachability demo scenarios",
	Long: `ipmctl drives the exact probabilistic reachability engine over the
S1-S6 scenarios from spec.md §8, for manual inspection of belief values,
diamond conditioning, and cache behavior.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to rootCmd and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./ipmctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostics logging")
	rootCmd.PersistentFlags().BoolVar(&parallel, "parallel", false, "fan out diamond conditioning across states")
	rootCmd.PersistentFlags().IntVar(&warnThreshold, "warn-threshold", 20, "contribution count above which a node triggers a diagnostic warning")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("parallel", rootCmd.PersistentFlags().Lookup("parallel"))
	_ = viper.BindPFlag("warn_threshold", rootCmd.PersistentFlags().Lookup("warn-threshold"))
}

// initConfig reads an optional config file, and environment variables
// prefixed IPMCTL_, layering over the flag defaults already bound above.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ipmctl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("IPMCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("ipmctl: failed to read config file: %w", err)
		}
	}

	verbose = viper.GetBool("verbose")
	parallel = viper.GetBool("parallel")
	warnThreshold = viper.GetInt("warn_threshold")
	return nil
}
