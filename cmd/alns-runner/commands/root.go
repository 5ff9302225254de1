// Package commands wires the alns-runner CLI: a cobra root command with
// viper-backed configuration (flag > env > config file > default), styled
// with lipgloss for terminal output, in the manner of the pack's other
// cobra-based CLIs.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config holds every flag, bound through viper so a config file or
// environment variable can supply the same values.
var config runConfig

type runConfig struct {
	InstancePath    string
	OutPath         string
	Iterations      int
	Seconds         float64
	Seed            int64
	WarmupFraction  float64
	EscapeAfter     int
	SegmentLength   int
	ReactionFactor  float64
	ExplorationP    float64
	FinalTemp       float64
	MinRuinFraction float64
	MaxRuinFraction float64
}

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "alns-runner",
	Short:   "Adaptive large neighborhood search runner for PDPTW instances",
	Version: "dev",
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/.alns-runner.yaml)")
	flags.StringVar(&config.InstancePath, "instance", "", "path to the instance file (required)")
	flags.StringVar(&config.OutPath, "out", "solution.txt", "path to write the solution wire format")
	flags.IntVar(&config.Iterations, "iterations", 10000, "iteration budget (0 disables the iteration cap)")
	flags.Float64Var(&config.Seconds, "seconds", 0, "wall-clock budget in seconds (0 disables)")
	flags.Int64Var(&config.Seed, "seed", 1, "base RNG seed")
	flags.Float64Var(&config.WarmupFraction, "warmup-fraction", 0.1, "fraction of the iteration budget spent warming up")
	flags.IntVar(&config.EscapeAfter, "escape-after", 500, "consecutive non-improving iterations before an escape/restart")
	flags.IntVar(&config.SegmentLength, "segment-length", 100, "iterations between operator-weight reweights")
	flags.Float64Var(&config.ReactionFactor, "reaction-factor", 0.8, "operator reweighting reaction factor r")
	flags.Float64Var(&config.ExplorationP, "exploration-probability", 0.8, "warm-up acceptance probability p0")
	flags.Float64Var(&config.FinalTemp, "final-temperature", 0.1, "annealing phase final temperature Tf")
	flags.Float64Var(&config.MinRuinFraction, "min-ruin-fraction", 0.05, "minimum fraction of calls removed per iteration")
	flags.Float64Var(&config.MaxRuinFraction, "max-ruin-fraction", 0.30, "maximum fraction of calls removed per iteration")

	bind := func(name string) { _ = viper.BindPFlag(name, flags.Lookup(name)) }
	bind("instance")
	bind("out")
	bind("iterations")
	bind("seconds")
	bind("seed")
	bind("warmup-fraction")
	bind("escape-after")
	bind("segment-length")
	bind("reaction-factor")
	bind("exploration-probability")
	bind("final-temperature")
	bind("min-ruin-fraction")
	bind("max-ruin-fraction")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		config.InstancePath = viper.GetString("instance")
		config.OutPath = viper.GetString("out")
		config.Iterations = viper.GetInt("iterations")
		config.Seconds = viper.GetFloat64("seconds")
		config.Seed = viper.GetInt64("seed")
		config.WarmupFraction = viper.GetFloat64("warmup-fraction")
		config.EscapeAfter = viper.GetInt("escape-after")
		config.SegmentLength = viper.GetInt("segment-length")
		config.ReactionFactor = viper.GetFloat64("reaction-factor")
		config.ExplorationP = viper.GetFloat64("exploration-probability")
		config.FinalTemp = viper.GetFloat64("final-temperature")
		config.MinRuinFraction = viper.GetFloat64("min-ruin-fraction")
		config.MaxRuinFraction = viper.GetFloat64("max-ruin-fraction")

		if config.InstancePath == "" {
			return fmt.Errorf("--instance is required")
		}
		return nil
	}

	rootCmd.RunE = runCmd
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".alns-runner")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ALNS")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
