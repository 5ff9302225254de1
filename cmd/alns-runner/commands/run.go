package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pdptw-alns/alns"
	"github.com/katalvlaran/pdptw-alns/instance"
	"github.com/katalvlaran/pdptw-alns/result"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00C853"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func runCmd(cmd *cobra.Command, args []string) error {
	f, err := os.Open(config.InstancePath)
	if err != nil {
		return fmt.Errorf("opening instance file: %w", err)
	}
	defer f.Close()

	p, err := instance.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing instance: %w", err)
	}

	sel := alns.NewSelector(alns.DefaultOperators(), alns.AdaptiveOptions{
		ReactionFactor:  config.ReactionFactor,
		SegmentLength:   config.SegmentLength,
		MinRuinFraction: config.MinRuinFraction,
		MaxRuinFraction: config.MaxRuinFraction,
	}.WithDefaults())

	warmup := int(float64(config.Iterations) * config.WarmupFraction)
	if warmup < 1 {
		warmup = 1
	}
	ctrl := alns.NewController(alns.ControllerOptions{
		ExplorationProbability: config.ExplorationP,
		FinalTemperature:       config.FinalTemp,
		WarmupIterations:       warmup,
		TotalIterations:        config.Iterations,
		EscapeAfter:            config.EscapeAfter,
	})

	rng := alns.RNGFromSeed(config.Seed)
	budget := alns.Budget{
		MaxIterations: config.Iterations,
		MaxDuration:   time.Duration(config.Seconds * float64(time.Second)),
	}

	start := time.Now()
	res, err := alns.RunExperiment(p, sel, ctrl, rng, budget)
	if err != nil {
		return fmt.Errorf("running experiment: %w", err)
	}
	elapsed := time.Since(start)

	wire := result.Encode(p, res.BestSolution)
	if err := os.WriteFile(config.OutPath, []byte(wire), 0o644); err != nil {
		return fmt.Errorf("writing solution: %w", err)
	}

	printSummary(res, elapsed)
	return nil
}

func printSummary(res alns.Result, elapsed time.Duration) {
	fmt.Println(titleStyle.Render("ALNS run complete"))
	row := func(label string, value any) {
		fmt.Printf("  %s %v\n", labelStyle.Render(label+":"), value)
	}
	row("best cost", res.BestCost)
	row("feasible", res.BestSolution.IsFeasible())
	row("found at iteration", res.IterFound)
	row("found after", res.TimeFound)
	row("total iterations", res.TotalIterations)
	row("wall-clock time", elapsed)
}
