package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thalesfsp/nm"
	"github.com/thalesfsp/nm/internal/config"
	"github.com/thalesfsp/nm/internal/logger"
	"github.com/thalesfsp/nm/internal/problems"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nmsimplex",
		Short: "Nelder-Mead downhill simplex driver",
		Long: `nmsimplex runs the bundled benchmark problems through the
Nelder-Mead downhill simplex minimizer and reports the best point found.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newProblemsCmd(),
		newRunCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nmsimplex version %s\n", version)
		},
	}
}

func newProblemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the built-in problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			type entry struct {
				Name        string    `json:"name"`
				Description string    `json:"description"`
				Dimension   int       `json:"dimension"`
				Start       []float64 `json:"start"`
			}

			var entries []entry
			for _, name := range problems.Names() {
				p, err := problems.Lookup(name)
				if err != nil {
					return err
				}

				entries = append(entries, entry{
					Name:        p.Name,
					Description: p.Description,
					Dimension:   p.Dimension(),
					Start:       p.Start,
				})
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(entries)
			}

			for _, e := range entries {
				fmt.Fprintf(out, "%-18s n=%d  %s\n", e.Name, e.Dimension, e.Description)
			}

			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [problem]",
		Short: "Minimize a built-in problem",
		Long: `Minimize a built-in problem. Settings come from the problem defaults,
then the --config run file, then the command-line flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()

			if path, _ := cmd.Flags().GetString("config"); path != "" {
				loaded, err := config.Load(path)
				if err != nil {
					return err
				}

				cfg = loaded
			}

			if len(args) == 1 {
				cfg.Problem = args[0]
			}

			flags := cmd.Flags()
			if flags.Changed("start") {
				cfg.Start, _ = flags.GetFloat64Slice("start")
			}
			if flags.Changed("epsilon") {
				cfg.Epsilon, _ = flags.GetFloat64("epsilon")
			}
			if flags.Changed("scale") {
				cfg.Scale, _ = flags.GetFloat64("scale")
			}
			if flags.Changed("max-iterations") {
				cfg.MaxIterations, _ = flags.GetInt("max-iterations")
			}
			if flags.Changed("log-level") {
				cfg.LogLevel, _ = flags.GetString("log-level")
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			trace, _ := flags.GetBool("trace")
			log := logger.New(cfg.LogLevel, cmd.ErrOrStderr())

			rep, err := run(cfg, log, trace)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")

			return rep.write(cmd.OutOrStdout(), jsonOut)
		},
	}

	cmd.Flags().String("config", "", "YAML run file")
	cmd.Flags().Float64Slice("start", nil, "Starting point, comma separated")
	cmd.Flags().Float64("epsilon", 0, "Convergence tolerance")
	cmd.Flags().Float64("scale", 0, "Initial simplex edge length")
	cmd.Flags().Int("max-iterations", 0, "Iteration cap")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().Bool("trace", false, "Log the simplex after every iteration (needs --log-level debug)")

	return cmd
}

// report is the outcome of one run as printed by the driver.
type report struct {
	Problem     string    `json:"problem"`
	Best        []float64 `json:"best"`
	Value       float64   `json:"value"`
	Evaluations int       `json:"evaluations"`
	Iterations  int       `json:"iterations"`
	Converged   bool      `json:"converged"`
	Reason      string    `json:"reason"`
}

func (r *report) write(w io.Writer, jsonOut bool) error {
	if jsonOut {
		return json.NewEncoder(w).Encode(r)
	}

	fmt.Fprintf(w, "The minimum was found at\n")
	for _, x := range r.Best {
		fmt.Fprintf(w, "%e\n", x)
	}

	fmt.Fprintf(w, "value %g\n", r.Value)
	fmt.Fprintf(w, "%d Function Evaluations\n", r.Evaluations)
	fmt.Fprintf(w, "%d Iterations through program\n", r.Iterations)

	if !r.Converged {
		fmt.Fprintf(w, "did not converge: %s\n", r.Reason)
	}

	return nil
}

// run resolves cfg against its problem and minimizes it.
func run(cfg *config.RunConfig, log *slog.Logger, trace bool) (*report, error) {
	if cfg.Problem == "" {
		return nil, fmt.Errorf("no problem given (available: %v)", problems.Names())
	}

	p, err := problems.Lookup(cfg.Problem)
	if err != nil {
		return nil, err
	}

	start := p.Start
	if len(cfg.Start) > 0 {
		if len(cfg.Start) != p.Dimension() {
			return nil, fmt.Errorf("problem %s has dimension %d, start point has %d", p.Name, p.Dimension(), len(cfg.Start))
		}

		start = cfg.Start
	}

	opts := p.Config()
	if cfg.Epsilon > 0 {
		opts.Epsilon = cfg.Epsilon
	}
	if cfg.Scale > 0 {
		opts.Scale = cfg.Scale
	}
	if cfg.MaxIterations > 0 {
		opts.MaxIterations = cfg.MaxIterations
	}
	if trace {
		opts.Observer = nm.LogObserver(log)
	}

	log.Info("starting run",
		"problem", p.Name,
		"start", start,
		"epsilon", opts.Epsilon,
		"scale", opts.Scale,
		"max_iterations", opts.MaxIterations,
	)

	result, err := nm.Minimize(p.Objective, start, opts)
	if err != nil {
		return nil, fmt.Errorf("minimizing %s: %w", p.Name, err)
	}

	if !result.Converged {
		log.Warn("run did not converge",
			"problem", p.Name,
			"iterations", result.Iterations,
			"std_dev", result.StdDev,
		)
	}

	return &report{
		Problem:     p.Name,
		Best:        result.Best.Position,
		Value:       result.Best.Value,
		Evaluations: result.Evaluations,
		Iterations:  result.Iterations,
		Converged:   result.Converged,
		Reason:      result.Reason,
	}, nil
}
