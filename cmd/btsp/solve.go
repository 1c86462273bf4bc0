package main

import (
	"errors"
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/btsp/btsp"
	"github.com/katalvlaran/btsp/exact"
	"github.com/katalvlaran/btsp/instance"
	"github.com/katalvlaran/btsp/store"
)

// output is what solve prints.
type output struct {
	Name       string   `json:"name"`
	Variant    string   `json:"variant"`
	Solver     string   `json:"solver"`
	Tour       []int    `json:"tour"`
	Objective  float64  `json:"objective"`
	Bottleneck [2]int   `json:"bottleneck"`
	LowerBound float64  `json:"lowerBound"`
	Ratio      *float64 `json:"ratio,omitempty"`
	Cached     bool     `json:"cached"`
}

func createSolveCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the instance in a YAML or JSON file",
		Args:  cobra.NoArgs,
		RunE:  newSolveCommand(input),
	}
	cmd.Flags().StringVarP(&input.instancePath, "instance", "i", "", "instance file")
	cmd.Flags().IntSliceVar(&input.path, "path", nil, "solve for a path between s,t instead of a cycle")
	cmd.Flags().BoolVar(&input.exact, "exact", false, "use the exact solver (small instances only)")
	cmd.Flags().StringVar(&input.cachePath, "cache", "", "result cache file")
	cmd.Flags().StringVar(&input.format, "format", "json", "output format: json or text")
	cmd.Flags().BoolVar(&input.validate, "validate", true, "recheck the approximation guarantee")
	cmd.Flags().BoolVar(&input.report, "report", false, "log objective, lower bound and guarantee")
	_ = cmd.MarkFlagRequired("instance")
	return cmd
}

func newSolveCommand(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		var level string
		if input.configPath != "" {
			cfg, err := readConfig(input.configPath)
			if err != nil {
				return err
			}
			level = cfg.LogLevel
			mergeConfig(cmd, input, cfg)
		}
		logger, err := newLogger(cmd.ErrOrStderr(), input.verbose, level, input.logFormat)
		if err != nil {
			return err
		}

		in, err := instance.Load(input.instancePath)
		if err != nil {
			return err
		}
		if len(input.path) > 0 {
			if len(input.path) != 2 {
				return fmt.Errorf("--path wants two endpoints, got %v", input.path)
			}
			in.Path = &instance.Endpoints{S: input.path[0], T: input.path[1]}
			if err = in.Validate(); err != nil {
				return err
			}
		}

		variant := "cycle"
		if in.Path != nil {
			variant = "path"
		}
		solverName, solver := "approx", btsp.Solver(btsp.NewApproximation(
			btsp.WithLogger(logger),
			btsp.WithReport(input.report),
			btsp.WithValidation(input.validate),
		))
		if input.exact {
			solverName, solver = "exact", exact.Solver{}
		}
		entry := logger.WithFields(log.Fields{"instance": in.Name, "variant": variant, "solver": solverName})

		out := output{Name: in.Name, Variant: variant, Solver: solverName}
		var res btsp.Result
		if res, out.Cached, err = solveCached(cmd, input, in, solver, solverName, variant, entry); err != nil {
			return err
		}
		out.Tour = res.Tour
		out.Objective = res.Objective
		out.Bottleneck = [2]int{res.BottleneckEdge.U, res.BottleneckEdge.V}
		out.LowerBound = res.LowerBound
		if r := res.Ratio(); !math.IsInf(r, 0) {
			out.Ratio = &r
		}

		return render(cmd, input.format, out)
	}
}

// solveCached looks the solve up in the cache, if one is configured, and
// runs solver on a miss.
func solveCached(cmd *cobra.Command, input *Input, in *instance.Instance, solver btsp.Solver,
	solverName, variant string, entry log.FieldLogger) (btsp.Result, bool, error) {
	var (
		cache *store.Store
		key   = store.Key(in.Fingerprint().String(), variant, solverName)
		err   error
	)
	if input.cachePath != "" {
		if cache, err = store.Open(input.cachePath, entry); err != nil {
			return btsp.Result{}, false, err
		}
		defer cache.Close()

		rec, err := cache.Get(key)
		if err == nil {
			entry.Debug("cache hit")
			return rec.Result(), true, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return btsp.Result{}, false, err
		}
	}

	if err = cmd.Context().Err(); err != nil {
		return btsp.Result{}, false, err
	}
	e := in.Euclidean()
	var res btsp.Result
	if in.Path != nil {
		res, err = solver.SolvePath(e, in.Path.S, in.Path.T)
	} else {
		res, err = solver.SolveCycle(e)
	}
	if err != nil {
		return btsp.Result{}, false, err
	}

	if cache != nil {
		if err = cache.Put(key, store.NewRecord(solverName, res)); err != nil {
			return btsp.Result{}, false, err
		}
	}
	return res, false, nil
}

// mergeConfig copies config values into input for flags left at their
// defaults.
func mergeConfig(cmd *cobra.Command, input *Input, cfg *Config) {
	flags := cmd.Flags()
	if cfg.LogFormat != "" && !flags.Changed("log-format") {
		input.logFormat = cfg.LogFormat
	}
	if cfg.Cache != "" && !flags.Changed("cache") {
		input.cachePath = cfg.Cache
	}
	if cfg.Format != "" && !flags.Changed("format") {
		input.format = cfg.Format
	}
	if cfg.Validate != nil && !flags.Changed("validate") {
		input.validate = *cfg.Validate
	}
	if cfg.Report != nil && !flags.Changed("report") {
		input.report = *cfg.Report
	}
}

func render(cmd *cobra.Command, format string, out output) error {
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "text":
		fmt.Fprintf(w, "%s (%s, %s)\n", out.Name, out.Variant, out.Solver)
		fmt.Fprintf(w, "tour:        %v\n", out.Tour)
		fmt.Fprintf(w, "bottleneck:  %v weighs %g\n", out.Bottleneck, out.Objective)
		fmt.Fprintf(w, "lower bound: %g\n", out.LowerBound)
		if out.Ratio != nil {
			fmt.Fprintf(w, "guarantee:   %.4f\n", *out.Ratio)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
