package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/btsp/instance"
)

// createOutput opens the -o target.
var createOutput = func(name string) (io.WriteCloser, error) { return os.Create(name) }

type generateInput struct {
	n, rows, cols int
	seed          int64
	scale         float64
	name          string
	output        string
}

func createGenerateCommand() *cobra.Command {
	gi := &generateInput{}
	cmd := &cobra.Command{
		Use:       "generate grid|circle|uniform",
		Short:     "Write a generated instance as YAML",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"grid", "circle", "uniform"},
		RunE:      newGenerateCommand(gi),
	}
	cmd.Flags().IntVarP(&gi.n, "points", "n", 10, "number of points (circle, uniform)")
	cmd.Flags().IntVar(&gi.rows, "rows", 3, "grid rows")
	cmd.Flags().IntVar(&gi.cols, "cols", 3, "grid columns")
	cmd.Flags().Int64Var(&gi.seed, "seed", 1, "random seed (uniform)")
	cmd.Flags().Float64Var(&gi.scale, "scale", 1, "grid spacing, circle radius or square side")
	cmd.Flags().StringVar(&gi.name, "name", "", "instance name")
	cmd.Flags().StringVarP(&gi.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newGenerateCommand(gi *generateInput) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		opts := []instance.GenOption{instance.WithSeed(gi.seed), instance.WithScale(gi.scale)}
		if gi.name != "" {
			opts = append(opts, instance.WithName(gi.name))
		}

		var in *instance.Instance
		switch args[0] {
		case "grid":
			in, err = instance.Grid(gi.rows, gi.cols, opts...)
		case "circle":
			in, err = instance.Circle(gi.n, opts...)
		case "uniform":
			in, err = instance.Uniform(gi.n, opts...)
		default:
			err = fmt.Errorf("unknown generator %q", args[0])
		}
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if gi.output != "" {
			f, oerr := createOutput(gi.output)
			if oerr != nil {
				return oerr
			}
			defer func() {
				if cerr := f.Close(); err == nil && cerr != nil {
					err = fmt.Errorf("close %s: %w", gi.output, cerr)
				}
			}()
			w = f
		}
		return writeInstance(w, in)
	}
}

// writeInstance encodes in as YAML with two-space indentation.
func writeInstance(w io.Writer, in *instance.Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return err
	}
	return enc.Close()
}
