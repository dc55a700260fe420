package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpos/pos"
)

// errZeroDirection is reported instead of letting Part divide by zero.
var errZeroDirection = errors.New("cli: direction must be non-zero")

type operation struct {
	name  string
	use   string
	short string
	args  cobra.PositionalArgs
}

var operations = []operation{
	{"dot", "dot A B", "Dot product of A and B", cobra.ExactArgs(2)},
	{"mag2", "mag2 A", "Squared magnitude of A", cobra.ExactArgs(1)},
	{"dist2", "dist2 A B", "Squared distance between A and B", cobra.ExactArgs(2)},
	{"part", "part A DIR", "Component of A parallel to DIR", cobra.ExactArgs(2)},
	{"complement", "complement A DIR", "Component of A perpendicular to DIR", cobra.ExactArgs(2)},
	{"components", "components A DIR", "Part and complement of A relative to DIR", cobra.ExactArgs(2)},
	{"sum", "sum [P...]", "Sum of all positions", cobra.ArbitraryArgs},
}

func opCmd(opts *globalOptions, op operation) *cobra.Command {
	return &cobra.Command{
		Use:   op.use,
		Short: op.short,
		Args:  op.args,
		RunE: func(c *cobra.Command, args []string) error {
			var (
				out string
				err error
			)
			if opts.float {
				out, err = evaluate[float64](op.name, args)
			} else {
				out, err = evaluate[int](op.name, args)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), out)
			return err
		},
	}
}

// evaluate parses args as Pos[T] and applies the named operation.
func evaluate[T pos.Scalar](name string, args []string) (string, error) {
	ps := make([]pos.Pos[T], len(args))
	for i, a := range args {
		p, err := pos.Parse[T](a)
		if err != nil {
			return "", fmt.Errorf("argument %d %q: %w", i+1, a, err)
		}
		ps[i] = p
	}

	switch name {
	case "dot":
		return fmt.Sprint(pos.Dot(ps[0], ps[1])), nil
	case "mag2":
		return fmt.Sprint(ps[0].Mag2()), nil
	case "dist2":
		return fmt.Sprint(ps[0].Dist2From(ps[1])), nil
	case "sum":
		return pos.Sum(ps...).String(), nil
	}

	if ps[1].IsZero() {
		return "", errZeroDirection
	}
	switch name {
	case "part":
		return ps[0].Part(ps[1]).String(), nil
	case "complement":
		return ps[0].Complement(ps[1]).String(), nil
	case "components":
		part, rest := ps[0].Components(ps[1])
		return fmt.Sprintf("%v %v", part, rest), nil
	}
	return "", fmt.Errorf("unknown operation %q", name)
}
