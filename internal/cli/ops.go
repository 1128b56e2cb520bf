// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/matrixio"
	"github.com/spf13/cobra"
)

// readOperands decodes every path argument in order.
func readOperands(paths []string) ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, 0, len(paths))
	for _, p := range paths {
		m, err := matrixio.ReadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

func (a *app) newAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add A.yaml B.yaml",
		Short: "Element-wise sum of two matrices of the same shape",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := readOperands(args)
			if err != nil {
				return err
			}
			res, err := matrix.Add(ms[0], ms[1])
			if err != nil {
				return err
			}
			return a.writeResult(cmd, res)
		},
	}
	a.addOutputFlag(cmd)

	return cmd
}

func (a *app) newMulCommand() *cobra.Command {
	var parallel bool
	cmd := &cobra.Command{
		Use:   "mul A.yaml B.yaml",
		Short: "Matrix product A × B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := readOperands(args)
			if err != nil {
				return err
			}
			var res *matrix.Dense
			if parallel {
				res, err = matrix.MulParallel(ms[0], ms[1], a.matrixOptions()...)
			} else {
				res, err = matrix.Mul(ms[0], ms[1])
			}
			if err != nil {
				return err
			}
			return a.writeResult(cmd, res)
		},
	}
	cmd.Flags().BoolVarP(&parallel, "parallel", "p", false, "multiply on a bounded worker pool")
	a.addOutputFlag(cmd)

	return cmd
}

func (a *app) newTransposeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transpose A.yaml",
		Short: "Transpose of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := readOperands(args)
			if err != nil {
				return err
			}
			return a.writeResult(cmd, ms[0].T())
		},
	}
	a.addOutputFlag(cmd)

	return cmd
}

func (a *app) newScaleCommand() *cobra.Command {
	var by int64
	cmd := &cobra.Command{
		Use:   "scale A.yaml --by k",
		Short: "Multiply every element by an integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := readOperands(args)
			if err != nil {
				return err
			}
			return a.writeResult(cmd, ms[0].Scale(by))
		},
	}
	cmd.Flags().Int64Var(&by, "by", 1, "scalar multiplier")
	_ = cmd.MarkFlagRequired("by")
	a.addOutputFlag(cmd)

	return cmd
}
