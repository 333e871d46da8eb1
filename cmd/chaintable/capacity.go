package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/theflywheel/chaintable"
)

func newCapacityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capacity <slots>...",
		Short: "Print the table size chosen for each desired slot count",
		Args:  cobra.MinimumNArgs(1),
		RunE:  execCapacity,
	}
}

func execCapacity(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return errors.Wrapf(chaintable.ErrInvalidArgument, "not a number: %q", arg)
		}
		size, err := chaintable.TableSize(n)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d -> %d\n", n, size)
	}
	return nil
}
