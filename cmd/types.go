package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scheerer/lightsd/internal/led"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported light types, highest priority first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := led.NewRegistry(led.DefaultPriorityOrder())
			if err != nil {
				return err
			}
			for _, t := range registry.Types() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}
