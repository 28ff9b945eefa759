package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	var (
		dir     string
		pinPath string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a checkout against its pinfile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newService().Verify(cmd.Context(), dir, pinPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "checkout directory")
	cmd.Flags().StringVar(&pinPath, "pin", "", "pinfile path")
	_ = cmd.MarkFlagRequired("pin")

	return cmd
}
