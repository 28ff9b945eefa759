package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sourcepin/sourcepin/snapshot/gitcli"
	"github.com/sourcepin/sourcepin/snapshot/hashing"
	"github.com/sourcepin/sourcepin/snapshot/values"
)

func newHashCmd() *cobra.Command {
	var (
		dir       string
		algorithm string
		excludes  []string
	)

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute the reproducibility tree hash of a checkout",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := values.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			runner := gitcli.NewExecRunner()
			hasher := hashing.NewTreeHasher(gitcli.NewTreeReader(runner), hashing.WithExcludes(excludes...))
			treeHash, err := hasher.TreeHash(cmd.Context(), dir, dir, alg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), treeHash)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "checkout directory")
	cmd.Flags().StringVar(&algorithm, "algorithm", "sha256", "digest algorithm (sha256 or sha512)")
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil, "glob pattern excluded from the digest (repeatable)")

	return cmd
}
