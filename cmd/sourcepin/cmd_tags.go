package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sourcepin/sourcepin/snapshot/gitcli"
	"github.com/sourcepin/sourcepin/snapshot/resolvers"
)

func newTagsCmd() *cobra.Command {
	var (
		remote    string
		ascending bool
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List a remote's version tags in precedence order",
		RunE: func(cmd *cobra.Command, args []string) error {
			refs := gitcli.NewRefReader(gitcli.NewExecRunner())
			tags, err := refs.ListTags(cmd.Context(), remote)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(tags))
			for name := range tags {
				names = append(names, name)
			}

			selector := resolvers.NewTagSelector(resolvers.NewSemverComparator())
			for _, name := range selector.SortTags(names, !ascending) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tags[name].Target(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "remote repository URL")
	cmd.Flags().BoolVar(&ascending, "ascending", false, "sort lowest version first")
	_ = cmd.MarkFlagRequired("remote")

	return cmd
}
