package main

import (
	"github.com/spf13/cobra"

	appteams "github.com/preston-bernstein/afl-teams-service/internal/app/teams"
	"github.com/preston-bernstein/afl-teams-service/internal/presenter"
)

func newListCmd(build func() app) *cobra.Command {
	var sortValue, filterValue string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Load teams once and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := appteams.ParseSelection(sortValue, filterValue)
			if err != nil {
				return err
			}
			a := build()
			items, err := a.service.View(cmd.Context(), sel)
			if err != nil {
				_ = presenter.RenderError(cmd.ErrOrStderr(), err)
				return err
			}
			return presenter.RenderText(cmd.OutOrStdout(), presenter.Cards(a.cfg.Squiggle.ImageBaseURL, items))
		},
	}
	cmd.Flags().StringVar(&sortValue, "sort", "a-z", "sort order (a-z|z-a)")
	cmd.Flags().StringVar(&filterValue, "filter", "-", "debut filter (-|pre-1980|post-1980)")
	return cmd
}
