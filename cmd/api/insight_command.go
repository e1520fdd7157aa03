package main

import (
	"errors"
	"fmt"

	"biblicalman-api/core/domain"
	"github.com/spf13/cobra"
)

func newInsightCommand(cmdCtx *commandContext) *cobra.Command {
	var articleID string

	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Generate the AI insight for one article",
		RunE: func(cmd *cobra.Command, args []string) error {
			if articleID == "" {
				return errors.New("--id is required")
			}
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.close()

			a.store.Refresh(cmd.Context())
			article, err := a.store.Get(articleID)
			if err != nil {
				return err
			}

			insight, err := a.insights.Generate(cmd.Context(), article)
			if err != nil {
				a.logger.Warn("Insight unavailable", map[string]interface{}{
					"article_id": article.ID,
					"error":      err.Error(),
				})
				fmt.Fprintln(cmd.OutOrStdout(), domain.InsightUnavailableMessage)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderInsight(article, insight))
			return nil
		},
	}

	cmd.Flags().StringVar(&articleID, "id", "", "Article id (its source URL)")
	return cmd
}
