package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newArticlesCommand(cmdCtx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Refresh once and print the article list",
		Long:  "Runs one feed refresh and prints the resulting list. The fallback set is printed when the refresh fails.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.close()

			outcome := a.store.Refresh(cmd.Context())
			articles := a.store.Articles()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(articles)
			}

			if !a.store.Refreshed() {
				fmt.Fprintf(cmd.OutOrStdout(), "Feed unavailable (%s), showing fallback articles\n", outcome.Kind)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderArticles(articles))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print articles as JSON")
	return cmd
}
