// ABOUTME: Root cobra command and shared command context
// ABOUTME: Loads .env files and configuration once before any subcommand runs

package main

import (
	"fmt"
	"sync"

	"biblicalman-api/pkg/config"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

type commandContext struct {
	envFiles []string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		if err := config.LoadDotEnv(c.envFiles...); err != nil {
			c.configErr = err
			return
		}
		cfg, err := config.LoadFromEnv()
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}
	serve := newServeCommand(ctx)

	rootCmd := &cobra.Command{
		Use:           "biblicalman-api",
		Short:         "Content API for The Biblical Man",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: serve.RunE,
	}

	rootCmd.PersistentFlags().StringSliceVar(&ctx.envFiles, "env-file", []string{".env"}, ".env files to load before reading the environment")

	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(newArticlesCommand(ctx))
	rootCmd.AddCommand(newInsightCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "biblicalman-api %s\n", version)
			return nil
		},
	}
}
