package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ishan.sh/internal/build"
	"ishan.sh/internal/content"
	"ishan.sh/internal/handlers"
)

var flagOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := content.Load(cfg.Content.ProjectsFile)
		if err != nil {
			return err
		}
		res, err := build.Site(cmd.Context(), build.Options{
			OutDir:    flagOut,
			StaticDir: cfg.Server.StaticDir,
			Site:      handlers.SiteFromConfig(cfg.Site),
		}, projects.Projects, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(res.Files), flagOut)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&flagOut, "out", "o", "public", "output directory")
}
