package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"ishan.sh/internal/content"
	"ishan.sh/internal/models"
)

var flagJSON bool

var (
	accent     = lipgloss.Color("#6B46C1")
	muted      = lipgloss.Color("#718096")
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	descStyle  = lipgloss.NewStyle().Width(60)
	linkStyle  = lipgloss.NewStyle().Foreground(muted)
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the project cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := content.Load(cfg.Content.ProjectsFile)
		if err != nil {
			return err
		}
		if flagJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(projects.Projects)
		}
		return printCards(cmd.OutOrStdout(), projects.Projects)
	},
}

func init() {
	listCmd.Flags().BoolVar(&flagJSON, "json", false, "output as JSON")
}

func printCards(w io.Writer, projects []models.Project) error {
	for _, p := range projects {
		if _, err := fmt.Fprintln(w, renderCard(p)); err != nil {
			return err
		}
	}
	return nil
}

func renderCard(p models.Project) string {
	var lines []string
	lines = append(lines, titleStyle.Render(p.Title))
	if p.Description != "" {
		lines = append(lines, descStyle.Render(p.Description))
	}
	for _, l := range p.Links {
		marker := " "
		if l.External {
			marker = "↗"
		}
		lines = append(lines, linkStyle.Render(fmt.Sprintf("%s %s: %s", marker, l.Label, l.URL)))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}
