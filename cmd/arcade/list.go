package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade with its ID and title.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var listCellStyle = lipgloss.NewStyle().Padding(0, 1)

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games registered.")
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "TITLE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			return listCellStyle
		})
	for _, g := range games {
		t.Row(g.ID, g.Title)
	}

	fmt.Println(t)
	fmt.Println("Run 'arcade play <id>' to play a game, or 'arcade menu' to pick one.")
}
