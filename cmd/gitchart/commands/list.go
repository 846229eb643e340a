package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/flashcode/gitchart/internal/chart"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available chart types",
		Run: func(_ *cobra.Command, _ []string) {
			printChartTable()
		},
	}
}

func printChartTable() {
	registry := chart.NewRegistry()

	color.New(color.Bold).Fprintln(os.Stdout, "Available charts:")

	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Name", "Chart", "Description"})

	for _, name := range registry.Names() {
		typ, _ := registry.Lookup(name)
		info := registry.Info(typ)

		tbl.AppendRow(table.Row{info.Name, info.Kind.String(), info.Title})
	}

	tbl.Render()
}
