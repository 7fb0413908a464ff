package main

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"consulta/internal/lookup"
	"consulta/internal/registry/pipeline"
)

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}

// renderBulkTable summarizes a bulk run, one row per input in input order.
func renderBulkTable(result lookup.BulkResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Query", "Type", "Status", "Detail"})

	for i, out := range result.Outcomes {
		tw.AppendRow(table.Row{i + 1, out.Query, string(out.Type), string(out.Status), outcomeDetail(out)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, WidthMax: 60},
	})
	return tw.Render()
}

func outcomeDetail(out lookup.Outcome) string {
	switch {
	case out.Err != nil:
		return out.Error
	case out.Status == pipeline.StatusResolved && out.Record != nil:
		data, err := json.Marshal(out.Record)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return ""
	}
}
