package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	cmdTables := &cobra.Command{
		Use:     "tables",
		Aliases: []string{"list"},
		Short:   "Lists the tables of every configured spreadsheet.",
		Run:     listTables,
	}
	rootCmd.AddCommand(cmdTables)
}

func listTables(_ *cobra.Command, _ []string) {
	ctx := context.Background()
	v := newVerifier(ctx)
	tabWr := new(tabwriter.Writer)
	tabWr.Init(os.Stdout, 0, 8, 1, '\t', 0)
	_, _ = fmt.Fprintf(tabWr, "Spreadsheet\tTable\tRows\n")
	for _, info := range v.ListTables(ctx) {
		rows := "unknown"
		if info.RowCount > 0 {
			rows = humanize.Comma(int64(info.RowCount))
		}
		_, _ = fmt.Fprintf(tabWr, "%s\t%s\t%s\n", info.ID.Resource, info.ID.Name, rows)
	}
	_ = tabWr.Flush()
}
