package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sp0x/certd/verifier"
)

func init() {
	cmdFetch := &cobra.Command{
		Use:   "fetch",
		Short: "Fetches every table and prints how many records each one has.",
		Run:   fetchTables,
	}
	rootCmd.AddCommand(cmdFetch)
}

func fetchTables(_ *cobra.Command, _ []string) {
	ctx := context.Background()
	v := newVerifier(ctx)
	started := time.Now()
	set, err := v.FetchAll(ctx)
	if err != nil {
		fmt.Println(verifier.Message(err, v.Locale()))
		fmt.Printf("Fetch failed: %v\n", err)
		os.Exit(1)
	}
	tabWr := new(tabwriter.Writer)
	tabWr.Init(os.Stdout, 0, 8, 1, '\t', 0)
	for _, t := range set.Tables() {
		_, _ = fmt.Fprintf(tabWr, "%s\t%s\n", t.ID, humanize.Comma(int64(t.Len())))
	}
	_ = tabWr.Flush()
	fmt.Printf("Fetched %s records from %d tables in %s\n",
		humanize.Comma(int64(set.Records())), set.Len(), time.Since(started).Round(time.Millisecond))
}
