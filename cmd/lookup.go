package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sp0x/certd/search"
	"github.com/sp0x/certd/verifier"
)

func init() {
	cmdLookup := &cobra.Command{
		Use:     "lookup <admit number>",
		Aliases: []string{"search"},
		Short:   "Looks a certificate up by its admit number.",
		Args:    cobra.ExactArgs(1),
		Run:     lookup,
	}
	rootCmd.AddCommand(cmdLookup)
}

func lookup(_ *cobra.Command, args []string) {
	v := newVerifier(context.Background())
	record, err := v.Search(context.Background(), args[0])
	if err != nil {
		fmt.Println(verifier.Message(err, v.Locale()))
		os.Exit(1)
	}
	printRecord(os.Stdout, record)
}

func printRecord(out io.Writer, record *search.Record) {
	tabWr := new(tabwriter.Writer)
	tabWr.Init(out, 0, 8, 1, ' ', 0)
	_, _ = fmt.Fprintf(tabWr, "Admit number:\t%s\n", record.AdmitNumber)
	_, _ = fmt.Fprintf(tabWr, "Student:\t%s\n", record.StudentName)
	_, _ = fmt.Fprintf(tabWr, "Father:\t%s\n", record.FatherName)
	_, _ = fmt.Fprintf(tabWr, "Mother:\t%s\n", record.MotherName)
	_, _ = fmt.Fprintf(tabWr, "Institution:\t%s\n", record.Institution)
	_, _ = fmt.Fprintf(tabWr, "Course:\t%s\n", record.Course)
	_, _ = fmt.Fprintf(tabWr, "Result:\t%s\n", record.Result)
	_, _ = fmt.Fprintf(tabWr, "Found in:\t%s\n", record.SourceTable)
	_ = tabWr.Flush()
}
