package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/HimTar/golang-transactions/internal/ledger"
	"github.com/HimTar/golang-transactions/internal/seed"
	"github.com/HimTar/golang-transactions/internal/txid"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <seed-file>",
		Short: "Validate a seed file and print each transaction's chain sum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args[0])
		},
	}
}

func runCheck(out io.Writer, path string) error {
	logger := zerolog.Nop()
	l := ledger.New(ledger.NewStore(), &logger)

	if _, err := seed.LoadFile(path, l); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tAMOUNT\tPARENT\tSUM")
	for _, e := range l.All() {
		sum, err := l.Sum(e.ID)
		if err != nil {
			return fmt.Errorf("summing %d: %w", e.ID, err)
		}
		parent := "-"
		if e.Transaction.HasParent() {
			parent = txid.Encode(*e.Transaction.ParentID)
		}
		fmt.Fprintf(tw, "%s\t%s\t%g\t%s\t%g\n", txid.Encode(e.ID), e.Transaction.Type, e.Transaction.Amount, parent, sum)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(out, "%d transactions OK\n", l.Len())
	return nil
}
