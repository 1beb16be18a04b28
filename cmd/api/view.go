package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/api/dto"
)

var viewCmd = &cobra.Command{
	Use:          "view",
	Short:        "Print the ledger with running balances",
	RunE:         viewCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(viewCmd)
}

func viewCmdF(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// keep stdout for the table
	cfg.Logger.Output = "stderr"

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.ledger.EnsureSchema(cmd.Context()); err != nil {
		return err
	}

	view, err := a.ledger.GetLedgerView(cmd.Context())
	if err != nil {
		return err
	}

	return renderLedger(cmd.OutOrStdout(), view)
}

// renderLedger writes the view as a tab-aligned table
func renderLedger(out io.Writer, view *entity.LedgerView) error {
	if view.Empty() {
		_, err := fmt.Fprintln(out, dto.EmptyLedgerMessage)
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "id\t"+strings.Join(entity.LedgerColumns, "\t")+"\t")

	for _, row := range view.All() {
		date := entity.FormatDate(row.Date)
		if row.DateMalformed {
			date = "?"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			row.ID,
			row.Cheque,
			date,
			entity.FormatAmount(row.Amount),
			entity.FormatAmount(row.AmountPaid),
			entity.FormatAmount(row.Interest),
			entity.FormatAmount(row.Gerson),
			entity.FormatAmount(row.Maneca),
			entity.FormatAmount(row.TotalGerson),
			entity.FormatAmount(row.TotalManeca),
		)
	}

	return w.Flush()
}
