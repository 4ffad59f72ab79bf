package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/service"
)

func newListCmd() *cobra.Command {
	var (
		sortKey string
		search  string
		shares  string
		premium bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the sorted fund list",
		Example: `  etfview list --sort yield
  etfview list --premium --search schwab --shares 250`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := request.ParseViewParams(sortKey, search, shares)
			if err != nil {
				return err
			}

			snapshot, err := loadSnapshot()
			if err != nil {
				return err
			}

			etfs := service.BuildView(snapshot.ETFs, params.Sort, params.Search, premium, limit)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Updated: %s\n", snapshot.AnalysisDisplay)
			if params.Search != "" && !model.CanAccess(model.CapabilitySearch, premium) {
				fmt.Fprintln(out, "Search requires premium; showing the unfiltered list.")
			}
			writeList(out, etfs, params.Shares)
			if !premium && snapshot.Len() > len(etfs) {
				fmt.Fprintf(out, "Showing %d of %d ETFs. Upgrade to premium to view all.\n", len(etfs), snapshot.Len())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sortKey, "sort", string(model.SortByScore), "sort key: score, yield or performance")
	cmd.Flags().StringVar(&search, "search", "", "ticker or name substring (premium only)")
	cmd.Flags().StringVar(&shares, "shares", "100", "shares held, used for the payment column")
	cmd.Flags().BoolVar(&premium, "premium", false, "show the premium view")
	cmd.Flags().IntVar(&limit, "limit", model.DefaultFreeLimit, "funds shown without premium")
	return cmd
}

func newCalendarCmd() *cobra.Command {
	var premium bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print funds by most recent ex-dividend date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !model.CanAccess(model.CapabilityCalendar, premium) {
				return fmt.Errorf("the dividend calendar requires premium (--premium)")
			}

			snapshot, err := loadSnapshot()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			etfs := service.CalendarView(snapshot.ETFs)
			if len(etfs) == 0 {
				fmt.Fprintln(out, "No ex-dates available")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "EX-DATE\tTICKER\tYIELD\tLAST DIV\tFREQUENCY")
			for _, e := range etfs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t$%.4f\t%s\n",
					e.ExDateDisplay(), e.Ticker, e.YieldDisplay(), e.LastDividend, e.PaymentFrequency)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&premium, "premium", false, "show the premium view")
	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Load the document and report the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadSnapshot()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d ETFs, analysis date %s\n",
				model.LoadStatusLoaded, snapshot.Len(), snapshot.AnalysisDisplay)
			return nil
		},
	}
}

func writeList(w io.Writer, etfs []model.ETF, shares int64) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TICKER\tYIELD\tPRICE\tLAST DIV\t1M PERF\tPAYMENT\tSCORE")
	for _, e := range etfs {
		fmt.Fprintf(tw, "%s\t%s\t$%.2f\t$%.4f\t%s\t$%.2f\t%.0f\n",
			e.Ticker, e.YieldDisplay(), e.Price, e.LastDividend,
			e.PerformanceDisplay(), e.DividendPayment(shares), e.Score)
	}
	_ = tw.Flush()
}
