package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/voxpense/voxpense/internal/cli"
	"github.com/voxpense/voxpense/internal/service"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Inspect stored expenses",
	}

	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(totalsCmd())

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var (
		categoryFilter string
		currencyFilter string
		limit          int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := store.GetExpenses(ctx, service.ExpenseFilter{
				Category: categoryFilter,
				Currency: strings.ToUpper(currencyFilter),
				Limit:    limit,
			})
			if err != nil {
				return fmt.Errorf("failed to get expenses: %w", err)
			}

			if len(expenses) == 0 {
				fmt.Println(cli.FormatInfo("No expenses found. Use 'voxpense record' to add one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Date"),
				cli.TableHeaderStyle.Render("Amount"),
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Merchant"),
				cli.TableHeaderStyle.Render("Transcript"))

			for _, expense := range expenses {
				merchant := expense.Merchant
				if merchant == "" {
					merchant = cli.SubtleStyle.Render("-")
				}
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
					expense.TransactionDate.Format("2006-01-02"),
					expense.Amount.String(),
					expense.Currency,
					expense.Category,
					merchant,
					cli.SubtleStyle.Render(expense.RawTranscript))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFilter, "category", "", "only show this category")
	cmd.Flags().StringVar(&currencyFilter, "currency", "", "only show this currency")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows to show")

	return cmd
}

func totalsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Show per-category spending totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			end := time.Now()
			start := end.AddDate(0, 0, -days)

			totals, err := store.GetCategoryTotals(ctx, start, end)
			if err != nil {
				return fmt.Errorf("failed to get totals: %w", err)
			}

			if len(totals) == 0 {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("No expenses in the last %d days.", days)))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s Spending over the last %d days", cli.CoinIcon, days)))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Total"),
				cli.TableHeaderStyle.Render("Count"))

			for _, total := range totals {
				fmt.Fprintf(w, "%s\t%s %s\t%d\n",
					total.Category,
					total.Total.String(),
					total.Currency,
					total.Count)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "period to total, in days")

	return cmd
}
