package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/voxpense/voxpense/internal/cli"
)

// The currency and category tables are ordered and that order is part of the
// parsing contract, so both commands print them in table order for auditing.

func currenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List the supported currency table",
		RunE: func(_ *cobra.Command, _ []string) error {
			p := newParser()

			fmt.Println(cli.FormatTitle("Supported currencies"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Code"),
				cli.TableHeaderStyle.Render("Symbol"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Keywords"))

			for _, def := range p.Registry().Definitions() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					def.Code,
					def.Symbol,
					def.DisplayName,
					cli.SubtleStyle.Render(joinKeywords(def.Keywords)))
			}
			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the ordered category rule table",
		RunE: func(_ *cobra.Command, _ []string) error {
			p := newParser()

			fmt.Println(cli.FormatTitle("Category rules"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Order"),
				cli.TableHeaderStyle.Render("Keyword"),
				cli.TableHeaderStyle.Render("Category"))

			for i, rule := range p.Categories().Rules() {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, rule.Keyword, rule.Category)
			}
			return nil
		},
	}
}

func joinKeywords(keywords []string) string {
	out := ""
	for i, kw := range keywords {
		if i > 0 {
			out += ", "
		}
		out += kw
	}
	return out
}
