package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voxpense/voxpense/internal/cli"
)

func parseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse [transcript]",
		Short: "Parse a transcript without storing it",
		Long: `Parse a voice transcript into structured expense data and print the result.

Example:
  voxpense parse "I just spent two thousand dirhams on groceries at Carrefour"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			transcript := strings.Join(args, " ")

			p := newParser()
			fallback, err := defaultCurrency(p)
			if err != nil {
				return err
			}

			data := p.Parse(transcript, fallback)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(data)
			}

			if !data.HasAmount() {
				fmt.Println(cli.FormatWarning("Could not understand the amount, please try again."))
				return nil
			}

			fmt.Println(cli.FormatConfirmation(data, p.Registry()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the parse result as JSON")

	return cmd
}
