package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voxpense/voxpense/internal/cli"
	"github.com/voxpense/voxpense/internal/common"
	"github.com/voxpense/voxpense/internal/engine"
	"github.com/voxpense/voxpense/internal/model"
)

func recordCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "record [transcript]",
		Short: "Parse a transcript and store the expense",
		Long: `Parse a voice transcript and persist the resulting expense record.

The raw transcript is stored verbatim alongside the structured fields for
audit and debugging.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			transcript := strings.Join(args, " ")

			p := newParser()
			fallback, err := defaultCurrency(p)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			recorder, err := engine.NewRecorder(p, store, fallback)
			if err != nil {
				return err
			}

			expense, err := recorder.Record(ctx, transcript, source)
			if err != nil {
				var userErr *common.UserError
				if errors.As(err, &userErr) {
					fmt.Println(cli.FormatWarning(userErr.UserMessage))
					return nil
				}
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s for %s (id %s)",
				expense.Amount.String(), expense.Currency, expense.Category, expense.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", model.SourceCLI, "capture source stamped on the expense")

	return cmd
}
