package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/voxpense/voxpense/internal/cli"
	"github.com/voxpense/voxpense/internal/common"
	"github.com/voxpense/voxpense/internal/engine"
	"github.com/voxpense/voxpense/internal/model"
)

func importCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Batch-parse a file of transcripts",
		Long: `Parse a file containing one transcript per line, storing every expense
that parses cleanly. Blank lines are skipped; unparseable lines are reported
at the end without failing the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			transcripts, err := readTranscripts(args[0])
			if err != nil {
				return err
			}
			if len(transcripts) == 0 {
				fmt.Println(cli.FormatInfo("No transcripts found in " + args[0]))
				return nil
			}

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

			bar := progressbar.NewOptions(len(transcripts),
				progressbar.OptionSetDescription("Parsing transcripts"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			var stored int
			var failed []string
			for _, transcript := range transcripts {
				batchStored, batchFailed, err := recorder.RecordBatch(ctx, []string{transcript}, source)
				if err != nil {
					common.LogError(err, "import aborted", common.Fields{"transcript": transcript})
					return err
				}
				stored += len(batchStored)
				failed = append(failed, batchFailed...)
				_ = bar.Add(1)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Stored %d of %d transcripts", stored, len(transcripts))))
			for _, transcript := range failed {
				fmt.Println(cli.FormatWarning("could not understand: " + transcript))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", model.SourceVoiceAssistant, "capture source stamped on imported expenses")

	return cmd
}

func readTranscripts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var transcripts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		transcripts = append(transcripts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transcript file: %w", err)
	}
	return transcripts, nil
}
