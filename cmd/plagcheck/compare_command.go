package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"plagcheck/internal/compare"
	"plagcheck/internal/config"
	"plagcheck/internal/fileutil"
	"plagcheck/internal/history"
	"plagcheck/internal/logging"
)

type compareOptions struct {
	details bool
	record  bool
}

type compareReport struct {
	RunID   string          `json:"run_id"`
	Sources compare.Sources `json:"sources"`
	Result  compare.Result  `json:"result"`
}

func runCompare(cmd *cobra.Command, ctx *commandContext, args []string, opts compareOptions) error {
	cfg, logger, err := ctx.environment()
	if err != nil {
		return err
	}

	tupleLength := cfg.Compare.TupleLength
	if len(args) == 4 {
		if tupleLength, err = compare.ParseTupleLength(args[3]); err != nil {
			return err
		}
	}
	comparator, err := compare.New(compare.Options{TupleLength: tupleLength}, logger)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	runCtx := logging.WithStage(logging.WithRunID(cmd.Context(), runID), "compare")
	src := compare.Sources{Synonyms: args[0], Original: args[1], Suspect: args[2]}

	started := time.Now()
	result, err := comparator.CompareFiles(runCtx, fileutil.TextReader{}, src)
	if err != nil {
		return err
	}
	record := opts.record || cfg.History.Enabled
	logging.WithContext(runCtx, logger).Info("comparison finished",
		logging.Duration("elapsed", time.Since(started)),
		logging.Int("tuple_length", tupleLength),
		logging.Bool("record", record),
	)

	if record {
		recordHistory(runCtx, cfg, logger, []history.Entry{historyEntry(runID, src, result)})
	}

	out := cmd.OutOrStdout()
	if ctx.jsonOutput() {
		return writeJSON(cmd, compareReport{RunID: runID, Sources: src, Result: result})
	}
	if opts.details {
		fmt.Fprintln(out, renderDetails(out, result))
	}
	fmt.Fprintln(out, result.String())
	return nil
}

func renderDetails(out io.Writer, result compare.Result) string {
	rows := make([][]string, 0, len(result.Tuples))
	for i, match := range result.Tuples {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			match.Tuple.String(),
			strconv.Itoa(match.Matches),
		})
	}
	return renderTable(out,
		[]string{"#", "Suspect Tuple", "Matches"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight},
		fmt.Sprintf("%d matches / %d suspect tuples", result.Matches, result.SuspectTuples),
	)
}

func historyEntry(runID string, src compare.Sources, result compare.Result) history.Entry {
	return history.Entry{
		RunID:         runID,
		SynonymsPath:  absPath(src.Synonyms),
		OriginalPath:  absPath(src.Original),
		SuspectPath:   absPath(src.Suspect),
		TupleLength:   result.TupleLength,
		Matches:       result.Matches,
		SuspectTuples: result.SuspectTuples,
		Percent:       result.Percent,
	}
}

// recordHistory stores entries in the history database. Failures are logged
// and never change the outcome of the comparison.
func recordHistory(ctx context.Context, cfg *config.Config, logger *slog.Logger, entries []history.Entry) {
	log := logging.WithContext(ctx, logging.NewComponentLogger(logger, "history"))
	store, err := history.Open(ctx, cfg.History.Path)
	if err != nil {
		log.Warn("history unavailable", logging.String("path", cfg.History.Path), logging.Error(err))
		return
	}
	defer store.Close()

	for _, entry := range entries {
		saved, err := store.Record(ctx, entry)
		if err != nil {
			log.Warn("history record failed", logging.String("original", entry.OriginalPath), logging.Error(err))
			continue
		}
		log.Debug("history recorded", logging.Int64("id", saved.ID))
	}
}
