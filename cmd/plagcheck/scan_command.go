package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"plagcheck/internal/compare"
	"plagcheck/internal/faults"
	"plagcheck/internal/fileutil"
	"plagcheck/internal/history"
	"plagcheck/internal/logging"
	"plagcheck/internal/synonyms"
)

type scanRow struct {
	Path   string          `json:"path"`
	Result *compare.Result `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
	Kind   string          `json:"error_kind,omitempty"`
}

type scanReport struct {
	RunID       string    `json:"run_id"`
	Suspect     string    `json:"suspect"`
	Directory   string    `json:"directory"`
	TupleLength int       `json:"tuple_length"`
	Rows        []scanRow `json:"rows"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var tupleLength int
	var minPercent int
	var record bool

	cmd := &cobra.Command{
		Use:   "scan <synonyms> <suspect> <directory>",
		Short: "Compare a suspect document against every file in a directory",
		Long: `Compare one suspect document against each matching file in a directory and
rank the files by overlap. Files are filtered by the configured scan
extensions. Use "-" as the synonyms argument to fall back to
compare.synonyms_path from the configuration.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.environment()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("tuple-length") {
				tupleLength = cfg.Compare.TupleLength
			}
			if !cmd.Flags().Changed("min-percent") {
				minPercent = cfg.Scan.MinPercent
			}
			comparator, err := compare.New(compare.Options{TupleLength: tupleLength}, logger)
			if err != nil {
				return err
			}

			synonymsPath := args[0]
			if synonymsPath == "-" {
				if cfg.Compare.SynonymsPath == "" {
					return faults.Configuration("scan", "no synonyms file given and compare.synonyms_path is not set")
				}
				synonymsPath = cfg.Compare.SynonymsPath
			}
			suspectPath, dir := args[1], args[2]

			runID := uuid.NewString()
			runCtx := logging.WithStage(logging.WithRunID(cmd.Context(), runID), "scan")
			log := logging.WithContext(runCtx, logging.NewComponentLogger(logger, "scan"))

			suspectText, err := fileutil.ReadText(suspectPath)
			if err != nil {
				return fmt.Errorf("suspect: %w", err)
			}
			synonymText, err := fileutil.ReadText(synonymsPath)
			if err != nil {
				return fmt.Errorf("synonyms: %w", err)
			}
			table := synonyms.Parse(synonymText)
			suspect := comparator.Prepare(suspectText, table)
			if len(suspect) == 0 {
				return faults.Wrap(faults.ErrEmptyComparison, "scan", "",
					fmt.Sprintf("suspect document is shorter than %d words", tupleLength), nil)
			}

			files, err := fileutil.ListFiles(dir, cfg.Scan.Extensions)
			if err != nil {
				return err
			}

			started := time.Now()
			suspectAbs := absPath(suspectPath)
			rows := make([]scanRow, 0, len(files))
			var entries []history.Entry
			for _, path := range files {
				if err := runCtx.Err(); err != nil {
					return err
				}
				if absPath(path) == suspectAbs {
					continue
				}
				text, err := fileutil.ReadText(path)
				if err != nil {
					log.Warn("skipping unreadable file", logging.String("path", path), logging.Error(err))
					rows = append(rows, scanRow{Path: path, Error: err.Error(), Kind: faults.Kind(err)})
					continue
				}
				result, err := comparator.ScorePrepared(comparator.Prepare(text, table), suspect, table)
				if err != nil {
					return err
				}
				if result.Percent < minPercent {
					continue
				}
				rows = append(rows, scanRow{Path: path, Result: &result})
				entries = append(entries, historyEntry(runID, compare.Sources{
					Synonyms: synonymsPath,
					Original: path,
					Suspect:  suspectPath,
				}, result))
			}
			sortScanRows(rows)
			log.Info("scan finished",
				logging.Int("files", len(files)),
				logging.Int("rows", len(rows)),
				logging.Duration("elapsed", time.Since(started)),
			)

			if (record || cfg.History.Enabled) && len(entries) > 0 {
				recordHistory(runCtx, cfg, logger, entries)
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, scanReport{
					RunID:       runID,
					Suspect:     suspectPath,
					Directory:   dir,
					TupleLength: tupleLength,
					Rows:        rows,
				})
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No matching files")
				return nil
			}
			fmt.Fprintln(out, renderScanTable(cmd, rows, dir))
			return nil
		},
	}

	cmd.Flags().IntVarP(&tupleLength, "tuple-length", "n", 0, "Tuple length (defaults to compare.tuple_length)")
	cmd.Flags().IntVar(&minPercent, "min-percent", 0, "Hide files scoring below this percentage (defaults to scan.min_percent)")
	cmd.Flags().BoolVar(&record, "record", false, "Store each result in the comparison history")
	return cmd
}

// sortScanRows orders scored rows by percentage descending, then by path.
// Rows that failed to read sort last.
func sortScanRows(rows []scanRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if (a.Result == nil) != (b.Result == nil) {
			return a.Result != nil
		}
		if a.Result != nil && a.Result.Percent != b.Result.Percent {
			return a.Result.Percent > b.Result.Percent
		}
		return a.Path < b.Path
	})
}

func renderScanTable(cmd *cobra.Command, rows []scanRow, dir string) string {
	out := cmd.OutOrStdout()
	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		name := row.Path
		if rel, err := filepath.Rel(dir, row.Path); err == nil {
			name = rel
		}
		if row.Result == nil {
			tableRows = append(tableRows, []string{name, "-", "-", row.Kind})
			continue
		}
		tableRows = append(tableRows, []string{
			name,
			colorScore(out, row.Result.Percent, row.Result.String()),
			strconv.Itoa(row.Result.Matches),
			"",
		})
	}
	return renderTable(out,
		[]string{"File", "Score", "Matches", "Error"},
		tableRows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
		"",
	)
}
