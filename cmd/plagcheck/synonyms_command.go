package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"plagcheck/internal/fileutil"
	"plagcheck/internal/synonyms"
)

type synonymsReport struct {
	Path    string           `json:"path"`
	Words   int              `json:"words"`
	Groups  int              `json:"groups"`
	Entries []synonyms.Entry `json:"entries"`
}

func newSynonymsCommand(ctx *commandContext) *cobra.Command {
	var grouped bool

	cmd := &cobra.Command{
		Use:   "synonyms <file>",
		Short: "Show how a synonyms file maps words to their group leaders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := fileutil.ReadText(args[0])
			if err != nil {
				return fmt.Errorf("synonyms: %w", err)
			}
			table := synonyms.Parse(text)
			groups := table.Groups()

			if ctx.jsonOutput() {
				return writeJSON(cmd, synonymsReport{
					Path:    args[0],
					Words:   table.Len(),
					Groups:  len(groups),
					Entries: table.Entries(),
				})
			}

			out := cmd.OutOrStdout()
			if table.Len() == 0 {
				fmt.Fprintln(out, "No synonyms defined")
				return nil
			}
			caption := fmt.Sprintf("%d words in %d groups", table.Len(), len(groups))
			if grouped {
				fmt.Fprintln(out, renderGroups(cmd, groups, caption))
				return nil
			}
			rows := make([][]string, 0, table.Len())
			for i, entry := range table.Entries() {
				rows = append(rows, []string{strconv.Itoa(i + 1), entry.Word, entry.Leader})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"#", "Word", "Leader"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
				caption,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&grouped, "grouped", false, "List one row per leader with its members")
	return cmd
}

func renderGroups(cmd *cobra.Command, groups map[string][]string, caption string) string {
	leaders := make([]string, 0, len(groups))
	for leader := range groups {
		leaders = append(leaders, leader)
	}
	sort.Strings(leaders)

	rows := make([][]string, 0, len(leaders))
	for _, leader := range leaders {
		rows = append(rows, []string{leader, strings.Join(groups[leader], " ")})
	}
	return renderTable(cmd.OutOrStdout(),
		[]string{"Leader", "Members"},
		rows,
		[]columnAlignment{alignLeft, alignLeft},
		caption,
	)
}
