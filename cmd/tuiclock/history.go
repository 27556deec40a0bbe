package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/tuiclock/internal/config"
	"github.com/verte-zerg/tuiclock/internal/model"
	"github.com/verte-zerg/tuiclock/internal/store"
)

const historyTimeLayout = "2006-01-02 15:04:05"

var (
	historyLast int
	historyYAML bool
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show journaled alarm and countdown events",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N events")
	cmd.Flags().BoolVar(&historyYAML, "yaml", false, "print events as YAML")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	path := config.DefaultJournalPath()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logErrln("No journal yet. Enable it with --journal or [journal] enabled = true.")
			return nil
		}
		return fmt.Errorf("failed to stat journal: %w", err)
	}

	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close journal: %v\n", cerr)
		}
	}()

	events, err := st.ListEvents(context.Background(), model.HistoryConfig{Last: historyLast, YAML: historyYAML})
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}
	if historyYAML {
		return writeHistoryYAML(cmd.OutOrStdout(), events)
	}
	if len(events) == 0 {
		logErrln("No events recorded yet.")
		return nil
	}
	return writeHistoryTable(cmd.OutOrStdout(), events, outputWidth(cmd.OutOrStdout()))
}

func writeHistoryYAML(w io.Writer, events []model.JournalEvent) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if events == nil {
		events = []model.JournalEvent{}
	}
	if err := enc.Encode(events); err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	return enc.Close()
}

// writeHistoryTable prints one event per line. Lines are clipped to width
// when width is positive.
func writeHistoryTable(w io.Writer, events []model.JournalEvent, width int) error {
	headers := []string{"ID", "When", "Event", "Label"}
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		rows = append(rows, []string{
			strconv.FormatInt(ev.ID, 10),
			ev.At.Local().Format(historyTimeLayout),
			string(ev.Kind),
			ev.Label,
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true}) {
		if width > 0 {
			line = runewidth.Truncate(line, width, "")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(headers, widths, rightAlignCols))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

// outputWidth returns the terminal width of w, or 0 when w is not a terminal.
func outputWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}
