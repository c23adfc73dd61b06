// Package report renders column-aligned plain-text tables for the CLI.
package report

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
)

const columnGap = "  "

var issueHeaders = []string{"SOURCE", "CODE", "PATH", "MESSAGE"}

// Table aligns cells by display width so wide runes stay in column.
// Rows shorter than headers are padded with empty cells. The last column
// is never padded.
func Table(headers []string, rows [][]string) string {
	colCount := len(headers)
	widths := make([]int, colCount)
	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		var line strings.Builder
		for j := 0; j < colCount; j++ {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			line.WriteString(cell)
			if j < colCount-1 {
				line.WriteString(strings.Repeat(" ", widths[j]-runewidth.StringWidth(cell)))
				line.WriteString(columnGap)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}

	writeRow(headers)
	separator := make([]string, colCount)
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}
	writeRow(separator)
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}

// IssueRows turns validation issues of one source into table rows.
func IssueRows(source string, issues []jsonld.Issue) [][]string {
	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, []string{source, string(issue.Code), issue.Path, issue.Message})
	}
	return rows
}

// WriteIssues writes the issue table, or a single line when rows is empty.
func WriteIssues(w io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		_, err := io.WriteString(w, "No validation issues.\n")
		return err
	}
	_, err := io.WriteString(w, Table(issueHeaders, rows))
	return err
}
