package main

import (
	"fmt"
	"sort"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/speechsdk/intentcore/intent"
)

// formatTable renders result as a two-column key/value table, padding the
// key column by display width (not byte or rune count) so entity values
// containing full-width characters still line up (display.GraphemeClusterWidth
// is the model for using go-runewidth here).
func formatTable(result intent.IntentResult) string {
	rows := [][2]string{{"intent_id", result.IntentID}}

	keys := make([]string, 0, len(result.Entities))
	for k := range result.Entities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rows = append(rows, [2]string{"entity:" + k, result.Entities[k]})
	}
	rows = append(rows, [2]string{"alternates", fmt.Sprintf("%d", len(result.Detailed))})

	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		pad := width - runewidth.StringWidth(row[0])
		sb.WriteString(row[0])
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString("  ")
		sb.WriteString(row[1])
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
