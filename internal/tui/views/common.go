package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/waterlog/internal/service"
	"github.com/xolan/waterlog/internal/timeutil"
	"github.com/xolan/waterlog/internal/tui/ui"
	"github.com/xolan/waterlog/internal/unit"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Unit     unit.Unit      // Unit amounts are shown in
	Location *time.Location // Zone for entry times (nil for Local)
	Cursor   int            // Currently selected entry index (-1 for none)
	MaxRows  int            // Rows to show around the cursor (0 for all)
}

// RenderEntryList renders a list of entries with aligned columns
func RenderEntryList(entries []service.IndexedEntry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	start, end := visibleRange(len(entries), opts.Cursor, opts.MaxRows)

	var b strings.Builder
	if start > 0 {
		b.WriteString(styles.StatLabel.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		ie := entries[i]
		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}

		index := styles.EntryIndex.Render(fmt.Sprintf("%d.", ie.Index))
		timeCol := styles.EntryTime.Render(timeutil.FormatClock(ie.Entry.Timestamp, opts.Location))
		amount := styles.EntryAmount.Render(opts.Unit.Format(ie.Entry.Value))

		b.WriteString(style.Render(index + timeCol + amount))
		b.WriteString("\n")
	}

	if end < len(entries) {
		b.WriteString(styles.StatLabel.Render(fmt.Sprintf("  ↓ %d more", len(entries)-end)))
		b.WriteString("\n")
	}

	return b.String()
}

// visibleRange returns the [start, end) window of n rows that keeps cursor in view
func visibleRange(n, cursor, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start := cursor - rows/2
	start = max(0, min(start, n-rows))
	return start, start + rows
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}
