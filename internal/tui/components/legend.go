package components

import (
	"strconv"
	"strings"

	"github.com/LocoDelAssembly/taxonpages/internal/legend"
	"github.com/LocoDelAssembly/taxonpages/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// LegendRow is one swatch line of a rendered legend.
type LegendRow struct {
	Background string
	Label      string

	// Count is shown right-aligned when ShowCount is set.
	Count     int
	ShowCount bool
}

// LegendRowsFor builds rows for the given categories. When counts is
// non-nil each row carries its feature count.
func LegendRowsFor(categories []legend.Category, counts func(legend.Category) int) ([]LegendRow, error) {
	rows := make([]LegendRow, 0, len(categories))
	for _, c := range categories {
		e, err := legend.Get(c)
		if err != nil {
			return nil, err
		}
		row := LegendRow{Background: e.Background, Label: e.Label}
		if counts != nil {
			row.Count = counts(c)
			row.ShowCount = true
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Legend renders rows as swatch + label lines fitted to width.
//
//	██ Georeference                 12
//	██ Type material                 1
//
// Labels that do not fit are truncated with an ellipsis.
func Legend(width int, rows []LegendRow) string {
	if len(rows) == 0 || width < styles.SwatchWidth+2 {
		return ""
	}

	countWidth := 0
	for _, r := range rows {
		if r.ShowCount {
			countWidth = max(countWidth, len(strconv.Itoa(r.Count)))
		}
	}

	labelWidth := width - styles.SwatchWidth - 1
	if countWidth > 0 {
		labelWidth -= countWidth + 1
	}
	labelWidth = max(labelWidth, 1)

	lines := make([]string, len(rows))
	for i, r := range rows {
		label := r.Label
		if lipgloss.Width(label) > labelWidth {
			label = ansi.Truncate(label, labelWidth, "…")
		}

		line := styles.SwatchBlock(r.Background) + " " + styles.Value.Render(label)
		if countWidth > 0 {
			pad := labelWidth - lipgloss.Width(label)
			count := ""
			if r.ShowCount {
				count = strconv.Itoa(r.Count)
			}
			line += strings.Repeat(" ", pad+1) +
				styles.LegendCount.Render(strings.Repeat(" ", countWidth-len(count))+count)
		}
		lines[i] = line
	}

	return strings.Join(lines, "\n")
}
