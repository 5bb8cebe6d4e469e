package render

import (
	"fmt"
	"io"
	"regexp"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/salted/internal/usecase"
)

var (
	nameStyle      = color.New(color.FgGreen, color.Bold)
	unnamedStyle   = color.New(color.Faint)
	timestampStyle = color.New(color.Faint)
)

type TableData [][]string

// DeploymentsRenderer renders the deployment history as a table
type DeploymentsRenderer struct {
	out io.Writer
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out}
}

func (r *DeploymentsRenderer) Render(result *usecase.ListDeploymentsResult) error {
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	data := make(TableData, 0, len(result.Deployments))
	for _, d := range result.Deployments {
		name := unnamedStyle.Sprint("-")
		if d.Label != "" {
			name = nameStyle.Sprint(d.Label)
		}
		data = append(data, []string{
			name,
			d.Address,
			shortHex(d.Caller),
			shortHex(d.Salt),
			fmt.Sprintf("%d", d.CodeSize),
			timestampStyle.Sprint(d.CreatedAt.Format("2006-01-02 15:04:05")),
		})
	}

	header := []string{"LABEL", "ADDRESS", "CALLER", "SALT", "CODE", "CREATED"}
	fmt.Fprint(r.out, renderTableWithWidths(header, data, calculateTableColumnWidths(append(TableData{header}, data...))))
	fmt.Fprintln(r.out)

	if len(result.Deployments) == result.Total {
		fmt.Fprintf(r.out, "Total deployments: %d\n", result.Total)
	} else {
		fmt.Fprintf(r.out, "Showing %d of %d deployments\n", len(result.Deployments), result.Total)
	}
	return nil
}

// shortHex abbreviates long hex strings to 0x1234…abcd
func shortHex(s string) string {
	if len(s) <= 14 {
		return s
	}
	return s[:6] + "…" + s[len(s)-4:]
}

// renderTableWithWidths renders a borderless table with fixed column widths
func renderTableWithWidths(header []string, tableData TableData, columnWidths []int) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.Style().Format.Header = text.FormatDefault

	colConfigs := make([]table.ColumnConfig, len(columnWidths))
	for i, width := range columnWidths {
		colConfigs[i] = table.ColumnConfig{
			Number:   i + 1,
			Align:    text.AlignLeft,
			WidthMin: width,
			WidthMax: width,
		}
	}
	t.SetColumnConfigs(colConfigs)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = labelStyle.Sprint(h)
	}
	t.AppendHeader(headerRow)

	for _, row := range tableData {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			tableRow[i] = cell
		}
		t.AppendRow(tableRow)
	}

	return t.Render()
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[mGKHF]`)

// stripAnsiCodes removes ANSI escape sequences from a string
func stripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// calculateTableColumnWidths calculates the widest visible cell of every column
func calculateTableColumnWidths(rows TableData) []int {
	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	widths := make([]int, maxCols)
	for _, row := range rows {
		for colIdx, cell := range row {
			cellWidth := len([]rune(stripAnsiCodes(cell)))
			if cellWidth > widths[colIdx] {
				widths[colIdx] = cellWidth
			}
		}
	}
	return widths
}

var _ Renderer[*usecase.ListDeploymentsResult] = (*DeploymentsRenderer)(nil)
