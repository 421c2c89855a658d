package sweep

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorPass  = lipgloss.Color("#10B981") // Emerald
	colorFail  = lipgloss.Color("#EF4444") // Red
	colorMuted = lipgloss.Color("#6B7280") // Gray

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	passStyle   = cellStyle.Foreground(colorPass)
	failStyle   = cellStyle.Foreground(colorFail).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)

// Report collects the results of one sweep, ordered by precision then
// function.
type Report struct {
	Domain        Domain
	ToleranceULPs float64
	Results       []Result
}

// Failed reports whether any function disagreed with the oracle.
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if res.Failures > 0 {
			return true
		}
	}
	return false
}

// Failures returns the results with at least one failing sample.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Failures > 0 {
			out = append(out, res)
		}
	}
	return out
}

func formatULPs(u float64) string {
	return strconv.FormatFloat(u, 'f', 2, 64)
}

// String renders the report as a table.
func (r *Report) String() string {
	const statusCol = 3
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("precision", "function", "samples", "failures", "max ulps", "mean ulps", "p99 ulps", "worst argument")
	for _, res := range r.Results {
		t.Row(
			string(res.Precision),
			res.Function,
			strconv.Itoa(res.Samples),
			strconv.Itoa(res.Failures),
			formatULPs(res.Max),
			formatULPs(res.Mean),
			formatULPs(res.P99),
			res.Worst,
		)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case col == statusCol && row < len(r.Results) && r.Results[row].Failures > 0:
			return failStyle
		case col == statusCol:
			return passStyle
		}
		return cellStyle
	})
	title := titleStyle.Render(fmt.Sprintf("domain %s, tolerance %g ulps", r.Domain, r.ToleranceULPs))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String())
}

// WriteTo writes the rendered report to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String()+"\n")
	return int64(n), err
}
