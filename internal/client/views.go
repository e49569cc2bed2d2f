package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-exercism-backup/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

const uiDivider = "──────────────────────────────────────────────────────"

var catalogColumns = []string{"TRACK", "EXERCISE", "ITERATIONS", "LAST ITERATION", "BACKED UP", "PATH"}

// renderCatalog lays entries out as an aligned table.
func renderCatalog(entries []models.CatalogEntry) string {
	if len(entries) == 0 {
		return renderPage("BACKUP CATALOG", "", "no solution backed up yet")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Track,
			e.Exercise,
			strconv.Itoa(e.NumIterations),
			valueOrDash(e.MarkerValue),
			e.BackedUpAt.Local().Format(time.DateTime),
			e.Path,
		})
	}

	widths := make([]int, len(catalogColumns))
	for i, column := range catalogColumns {
		widths[i] = lipgloss.Width(column)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(formatRow(catalogColumns, widths)))
	b.WriteString("\n")
	for i, w := range widths {
		if i > 0 {
			b.WriteString("─┼─")
		}
		b.WriteString(strings.Repeat("─", w))
	}
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(formatRow(row, widths))
		b.WriteString("\n")
	}

	return renderPage("BACKUP CATALOG", strings.TrimRight(b.String(), "\n"), fmt.Sprintf("%d solution(s)", len(entries)))
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
	}
	return strings.TrimRight(strings.Join(padded, " │ "), " ")
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// RenderBuildInfo formats info for `exbackup version`.
func RenderBuildInfo(info BuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: exbackup\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.Commit))

	return renderPage("BUILD INFO", b.String(), "")
}

func renderPage(title, data, footer string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString(uiDivider)
	if strings.TrimSpace(footer) != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(footer))
	}

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
