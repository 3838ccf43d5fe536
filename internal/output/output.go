package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/happysysadm/get-administrativeevent/internal/config"
	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
)

const maxMessageLength = 80

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = cellStyle.Foreground(lipgloss.Color("#FF6B6B"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// SortByTimeDesc returns a copy of records, most recent first. Equal times keep their order.
func SortByTimeDesc(records []entity.EventRecord) []entity.EventRecord {
	ret := make([]entity.EventRecord, len(records))
	copy(ret, records)

	slices.SortStableFunc(ret, func(a, b entity.EventRecord) int {
		return b.TimeCreated.Compare(a.TimeCreated)
	})

	return ret
}

// CheckFormat fails for formats Write does not support.
func CheckFormat(format config.OutputFormat) error {
	switch format {
	case config.OutputFormatJson, config.OutputFormatYaml, config.OutputFormatTable, "":
		return nil
	default:
		return fmt.Errorf("unexpected output format %v", format)
	}
}

// Write prints records sorted by time, now is used for the table age column.
func Write(w io.Writer, records []entity.EventRecord, format config.OutputFormat, now time.Time) error {
	sorted := SortByTimeDesc(records)

	switch format {
	case config.OutputFormatJson, "":
		return writeJson(w, sorted)
	case config.OutputFormatYaml:
		return writeYaml(w, sorted)
	case config.OutputFormatTable:
		return writeTable(w, sorted, now)
	default:
		return CheckFormat(format)
	}
}

func writeJson(w io.Writer, records []entity.EventRecord) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(records)
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}

	return nil
}

func writeYaml(w io.Writer, records []entity.EventRecord) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	err := encoder.Encode(records)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("failed to flush yaml: %w", err)
	}

	return nil
}

func writeTable(w io.Writer, records []entity.EventRecord, now time.Time) error {
	rows := make([][]string, 0, len(records))
	critical := make(map[int]bool, len(records))

	for i, record := range records {
		rows = append(rows, []string{
			record.TimeCreated.Local().Format(time.DateTime),
			humanize.RelTime(record.TimeCreated, now, "ago", "from now"),
			record.HostName,
			record.LogName,
			record.ProviderName,
			strconv.Itoa(record.EventID),
			record.LevelDisplayName,
			shorten(record.Message),
		})

		critical[i] = strings.EqualFold(record.LevelDisplayName, "critical")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("TIME", "AGE", "HOST", "LOG", "PROVIDER", "ID", "LEVEL", "MESSAGE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case critical[row]:
				return errorStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.String())
	if err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return nil
}

// shorten keeps the first line of a message, cut to maxMessageLength runes.
func shorten(message string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(message), "\n")
	line = strings.TrimSpace(line)

	runes := []rune(line)
	if len(runes) <= maxMessageLength {
		return line
	}

	return string(runes[:maxMessageLength-1]) + "…"
}
