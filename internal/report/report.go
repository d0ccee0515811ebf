// Package report renders duplicate groups for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Ning0612/dupfinder/internal/domain"
)

// Format names accepted by Render
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Render writes groups to w in the given format
func Render(w io.Writer, format string, groups []domain.DuplicateGroup) error {
	switch format {
	case FormatText, "":
		return renderText(w, groups)
	case FormatJSON:
		return renderJSON(w, groups)
	case FormatTable:
		return renderTable(w, groups)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// renderText writes one group per line, paths separated by a space.
// Paths never contain whitespace so each line splits back cleanly.
func renderText(w io.Writer, groups []domain.DuplicateGroup) error {
	for _, g := range groups {
		if _, err := fmt.Fprintln(w, strings.Join(g, " ")); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, groups []domain.DuplicateGroup) error {
	if groups == nil {
		groups = []domain.DuplicateGroup{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(groups)
}

func renderTable(w io.Writer, groups []domain.DuplicateGroup) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Group", "Size", "Path"})

	for i, g := range groups {
		for j, path := range g {
			if j == 0 {
				t.AppendRow(table.Row{i + 1, len(g), path})
			} else {
				t.AppendRow(table.Row{"", "", path})
			}
		}
		if i < len(groups)-1 {
			t.AppendSeparator()
		}
	}

	t.AppendFooter(table.Row{"", "Groups", len(groups)})
	t.Render()
	return nil
}
