// Package render formats validation reports for people and machines.
package render

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"mangastudio/pkg/types"
)

const (
	stateOK      = "OK"
	stateMissing = "MISSING"
	colGap       = "  "
)

var tableHeader = []string{"Model", "Type", "State", "Resolved path", "Errors"}

// Table writes a human-facing summary of r, one row per asset.
func Table(w io.Writer, r *types.Report) error {
	rows := make([][]string, 0, len(r.Results)+1)
	rows = append(rows, tableHeader)
	for _, res := range r.Results {
		state := stateOK
		if !res.Present {
			state = stateMissing
		}
		rows = append(rows, []string{
			res.Key,
			res.Type,
			state,
			res.ResolvedPath,
			strings.Join(res.Messages(), "; "),
		})
	}

	widths := make([]int, len(tableHeader))
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("Model Manager - model status\n")
	for i, row := range rows {
		writeRow(bw, row, widths)
		if i == 0 {
			sep := make([]string, len(widths))
			for j, cw := range widths {
				sep[j] = strings.Repeat("-", cw)
			}
			writeRow(bw, sep, widths)
		}
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, row []string, widths []int) {
	last := len(row) - 1
	for i, cell := range row {
		if i == last {
			// no trailing padding on the last column
			w.WriteString(cell)
			break
		}
		w.WriteString(runewidth.FillRight(cell, widths[i]))
		w.WriteString(colGap)
	}
	w.WriteByte('\n')
}

// JSON writes the flat key -> {present, type, errors, resolved_path} document.
func JSON(w io.Writer, r *types.Report) error {
	return encode(w, r.Flatten())
}

// Estimate writes est as indented JSON.
func Estimate(w io.Writer, est types.Estimate) error {
	return encode(w, est)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
