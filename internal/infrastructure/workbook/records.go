package workbook

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell decoding tolerates the numeric formats older tooling left behind in
// the workbook: integer ids may appear as "3" or "3.0".

func parseIntCell(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}

func parseFloatCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return f, nil
}

// parseOptionalID decodes weak-reference cells that may legitimately be
// absent, such as the seller_id of legacy product rows. Anything unreadable
// collapses to 0 (unset).
func parseOptionalID(s string) int {
	n, err := parseIntCell(s)
	if err != nil {
		return 0
	}
	return n
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// nextID returns max(existing ids) + 1, or 1 for an empty table. Rows whose
// id cell is unreadable are ignored for the purpose of the maximum.
func nextID(t *Table) int {
	max := 0
	for _, rec := range t.Records {
		id, err := parseIntCell(rec["id"])
		if err != nil {
			continue
		}
		if id > max {
			max = id
		}
	}
	return max + 1
}

// ensureColumns appends any missing schema columns to the table, defaulting
// the cell to empty on every existing record. Rewrites then always emit the
// full column set.
func ensureColumns(t *Table, columns []string) {
	for _, col := range columns {
		found := false
		for _, have := range t.Columns {
			if have == col {
				found = true
				break
			}
		}
		if found {
			continue
		}
		t.Columns = append(t.Columns, col)
		for _, rec := range t.Records {
			rec[col] = ""
		}
	}
}
