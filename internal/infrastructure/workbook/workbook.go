// Package workbook implements the shared persistence layer: every table lives
// as one sheet of a single xlsx workbook, and every mutation is a full-sheet
// load, an in-memory change, and a full-workbook rewrite.
package workbook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/minimarket/catalog-api/internal/core/domain"
	"github.com/minimarket/catalog-api/internal/metrics"
)

const (
	TableUsers     = "users"
	TableCustomers = "customers"
	TableProducts  = "products"
	TableOrders    = "orders"
)

// Record is one row keyed by normalized column name. Cells are kept as raw
// strings; typed decoding belongs to the entity repositories.
type Record map[string]string

// Table is a full in-memory copy of one sheet. Records preserve the sheet's
// row order.
type Table struct {
	Columns []string
	Records []Record
}

// Append adds a record at the end of the table.
func (t *Table) Append(rec Record) {
	t.Records = append(t.Records, rec)
}

// Store reads and writes tables of the shared workbook file.
//
// The underlying file format provides no isolation between a load and the
// save that follows it, so Store serializes at two levels: repositories hold
// a per-table lock across their whole load-mutate-save cycle, and because
// every save rewrites the entire file, fileMu additionally serializes each
// rewrite against all other reads and rewrites, whatever table they target.
// Cross-table operations remain non-atomic.
type Store struct {
	path string
	log  zerolog.Logger

	fileMu sync.RWMutex

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore returns a Store over the workbook at path. The file does not need
// to exist yet; the first save materializes it.
func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{
		path:  path,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}
}

// LockTable acquires the serialization lock for one table and returns the
// unlock function. Every mutating repository operation runs its full
// load-mutate-save cycle under this lock.
func (s *Store) LockTable(table string) func() {
	s.mu.Lock()
	lock, ok := s.locks[table]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[table] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Load reads the full contents of one table. A missing workbook file or
// missing sheet fails with ErrTableNotFound.
func (s *Store) Load(ctx context.Context, table string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.fileMu.RLock()
	defer s.fileMu.RUnlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", table, domain.ErrTableNotFound)
		}
		return nil, fmt.Errorf("load %s: open workbook: %w", table, err)
	}
	defer f.Close()

	t, err := s.readSheet(f, table)
	if err != nil {
		return nil, err
	}

	metrics.TableLoadsTotal.WithLabelValues(table).Inc()
	return t, nil
}

// LoadWithSchema behaves like Load, except a missing table yields an empty
// table with the given column schema instead of an error.
func (s *Store) LoadWithSchema(ctx context.Context, table string, columns []string) (*Table, error) {
	t, err := s.Load(ctx, table)
	if err != nil {
		if errors.Is(err, domain.ErrTableNotFound) {
			return &Table{Columns: append([]string(nil), columns...)}, nil
		}
		return nil, err
	}
	return t, nil
}

// Save overwrites the table's full contents. The whole workbook is read and
// rewritten: all other sheets are copied verbatim, then the target sheet is
// emitted from scratch with the table's full column set.
func (s *Store) Save(ctx context.Context, table string, t *Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	start := time.Now()

	src, err := excelize.OpenFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("save %s: open workbook: %w", table, err)
	}

	out := excelize.NewFile()
	defer out.Close()

	if src != nil {
		defer src.Close()
		for _, name := range src.GetSheetList() {
			if normalizeName(name) == normalizeName(table) {
				continue
			}
			if err := copySheet(src, out, name); err != nil {
				return fmt.Errorf("save %s: carry sheet %s: %w", table, name, err)
			}
		}
	}

	if err := writeSheet(out, table, t); err != nil {
		return fmt.Errorf("save %s: %w", table, err)
	}

	// Drop the scratch sheet excelize starts with, unless it was the target.
	if normalizeName(table) != "sheet1" {
		if idx, _ := out.GetSheetIndex("Sheet1"); idx != -1 {
			_ = out.DeleteSheet("Sheet1")
		}
	}

	if err := out.SaveAs(s.path); err != nil {
		return fmt.Errorf("save %s: write workbook: %w", table, err)
	}

	metrics.TableSavesTotal.WithLabelValues(table).Inc()
	metrics.TableSaveDuration.WithLabelValues(table).Observe(time.Since(start).Seconds())

	s.log.Debug().
		Str("table", table).
		Int("records", len(t.Records)).
		Msg("table rewritten")

	return nil
}

// readSheet decodes one sheet into a Table. The first row is the column
// schema; names are trimmed and lowercased. Ragged rows are padded so every
// record covers the full column set; fully empty rows are skipped.
func (s *Store) readSheet(f *excelize.File, table string) (*Table, error) {
	sheet := sheetName(f, table)
	if sheet == "" {
		return nil, fmt.Errorf("load %s: %w", table, domain.ErrTableNotFound)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("load %s: read rows: %w", table, err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	columns := make([]string, 0, len(rows[0]))
	for _, c := range rows[0] {
		columns = append(columns, normalizeName(c))
	}

	t := &Table{Columns: columns}
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		rec := make(Record, len(columns))
		for i, col := range columns {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		t.Append(rec)
	}
	return t, nil
}

// sheetName resolves a table name against the workbook's sheets, matching on
// the normalized form so "Users " and "users" are the same table.
func sheetName(f *excelize.File, table string) string {
	for _, name := range f.GetSheetList() {
		if normalizeName(name) == normalizeName(table) {
			return name
		}
	}
	return ""
}

func copySheet(src, dst *excelize.File, name string) error {
	rows, err := src.GetRows(name)
	if err != nil {
		return err
	}
	if _, err := dst.NewSheet(name); err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := dst.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSheet(f *excelize.File, table string, t *Table) error {
	if _, err := f.NewSheet(table); err != nil {
		return err
	}
	header := append([]string(nil), t.Columns...)
	if err := f.SetSheetRow(table, "A1", &header); err != nil {
		return err
	}
	for i, rec := range t.Records {
		row := make([]string, len(t.Columns))
		for j, col := range t.Columns {
			row[j] = rec[col]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(table, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
