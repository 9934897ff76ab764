// Package importlog keeps an append-only CSV record of CSV imports, stored
// next to the ledger file.
package importlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

// Entry is one import.
type Entry struct {
	Timestamp time.Time
	Source    string // parser format
	File      string // imported CSV path
	Offset    string
	Count     int             // transactions appended
	Total     decimal.Decimal // sum of their amounts
}

// Header is the CSV header of the log file.
const Header = "timestamp,source,file,offset_account,count,total"

// FileName is the log file's name inside the ledger's directory.
const FileName = "import-log.csv"

const (
	numFields    = 6
	colTimestamp = 0
	colSource    = 1
	colFile      = 2
	colOffset    = 3
	colCount     = 4
	colTotal     = 5
)

// PathFor returns the log path for a ledger file.
func PathFor(ledgerFile string) string {
	return filepath.Join(filepath.Dir(ledgerFile), FileName)
}

// NewEntry summarizes an import of txns.
func NewEntry(now time.Time, source, file, offset string, txns []model.Transaction) Entry {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	return Entry{
		Timestamp: now.UTC(),
		Source:    source,
		File:      file,
		Offset:    offset,
		Count:     len(txns),
		Total:     total,
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSource] = e.Source
	row[colFile] = e.File
	row[colOffset] = e.Offset
	row[colCount] = strconv.Itoa(e.Count)
	row[colTotal] = e.Total.String()
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	count, err := strconv.Atoi(record[colCount])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing count %q: %w", record[colCount], err)
	}
	total, err := decimal.NewFromString(record[colTotal])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing total %q: %w", record[colTotal], err)
	}

	return Entry{
		Timestamp: ts,
		Source:    record[colSource],
		File:      record[colFile],
		Offset:    record[colOffset],
		Count:     count,
		Total:     total,
	}, nil
}

// Append writes entries to path, creating the file and header if needed.
func Append(path string, entries []Entry) error {
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: opening import log: %w", model.ErrIO, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("%w: writing header: %w", model.ErrIO, err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("%w: writing entry %d: %w", model.ErrIO, i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: flushing import log: %w", model.ErrIO, err)
	}
	return nil
}

// Read returns all entries in path, or nil if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: opening import log: %w", model.ErrIO, err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading import log: %w", model.ErrParsing, err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", model.ErrParsing, i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
