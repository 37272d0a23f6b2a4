// Package ingest loads ownership records from CSV and XLSX exports of
// public-record rolls into the model types the resolver consumes.
package ingest

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/propwire/resolve-cli/internal/model"
)

// readRows loads every row of a tabular file as string slices,
// dispatching on the file extension.
func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, eris.Errorf("ingest: unsupported file type %q", filepath.Ext(path))
	}
}

// columnIndex maps header names (case-insensitive, trimmed) to column
// positions.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ReadSourceNames loads (name, source, priority) rows for owner
// resolution. The file needs a header with name, source, and priority
// columns; rows with an empty name are skipped.
func ReadSourceNames(path string) ([]model.SourceName, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, eris.New("ingest: file has no header row")
	}

	idx := columnIndex(rows[0])
	nameCol, ok := idx["name"]
	if !ok {
		return nil, eris.New("ingest: missing required column \"name\"")
	}
	sourceCol, ok := idx["source"]
	if !ok {
		return nil, eris.New("ingest: missing required column \"source\"")
	}
	priorityCol, ok := idx["priority"]
	if !ok {
		return nil, eris.New("ingest: missing required column \"priority\"")
	}

	var out []model.SourceName
	for i, row := range rows[1:] {
		name := field(row, nameCol)
		if name == "" {
			continue
		}
		priority, err := strconv.Atoi(field(row, priorityCol))
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: row %d: parse priority", i+2)
		}
		out = append(out, model.SourceName{
			Name:     name,
			Source:   field(row, sourceCol),
			Priority: priority,
		})
	}
	return out, nil
}

// ReadPropertyOwners loads (id, owner) rows for portfolio grouping. The
// file needs a header with id and owner columns.
func ReadPropertyOwners(path string) ([]model.PropertyOwner, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, eris.New("ingest: file has no header row")
	}

	idx := columnIndex(rows[0])
	idCol, ok := idx["id"]
	if !ok {
		return nil, eris.New("ingest: missing required column \"id\"")
	}
	ownerCol, ok := idx["owner"]
	if !ok {
		return nil, eris.New("ingest: missing required column \"owner\"")
	}

	var out []model.PropertyOwner
	for _, row := range rows[1:] {
		id := field(row, idCol)
		if id == "" {
			continue
		}
		out = append(out, model.PropertyOwner{
			ID:        id,
			OwnerName: field(row, ownerCol),
		})
	}
	return out, nil
}
