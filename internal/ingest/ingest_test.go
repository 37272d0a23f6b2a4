package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/propwire/resolve-cli/internal/model"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadSourceNames_CSV(t *testing.T) {
	path := writeTempCSV(t, "name,source,priority\nJane Doe,registration_individual,1\nJANE DOE,assessment,3\n")

	names, err := ReadSourceNames(path)
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, model.SourceName{Name: "Jane Doe", Source: "registration_individual", Priority: 1}, names[0])
	assert.Equal(t, model.SourceName{Name: "JANE DOE", Source: "assessment", Priority: 3}, names[1])
}

func TestReadSourceNames_CaseInsensitiveHeader(t *testing.T) {
	path := writeTempCSV(t, "Name,Source,Priority\nAcme LLC,deed,2\n")

	names, err := ReadSourceNames(path)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "Acme LLC", names[0].Name)
}

func TestReadSourceNames_SkipsBlankNames(t *testing.T) {
	path := writeTempCSV(t, "name,source,priority\n,deed,2\nAcme LLC,deed,2\n")

	names, err := ReadSourceNames(path)
	require.NoError(t, err)
	require.Len(t, names, 1)
}

func TestReadSourceNames_MissingColumn(t *testing.T) {
	path := writeTempCSV(t, "name,source\nAcme LLC,deed\n")

	_, err := ReadSourceNames(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority")
}

func TestReadSourceNames_BadPriority(t *testing.T) {
	path := writeTempCSV(t, "name,source,priority\nAcme LLC,deed,high\n")

	_, err := ReadSourceNames(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadPropertyOwners_CSV(t *testing.T) {
	path := writeTempCSV(t, "id,owner\nA,Smith LLC\nB,SMITH LLC\nC,Jones LLC\n")

	owners, err := ReadPropertyOwners(path)
	require.NoError(t, err)
	require.Len(t, owners, 3)
	assert.Equal(t, model.PropertyOwner{ID: "A", OwnerName: "Smith LLC"}, owners[0])
}

func TestReadRows_UnsupportedExtension(t *testing.T) {
	_, err := ReadSourceNames("input.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestReadPropertyOwners_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "owners.xlsx")

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("owners")
	require.NoError(t, err)
	for _, rec := range [][]string{
		{"id", "owner"},
		{"A", "Smith LLC"},
		{"B", "Jones LLC"},
	} {
		row := sheet.AddRow()
		for _, v := range rec {
			row.AddCell().Value = v
		}
	}
	require.NoError(t, f.Save(path))

	owners, err := ReadPropertyOwners(path)
	require.NoError(t, err)
	require.Len(t, owners, 2)
	assert.Equal(t, "Smith LLC", owners[0].OwnerName)
	assert.Equal(t, "B", owners[1].ID)
}
