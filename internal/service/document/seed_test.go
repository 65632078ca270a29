package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hris-console/internal/domain/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeed(t *testing.T) {
	data, err := ReadSeed(strings.NewReader(`{
		"employees": [{"id": 1, "name": "Alice"}],
		"departments": [{"id": "d1", "name": "Eng", "budget": "100000"}]
	}`))
	require.NoError(t, err)

	require.Len(t, data[document.Employees], 1)
	assert.Equal(t, "1", data[document.Employees][0].ID())
	assert.Equal(t, "d1", data[document.Departments][0].ID())
}

func TestReadSeed_Invalid(t *testing.T) {
	_, err := ReadSeed(strings.NewReader(`{"employees": {"id": 1}}`))
	assert.Error(t, err)
}

func TestReadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"departments": [{"name": "Ops"}]}`), 0o600))

	data, err := ReadSeedFile(path)
	require.NoError(t, err)
	assert.Len(t, data[document.Departments], 1)

	_, err = ReadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
