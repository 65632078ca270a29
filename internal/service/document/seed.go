package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cmlabs-hris/hris-console/internal/domain/document"
)

// ReadSeed parses a json-server database file: one top level key per
// collection, each holding an array of objects.
func ReadSeed(r io.Reader) (map[string][]document.Document, error) {
	var data map[string][]document.Document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	return data, nil
}

func ReadSeedFile(path string) (map[string][]document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return ReadSeed(f)
}
