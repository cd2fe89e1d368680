// Package portable serializes the whole ledger state to and from its
// portable JSON form, the format behind the export/import feature.
package portable

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kmwaniki/pesa/internal/ledger"
)

// Encode writes the state as indented JSON.
func Encode(w io.Writer, st *ledger.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	return nil
}

// Decode parses an exported state. Files that passed through spreadsheet
// tools or Windows editors are often re-saved with a BOM or in UTF-16;
// the reader normalizes those to UTF-8 before parsing.
func Decode(r io.Reader) (*ledger.State, error) {
	utf8r, err := newUTF8Reader(r)
	if err != nil {
		return nil, err
	}

	var st ledger.State
	if err := json.NewDecoder(utf8r).Decode(&st); err != nil {
		return nil, fmt.Errorf("decoding state: %w", err)
	}

	return &st, nil
}
