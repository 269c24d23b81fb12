package phrases

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"wheelbot/internal/domain"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// ErrEmptyList is returned when the phrase source contains no records
var ErrEmptyList = errors.New("phrase list is empty")

// Load parses a phrase list of category,answer CSV records.
// Sources that are not valid UTF-8 are decoded through charset detection,
// which falls back to windows-1252 for unmarked single-byte files.
func Load(r io.Reader) ([]domain.PhraseEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read phrase list: %w", err)
	}

	var src io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		enc, _, _ := charset.DetermineEncoding(data, "")
		src = transform.NewReader(src, enc.NewDecoder())
	}

	reader := csv.NewReader(src)
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse phrase list: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyList
	}

	entries := make([]domain.PhraseEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, domain.PhraseEntry{
			Category: record[0],
			Answer:   record[1],
		})
	}

	return entries, nil
}

// LoadFile loads a phrase list from disk
func LoadFile(path string) ([]domain.PhraseEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open phrase list: %w", err)
	}
	defer f.Close()

	return Load(f)
}
