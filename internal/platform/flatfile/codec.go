// Package flatfile implements the store.Repository contract over
// line-oriented delimited text files: one file per entity type, one
// comma-delimited record per line. Nested collections use a secondary
// ';' delimiter inside a single field. Every mutation reads the whole
// file, mutates the records in memory and rewrites the file, so the
// backend's correctness rests on the codecs being exact round-trips.
package flatfile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/starmatchhq/starmatch/internal/domain"
)

// Delimiters of the on-disk format. These never change between reads and
// writes; drift here would corrupt existing files.
const (
	fieldSep = ","
	listSep  = ";"
)

// dateLayout is the serialized form of birth dates.
const dateLayout = "2006-01-02"

// Free-text fields (names, birth places) may contain the delimiters, so
// they are percent-escaped on write. Plain text passes through unchanged,
// keeping existing files readable.
var (
	fieldEscaper   = strings.NewReplacer("%", "%25", fieldSep, "%2C", listSep, "%3B", "\n", "%0A", "\r", "%0D")
	fieldUnescaper = strings.NewReplacer("%25", "%", "%2C", fieldSep, "%3B", listSep, "%0A", "\n", "%0D", "\r")
)

// escapeField protects a free-text field from the record delimiters.
func escapeField(s string) string {
	return fieldEscaper.Replace(s)
}

// unescapeField reverses escapeField.
func unescapeField(s string) string {
	return fieldUnescaper.Replace(s)
}

// Codec is the bidirectional mapping an entity type supplies to the
// flat-file backend: entity to delimited fields and back. Decode receives
// the comma-split fields of one line; Encode must produce fields that
// Decode reconstructs into an equal entity.
type Codec[T domain.Entity] interface {
	Encode(entity T) []string
	Decode(fields []string) (T, error)
}

// encodeIntList renders ids as a ';'-separated sub-field.
func encodeIntList(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, listSep)
}

// decodeIntList parses a ';'-separated sub-field. An empty field decodes
// to no ids.
func decodeIntList(field string) ([]int, error) {
	if field == "" {
		return nil, nil
	}
	parts := strings.Split(field, listSep)
	ids := make([]int, len(parts))
	for i, part := range parts {
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q in list: %w", part, err)
		}
		ids[i] = id
	}
	return ids, nil
}

// encodeStringList renders values as a ';'-separated sub-field.
func encodeStringList(values []string) string {
	return strings.Join(values, listSep)
}

// decodeStringList parses a ';'-separated sub-field.
func decodeStringList(field string) []string {
	if field == "" {
		return nil
	}
	return strings.Split(field, listSep)
}

// fieldCountError reports a malformed record.
func fieldCountError(entity string, want, got int) error {
	return fmt.Errorf("malformed %s record: want %d fields, got %d", entity, want, got)
}

// parseDate parses the serialized birth-date form.
func parseDate(field string) (time.Time, error) {
	return time.Parse(dateLayout, field)
}
