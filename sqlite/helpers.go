package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timeFormat keeps a fixed number of fractional digits so that stored
// timestamps sort lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		// SQLite requires LIMIT before OFFSET.
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// encodeExtensions stores extensions as a JSON array.
func encodeExtensions(extensions []string) (string, error) {
	if extensions == nil {
		extensions = []string{}
	}
	b, err := json.Marshal(extensions)
	if err != nil {
		return "", fmt.Errorf("failed to encode extensions: %w", err)
	}
	return string(b), nil
}

func decodeExtensions(value string) ([]string, error) {
	extensions := []string{}
	if err := json.Unmarshal([]byte(value), &extensions); err != nil {
		return nil, fmt.Errorf("failed to decode extensions: %w", err)
	}
	return extensions, nil
}
