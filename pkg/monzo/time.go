package monzo

import (
	"fmt"
	"strings"
	"time"
)

// Time is a custom type that handles the API's timestamp fields. The
// settled field in particular is the empty string until a transaction
// settles, which time.Time refuses to parse.
type Time struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for Time
func (t *Time) UnmarshalJSON(data []byte) error {
	// Remove quotes
	str := strings.Trim(string(data), `"`)

	// Handle null/empty
	if str == "" || str == "null" {
		t.Time = time.Time{}
		return nil
	}

	// Try parsing as full timestamp (RFC3339)
	parsed, err := time.Parse(time.RFC3339, str)
	if err == nil {
		t.Time = parsed
		return nil
	}

	// Try parsing as date only (YYYY-MM-DD)
	parsed, err = time.Parse("2006-01-02", str)
	if err == nil {
		t.Time = parsed
		return nil
	}

	return fmt.Errorf("unable to parse timestamp: %s", str)
}

// MarshalJSON implements json.Marshaler for Time
func (t Time) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, t.Time.Format(time.RFC3339))), nil
}

// String returns the timestamp as a string
func (t Time) String() string {
	if t.Time.IsZero() {
		return ""
	}
	return t.Time.Format(time.RFC3339)
}
