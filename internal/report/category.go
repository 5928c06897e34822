package report

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FallbackCategory is the key that unrecognized category tags are
// routed to
const FallbackCategory = "uncategorized"

// CategorySet is an ordered enumeration of category keys. The order
// fixes the column order of the final report.
type CategorySet struct {
	keys []string
}

// NewCategorySet builds a set from raw category keys. The fallback
// category is appended when missing so every transaction has a bucket
// to land in.
func NewCategorySet(keys ...string) CategorySet {
	hasFallback := false
	for _, key := range keys {
		if key == FallbackCategory {
			hasFallback = true
			break
		}
	}
	if !hasFallback {
		keys = append(keys, FallbackCategory)
	}
	return CategorySet{keys: keys}
}

// DefaultCategories returns the categories tracked by the report
func DefaultCategories() CategorySet {
	return NewCategorySet(
		"eating_out",
		"groceries",
		"bills",
		"shopping",
		"entertainment",
		"transport",
		"uncategorized",
	)
}

// Keys returns the raw category keys in enumeration order
func (s CategorySet) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Names returns the display names in enumeration order
func (s CategorySet) Names() []string {
	names := make([]string, len(s.keys))
	for i, key := range s.keys {
		names[i] = DisplayName(key)
	}
	return names
}

// Len returns the number of categories in the set
func (s CategorySet) Len() int {
	return len(s.keys)
}

// DisplayName formats a raw category tag for display: separators
// become spaces and each word is title-cased.
func DisplayName(key string) string {
	return cases.Title(language.BritishEnglish).String(strings.ReplaceAll(key, "_", " "))
}
