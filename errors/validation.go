package errors

import (
	// Go Internal Packages
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors collects field level problems so a whole config can be
// reported in one go.
type ValidationErrors struct {
	fields map[string][]string
}

func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{fields: make(map[string][]string)}
}

func (v *ValidationErrors) Add(field, message string) {
	v.fields[field] = append(v.fields[field], message)
}

func (v *ValidationErrors) Len() int {
	return len(v.fields)
}

// Err returns nil when nothing was added. Fields are sorted for a stable message.
func (v *ValidationErrors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(v.fields))
	for k := range v.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(v.fields[k], ", ")))
	}
	return E(Invalid, strings.Join(parts, "; "), nil)
}
