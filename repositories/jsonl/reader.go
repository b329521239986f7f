package jsonl

import (
	// Go Internal Packages
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	// Local Packages
	errors "psp-datagen/errors"
)

const maxLine = 1024 * 1024

// ReadFile decodes every non-blank line of path into a T.
func ReadFile[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.E(errors.IO, fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	var out []T
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLine)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("%s:%d", path, line), err)
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(errors.IO, fmt.Sprintf("cannot read %s", path), err)
	}
	return out, nil
}
