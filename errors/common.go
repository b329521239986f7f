package errors

import "fmt"

// EmptyParentErr is returned when a child entity samples a foreign key from a
// parent dataset that has not been generated yet.
func EmptyParentErr(child, parent string) error {
	return E(Config, fmt.Sprintf("cannot generate %s: parent dataset %s is empty", child, parent), nil)
}

func EmptyChoiceErr() error {
	return E(Config, "weighted choice needs at least one outcome", nil)
}

func NonPositiveWeightErr(total int) error {
	return E(Config, fmt.Sprintf("weighted choice total weight must be positive, got %d", total), nil)
}

func OutputDirErr(dir string, err error) error {
	return E(IO, fmt.Sprintf("cannot prepare output directory %q", dir), err)
}
