package models

import (
	"strings"

	"golang.org/x/text/cases"
)

// Key returns the case-folded form of a taxonomy name. Two names with the
// same key are considered duplicates.
//
// A Caser is not safe for concurrent use, so a new one is created per call.
func Key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// SameName reports whether a and b are equal under case folding.
func SameName(a, b string) bool {
	return Key(a) == Key(b)
}

// CompareNames orders names case-insensitively, falling back to the raw
// strings so that the order is total.
func CompareNames(a, b string) int {
	if c := strings.Compare(Key(a), Key(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// CleanName trims the name and returns ErrEmptyName for blank input.
func CleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}
