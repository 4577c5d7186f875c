// Package vocab defines the controlled-vocabulary model: term records, the
// PREFIX:NNNNNNN identifier form, the display/folder naming convention, and
// the allocator that mints new identifiers. Everything here is pure data and
// arithmetic; reading and writing the on-disk tree lives in internal/tsv and
// internal/tree.
package vocab

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefix namespaces every identifier in one vocabulary.
type Prefix string

// DefaultPrefix is used when no prefix is configured.
const DefaultPrefix Prefix = "ONVOC"

// ID is a vocabulary identifier in its lexical PREFIX:NNNNNNN form.
type ID string

// NewID formats the n-th identifier under prefix. Numbers are zero-padded
// to seven digits; values past 9999999 widen the field rather than fail.
func NewID(prefix Prefix, n int) ID {
	return ID(fmt.Sprintf("%s:%07d", prefix, n))
}

// Number extracts the numeric part of id when it is exactly seven digits
// under the given prefix. ok is false for any other string, including
// identifiers minted under a different prefix and the widened post-overflow
// form.
func (id ID) Number(prefix Prefix) (n int, ok bool) {
	rest, found := strings.CutPrefix(string(id), string(prefix)+":")
	if !found || len(rest) != 7 {
		return 0, false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Record is one row of a term store.
type Record struct {
	Term    string
	ID      ID
	Comment string
}
