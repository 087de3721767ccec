// Package thumbnail derives a static image from a display name: the person's
// initials drawn over a solid or gradient panel, flattened into one bitmap.
//
// Generation allocates a new bitmap on every call. It is meant for the rare
// moments a name or background changes, not for every frame.
package thumbnail

import (
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/displaypicture/pkg/errors"
)

// Initials derives the initials of name.
//
// The name is split on whitespace. When there is more than one token only the
// first and last are kept. The first character of each kept token is used as
// given, without changing its case:
//
//	Initials("Ross Geller")        // "RG"
//	Initials("Phoebe Regina Buffay") // "PB"
//	Initials("Prada")              // "P"
//
// An empty or whitespace-only name fails with INVALID_INPUT.
func Initials(name string) (string, error) {
	if err := errors.ValidateName(name); err != nil {
		return "", err
	}

	tokens := strings.Fields(name)
	if len(tokens) > 1 {
		tokens = []string{tokens[0], tokens[len(tokens)-1]}
	}

	var b strings.Builder
	for _, tok := range tokens {
		r, _ := utf8.DecodeRuneInString(tok)
		b.WriteRune(r)
	}
	return b.String(), nil
}
