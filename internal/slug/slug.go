// Package slug derives unique URL-safe identifiers from human readable names.
package slug

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxAttempts bounds the numeric suffix search.
const MaxAttempts = 10000

// ErrSlugExhausted is returned when no free suffix was found within MaxAttempts.
var ErrSlugExhausted = errors.New("slug: no free suffix")

// LookupFunc reports whether slug is already taken. It must not modify anything.
type LookupFunc func(ctx context.Context, slug string) (bool, error)

// letters that carry no combining mark after NFD decomposition
var fold = map[rune]string{
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ø': "o", 'Ø': "O",
	'ß': "ss",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'þ': "th", 'Þ': "Th",
	'ı': "i",
}

// Transliterate strips diacritics so "Svatební focení" becomes "Svatebni foceni".
func Transliterate(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		if rep, ok := fold[r]; ok {
			b.WriteString(rep)
			continue
		}
		if r > unicode.MaxASCII {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Base converts a display name into its base slug: transliterated, whitespace runs
// joined by a single hyphen, lowercased. Blank input yields "".
func Base(displayName string) string {
	return strings.ToLower(strings.Join(strings.Fields(Transliterate(displayName)), "-"))
}

// DeriveUniqueSlug returns Base(displayName) if it is free, otherwise the first free
// candidate of base2, base3, ...
func DeriveUniqueSlug(ctx context.Context, displayName string, exists LookupFunc) (string, error) {
	base := Base(displayName)

	taken, err := exists(ctx, base)
	if err != nil {
		return "", fmt.Errorf("slug lookup %q: %w", base, err)
	}
	if !taken {
		return base, nil
	}

	for version := 2; version < MaxAttempts; version++ {
		candidate := base + strconv.Itoa(version)
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("slug lookup %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w for %q", ErrSlugExhausted, base)
}
