package operations

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/spline/pkg/types"
)

var nonDigits = regexp.MustCompile(`[^0-9]+`)

func strip(v types.Value) (types.Value, error) {
	return types.StringValue(strings.TrimSpace(v.String())), nil
}

func upper(v types.Value) (types.Value, error) {
	return types.StringValue(mapValid(v.String(), strings.ToUpper)), nil
}

func lower(v types.Value) (types.Value, error) {
	return types.StringValue(mapValid(v.String(), strings.ToLower)), nil
}

func length(v types.Value) (types.Value, error) {
	return types.IntValue(int64(utf8.RuneCountInString(v.String()))), nil
}

func digits(v types.Value) (types.Value, error) {
	return types.StringValue(nonDigits.ReplaceAllString(v.String(), "")), nil
}

// capwords splits on runs of whitespace, capitalises each word and joins
// them with single spaces
func capwords(v types.Value) (types.Value, error) {
	words := strings.Fields(v.String())
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		head := word[:size]
		if r != utf8.RuneError || size > 1 {
			head = string(unicode.ToUpper(r))
		}
		words[i] = head + mapValid(word[size:], strings.ToLower)
	}
	return types.StringValue(strings.Join(words, " ")), nil
}

// mapValid applies fn to every valid UTF-8 run of s. Bytes that are not
// valid UTF-8 are copied through unchanged.
func mapValid(s string, fn func(string) string) string {
	if utf8.ValidString(s) {
		return fn(s)
	}

	var b strings.Builder
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteString(fn(s[start:i]))
			b.WriteByte(s[i])
			i++
			start = i
			continue
		}
		i += size
	}
	b.WriteString(fn(s[start:]))
	return b.String()
}
