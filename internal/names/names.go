package names

import (
	"strconv"
	"strings"
	"unicode"
)

// pythonKeywords are reserved words in the generated target language.
// A regularized identifier that collides with one gets a trailing underscore.
var pythonKeywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

// Regularize turns an arbitrary schema name into a legal identifier.
// Invalid runes become underscores, a leading digit gets an underscore
// prefix, and reserved words get an underscore suffix. Case is preserved.
func Regularize(name string) string {
	if name == "" {
		return name
	}

	var b strings.Builder

	b.Grow(len(name) + 1)

	for i, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}

			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := b.String()
	if _, reserved := pythonKeywords[out]; reserved {
		out += "_"
	}

	return out
}

// Normalize lower-cases a definition name for use as a lookup key.
func Normalize(name string) string {
	return strings.ToLower(name)
}

// TraitNameMap maps each schema property key to a unique regularized trait
// name. A collision gets the lowest free numbered variant of its base name.
// Keys must be passed in the order collisions should be resolved in; callers
// pass them sorted so the result is deterministic.
func TraitNameMap(keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	taken := make(map[string]struct{}, len(keys))

	for _, key := range keys {
		name := Regularize(key)

		if _, used := taken[name]; used {
			stem := name
			for i := 1; ; i++ {
				name = stem + strconv.Itoa(i)
				if _, used := taken[name]; !used {
					break
				}
			}
		}

		taken[name] = struct{}{}
		out[key] = name
	}

	return out
}

// Shorten collapses whitespace in s and truncates it at a word boundary so
// the result fits within width runes, appending a placeholder when text was
// dropped. Used for help strings in generated trait definitions.
func Shorten(s string, width int) string {
	const placeholder = " [...]"

	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	joined := strings.Join(words, " ")
	if len(joined) <= width {
		return joined
	}

	budget := width - len(placeholder)

	var b strings.Builder

	for _, w := range words {
		need := len(w)
		if b.Len() > 0 {
			need++
		}

		if b.Len()+need > budget {
			break
		}

		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(w)
	}

	if b.Len() == 0 {
		return strings.TrimSpace(placeholder)
	}

	return b.String() + placeholder
}
