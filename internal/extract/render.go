package extract

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"traitgen/internal/schema"
)

// pyQuote renders a string as a single-quoted literal.
func pyQuote(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('\'')

	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('\'')

	return b.String()
}

// pyLiteral renders a decoded JSON value as a literal expression.
// Map keys render sorted so output is deterministic.
func pyLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}

		return "False"
	case string:
		return pyQuote(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}

		return strconv.FormatFloat(val, 'g', -1, 64)
	case []any:
		items := make([]string, len(val))
		for i, item := range val {
			items[i] = pyLiteral(item)
		}

		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = pyQuote(k) + ": " + pyLiteral(val[k])
		}

		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// callExpr renders a call with positional arguments followed by keyword
// options sorted by name.
func callExpr(fn string, args []string, opts schema.TraitOpts) string {
	parts := append([]string(nil), args...)

	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		parts = append(parts, k+"="+pyQuote(opts[k]))
	}

	return fn + "(" + strings.Join(parts, ", ") + ")"
}

// classBuilder accumulates the lines of one generated class definition.
type classBuilder struct {
	b strings.Builder
}

func (c *classBuilder) header(classname, baseclass string) {
	fmt.Fprintf(&c.b, "class %s(%s):\n", classname, baseclass)
}

// docstring writes the class docstring: the classname, then the wrapped
// description when one exists.
func (c *classBuilder) docstring(classname, description string) {
	if description == "" {
		fmt.Fprintf(&c.b, "    \"\"\"%s schema wrapper\"\"\"\n", classname)
		return
	}

	fmt.Fprintf(&c.b, "    \"\"\"%s schema wrapper\n\n", classname)

	for _, line := range wrapText(description, 70) {
		fmt.Fprintf(&c.b, "    %s\n", line)
	}

	c.b.WriteString("    \"\"\"\n")
}

// line writes one body line at class indent.
func (c *classBuilder) line(s string) {
	c.b.WriteString("    " + s + "\n")
}

func (c *classBuilder) String() string {
	return strings.TrimRight(c.b.String(), "\n") + "\n"
}

// wrapText greedily wraps collapsed text at word boundaries.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var (
		lines   []string
		current strings.Builder
	)

	for _, w := range words {
		if current.Len() > 0 && current.Len()+1+len(w) > width {
			lines = append(lines, current.String())
			current.Reset()
		}

		if current.Len() > 0 {
			current.WriteByte(' ')
		}

		current.WriteString(w)
	}

	lines = append(lines, current.String())

	return lines
}
