// Package records implements the block-structured text grammar shared by
// every on-disk entity file, plus one codec per entity kind.
//
// The grammar is deliberately forgiving: decoding never fails. Malformed or
// partial input degrades to defaults for the offending fields only, so old
// binaries can read files written by new ones and vice versa. That failure
// policy is part of the format contract, not an error path.
package records

import (
	"strconv"
	"strings"
	"time"
)

const (
	topHeadingPrefix    = "## "
	nestedHeadingPrefix = "### "
	propertyPrefix      = "- "

	// instantLayout is the profile used for event timestamps; dateLayout is
	// the bare-date profile used for day-only fields.
	instantLayout = time.RFC3339
	dateLayout    = "2006-01-02"
)

// Property is a single `- key: value` field assignment within a record.
type Property struct {
	Key   string
	Value string
}

// Record is one parsed entity block: a heading line followed by its
// property lines. Nested `### ` sub-records (suggested tasks inside a
// meeting proposal) appear in Children in source order.
type Record struct {
	Heading  string
	Props    []Property
	Children []Record
}

// Parse tokenizes a text blob into ordered records. A `## ` line opens a
// top-level record, a `### ` line opens a nested record inside the current
// top-level one, and a `- key: value` line belongs to whichever record is
// open (the nested one, while one is open). A leading `# ` document title
// and blank lines are ignored. Lines that fit no rule are skipped.
func Parse(text string) []Record {
	var out []Record

	// Cursor state for the two-level scan: the index of the open top-level
	// record, and whether properties currently belong to its last child.
	current := -1
	inChild := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, nestedHeadingPrefix):
			if current < 0 {
				// A nested heading with no open parent has nowhere to
				// attach; skip it and its properties.
				inChild = false
				continue
			}
			child := Record{Heading: strings.TrimSpace(line[len(nestedHeadingPrefix):])}
			out[current].Children = append(out[current].Children, child)
			inChild = true

		case strings.HasPrefix(line, topHeadingPrefix):
			out = append(out, Record{Heading: strings.TrimSpace(line[len(topHeadingPrefix):])})
			current = len(out) - 1
			inChild = false

		case strings.HasPrefix(line, propertyPrefix):
			key, value, ok := splitProperty(line)
			if !ok || current < 0 {
				continue
			}
			if inChild {
				children := out[current].Children
				last := &children[len(children)-1]
				last.Props = append(last.Props, Property{Key: key, Value: value})
			} else {
				out[current].Props = append(out[current].Props, Property{Key: key, Value: value})
			}
		}
	}
	return out
}

// splitProperty splits a trimmed `- key: value` line at the first colon.
// The value may itself contain colons; only the first one matters.
func splitProperty(line string) (key, value string, ok bool) {
	rest := line[len(propertyPrefix):]
	idx := strings.Index(rest, ":")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(rest[:idx]), strings.TrimSpace(rest[idx+1:]), true
}

// Get returns the value of the first property with the given key.
func (r Record) Get(key string) (string, bool) {
	for _, p := range r.Props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// String returns the property value, or def if the key is absent.
func (r Record) String(key, def string) string {
	if v, ok := r.Get(key); ok {
		return v
	}
	return def
}

// Bool decodes a boolean property. Only the literal "true" is true;
// anything else, including absence, is false.
func (r Record) Bool(key string) bool {
	v, _ := r.Get(key)
	return v == "true"
}

// Int decodes a decimal integer property, returning def on absence or
// parse failure.
func (r Record) Int(key string, def int) int {
	v, ok := r.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Instant decodes an event timestamp, returning nil on absence or parse
// failure.
func (r Record) Instant(key string) *time.Time {
	return r.parseTime(key, instantLayout)
}

// Date decodes a day-only timestamp, returning nil on absence or parse
// failure.
func (r Record) Date(key string) *time.Time {
	return r.parseTime(key, dateLayout)
}

func (r Record) parseTime(key, layout string) *time.Time {
	v, ok := r.Get(key)
	if !ok {
		return nil
	}
	t, err := time.Parse(layout, v)
	if err != nil {
		return nil
	}
	return &t
}

// Ints decodes a comma-separated integer list. The empty string decodes to
// an empty collection; elements that fail to parse are dropped.
func (r Record) Ints(key string) []int {
	v, ok := r.Get(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
