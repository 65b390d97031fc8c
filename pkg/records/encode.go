package records

import (
	"strconv"
	"strings"
	"time"
)

// builder assembles the textual form of a document: an optional `# ` title
// followed by records separated by blank lines. It is the inverse of Parse
// for everything the grammar can express.
type builder struct {
	sb strings.Builder
}

func newBuilder(title string) *builder {
	b := &builder{}
	if title != "" {
		b.sb.WriteString("# " + title + "\n\n")
	}
	return b
}

func (b *builder) record(heading string) {
	b.sb.WriteString(topHeadingPrefix + heading + "\n")
}

func (b *builder) child(heading string) {
	b.sb.WriteString("\n" + nestedHeadingPrefix + heading + "\n")
}

func (b *builder) prop(key, value string) {
	b.sb.WriteString(propertyPrefix + key + ": " + value + "\n")
}

func (b *builder) boolProp(key string, v bool) {
	b.prop(key, strconv.FormatBool(v))
}

func (b *builder) intProp(key string, v int) {
	b.prop(key, strconv.Itoa(v))
}

// optStrProp omits the line entirely when the value is empty; absent
// optional fields are never emitted as empty strings.
func (b *builder) optStrProp(key, v string) {
	if v != "" {
		b.prop(key, v)
	}
}

func (b *builder) instantProp(key string, t time.Time) {
	b.prop(key, t.Format(instantLayout))
}

func (b *builder) optInstantProp(key string, t *time.Time) {
	if t != nil {
		b.instantProp(key, *t)
	}
}

func (b *builder) optDateProp(key string, t *time.Time) {
	if t != nil {
		b.prop(key, t.Format(dateLayout))
	}
}

func (b *builder) intsProp(key string, vs []int) {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	b.prop(key, strings.Join(parts, ","))
}

// endRecord writes the blank-line record separator.
func (b *builder) endRecord() {
	b.sb.WriteString("\n")
}

func (b *builder) text() string {
	return b.sb.String()
}
