package htmlnode

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Attributes is an insertion-ordered mapping of attribute names to values.
// A nil *Attributes is a valid empty attribute set.
type Attributes struct {
	m *linkedhashmap.Map
}

// NewAttributes creates an attribute set from name/value pairs.
// A trailing name without a value is ignored.
//
//     attrs := NewAttributes("src", "logo.png", "alt", "Logo")
//
func NewAttributes(pairs ...string) *Attributes {
	attrs := &Attributes{m: linkedhashmap.New()}
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs.m.Put(pairs[i], pairs[i+1])
	}
	return attrs
}

// Len returns the number of attributes.
func (attrs *Attributes) Len() int {
	if attrs == nil || attrs.m == nil {
		return 0
	}
	return attrs.m.Size()
}

// Get returns the value of attribute name.
func (attrs *Attributes) Get(name string) (string, bool) {
	if attrs.Len() == 0 {
		return "", false
	}
	v, found := attrs.m.Get(name)
	if !found {
		return "", false
	}
	return v.(string), true
}

// Names returns the attribute names in insertion order.
func (attrs *Attributes) Names() []string {
	if attrs.Len() == 0 {
		return nil
	}
	names := make([]string, 0, attrs.Len())
	for _, k := range attrs.m.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// Each calls f for every attribute, in insertion order.
func (attrs *Attributes) Each(f func(name, value string)) {
	if attrs.Len() == 0 {
		return
	}
	it := attrs.m.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().(string))
	}
}

// copy returns a private copy, so nodes do not share attribute storage with
// their creators.
func (attrs *Attributes) copy() *Attributes {
	if attrs.Len() == 0 {
		return nil
	}
	c := &Attributes{m: linkedhashmap.New()}
	attrs.Each(func(name, value string) {
		c.m.Put(name, value)
	})
	return c
}

// String renders the attributes as they appear within an opening tag,
// each with a leading space. Values are not escaped.
func (attrs *Attributes) String() string {
	var b strings.Builder
	attrs.writeTo(&b)
	return b.String()
}

func (attrs *Attributes) writeTo(b *strings.Builder) {
	attrs.Each(func(name, value string) {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(value)
		b.WriteByte('"')
	})
}
