// Package param holds the ordered name/value pairs that make up the
// parameters of a request, together with the
// application/x-www-form-urlencoded codec used for query strings and
// URL-encoded bodies.
package param

import (
	"fmt"
	"net/url"
	"strings"
)

// Parameter is a single name/value pair. An absent value is represented by
// the empty string.
type Parameter struct {
	Name  string
	Value string
}

func (p Parameter) String() string {
	return fmt.Sprintf("%s=%s", p.Name, p.Value)
}

// List is an ordered sequence of parameters. Duplicate names and empty
// values are allowed and insertion order is preserved.
type List []Parameter

// Of builds a list from alternating names and values. A trailing name
// without a value gets the empty value.
func Of(pairs ...string) List {
	l := make(List, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		p := Parameter{Name: pairs[i]}
		if i+1 < len(pairs) {
			p.Value = pairs[i+1]
		}
		l = append(l, p)
	}
	return l
}

// Add appends a parameter to the end of the list.
func (l *List) Add(name, value string) {
	*l = append(*l, Parameter{Name: name, Value: value})
}

// Get returns the value of the first parameter with the given name.
func (l List) Get(name string) (string, bool) {
	for _, p := range l {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// GetAll returns the values of every parameter with the given name, in order.
func (l List) GetAll(name string) []string {
	var values []string
	for _, p := range l {
		if p.Name == name {
			values = append(values, p.Value)
		}
	}
	return values
}

func (l List) Has(name string) bool {
	_, ok := l.Get(name)
	return ok
}

// Names returns the distinct names in order of first occurrence.
func (l List) Names() []string {
	seen := make(map[string]bool, len(l))
	var names []string
	for _, p := range l {
		if !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	}
	return names
}

// Clone returns a copy that shares no storage with l. The copy is never nil.
func (l List) Clone() List {
	c := make(List, len(l))
	copy(c, l)
	return c
}

// Equal reports whether both lists hold the same pairs in the same order.
// A nil list equals an empty one.
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// Values converts the list to url.Values. Ordering across different names
// is lost; ordering within a name is kept.
func (l List) Values() url.Values {
	v := make(url.Values, len(l))
	for _, p := range l {
		v.Add(p.Name, p.Value)
	}
	return v
}

// String renders the list one parameter per line in the form
//
//	Parameters:
//	  'name': 'value'
func (l List) String() string {
	var b strings.Builder
	b.WriteString("Parameters: \n")
	for _, p := range l {
		fmt.Fprintf(&b, "  '%s': '%s'\n", p.Name, p.Value)
	}
	return b.String()
}
