package sqlgen

import (
	"fmt"
	"strings"
)

// Predicate accumulates AND-joined conditions and their bound arguments.
//
// Each ? in a condition is rewritten to the next $n. The counter tracks bound
// arguments only, so conditions without markers do not shift later indices.
type Predicate struct {
	conditions []string
	args       []interface{}
	err        error
}

// NewPredicate returns an empty predicate
func NewPredicate() *Predicate {
	return &Predicate{}
}

// Where appends one condition. expr must contain exactly len(args) ? markers.
func (p *Predicate) Where(expr string, args ...interface{}) *Predicate {
	if p.err != nil {
		return p
	}
	if n := strings.Count(expr, "?"); n != len(args) {
		p.err = fmt.Errorf("condition %q has %d placeholders but %d args", expr, n, len(args))
		return p
	}

	var b strings.Builder
	next := len(p.args) + 1
	for _, r := range expr {
		if r == '?' {
			b.WriteString(placeholder(next))
			next++
			continue
		}
		b.WriteRune(r)
	}

	p.conditions = append(p.conditions, b.String())
	p.args = append(p.args, args...)
	return p
}

// IsEmpty reports whether no condition was added
func (p *Predicate) IsEmpty() bool {
	return len(p.conditions) == 0
}

// Conditions returns the rendered conditions in the order they were added
func (p *Predicate) Conditions() []string {
	return append([]string(nil), p.conditions...)
}

// Args returns the bound arguments; Args()[i] binds to $(i+1).
func (p *Predicate) Args() []interface{} {
	return append([]interface{}(nil), p.args...)
}

// Build renders the WHERE clause. An empty predicate renders as "" so the
// enclosing statement reads the whole collection.
func (p *Predicate) Build() (string, []interface{}, error) {
	if p.err != nil {
		return "", nil, p.err
	}
	if p.IsEmpty() {
		return "", nil, nil
	}
	return "WHERE " + strings.Join(p.conditions, " AND "), p.Args(), nil
}
