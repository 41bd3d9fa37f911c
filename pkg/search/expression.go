// Package search builds queries for the media library search language.
//
// Expressions are immutable values. Composition is a left fold with the
// right-hand operand always parenthesised:
//
//	search.Size(search.GreaterThan, 100).And(search.Tags(search.In, "summer-sale"))
//	// size > 100 and (tags IN ["summer-sale"])
//
// No re-association or simplification is ever performed.
package search

import "fmt"

// Predicate is an atomic comparison of a field against a literal.
type Predicate struct {
	Field    string
	Operator Operator
	Value    Value
}

func (p Predicate) String() string {
	value := ""
	if p.Value != nil {
		value = p.Value.render()
	}

	return fmt.Sprintf("%s %s %s", p.Field, p.Operator, value)
}

// Expression wraps the predicate into an atomic Expression.
func (p Predicate) Expression() Expression {
	return Expression{query: p.String()}
}

// Expression is a rendered search query. Its string is final once built.
type Expression struct {
	query string
}

// Where is the generic predicate constructor.
func Where(field string, operator Operator, value Value) Expression {
	return Predicate{Field: field, Operator: operator, Value: value}.Expression()
}

// Raw takes query as an atomic expression as-is. The input is neither
// validated nor escaped: whatever is passed reaches the service verbatim.
func Raw(query string) Expression {
	return Expression{query: query}
}

// And renders "{e} and ({other})".
func (e Expression) And(other Expression) Expression {
	return Expression{query: fmt.Sprintf("%s and (%s)", e.query, other.query)}
}

// Or renders "{e} or ({other})".
func (e Expression) Or(other Expression) Expression {
	return Expression{query: fmt.Sprintf("%s or (%s)", e.query, other.query)}
}

func (e Expression) IsZero() bool { return e.query == "" }

func (e Expression) String() string { return e.query }
