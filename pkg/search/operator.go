package search

// Operator is a comparison operator of the search query language.
// The constant values are the textual forms the service expects.
type Operator string

const (
	EqualTo              Operator = "="
	NotEqualTo           Operator = "NOT ="
	Colon                Operator = ":"
	In                   Operator = "IN"
	NotIn                Operator = "NOT IN"
	GreaterThan          Operator = ">"
	GreaterThanOrEqualTo Operator = ">="
	LessThan             Operator = "<"
	LessThanOrEqualTo    Operator = "<="
)

// Operators lists every supported operator in declaration order.
func Operators() []Operator {
	return []Operator{
		EqualTo,
		NotEqualTo,
		Colon,
		In,
		NotIn,
		GreaterThan,
		GreaterThanOrEqualTo,
		LessThan,
		LessThanOrEqualTo,
	}
}

func (o Operator) String() string { return string(o) }
