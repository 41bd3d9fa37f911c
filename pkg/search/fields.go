package search

const (
	FieldName         = "name"
	FieldTags         = "tags"
	FieldCreatedAt    = "createdAt"
	FieldUpdatedAt    = "updatedAt"
	FieldHeight       = "height"
	FieldWidth        = "width"
	FieldSize         = "size"
	FieldPrivate      = "private"
	FieldPublished    = "published"
	FieldTransparency = "transparency"
)

// Name matches the file name. The value is inserted verbatim, so string
// values must be quoted by the caller, e.g. Name(EqualTo, `"ferris.jpg"`).
func Name(operator Operator, value string) Expression {
	return Where(FieldName, operator, Verbatim(value))
}

// Tags matches against a list of tags; each tag is quoted.
func Tags(operator Operator, tags ...string) Expression {
	return Where(FieldTags, operator, List(tags...))
}

// CreatedAt takes a verbatim value such as `"7d"` or `"2023-01-01"`.
func CreatedAt(operator Operator, value string) Expression {
	return Where(FieldCreatedAt, operator, Verbatim(value))
}

// UpdatedAt takes a verbatim value such as `"7d"` or `"2023-01-01"`.
func UpdatedAt(operator Operator, value string) Expression {
	return Where(FieldUpdatedAt, operator, Verbatim(value))
}

func Height(operator Operator, pixels uint32) Expression {
	return Where(FieldHeight, operator, Uint(uint64(pixels)))
}

func Width(operator Operator, pixels uint32) Expression {
	return Where(FieldWidth, operator, Uint(uint64(pixels)))
}

// Size compares the file size in bytes.
func Size(operator Operator, bytes uint64) Expression {
	return Where(FieldSize, operator, Uint(bytes))
}

// SizeSpecial compares the file size against a unit token such as "1mb".
// The token is quoted.
func SizeSpecial(operator Operator, token string) Expression {
	return Where(FieldSize, operator, Verbatim(quote(token)))
}

func Private(value bool) Expression {
	return Where(FieldPrivate, EqualTo, Bool(value))
}

func Published(value bool) Expression {
	return Where(FieldPublished, EqualTo, Bool(value))
}

func Transparency(value bool) Expression {
	return Where(FieldTransparency, EqualTo, Bool(value))
}
