package search

import (
	"strconv"
	"strings"
)

// Value is a literal on the right-hand side of a predicate.
// The set of implementations is closed: use Int, Uint, Bool, Verbatim or List.
type Value interface {
	render() string
}

type (
	intValue      int64
	uintValue     uint64
	boolValue     bool
	verbatimValue string
	listValue     []string
)

// Int renders as a bare signed integer.
func Int(v int64) Value { return intValue(v) }

// Uint renders as a bare unsigned integer.
func Uint(v uint64) Value { return uintValue(v) }

// Bool renders as true or false, unquoted.
func Bool(v bool) Value { return boolValue(v) }

// Verbatim renders exactly as given. Quoting string values is the caller's
// job, e.g. Verbatim(`"7d"`).
func Verbatim(v string) Value { return verbatimValue(v) }

// List renders as ["a","b"], each element wrapped in double quotes.
func List(values ...string) Value {
	cp := make([]string, len(values))
	copy(cp, values)

	return listValue(cp)
}

func (v intValue) render() string      { return strconv.FormatInt(int64(v), 10) }
func (v uintValue) render() string     { return strconv.FormatUint(uint64(v), 10) }
func (v boolValue) render() string     { return strconv.FormatBool(bool(v)) }
func (v verbatimValue) render() string { return string(v) }

func (v listValue) render() string {
	quoted := make([]string, len(v))
	for index, item := range v {
		quoted[index] = quote(item)
	}

	return "[" + strings.Join(quoted, ",") + "]"
}

func quote(s string) string {
	return `"` + s + `"`
}
