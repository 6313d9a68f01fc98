package option

import (
	"errors"
	"strconv"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if an error occurs.
type Maybe map[MaybeOption]interface{}

// Of is a type used for matching of optional types.
// It will first try to match concrete values, and in case of no match will
// then try a Maybe match.
type Of map[interface{}]interface{}

// Type is a type for optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match will do a standard matching of o against choices.
//
// choices are expected to be a map type, where keys of the map are either
// concrete values for o, or of type MaybeOption. Values of the map may be
// of any type. Values of type
//
//     func(interface{}) (interface{}, error)
//
// are called with o as argument and their result is returned.
//
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

func (of Of) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		if expr, ok := of[None]; ok {
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
		return value, err
	}
	err = ErrCannotMatchValue
	matched := false
	for k, expr := range of {
		if _, isLabel := k.(MaybeOption); isLabel {
			continue
		}
		if o.Equals(k) {
			matched = true
			value, err = valueOrExpr(expr, o, Some)
			break
		}
	}
	if !matched {
		if expr, ok := of[Some]; ok {
			value, err = valueOrExpr(expr, o, Some)
		}
	}
	if err != nil {
		tracer().Debugf("option match: %v", err)
		if expr, ok := of[Error]; ok {
			value, err = valueOrExpr(expr, o, Error)
		}
	}
	return value, err
}

func (maybe Maybe) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		if expr, ok := maybe[None]; ok {
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
		return value, err
	}
	if expr, ok := maybe[Some]; ok {
		value, err = valueOrExpr(expr, o, Some)
	}
	if err != nil {
		tracer().Debugf("option match: %v", err)
		if expr, ok := maybe[Error]; ok {
			value, err = valueOrExpr(expr, o, Error)
		}
	}
	return value, err
}

func valueOrExpr(op interface{}, value Type, t MaybeOption) (interface{}, error) {
	switch x := op.(type) {
	case func(interface{}, MaybeOption) (interface{}, error):
		return x(value, t)
	case func(interface{}) (interface{}, error):
		return x(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//     _, err := o.Match(option.Of{
//          option.None: …,
//          "script":    option.Fail(errors.New("script is illegal")),
//          option.Some: …,
//     })
//
func Fail(err error) func(interface{}) (interface{}, error) {
	localErr := err
	return func(interface{}) (interface{}, error) {
		return nil, localErr
	}
}

// Safe wraps a Match's return values and drops the error value.
func Safe(x interface{}, err error) interface{} {
	return x
}

// --- StringT ---------------------------------------------------------------

// StringT is an option type for strings. The zero value is unset.
type StringT struct {
	s   string
	set bool
}

// SomeString creates an optional string with an initial value of s.
func SomeString(s string) StringT {
	return StringT{s: s, set: true}
}

// String creates an optional string without a value.
func String() StringT {
	return StringT{}
}

// NonEmpty creates an optional string which is unset for s = "".
func NonEmpty(s string) StringT {
	if s == "" {
		return StringT{}
	}
	return SomeString(s)
}

func (o StringT) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

func (o StringT) Equals(other interface{}) bool {
	switch s := other.(type) {
	case string:
		return o.set && o.s == s
	case StringT:
		return o == s
	}
	return false
}

// Unwrap returns the string value, or "" if o is unset.
func (o StringT) Unwrap() string {
	return o.s
}

// IsNone returns true if o is unset.
func (o StringT) IsNone() bool {
	return !o.set
}

func (o StringT) String() string {
	if o.IsNone() {
		return "String.None"
	}
	return strconv.Quote(o.s)
}

var _ Type = StringT{}
