package dtparse

import "fmt"

// ErrorKind identifies why a parse failed.
type ErrorKind uint8

const (
	// UnknownToken: text matched no table and could not be skipped.
	UnknownToken ErrorKind = iota + 1
	// AmbiguousOverflow: a value arrived with no open slot to take it.
	AmbiguousOverflow
	// InvalidDayOfMonth: day is 0 or past the end of the resolved month.
	InvalidDayOfMonth
	// InvalidComponentValue: a field is out of range, eg hour 25 or month 13.
	InvalidComponentValue
	// UnresolvedTimezoneName: a zone name no table knows.
	UnresolvedTimezoneName
	// EmptyInput: nothing in the input could be interpreted.
	EmptyInput
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownToken:
		return "unknown token"
	case AmbiguousOverflow:
		return "ambiguous overflow"
	case InvalidDayOfMonth:
		return "invalid day of month"
	case InvalidComponentValue:
		return "invalid component value"
	case UnresolvedTimezoneName:
		return "unresolved timezone name"
	case EmptyInput:
		return "empty input"
	}
	return "unknown error"
}

// skippable kinds are downgraded to skipped text in fuzzy mode.
func (k ErrorKind) skippable() bool {
	return k == UnknownToken || k == AmbiguousOverflow
}

// Sentinels for errors.Is; a *ParseError matches the sentinel of its Kind.
var (
	ErrUnknownToken           = &ParseError{Kind: UnknownToken}
	ErrAmbiguousOverflow      = &ParseError{Kind: AmbiguousOverflow}
	ErrInvalidDayOfMonth      = &ParseError{Kind: InvalidDayOfMonth}
	ErrInvalidComponentValue  = &ParseError{Kind: InvalidComponentValue}
	ErrUnresolvedTimezoneName = &ParseError{Kind: UnresolvedTimezoneName}
	ErrEmptyInput             = &ParseError{Kind: EmptyInput}
)

// ParseError is returned for every failed parse.
type ParseError struct {
	Kind  ErrorKind
	Input string
	// Token is the offending text and Offset its byte position, when the
	// failure is tied to one token. Offset is -1 otherwise.
	Token  string
	Offset int
	Detail string
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Token != "" {
		msg += fmt.Sprintf(" %q at offset %d", e.Token, e.Offset)
	}
	if e.Input != "" {
		msg += fmt.Sprintf(" in %q", e.Input)
	}
	return msg
}

func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, input, detail string) *ParseError {
	return &ParseError{Kind: kind, Input: input, Offset: -1, Detail: detail}
}
