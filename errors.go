package csssyntax

import "fmt"

// ErrorKind is an abstract error classification per spec.md §7. It never
// carries language-specific detail; the accompanying Range pinpoints the
// offending source text.
type ErrorKind int

const (
	// ErrEmptyInput: a single-item entry point found only whitespace.
	ErrEmptyInput ErrorKind = iota
	// ErrExtraInput: trailing non-whitespace after a single item.
	ErrExtraInput
	// ErrMissingBlock: a qualified rule's prelude reached EOF without a block.
	ErrMissingBlock
	// ErrInvalidDeclaration: no ident/colon, or the value was rejected.
	ErrInvalidDeclaration
	// ErrInvalidImportant: '!' not followed by case-insensitive "important".
	ErrInvalidImportant
	// ErrInvalidAtRule: an at-rule prelude was rejected or mismatched its block expectation.
	ErrInvalidAtRule
	// ErrInvalidQualifiedRule: a qualified rule's prelude or block was rejected.
	ErrInvalidQualifiedRule
	// ErrUnexpectedToken: a list parser step started on a token that can open no rule or declaration.
	ErrUnexpectedToken
)

func (k ErrorKind) String() string {
	switch k {
	case ErrEmptyInput:
		return "empty input"
	case ErrExtraInput:
		return "extra input"
	case ErrMissingBlock:
		return "missing block"
	case ErrInvalidDeclaration:
		return "invalid declaration"
	case ErrInvalidImportant:
		return "invalid !important"
	case ErrInvalidAtRule:
		return "invalid at-rule"
	case ErrInvalidQualifiedRule:
		return "invalid qualified rule"
	case ErrUnexpectedToken:
		return "unexpected token"
	default:
		return "unknown error"
	}
}

// ParseError is the value every list-parser yields for a malformed item; it
// carries the resynchronization range per spec.md §7 ("errors ... surface
// as a failed item carrying a source range").
type ParseError struct {
	Kind  ErrorKind
	Range Range
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d..%d", e.Kind, e.Range.Start.Offset, e.Range.End.Offset)
}

func newError(kind ErrorKind, r Range) *ParseError {
	return &ParseError{Kind: kind, Range: r}
}

// failure is the sentinel used internally by fallible parser steps (the Go
// analogue of Rust's Result<_, ()> used throughout original_source's
// rules_and_declarations.rs, where the failure case carries no payload and
// the caller supplies the range after the fact).
var errFail = fmt.Errorf("css: parse failed")

// errExtraInput is ParseEntirely's internal signal that trailing
// non-whitespace input remains; callers map it to ErrExtraInput.
var errExtraInput = fmt.Errorf("css: extra input")
