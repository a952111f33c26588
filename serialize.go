package csssyntax

import (
	"strconv"
	"strings"
)

// Serialize writes tokens back out as CSS text such that re-tokenizing the
// result yields an equivalent token sequence, per spec.md §8's round-trip
// property. It inserts the documented protective comment between a
// Delim('/') and a following Comment-shaped or '*'-starting run so that
// `/` `*` never accidentally re-opens as a comment. BadString and BadURL
// are written as a closed string and an empty `url()`, so they
// re-tokenize as String and Url rather than as their bad variants.
func Serialize(tokens []Token) string {
	var b strings.Builder
	serializeInto(&b, tokens)
	return b.String()
}

func serializeInto(b *strings.Builder, tokens []Token) {
	for i, t := range tokens {
		if i > 0 && needsProtectiveComment(tokens[i-1], t) {
			b.WriteString("/**/")
		}
		serializeOne(b, t)
	}
}

func serializeOne(b *strings.Builder, t Token) {
	switch t.Kind {
	case Ident:
		serializeIdent(b, t.Text)
	case AtKeyword:
		b.WriteByte('@')
		serializeIdent(b, t.Text)
	case Hash:
		b.WriteByte('#')
		serializeName(b, t.Text)
	case IDHash:
		b.WriteByte('#')
		serializeIdent(b, t.Text)
	case String:
		serializeString(b, t.Text)
	case Url:
		b.WriteString("url(")
		serializeUnquotedURL(b, t.Text)
		b.WriteByte(')')
	case BadString:
		serializeString(b, t.Text)
	case BadURL:
		b.WriteString("url()")
	case Delim:
		b.WriteRune(t.Delim)
	case Number:
		b.WriteString(t.Numeric.Representation)
	case Percentage:
		b.WriteString(t.Numeric.Representation)
		b.WriteByte('%')
	case Dimension:
		b.WriteString(t.Numeric.Representation)
		serializeIdent(b, t.Text)
	case UnicodeRange:
		serializeUnicodeRange(b, t.RangeStart, t.RangeEnd)
	case Whitespace:
		if t.Text != "" {
			b.WriteString(t.Text)
		} else {
			b.WriteByte(' ')
		}
	case Comment:
		b.WriteString(t.Text)
	case Colon:
		b.WriteByte(':')
	case Semicolon:
		b.WriteByte(';')
	case Comma:
		b.WriteByte(',')
	case IncludeMatch:
		b.WriteString("~=")
	case DashMatch:
		b.WriteString("|=")
	case PrefixMatch:
		b.WriteString("^=")
	case SuffixMatch:
		b.WriteString("$=")
	case SubstringMatch:
		b.WriteString("*=")
	case Column:
		b.WriteString("||")
	case CDO:
		b.WriteString("<!--")
	case CDC:
		b.WriteString("-->")
	case Function:
		serializeIdent(b, t.Text)
		b.WriteByte('(')
		serializeInto(b, t.Children)
		b.WriteByte(')')
	case ParenthesisBlock:
		b.WriteByte('(')
		serializeInto(b, t.Children)
		b.WriteByte(')')
	case SquareBracketBlock:
		b.WriteByte('[')
		serializeInto(b, t.Children)
		b.WriteByte(']')
	case CurlyBracketBlock:
		b.WriteByte('{')
		serializeInto(b, t.Children)
		b.WriteByte('}')
	case CloseParenthesis:
		b.WriteByte(')')
	case CloseSquareBracket:
		b.WriteByte(']')
	case CloseCurlyBracket:
		b.WriteByte('}')
	}
}

// needsProtectiveComment guards the well-known re-parse hazard named in
// spec.md §8: a Delim('/') immediately before something starting with '*'
// would otherwise open a comment. Other adjacent-token combinations that
// could fold into a different token on re-parse are not guarded.
func needsProtectiveComment(prev, next Token) bool {
	if prev.Kind == Delim && prev.Delim == '/' {
		if next.Kind == Comment || next.Kind == SubstringMatch {
			return true
		}
		if next.Kind == Delim && next.Delim == '*' {
			return true
		}
	}
	return false
}

// serializeIdent re-escapes an identifier-shaped string that may contain
// characters requiring an escape to round-trip (a leading digit, for
// instance, which the CSS grammar cannot otherwise express as bare ident
// text).
func serializeIdent(b *strings.Builder, s string) {
	if s != "" && isDigit(s[0]) {
		b.WriteString("\\3")
		b.WriteByte(s[0])
		b.WriteByte(' ')
		s = s[1:]
	}
	serializeName(b, s)
}

// serializeName escapes the characters of s that cannot stand bare in a
// name; unlike serializeIdent it leaves a leading digit as is, which is
// how an unrestricted Hash's name round-trips.
func serializeName(b *strings.Builder, s string) {
	for _, r := range s {
		if isIdentContinue(r) || r == '\\' {
			if r == '\\' {
				b.WriteString("\\\\")
			} else {
				b.WriteRune(r)
			}
			continue
		}
		// Anything else (e.g. a ':' decoded from a source escape by
		// consumeEscape) cannot stand bare in an ident and must round-trip
		// through a hex escape instead, or it would re-tokenize as its own
		// punctuator/delimiter.
		b.WriteByte('\\')
		b.WriteString(strconv.FormatInt(int64(r), 16))
		b.WriteByte(' ')
	}
}

func serializeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString("\\\"")
		case '\\':
			b.WriteString("\\\\")
		case '\n':
			b.WriteString("\\a ")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

// serializeUnquotedURL writes a Url token's value as an unquoted url()
// body, hex-escaping the characters that would end it or make it bad.
func serializeUnquotedURL(b *strings.Builder, s string) {
	for _, r := range s {
		if r == '(' || r == ')' || r == '"' || r == '\'' || r == '\\' || isWhitespace(r) || isNonPrintable(r) {
			b.WriteByte('\\')
			b.WriteString(strconv.FormatInt(int64(r), 16))
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
}

func serializeUnicodeRange(b *strings.Builder, start, end uint32) {
	b.WriteString("U+")
	b.WriteString(strconv.FormatUint(uint64(start), 16))
	if end != start {
		b.WriteByte('-')
		b.WriteString(strconv.FormatUint(uint64(end), 16))
	}
}
