package csssyntax

import "sort"

// Delimiter is the bitset of stop tokens described in spec.md §4.D and §9
// ("Delimiter set as a bitset"). Exactly the four kinds spec.md names may
// appear in a set.
type Delimiter uint8

const (
	DelimSemicolon Delimiter = 1 << iota
	DelimBang
	DelimComma
	DelimCurlyBracketBlock
)

// frame is one level of the parser's scope stack (spec.md §9:
// "conceptually a stack of (cursor_limit, delimiter_mask) frames"). tokens
// is the flat sibling slice currently being walked — either the top-level
// component value sequence or a block's Children — and end is the source
// position immediately following the last token, used both when the scope
// is exhausted and as the stand-in SourcePosition for an empty scope.
type frame struct {
	tokens []Token
	pos    int
	delims Delimiter
	end    Position
}

// Parser is Component D: a token-stream view with a dynamic delimiter set,
// the central re-entrancy abstraction of spec.md §4.D.
type Parser struct {
	frames []frame
}

// NewParser wraps tokens (already folded by FoldBlocks) for parsing, with
// end marking the source position just past the last token (for an empty
// or fully-consumed scope).
func NewParser(tokens []Token, end Position) *Parser {
	return &Parser{frames: []frame{{tokens: tokens, end: end}}}
}

func (p *Parser) curFrame() *frame { return &p.frames[len(p.frames)-1] }

// Position returns the SourcePosition of the parser's current location,
// spec.md §4.D.
func (p *Parser) Position() Position {
	fr := p.curFrame()
	if fr.pos < len(fr.tokens) {
		return fr.tokens[fr.pos].Range.Start
	}
	return fr.end
}

// Reset restores a previously obtained Position within the current scope.
// O(log n) via binary search over the scope's tokens, since (unlike a
// lazy byte-cursor tokenizer) this engine pre-folds tokens into a tree and
// a Position is a byte offset rather than a direct index.
func (p *Parser) Reset(pos Position) {
	fr := p.curFrame()
	if pos.Offset >= fr.end.Offset {
		fr.pos = len(fr.tokens)
		return
	}
	fr.pos = sort.Search(len(fr.tokens), func(i int) bool {
		return fr.tokens[i].Range.Start.Offset >= pos.Offset
	})
}

func (p *Parser) savePos() int      { return p.curFrame().pos }
func (p *Parser) restorePos(i int)  { p.curFrame().pos = i }
func (p *Parser) delims() Delimiter { return p.curFrame().delims }
func (p *Parser) setDelims(d Delimiter) { p.curFrame().delims = d }

func delimiterFor(t Token) Delimiter {
	switch {
	case t.Kind == Semicolon:
		return DelimSemicolon
	case t.Kind == Delim && t.Delim == '!':
		return DelimBang
	case t.Kind == Comma:
		return DelimComma
	case t.Kind == CurlyBracketBlock:
		return DelimCurlyBracketBlock
	default:
		return 0
	}
}

// nextToken is the shared implementation of Next and
// NextIncludingWhitespaceAndComments: it returns the next token in the
// current scope, skipping whitespace/comments unless includeWS is set,
// and returns ok=false without consuming anything if the scope is
// exhausted or the next significant token matches an active delimiter —
// "the parser does not consume the delimiter itself" (spec.md §4.D).
func (p *Parser) nextToken(includeWS bool) (Token, bool) {
	fr := p.curFrame()
	i := fr.pos
	for i < len(fr.tokens) {
		tok := fr.tokens[i]
		if !includeWS && (tok.Kind == Whitespace || tok.Kind == Comment) {
			i++
			continue
		}
		if delimiterFor(tok)&fr.delims != 0 {
			return Token{}, false
		}
		fr.pos = i + 1
		return tok, true
	}
	return Token{}, false
}

// Next advances past whitespace and comments and returns the next token,
// or ok=false at a delimiter or end of scope.
func (p *Parser) Next() (Token, bool) { return p.nextToken(false) }

// NextIncludingWhitespaceAndComments is Next without skipping whitespace
// or comments, spec.md §4.D.
func (p *Parser) NextIncludingWhitespaceAndComments() (Token, bool) { return p.nextToken(true) }

// Try runs f; on failure the parser position is restored, on success the
// new position is kept — spec.md §8's monotonic-on-success,
// unchanged-on-failure property.
func Try[T any](p *Parser, f func(*Parser) (T, error)) (T, error) {
	save := p.savePos()
	result, err := f(p)
	if err != nil {
		p.restorePos(save)
	}
	return result, err
}

// ParseUntilBefore runs f with the active delimiter set unioned with
// delims, then advances the scope's cursor up to (not past) the first
// such delimiter regardless of f's outcome, per spec.md §4.D.
func ParseUntilBefore[R any](p *Parser, delims Delimiter, f func(*Parser) (R, error)) (R, error) {
	old := p.delims()
	p.setDelims(old | delims)
	result, err := f(p)
	for {
		if _, ok := p.NextIncludingWhitespaceAndComments(); !ok {
			break
		}
	}
	p.setDelims(old)
	return result, err
}

// ParseUntilAfter is ParseUntilBefore plus consuming the delimiter token
// itself (a no-op at end of scope).
func ParseUntilAfter[R any](p *Parser, delims Delimiter, f func(*Parser) (R, error)) (R, error) {
	result, err := ParseUntilBefore(p, delims, f)
	fr := p.curFrame()
	if fr.pos < len(fr.tokens) {
		fr.pos++
	}
	return result, err
}

// ParseNestedBlock runs f over the interior of block (which must be one
// of the block-typed Kinds) with an empty delimiter set, per spec.md
// §4.D. The outer scope's cursor has already moved past block by the time
// it was returned from Next, so no further outer advancement is needed.
func ParseNestedBlock[R any](p *Parser, block Token, f func(*Parser) (R, error)) (R, error) {
	end := block.Range.End
	if n := len(block.Children); n > 0 {
		end = block.Children[n-1].Range.End
	}
	p.frames = append(p.frames, frame{tokens: block.Children, end: end})
	result, err := f(p)
	p.frames = p.frames[:len(p.frames)-1]
	return result, err
}

// ParseEntirely runs f and then requires the scope to be at its end; any
// remaining non-whitespace/non-comment input is reported as extra input.
func ParseEntirely[R any](p *Parser, f func(*Parser) (R, error)) (R, error) {
	result, err := f(p)
	if err != nil {
		var zero R
		return zero, err
	}
	if _, ok := p.Next(); ok {
		var zero R
		return zero, errExtraInput
	}
	return result, nil
}

// ExpectIdent requires the next token to be an Ident and returns its text.
func (p *Parser) ExpectIdent() (string, error) {
	save := p.savePos()
	tok, ok := p.Next()
	if !ok || tok.Kind != Ident {
		p.restorePos(save)
		return "", errFail
	}
	return tok.Text, nil
}

// ExpectIdentMatching requires the next token to be an Ident equal to s,
// ASCII case-insensitively, per spec.md §9's case-handling rule.
func (p *Parser) ExpectIdentMatching(s string) error {
	save := p.savePos()
	tok, ok := p.Next()
	if !ok || tok.Kind != Ident || !tok.EqIgnoreASCIICase(s) {
		p.restorePos(save)
		return errFail
	}
	return nil
}

// ExpectColon requires the next token to be a Colon.
func (p *Parser) ExpectColon() error {
	save := p.savePos()
	tok, ok := p.Next()
	if !ok || tok.Kind != Colon {
		p.restorePos(save)
		return errFail
	}
	return nil
}

// ExpectDelim requires the next token to be Delim(r).
func (p *Parser) ExpectDelim(r rune) error {
	save := p.savePos()
	tok, ok := p.Next()
	if !ok || tok.Kind != Delim || tok.Delim != r {
		p.restorePos(save)
		return errFail
	}
	return nil
}

// ExpectComma requires the next token to be a Comma.
func (p *Parser) ExpectComma() error {
	save := p.savePos()
	tok, ok := p.Next()
	if !ok || tok.Kind != Comma {
		p.restorePos(save)
		return errFail
	}
	return nil
}
