package csssyntax

// Declaration is the concrete Data Model type of spec.md §3: a name/value
// pair with whitespace trimmed from the value and an important flag. It is
// produced by DefaultDeclarationParser; callers with their own semantic
// value representation implement DeclarationParser[D] directly instead.
type Declaration struct {
	Name      string
	Value     []Token
	Important bool
	Location  Position
}

// DeclarationParser is Component E's declaration-value contract, ported
// from original_source/src/rules_and_declarations.rs's DeclarationParser
// trait. ParseValue receives a Parser delimited to end wherever the
// declaration's value should end (before the next `;` or the end of the
// containing block).
type DeclarationParser[D any] interface {
	ParseValue(name string, input *Parser) (D, error)
}

// DefaultDeclarationParser produces plain Declaration values: every
// remaining token in the delimited scope, trimmed of surrounding
// whitespace, with a trailing `!important` (if present) stripped and
// reflected in Important.
type DefaultDeclarationParser struct{}

func (DefaultDeclarationParser) ParseValue(name string, input *Parser) (Declaration, error) {
	start := input.Position()
	tokens := trimWhitespace(collectRest(input))
	value, important := extractImportant(tokens)
	return Declaration{Name: name, Value: value, Important: important, Location: start}, nil
}

func collectRest(input *Parser) []Token {
	var out []Token
	for {
		tok, ok := input.NextIncludingWhitespaceAndComments()
		if !ok {
			break
		}
		out = append(out, tok)
	}
	return out
}

func trimWhitespace(tokens []Token) []Token {
	i, j := 0, len(tokens)
	for i < j && isTrimmable(tokens[i]) {
		i++
	}
	for j > i && isTrimmable(tokens[j-1]) {
		j--
	}
	return tokens[i:j]
}

func isTrimmable(t Token) bool { return t.Kind == Whitespace || t.Kind == Comment }

// extractImportant strips a trailing `!important` (allowing whitespace and
// comments between `!` and the keyword, since that is how Parser.Next
// behaves) from already-trimmed tokens, per spec.md §3's Declaration
// invariant.
func extractImportant(tokens []Token) ([]Token, bool) {
	if len(tokens) == 0 {
		return tokens, false
	}
	last := tokens[len(tokens)-1]
	if last.Kind != Ident || !last.EqIgnoreASCIICase("important") {
		return tokens, false
	}
	i := len(tokens) - 2
	for i >= 0 && isTrimmable(tokens[i]) {
		i--
	}
	if i >= 0 && tokens[i].Kind == Delim && tokens[i].Delim == '!' {
		return trimWhitespace(tokens[:i]), true
	}
	return tokens, false
}

// declarationListEngine is the Go analogue of original_source's
// `P: DeclarationParser<Declaration = I> + AtRuleParser<AtRule = I>`
// bound: a single parser type producing the same item type I from either
// a declaration or an at-rule.
type declarationListEngine[D any, AtP any] interface {
	DeclarationParser[D]
	AtRuleParser[AtP, D]
}

// DeclarationListParser drives declaration-list iteration, spec.md §4.E.
// Construct with NewDeclarationListParser and pull items with Next until
// ok is false.
type DeclarationListParser[D any, AtP any, P declarationListEngine[D, AtP]] struct {
	input  *Parser
	parser P
}

func NewDeclarationListParser[D any, AtP any, P declarationListEngine[D, AtP]](input *Parser, parser P) *DeclarationListParser[D, AtP, P] {
	return &DeclarationListParser[D, AtP, P]{input: input, parser: parser}
}

// Next returns the next declaration or at-rule. ok is false once the
// scope is exhausted; err is non-nil (and item the zero value) for a
// malformed item that was still consumed and resynchronized past, per
// spec.md §7.
func (dl *DeclarationListParser[D, AtP, P]) Next() (item D, err error, ok bool) {
	for {
		start := dl.input.Position()
		tok, ok2 := dl.input.NextIncludingWhitespaceAndComments()
		if !ok2 {
			var zero D
			return zero, nil, false
		}
		switch {
		case tok.Kind == Whitespace || tok.Kind == Comment || tok.Kind == Semicolon:
			continue
		case tok.Kind == Ident:
			name := tok.Text
			result, ferr := ParseUntilAfter(dl.input, DelimSemicolon, func(p *Parser) (D, error) {
				if e := p.ExpectColon(); e != nil {
					var zero D
					return zero, e
				}
				return dl.parser.ParseValue(name, p)
			})
			if ferr != nil {
				var zero D
				return zero, newError(ErrInvalidDeclaration, Range{Start: start, End: dl.input.Position()}), true
			}
			return result, nil, true
		case tok.Kind == AtKeyword:
			result, ferr := parseAtRule[AtP, D](start, tok.Text, dl.input, dl.parser)
			return result, ferr, true
		default:
			ParseUntilAfter(dl.input, DelimSemicolon, func(p *Parser) (struct{}, error) {
				return struct{}{}, errFail
			})
			var zero D
			return zero, newError(ErrInvalidDeclaration, Range{Start: start, End: dl.input.Position()}), true
		}
	}
}

// ParseOneDeclaration parses a single declaration such as the contents of
// an `@supports` parenthesis, per spec.md §4.E.
func ParseOneDeclaration[D any](input *Parser, parser DeclarationParser[D]) (D, error) {
	start := input.Position()
	save := input.savePos()
	_, hasAny := input.Next()
	input.restorePos(save)
	if !hasAny {
		var zero D
		return zero, newError(ErrEmptyInput, Range{Start: start, End: start})
	}
	result, err := ParseEntirely(input, func(p *Parser) (D, error) {
		name, e := p.ExpectIdent()
		if e != nil {
			var zero D
			return zero, e
		}
		if e := p.ExpectColon(); e != nil {
			var zero D
			return zero, e
		}
		return ParseUntilBefore(p, DelimSemicolon, func(p *Parser) (D, error) {
			return parser.ParseValue(name, p)
		})
	})
	if err != nil {
		kind := ErrInvalidDeclaration
		if err == errExtraInput {
			kind = ErrExtraInput
		}
		var zero D
		return zero, newError(kind, Range{Start: start, End: input.Position()})
	}
	return result, nil
}
