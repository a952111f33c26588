package csssyntax

// atRuleKind tags which of the three AtRuleType variants (spec.md §4.E)
// parsePrelude returned.
type atRuleKind int

const (
	atRuleWithoutBlock atRuleKind = iota
	atRuleWithBlock
	atRuleOptionalBlock
)

// AtRuleType is the return value of AtRuleParser.ParseAtRulePrelude,
// ported from original_source's AtRuleType<P, R> enum.
type AtRuleType[P any, R any] struct {
	kind    atRuleKind
	prelude P
	rule    R
}

// AtRuleWithoutBlock: the at-rule is expected to end with `;`. The value
// is the finished at-rule.
func AtRuleWithoutBlock[P any, R any](rule R) AtRuleType[P, R] {
	return AtRuleType[P, R]{kind: atRuleWithoutBlock, rule: rule}
}

// AtRuleWithBlock: the at-rule is expected to have a `{ ... }` block. The
// value is the prelude's intermediate representation.
func AtRuleWithBlock[P any, R any](prelude P) AtRuleType[P, R] {
	return AtRuleType[P, R]{kind: atRuleWithBlock, prelude: prelude}
}

// AtRuleOptionalBlock: the at-rule may end with `;` or have a block.
func AtRuleOptionalBlock[P any, R any](prelude P) AtRuleType[P, R] {
	return AtRuleType[P, R]{kind: atRuleOptionalBlock, prelude: prelude}
}

// AtRuleParser is Component E's at-rule contract, ported from
// original_source's AtRuleParser trait. start is the position of the
// at-keyword itself, passed to every method so implementations can stash
// it as the produced rule's location (spec.md:50's "location of the
// start", matching original_source/ast.rs's AtRule.location) without
// having to thread it through a caller-defined prelude type by hand.
// Embed RejectRules[P, R] to get the "reject everything" default Rust
// expresses via default trait methods.
type AtRuleParser[P any, R any] interface {
	ParseAtRulePrelude(name string, start Position, input *Parser) (AtRuleType[P, R], error)
	ParseAtRuleBlock(prelude P, start Position, input *Parser) (R, error)
	RuleWithoutBlock(prelude P, start Position) R
}

// QualifiedRuleParser is Component E's qualified-rule contract, ported
// from original_source's QualifiedRuleParser trait. start is the position
// of the rule's first prelude token, for the same reason as
// AtRuleParser's start parameter.
type QualifiedRuleParser[P any, R any] interface {
	ParseQualifiedRulePrelude(start Position, input *Parser) (P, error)
	ParseQualifiedRuleBlock(prelude P, start Position, input *Parser) (R, error)
}

// RejectRules is the idiomatic Go substitute for Rust's default trait
// methods (`Err(())`/panic-on-override-required): embed it in a parser
// type that only needs one of AtRuleParser/QualifiedRuleParser to satisfy
// the other for free, e.g. a DeclarationListParser whose grammar has no
// real at-rules.
type RejectRules[P any, R any] struct{}

func (RejectRules[P, R]) ParseAtRulePrelude(name string, start Position, input *Parser) (AtRuleType[P, R], error) {
	var zero AtRuleType[P, R]
	return zero, errFail
}

func (RejectRules[P, R]) ParseAtRuleBlock(prelude P, start Position, input *Parser) (R, error) {
	var zero R
	return zero, errFail
}

func (RejectRules[P, R]) RuleWithoutBlock(prelude P, start Position) R {
	panic("css: RuleWithoutBlock must be overridden once ParseAtRulePrelude returns AtRuleOptionalBlock")
}

func (RejectRules[P, R]) ParseQualifiedRulePrelude(start Position, input *Parser) (P, error) {
	var zero P
	return zero, errFail
}

func (RejectRules[P, R]) ParseQualifiedRuleBlock(prelude P, start Position, input *Parser) (R, error) {
	var zero R
	return zero, errFail
}

// ruleListEngine mirrors original_source's
// `P: QualifiedRuleParser<QualifiedRule = R> + AtRuleParser<AtRule = R>`.
type ruleListEngine[R any, AtP any, QP any] interface {
	AtRuleParser[AtP, R]
	QualifiedRuleParser[QP, R]
}

// RuleListParser drives rule-list iteration, spec.md §4.E. Construct with
// NewRuleListParserForStylesheet (skips top-level CDO/CDC) or
// NewRuleListParserForNestedRule.
type RuleListParser[R any, AtP any, QP any, P ruleListEngine[R, AtP, QP]] struct {
	input        *Parser
	parser       P
	isStylesheet bool
}

func NewRuleListParserForStylesheet[R any, AtP any, QP any, P ruleListEngine[R, AtP, QP]](input *Parser, parser P) *RuleListParser[R, AtP, QP, P] {
	return &RuleListParser[R, AtP, QP, P]{input: input, parser: parser, isStylesheet: true}
}

func NewRuleListParserForNestedRule[R any, AtP any, QP any, P ruleListEngine[R, AtP, QP]](input *Parser, parser P) *RuleListParser[R, AtP, QP, P] {
	return &RuleListParser[R, AtP, QP, P]{input: input, parser: parser, isStylesheet: false}
}

func (rl *RuleListParser[R, AtP, QP, P]) Next() (item R, err error, ok bool) {
	for {
		start := rl.input.Position()
		tok, ok2 := rl.input.NextIncludingWhitespaceAndComments()
		if !ok2 {
			var zero R
			return zero, nil, false
		}
		switch {
		case tok.Kind == Whitespace || tok.Kind == Comment:
			continue
		case (tok.Kind == CDO || tok.Kind == CDC) && rl.isStylesheet:
			continue
		case tok.Kind == AtKeyword:
			result, ferr := parseAtRule[AtP, R](start, tok.Text, rl.input, rl.parser)
			return result, ferr, true
		default:
			rl.input.Reset(start)
			result, ferr := parseQualifiedRule[QP, R](start, rl.input, rl.parser)
			if ferr != nil {
				var zero R
				return zero, newError(ErrInvalidQualifiedRule, Range{Start: start, End: rl.input.Position()}), true
			}
			return result, nil, true
		}
	}
}

// parseAtRule implements spec.md §4.E's at-rule pipeline, shared by
// DeclarationListParser, RuleListParser and ParseOneRule, ported from
// original_source's parse_at_rule.
func parseAtRule[P any, R any](start Position, name string, input *Parser, parser AtRuleParser[P, R]) (R, error) {
	result, preludeErr := ParseUntilBefore(input, DelimSemicolon|DelimCurlyBracketBlock, func(p *Parser) (AtRuleType[P, R], error) {
		return parser.ParseAtRulePrelude(name, start, p)
	})
	if preludeErr != nil {
		endPos := input.Position()
		input.Next() // consume the ';' or '{...}' that stopped the prelude, if any
		var zero R
		return zero, newError(ErrInvalidAtRule, Range{Start: start, End: endPos})
	}
	switch result.kind {
	case atRuleWithoutBlock:
		tok, ok := input.Next()
		if !ok || tok.Kind == Semicolon {
			return result.rule, nil
		}
		var zero R
		return zero, newError(ErrInvalidAtRule, Range{Start: start, End: input.Position()})

	case atRuleWithBlock:
		tok, ok := input.Next()
		if ok && tok.Kind == CurlyBracketBlock {
			r, err := ParseNestedBlock(input, tok, func(p *Parser) (R, error) {
				return parser.ParseAtRuleBlock(result.prelude, start, p)
			})
			if err != nil {
				var zero R
				return zero, newError(ErrInvalidAtRule, Range{Start: start, End: input.Position()})
			}
			return r, nil
		}
		var zero R
		return zero, newError(ErrInvalidAtRule, Range{Start: start, End: input.Position()})

	default: // atRuleOptionalBlock
		tok, ok := input.Next()
		if !ok || tok.Kind == Semicolon {
			return parser.RuleWithoutBlock(result.prelude, start), nil
		}
		if tok.Kind == CurlyBracketBlock {
			r, err := ParseNestedBlock(input, tok, func(p *Parser) (R, error) {
				return parser.ParseAtRuleBlock(result.prelude, start, p)
			})
			if err != nil {
				var zero R
				return zero, newError(ErrInvalidAtRule, Range{Start: start, End: input.Position()})
			}
			return r, nil
		}
		var zero R
		return zero, newError(ErrInvalidAtRule, Range{Start: start, End: input.Position()})
	}
}

// parseQualifiedRule implements spec.md §4.E's qualified-rule pipeline,
// ported from original_source's parse_qualified_rule: the `{` is always
// consumed once reached, even if the prelude failed, so that a failing
// style rule still resynchronizes past its own block.
func parseQualifiedRule[P any, R any](start Position, input *Parser, parser QualifiedRuleParser[P, R]) (R, error) {
	prelude, preludeErr := ParseUntilBefore(input, DelimCurlyBracketBlock, func(p *Parser) (P, error) {
		return parser.ParseQualifiedRulePrelude(start, p)
	})
	tok, ok := input.Next()
	if !ok || tok.Kind != CurlyBracketBlock {
		var zero R
		return zero, errFail
	}
	if preludeErr != nil {
		var zero R
		return zero, errFail
	}
	return ParseNestedBlock(input, tok, func(p *Parser) (R, error) {
		return parser.ParseQualifiedRuleBlock(prelude, start, p)
	})
}

// ParseOneRule parses a single rule, e.g. for an insertRule-style API,
// per spec.md §4.E.
func ParseOneRule[R any, AtP any, QP any](input *Parser, parser ruleListEngine[R, AtP, QP]) (R, error) {
	topStart := input.Position()
	result, err := ParseEntirely(input, func(p *Parser) (R, error) {
		for {
			start := p.Position()
			tok, ok := p.NextIncludingWhitespaceAndComments()
			if !ok {
				var zero R
				return zero, newError(ErrEmptyInput, Range{Start: start, End: start})
			}
			switch {
			case tok.Kind == Whitespace || tok.Kind == Comment:
				continue
			case tok.Kind == AtKeyword:
				return parseAtRule[AtP, R](start, tok.Text, p, parser)
			default:
				p.Reset(start)
				return parseQualifiedRule[QP, R](start, p, parser)
			}
		}
	})
	if err == errExtraInput {
		var zero R
		return zero, newError(ErrExtraInput, Range{Start: topStart, End: input.Position()})
	}
	return result, err
}

// RawRule is the concrete Data Model type for AtRule/QualifiedRule from
// spec.md §3, produced by DefaultRuleParser for callers that only need
// syntactic structure with no semantic prelude/value interpretation.
type RawRule struct {
	IsAtRule bool
	Name     string // at-rule name; empty for a qualified rule
	Prelude  []Token
	Block    []Token
	HasBlock bool
	Location Position // the at-keyword's (or, for a qualified rule, the prelude's first token's) start position
}

// AtRulePrelude is DefaultRuleParser's intermediate at-rule prelude
// representation: the raw tokens plus the at-keyword name, since
// RuleWithoutBlock/ParseAtRuleBlock need the name but are not passed it
// again after ParseAtRulePrelude.
type AtRulePrelude struct {
	name   string
	tokens []Token
}

// DefaultRuleParser implements both AtRuleParser and QualifiedRuleParser
// by collecting preludes and blocks verbatim into RawRule, treating every
// at-rule as optionally-blocked (spec.md §9's OptionalBlock+EOF note
// applies directly here).
type DefaultRuleParser struct{}

func (DefaultRuleParser) ParseAtRulePrelude(name string, start Position, input *Parser) (AtRuleType[AtRulePrelude, RawRule], error) {
	return AtRuleOptionalBlock[AtRulePrelude, RawRule](AtRulePrelude{name: name, tokens: collectRest(input)}), nil
}

func (DefaultRuleParser) ParseAtRuleBlock(prelude AtRulePrelude, start Position, input *Parser) (RawRule, error) {
	return RawRule{IsAtRule: true, Name: prelude.name, Prelude: prelude.tokens, Block: collectRest(input), HasBlock: true, Location: start}, nil
}

func (DefaultRuleParser) RuleWithoutBlock(prelude AtRulePrelude, start Position) RawRule {
	return RawRule{IsAtRule: true, Name: prelude.name, Prelude: prelude.tokens, Location: start}
}

func (DefaultRuleParser) ParseQualifiedRulePrelude(start Position, input *Parser) ([]Token, error) {
	return collectRest(input), nil
}

func (DefaultRuleParser) ParseQualifiedRuleBlock(prelude []Token, start Position, input *Parser) (RawRule, error) {
	return RawRule{Prelude: prelude, Block: collectRest(input), HasBlock: true, Location: start}, nil
}
