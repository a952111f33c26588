package cssconformance

import "github.com/csssyntax/csssyntax"

func sourceEnd(s *csssyntax.Source) csssyntax.Position {
	return csssyntax.Position{Offset: len(s.Contents)}
}

// ComponentValueListJSON mirrors original_source's component_value_list
// test: the full top-level token sequence, comments dropped.
func ComponentValueListJSON(css string) string {
	src := csssyntax.NewSource(css)
	tokens := csssyntax.FoldBlocks(src, false)
	return tokensToJSON(tokens)
}

// OneComponentValueJSON mirrors original_source's one_component_value
// test: exactly one token, erroring on empty or extra input.
func OneComponentValueJSON(css string) string {
	src := csssyntax.NewSource(css)
	tokens := csssyntax.FoldBlocks(src, false)
	p := csssyntax.NewParser(tokens, sourceEnd(src))
	tok, ok := p.Next()
	if !ok {
		return ErrorToJSON(&csssyntax.ParseError{Kind: csssyntax.ErrEmptyInput})
	}
	if _, ok2 := p.Next(); ok2 {
		return ErrorToJSON(&csssyntax.ParseError{Kind: csssyntax.ErrExtraInput})
	}
	return TokenToJSON(tok)
}

// declItem is the Go analogue of original_source's DeclarationListItem:
// a declaration-list entry is either a Declaration or a nested at-rule.
type declItem struct {
	isAtRule bool
	decl     csssyntax.Declaration
	atRule   csssyntax.RawRule
}

func declItemToJSON(item declItem) string {
	if item.isAtRule {
		return RawRuleToJSON(item.atRule)
	}
	return DeclarationToJSON(item.decl)
}

// atPrelude is declListParser's at-rule prelude carrier; csssyntax's own
// AtRulePrelude can't be used here since its fields are private to that
// package and R there is RawRule, not declItem.
type atPrelude struct {
	name   string
	tokens []csssyntax.Token
}

func collectRestTokens(input *csssyntax.Parser) []csssyntax.Token {
	var out []csssyntax.Token
	for {
		tok, ok := input.NextIncludingWhitespaceAndComments()
		if !ok {
			break
		}
		out = append(out, tok)
	}
	return out
}

// declListParser implements csssyntax.DeclarationParser[declItem] and
// csssyntax.AtRuleParser[atPrelude, declItem] for the declaration_list
// corpus, treating every at-rule as optionally-blocked
// like csssyntax.DefaultRuleParser does for rule lists.
type declListParser struct{}

func (declListParser) ParseValue(name string, input *csssyntax.Parser) (declItem, error) {
	d, err := (csssyntax.DefaultDeclarationParser{}).ParseValue(name, input)
	if err != nil {
		return declItem{}, err
	}
	return declItem{decl: d}, nil
}

func (declListParser) ParseAtRulePrelude(name string, start csssyntax.Position, input *csssyntax.Parser) (csssyntax.AtRuleType[atPrelude, declItem], error) {
	return csssyntax.AtRuleOptionalBlock[atPrelude, declItem](atPrelude{name: name, tokens: collectRestTokens(input)}), nil
}

func (declListParser) ParseAtRuleBlock(prelude atPrelude, start csssyntax.Position, input *csssyntax.Parser) (declItem, error) {
	block := collectRestTokens(input)
	return declItem{isAtRule: true, atRule: csssyntax.RawRule{
		IsAtRule: true, Name: prelude.name, Prelude: prelude.tokens, Block: block, HasBlock: true, Location: start,
	}}, nil
}

func (declListParser) RuleWithoutBlock(prelude atPrelude, start csssyntax.Position) declItem {
	return declItem{isAtRule: true, atRule: csssyntax.RawRule{
		IsAtRule: true, Name: prelude.name, Prelude: prelude.tokens, Location: start,
	}}
}

// DeclarationListJSON mirrors original_source's declaration_list test.
func DeclarationListJSON(css string) string {
	src := csssyntax.NewSource(css)
	tokens := csssyntax.FoldBlocks(src, false)
	p := csssyntax.NewParser(tokens, sourceEnd(src))
	dl := csssyntax.NewDeclarationListParser[declItem, atPrelude](p, declListParser{})
	var items []string
	for {
		item, err, ok := dl.Next()
		if !ok {
			break
		}
		if err != nil {
			items = append(items, ErrorToJSON(err.(*csssyntax.ParseError)))
			continue
		}
		items = append(items, declItemToJSON(item))
	}
	return jsonArray(items...)
}

// OneDeclarationJSON mirrors original_source's one_declaration test.
func OneDeclarationJSON(css string) string {
	src := csssyntax.NewSource(css)
	tokens := csssyntax.FoldBlocks(src, false)
	p := csssyntax.NewParser(tokens, sourceEnd(src))
	d, err := csssyntax.ParseOneDeclaration[csssyntax.Declaration](p, csssyntax.DefaultDeclarationParser{})
	if err != nil {
		return ErrorToJSON(err.(*csssyntax.ParseError))
	}
	return DeclarationToJSON(d)
}

func ruleListDriver(css string, stylesheet bool) string {
	src := csssyntax.NewSource(css)
	tokens := csssyntax.FoldBlocks(src, false)
	p := csssyntax.NewParser(tokens, sourceEnd(src))
	var rl *csssyntax.RuleListParser[csssyntax.RawRule, csssyntax.AtRulePrelude, []csssyntax.Token, csssyntax.DefaultRuleParser]
	if stylesheet {
		rl = csssyntax.NewRuleListParserForStylesheet[csssyntax.RawRule, csssyntax.AtRulePrelude, []csssyntax.Token](p, csssyntax.DefaultRuleParser{})
	} else {
		rl = csssyntax.NewRuleListParserForNestedRule[csssyntax.RawRule, csssyntax.AtRulePrelude, []csssyntax.Token](p, csssyntax.DefaultRuleParser{})
	}
	var items []string
	for {
		item, err, ok := rl.Next()
		if !ok {
			break
		}
		if err != nil {
			items = append(items, ErrorToJSON(err.(*csssyntax.ParseError)))
			continue
		}
		items = append(items, RawRuleToJSON(item))
	}
	return jsonArray(items...)
}

// RuleListJSON mirrors original_source's rule_list test (a nested rule
// list: top-level CDO/CDC are ordinary tokens, not skipped).
func RuleListJSON(css string) string { return ruleListDriver(css, false) }

// StylesheetJSON mirrors original_source's stylesheet test (top-level
// CDO/CDC skipped per spec.md §4.E).
func StylesheetJSON(css string) string { return ruleListDriver(css, true) }

// OneRuleJSON mirrors original_source's one_rule test.
func OneRuleJSON(css string) string {
	src := csssyntax.NewSource(css)
	tokens := csssyntax.FoldBlocks(src, false)
	p := csssyntax.NewParser(tokens, sourceEnd(src))
	r, err := csssyntax.ParseOneRule[csssyntax.RawRule, csssyntax.AtRulePrelude, []csssyntax.Token](p, csssyntax.DefaultRuleParser{})
	if err != nil {
		return ErrorToJSON(err.(*csssyntax.ParseError))
	}
	return RawRuleToJSON(r)
}
