package csssyntax

import "testing"

func parseRuleList(css string, stylesheet bool) (items []RawRule, errs []error) {
	src := NewSource(css)
	p := NewParser(FoldBlocks(src, false), Position{Offset: len(src.Contents)})
	var rl *RuleListParser[RawRule, AtRulePrelude, []Token, DefaultRuleParser]
	if stylesheet {
		rl = NewRuleListParserForStylesheet[RawRule, AtRulePrelude, []Token](p, DefaultRuleParser{})
	} else {
		rl = NewRuleListParserForNestedRule[RawRule, AtRulePrelude, []Token](p, DefaultRuleParser{})
	}
	for {
		item, err, ok := rl.Next()
		if !ok {
			return items, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		items = append(items, item)
	}
}

func TestRuleListQualifiedRule(t *testing.T) {
	items, errs := parseRuleList("a { color: red; }", true)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(items) != 1 || items[0].IsAtRule {
		t.Fatalf("expected one qualified rule, got %+v", items)
	}
}

func TestRuleListAtRuleWithoutBlock(t *testing.T) {
	items, errs := parseRuleList("@import url(foo.css);", true)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(items) != 1 || !items[0].IsAtRule || items[0].HasBlock {
		t.Fatalf("expected one blockless at-rule, got %+v", items)
	}
}

func TestRuleListAtRuleWithBlock(t *testing.T) {
	items, errs := parseRuleList("@media screen { a { color: red; } }", true)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(items) != 1 || !items[0].IsAtRule || !items[0].HasBlock {
		t.Fatalf("expected one blocked at-rule, got %+v", items)
	}
}

func TestRuleListStylesheetSkipsCDOCDC(t *testing.T) {
	items, errs := parseRuleList("<!-- a {} -->", true)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(items) != 1 {
		t.Fatalf("expected CDO/CDC to be skipped at the top level, got %+v", items)
	}
}

func TestRuleListNestedRuleRejectsCDOCDC(t *testing.T) {
	items, errs := parseRuleList("<!-- a {} -->", false)
	if len(errs) == 0 {
		t.Fatalf("expected the unskipped trailing CDC to form an invalid qualified rule in a nested context")
	}
	if len(items) != 1 {
		t.Fatalf("expected `<!-- a {}` to parse as one qualified rule with CDO in its prelude, got %+v", items)
	}
}

func TestRuleListQualifiedRuleMissingBlockIsInvalid(t *testing.T) {
	_, errs := parseRuleList("a", true)
	if len(errs) != 1 {
		t.Fatalf("expected one invalid-qualified-rule error, got %v", errs)
	}
	if pe, ok := errs[0].(*ParseError); !ok || pe.Kind != ErrInvalidQualifiedRule {
		t.Errorf("expected ErrInvalidQualifiedRule, got %v", errs[0])
	}
}

func TestRuleListLocationQualifiedRule(t *testing.T) {
	items, errs := parseRuleList("  a {}", true)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(items) != 1 {
		t.Fatalf("expected one rule, got %+v", items)
	}
	if items[0].Location.Offset != 2 {
		t.Errorf("expected qualified rule location at offset 2 (start of 'a'), got %+v", items[0].Location)
	}
}

func TestRuleListLocationAtRuleWithoutBlock(t *testing.T) {
	items, errs := parseRuleList("  @import url(foo.css);", true)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(items) != 1 {
		t.Fatalf("expected one rule, got %+v", items)
	}
	if items[0].Location.Offset != 2 {
		t.Errorf("expected at-rule location at offset 2 (start of '@import'), got %+v", items[0].Location)
	}
}

func TestRuleListLocationAtRuleWithBlock(t *testing.T) {
	items, errs := parseRuleList("  @media screen {}", true)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(items) != 1 {
		t.Fatalf("expected one rule, got %+v", items)
	}
	if items[0].Location.Offset != 2 {
		t.Errorf("expected at-rule location at offset 2 (start of '@media'), got %+v", items[0].Location)
	}
}

func TestParseOneRuleLocation(t *testing.T) {
	src := NewSource("  a {}")
	p := NewParser(FoldBlocks(src, false), Position{Offset: len(src.Contents)})
	rule, err := ParseOneRule[RawRule, AtRulePrelude, []Token](p, DefaultRuleParser{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rule.Location.Offset != 2 {
		t.Errorf("expected rule location at offset 2, got %+v", rule.Location)
	}
}

func TestParseOneRuleValid(t *testing.T) {
	src := NewSource("a { color: red; }")
	p := NewParser(FoldBlocks(src, false), Position{Offset: len(src.Contents)})
	rule, err := ParseOneRule[RawRule, AtRulePrelude, []Token](p, DefaultRuleParser{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rule.IsAtRule {
		t.Errorf("expected a qualified rule, got %+v", rule)
	}
}

func TestParseOneRuleEmpty(t *testing.T) {
	src := NewSource("")
	p := NewParser(FoldBlocks(src, false), Position{Offset: 0})
	_, err := ParseOneRule[RawRule, AtRulePrelude, []Token](p, DefaultRuleParser{})
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != ErrEmptyInput {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestParseOneRuleExtraInput(t *testing.T) {
	src := NewSource("a {} b {}")
	p := NewParser(FoldBlocks(src, false), Position{Offset: len(src.Contents)})
	_, err := ParseOneRule[RawRule, AtRulePrelude, []Token](p, DefaultRuleParser{})
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != ErrExtraInput {
		t.Errorf("expected ErrExtraInput, got %v", err)
	}
}
