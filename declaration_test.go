package csssyntax

import "testing"

func newParser(css string) *Parser {
	src := NewSource(css)
	tokens := FoldBlocks(src, false)
	return NewParser(tokens, Position{Offset: len(src.Contents)})
}

func TestDefaultDeclarationParserTrimsWhitespaceAndImportant(t *testing.T) {
	p := newParser(" red  !  important ")
	decl, err := DefaultDeclarationParser{}.ParseValue("color", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decl.Important {
		t.Error("expected Important to be true")
	}
	if len(decl.Value) != 1 || decl.Value[0].Kind != Ident || decl.Value[0].Text != "red" {
		t.Fatalf("unexpected trimmed value: %+v", decl.Value)
	}
}

func TestDefaultDeclarationParserNoImportant(t *testing.T) {
	p := newParser(" red ")
	decl, err := DefaultDeclarationParser{}.ParseValue("color", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decl.Important {
		t.Error("expected Important to be false")
	}
}

func TestParseOneDeclarationValid(t *testing.T) {
	p := newParser("color: red")
	decl, err := ParseOneDeclaration[Declaration](p, DefaultDeclarationParser{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decl.Name != "color" {
		t.Errorf("expected name 'color', got %q", decl.Name)
	}
}

func TestParseOneDeclarationEmpty(t *testing.T) {
	p := newParser("")
	_, err := ParseOneDeclaration[Declaration](p, DefaultDeclarationParser{})
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != ErrEmptyInput {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestParseOneDeclarationExtraInput(t *testing.T) {
	p := newParser("color: red; color: blue")
	_, err := ParseOneDeclaration[Declaration](p, DefaultDeclarationParser{})
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != ErrExtraInput {
		t.Errorf("expected ErrExtraInput, got %v", err)
	}
}
