package csssyntax

import "testing"

func tokenizeAll(css string, withComments bool) []rawToken {
	tz := NewTokenizer(NewSource(css), withComments)
	var out []rawToken
	for {
		tok, ok := tz.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func TestTokenizerIdent(t *testing.T) {
	toks := tokenizeAll("foo-bar", false)
	if len(toks) != 1 || toks[0].Kind != rIdent || toks[0].Text != "foo-bar" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestTokenizerEscape(t *testing.T) {
	toks := tokenizeAll(`\41 bc`, false)
	if len(toks) != 1 || toks[0].Kind != rIdent || toks[0].Text != "Abc" {
		t.Fatalf("expected escaped ident 'Abc', got %+v", toks)
	}
}

func TestTokenizerString(t *testing.T) {
	toks := tokenizeAll(`"hello"`, false)
	if len(toks) != 1 || toks[0].Kind != rString || toks[0].Text != "hello" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestTokenizerBadStringOnNewline(t *testing.T) {
	toks := tokenizeAll("\"unterminated\n", false)
	if len(toks) != 2 || toks[0].Kind != rBadString {
		t.Fatalf("expected a bad-string before the newline's whitespace token: %+v", toks)
	}
}

func TestTokenizerCommentsStripped(t *testing.T) {
	toks := tokenizeAll("a/*hi*/b", false)
	if len(toks) != 2 || toks[0].Text != "a" || toks[1].Text != "b" {
		t.Fatalf("comments should not produce tokens by default: %+v", toks)
	}
}

func TestTokenizerCommentsKept(t *testing.T) {
	toks := tokenizeAll("a/*hi*/b", true)
	if len(toks) != 3 || toks[1].Kind != rComment {
		t.Fatalf("expected a kept comment token: %+v", toks)
	}
}

func TestTokenizerHashIDvsUnrestricted(t *testing.T) {
	toks := tokenizeAll("#foo #1a2b", false)
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %+v", toks)
	}
	if toks[0].Kind != rIDHash || toks[0].Text != "foo" {
		t.Errorf("expected id-type hash 'foo', got %+v", toks[0])
	}
	if toks[2].Kind != rHash || toks[2].Text != "1a2b" {
		t.Errorf("expected unrestricted hash '1a2b', got %+v", toks[2])
	}
}

func TestTokenizerNumberDimensionPercentage(t *testing.T) {
	toks := tokenizeAll("10px 50% 3", false)
	if len(toks) != 5 {
		t.Fatalf("expected 5 tokens (dimension, ws, percentage, ws, number), got %+v", toks)
	}
	if toks[0].Kind != rDimension || toks[0].Text != "px" || toks[0].Numeric.Representation != "10" {
		t.Errorf("unexpected dimension: %+v", toks[0])
	}
	if toks[2].Kind != rPercentage || toks[2].Numeric.Representation != "50" {
		t.Errorf("unexpected percentage: %+v", toks[2])
	}
	if toks[4].Kind != rNumber || !toks[4].Numeric.IsInt {
		t.Errorf("unexpected number: %+v", toks[4])
	}
}

func TestTokenizerURL(t *testing.T) {
	toks := tokenizeAll("url(foo.png)", false)
	if len(toks) != 1 || toks[0].Kind != rUrl || toks[0].Text != "foo.png" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestTokenizerURLWithQuotedString(t *testing.T) {
	// A quoted url() argument falls back to an ordinary Function token;
	// the flat tokenizer yields Function("url") followed by the string
	// and closing paren as separate tokens, left for the block-folder
	// to assemble into the function's argument list.
	toks := tokenizeAll(`url("foo.png")`, false)
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens (function, string, close-paren), got %+v", toks)
	}
	if toks[0].Kind != rFunction || toks[0].Text != "url" {
		t.Errorf("expected Function(\"url\"), got %+v", toks[0])
	}
	if toks[1].Kind != rString || toks[1].Text != "foo.png" {
		t.Errorf("expected string \"foo.png\", got %+v", toks[1])
	}
	if toks[2].Kind != rCloseParen {
		t.Errorf("expected close-parenthesis, got %+v", toks[2])
	}
}

func TestTokenizerBadURL(t *testing.T) {
	toks := tokenizeAll("url(foo bar)", false)
	if len(toks) != 1 || toks[0].Kind != rBadURL {
		t.Fatalf("whitespace inside an unquoted url() must be a bad-url, got %+v", toks)
	}
}

func TestTokenizerCDOCDC(t *testing.T) {
	toks := tokenizeAll("<!---->", false)
	if len(toks) != 2 || toks[0].Kind != rCDO || toks[1].Kind != rCDC {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestTokenizerMatchOperators(t *testing.T) {
	toks := tokenizeAll("~= |= ^= $= *= ||", false)
	kinds := []rawKind{rIncludeMatch, rDashMatch, rPrefixMatch, rSuffixMatch, rSubstringMatch, rColumn}
	idx := 0
	for _, tok := range toks {
		if tok.Kind == rWhitespace {
			continue
		}
		if tok.Kind != kinds[idx] {
			t.Errorf("token %d: got %v, want %v", idx, tok.Kind, kinds[idx])
		}
		idx++
	}
}
