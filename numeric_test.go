package csssyntax

import "testing"

func scanNumber(css string) NumericValue {
	c := &cursor{source: NewSource(css)}
	return parseNumeric(c)
}

func TestParseNumericInteger(t *testing.T) {
	nv := scanNumber("42")
	if nv.Representation != "42" || nv.Value != 42 || !nv.IsInt || nv.IntValue != 42 {
		t.Fatalf("unexpected NumericValue: %+v", nv)
	}
	if nv.HasSign() {
		t.Error("42 has no sign")
	}
}

func TestParseNumericSigned(t *testing.T) {
	nv := scanNumber("-7")
	if nv.Representation != "-7" || nv.Value != -7 || !nv.IsInt || nv.IntValue != -7 {
		t.Fatalf("unexpected NumericValue: %+v", nv)
	}
	if !nv.HasSign() {
		t.Error("-7 has a sign")
	}
}

func TestParseNumericFraction(t *testing.T) {
	nv := scanNumber("3.25")
	if nv.Representation != "3.25" || nv.Value != 3.25 || nv.IsInt {
		t.Fatalf("unexpected NumericValue: %+v", nv)
	}
}

func TestParseNumericExponent(t *testing.T) {
	nv := scanNumber("1e3")
	if nv.Representation != "1e3" || nv.Value != 1000 || nv.IsInt {
		t.Fatalf("unexpected NumericValue: %+v", nv)
	}
}

func TestParseNumericExponentRequiresDigit(t *testing.T) {
	nv := scanNumber("1e")
	if nv.Representation != "1" || !nv.IsInt {
		t.Fatalf("trailing 'e' with no digits must not be consumed: %+v", nv)
	}
}
