package cssconformance

import (
	"encoding/json"
	"strconv"

	"github.com/csssyntax/csssyntax"
	"github.com/tidwall/sjson"
)

// jsonArray assembles already-encoded JSON fragments into a JSON array,
// appending with sjson's "-1" index rather than a second full marshal pass
// over already-serialized children.
func jsonArray(items ...string) string {
	doc := []byte("[]")
	for _, item := range items {
		var err error
		doc, err = sjson.SetRawBytes(doc, "-1", []byte(item))
		if err != nil {
			panic("cssconformance: " + err.Error())
		}
	}
	return string(doc)
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func jsonBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func jsonFloat(v float64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func jsonUint(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func numericFields(n csssyntax.NumericValue) []string {
	kind := "number"
	if n.IsInt {
		kind = "integer"
	}
	return []string{jsonString(n.Representation), jsonFloat(n.Value), jsonString(kind)}
}

func tokensToItems(tokens []csssyntax.Token) []string {
	items := make([]string, len(tokens))
	for i, t := range tokens {
		items[i] = TokenToJSON(t)
	}
	return items
}

func tokensToJSON(tokens []csssyntax.Token) string {
	return jsonArray(tokensToItems(tokens)...)
}

// TokenToJSON encodes a single component value per original_source's
// ToJson impl for ComponentValue.
func TokenToJSON(t csssyntax.Token) string {
	switch t.Kind {
	case csssyntax.Ident:
		return jsonArray(jsonString("ident"), jsonString(t.Text))
	case csssyntax.AtKeyword:
		return jsonArray(jsonString("at-keyword"), jsonString(t.Text))
	case csssyntax.Hash:
		return jsonArray(jsonString("hash"), jsonString(t.Text), jsonString("unrestricted"))
	case csssyntax.IDHash:
		return jsonArray(jsonString("hash"), jsonString(t.Text), jsonString("id"))
	case csssyntax.String:
		return jsonArray(jsonString("string"), jsonString(t.Text))
	case csssyntax.Url:
		return jsonArray(jsonString("url"), jsonString(t.Text))
	case csssyntax.BadString:
		return jsonArray(jsonString("error"), jsonString("bad-string"))
	case csssyntax.BadURL:
		return jsonArray(jsonString("error"), jsonString("bad-url"))
	case csssyntax.Delim:
		if t.Delim == '\\' {
			return jsonString(`\`)
		}
		return jsonString(string(t.Delim))
	case csssyntax.Number:
		items := append([]string{jsonString("number")}, numericFields(t.Numeric)...)
		return jsonArray(items...)
	case csssyntax.Percentage:
		items := append([]string{jsonString("percentage")}, numericFields(t.Numeric)...)
		return jsonArray(items...)
	case csssyntax.Dimension:
		items := append([]string{jsonString("dimension")}, numericFields(t.Numeric)...)
		items = append(items, jsonString(t.Text))
		return jsonArray(items...)
	case csssyntax.UnicodeRange:
		return jsonArray(jsonString("unicode-range"), jsonUint(t.RangeStart), jsonUint(t.RangeEnd))
	case csssyntax.Whitespace:
		return jsonString(" ")
	case csssyntax.Colon:
		return jsonString(":")
	case csssyntax.Semicolon:
		return jsonString(";")
	case csssyntax.Comma:
		return jsonString(",")
	case csssyntax.IncludeMatch:
		return jsonString("~=")
	case csssyntax.DashMatch:
		return jsonString("|=")
	case csssyntax.PrefixMatch:
		return jsonString("^=")
	case csssyntax.SuffixMatch:
		return jsonString("$=")
	case csssyntax.SubstringMatch:
		return jsonString("*=")
	case csssyntax.Column:
		return jsonString("||")
	case csssyntax.CDO:
		return jsonString("<!--")
	case csssyntax.CDC:
		return jsonString("-->")
	case csssyntax.Function:
		items := []string{jsonString("function"), jsonString(t.Text)}
		items = append(items, tokensToItems(t.Children)...)
		return jsonArray(items...)
	case csssyntax.ParenthesisBlock:
		items := append([]string{jsonString("()")}, tokensToItems(t.Children)...)
		return jsonArray(items...)
	case csssyntax.SquareBracketBlock:
		items := append([]string{jsonString("[]")}, tokensToItems(t.Children)...)
		return jsonArray(items...)
	case csssyntax.CurlyBracketBlock:
		items := append([]string{jsonString("{}")}, tokensToItems(t.Children)...)
		return jsonArray(items...)
	case csssyntax.CloseParenthesis:
		return jsonArray(jsonString("error"), jsonString(")"))
	case csssyntax.CloseSquareBracket:
		return jsonArray(jsonString("error"), jsonString("]"))
	case csssyntax.CloseCurlyBracket:
		return jsonArray(jsonString("error"), jsonString("}"))
	default:
		panic("cssconformance: unencodable token kind")
	}
}

// DeclarationToJSON encodes a Declaration per original_source's ToJson impl
// for Declaration.
func DeclarationToJSON(d csssyntax.Declaration) string {
	return jsonArray(jsonString("declaration"), jsonString(d.Name), tokensToJSON(d.Value), jsonBool(d.Important))
}

// RawRuleToJSON encodes a RawRule per original_source's ToJson impls for
// AtRule and QualifiedRule.
func RawRuleToJSON(r csssyntax.RawRule) string {
	if r.IsAtRule {
		block := "null"
		if r.HasBlock {
			block = tokensToJSON(r.Block)
		}
		return jsonArray(jsonString("at-rule"), jsonString(r.Name), tokensToJSON(r.Prelude), block)
	}
	return jsonArray(jsonString("qualified rule"), tokensToJSON(r.Prelude), tokensToJSON(r.Block))
}

// ErrorToJSON encodes a *csssyntax.ParseError per original_source's ToJson
// impl for SyntaxError, which only distinguishes empty/extra-input from a
// catch-all "invalid".
func ErrorToJSON(e *csssyntax.ParseError) string {
	kind := "invalid"
	switch e.Kind {
	case csssyntax.ErrEmptyInput:
		kind = "empty"
	case csssyntax.ErrExtraInput:
		kind = "extra-input"
	}
	return jsonArray(jsonString("error"), jsonString(kind))
}
