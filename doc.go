// Package csssyntax tokenizes and parses CSS source text according to the
// CSS Syntax Level 3 model: a character-level tokenizer (Tokenizer,
// FoldBlocks) producing component-value tokens with exact source
// positions, and a delimited, re-entrant parser (Parser) that drives
// user-supplied DeclarationParser/AtRuleParser/QualifiedRuleParser
// implementations to yield declarations and rules with per-item error
// recovery.
//
// The package is purely syntactic: it does not interpret selectors or
// property values, resolve cascade or specificity, or build a CSSOM.
package csssyntax
