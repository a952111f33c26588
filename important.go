package csssyntax

// ParseImportant parses `!important`, per spec.md §4.E and
// original_source's parse_important. Typical usage is
// `Try(input, ParseImportant)` at the end of a DeclarationParser's
// ParseValue implementation.
func ParseImportant(input *Parser) (struct{}, error) {
	if err := input.ExpectDelim('!'); err != nil {
		return struct{}{}, err
	}
	if err := input.ExpectIdentMatching("important"); err != nil {
		return struct{}{}, err
	}
	return struct{}{}, nil
}
