package render

// 5x7 digit font. '#' is ink.
var digitGlyphs = [10][7]string{
	{" ### ", "#   #", "#  ##", "# # #", "##  #", "#   #", " ### "},
	{"  #  ", " ##  ", "  #  ", "  #  ", "  #  ", "  #  ", " ### "},
	{" ### ", "#   #", "    #", "   # ", "  #  ", " #   ", "#####"},
	{"#####", "   # ", "  #  ", "   # ", "    #", "#   #", " ### "},
	{"   # ", "  ## ", " # # ", "#  # ", "#####", "   # ", "   # "},
	{"#####", "#    ", "#### ", "    #", "    #", "#   #", " ### "},
	{"  ## ", " #   ", "#    ", "#### ", "#   #", "#   #", " ### "},
	{"#####", "    #", "   # ", "  #  ", " #   ", " #   ", " #   "},
	{" ### ", "#   #", "#   #", " ### ", "#   #", "#   #", " ### "},
	{" ### ", "#   #", "#   #", " ####", "    #", "   # ", " ##  "},
}

const (
	glyphCols = 5
	glyphRows = 7

	// Fraction of the card the glyph box occupies.
	glyphLeft   = 0.18
	glyphRight  = 0.82
	glyphTop    = 0.14
	glyphBottom = 0.86
)

// glyphInk reports whether the digit has ink at normalized card coordinates
// (u, v), both in [0, 1).
func glyphInk(digit int, u, v float64) bool {
	if digit < 0 || digit > 9 {
		return false
	}
	if u < glyphLeft || u >= glyphRight || v < glyphTop || v >= glyphBottom {
		return false
	}
	col := int((u - glyphLeft) / (glyphRight - glyphLeft) * glyphCols)
	row := int((v - glyphTop) / (glyphBottom - glyphTop) * glyphRows)
	if col >= glyphCols || row >= glyphRows {
		return false
	}
	return digitGlyphs[digit][row][col] == '#'
}
