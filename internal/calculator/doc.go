// Package calculator implements the string calculator: it extracts an
// optional delimiter header, splits the remaining text into integer tokens,
// rejects negatives and sums the values that do not exceed Threshold.
//
// Input grammar:
//
//	input   = [ header ] numbers
//	header  = "//" ( literal | bracket { bracket } ) "\n"
//	bracket = "[" delimiter "]"
//
// Without a header the delimiters are "," and "\n".
package calculator
