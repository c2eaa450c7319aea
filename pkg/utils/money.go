package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var zarPrinter = message.NewPrinter(language.MustParse("en-ZA"))

// FormatZAR renders an amount in the South African rand display format
// with two fraction digits, e.g. "R10 000,00".
func FormatZAR(amount float64) string {
	return zarPrinter.Sprintf("R%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
