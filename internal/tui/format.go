package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMeso renders an amount with thousands separators, e.g. "1,000,000 meso"
func FormatMeso(amount int64) string {
	return printer.Sprintf("%d meso", amount)
}
