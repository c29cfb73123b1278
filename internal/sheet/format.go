package sheet

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders n with grouping separators, e.g. 7500000 -> "7,500,000".
func FormatAmount(n int64) string {
	return amountPrinter.Sprintf("%d", n)
}

// Display returns the formatted display text for field f of r.
func (r *Record) Display(f Field) string {
	if f == FieldEstValue {
		return FormatAmount(r.EstValue)
	}
	return r.Text(f)
}
