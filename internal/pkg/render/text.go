// Package render turns a built invoice into the files handed to a client: an
// Excel workbook and a plain-text preview.
package render

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/invoice"
)

const ruleWidth = 55

// CityStateZip joins address parts as "City, ST 12345", skipping blanks.
func CityStateZip(city, state, zip string) string {
	out := city
	if state != "" {
		if out != "" {
			out += ", "
		}
		out += state
	}
	if zip != "" {
		out += " " + zip
	}
	return out
}

// FileName is the suggested download name of the invoice workbook.
func FileName(inv invoice.Invoice) string {
	facility := strings.NewReplacer("/", "-", "\\", "-").Replace(inv.BillTo.FacilityName)
	return fmt.Sprintf("Invoice_%s_%s_to_%s.xlsx",
		facility,
		strings.ReplaceAll(inv.Start.String(), "/", "-"),
		strings.ReplaceAll(inv.End.String(), "/", "-"),
	)
}

// Text renders the plain-text preview.
func Text(inv invoice.Invoice) string {
	var b strings.Builder

	b.WriteString("INVOICE\n")
	b.WriteString("========\n\n")

	from := inv.From
	fmt.Fprintf(&b, "From: %s\n", from.DisplayName())
	writeLine(&b, from.Address)
	writeLine(&b, CityStateZip(from.City, from.State, from.Zip))
	b.WriteString("\n")

	to := inv.BillTo
	fmt.Fprintf(&b, "Bill To:\n%s\n%s\n", to.FacilityName, to.ContactName)
	writeLine(&b, to.Address)
	writeLine(&b, CityStateZip(to.City, to.State, to.Zip))
	writeLine(&b, to.ContactPhone)
	writeLine(&b, to.ContactEmail)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Period: %s to %s\n\n", inv.Start, inv.End)
	b.WriteString("Date       | Arrival  | Departure | Hours | Amount\n")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	for _, item := range inv.Items {
		fmt.Fprintf(&b, "%s | %-8s | %-9s | %.2f | $%s", item.Date, item.Arrival, item.Departure, item.Hours, item.Amount.StringFixed(2))
		if item.Anomaly {
			b.WriteString("  (check times)")
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	fmt.Fprintf(&b, "%45s TOTAL: $%s\n", "", inv.Total.StringFixed(2))

	if len(inv.Notes) > 0 {
		b.WriteString("\nNotes:\n")
		for _, note := range inv.Notes {
			b.WriteString(note + "\n")
		}
	}

	return b.String()
}

func writeLine(b *strings.Builder, s string) {
	if s != "" {
		b.WriteString(s + "\n")
	}
}
