// Package export serializes the budget draft for download: a flat XML
// document (one element per field) and an XLSX workbook.
package export

import (
	"encoding/xml"
	"fmt"

	"github.com/vaibhavharit14/BudgetBox/internal/client/store"
)

// xmlBudget is the flat markup layout: a <budget> root wrapping one element
// per field, in canonical order.
type xmlBudget struct {
	XMLName       xml.Name `xml:"budget"`
	Income        string   `xml:"income"`
	MonthlyBills  string   `xml:"monthly_bills"`
	Food          string   `xml:"food"`
	Transport     string   `xml:"transport"`
	Subscriptions string   `xml:"subscriptions"`
	Misc          string   `xml:"misc"`
	Description   string   `xml:"description"`
}

// ToXML serializes the draft as a flat XML document. Values are emitted
// verbatim as strings; missing values become empty elements.
func ToXML(d store.Draft) ([]byte, error) {
	doc := xmlBudget{
		Income:        d.Income,
		MonthlyBills:  d.MonthlyBills,
		Food:          d.Food,
		Transport:     d.Transport,
		Subscriptions: d.Subscriptions,
		Misc:          d.Misc,
		Description:   d.Description,
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal budget xml: %w", err)
	}
	return append(data, '\n'), nil
}
