package dto

import "github.com/iho/chching/internal/domain"

// EntryRequest is the body of POST /incomes and POST /expenses.
// Keys are the same short field names the command line uses: c, de, da, v.
type EntryRequest map[string]string

// Fields converts the request to parser input.
func (r EntryRequest) Fields() domain.Fields {
	fields := make(domain.Fields, len(r))
	for k, v := range r {
		fields[k] = v
	}
	return fields
}
