package shop

import "github.com/example/printadmin/internal/models"

// Filter narrows a shop listing. Zero values match everything.
type Filter struct {
	CampusID      string
	ExecutionMode models.ExecutionMode
	PaymentMode   models.PaymentMode
	Active        *bool
}

// Apply returns the shops matching every set criterion, preserving order.
func (f Filter) Apply(shops []models.Shop) []models.Shop {
	out := make([]models.Shop, 0, len(shops))
	for _, s := range shops {
		if f.CampusID != "" && s.CampusID != f.CampusID {
			continue
		}
		if f.ExecutionMode != "" && s.ExecutionMode != f.ExecutionMode {
			continue
		}
		if f.PaymentMode != "" && s.PaymentMode != f.PaymentMode {
			continue
		}
		if f.Active != nil && s.IsActive != *f.Active {
			continue
		}
		out = append(out, s)
	}
	return out
}

// GroupByExecutionMode buckets shops by execution mode. Every known mode has
// an entry, possibly empty.
func GroupByExecutionMode(shops []models.Shop) map[models.ExecutionMode][]models.Shop {
	groups := make(map[models.ExecutionMode][]models.Shop)
	for _, m := range models.ExecutionModes() {
		groups[m] = []models.Shop{}
	}
	for _, s := range shops {
		groups[s.ExecutionMode] = append(groups[s.ExecutionMode], s)
	}
	return groups
}

// GroupByPaymentMode buckets shops by payment mode. Every known mode has an
// entry, possibly empty.
func GroupByPaymentMode(shops []models.Shop) map[models.PaymentMode][]models.Shop {
	groups := make(map[models.PaymentMode][]models.Shop)
	for _, m := range models.PaymentModes() {
		groups[m] = []models.Shop{}
	}
	for _, s := range shops {
		groups[s.PaymentMode] = append(groups[s.PaymentMode], s)
	}
	return groups
}
