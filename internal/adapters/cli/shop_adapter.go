package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	coreshop "github.com/example/printadmin/internal/core/shop"
	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/primary"
)

// ShopAdapter translates CLI operations to ShopService calls.
type ShopAdapter struct {
	service primary.ShopService
	out     io.Writer
}

// NewShopAdapter creates a new ShopAdapter with the given service.
func NewShopAdapter(service primary.ShopService, out io.Writer) *ShopAdapter {
	return &ShopAdapter{
		service: service,
		out:     out,
	}
}

// List prints the shops matching filters. groupBy may be "", "execution" or "payment".
func (a *ShopAdapter) List(ctx context.Context, filters primary.ShopFilters, groupBy string) error {
	result := a.service.ListShops(ctx, filters)
	if !result.Success {
		return failure(result)
	}

	shops := *result.Data
	if len(shops) == 0 {
		fmt.Fprintln(a.out, "No shops found")
		return nil
	}

	switch groupBy {
	case "":
		return a.table(shops)
	case "execution":
		groups := coreshop.GroupByExecutionMode(shops)
		for _, mode := range models.ExecutionModes() {
			if err := a.group(coreshop.ExecutionModeLabel(mode), groups[mode]); err != nil {
				return err
			}
		}
		return nil
	case "payment":
		groups := coreshop.GroupByPaymentMode(shops)
		for _, mode := range models.PaymentModes() {
			if err := a.group(coreshop.PaymentModeLabel(mode), groups[mode]); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown --group-by %q (use execution or payment)", groupBy)
}

func (a *ShopAdapter) group(title string, shops []models.Shop) error {
	fmt.Fprintf(a.out, "\n%s (%d)\n", title, len(shops))
	if len(shops) == 0 {
		return nil
	}
	return a.table(shops)
}

func (a *ShopAdapter) table(shops []models.Shop) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCAMPUS\tNAME\tEXECUTION\tPAYMENT\tSTATUS")
	for _, s := range shops {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			s.CampusID,
			s.Name,
			coreshop.ExecutionModeLabel(s.ExecutionMode),
			coreshop.PaymentModeLabel(s.PaymentMode),
			statusText(s.IsActive, coreshop.StatusLabel(s.IsActive)),
		)
	}
	return w.Flush()
}

// Show prints a single shop from a fresh listing.
func (a *ShopAdapter) Show(ctx context.Context, shopID string) error {
	result := a.service.ListShops(ctx, primary.ShopFilters{})
	if !result.Success {
		return failure(result)
	}

	for _, s := range *result.Data {
		if s.ID != shopID {
			continue
		}
		fmt.Fprintf(a.out, "\n%s\n", coreshop.Summary(s))
		fmt.Fprintf(a.out, "ID:         %s\n", s.ID)
		fmt.Fprintf(a.out, "Campus:     %s\n", s.CampusID)
		fmt.Fprintf(a.out, "Execution:  %s (%s)\n", coreshop.ExecutionModeLabel(s.ExecutionMode), coreshop.ExecutionModeDescription(s.ExecutionMode))
		fmt.Fprintf(a.out, "Payment:    %s (%s)\n", coreshop.PaymentModeLabel(s.PaymentMode), coreshop.PaymentModeDescription(s.PaymentMode))
		fmt.Fprintf(a.out, "Status:     %s\n", statusText(s.IsActive, coreshop.StatusLabel(s.IsActive)))
		fmt.Fprintf(a.out, "Created:    %s\n", s.CreatedAt)
		fmt.Fprintln(a.out)
		return nil
	}
	return fmt.Errorf("shop %s not found", shopID)
}

// Modes prints the accepted execution and payment modes.
func (a *ShopAdapter) Modes() error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EXECUTION MODE\tLABEL\tDESCRIPTION")
	for _, m := range models.ExecutionModes() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m, coreshop.ExecutionModeLabel(m), coreshop.ExecutionModeDescription(m))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PAYMENT MODE\tLABEL\tDESCRIPTION")
	for _, m := range models.PaymentModes() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m, coreshop.PaymentModeLabel(m), coreshop.PaymentModeDescription(m))
	}
	return w.Flush()
}

// Create sends a new shop.
func (a *ShopAdapter) Create(ctx context.Context, payload models.ShopPayload) error {
	result := a.service.CreateShop(ctx, payload)
	if !result.Success {
		return failure(result)
	}

	fmt.Fprintf(a.out, "%s %s: %s (%s)\n", okMark(), result.Message, result.Data.Name, result.Data.ID)
	return nil
}

// Update sends a partial update. At least one field must be set.
func (a *ShopAdapter) Update(ctx context.Context, shopID string, payload models.ShopPayload) error {
	if payload == (models.ShopPayload{}) {
		return errors.New("must specify at least one of --name, --execution-mode, --payment-mode, --active")
	}

	result := a.service.UpdateShop(ctx, shopID, payload)
	if !result.Success {
		return failure(result)
	}

	fmt.Fprintf(a.out, "%s %s: %s\n", okMark(), result.Message, coreshop.Summary(*result.Data))
	return nil
}

// Delete hard-deletes a shop.
func (a *ShopAdapter) Delete(ctx context.Context, shopID string) error {
	result := a.service.DeleteShop(ctx, shopID)
	if !result.Success {
		return failure(result)
	}

	if result.Data != nil {
		fmt.Fprintf(a.out, "%s %s: %s (%s)\n", okMark(), result.Message, result.Data.Name, shopID)
	} else {
		fmt.Fprintf(a.out, "%s %s: %s\n", okMark(), result.Message, shopID)
	}
	return nil
}
