package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	corecampus "github.com/example/printadmin/internal/core/campus"
	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/primary"
)

// CampusAdapter translates CLI operations to CampusService calls.
// It depends only on the CampusService interface, enabling easy testing with mocks.
type CampusAdapter struct {
	service primary.CampusService
	out     io.Writer
}

// NewCampusAdapter creates a new CampusAdapter with the given service.
func NewCampusAdapter(service primary.CampusService, out io.Writer) *CampusAdapter {
	return &CampusAdapter{
		service: service,
		out:     out,
	}
}

// List prints every campus as a table.
func (a *CampusAdapter) List(ctx context.Context) error {
	result := a.service.ListCampuses(ctx)
	if !result.Success {
		return failure(result)
	}

	campuses := *result.Data
	if len(campuses) == 0 {
		fmt.Fprintln(a.out, "No campuses found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tLOCATION\tCREATED")
	for _, c := range campuses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.ID,
			corecampus.Code(c.Name),
			c.Name,
			c.Location,
			corecampus.FormatDate(c.CreatedAt),
		)
	}
	return w.Flush()
}

// Show prints a single campus from a fresh listing.
func (a *CampusAdapter) Show(ctx context.Context, campusID string) error {
	result := a.service.ListCampuses(ctx)
	if !result.Success {
		return failure(result)
	}

	for _, c := range *result.Data {
		if c.ID != campusID {
			continue
		}
		fmt.Fprintf(a.out, "\n%s %s\n", corecampus.Icon(c), corecampus.DisplayName(c))
		fmt.Fprintf(a.out, "ID:       %s\n", c.ID)
		fmt.Fprintf(a.out, "Code:     %s\n", corecampus.Code(c.Name))
		fmt.Fprintf(a.out, "Summary:  %s\n", corecampus.Summary(c))
		fmt.Fprintf(a.out, "Created:  %s\n", corecampus.FormatDate(c.CreatedAt))
		fmt.Fprintln(a.out)
		return nil
	}
	return fmt.Errorf("campus %s not found", campusID)
}

// Create sends a new campus.
func (a *CampusAdapter) Create(ctx context.Context, payload models.CampusPayload) error {
	result := a.service.CreateCampus(ctx, payload)
	if !result.Success {
		return failure(result)
	}

	fmt.Fprintf(a.out, "%s %s: %s (%s)\n", okMark(), result.Message, result.Data.Name, result.Data.ID)
	return nil
}

// Update sends a partial update. At least one field must be set.
func (a *CampusAdapter) Update(ctx context.Context, campusID string, payload models.CampusPayload) error {
	if payload.Name == nil && payload.Location == nil {
		return errors.New("must specify at least --name or --location")
	}

	result := a.service.UpdateCampus(ctx, campusID, payload)
	if !result.Success {
		return failure(result)
	}

	fmt.Fprintf(a.out, "%s %s: %s\n", okMark(), result.Message, corecampus.DisplayName(*result.Data))
	return nil
}

// Delete hard-deletes a campus.
func (a *CampusAdapter) Delete(ctx context.Context, campusID string) error {
	result := a.service.DeleteCampus(ctx, campusID)
	if !result.Success {
		return failure(result)
	}

	if result.Data != nil {
		fmt.Fprintf(a.out, "%s %s: %s (%s)\n", okMark(), result.Message, result.Data.Name, campusID)
	} else {
		fmt.Fprintf(a.out, "%s %s: %s\n", okMark(), result.Message, campusID)
	}
	return nil
}
