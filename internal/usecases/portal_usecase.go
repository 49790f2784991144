package usecases

import (
	"errors"
	"sync"

	"apexrenting/internal/entities"
	"apexrenting/internal/interfaces"
)

var (
	ErrPropertyNotFound  = errors.New("property not found")
	ErrPropertyForbidden = errors.New("property is not assigned to you")
)

// PortalUsecase scopes property and invoice reads to an identity: admins
// see everything, clients only what their assignments grant.
type PortalUsecase struct {
	properties  interfaces.PropertyStore
	assignments interfaces.AssignmentStore
	invoices    interfaces.InvoiceStore
	profiles    interfaces.ProfileStore
}

func NewPortalUsecase(properties interfaces.PropertyStore, assignments interfaces.AssignmentStore, invoices interfaces.InvoiceStore, profiles interfaces.ProfileStore) *PortalUsecase {
	return &PortalUsecase{
		properties:  properties,
		assignments: assignments,
		invoices:    invoices,
		profiles:    profiles,
	}
}

// CanAccessProperty decides whether the identity may read the property's
// data. The property must exist; clients additionally need an assignment.
func (u *PortalUsecase) CanAccessProperty(identity *Identity, propertyID string) error {
	property, err := u.properties.GetByID(propertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return ErrPropertyNotFound
	}
	if identity.IsAdmin {
		return nil
	}

	assigned, err := u.assignments.IsAssigned(identity.Profile.ID, propertyID)
	if err != nil {
		return err
	}
	if !assigned {
		return ErrPropertyForbidden
	}
	return nil
}

// ListInvoices returns the property's invoices, newest first, after the
// access check.
func (u *PortalUsecase) ListInvoices(identity *Identity, propertyID string) ([]entities.Invoice, error) {
	if err := u.CanAccessProperty(identity, propertyID); err != nil {
		return nil, err
	}
	return u.invoices.GetByProperty(propertyID)
}

// PropertySummary is one property's invoices plus their aggregates, the
// payload a dashboard renders in one shot.
type PropertySummary struct {
	Invoices   []entities.Invoice `json:"invoices"`
	Totals     ExpenseTotals      `json:"totals"`
	Monthly    []MonthlyTotal     `json:"monthly"`
	Categories []CategoryTotal    `json:"categories"`
	Comparison ComparisonReport   `json:"comparison"`
}

func (u *PortalUsecase) Summarize(identity *Identity, propertyID string) (*PropertySummary, error) {
	invoices, err := u.ListInvoices(identity, propertyID)
	if err != nil {
		return nil, err
	}
	return &PropertySummary{
		Invoices:   invoices,
		Totals:     Totals(invoices),
		Monthly:    MonthlyTotals(invoices),
		Categories: CategoryTotals(invoices),
		Comparison: TopCategoryComparison(invoices, 3),
	}, nil
}

// AdminStats are the dashboard counters. The underlying counts are
// independent, so they run concurrently and are awaited together.
type AdminStats struct {
	TotalUsers       int `json:"total_users"`
	TotalProperties  int `json:"total_properties"`
	TotalAssignments int `json:"total_assignments"`
	TotalInvoices    int `json:"total_invoices"`
}

func (u *PortalUsecase) GetAdminStats() (*AdminStats, error) {
	stats := &AdminStats{}
	errs := make([]error, 4)

	var wg sync.WaitGroup
	count := func(dst *int, errSlot *error, fn func() (int, error)) {
		defer wg.Done()
		*dst, *errSlot = fn()
	}

	wg.Add(4)
	go count(&stats.TotalUsers, &errs[0], u.profiles.Count)
	go count(&stats.TotalProperties, &errs[1], u.properties.Count)
	go count(&stats.TotalAssignments, &errs[2], u.assignments.Count)
	go count(&stats.TotalInvoices, &errs[3], u.invoices.Count)
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return stats, nil
}
