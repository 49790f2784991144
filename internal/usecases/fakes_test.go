package usecases

import (
	"fmt"
	"sort"
	"strings"

	"apexrenting/internal/entities"
	"apexrenting/internal/repository"
)

// In-memory stores standing in for the pgx repositories.

type fakeProfileStore struct {
	profiles []entities.Profile
	err      error
}

func (f *fakeProfileStore) Create(p *entities.Profile) error {
	if f.err != nil {
		return f.err
	}
	if p.ID == "" {
		p.ID = fmt.Sprintf("profile-%d", len(f.profiles)+1)
	}
	f.profiles = append(f.profiles, *p)
	return nil
}

func (f *fakeProfileStore) GetByID(id string) (*entities.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileStore) GetByEmail(email string) (*entities.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileStore) GetAll() ([]entities.Profile, error) {
	return f.profiles, f.err
}

func (f *fakeProfileStore) Count() (int, error) {
	return len(f.profiles), f.err
}

type fakeRoleStore struct {
	admins map[string]bool
	err    error
}

func (f *fakeRoleStore) IsAdmin(userID string) (bool, error) {
	return f.admins[userID], f.err
}

func (f *fakeRoleStore) Grant(userID, role string) error {
	if f.err != nil {
		return f.err
	}
	if f.admins == nil {
		f.admins = map[string]bool{}
	}
	if role == entities.RoleAdmin {
		f.admins[userID] = true
	}
	return nil
}

type fakePropertyStore struct {
	properties []entities.Property
	assigned   map[string][]string // user id -> property ids
	err        error
}

func (f *fakePropertyStore) Create(p *entities.Property) error {
	if f.err != nil {
		return f.err
	}
	if p.ID == "" {
		p.ID = fmt.Sprintf("property-%d", len(f.properties)+1)
	}
	f.properties = append(f.properties, *p)
	return nil
}

func (f *fakePropertyStore) Update(id, name, address string) error {
	for i := range f.properties {
		if f.properties[i].ID == id {
			f.properties[i].Name = name
			f.properties[i].Address = address
		}
	}
	return f.err
}

func (f *fakePropertyStore) Delete(id string) error {
	kept := f.properties[:0]
	for _, p := range f.properties {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.properties = kept
	return f.err
}

func (f *fakePropertyStore) GetByID(id string) (*entities.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.properties {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePropertyStore) GetAll() ([]entities.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	sorted := append([]entities.Property{}, f.properties...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted, nil
}

func (f *fakePropertyStore) GetAssigned(userID string) ([]entities.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	visible := []entities.Property{}
	for _, id := range f.assigned[userID] {
		for _, p := range f.properties {
			if p.ID == id {
				visible = append(visible, p)
			}
		}
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].Name < visible[j].Name })
	return visible, nil
}

func (f *fakePropertyStore) Count() (int, error) {
	return len(f.properties), f.err
}

type fakeAssignmentStore struct {
	assignments []entities.Assignment
	err         error
}

func (f *fakeAssignmentStore) Create(userID, propertyID string) error {
	if f.err != nil {
		return f.err
	}
	for _, a := range f.assignments {
		if a.UserID == userID && a.PropertyID == propertyID {
			return repository.ErrDuplicateAssignment
		}
	}
	f.assignments = append(f.assignments, entities.Assignment{
		ID:         fmt.Sprintf("assignment-%d", len(f.assignments)+1),
		UserID:     userID,
		PropertyID: propertyID,
	})
	return nil
}

func (f *fakeAssignmentStore) Delete(id string) error {
	kept := f.assignments[:0]
	for _, a := range f.assignments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	f.assignments = kept
	return f.err
}

func (f *fakeAssignmentStore) GetAll() ([]entities.Assignment, error) {
	return f.assignments, f.err
}

func (f *fakeAssignmentStore) IsAssigned(userID, propertyID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, a := range f.assignments {
		if a.UserID == userID && a.PropertyID == propertyID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAssignmentStore) Count() (int, error) {
	return len(f.assignments), f.err
}

type fakeInvoiceStore struct {
	invoices map[string][]entities.Invoice // property id -> invoices
	err      error
}

func (f *fakeInvoiceStore) GetByProperty(propertyID string) ([]entities.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]entities.Invoice{}, f.invoices[propertyID]...), nil
}

func (f *fakeInvoiceStore) Count() (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	total := 0
	for _, list := range f.invoices {
		total += len(list)
	}
	return total, nil
}

type fakeRedirectStore struct {
	redirects []entities.UserRedirect
	listings  []entities.RedirectListing
	err       error
}

func (f *fakeRedirectStore) Upsert(userID, redirectType, url string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.redirects {
		if f.redirects[i].UserID == userID && f.redirects[i].RedirectType == redirectType {
			f.redirects[i].RedirectURL = url
			return nil
		}
	}
	f.redirects = append(f.redirects, entities.UserRedirect{
		ID:           fmt.Sprintf("redirect-%d", len(f.redirects)+1),
		UserID:       userID,
		RedirectType: redirectType,
		RedirectURL:  url,
	})
	return nil
}

func (f *fakeRedirectStore) Delete(id string) error {
	kept := f.redirects[:0]
	for _, r := range f.redirects {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.redirects = kept
	return f.err
}

func (f *fakeRedirectStore) GetForUser(userID string) (*entities.RedirectSet, error) {
	if f.err != nil {
		return nil, f.err
	}
	set := &entities.RedirectSet{}
	for _, r := range f.redirects {
		if r.UserID != userID {
			continue
		}
		switch r.RedirectType {
		case entities.RedirectLease:
			set.Lease = r.RedirectURL
		case entities.RedirectReport:
			set.Report = r.RedirectURL
		}
	}
	return set, nil
}

func (f *fakeRedirectStore) GetAll() ([]entities.RedirectListing, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.listings != nil {
		return f.listings, nil
	}
	listings := []entities.RedirectListing{}
	for _, r := range f.redirects {
		listings = append(listings, entities.RedirectListing{
			ID:           r.ID,
			UserID:       r.UserID,
			RedirectURL:  r.RedirectURL,
			RedirectType: r.RedirectType,
			Email:        strings.ToLower(r.UserID) + "@example.com",
		})
	}
	return listings, nil
}
