package http

import (
	"fmt"
	"sort"

	"apexrenting/internal/entities"
	"apexrenting/internal/repository"
)

// In-memory stores backing the route tests.

type memStores struct {
	profiles    []entities.Profile
	admins      map[string]bool
	properties  []entities.Property
	assignments []entities.Assignment
	invoices    map[string][]entities.Invoice
	redirects   []entities.UserRedirect
	contacts    []entities.ContactMessage
}

func newMemStores() *memStores {
	return &memStores{
		admins:   map[string]bool{},
		invoices: map[string][]entities.Invoice{},
	}
}

type memProfiles struct{ s *memStores }

func (m memProfiles) Create(p *entities.Profile) error {
	if p.ID == "" {
		p.ID = fmt.Sprintf("profile-%d", len(m.s.profiles)+1)
	}
	m.s.profiles = append(m.s.profiles, *p)
	return nil
}

func (m memProfiles) GetByID(id string) (*entities.Profile, error) {
	for _, p := range m.s.profiles {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (m memProfiles) GetByEmail(email string) (*entities.Profile, error) {
	for _, p := range m.s.profiles {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, nil
}

func (m memProfiles) GetAll() ([]entities.Profile, error) { return m.s.profiles, nil }
func (m memProfiles) Count() (int, error)                 { return len(m.s.profiles), nil }

type memRoles struct{ s *memStores }

func (m memRoles) IsAdmin(userID string) (bool, error) { return m.s.admins[userID], nil }
func (m memRoles) Grant(userID, role string) error {
	if role == entities.RoleAdmin {
		m.s.admins[userID] = true
	}
	return nil
}

type memProperties struct{ s *memStores }

func (m memProperties) Create(p *entities.Property) error {
	if p.ID == "" {
		p.ID = fmt.Sprintf("property-%d", len(m.s.properties)+1)
	}
	m.s.properties = append(m.s.properties, *p)
	return nil
}

func (m memProperties) Update(id, name, address string) error {
	for i := range m.s.properties {
		if m.s.properties[i].ID == id {
			m.s.properties[i].Name = name
			m.s.properties[i].Address = address
		}
	}
	return nil
}

func (m memProperties) Delete(id string) error {
	kept := m.s.properties[:0]
	for _, p := range m.s.properties {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m.s.properties = kept

	// Mirror the database cascade: assignments and invoices follow.
	keptAssignments := m.s.assignments[:0]
	for _, a := range m.s.assignments {
		if a.PropertyID != id {
			keptAssignments = append(keptAssignments, a)
		}
	}
	m.s.assignments = keptAssignments
	delete(m.s.invoices, id)
	return nil
}

func (m memProperties) GetByID(id string) (*entities.Property, error) {
	for _, p := range m.s.properties {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (m memProperties) GetAll() ([]entities.Property, error) {
	sorted := append([]entities.Property{}, m.s.properties...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted, nil
}

func (m memProperties) GetAssigned(userID string) ([]entities.Property, error) {
	visible := []entities.Property{}
	for _, a := range m.s.assignments {
		if a.UserID != userID {
			continue
		}
		for _, p := range m.s.properties {
			if p.ID == a.PropertyID {
				visible = append(visible, p)
			}
		}
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].Name < visible[j].Name })
	return visible, nil
}

func (m memProperties) Count() (int, error) { return len(m.s.properties), nil }

type memAssignments struct{ s *memStores }

func (m memAssignments) Create(userID, propertyID string) error {
	for _, a := range m.s.assignments {
		if a.UserID == userID && a.PropertyID == propertyID {
			return repository.ErrDuplicateAssignment
		}
	}
	m.s.assignments = append(m.s.assignments, entities.Assignment{
		ID:         fmt.Sprintf("assignment-%d", len(m.s.assignments)+1),
		UserID:     userID,
		PropertyID: propertyID,
	})
	return nil
}

func (m memAssignments) Delete(id string) error {
	kept := m.s.assignments[:0]
	for _, a := range m.s.assignments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	m.s.assignments = kept
	return nil
}

func (m memAssignments) GetAll() ([]entities.Assignment, error) { return m.s.assignments, nil }

func (m memAssignments) IsAssigned(userID, propertyID string) (bool, error) {
	for _, a := range m.s.assignments {
		if a.UserID == userID && a.PropertyID == propertyID {
			return true, nil
		}
	}
	return false, nil
}

func (m memAssignments) Count() (int, error) { return len(m.s.assignments), nil }

type memInvoices struct{ s *memStores }

func (m memInvoices) GetByProperty(propertyID string) ([]entities.Invoice, error) {
	return append([]entities.Invoice{}, m.s.invoices[propertyID]...), nil
}

func (m memInvoices) Count() (int, error) {
	total := 0
	for _, list := range m.s.invoices {
		total += len(list)
	}
	return total, nil
}

type memRedirects struct{ s *memStores }

func (m memRedirects) Upsert(userID, redirectType, url string) error {
	for i := range m.s.redirects {
		if m.s.redirects[i].UserID == userID && m.s.redirects[i].RedirectType == redirectType {
			m.s.redirects[i].RedirectURL = url
			return nil
		}
	}
	m.s.redirects = append(m.s.redirects, entities.UserRedirect{
		ID:           fmt.Sprintf("redirect-%d", len(m.s.redirects)+1),
		UserID:       userID,
		RedirectType: redirectType,
		RedirectURL:  url,
	})
	return nil
}

func (m memRedirects) Delete(id string) error {
	kept := m.s.redirects[:0]
	for _, r := range m.s.redirects {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.s.redirects = kept
	return nil
}

func (m memRedirects) GetForUser(userID string) (*entities.RedirectSet, error) {
	set := &entities.RedirectSet{}
	for _, r := range m.s.redirects {
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

func (m memRedirects) GetAll() ([]entities.RedirectListing, error) {
	listings := []entities.RedirectListing{}
	for _, r := range m.s.redirects {
		email := ""
		if p, _ := (memProfiles{m.s}).GetByID(r.UserID); p != nil {
			email = p.Email
		}
		listings = append(listings, entities.RedirectListing{
			ID:           r.ID,
			UserID:       r.UserID,
			RedirectURL:  r.RedirectURL,
			RedirectType: r.RedirectType,
			Email:        email,
		})
	}
	return listings, nil
}

type memContacts struct{ s *memStores }

func (m memContacts) Create(msg *entities.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = fmt.Sprintf("contact-%d", len(m.s.contacts)+1)
	}
	m.s.contacts = append(m.s.contacts, *msg)
	return nil
}

func (m memContacts) GetAll() ([]entities.ContactMessage, error) { return m.s.contacts, nil }
