package interfaces

import "apexrenting/internal/entities"

// Storage ports consumed by the usecases. The pgx repositories satisfy
// them in production; tests substitute in-memory fakes.

type ProfileStore interface {
	Create(profile *entities.Profile) error
	GetByID(id string) (*entities.Profile, error)
	GetByEmail(email string) (*entities.Profile, error)
	GetAll() ([]entities.Profile, error)
	Count() (int, error)
}

type RoleStore interface {
	IsAdmin(userID string) (bool, error)
	Grant(userID, role string) error
}

type PropertyStore interface {
	Create(property *entities.Property) error
	Update(id, name, address string) error
	Delete(id string) error
	GetByID(id string) (*entities.Property, error)
	GetAll() ([]entities.Property, error)
	GetAssigned(userID string) ([]entities.Property, error)
	Count() (int, error)
}

type AssignmentStore interface {
	Create(userID, propertyID string) error
	Delete(id string) error
	GetAll() ([]entities.Assignment, error)
	IsAssigned(userID, propertyID string) (bool, error)
	Count() (int, error)
}

type InvoiceStore interface {
	GetByProperty(propertyID string) ([]entities.Invoice, error)
	Count() (int, error)
}

type ContactStore interface {
	Create(msg *entities.ContactMessage) error
	GetAll() ([]entities.ContactMessage, error)
}

type RedirectStore interface {
	Upsert(userID, redirectType, url string) error
	Delete(id string) error
	GetForUser(userID string) (*entities.RedirectSet, error)
	GetAll() ([]entities.RedirectListing, error)
}
