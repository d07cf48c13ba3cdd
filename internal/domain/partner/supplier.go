package partner

import (
	"strings"
	"time"

	"github.com/procure/backend/internal/domain/shared"
)

// Supplier represents a vendor shared and reused across purchase orders.
// Suppliers are never deleted by order operations; orders reference but
// do not own them.
type Supplier struct {
	shared.BaseEntity
	Name  string `gorm:"type:varchar(256)"`
	Email string `gorm:"type:varchar(256);not null;index"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier. The name may be blank; the email is
// required but not unique.
func NewSupplier(name, email string) (*Supplier, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
	}, nil
}

// Update overwrites the supplier's name and email with the submitted values.
// Resolving a supplier is also how its contact data gets corrected, so this
// runs on every resolve that matches an existing row.
func (s *Supplier) Update(name, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	s.Name = name
	s.Email = email
	s.UpdatedAt = time.Now()

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Supplier email cannot be empty")
	}
	if len(email) > 256 {
		return shared.NewDomainError("INVALID_EMAIL", "Supplier email cannot exceed 256 characters")
	}
	if !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Supplier email must contain @")
	}
	return nil
}
