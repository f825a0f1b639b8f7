package customer

import (
	"context"
	"strings"
	"time"

	"ecommerce-backoffice/internal/domain"
	customerrepo "ecommerce-backoffice/internal/repository/customer"
)

// Service orchestrates customer CRUD and enforces email uniqueness.
type Service struct {
	repo customerrepo.Repository
	now  func() time.Time
}

// New creates a Service.
func New(repo customerrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Input carries the fields accepted when creating a customer.
type Input struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Birthday    *string `json:"birthday"`
	IsActive    *bool   `json:"isActive"`
}

// Patch carries a partial update; nil fields are left unchanged.
type Patch struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	Birthday    *string `json:"birthday"`
	IsActive    *bool   `json:"isActive"`
}

// Create registers a new customer after checking email uniqueness.
func (s *Service) Create(ctx context.Context, in Input) (*domain.Customer, error) {
	birthday, err := parseBirthday(in.Birthday)
	if err != nil {
		return nil, err
	}

	c := domain.Customer{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       strings.TrimSpace(strings.ToLower(in.Email)),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Birthday:    birthday,
		IsActive:    true,
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := c.Validate(s.now()); err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(ctx, c.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}

	return s.repo.Create(ctx, c)
}

// Get returns a customer by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// Update merges the patch onto the stored customer. A changed email is
// re-checked for uniqueness, excluding the customer itself.
func (s *Service) Update(ctx context.Context, id int64, p Patch) (*domain.Customer, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if p.FirstName != nil {
		merged.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		merged.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.Email != nil {
		merged.Email = strings.TrimSpace(strings.ToLower(*p.Email))
	}
	if p.PhoneNumber != nil {
		merged.PhoneNumber = strings.TrimSpace(*p.PhoneNumber)
	}
	if p.Birthday != nil {
		birthday, err := parseBirthday(p.Birthday)
		if err != nil {
			return nil, err
		}
		merged.Birthday = birthday
	}
	if p.IsActive != nil {
		merged.IsActive = *p.IsActive
	}
	if err := merged.Validate(s.now()); err != nil {
		return nil, err
	}

	if merged.Email != existing.Email {
		exists, err := s.repo.EmailExists(ctx, merged.Email, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrAlreadyExists
		}
	}

	return s.repo.Update(ctx, merged)
}

// Delete removes a customer.
func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

// List returns customers matching the search term, newest first.
func (s *Service) List(ctx context.Context, search string) ([]domain.Customer, error) {
	return s.repo.List(ctx, search)
}

func parseBirthday(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(*raw))
	if err != nil {
		return nil, domain.ValidationError{Field: "birthday", Reason: "must be YYYY-MM-DD"}
	}
	return &t, nil
}
