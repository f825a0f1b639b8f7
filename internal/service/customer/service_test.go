package customer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ecommerce-backoffice/internal/domain"
)

// memoryRepo is a lightweight in-memory customer repository for tests.
type memoryRepo struct {
	nextID int64
	byID   map[int64]domain.Customer
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: make(map[int64]domain.Customer)}
}

func (r *memoryRepo) Create(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	for _, existing := range r.byID {
		if strings.EqualFold(existing.Email, c.Email) {
			return nil, domain.ErrAlreadyExists
		}
	}
	r.nextID++
	c.ID = r.nextID
	r.byID[c.ID] = c
	clone := c
	return &clone, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := c
	return &clone, nil
}

func (r *memoryRepo) Update(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	if _, ok := r.byID[c.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	r.byID[c.ID] = c
	clone := c
	return &clone, nil
}

func (r *memoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *memoryRepo) List(_ context.Context, search string) ([]domain.Customer, error) {
	var result []domain.Customer
	for _, c := range r.byID {
		if search == "" || strings.Contains(c.FirstName, search) || strings.Contains(c.LastName, search) || strings.Contains(c.Email, search) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *memoryRepo) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, c := range r.byID {
		if strings.EqualFold(c.Email, email) && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func TestCreate_ReturnsFullName(t *testing.T) {
	svc := New(newMemoryRepo())

	created, err := svc.Create(context.Background(), Input{
		FirstName: "Ana",
		LastName:  "Bo",
		Email:     "ana@x.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.FullName() != "Ana Bo" {
		t.Fatalf("expected full name %q, got %q", "Ana Bo", created.FullName())
	}
	if !created.IsActive {
		t.Fatalf("expected new customer to be active by default")
	}
}

func TestCreate_LowercasesEmailAndRejectsDuplicate(t *testing.T) {
	svc := New(newMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{FirstName: "Ana", LastName: "Bo", Email: "Ana@X.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Email != "ana@x.com" {
		t.Fatalf("expected lowercased email, got %q", created.Email)
	}

	_, err = svc.Create(ctx, Input{FirstName: "Other", LastName: "Person", Email: "ANA@x.com"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreate_BirthdayInFuture(t *testing.T) {
	svc := New(newMemoryRepo())

	birthday := "2999-01-01"
	_, err := svc.Create(context.Background(), Input{
		FirstName: "Ana",
		LastName:  "Bo",
		Email:     "ana@x.com",
		Birthday:  &birthday,
	})
	var vErr domain.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "birthday" {
		t.Fatalf("expected birthday validation error, got %v", err)
	}
}

func TestCreate_BadBirthdayFormat(t *testing.T) {
	svc := New(newMemoryRepo())

	birthday := "01/02/1990"
	_, err := svc.Create(context.Background(), Input{
		FirstName: "Ana",
		LastName:  "Bo",
		Email:     "ana@x.com",
		Birthday:  &birthday,
	})
	var vErr domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdate_PartialMergeKeepsOtherFields(t *testing.T) {
	svc := New(newMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{
		FirstName:   "Ana",
		LastName:    "Bo",
		Email:       "ana@x.com",
		PhoneNumber: "+32470000000",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	last := "Bollen"
	updated, err := svc.Update(ctx, created.ID, Patch{LastName: &last})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.LastName != "Bollen" {
		t.Fatalf("last name not updated: %+v", updated)
	}
	if updated.FirstName != "Ana" || updated.Email != "ana@x.com" || updated.PhoneNumber != "+32470000000" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUpdate_EmailConflictExcludesSelf(t *testing.T) {
	svc := New(newMemoryRepo())
	ctx := context.Background()

	first, err := svc.Create(ctx, Input{FirstName: "Ana", LastName: "Bo", Email: "ana@x.com"})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := svc.Create(ctx, Input{FirstName: "Ben", LastName: "Cy", Email: "ben@x.com"}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	// keeping the same email is not a conflict
	same := "ana@x.com"
	if _, err := svc.Update(ctx, first.ID, Patch{Email: &same}); err != nil {
		t.Fatalf("update with own email: %v", err)
	}

	taken := "ben@x.com"
	if _, err := svc.Update(ctx, first.ID, Patch{Email: &taken}); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestDelete_Missing(t *testing.T) {
	svc := New(newMemoryRepo())
	if err := svc.Delete(context.Background(), 404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
