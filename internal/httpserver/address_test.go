package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecommerce-backoffice/internal/domain"
	addresssvc "ecommerce-backoffice/internal/service/address"
	"github.com/gin-gonic/gin"
)

type stubAddressSvc struct {
	address   *domain.Address
	addresses []domain.Address
	err       error
}

func (s *stubAddressSvc) Add(_ context.Context, _ int64, _ addresssvc.Input) (*domain.Address, error) {
	return s.address, s.err
}

func (s *stubAddressSvc) Update(_ context.Context, _, _ int64, _ addresssvc.Patch) (*domain.Address, error) {
	return s.address, s.err
}

func (s *stubAddressSvc) Delete(_ context.Context, _, _ int64) error { return s.err }

func (s *stubAddressSvc) ListForCustomer(_ context.Context, _ int64) ([]domain.Address, error) {
	return s.addresses, s.err
}

func TestCreateAddressHandler_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.AddressSvc = &stubAddressSvc{
		address: &domain.Address{ID: 3, CustomerID: 1, AddressType: domain.AddressTypeShipping, Address: "12 Rue Neuve", PostalCode: "4000", City: "Liège", CountryID: 1, CountryName: "Belgium", IsDefault: true},
	}
	router := buildRouter(logDiscard(), nil, deps, Options{})

	body := `{"address":"12 Rue Neuve","postalCode":"4000","city":"Liège","countryId":1,"isDefault":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers/1/addresses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"countryName":"Belgium"`) {
		t.Fatalf("expected joined country name in body: %s", rec.Body.String())
	}
}

func TestCreateAddressHandler_CustomerMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.AddressSvc = &stubAddressSvc{err: domain.ErrNotFound}
	router := buildRouter(logDiscard(), nil, deps, Options{})

	body := `{"address":"12 Rue Neuve","postalCode":"4000","city":"Liège","countryId":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers/99/addresses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateAddressHandler_Duplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.AddressSvc = &stubAddressSvc{err: domain.ErrAlreadyExists}
	router := buildRouter(logDiscard(), nil, deps, Options{})

	body := `{"address":"12 Rue Neuve","postalCode":"4000","city":"Liège","countryId":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers/1/addresses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestListAddressesHandler_PreservesOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.AddressSvc = &stubAddressSvc{addresses: []domain.Address{
		{ID: 2, CustomerID: 1, AddressType: domain.AddressTypeShipping, Address: "B", PostalCode: "4000", City: "Liège", CountryID: 1, IsDefault: true},
		{ID: 1, CustomerID: 1, AddressType: domain.AddressTypeShipping, Address: "A", PostalCode: "4000", City: "Liège", CountryID: 1},
	}}
	router := buildRouter(logDiscard(), nil, deps, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/customers/1/addresses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []addressDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || !got[0].IsDefault {
		t.Fatalf("expected default first, got %+v", got)
	}
}

func TestDeleteAddressHandler_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.AddressSvc = &stubAddressSvc{err: domain.ErrNotFound}
	router := buildRouter(logDiscard(), nil, deps, Options{})

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/1/addresses/9", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
