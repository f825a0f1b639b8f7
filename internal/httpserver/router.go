package httpserver

import (
	"context"
	"log"

	"ecommerce-backoffice/internal/domain"
	addresssvc "ecommerce-backoffice/internal/service/address"
	checkoutsvc "ecommerce-backoffice/internal/service/checkout"
	companysvc "ecommerce-backoffice/internal/service/company"
	customersvc "ecommerce-backoffice/internal/service/customer"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CustomerService is the customer surface the handlers depend on.
type CustomerService interface {
	Create(ctx context.Context, in customersvc.Input) (*domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, id int64, p customersvc.Patch) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, search string) ([]domain.Customer, error)
}

// AddressService is the address surface the handlers depend on. Update and
// Delete scope the address to its owning customer.
type AddressService interface {
	Add(ctx context.Context, customerID int64, in addresssvc.Input) (*domain.Address, error)
	Update(ctx context.Context, customerID, addressID int64, p addresssvc.Patch) (*domain.Address, error)
	Delete(ctx context.Context, customerID, addressID int64) error
	ListForCustomer(ctx context.Context, customerID int64) ([]domain.Address, error)
}

// CompanyService is the company surface the handlers depend on.
type CompanyService interface {
	Add(ctx context.Context, customerID int64, in companysvc.Input) (*domain.Company, error)
	Update(ctx context.Context, id int64, p companysvc.Patch) (*domain.Company, error)
	Delete(ctx context.Context, id int64) error
	ListForCustomer(ctx context.Context, customerID int64) ([]domain.Company, error)
}

// CheckoutService proxies checkout session creation.
type CheckoutService interface {
	CreateSession(ctx context.Context, in checkoutsvc.Input) (*checkoutsvc.Session, error)
}

// CountryLister reads the countries reference data.
type CountryLister interface {
	List(ctx context.Context) ([]domain.Country, error)
}

// Deps bundles the services the router depends on.
type Deps struct {
	CustomerSvc CustomerService
	AddressSvc  AddressService
	CompanySvc  CompanyService
	CheckoutSvc CheckoutService
	Countries   CountryLister
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(opts.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = opts.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	if opts.JWTSecret != "" {
		api.Use(authMiddleware(opts.JWTSecret))
	}

	customers := api.Group("/customers")
	customers.POST("", createCustomerHandler(deps.CustomerSvc))
	customers.GET("", listCustomersHandler(deps.CustomerSvc))
	customers.GET("/:customerId", getCustomerHandler(deps.CustomerSvc))
	customers.PUT("/:customerId", updateCustomerHandler(deps.CustomerSvc))
	customers.DELETE("/:customerId", deleteCustomerHandler(deps.CustomerSvc))

	customers.POST("/:customerId/addresses", createAddressHandler(deps.AddressSvc))
	customers.GET("/:customerId/addresses", listAddressesHandler(deps.AddressSvc))
	customers.PUT("/:customerId/addresses/:addressId", updateAddressHandler(deps.AddressSvc))
	customers.DELETE("/:customerId/addresses/:addressId", deleteAddressHandler(deps.AddressSvc))

	customers.POST("/:customerId/companies", createCompanyHandler(deps.CompanySvc))
	customers.GET("/:customerId/companies", listCompaniesHandler(deps.CompanySvc))
	api.PUT("/companies/:companyId", updateCompanyHandler(deps.CompanySvc))
	api.DELETE("/companies/:companyId", deleteCompanyHandler(deps.CompanySvc))

	api.GET("/countries", listCountriesHandler(deps.Countries))
	api.POST("/checkout/sessions", createCheckoutSessionHandler(deps.CheckoutSvc))

	return router
}
