package httpserver

import (
	"net/http"

	companysvc "ecommerce-backoffice/internal/service/company"
	"github.com/gin-gonic/gin"
)

func createCompanyHandler(svc CompanyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := pathID(c, "customerId")
		if !ok {
			return
		}
		var in companysvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		created, err := svc.Add(c.Request.Context(), customerID, in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toCompanyDTO(*created))
	}
}

func listCompaniesHandler(svc CompanyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := pathID(c, "customerId")
		if !ok {
			return
		}
		companies, err := svc.ListForCustomer(c.Request.Context(), customerID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCompanyDTOs(companies))
	}
}

func updateCompanyHandler(svc CompanyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "companyId")
		if !ok {
			return
		}
		var p companysvc.Patch
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		updated, err := svc.Update(c.Request.Context(), id, p)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCompanyDTO(*updated))
	}
}

func deleteCompanyHandler(svc CompanyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "companyId")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
