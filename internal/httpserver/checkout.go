package httpserver

import (
	"net/http"

	checkoutsvc "ecommerce-backoffice/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

func createCheckoutSessionHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkoutsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		sess, err := svc.CreateSession(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sess)
	}
}

func listCountriesHandler(countries CountryLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := countries.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
