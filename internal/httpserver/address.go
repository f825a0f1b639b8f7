package httpserver

import (
	"net/http"

	addresssvc "ecommerce-backoffice/internal/service/address"
	"github.com/gin-gonic/gin"
)

func createAddressHandler(svc AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := pathID(c, "customerId")
		if !ok {
			return
		}
		var in addresssvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		created, err := svc.Add(c.Request.Context(), customerID, in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toAddressDTO(*created))
	}
}

func listAddressesHandler(svc AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := pathID(c, "customerId")
		if !ok {
			return
		}
		addresses, err := svc.ListForCustomer(c.Request.Context(), customerID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toAddressDTOs(addresses))
	}
}

func updateAddressHandler(svc AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := pathID(c, "customerId")
		if !ok {
			return
		}
		addressID, ok := pathID(c, "addressId")
		if !ok {
			return
		}
		var p addresssvc.Patch
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		updated, err := svc.Update(c.Request.Context(), customerID, addressID, p)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toAddressDTO(*updated))
	}
}

func deleteAddressHandler(svc AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := pathID(c, "customerId")
		if !ok {
			return
		}
		addressID, ok := pathID(c, "addressId")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), customerID, addressID); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
