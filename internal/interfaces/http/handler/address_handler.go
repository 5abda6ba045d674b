package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KishoreVB70/icp-marketplace/internal/domain/identity"
)

// AddressHandler resolves a principal to its ledger display address. Pure
// derivation, no store access.
type AddressHandler struct{}

func NewAddressHandler() *AddressHandler {
	return &AddressHandler{}
}

func (h *AddressHandler) PrincipalToAddress(c *gin.Context) {
	address, err := identity.AddressFromPrincipalHex(c.Param("principalHex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": address})
}
