package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/KishoreVB70/icp-marketplace/internal/application/order"
	ledgerdomain "github.com/KishoreVB70/icp-marketplace/internal/domain/ledger"
	productdomain "github.com/KishoreVB70/icp-marketplace/internal/domain/product"
	"github.com/KishoreVB70/icp-marketplace/internal/interfaces/http/middleware"
)

type OrderHandler struct {
	svc *app.Service
}

func NewOrderHandler(svc *app.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type createOrderRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.svc.CreateOrder(c.Request.Context(), middleware.Caller(c), req.ProductID)
	if err != nil {
		// The underlying message always surfaces; transfer failures are
		// never masked behind a generic error.
		var transferErr *ledgerdomain.TransferError
		switch {
		case errors.Is(err, productdomain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.As(err, &transferErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": transferErr.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, o)
}
