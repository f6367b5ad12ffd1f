package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simvia/internal/application/checkout"
	"simvia/internal/shared/logger"
	"simvia/internal/shared/utils"
)

type CheckoutHandler struct {
	checkout *checkout.Service
	logger   logger.Interface
}

func NewCheckoutHandler(service *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: service,
		logger:   logger.NewLogger(),
	}
}

type checkoutItemRequest struct {
	ProductID uint  `json:"productId" binding:"required"`
	VariantID *uint `json:"variantId"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type createOrderRequest struct {
	CustomerEmail string                `json:"customerEmail" binding:"required,email"`
	Items         []checkoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid checkout request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := checkout.CreateOrderCommand{
		CustomerEmail: req.CustomerEmail,
		Items:         make([]checkout.ItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, checkout.ItemInput{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	dto, err := h.checkout.CreateOrder(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto, "order created")
}
