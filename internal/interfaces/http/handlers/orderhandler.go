package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"simvia/internal/application/orders"
	"simvia/internal/shared/logger"
	"simvia/internal/shared/utils"
)

type OrderHandler struct {
	orders *orders.Service
	logger logger.Interface
}

func NewOrderHandler(service *orders.Service) *OrderHandler {
	return &OrderHandler{
		orders: service,
		logger: logger.NewLogger(),
	}
}

// LookupOrder is the customer-facing fetch: the order number alone is not
// enough, the matching email must be supplied too.
func (h *OrderHandler) LookupOrder(c *gin.Context) {
	number := c.Param("number")
	email := c.Query("email")

	dto, err := h.orders.GetCustomerOrder(c.Request.Context(), number, email)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, dto)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	list, err := h.orders.List(c.Request.Context(), orders.ListQuery{
		Status:   c.Query("status"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, list.Orders, list.Total, list.Page, list.PageSize)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order id")
		return
	}

	dto, err := h.orders.Get(c.Request.Context(), uint(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, dto)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid status update request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.orders.ChangeStatus(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, dto)
}
