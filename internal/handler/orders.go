package handler

import (
	"fmt"
	"net/http"

	"warungpos/internal/dto"
	"warungpos/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// Create POST /v1/order
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Order created.", resp)
}

// List GET /v1/orders
func (h *OrdersHandler) List(c *gin.Context) {
	var q dto.OrderListQuery
	_ = c.ShouldBindQuery(&q)

	resp, pagination, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Orders retrieved.", resp, pagination)
}

// Get GET /v1/order/:orderId
func (h *OrdersHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "orderId")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Order retrieved.", resp)
}

// Update PATCH /v1/order/:orderId
func (h *OrdersHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "orderId")
	if !ok {
		return
	}
	var req dto.UpdateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Order updated.", resp)
}

// Delete DELETE /v1/order/:orderId
func (h *OrdersHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "orderId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Order deleted.", nil)
}

// Receipt GET /v1/order/:orderId/receipt
func (h *OrdersHandler) Receipt(c *gin.Context) {
	id, ok := paramID(c, "orderId")
	if !ok {
		return
	}
	pdf, err := h.svc.Receipt(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="receipt_%s.pdf"`, id.String()[:8]))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
