package handler

import (
	"net/http"

	"warungpos/internal/dto"
	"warungpos/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderLinesHandler struct{ svc service.OrderLineService }

func NewOrderLinesHandler(svc service.OrderLineService) *OrderLinesHandler {
	return &OrderLinesHandler{svc: svc}
}

// Create POST /v1/order-detail
func (h *OrderLinesHandler) Create(c *gin.Context) {
	var req dto.CreateOrderLineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Order detail created.", resp)
}

// List GET /v1/order-details
func (h *OrderLinesHandler) List(c *gin.Context) {
	resp, pagination, err := h.svc.List(c.Request.Context(), c.Query("page"), c.Query("pageSize"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Order details retrieved.", resp, pagination)
}

// Get GET /v1/order-detail/:orderDetailId
func (h *OrderLinesHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "orderDetailId")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Order detail retrieved.", resp)
}

// Update PATCH /v1/order-detail/:orderDetailId
func (h *OrderLinesHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "orderDetailId")
	if !ok {
		return
	}
	var req dto.UpdateOrderLineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Order detail updated.", resp)
}

// Delete DELETE /v1/order-detail/:orderDetailId
func (h *OrderLinesHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "orderDetailId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Order detail deleted.", nil)
}
