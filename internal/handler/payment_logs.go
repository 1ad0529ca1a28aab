package handler

import (
	"net/http"

	"warungpos/internal/dto"
	"warungpos/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentLogsHandler struct{ svc service.PaymentLogService }

func NewPaymentLogsHandler(svc service.PaymentLogService) *PaymentLogsHandler {
	return &PaymentLogsHandler{svc: svc}
}

// Create POST /v1/payment-log
func (h *PaymentLogsHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentLogRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Payment log created.", resp)
}

// List GET /v1/payment-logs
func (h *PaymentLogsHandler) List(c *gin.Context) {
	resp, pagination, err := h.svc.List(c.Request.Context(), c.Query("page"), c.Query("pageSize"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Payment logs retrieved.", resp, pagination)
}

// Get GET /v1/payment-log/:paymentLogId
func (h *PaymentLogsHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "paymentLogId")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Payment log retrieved.", resp)
}

// Update PATCH /v1/payment-log/:paymentLogId
func (h *PaymentLogsHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "paymentLogId")
	if !ok {
		return
	}
	var req dto.UpdatePaymentLogRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Payment log updated.", resp)
}

// Delete DELETE /v1/payment-log/:paymentLogId
func (h *PaymentLogsHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "paymentLogId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Payment log deleted.", nil)
}
