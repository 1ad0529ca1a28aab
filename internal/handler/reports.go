package handler

import (
	"net/http"

	"warungpos/internal/dto"
	"warungpos/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// SalesSummary GET /v1/reports/sales-summary
func (h *ReportsHandler) SalesSummary(c *gin.Context) {
	var q dto.SalesSummaryQuery
	_ = c.ShouldBindQuery(&q)

	resp, err := h.svc.SalesSummary(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Sales summary retrieved.", resp)
}
