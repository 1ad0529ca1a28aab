package handler

import (
	"net/http"

	"warungpos/internal/dto"
	"warungpos/internal/service"

	"github.com/gin-gonic/gin"
)

type MenusHandler struct{ svc service.MenuService }

func NewMenusHandler(svc service.MenuService) *MenusHandler {
	return &MenusHandler{svc: svc}
}

// Create POST /v1/menu (multipart form, optional menuImage)
func (h *MenusHandler) Create(c *gin.Context) {
	var req dto.CreateMenuRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Menu created.", resp)
}

// List GET /v1/menus
//
// All filters combine as a conjunction; malformed filter values are dropped.
// mostOrdered=true switches to the aggregated ranking view.
func (h *MenusHandler) List(c *gin.Context) {
	var q dto.MenuListQuery
	_ = c.ShouldBindQuery(&q)

	resp, pagination, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "Menus retrieved.", resp, pagination)
}

// Get GET /v1/menu/:menuId
func (h *MenusHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "menuId")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Menu retrieved.", resp)
}

// Update PATCH /v1/menu/:menuId (multipart form, optional menuImage)
func (h *MenusHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "menuId")
	if !ok {
		return
	}
	var req dto.UpdateMenuRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Menu updated.", resp)
}

// Delete DELETE /v1/menu/:menuId
func (h *MenusHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "menuId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Menu deleted.", nil)
}

// PriceCheck GET /v1/menu-price/:menuId (public, cached)
func (h *MenusHandler) PriceCheck(c *gin.Context) {
	id, ok := paramID(c, "menuId")
	if !ok {
		return
	}
	resp, err := h.svc.PriceCheck(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Price retrieved.", resp)
}
