package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"warungpos/internal/apierror"
	"warungpos/internal/dto"
	"warungpos/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriesHandler struct{ svc service.CategoryService }

func NewCategoriesHandler(svc service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// Create POST /v1/category
//
// The body is either a single category object or an array of them; the array
// form inserts all-or-nothing.
func (h *CategoriesHandler) Create(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("Invalid request body."))
		return
	}

	if isJSONArray(body) {
		var reqs []dto.CreateCategoryRequest
		if err := json.Unmarshal(body, &reqs); err != nil || len(reqs) == 0 {
			c.JSON(http.StatusBadRequest, apierror.BadRequest("Invalid request body."))
			return
		}
		for i := range reqs {
			if !validateStruct(c, &reqs[i]) {
				return
			}
		}
		resp, err := h.svc.CreateBulk(c.Request.Context(), reqs)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "Categories created.", resp)
		return
	}

	var req dto.CreateCategoryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("Invalid request body."))
		return
	}
	if !validateStruct(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Category created.", resp)
}

// isJSONArray reports whether the first non-space byte opens an array.
func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// List GET /v1/categories
func (h *CategoriesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Categories retrieved.", resp)
}

// Get GET /v1/category/:categoryId
func (h *CategoriesHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "categoryId")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Category retrieved.", resp)
}

// Update PATCH /v1/category/:categoryId
func (h *CategoriesHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "categoryId")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Category updated.", resp)
}

// Delete DELETE /v1/category/:categoryId
func (h *CategoriesHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "categoryId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Category deleted.", nil)
}
