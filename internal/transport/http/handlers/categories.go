package handlers

import (
	"net/http"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/response"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/validate"
)

type CategoriesHandler struct {
	svc CategoryService
}

func NewCategoriesHandler(svc CategoryService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// Create takes {"categories": ["Music", ...]} and inserts all or none.
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoriesReq
	if err := validate.Decode(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	out, err := h.svc.CreateMany(r.Context(), req.Categories)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToCategoryResps(out))
}

func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToCategoryResps(out))
}

func (h *CategoriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := validate.PathID(r, "category_id")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.CategoryResp{CategoryID: c.ID, Name: c.Name})
}

func (h *CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := validate.PathID(r, "category_id")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var req dto.UpdateCategoryReq
	if err := validate.Decode(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	c, err := h.svc.Update(r.Context(), id, req.Name)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.CategoryResp{CategoryID: c.ID, Name: c.Name})
}

func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := validate.PathID(r, "category_id")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, r, err)
		return
	}
	response.NoContent(w)
}
