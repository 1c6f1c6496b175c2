package handlers

import (
	"net/http"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/user"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/response"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/validate"
)

type UsersHandler struct {
	svc   UserService
	clock Clock
}

func NewUsersHandler(svc UserService, clock Clock) *UsersHandler {
	return &UsersHandler{svc: svc, clock: clock}
}

func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserReq
	if err := validate.Decode(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	u, err := h.svc.Register(r.Context(), user.RegisterCmd{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Profile:  req.Profile(),
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToUserResp(u))
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := validate.PathID(r, "user_id")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToUserResp(u))
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := validate.PathID(r, "user_id")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var req dto.UpdateUserReq
	if err := validate.Decode(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	u, err := h.svc.Update(r.Context(), user.UpdateCmd{
		UserID:   id,
		Password: req.Password,
		Patch:    req.ToUserPatch(),
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToUserResp(u))
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := validate.PathID(r, "user_id")
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

func (h *UsersHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	id, err := validate.PathID(r, "user_id")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	items, err := h.svc.ListEvents(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResps(items, h.clock.Now().UTC()))
}

func (h *UsersHandler) ListRSVPs(w http.ResponseWriter, r *http.Request) {
	id, err := validate.PathID(r, "user_id")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	items, err := h.svc.ListRSVPs(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToParticipantResps(items))
}
