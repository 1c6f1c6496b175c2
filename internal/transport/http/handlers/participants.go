package handlers

import (
	"net/http"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/participant"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/response"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/validate"
)

type ParticipantsHandler struct {
	svc ParticipantService
}

func NewParticipantsHandler(svc ParticipantService) *ParticipantsHandler {
	return &ParticipantsHandler{svc: svc}
}

// Create registers {user_id} for the event named in the body.
func (h *ParticipantsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := validate.PathID(r, "user_id")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var req dto.CreateRSVPReq
	if err := validate.Decode(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	p, err := h.svc.Add(r.Context(), participant.AddCmd{
		UserID:        userID,
		EventID:       req.EventID,
		RSVPDate:      req.RSVPDate,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToParticipantResp(p))
}

func (h *ParticipantsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := ownedIDs(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Get(r.Context(), userID, eventID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToParticipantResp(p))
}

func (h *ParticipantsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := ownedIDs(w, r)
	if !ok {
		return
	}
	var req dto.UpdateRSVPReq
	if err := validate.Decode(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	p, err := h.svc.Update(r.Context(), participant.UpdateCmd{
		UserID:  userID,
		EventID: eventID,
		Patch: domain.ParticipantPatch{
			RSVPDate:      req.RSVPDate,
			PaymentStatus: req.PaymentStatus,
		},
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToParticipantResp(p))
}

func (h *ParticipantsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := ownedIDs(w, r)
	if !ok {
		return
	}
	if err := h.svc.Remove(r.Context(), userID, eventID); err != nil {
		response.Err(w, r, err)
		return
	}
	response.NoContent(w)
}

func (h *ParticipantsHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := validate.PathID(r, "event_id")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	items, err := h.svc.ListByEvent(r.Context(), eventID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToParticipantResps(items))
}
