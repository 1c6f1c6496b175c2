package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/response"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/transport/http/validate"
)

type EventsHandler struct {
	svc   EventService
	clock Clock
}

func NewEventsHandler(svc EventService, clock Clock) *EventsHandler {
	return &EventsHandler{svc: svc, clock: clock}
}

// Public

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := event.ListFilter{State: domain.EventState(strings.ToUpper(strings.TrimSpace(q.Get("state"))))}
	if v := strings.TrimSpace(q.Get("user_id")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			response.Err(w, r, domain.ErrInvalidField("user_id", "must be a positive integer"))
			return
		}
		f.UserID = id
	}

	items, err := h.svc.List(r.Context(), f)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResps(items, h.clock.Now().UTC()))
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := validate.PathID(r, "event_id")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	ev, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(ev, h.clock.Now().UTC()))
}

func (h *EventsHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))
	if keyword == "" {
		response.Err(w, r, domain.ErrMissingField("keyword"))
		return
	}
	items, err := h.svc.Search(r.Context(), keyword)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResps(items, h.clock.Now().UTC()))
}

// Filter accepts category as repeated ?category=a&category=b or ?category[]=a.
// Unparsable page/limit fall back to defaults; a malformed date is rejected.
func (h *EventsHandler) Filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cats := append([]string{}, q["category"]...)
	cats = append(cats, q["category[]"]...)

	f := event.FilterQuery{
		Categories: cats,
		Date:       q.Get("date"),
		Location:   q.Get("location"),
		Page:       validate.QueryInt(r, "page", event.DefaultPage),
		Limit:      validate.QueryInt(r, "limit", event.DefaultLimit),
	}
	// normalized here too so the page metadata reflects the coercion
	if err := f.Normalize(); err != nil {
		response.Err(w, r, err)
		return
	}
	items, err := h.svc.Filter(r.Context(), f)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.PageResp[dto.EventResp]{
		Items: dto.ToEventResps(items, h.clock.Now().UTC()),
		Page:  f.Page,
		Limit: f.Limit,
	})
}

// Owner scoped: /users/{user_id}/events/...

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := validate.PathID(r, "user_id")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var req dto.CreateEventReq
	if err := validate.Decode(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}

	cmd := event.CreateCmd{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		Date:         req.Date.UTC(),
		EndTime:      req.EndTime,
		Location:     req.Location,
		ThumbnailURL: req.ThumbnailURL,
		State:        domain.EventState(req.State),
		Categories:   req.Categories,
	}
	if req.PricingInfo != nil {
		cmd.PricingInfo = *req.PricingInfo
	}
	if req.Capacity != nil {
		cmd.Capacity = *req.Capacity
	}

	ev, err := h.svc.Create(r.Context(), cmd)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToEventResp(ev, h.clock.Now().UTC()))
}

func (h *EventsHandler) GetOwned(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := ownedIDs(w, r)
	if !ok {
		return
	}
	ev, err := h.svc.GetForUser(r.Context(), userID, eventID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(ev, h.clock.Now().UTC()))
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := ownedIDs(w, r)
	if !ok {
		return
	}
	var req dto.UpdateEventReq
	if err := validate.Decode(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	if req.State != nil {
		response.Err(w, r, domain.ErrInvalidField("state", "use the publish, draft or cancel endpoints"))
		return
	}

	ev, err := h.svc.Update(r.Context(), event.UpdateCmd{
		UserID:  userID,
		EventID: eventID,
		Patch:   req.ToEventPatch(),
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(ev, h.clock.Now().UTC()))
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := ownedIDs(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), userID, eventID); err != nil {
		response.Err(w, r, err)
		return
	}
	response.NoContent(w)
}

func (h *EventsHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Publish)
}

func (h *EventsHandler) Draft(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Draft)
}

func (h *EventsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Cancel)
}

func (h *EventsHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, userID, eventID int64) (*domain.Event, error),
) {
	userID, eventID, ok := ownedIDs(w, r)
	if !ok {
		return
	}
	ev, err := apply(r.Context(), userID, eventID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(ev, h.clock.Now().UTC()))
}

// ownedIDs parses {user_id} and {event_id}; on failure it has already written the response.
func ownedIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, err := validate.PathID(r, "user_id")
	if err != nil {
		response.Err(w, r, err)
		return 0, 0, false
	}
	eventID, err := validate.PathID(r, "event_id")
	if err != nil {
		response.Err(w, r, err)
		return 0, 0, false
	}
	return userID, eventID, true
}
