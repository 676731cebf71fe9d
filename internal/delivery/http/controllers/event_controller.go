package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

// EventView is an event as served by the API, with its human-readable schedule.
// swagger:model EventView
type EventView struct {
	*domain.Event
	DisplayDate string `json:"displayDate"`
	DisplayTime string `json:"displayTime"`
}

// NewEventView renders e through its display variant.
func NewEventView(e *domain.Event) EventView {
	d := e.Display()
	return EventView{Event: e, DisplayDate: d.FormatDate(), DisplayTime: d.FormatTime()}
}

// EventResponse is the body for a single event (POST /events 201, GET /events/{slug} 200).
type EventResponse struct {
	Message string    `json:"message"`
	Event   EventView `json:"event"`
}

// ListEventsResponse is the body for GET /events (200).
type ListEventsResponse struct {
	Message    string                 `json:"message"`
	Events     []EventView            `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListTagsResponse is the body for GET /events/tags (200).
type ListTagsResponse struct {
	Message string   `json:"message"`
	Tags    []string `json:"tags"`
}

type EventController struct {
	Logger       *slog.Logger
	Service      domain.EventService
	ExposeErrors bool
}

func NewEventController(logger *slog.Logger, svc domain.EventService, exposeErrors bool) *EventController {
	return &EventController{
		Logger:       logger,
		Service:      svc,
		ExposeErrors: exposeErrors,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Validates and normalizes the event, derives its slug from title and date and its UTC start from date, time and timezone. When organizer auth is enabled a Bearer token is required.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body domain.EventInput true "Event data"
// @Success 201 {object} controllers.EventResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 409 {object} helpers.APIError "code: conflict (slug taken)"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var input domain.EventInput
	if !helpers.DecodeJSON(w, r, &input) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, "Failed to create event", err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, EventResponse{
		Message: "Event created successfully",
		Event:   NewEventView(event),
	})
}

// ListEvents godoc
// @Summary List events
// @Description Newest first unless sort is given. Optional filters: q (substring of title, location or description), mode, tag.
// @Tags events
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Items per page (default 20, max 100)"
// @Param q query string false "Search text"
// @Param mode query string false "online, offline or hybrid"
// @Param tag query string false "Exact tag"
// @Param sort query string false "date-asc or date-desc"
// @Success 200 {object} controllers.ListEventsResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	q := r.URL.Query()
	filter := domain.EventFilter{
		Search: q.Get("q"),
		Mode:   domain.EventMode(strings.ToLower(strings.TrimSpace(q.Get("mode")))),
		Tag:    q.Get("tag"),
		Sort:   domain.EventSort(strings.ToLower(strings.TrimSpace(q.Get("sort")))),
	}
	events, total, err := c.Service.ListEvents(r.Context(), filter, params)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, "Failed to fetch events", err)
		return
	}
	views := make([]EventView, len(events))
	for i, e := range events {
		views[i] = NewEventView(e)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Message:    "Events fetched successfully",
		Events:     views,
		Pagination: helpers.NewPaginationMeta(params.Page, params.Limit, total),
	})
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEventBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, "Failed to fetch event", err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventResponse{
		Message: "Event fetched successfully",
		Event:   NewEventView(event),
	})
}

// ListTags godoc
// @Summary List tags
// @Description Sorted distinct tags across all events.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListTagsResponse
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/tags [get]
func (c *EventController) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.Service.ListTags(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, "Failed to fetch tags", err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListTagsResponse{Message: "Tags fetched successfully", Tags: tags})
}
