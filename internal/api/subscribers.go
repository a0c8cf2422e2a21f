package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/channelhub/subscribers-api/internal/domain"
	"github.com/channelhub/subscribers-api/internal/store"
)

const msgNotFound = "Subscriber not found"
const msgMissingFields = "Name and subscribedChannel are required."

type SubscriberHandler struct {
	store store.Subscribers
}

func NewSubscriberHandler(s store.Subscribers) *SubscriberHandler {
	return &SubscriberHandler{store: s}
}

func (h *SubscriberHandler) List(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.store.ListSubscribers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, subscribers)
}

func (h *SubscriberHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.store.ListSubscriberNames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, names)
}

// Get collapses not-found, malformed ids and store failures into one 400
// response. Clients relying on the published contract see a single
// "Subscriber not found" outcome for all three.
func (h *SubscriberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sub, err := h.store.GetSubscriber(r.Context(), id)
	if err != nil || sub == nil {
		respondError(w, http.StatusBadRequest, msgNotFound)
		return
	}

	respondJSON(w, http.StatusOK, sub)
}

func (h *SubscriberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSubscriberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	sub, err := h.store.CreateSubscriber(r.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrMissingFields) {
			respondError(w, http.StatusBadRequest, msgMissingFields)
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, sub)
}
