// Package api exposes HTTP handlers for the activity signup service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// Handler coordinates HTTP requests with the activity registry.
type Handler struct {
	registry *domain.Registry
}

// NewHandler builds a Handler.
func NewHandler(registry *domain.Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	mux.HandleFunc("/", h.root)
	mux.HandleFunc("/activities", h.listActivities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects the bare path to the bundled front-end. ServeMux routes every
// unmatched path here, so anything other than "/" is a plain 404.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeDetail(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	activities := h.registry.List()
	out := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		out[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, out)
}

// activityAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. The activity name may contain spaces
// ("Chess Club"); ServeMux hands us the percent-decoded path.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		writeDetail(w, http.StatusNotFound, "unknown route")
		return
	}
	name, action := rest[:idx], rest[idx+1:]

	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeDetail(w, http.StatusBadRequest, "missing email parameter")
		return
	}

	switch {
	case action == "signup" && r.Method == http.MethodPost:
		h.signup(w, name, email)
	case action == "unregister" && r.Method == http.MethodDelete:
		h.unregister(w, name, email)
	default:
		writeDetail(w, http.StatusMethodNotAllowed, "unsupported method")
	}
}

func (h *Handler) signup(w http.ResponseWriter, name, email string) {
	if err := h.registry.Enroll(name, email); err != nil {
		observability.RecordSignup(name, "rejected")
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			writeDetail(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrAlreadySignedUp):
			writeDetail(w, http.StatusBadRequest, "Student is already signed up")
		default:
			writeDetail(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	observability.RecordSignup(name, "ok")
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, name, email string) {
	if err := h.registry.Withdraw(name, email); err != nil {
		observability.RecordUnregister(name, "rejected")
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			writeDetail(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrNotSignedUp):
			writeDetail(w, http.StatusBadRequest, "Student is not signed up for this activity")
		default:
			writeDetail(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	observability.RecordUnregister(name, "ok")
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// ActivityView is the wire shape of one activity in GET /activities.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse confirms a successful signup or unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse carries a client-visible failure description.
type DetailResponse struct {
	Detail string `json:"detail"`
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, DetailResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    activity.Participants,
	}
}
