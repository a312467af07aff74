package handlers

import (
	"net/http"
	"runtime"

	"github.com/Totarae/EazyBank/internal/model"
	"github.com/go-chi/chi/v5"
)

// AdminHandler — служебные эндпоинты, одинаковые для всех сервисов.
type AdminHandler struct {
	BuildVersion string
	Contact      model.ContactInfo
}

func NewAdminHandler(buildVersion string, contact model.ContactInfo) *AdminHandler {
	return &AdminHandler{BuildVersion: buildVersion, Contact: contact}
}

func (h *AdminHandler) Register(r chi.Router) {
	r.Get("/build-info", h.BuildInfo)
	r.Get("/go-version", h.GoVersion)
	r.Get("/contact-info", h.ContactInfo)
}

func (h *AdminHandler) BuildInfo(w http.ResponseWriter, _ *http.Request) {
	writeText(w, h.BuildVersion)
}

func (h *AdminHandler) GoVersion(w http.ResponseWriter, _ *http.Request) {
	writeText(w, runtime.Version())
}

func (h *AdminHandler) ContactInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.Contact)
}

func writeText(w http.ResponseWriter, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(s))
}
