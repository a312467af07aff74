package handlers

import (
	"net/http"

	"github.com/Totarae/EazyBank/internal/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// EnvironmentSource — источник свойств приложений.
type EnvironmentSource interface {
	Environment(application, profile string) (*config.Environment, error)
}

// ConfigServerHandler отдаёт свойства приложений по GET /{application}/{profile}.
type ConfigServerHandler struct {
	Source EnvironmentSource
	Logger *zap.Logger
}

func NewConfigServerHandler(source EnvironmentSource, logger *zap.Logger) *ConfigServerHandler {
	return &ConfigServerHandler{Source: source, Logger: logger}
}

// Register монтирует маршрут в корень: сервисы обращаются к {base}/{application}/{profile}
func (h *ConfigServerHandler) Register(r chi.Router) {
	r.Get("/{application}/{profile}", h.Environment)
}

func (h *ConfigServerHandler) Environment(w http.ResponseWriter, r *http.Request) {
	env, err := h.Source.Environment(chi.URLParam(r, "application"), chi.URLParam(r, "profile"))
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}
