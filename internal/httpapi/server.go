package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mangastudio/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	// Validate runs a full validation pass. An empty path selects the
	// service's configured manifest.
	Validate(manifestPath string) (*types.Report, error)
	Ready() bool
}

// NewMux builds the HTTP handler exposing svc.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(requestLogger)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	h := &handlers{svc: svc}
	r.Get("/models", h.listModels)
	r.Get("/models/{key}", h.getModel)
	r.Get("/healthz", h.healthz)
	r.Get("/readyz", h.readyz)

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	MountSwagger(r)

	return r
}

type handlers struct {
	svc Service
}

// listModels godoc
// @Summary      Validate all declared model assets
// @Description  Loads the manifest and checks every asset. Use format=flat for the key -> entry document.
// @Tags         models
// @Produce      json
// @Param        format  query     string  false  "flat for the key -> entry document"
// @Success      200     {object}  types.ModelsResponse
// @Failure      500     {object}  types.ErrorResponse
// @Failure      503     {object}  types.ErrorResponse
// @Router       /models [get]
func (h *handlers) listModels(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Validate("")
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	var body any = types.NewModelsResponse(rep)
	if r.URL.Query().Get("format") == "flat" {
		body = rep.Flatten()
	}
	writeJSON(w, http.StatusOK, body)
}

// getModel godoc
// @Summary      Validate one declared model asset
// @Tags         models
// @Produce      json
// @Param        key  path      string  true  "manifest key"
// @Success      200  {object}  types.Result
// @Failure      404  {object}  types.ErrorResponse
// @Failure      503  {object}  types.ErrorResponse
// @Router       /models/{key} [get]
func (h *handlers) getModel(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	rep, err := h.svc.Validate("")
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	res, ok := rep.Lookup(key)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "model not declared: "+key)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// healthz godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  plain
// @Success  200  {string}  string  "ok"
// @Router   /healthz [get]
func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// readyz godoc
// @Summary  Readiness probe: the manifest can be loaded
// @Tags     health
// @Produce  plain
// @Success  200  {string}  string  "ready"
// @Failure  503  {string}  string  "manifest unavailable"
// @Router   /readyz [get]
func (h *handlers) readyz(w http.ResponseWriter, r *http.Request) {
	if h.svc.Ready() {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte("manifest unavailable"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
