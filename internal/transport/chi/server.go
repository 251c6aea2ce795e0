// Package chi implements the HTTP transport over the chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/localeats/localeats/internal/domain"
	chatuc "github.com/localeats/localeats/internal/usecase/chat"
	healthuc "github.com/localeats/localeats/internal/usecase/health"
	restaurantuc "github.com/localeats/localeats/internal/usecase/restaurant"
	reviewuc "github.com/localeats/localeats/internal/usecase/review"
	"github.com/localeats/localeats/internal/version"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the use case services over HTTP.
type Server struct {
	chat          *chatuc.Service
	reviews       *reviewuc.Service
	restaurants   *restaurantuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	validate      *validator.Validate
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	chat *chatuc.Service,
	reviews *reviewuc.Service,
	restaurants *restaurantuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		chat:        chat,
		reviews:     reviews,
		restaurants: restaurants,
		health:      health,
		logger:      logger,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidID, http.StatusBadRequest, CodeInvalidID),
		sentinelHandler(domain.ErrRestaurantNotFound, http.StatusNotFound, CodeRestaurantNotFound),
		sentinelHandler(domain.ErrInvalidReview, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrInvalidRestaurant, http.StatusBadRequest, CodeValidationFailed),
	}
	return s
}

// Routes mounts all API routes on the router.
func (s *Server) Routes(r chirouter.Router) {
	r.Get("/", s.Root)
	r.Get("/health", s.Health)
	r.Get("/metrics", s.Metrics)

	r.Post("/api/chat", s.Chat)
	r.Post("/api/reviews", s.CreateReview)
	r.Get("/api/restaurants", s.ListRestaurants)
	r.Get("/api/restaurants/{id}", s.GetRestaurant)
	r.Post("/api/seed", s.Seed)
}

// Chat handles POST /api/chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := s.chat.Search(r.Context(), req.Query, req.City)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Answer:  res.Answer,
		Results: restaurantsToResponse(res.Restaurants),
	})
}

// CreateReview handles POST /api/reviews.
func (s *Server) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	res, err := s.reviews.Submit(
		r.Context(), req.RestaurantID, req.UserName, req.Rating, req.Comment, req.Photos,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewResponse{
		Status:      "ok",
		ReviewID:    res.ReviewID,
		RatingAvg:   res.RatingAvg,
		RatingCount: res.RatingCount,
	})
}

// ListRestaurants handles GET /api/restaurants.
func (s *Server) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	items, err := s.restaurants.List(r.Context(), city)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, restaurantsToResponse(items))
}

// GetRestaurant handles GET /api/restaurants/{id}.
func (s *Server) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	detail, err := s.restaurants.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, restaurantDetailResponse{
		Restaurant: restaurantToResponse(&detail.Restaurant),
		Reviews:    reviewsToItems(detail.Reviews),
	})
}

// Seed handles POST /api/seed.
func (s *Server) Seed(w http.ResponseWriter, r *http.Request) {
	ids, seeded, err := s.restaurants.Seed(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if !seeded {
		writeJSON(w, http.StatusOK, seedResponse{Status: "ok", Message: "Already seeded"})
		return
	}
	writeJSON(w, http.StatusOK, seedResponse{Status: "ok", Inserted: ids})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	rep := s.health.Check(r.Context())

	status := http.StatusOK
	if rep.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthToResponse(rep, version.Version))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{Service: "localeats", Version: version.Version})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidID,
		domain.ErrRestaurantNotFound,
		domain.ErrInvalidReview,
		domain.ErrInvalidRestaurant,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
