package chi

import (
	"time"

	"github.com/localeats/localeats/internal/domain"
	healthuc "github.com/localeats/localeats/internal/usecase/health"
)

// ErrorCode identifies an API error class.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest         ErrorCode = "bad_request"
	CodeValidationFailed   ErrorCode = "validation_failed"
	CodeInvalidID          ErrorCode = "invalid_id"
	CodeRestaurantNotFound ErrorCode = "restaurant_not_found"
	CodeUnauthorized       ErrorCode = "unauthorized"
	CodeInternalError      ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

type chatRequest struct {
	Query string `json:"query"`
	City  string `json:"city"`
}

type chatResponse struct {
	Answer  string               `json:"answer"`
	Results []restaurantResponse `json:"results"`
}

type reviewRequest struct {
	RestaurantID string   `json:"restaurant_id" validate:"required"`
	UserName     string   `json:"user_name" validate:"required,max=120"`
	Rating       int      `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string   `json:"comment" validate:"max=2000"`
	Photos       []string `json:"photos" validate:"max=10,dive,url"`
}

type reviewResponse struct {
	Status      string  `json:"status"`
	ReviewID    string  `json:"review_id"`
	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int     `json:"rating_count"`
}

type restaurantResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Cuisine     []string `json:"cuisine"`
	Dishes      []string `json:"dishes"`
	Takeaway    bool     `json:"takeaway"`
	PriceLevel  int      `json:"price_level"`
	Tags        []string `json:"tags"`
	PhotoURL    string   `json:"photo_url"`
	RatingAvg   float64  `json:"rating_avg"`
	RatingCount int      `json:"rating_count"`
}

type reviewItem struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	UserName     string    `json:"user_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Photos       []string  `json:"photos"`
	CreatedAt    time.Time `json:"created_at"`
}

type restaurantDetailResponse struct {
	Restaurant restaurantResponse `json:"restaurant"`
	Reviews    []reviewItem       `json:"reviews"`
}

type seedResponse struct {
	Status   string   `json:"status"`
	Message  string   `json:"message,omitempty"`
	Inserted []string `json:"inserted,omitempty"`
}

type healthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

type rootResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

func restaurantToResponse(r *domain.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:          r.ID(),
		Name:        r.Name(),
		Address:     r.Address(),
		City:        r.City(),
		Cuisine:     emptyIfNil(r.Cuisine()),
		Dishes:      emptyIfNil(r.Dishes()),
		Takeaway:    r.Takeaway(),
		PriceLevel:  r.PriceLevel(),
		Tags:        emptyIfNil(r.Tags()),
		PhotoURL:    r.PhotoURL(),
		RatingAvg:   r.RatingAvg(),
		RatingCount: r.RatingCount(),
	}
}

func restaurantsToResponse(rs []domain.Restaurant) []restaurantResponse {
	out := make([]restaurantResponse, len(rs))
	for i := range rs {
		out[i] = restaurantToResponse(&rs[i])
	}
	return out
}

func reviewToItem(r *domain.Review) reviewItem {
	return reviewItem{
		ID:           r.ID(),
		RestaurantID: r.RestaurantID(),
		UserName:     r.Author(),
		Rating:       r.Rating(),
		Comment:      r.Comment(),
		Photos:       emptyIfNil(r.Photos()),
		CreatedAt:    r.CreatedAt(),
	}
}

func reviewsToItems(rs []domain.Review) []reviewItem {
	out := make([]reviewItem, len(rs))
	for i := range rs {
		out[i] = reviewToItem(&rs[i])
	}
	return out
}

func healthToResponse(rep healthuc.Report, ver string) healthResponse {
	checks := make(map[string]string, len(rep.Checks))
	for k, v := range rep.Checks {
		checks[k] = string(v)
	}
	return healthResponse{Status: string(rep.Status), Version: ver, Checks: checks}
}

// emptyIfNil keeps list fields as [] in JSON instead of null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
