package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/localeats/localeats/internal/domain"
	"github.com/localeats/localeats/internal/domain/search/filter"
	chatuc "github.com/localeats/localeats/internal/usecase/chat"
	healthuc "github.com/localeats/localeats/internal/usecase/health"
	restaurantuc "github.com/localeats/localeats/internal/usecase/restaurant"
	reviewuc "github.com/localeats/localeats/internal/usecase/review"
)

const testRestaurantID = "4b5aaed1-8a40-4f2e-9c96-3b4f6f6e2a01"

// stubStore backs every usecase contract in handler tests.
type stubStore struct {
	restaurants []domain.Restaurant
	reviews     []domain.Review
}

func (s *stubStore) Search(_ context.Context, _ filter.Expression, limit int) ([]domain.Restaurant, error) {
	if len(s.restaurants) > limit {
		return s.restaurants[:limit], nil
	}
	return s.restaurants, nil
}

func (s *stubStore) SearchSubstring(_ context.Context, _ string, _ int) ([]domain.Restaurant, error) {
	return nil, nil
}

func (s *stubStore) Get(_ context.Context, id string) (domain.Restaurant, error) {
	for _, r := range s.restaurants {
		if r.ID() == id {
			return r, nil
		}
	}
	return domain.Restaurant{}, domain.ErrRestaurantNotFound
}

func (s *stubStore) Insert(_ context.Context, rest *domain.Restaurant) error {
	s.restaurants = append(s.restaurants, *rest)
	return nil
}

func (s *stubStore) Count(_ context.Context) (int, error) {
	return len(s.restaurants), nil
}

func (s *stubStore) InsertReview(_ context.Context, rev *domain.Review) error {
	s.reviews = append(s.reviews, *rev)
	return nil
}

func (s *stubStore) AllByRestaurant(_ context.Context, restaurantID string) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range s.reviews {
		if r.RestaurantID() == restaurantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubStore) ListByRestaurant(ctx context.Context, restaurantID string, limit int) ([]domain.Review, error) {
	out, _ := s.AllByRestaurant(ctx, restaurantID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubStore) UpdateRating(_ context.Context, _ string, _ float64, _ int) error {
	return nil
}

func (s *stubStore) Ping(_ context.Context) error { return nil }

// reviewInserter adapts stubStore to the review Repository contract.
type reviewInserter struct{ *stubStore }

func (ri reviewInserter) Insert(ctx context.Context, rev *domain.Review) error {
	return ri.InsertReview(ctx, rev)
}

func newTestRouter(t *testing.T, store *stubStore) http.Handler {
	t.Helper()

	server := NewServer(
		chatuc.New(store, 12, 3),
		reviewuc.New(reviewInserter{store}, store),
		restaurantuc.New(store, store, 50, 20),
		healthuc.New(store),
		zap.NewNop(),
	)

	r := chirouter.NewRouter()
	server.Routes(r)
	return r
}

func seededStore(t *testing.T) *stubStore {
	t.Helper()
	return &stubStore{
		restaurants: []domain.Restaurant{
			domain.ReconstructRestaurant(
				testRestaurantID, "GraffiTaco", "12 Brick Lane", "London",
				[]string{"mexican"}, []string{"elote"},
				true, 2, []string{"late-night"}, "",
				4.6, 128,
			),
		},
		reviews: []domain.Review{
			domain.ReconstructReview(
				"rev-1", testRestaurantID, "ana",
				5, "top", nil,
				time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
			),
		},
	}
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestChat_HappyPath(t *testing.T) {
	h := newTestRouter(t, seededStore(t))

	rr := doJSON(t, h, "POST", "/api/chat", `{"query":"cheap tacos","city":"London"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", rr.Code, rr.Body.String())
	}

	var resp chatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.Answer, "Top picks in London: GraffiTaco") {
		t.Errorf("unexpected answer: %q", resp.Answer)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != testRestaurantID {
		t.Errorf("unexpected results: %+v", resp.Results)
	}
}

func TestChat_NoMatches_Guidance(t *testing.T) {
	h := newTestRouter(t, &stubStore{})

	rr := doJSON(t, h, "POST", "/api/chat", `{"query":"asdfqwerty"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rr.Code)
	}

	var resp chatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Answer, "couldn't find an exact match") {
		t.Errorf("expected guidance answer, got %q", resp.Answer)
	}
	if resp.Results == nil || len(resp.Results) != 0 {
		t.Errorf("expected empty result list, got %v", resp.Results)
	}
}

func TestChat_MalformedBody_400(t *testing.T) {
	h := newTestRouter(t, &stubStore{})

	rr := doJSON(t, h, "POST", "/api/chat", `{`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rr.Code)
	}
}

func TestCreateReview_HappyPath(t *testing.T) {
	h := newTestRouter(t, seededStore(t))

	body := `{"restaurant_id":"` + testRestaurantID + `","user_name":"bo","rating":3,"comment":"fine"}`
	rr := doJSON(t, h, "POST", "/api/reviews", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", rr.Code, rr.Body.String())
	}

	var resp reviewResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" || resp.ReviewID == "" {
		t.Errorf("unexpected response: %+v", resp)
	}
	// [5] existing + [3] new -> mean 4.0 over 2 reviews.
	if resp.RatingAvg != 4.0 || resp.RatingCount != 2 {
		t.Errorf("expected 4.0/2, got %v/%d", resp.RatingAvg, resp.RatingCount)
	}
}

func TestCreateReview_MalformedID_400(t *testing.T) {
	h := newTestRouter(t, seededStore(t))

	rr := doJSON(t, h, "POST", "/api/reviews", `{"restaurant_id":"oops","user_name":"bo","rating":3}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rr.Code)
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != CodeInvalidID {
		t.Errorf("error code: got %s, want %s", errResp.Code, CodeInvalidID)
	}
}

func TestCreateReview_MissingAuthor_ValidationFailed(t *testing.T) {
	h := newTestRouter(t, seededStore(t))

	rr := doJSON(t, h, "POST", "/api/reviews", `{"restaurant_id":"`+testRestaurantID+`","rating":3}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rr.Code)
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != CodeValidationFailed {
		t.Errorf("error code: got %s, want %s", errResp.Code, CodeValidationFailed)
	}
}

func TestCreateReview_RatingOutOfRange_ValidationFailed(t *testing.T) {
	h := newTestRouter(t, seededStore(t))

	rr := doJSON(t, h, "POST", "/api/reviews", `{"restaurant_id":"`+testRestaurantID+`","user_name":"bo","rating":6}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rr.Code)
	}
}

func TestGetRestaurant_HappyPath(t *testing.T) {
	h := newTestRouter(t, seededStore(t))

	rr := doJSON(t, h, "GET", "/api/restaurants/"+testRestaurantID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", rr.Code, rr.Body.String())
	}

	var resp restaurantDetailResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Restaurant.Name != "GraffiTaco" {
		t.Errorf("unexpected restaurant: %+v", resp.Restaurant)
	}
	if len(resp.Reviews) != 1 || resp.Reviews[0].UserName != "ana" {
		t.Errorf("unexpected reviews: %+v", resp.Reviews)
	}
}

func TestGetRestaurant_NotFound_404(t *testing.T) {
	h := newTestRouter(t, &stubStore{})

	rr := doJSON(t, h, "GET", "/api/restaurants/"+testRestaurantID, "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rr.Code)
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != CodeRestaurantNotFound {
		t.Errorf("error code: got %s, want %s", errResp.Code, CodeRestaurantNotFound)
	}
}

func TestGetRestaurant_MalformedID_400(t *testing.T) {
	h := newTestRouter(t, &stubStore{})

	rr := doJSON(t, h, "GET", "/api/restaurants/oops", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rr.Code)
	}
}

func TestListRestaurants_HappyPath(t *testing.T) {
	h := newTestRouter(t, seededStore(t))

	rr := doJSON(t, h, "GET", "/api/restaurants?city=London", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rr.Code)
	}

	var resp []restaurantResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Name != "GraffiTaco" {
		t.Errorf("unexpected list: %+v", resp)
	}
}

func TestSeed_EmptyThenAlreadySeeded(t *testing.T) {
	store := &stubStore{}
	h := newTestRouter(t, store)

	rr := doJSON(t, h, "POST", "/api/seed", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rr.Code)
	}
	var first seedResponse
	if err := json.NewDecoder(rr.Body).Decode(&first); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(first.Inserted) != 3 {
		t.Fatalf("expected 3 inserted ids, got %v", first.Inserted)
	}

	rr = doJSON(t, h, "POST", "/api/seed", "")
	var second seedResponse
	if err := json.NewDecoder(rr.Body).Decode(&second); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if second.Message != "Already seeded" || len(second.Inserted) != 0 {
		t.Errorf("expected no-op seed, got %+v", second)
	}
}

func TestHealth_OK(t *testing.T) {
	h := newTestRouter(t, &stubStore{})

	rr := doJSON(t, h, "GET", "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rr.Code)
	}

	var resp healthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Checks["database"] != "ok" {
		t.Errorf("unexpected health response: %+v", resp)
	}
}
