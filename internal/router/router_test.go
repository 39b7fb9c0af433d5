package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/user/movie-api/internal/handler"
	"github.com/user/movie-api/internal/repository"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &handler.Handler{
		Store: repository.NewSQLiteMovieStore(nil),
		Log:   hclog.NewNullLogger(),
	}
	RegisterRoutes(r, h)
	return r
}

func TestRouteTable(t *testing.T) {
	r := newEngine()

	got := make(map[string]bool)
	for _, route := range r.Routes() {
		got[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /api/movies",
		"GET /api/movies/:id",
		"GET /api/movies/title/:title",
		"GET /api/movies/genre/:genre",
		"GET /api/movies/director/:director",
		"GET /api/movies/year/:year",
		"POST /api/movies",
		"PATCH /api/movies/:id",
		"DELETE /api/movies/:id",
	} {
		assert.True(t, got[want], "missing route %s", want)
	}
	assert.Len(t, got, 10)
}

func TestHealth(t *testing.T) {
	r := newEngine()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestUnmatchedRouteFallsThrough(t *testing.T) {
	r := newEngine()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/movies", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// 预留后端上的每个接口都应立即返回 501
func TestUnimplementedBackendFailsFast(t *testing.T) {
	r := newEngine()
	id := uuid.NewString()

	tests := []struct {
		method string
		path   string
		body   string
		want   string
	}{
		{http.MethodGet, "/api/movies", "", "Not Implemented"},
		{http.MethodGet, "/api/movies/" + id, "", "Not Implemented"},
		{http.MethodGet, "/api/movies/title/heat", "", "Not Implemented"},
		{http.MethodGet, "/api/movies/genre/drama", "", "Not Implemented"},
		{http.MethodGet, "/api/movies/director/mann", "", "Not Implemented"},
		{http.MethodGet, "/api/movies/year/1995", "", "Not Implemented"},
		{http.MethodPost, "/api/movies", `{"title":"t","year":2000,"director":"d"}`, "Movie not created"},
		{http.MethodPatch, "/api/movies/" + id, `{"title":"t"}`, "Movie not updated"},
		{http.MethodDelete, "/api/movies/" + id, "", "Movie not deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNotImplemented, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}
