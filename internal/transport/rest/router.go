package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/czytanka/backend/internal/config"
	"github.com/czytanka/backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Log          *slog.Logger
	Cards        cardsService
	Imports      importService
	Unrecognized unrecognizedService
	Reading      readingService
	DB           dbPinger
	Version      string
	RateLimit    config.RateLimitConfig
	CORS         config.CORSConfig
	Limiter      *middleware.RateLimiter
}

// NewRouter builds the HTTP handler tree. The API-wide budget wraps every
// /api route; the generate and translate routes carry an extra per-minute
// budget because each request spends a paid AI call.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	cards := NewCardsHandler(deps.Log, deps.Cards)
	imports := NewImportHandler(deps.Log, deps.Imports)
	words := NewUnrecognizedHandler(deps.Log, deps.Unrecognized)
	reading := NewReadingHandler(deps.Log, deps.Reading)
	health := NewHealthHandler(deps.DB, deps.Version)

	apiLimit := deps.Limiter.Limit("api", deps.RateLimit.APIPerQuarterHour, 15*time.Minute)
	generateLimit := deps.Limiter.Limit("generate", deps.RateLimit.GeneratePerMinute, time.Minute)
	translateLimit := deps.Limiter.Limit("translate", deps.RateLimit.TranslatePerMinute, time.Minute)

	api := func(h http.HandlerFunc, extra ...middleware.Middleware) http.Handler {
		mws := append([]middleware.Middleware{apiLimit}, extra...)
		return middleware.Chain(mws...)(h)
	}

	mux.Handle("POST /api/generate", api(reading.Generate, generateLimit))
	mux.Handle("POST /api/translate", api(reading.Translate, translateLimit))
	mux.Handle("POST /api/tokenize", api(reading.Tokenize))

	mux.Handle("GET /api/flashcards", api(cards.List))
	mux.Handle("POST /api/flashcards", api(cards.Add))
	mux.Handle("GET /api/flashcards/review", api(cards.ReviewQueue))
	mux.Handle("DELETE /api/flashcards/{id}", api(cards.Delete))
	mux.Handle("PATCH /api/flashcards/{id}/stats", api(cards.RecordReview))

	mux.Handle("POST /api/import/propose", api(imports.Propose))
	mux.Handle("POST /api/import/commit", api(imports.Commit))

	mux.Handle("GET /api/unrecognized", api(words.List))
	mux.Handle("PATCH /api/unrecognized/{id}", api(words.SetStatus))
	mux.Handle("POST /api/unrecognized/{id}/resolve", api(words.Resolve))

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Log),
		middleware.Logger(deps.Log),
		middleware.CORS(deps.CORS),
	)(mux)
}
