package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/shop-api/api/controllers"
	"github.com/angelmondragon/shop-api/api/middleware"
	"github.com/angelmondragon/shop-api/internal/carts"
	"github.com/angelmondragon/shop-api/internal/items"
	"github.com/angelmondragon/shop-api/pkg/config"
	"github.com/angelmondragon/shop-api/pkg/logger"
	"github.com/angelmondragon/shop-api/pkg/metrics"
	"github.com/angelmondragon/shop-api/pkg/redis"
)

// NewRouter mounts health, metrics and the item and cart routes on a chi router.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	itemService items.Service,
	cartService carts.Service,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.HTTP.CORSOrigins),
	)

	// Typed nil pointers must not leak into the store interfaces.
	var (
		idempotencyStore redis.IdempotencyStore
		rateLimitStore   redis.RateLimitStore
		readiness        = map[string]controllers.Pinger{}
	)
	if redisClient != nil {
		idempotencyStore = redisClient
		rateLimitStore = redisClient
		readiness["redis"] = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	if cfg.Metrics.Enabled && gatherer != nil {
		r.Handle("/metrics", metrics.Handler(gatherer))
	}

	limit := cfg.Pagination.DefaultLimit
	idempotent := middleware.Idempotency(idempotencyStore, cfg.Idempotency.TTL, logg)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(middleware.RateLimitPolicy{
			Window: cfg.RateLimit.Window,
			PerIP:  cfg.RateLimit.PerIP,
		}, rateLimitStore, logg))

		r.Route("/item", func(r chi.Router) {
			r.With(idempotent).Post("/", controllers.CreateItem(itemService, logg))
			r.Get("/", controllers.ListItems(itemService, limit, logg))
			r.Get("/{id}", controllers.GetItem(itemService, logg))
			r.Put("/{id}", controllers.ReplaceItem(itemService, logg))
			r.Patch("/{id}", controllers.PatchItem(itemService, logg))
			r.Delete("/{id}", controllers.DeleteItem(itemService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.With(idempotent).Post("/", controllers.CreateCart(cartService, logg))
			r.Get("/", controllers.ListCarts(cartService, limit, logg))
			r.Get("/{id}", controllers.GetCart(cartService, logg))
			r.With(idempotent).Post("/{cart_id}/add/{item_id}", controllers.AddItemToCart(cartService, logg))
		})
	})

	return r
}
