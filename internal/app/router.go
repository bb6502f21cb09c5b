package app

import (
	"context"
	"net/http"
	"sync/atomic"

	"dispatch/internal/handlers/rest/fcm_put"
	"dispatch/internal/handlers/rest/healthcheck_head"
	"dispatch/internal/handlers/rest/location_put"
	"dispatch/internal/handlers/rest/login_post"
	"dispatch/internal/handlers/rest/logout_post"
	"dispatch/internal/handlers/rest/order_post"
	"dispatch/internal/handlers/rest/order_put"
	"dispatch/internal/handlers/rest/ping_get"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/handlers/rest/rider_post"
	"dispatch/internal/handlers/rest/user_post"
	"dispatch/internal/handlers/rest/validate_post"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/pkg/middlewares/graceful_shutdown"
	"dispatch/internal/pkg/middlewares/metrics"
	"dispatch/internal/pkg/middlewares/rate_limiter"
	"dispatch/internal/pkg/middlewares/recovery"
	"dispatch/internal/pkg/middlewares/request_id"
	"dispatch/internal/pkg/middlewares/timeout"
	"dispatch/pkg/logger"
	"dispatch/pkg/token_bucket"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	orderIDPattern = "{id:[0-9]+}"
	corsMaxAge     = 300
)

type ServiceAccount interface {
	user_post.Service
	rider_post.Service
	login_post.Service
	fcm_put.Service
	location_put.Service
}

type ServiceToken interface {
	logout_post.Service
}

type ServiceOrder interface {
	order_post.Service
	order_put.Service
}

// RouterDeps все, что нужно HTTP слою.
type RouterDeps struct {
	Account ServiceAccount
	Tokens  ServiceToken
	Orders  ServiceOrder
	Gate    auth.Gate
	Pingers []healthcheck_head.Pinger
}

// RouterDeps собирает зависимости HTTP слоя из бизнес логики.
func (a *Application) RouterDeps(pingers ...healthcheck_head.Pinger) RouterDeps {
	return RouterDeps{
		Account: a.Account,
		Tokens:  a.Tokens,
		Orders:  a.Orders,
		Gate:    a.Gate,
		Pingers: pingers,
	}
}

func NewRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	deps RouterDeps,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = respond.NotFound()
	router.MethodNotAllowedHandler = respond.MethodNotAllowed()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, rate_limiter.Options{
		QPS:     cfg.RateLimiterQPS,
		Limiter: token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst)),
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, deps.Pingers...)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	authenticated := auth.New(log, deps.Gate)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.Handle("/user/", user_post.New(log, deps.Account)).Methods(http.MethodPost)
	api.Handle("/user/rider", rider_post.New(log, deps.Account)).Methods(http.MethodPost)
	api.Handle("/user/auth/login", login_post.New(log, deps.Account)).Methods(http.MethodPost)
	api.Handle("/user/rider/auth/login", login_post.NewRider(log, deps.Account)).Methods(http.MethodPost)
	api.Handle("/user/auth/validate", authenticated.Wrap(validate_post.New(log))).Methods(http.MethodPost)
	api.Handle("/user/auth/logout", authenticated.Wrap(logout_post.New(log, deps.Tokens))).Methods(http.MethodPost)
	api.Handle("/user/fcm", authenticated.Wrap(fcm_put.New(log, deps.Account))).Methods(http.MethodPost, http.MethodPut)
	api.Handle("/user/location", authenticated.Wrap(location_put.New(log, deps.Account))).Methods(http.MethodPost, http.MethodPut)

	api.Handle("/order/", authenticated.Wrap(order_post.New(log, deps.Orders))).Methods(http.MethodPost)
	api.Handle("/order/"+orderIDPattern, authenticated.Wrap(order_put.NewAccept(log, deps.Orders))).Methods(http.MethodPost, http.MethodPut)
	api.Handle("/order/picked/"+orderIDPattern, authenticated.Wrap(order_put.NewPickedUp(log, deps.Orders))).Methods(http.MethodPost, http.MethodPut)
	api.Handle("/order/completed/"+orderIDPattern, authenticated.Wrap(order_put.NewCompleted(log, deps.Orders))).Methods(http.MethodPost, http.MethodPut)

	corsMiddleware := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", request_id.Header},
		ExposedHeaders:   []string{request_id.Header},
		AllowCredentials: false,
		MaxAge:           corsMaxAge,
	})

	// request id снаружи, чтобы попасть в лог паники
	return request_id.Middleware()(
		recovery.Middleware(log)(
			corsMiddleware(router),
		),
	)
}

func NewPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
