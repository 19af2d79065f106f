package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/service"
	"github.com/aussiebroadwan/paymethods/internal/paymethods/store"
	"github.com/aussiebroadwan/paymethods/pkg/httpx"
	"github.com/aussiebroadwan/paymethods/pkg/slogx"

	_ "github.com/aussiebroadwan/paymethods/api/paymethods" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store                store.Store
	PaymentMethodService *service.PaymentMethodService
	GrantService         *service.GrantService
	Metrics              *Metrics
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Metrics:      NewMetrics(),
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.Metrics.Middleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPaymentMethods()
	r.registerGrants()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Payment Methods Service API
//	@version		0.1.0
//	@description	Registry of named payment methods per parent account. At most one method per parent is active.
//	@description
//	@description	Mutating calls identify the acting user with the X-User-ID header.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/paymethods
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerPaymentMethods() {
	h := &PaymentMethodsHandler{PaymentMethodService: r.PaymentMethodService}

	// Reads are public and limited per IP
	r.Mux.Handle("GET /v1/parents/{parentId}/payment-methods",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.ReadLimit),
		),
	)

	write := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.RequireActingUser(),
			httpx.RateLimitByActingUser(httpx.WriteLimit),
		)
	}

	r.Mux.Handle("POST /v1/parents/{parentId}/payment-methods", write(h.HandleAdd))
	r.Mux.Handle("POST /v1/parents/{parentId}/payment-methods/{methodId}/activate", write(h.HandleActivate))
	r.Mux.Handle("DELETE /v1/parents/{parentId}/payment-methods/{methodId}", write(h.HandleDelete))
}

func (r *Router) registerGrants() {
	h := &GrantsHandler{GrantService: r.GrantService}

	r.Mux.Handle("POST /v1/parents/{parentId}/grants",
		httpx.Chain(http.HandlerFunc(h.HandleGrant),
			httpx.RequireActingUser(),
			httpx.RateLimitByActingUser(httpx.WriteLimit),
		),
	)
	r.Mux.Handle("GET /v1/parents/{parentId}/grants",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RequireActingUser(),
			httpx.RateLimitByActingUser(httpx.ReadLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.ProbeLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.ProbeLimit),
		),
	)
	r.Mux.Handle("GET /metrics",
		httpx.Chain(r.Metrics.Handler(),
			httpx.RateLimitByIP(httpx.ProbeLimit),
		),
	)
}
