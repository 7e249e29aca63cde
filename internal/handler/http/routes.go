package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Only the path selects the handler: chi's
// not-found and method-not-allowed fallbacks go through the same dispatch,
// so methods chi does not know (PROPFIND, PURGE...) still reach a route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withCORS)

	for _, route := range servedRoutes {
		router.HandleFunc(route.Path(), h.dispatch)
	}
	router.NotFound(h.dispatch)
	router.MethodNotAllowed(h.dispatch)

	return router
}

// dispatch resolves the request path against the route table.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	h.handlerFor(ResolveRoute(r.URL.Path))(w, r)
}

func (h *Handler) handlerFor(route Route) http.HandlerFunc {
	switch route {
	case RouteHome:
		return h.home
	case RouteConfigDump:
		return h.config
	case RouteStatus:
		return h.status
	default:
		return h.notFound
	}
}
