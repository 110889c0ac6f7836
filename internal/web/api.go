package web

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/tasklists/internal/server"
	"github.com/desertthunder/tasklists/internal/shared"
	"github.com/desertthunder/tasklists/internal/tasks"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// API serves the REST routes over a single [tasks.Manager].
type API struct {
	manager *tasks.Manager
	logger  *log.Logger
	prefix  string
}

// NewAPI creates an API that mounts its routes under prefix.
func NewAPI(manager *tasks.Manager, logger *log.Logger, prefix string) *API {
	return &API{manager: manager, logger: logger, prefix: prefix}
}

// Register adds every API route to r.
func (a *API) Register(r server.Router) {
	r.Handler(HealthHandler{Prefix: a.prefix})

	r.Handle(http.MethodGet, a.prefix+"/lists", http.HandlerFunc(a.listLists))
	r.Handle(http.MethodPost, a.prefix+"/lists", http.HandlerFunc(a.createList))
	r.Handle(http.MethodGet, a.prefix+"/lists/{id}", http.HandlerFunc(a.getList))
	r.Handle(http.MethodPut, a.prefix+"/lists/{id}", http.HandlerFunc(a.updateList))
	r.Handle(http.MethodDelete, a.prefix+"/lists/{id}", http.HandlerFunc(a.deleteList))
	r.Handle(http.MethodGet, a.prefix+"/lists/{id}/tasks", http.HandlerFunc(a.listTasksOfList))
	r.Handle(http.MethodGet, a.prefix+"/lists/{id}/export", http.HandlerFunc(a.exportList))

	r.Handle(http.MethodGet, a.prefix+"/tasks", http.HandlerFunc(a.listTasks))
	r.Handle(http.MethodPost, a.prefix+"/tasks", http.HandlerFunc(a.createTask))
	r.Handle(http.MethodGet, a.prefix+"/tasks/{id}", http.HandlerFunc(a.getTask))
	r.Handle(http.MethodPut, a.prefix+"/tasks/{id}", http.HandlerFunc(a.updateTask))
	r.Handle(http.MethodDelete, a.prefix+"/tasks/{id}", http.HandlerFunc(a.deleteTask))
	r.Handle(http.MethodPost, a.prefix+"/tasks/{id}/move", http.HandlerFunc(a.moveTask))
}

// NewHandler builds the full HTTP handler: router, middleware stack and API routes.
func NewHandler(manager *tasks.Manager, cfg shared.ServerConfig, logger *log.Logger) http.Handler {
	router := server.NewBasicRouter()
	router.Use(
		server.Recover(logger),
		server.RequestID(),
		server.Logging(logger),
		server.CORS(cfg.AllowedOrigins),
		server.RateLimit(cfg.RateLimit, cfg.RateBurst),
	)
	NewAPI(manager, logger, cfg.APIPrefix).Register(router)
	return router
}

// persist saves the store after a mutation. It writes the failure response itself and reports whether the caller
// may continue.
func (a *API) persist(w http.ResponseWriter, r *http.Request) bool {
	if err := a.manager.Save(); err != nil {
		a.fail(w, r, err)
		return false
	}
	return true
}

// HealthHandler reports liveness. Its body is not wrapped in the envelope.
type HealthHandler struct {
	Prefix string
}

func (h HealthHandler) Routes() []string {
	return []string{http.MethodGet + " " + h.Prefix + "/health"}
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "API is running",
		"version": Version,
	})
}
