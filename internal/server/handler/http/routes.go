package http

import (
	"net/http"

	"github.com/mzaleska/catalog/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the HTTP handler serving the catalog API.
//
// Routes:
//
//	GET    /items/all          → itemHandler.GetAll
//	GET    /items/byId/{id}    → itemHandler.Get
//	GET    /items/all-items    → itemHandler.GetAllWithRating
//	GET    /items/item/{id}    → itemHandler.GetWithRating
//	POST   /items/add          → itemHandler.Add
//	PUT    /items/edit/{id}    → itemHandler.Edit
//	DELETE /items/delete/{id}  → itemHandler.Delete
//	GET    /opinions           → opinionHandler.GetAll
//	GET    /opinions/average   → opinionHandler.Average
//	GET    /opinions/{id}      → opinionHandler.GetByItem
//	POST   /opinions           → opinionHandler.Create
//	DELETE /opinions/{id}      → opinionHandler.Delete
//	POST   /user/signup        → authHandler.Signup
//	POST   /user/login         → authHandler.Login
func NewRouter(
	itemHandler *ItemHandler,
	opinionHandler *OpinionHandler,
	authHandler *AuthHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/items", func(r chi.Router) {
		r.Get("/all", itemHandler.GetAll)
		r.Get("/byId/{id}", itemHandler.Get)
		r.Get("/all-items", itemHandler.GetAllWithRating)
		r.Get("/item/{id}", itemHandler.GetWithRating)
		r.Post("/add", itemHandler.Add)
		r.Put("/edit/{id}", itemHandler.Edit)
		r.Delete("/delete/{id}", itemHandler.Delete)
	})

	r.Route("/opinions", func(r chi.Router) {
		r.Get("/", opinionHandler.GetAll)
		r.Get("/average", opinionHandler.Average)
		r.Get("/{id}", opinionHandler.GetByItem)
		r.Post("/", opinionHandler.Create)
		r.Delete("/{id}", opinionHandler.Delete)
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
	})

	return r
}
