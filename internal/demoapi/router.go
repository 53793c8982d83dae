package demoapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/samvad-hq/storefront-console/internal/logger"
	"github.com/samvad-hq/storefront-console/internal/middleware"
)

// NewRouter exposes store under /api. The console page may call it from any origin.
func NewRouter(store *Store, log logger.Logger) http.Handler {
	if store == nil {
		store = NewStore()
	}
	h := &handler{store: store, log: logger.Ensure(log)}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(h.log))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Post("/", h.createProduct)
			r.Get("/category/{categoryId}", h.productsByCategory)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getProduct)
				r.Put("/", h.updateProduct)
				r.Delete("/", h.deleteProduct)
				r.Get("/stock", h.productStock)
				r.Put("/stock", h.updateStock)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Post("/", h.createOrder)
			r.Get("/user/{userId}", h.ordersByUser)
			r.Get("/user/{userId}/count", h.orderCount)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getOrder)
				r.Put("/", h.updateOrder)
				r.Delete("/", h.deleteOrder)
				r.Put("/status", h.updateOrderStatus)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.listCategories)
			r.Post("/", h.createCategory)
			r.Get("/{id}", h.getCategory)
			r.Put("/{id}", h.updateCategory)
			r.Delete("/{id}", h.deleteCategory)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/email/{email}", h.userByEmail)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	return r
}
