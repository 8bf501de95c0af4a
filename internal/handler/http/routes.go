package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Post("/users", h.createUser)
		r.Get("/users", h.getUsers)
		r.Get("/users/{username}", h.getUserByUsername)

		r.Post("/products", h.createProduct)
		r.Get("/products", h.getProducts)
		r.Get("/products/{productID}", h.getProductByID)
		r.Get("/products/category/{categoryID}", h.getProductsByCategory)

		r.Get("/categories", h.getCategories)

		r.Post("/create-payment-intent", h.createPaymentIntent)
	})

	router.Get("/uploads/{filename}", h.serveUpload)

	return router
}
