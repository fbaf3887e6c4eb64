package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/luminotest/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/luminotest/go-backend/internal/usecase"
	"github.com/luminotest/go-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	catalogUC usecase.CatalogUC,
	cartUC usecase.CartUC,
	quotationUC usecase.QuotationUC,
	verifier usecase.CredentialVerifier,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	auth := NewAuthMiddleware(verifier, r.logger)

	r.router.Route("/api", func(api chi.Router) {
		api.Get("/health", health)

		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		registerCatalogRoutes(api, catalogHandler)

		// Корзина и котировки требуют идентичности
		api.Group(func(private chi.Router) {
			private.Use(auth.Handle)

			registerCartRoutes(private, NewCartHandler(cartUC, r.logger))
			registerQuotationRoutes(private, NewQuotationHandler(quotationUC, r.logger))
		})
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Get("/products", h.listProducts)
	router.Get("/essays", h.listEssays)
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Get("/", h.listCart)
		cart.Post("/", h.addCartItem)
		cart.Delete("/", h.clearCart)
		cart.Patch("/{id}/quantity", h.updateQuantity)
		cart.Delete("/{id}", h.removeCartItem)
	})
}

func registerQuotationRoutes(router chi.Router, h *QuotationHandler) {
	router.Route("/quotations", func(q chi.Router) {
		q.Post("/", h.createQuotation)
		q.Get("/", h.listQuotations)
		q.Get("/{id}", h.getQuotation)
	})
}
