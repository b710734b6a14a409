package http

import (
	"net/http"

	_ "github.com/DRSN-tech/inventory-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(invUC usecase.InventoryUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]interface{}{"Status": "ok"})
	})

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(invUC, r.logger))
		registerSaleRoutes(v1, NewSaleHandler(invUC, r.logger))
		registerAlertRoutes(v1, NewAlertHandler(invUC, r.logger))
		registerInsightRoutes(v1, NewInsightHandler(invUC, r.logger))
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.addProduct)
		pr.Get("/", prHandler.listProducts)
		pr.Get("/low-stock", prHandler.listLowStock)
		pr.Get("/dead-stock", prHandler.listDeadStock)
		pr.Get("/category/{category}", prHandler.listByCategory)
		pr.Get("/search", prHandler.searchProducts)
		pr.Get("/stats", prHandler.getStats)
		pr.Put("/{id}/quantity", prHandler.updateQuantity)
		pr.Delete("/{id}", prHandler.deleteProduct)
	})
}

func registerSaleRoutes(router chi.Router, saleHandler *SaleHandler) {
	router.Route("/sales", func(sr chi.Router) {
		sr.Post("/", saleHandler.recordSale)
		sr.Get("/history", saleHandler.salesHistory)
		sr.Get("/summary", saleHandler.salesSummary)
	})
}

func registerAlertRoutes(router chi.Router, alertHandler *AlertHandler) {
	router.Route("/alerts", func(ar chi.Router) {
		ar.Get("/", alertHandler.getAlerts)
		ar.Put("/{id}/acknowledge", alertHandler.acknowledgeAlert)
	})
}

func registerInsightRoutes(router chi.Router, insightHandler *InsightHandler) {
	router.Post("/ai/insights", insightHandler.generateInsights)
}
