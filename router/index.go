package router

import (
	"case_empire/handler"
	"case_empire/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	customer := v1.Group("/customer", logger.New())
	customer.Get("/", handler.GetCustomers)
	customer.Get("/:customerId", validate.GetById("customerId"), handler.GetCustomerById)
	customer.Post("/", validate.CreateCustomer(), handler.CreateCustomer)
	customer.Put("/:customerId", validate.EditCustomer("customerId"), handler.EditCustomer)
	customer.Delete("/", validate.Delete(), handler.DeleteCustomer)

	product := v1.Group("/product", logger.New())
	product.Get("/", handler.GetProducts)
	product.Get("/low-stock", handler.GetLowStockProducts)
	product.Get("/slug/:slug", handler.GetProductBySlug)
	product.Get("/:productId", validate.GetById("productId"), handler.GetProductById)
	product.Post("/", validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", validate.EditProduct("productId"), handler.EditProduct)
	product.Delete("/", validate.Delete(), handler.DeleteProduct)

	invoice := v1.Group("/invoice", logger.New())
	invoice.Get("/", handler.GetInvoices)
	invoice.Get("/export/csv", handler.ExportInvoicesCSV)
	invoice.Get("/:invoiceId", validate.GetById("invoiceId"), handler.GetInvoiceById)
	invoice.Post("/", validate.CreateInvoice(), handler.CreateInvoice)
	invoice.Post("/:invoiceId/send", validate.GetById("invoiceId"), handler.SendInvoice)
	invoice.Put("/:invoiceId", validate.EditInvoice("invoiceId"), handler.EditInvoice)
	invoice.Delete("/", validate.Delete(), handler.DeleteInvoice)

	order := v1.Group("/order", logger.New())
	order.Get("/", handler.GetOrders)
	order.Get("/:orderId", validate.GetById("orderId"), handler.GetOrderById)
	order.Post("/", validate.CreateOrder(), handler.CreateOrder)
	order.Patch("/:orderId/status", validate.EditOrderStatus("orderId"), handler.EditOrderStatus)
	order.Delete("/", validate.Delete(), handler.DeleteOrder)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", handler.GetDashboardStats)

	// Realtime cảnh báo tồn kho cho dashboard
	v1.Get("/ws/alerts", websocket.New(handler.StockAlertWebsocket))
}
