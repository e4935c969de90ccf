package server

import (
	"errors"
	"log"

	"github.com/Rovan44/shopping-app-44/internal/handlers"
	"github.com/Rovan44/shopping-app-44/internal/httpx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Handlers struct {
	Payments     *handlers.PaymentHandler
	PaymentModes *handlers.PaymentModeHandler
	Products     *handlers.ProductHandler
	Dashboard    *handlers.DashboardHandler
}

type Options struct {
	AppName          string
	CORSAllowOrigins string
	// DisableRequestLog turns off the access log middleware.
	DisableRequestLog bool
}

func New(h Handlers, opts Options) *fiber.App {
	app := setupFiberApp(opts)
	setupRoutes(app, h)
	return app
}

func setupFiberApp(opts Options) *fiber.App {
	if opts.AppName == "" {
		opts.AppName = "Storefront API v1.0"
	}
	if opts.CORSAllowOrigins == "" {
		opts.CORSAllowOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(func(c *fiber.Ctx) error {
		httpx.RequestID(c)
		return c.Next()
	})
	if !opts.DisableRequestLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${method} ${path} - ${latency} | IP: ${ip} | ${respHeader:X-Request-ID}\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  opts.CORSAllowOrigins,
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		ExposeHeaders: "X-Request-ID",
	}))

	return app
}

func setupRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	api.Get("/health", h.Dashboard.HealthCheck)

	payments := api.Group("/payments")
	payments.Post("/", h.Payments.CreatePayment)
	payments.Get("/", h.Payments.GetAllPayments)
	payments.Get("/transaction/:transactionId", h.Payments.GetPaymentByTransactionID)
	payments.Get("/status/:status", h.Payments.GetPaymentsByStatus)
	payments.Get("/stats/total", h.Payments.GetTotalCompletedPayments)
	payments.Get("/total/completed", h.Payments.GetTotalCompletedPayments)
	payments.Get("/stats/count/:status", h.Payments.GetPaymentCountByStatus)
	payments.Get("/count/status/:status", h.Payments.GetPaymentCountByStatus)
	payments.Get("/:id", h.Payments.GetPaymentByID)
	payments.Patch("/:id/status", h.Payments.UpdatePaymentStatus)

	modes := api.Group("/payment-modes")
	modes.Get("/", h.PaymentModes.GetAllPaymentModes)
	modes.Get("/active", h.PaymentModes.GetActivePaymentModes)
	modes.Get("/:id", h.PaymentModes.GetPaymentModeByID)
	modes.Post("/", h.PaymentModes.CreatePaymentMode)
	modes.Put("/:id", h.PaymentModes.UpdatePaymentMode)
	modes.Delete("/:id", h.PaymentModes.DeletePaymentMode)
	modes.Patch("/:id/toggle", h.PaymentModes.TogglePaymentModeStatus)
	modes.Patch("/:id/toggle-active", h.PaymentModes.TogglePaymentModeStatus)

	products := api.Group("/products")
	products.Get("/", h.Products.ListProducts)
	products.Get("/:id", h.Products.GetProduct)
	products.Post("/", h.Products.CreateProduct)
	products.Put("/:id", h.Products.UpdateProduct)
	products.Delete("/:id", h.Products.DeleteProduct)
	products.Patch("/:id/reduce-stock", h.Products.ReduceStock)

	api.Get("/categories", h.Products.ListCategories)

	api.Get("/dashboard", h.Dashboard.GetDashboardStats)
	api.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)

	app.Use(func(c *fiber.Ctx) error {
		return httpx.NotFoundResponse(c, "Route not found")
	})
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	log.Printf("Error: %v", err)

	return httpx.ErrorResponse(c, code, errorCode(code), message, nil)
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return httpx.CodeBadRequest
	case fiber.StatusNotFound:
		return httpx.CodeNotFound
	case fiber.StatusInternalServerError:
		return httpx.CodeInternalServer
	default:
		return "HTTP_ERROR"
	}
}
