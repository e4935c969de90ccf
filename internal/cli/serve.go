package cli

import (
	"context"
	"log"

	"github.com/Rovan44/shopping-app-44/internal/config"
	"github.com/Rovan44/shopping-app-44/internal/events"
	"github.com/Rovan44/shopping-app-44/internal/gateway"
	"github.com/Rovan44/shopping-app-44/internal/handlers"
	"github.com/Rovan44/shopping-app-44/internal/messaging"
	"github.com/Rovan44/shopping-app-44/internal/seed"
	"github.com/Rovan44/shopping-app-44/internal/server"
	"github.com/Rovan44/shopping-app-44/internal/service"
	"github.com/spf13/cobra"
)

const (
	commandQueue = "storefront-payment-commands"
	consumerTag  = "storefront-api"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func runServe(parent context.Context, cfg *config.Config) error {
	log.Println("Storefront API starting...")

	ctx, stop := signalContext(parent)
	defer stop()

	uow, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var publisher events.Publisher = events.NopPublisher{}
	var consumer *messaging.Consumer
	if cfg.RabbitMQEnabled {
		rabbitClient := messaging.NewRabbitMQClient(ctx, cfg.RabbitMQ)
		if err := rabbitClient.Connect(); err != nil {
			return err
		}
		defer rabbitClient.Close()

		publisher = messaging.NewPublisher(rabbitClient)
		consumer = messaging.NewConsumer(rabbitClient, commandQueue, consumerTag)
	} else {
		log.Println("RabbitMQ disabled; domain events are not published")
	}

	paymentService := service.NewPaymentService(uow, gateway.NewStubPaymentGateway(), publisher)
	paymentModeService := service.NewPaymentModeService(uow)
	productService := service.NewProductService(uow, publisher)
	dashboardService := service.NewDashboardService(uow)

	if cfg.SeedData {
		catalog, err := seed.DefaultCatalog()
		if err != nil {
			return err
		}
		if _, err := seed.Run(ctx, uow, catalog); err != nil {
			return err
		}
	}

	if consumer != nil {
		if err := handlers.NewEventHandler(paymentService).StartConsuming(consumer); err != nil {
			return err
		}
	}

	app := server.New(server.Handlers{
		Payments:     handlers.NewPaymentHandler(paymentService),
		PaymentModes: handlers.NewPaymentModeHandler(paymentModeService),
		Products:     handlers.NewProductHandler(productService),
		Dashboard:    handlers.NewDashboardHandler(dashboardService, cfg.StoreDriver),
	}, server.Options{CORSAllowOrigins: cfg.CORSAllowOrigins})

	go func() {
		<-ctx.Done()
		log.Println("Storefront API closing...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Storefront API listening on http://localhost:%s (store=%s)", cfg.Port, cfg.StoreDriver)
	return app.Listen(":" + cfg.Port)
}
