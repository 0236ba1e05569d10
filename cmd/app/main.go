package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Ericatici/payment-service/external/mercadopago"
	"github.com/Ericatici/payment-service/internal/db"
	"github.com/Ericatici/payment-service/internal/middleware"
	"github.com/Ericatici/payment-service/internal/repository"
	"github.com/Ericatici/payment-service/internal/services"
)

func main() {
	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// EXTERNALS
	// ======================
	mpCfg, err := mercadopago.ConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	gateway := mercadopago.NewClient(mpCfg)

	// ======================
	// REPOSITORIES
	// ======================
	orderRepo := repository.NewOrderRepository(pool, repository.DefaultStatusMapping())
	customerRepo := repository.NewCustomerRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	paymentRepo := repository.NewPaymentRepository(gateway)

	// ======================
	// SERVICES
	// ======================
	paymentSvc := services.NewPaymentService(orderRepo, paymentRepo)
	orderSvc := services.NewOrderService(orderRepo, productRepo, paymentSvc)
	customerSvc := services.NewCustomerService(customerRepo)
	productSvc := services.NewProductService(productRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.RequestTrace())

	api := e.Group("/lanchonete")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerCustomerRoutes(api, customerSvc)
	registerProductRoutes(api, productSvc)
	registerOrderRoutes(api, orderSvc)
	registerPaymentRoutes(api, paymentSvc)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
