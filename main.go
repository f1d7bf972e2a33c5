package main

import (
	"case_empire/database"
	"case_empire/handler"
	"case_empire/helper"
	"case_empire/router"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	database.ConnectDB()
	helper.InitRedis()

	// Ghi đơn qua store batch, thành công thì xoá cache listing/stats
	handler.InitOrderSubmitter(database.NewStore(database.DB), helper.InvalidateTable)

	helper.StartLowStockScheduler()
	defer helper.StopLowStockScheduler()
	helper.StartInvoiceOverdueScheduler()
	defer helper.StopInvoiceOverdueScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8080"))
}
