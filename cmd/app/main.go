package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"marryday/cmd/fx/account_fx"
	"marryday/cmd/fx/assistant_fx"
	"marryday/cmd/fx/db_fx"
	"marryday/cmd/fx/entitlement_fx"
	"marryday/cmd/fx/payment_fx"
	"marryday/cmd/fx/shop_fx"
	"marryday/cmd/fx/vendor_fx"
	"marryday/internal/api/controllers"
	mem "marryday/pkg/memcache"
	"marryday/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		entitlement_fx.Module,
		payment_fx.Module,
		assistant_fx.Module,
		vendor_fx.Module,
		shop_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", os.Getenv("PORT"))
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	subscriptionController *controllers.SubscriptionController,
	paymentController *controllers.PaymentController,
	assistantController *controllers.AssistantController,
	vendorController *controllers.VendorController,
	orderController *controllers.OrderController,
	revoked mem.RevokedTokenStore) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		subscriptionController,
		paymentController,
		assistantController,
		vendorController,
		orderController,
		revoked)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	subscriptionController *controllers.SubscriptionController,
	paymentController *controllers.PaymentController,
	assistantController *controllers.AssistantController,
	vendorController *controllers.VendorController,
	orderController *controllers.OrderController,
	revoked mem.RevokedTokenStore) {

	api := r.Group("/api/v1")

	api.POST("/accounts/signup", accountController.SignUp)
	api.POST("/accounts/login", accountController.Login)

	api.GET("/vendors", vendorController.ListVendors)
	api.GET("/vendors/:id", vendorController.GetVendor)
	api.POST("/vendors/search", vendorController.SearchVendors)

	api.GET("/products", orderController.ListProducts)

	auth := api.Group("")
	auth.Use(middleware.JWTAuthMiddleware(revoked))

	auth.POST("/accounts/logout", accountController.Logout)

	auth.GET("/subscriptions/me", subscriptionController.GetEntitlement)
	auth.POST("/subscriptions/trial", subscriptionController.StartTrial)
	auth.POST("/subscriptions/subscribe", subscriptionController.Subscribe)
	auth.POST("/subscriptions/cancel", subscriptionController.Cancel)
	auth.POST("/subscriptions/confirm", paymentController.ActivateSubscription)

	auth.POST("/payments/confirm", paymentController.ConfirmPayment)

	auth.POST("/assistant/chat", assistantController.Chat)
	auth.POST("/assistant/documents", assistantController.GenerateDocument)

	auth.POST("/orders", orderController.CreateOrder)
	auth.GET("/orders", orderController.ListOrders)
	auth.GET("/orders/:orderNumber", orderController.GetOrder)

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(revoked), middleware.RoleMiddleware("admin"))
	admin.POST("/vendors/:id/index", vendorController.IndexVendor)
}
