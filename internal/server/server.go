package server

import (
	"contentshop/internal/handler"
	custommw "contentshop/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth       *handler.AuthHandler
	Catalog    *handler.CatalogHandler
	Cart       *handler.CartHandler
	Checkout   *handler.CheckoutHandler
	Payment    *handler.PaymentHandler
	Order      *handler.OrderHandler
	Download   *handler.DownloadHandler
	Newsletter *handler.NewsletterHandler
}

type Server struct {
	echo       *echo.Echo
	handlers   *Handlers
	authSecret string
	cookieName string
}

func NewServer(handlers *Handlers, authSecret, cookieName string) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:       e,
		handlers:   handlers,
		authSecret: authSecret,
		cookieName: cookieName,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")
	authed := custommw.Auth(s.authSecret, s.cookieName)
	admin := custommw.RequireAdmin()

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/register", s.handlers.Auth.Register)
	auth.POST("/login", s.handlers.Auth.Login)
	auth.POST("/logout", s.handlers.Auth.Logout)
	auth.GET("/me", s.handlers.Auth.Me, authed)

	// -------- catalog --------
	api.GET("/products", s.handlers.Catalog.ListProducts)
	api.GET("/products/:productID", s.handlers.Catalog.GetProduct)

	// -------- cart --------
	cart := api.Group("/cart", authed)
	cart.GET("", s.handlers.Cart.GetCart)
	cart.POST("", s.handlers.Cart.AddItem)
	cart.DELETE("/:productID", s.handlers.Cart.RemoveItem)
	cart.DELETE("", s.handlers.Cart.Clear)

	// -------- checkout / orders --------
	api.POST("/checkout/create-payment", s.handlers.Checkout.CreatePayment, authed)
	api.GET("/user/orders", s.handlers.Order.ListUserOrders, authed)

	// -------- gateway webhook --------
	api.POST("/payment/webhook", s.handlers.Payment.Webhook)
	api.GET("/payment/webhook", s.handlers.Payment.WebhookLiveness)

	// -------- downloads --------
	api.POST("/download/:productID", s.handlers.Download.RequestDownload, authed)
	api.GET("/download/:productID", s.handlers.Download.Download)

	// -------- newsletter --------
	api.POST("/newsletter/subscribe", s.handlers.Newsletter.Subscribe)

	// -------- admin --------
	adm := api.Group("/admin", authed, admin)
	adm.POST("/products", s.handlers.Catalog.CreateProduct)
	adm.PUT("/products/:productID", s.handlers.Catalog.UpdateProduct)
	adm.DELETE("/products/:productID", s.handlers.Catalog.DeleteProduct)
	adm.POST("/digital-products", s.handlers.Catalog.CreateDigitalProduct)
	adm.POST("/orders/:orderID/refund", s.handlers.Payment.Refund)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
