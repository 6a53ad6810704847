package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ZeroVik/PlayScaleFrontend/api/controllers"
	"github.com/ZeroVik/PlayScaleFrontend/api/middleware"
	"github.com/ZeroVik/PlayScaleFrontend/internal/admin"
	"github.com/ZeroVik/PlayScaleFrontend/internal/cart"
	"github.com/ZeroVik/PlayScaleFrontend/internal/catalog"
	"github.com/ZeroVik/PlayScaleFrontend/internal/checkout"
	"github.com/ZeroVik/PlayScaleFrontend/internal/orders"
	"github.com/ZeroVik/PlayScaleFrontend/internal/users"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/config"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	shopP controllers.Pinger,
	redisP controllers.Pinger,
	authAPI controllers.AuthAPI,
	catalogService *catalog.Service,
	cartService *cart.Service,
	checkoutService *checkout.Service,
	ordersService *orders.Service,
	usersService *users.Service,
	adminService *admin.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Session(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, shopP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(authAPI, logg))
		r.Post("/register", controllers.AuthRegister(authAPI, logg))
		r.With(middleware.RequireAuth(logg)).Get("/session", controllers.AuthSession(logg))
	})

	r.Route("/views", func(r chi.Router) {
		r.Get("/catalog", controllers.CatalogList(catalogService, logg))
		r.Get("/products/{productId}", controllers.CatalogDetail(catalogService, logg))
		r.Get("/categories", controllers.CatalogCategories(catalogService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartView(cartService, logg))
				r.Post("/items", controllers.CartAddItem(cartService, logg))
				r.Put("/items/{cartItemId}/quantity", controllers.CartUpdateQuantity(cartService, logg))
				r.Delete("/items/{cartItemId}", controllers.CartRemoveItem(cartService, logg))
				r.Delete("/", controllers.CartClear(cartService, logg))
			})

			r.Post("/checkout", controllers.Checkout(checkoutService, logg))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.OrderHistory(ordersService, logg))
				r.Get("/{orderId}", controllers.OrderDetail(ordersService, logg))
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", controllers.Profile(usersService, logg))
				r.Put("/", controllers.ProfileUpdate(usersService, logg))
			})
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(logg))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateProduct(adminService, logg))
			r.Put("/{productId}", controllers.AdminUpdateProduct(adminService, logg))
			r.Delete("/{productId}", controllers.AdminDeleteProduct(adminService, logg))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateCategory(adminService, logg))
			r.Put("/{categoryId}", controllers.AdminUpdateCategory(adminService, logg))
			r.Delete("/{categoryId}", controllers.AdminDeleteCategory(adminService, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.AdminListUsers(adminService, logg))
			r.Put("/{userId}/role", controllers.AdminUpdateUserRole(adminService, logg))
			r.Delete("/{userId}", controllers.AdminDeleteUser(adminService, logg))
		})

		r.Put("/orders/{orderId}/status", controllers.AdminUpdateOrderStatus(adminService, logg))
	})

	return r
}
