package main

import (
	"net/http"

	"github.com/tokoretail/retail-platform/internal/api/handlers"
)

type routeHandlers struct {
	products     *handlers.ProductHandler
	distributors *handlers.DistributorHandler
	customers    *handlers.CustomerHandler
	couriers     *handlers.CourierHandler
	users        *handlers.UserHandler
	sales        *handlers.SaleHandler
	carts        *handlers.CartHandler
	store        *handlers.StoreHandler
	dashboard    *handlers.DashboardHandler
}

func registerRoutes(mux *http.ServeMux, h routeHandlers) {

	// Back office
	mux.HandleFunc("GET /api/v1/products", h.products.ListProducts())
	mux.HandleFunc("POST /api/v1/products", h.products.CreateProduct())
	mux.HandleFunc("GET /api/v1/products/{id}", h.products.GetProduct())
	mux.HandleFunc("PATCH /api/v1/products/{id}", h.products.UpdateProduct())
	mux.HandleFunc("DELETE /api/v1/products/{id}", h.products.DeleteProduct())

	mux.HandleFunc("GET /api/v1/distributors", h.distributors.ListDistributors())
	mux.HandleFunc("POST /api/v1/distributors", h.distributors.CreateDistributor())
	mux.HandleFunc("GET /api/v1/distributors/{id}", h.distributors.GetDistributor())
	mux.HandleFunc("PATCH /api/v1/distributors/{id}", h.distributors.UpdateDistributor())
	mux.HandleFunc("DELETE /api/v1/distributors/{id}", h.distributors.DeleteDistributor())

	mux.HandleFunc("GET /api/v1/customers", h.customers.ListCustomers())
	mux.HandleFunc("POST /api/v1/customers", h.customers.CreateCustomer())
	mux.HandleFunc("GET /api/v1/customers/{id}", h.customers.GetCustomer())
	mux.HandleFunc("PATCH /api/v1/customers/{id}", h.customers.UpdateCustomer())
	mux.HandleFunc("DELETE /api/v1/customers/{id}", h.customers.DeleteCustomer())

	mux.HandleFunc("GET /api/v1/couriers", h.couriers.ListCouriers())
	mux.HandleFunc("POST /api/v1/couriers", h.couriers.CreateCourier())
	mux.HandleFunc("GET /api/v1/couriers/{id}", h.couriers.GetCourier())
	mux.HandleFunc("PATCH /api/v1/couriers/{id}", h.couriers.UpdateCourier())
	mux.HandleFunc("DELETE /api/v1/couriers/{id}", h.couriers.DeleteCourier())

	mux.HandleFunc("GET /api/v1/users", h.users.ListUsers())
	mux.HandleFunc("POST /api/v1/users", h.users.CreateUser())
	mux.HandleFunc("GET /api/v1/users/{id}", h.users.GetUser())
	mux.HandleFunc("PATCH /api/v1/users/{id}", h.users.UpdateUser())
	mux.HandleFunc("DELETE /api/v1/users/{id}", h.users.DeleteUser())

	mux.HandleFunc("GET /api/v1/sales", h.sales.ListSales())
	mux.HandleFunc("POST /api/v1/sales", h.sales.CreateSale())
	mux.HandleFunc("GET /api/v1/sales/{id}", h.sales.GetSale())
	mux.HandleFunc("DELETE /api/v1/sales/{id}", h.sales.DeleteSale())
	mux.HandleFunc("GET /api/v1/sales/{id}/items", h.sales.ListSaleItems())
	mux.HandleFunc("POST /api/v1/sales/{id}/items", h.sales.CreateSaleItem())

	mux.HandleFunc("GET /api/v1/dashboard/stats", h.dashboard.GetStats())

	// Storefront
	mux.HandleFunc("GET /api/v1/carts/{customerID}", h.carts.GetCart())
	mux.HandleFunc("DELETE /api/v1/carts/{customerID}", h.carts.ClearCart())
	mux.HandleFunc("POST /api/v1/carts/items", h.carts.AddItem())
	mux.HandleFunc("PATCH /api/v1/carts/items/{id}", h.carts.UpdateQuantity())
	mux.HandleFunc("DELETE /api/v1/carts/items/{id}", h.carts.RemoveItem())

	mux.HandleFunc("GET /api/v1/store/products", h.store.ListAvailableProducts())
	mux.HandleFunc("GET /api/v1/store/products/search", h.store.SearchProducts())
	mux.HandleFunc("GET /api/v1/store/products/{id}", h.store.GetAvailableProduct())
	mux.HandleFunc("POST /api/v1/store/checkout", h.store.Checkout())
	mux.HandleFunc("GET /api/v1/store/customers/{customerID}/orders", h.store.ListCustomerOrders())
	mux.HandleFunc("GET /api/v1/store/orders/{id}", h.store.GetOrderDetails())
	mux.HandleFunc("PATCH /api/v1/store/orders/{id}/status", h.store.UpdateOrderStatus())
}
