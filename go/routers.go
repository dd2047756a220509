package ordermanagerserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// DefaultHandleFunc returns 404 for unconfigured routes.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotFound, "404 page not found")
}

// ApiHandleFunctions groups the handlers for each API surface.
type ApiHandleFunctions struct {
	OrdersAPI    OrdersAPI
	ProductsAPI  ProductsAPI
	CustomersAPI CustomersAPI
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"ListOrders",
			http.MethodGet,
			"/api/orders",
			handleFunctions.OrdersAPI.ListOrders,
		},
		{
			"CreateOrder",
			http.MethodPost,
			"/api/orders",
			handleFunctions.OrdersAPI.CreateOrder,
		},
		{
			"GetOrderById",
			http.MethodGet,
			"/api/orders/:id",
			handleFunctions.OrdersAPI.GetOrderById,
		},
		{
			"UpdateOrder",
			http.MethodPut,
			"/api/orders/:id",
			handleFunctions.OrdersAPI.UpdateOrder,
		},
		{
			"DeleteOrder",
			http.MethodDelete,
			"/api/orders/:id",
			handleFunctions.OrdersAPI.DeleteOrder,
		},
		{
			"ChangeOrderStatus",
			http.MethodPatch,
			"/api/orders/:id/status",
			handleFunctions.OrdersAPI.ChangeOrderStatus,
		},
		{
			"AddOrderPosition",
			http.MethodPost,
			"/api/orders/:id/positions",
			handleFunctions.OrdersAPI.AddOrderPosition,
		},
		{
			"ModifyOrderPositions",
			http.MethodPatch,
			"/api/orders/:id/positions",
			handleFunctions.OrdersAPI.ModifyOrderPositions,
		},
		{
			"ModifyOrderPosition",
			http.MethodPatch,
			"/api/orders/:id/positions/:productId",
			handleFunctions.OrdersAPI.ModifyOrderPosition,
		},
		{
			"RemoveOrderPosition",
			http.MethodDelete,
			"/api/orders/:id/positions/:productId",
			handleFunctions.OrdersAPI.RemoveOrderPosition,
		},
		{
			"ListProducts",
			http.MethodGet,
			"/api/products",
			handleFunctions.ProductsAPI.ListProducts,
		},
		{
			"CreateProduct",
			http.MethodPost,
			"/api/products",
			handleFunctions.ProductsAPI.CreateProduct,
		},
		{
			"GetProductById",
			http.MethodGet,
			"/api/products/:id",
			handleFunctions.ProductsAPI.GetProductById,
		},
		{
			"UpdateProduct",
			http.MethodPut,
			"/api/products/:id",
			handleFunctions.ProductsAPI.UpdateProduct,
		},
		{
			"DeleteProduct",
			http.MethodDelete,
			"/api/products/:id",
			handleFunctions.ProductsAPI.DeleteProduct,
		},
		{
			"ListCustomers",
			http.MethodGet,
			"/api/customers",
			handleFunctions.CustomersAPI.ListCustomers,
		},
		{
			"CreateCustomer",
			http.MethodPost,
			"/api/customers",
			handleFunctions.CustomersAPI.CreateCustomer,
		},
		{
			"GetCustomerById",
			http.MethodGet,
			"/api/customers/:id",
			handleFunctions.CustomersAPI.GetCustomerById,
		},
		{
			"UpdateCustomer",
			http.MethodPut,
			"/api/customers/:id",
			handleFunctions.CustomersAPI.UpdateCustomer,
		},
		{
			"DeleteCustomer",
			http.MethodDelete,
			"/api/customers/:id",
			handleFunctions.CustomersAPI.DeleteCustomer,
		},
	}
}
