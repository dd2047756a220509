package ordermanagerserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	customermapper "github.com/ordermanager/order-manager-api/internal/domains/customers/adapters/http/mapper"
	customersapp "github.com/ordermanager/order-manager-api/internal/domains/customers/application"
	customerports "github.com/ordermanager/order-manager-api/internal/domains/customers/ports"
	apierrors "github.com/ordermanager/order-manager-api/internal/shared/errors"
)

// CustomersAPI wires HTTP transport with the customers bounded context service.
type CustomersAPI struct {
	service customerports.Service
}

// NewCustomersAPI creates a CustomersAPI backed by the provided service.
func NewCustomersAPI(service customerports.Service) CustomersAPI {
	return CustomersAPI{service: service}
}

// Get /api/customers
// List customers
func (api *CustomersAPI) ListCustomers(c *gin.Context) {
	customers, err := api.service.List(c.Request.Context())
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customermapper.FromDomainList(customers))
}

// Post /api/customers
// Register a new customer
func (api *CustomersAPI) CreateCustomer(c *gin.Context) {
	var payload customermapper.Customer
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	customer, err := api.service.Create(c.Request.Context(), customermapper.ToInput(payload))
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customermapper.FromDomain(customer))
}

// Get /api/customers/:id
// Find customer by ID
func (api *CustomersAPI) GetCustomerById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	customer, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customermapper.FromDomain(customer))
}

// Put /api/customers/:id
// Update an existing customer
func (api *CustomersAPI) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload customermapper.Customer
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := customermapper.ToInput(payload)
	input.ID = id
	customer, err := api.service.Update(c.Request.Context(), input)
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customermapper.FromDomain(customer))
}

// Delete /api/customers/:id
// Delete a customer without orders
func (api *CustomersAPI) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondCustomerServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, customersapp.ErrNotFound):
		respondCodedError(c, apierrors.ErrNotFound, err)
	case errors.Is(err, customersapp.ErrInvalidInput):
		respondCodedError(c, apierrors.ErrValidation, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
