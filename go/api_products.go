package ordermanagerserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	productmapper "github.com/ordermanager/order-manager-api/internal/domains/products/adapters/http/mapper"
	productsapp "github.com/ordermanager/order-manager-api/internal/domains/products/application"
	productports "github.com/ordermanager/order-manager-api/internal/domains/products/ports"
	apierrors "github.com/ordermanager/order-manager-api/internal/shared/errors"
)

// ProductsAPI wires HTTP transport with the products bounded context service.
type ProductsAPI struct {
	service productports.Service
}

// NewProductsAPI creates a ProductsAPI backed by the provided service.
func NewProductsAPI(service productports.Service) ProductsAPI {
	return ProductsAPI{service: service}
}

// Get /api/products
// List the catalog
func (api *ProductsAPI) ListProducts(c *gin.Context) {
	products, err := api.service.List(c.Request.Context())
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainList(products))
}

// Post /api/products
// Add a product to the catalog
func (api *ProductsAPI) CreateProduct(c *gin.Context) {
	var payload productmapper.Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := api.service.Create(c.Request.Context(), productmapper.ToInput(payload))
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, productmapper.FromDomain(product))
}

// Get /api/products/:id
// Find product by ID
func (api *ProductsAPI) GetProductById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomain(product))
}

// Put /api/products/:id
// Update an existing product
func (api *ProductsAPI) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload productmapper.Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := productmapper.ToInput(payload)
	input.ID = id
	product, err := api.service.Update(c.Request.Context(), input)
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomain(product))
}

// Delete /api/products/:id
// Delete a product that is not part of any order
func (api *ProductsAPI) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondProductServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, productsapp.ErrNotFound):
		respondCodedError(c, apierrors.ErrNotFound, err)
	case errors.Is(err, productsapp.ErrInvalidInput):
		respondCodedError(c, apierrors.ErrValidation, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
