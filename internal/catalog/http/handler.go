package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"product-catalog/internal/catalog"

	"github.com/gin-gonic/gin"
)

const (
	statusError   = "error"
	statusSuccess = "success"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	GetProduct(ctx context.Context, id int) (catalog.Product, error)
	AddProduct(ctx context.Context, form catalog.ProductForm) (catalog.Product, error)
	UpdateProduct(ctx context.Context, form catalog.ProductForm) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

type Handler struct {
	service ProductService
}

func NewHandler(svc ProductService) *Handler {
	return &Handler{service: svc}
}

type statusResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Product deleted successfully"`
}

type productResponse struct {
	Status  string          `json:"status" example:"success"`
	Message string          `json:"message" example:"Product added successfully"`
	Product catalog.Product `json:"product"`
}

// ListProducts godoc
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   catalog.Product
// @Failure      500  {object}  statusResponse
// @Router       /api/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	items, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetProduct godoc
// @Summary      Get one product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  catalog.Product
// @Failure      404  {object}  statusResponse
// @Router       /api/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, catalog.ErrNotFound)
		return
	}

	p, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddProduct godoc
// @Summary      Add a product
// @Tags         products
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id      formData  int     true   "Product ID"
// @Param        number  formData  int     false  "Unique product number"
// @Param        name    formData  string  false  "Name"
// @Param        price   formData  int     false  "Price"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /api/products/add [post]
func (h *Handler) AddProduct(c *gin.Context) {
	p, err := h.service.AddProduct(c.Request.Context(), extractForm(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, productResponse{
		Status:  statusSuccess,
		Message: "Product added successfully",
		Product: p,
	})
}

// UpdateProduct godoc
// @Summary      Update a product
// @Tags         products
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id  formData  int  true  "Product ID"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /api/products/update [post]
func (h *Handler) UpdateProduct(c *gin.Context) {
	p, err := h.service.UpdateProduct(c.Request.Context(), extractForm(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, productResponse{
		Status:  statusSuccess,
		Message: "Product updated successfully",
		Product: p,
	})
}

// DeleteProduct godoc
// @Summary      Delete a product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, catalog.ErrNotFound)
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{
		Status:  statusSuccess,
		Message: "Product deleted successfully",
	})
}

// extractForm pulls every known field out of the submission, recording which
// keys were present so update can tell an absent field from an empty one.
func extractForm(c *gin.Context) catalog.ProductForm {
	field := func(key string) catalog.Field {
		value, ok := c.GetPostForm(key)
		return catalog.Field{Value: value, Set: ok}
	}
	list := func(key string) catalog.ListField {
		values, ok := c.GetPostFormArray(key)
		return catalog.ListField{Values: values, Set: ok}
	}

	return catalog.ProductForm{
		ID:             field("id"),
		Number:         field("number"),
		Name:           field("name"),
		Category:       field("category"),
		Price:          field("price"),
		OriginalPrice:  field("originalPrice"),
		Image:          field("image"),
		Link:           field("link"),
		Rating:         field("rating"),
		Reviews:        field("reviews"),
		Ribuan:         field("ribuan"),
		Stock:          field("stock"),
		Description:    field("description"),
		Specifications: field("specifications"),
		Images:         list("images[]"),
		Features:       list("features[]"),
	}
}

// respondError maps an error to its status code and JSON body. Anything not
// recognized as a domain error is a server error.
func respondError(c *gin.Context, err error) {
	var (
		invalidInput *catalog.InvalidInputError
		duplicateID  *catalog.DuplicateIDError
		duplicateNum *catalog.DuplicateNumberError
	)

	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, statusResponse{Status: statusError, Message: catalog.ErrNotFound.Error()})
	case errors.Is(err, catalog.ErrInvalidID):
		c.JSON(http.StatusBadRequest, statusResponse{Status: statusError, Message: catalog.ErrInvalidID.Error()})
	case errors.As(err, &invalidInput):
		c.JSON(http.StatusBadRequest, statusResponse{Status: statusError, Message: invalidInput.Error()})
	case errors.As(err, &duplicateID):
		c.JSON(http.StatusBadRequest, statusResponse{Status: statusError, Message: duplicateID.Error()})
	case errors.As(err, &duplicateNum):
		c.JSON(http.StatusBadRequest, statusResponse{Status: statusError, Message: duplicateNum.Error()})
	default:
		c.JSON(http.StatusInternalServerError, statusResponse{Status: statusError, Message: "Server error"})
	}
}
