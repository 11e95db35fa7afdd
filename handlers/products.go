package handlers

import (
	"fmt"
	"net/http"

	"templeconnect/models"

	"github.com/gin-gonic/gin"
)

type CreateProductInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int    `json:"price" binding:"required,gt=0"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	InStock     *bool  `json:"inStock"`
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Products.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		InStock:     inStock,
	}
	if input.ImageURL != "" {
		product.Image = &models.Image{ImageURL: input.ImageURL}
	}

	if err := h.Products.CreateProduct(c.Request.Context(), &product); err != nil {
		fmt.Printf("Error creating product: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}
