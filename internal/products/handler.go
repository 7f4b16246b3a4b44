package products

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventmart/internal/auth"
	"eventmart/internal/domain/product"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

type CreateProductReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       *int    `json:"stock" binding:"required,gte=0"`
	ImageURL    *string `json:"image_url"`
}

// Vendor: add product (status starts as available).
func (h *Handler) Add(c *gin.Context) {
	var req CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	_, err := h.repo.Create(c.Request.Context(), CreateInput{
		VendorID:    auth.CurrentUserID(c),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       *req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully"})
}

// Vendor: list own products.
func (h *Handler) MyProducts(c *gin.Context) {
	items, err := h.repo.ListByVendor(c.Request.Context(), auth.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	if items == nil {
		items = []product.Product{}
	}
	c.JSON(http.StatusOK, items)
}

// Vendor: patch own product field-by-field.
func (h *Handler) Update(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var p Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if p.Status != nil && !product.ValidStatus(*p.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	if p.Price != nil && *p.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}
	if p.Stock != nil && *p.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stock"})
		return
	}

	err := h.repo.Update(c.Request.Context(), id, auth.CurrentUserID(c), p)
	if errors.Is(err, ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// Vendor: delete own product.
func (h *Handler) Delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	err := h.repo.Delete(c.Request.Context(), id, auth.CurrentUserID(c))
	if errors.Is(err, ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// Vendor: flip available / out_of_stock.
func (h *Handler) ToggleStatus(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("product_id"), 10, 64)

	status, err := h.repo.ToggleStatus(c.Request.Context(), id, auth.CurrentUserID(c))
	if errors.Is(err, ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Product status updated to " + status,
		"new_status": status,
	})
}

// User: browse available products, filterable by vendor id or vendor
// category.
func (h *Handler) Browse(c *gin.Context) {
	var vendorID *int64
	if v := c.Query("vendor_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor_id"})
			return
		}
		vendorID = &id
	}
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}

	items, err := h.repo.ListAvailable(c.Request.Context(), vendorID, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	if items == nil {
		items = []product.Product{}
	}
	c.JSON(http.StatusOK, items)
}
