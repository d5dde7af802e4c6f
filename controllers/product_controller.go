package controllers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/catalog"
	"storefront/models"
)

const defaultPageSize = 12

type ProductController struct {
	catalog *catalog.Service
}

func NewProductController(catalogService *catalog.Service) *ProductController {
	return &ProductController{catalog: catalogService}
}

// @Summary List products
// @Description Get the filtered, sorted, paginated product listing
// @Tags Products
// @Produce json
// @Param category query []string false "Filter by category"
// @Param min_price query number false "Minimum price" default(0)
// @Param max_price query number false "Maximum price" default(1000)
// @Param search query string false "Search in title, description and category"
// @Param sort query string false "Sort order" Enums(featured, price-asc, price-desc, rating, newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.PaginatedResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	filters := models.DefaultFilterOptions()
	for _, cat := range c.QueryArray("category") {
		if cat = strings.TrimSpace(cat); cat != "" {
			filters.Categories = append(filters.Categories, cat)
		}
	}
	if v := c.Query("min_price"); v != "" {
		if minPrice, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MinPrice = minPrice
		}
	}
	if v := c.Query("max_price"); v != "" {
		if maxPrice, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MaxPrice = maxPrice
		}
	}
	filters.SearchQuery = strings.TrimSpace(c.Query("search"))

	sortKey := catalog.ParseSortKey(c.DefaultQuery("sort", "featured"))

	items, total, err := ctrl.catalog.Browse(c.Request.Context(), filters, sortKey, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.PaginatedResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    items,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	product, err := ctrl.catalog.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Get all categories
// @Description Get list of all product categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /categories [get]
func (ctrl *ProductController) Categories(c *gin.Context) {
	categories, err := ctrl.catalog.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}
