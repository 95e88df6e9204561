package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes. Reads are public, mutations
// go on the admin-guarded router.
func (h *ProductHandler) RegisterRoutes(public fiber.Router, admin fiber.Router) {
	public.Get("/products", h.HandleListProducts)
	public.Get("/products/subcategory/:subcategoryId", h.HandleGetProductsBySubcategory)
	public.Get("/products/:id", h.HandleGetProduct)

	admin.Post("/products", h.HandleCreateProduct)
	admin.Put("/products/:id", h.HandleUpdateProduct)
	admin.Delete("/products/:id", h.HandleDeleteProduct)
}

// createProductRequest is the create payload. Images are the URLs of
// already-uploaded files; resolving uploads to URLs happens before this
// handler.
type createProductRequest struct {
	services.CreateProductInput
	Images []string `json:"images" validate:"omitempty,dive,http_url"`
}

// updateProductRequest is the partial-update payload. A nil Images pointer
// means "keep the stored image list".
type updateProductRequest struct {
	services.UpdateProductInput
	Images *[]string `json:"images" validate:"omitempty,dive,http_url"`
}

// HandleListProducts retrieves a filtered, paginated page of active
// products (public).
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	filter := repositories.ProductFilter{
		SubcategoryID: c.Query("subcategory"),
		Size:          models.Size(c.Query("size")),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	products, total, err := h.service.ListProducts(filter, page, limit)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return serverError(c, err)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return c.JSON(fiber.Map{
		"success":     true,
		"count":       len(products),
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": page,
		"products":    products,
	})
}

// HandleGetProductsBySubcategory retrieves all active products under a
// subcategory (public).
func (h *ProductHandler) HandleGetProductsBySubcategory(c *fiber.Ctx) error {
	subcategoryID := c.Params("subcategoryId")
	products, err := h.service.GetProductsBySubcategory(subcategoryID)
	if err != nil {
		log.Printf("Error getting products for subcategory %s: %v", subcategoryID, err)
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

// HandleGetProduct retrieves a single product by its ID (public). Inactive
// products still resolve here.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleCreateProduct creates a new product (admin only).
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if resp := h.validationErrors(c, req); resp != nil {
		return resp
	}

	product, err := h.service.CreateProduct(req.CreateProductInput, req.Images)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product created successfully",
		"product": product,
	})
}

// HandleUpdateProduct applies a partial update to a product (admin only).
// Fields absent from the payload keep their stored values; explicit zero
// values such as is_active=false do overwrite.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req updateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if resp := h.validationErrors(c, req); resp != nil {
		return resp
	}

	var images []string
	if req.Images != nil {
		images = *req.Images
		if images == nil {
			images = []string{}
		}
	}

	product, err := h.service.UpdateProduct(c.Params("id"), req.UpdateProductInput, images)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"product": product,
	})
}

// HandleDeleteProduct deletes a product (admin only).
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}

// validationErrors runs struct validation on a parsed request and renders
// the field errors, or returns nil when the request is valid.
func (h *ProductHandler) validationErrors(c *fiber.Ctx, req interface{}) error {
	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return nil
}

// errorResponse maps a service error to its HTTP shape. Validation and
// reference failures carry their own messages; everything else is an
// opaque server error.
func (h *ProductHandler) errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Product not found",
		})
	case errors.Is(err, repositories.ErrSubcategoryNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Subcategory not found",
		})
	case errors.Is(err, models.ErrEmptyVariations):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "At least one variation is required",
		})
	case errors.Is(err, models.ErrDuplicateSize):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Duplicate sizes are not allowed in variations",
		})
	default:
		log.Printf("Product handler error: %v", err)
		return serverError(c, err)
	}
}

func serverError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Server error",
		"error":   err.Error(),
	})
}
