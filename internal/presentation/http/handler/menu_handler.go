package handler

import (
	"strconv"

	"github.com/almadina/pos-api/internal/application/service"
	"github.com/almadina/pos-api/internal/domain/enum"
	"github.com/almadina/pos-api/internal/domain/repository"
	"github.com/almadina/pos-api/internal/presentation/http/dto/request"
	"github.com/almadina/pos-api/internal/presentation/http/dto/response"
	"github.com/almadina/pos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List handles GET /menu
func (h *MenuHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))

	params := &repository.MenuFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if categoryStr := c.Query("category"); categoryStr != "" {
		if categoryInt, err := strconv.Atoi(categoryStr); err == nil {
			category := enum.Category(categoryInt)
			params.Category = &category
		}
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if statusInt, err := strconv.Atoi(statusStr); err == nil {
			status := enum.ItemStatus(statusInt)
			params.Status = &status
		}
	}

	items, total, err := h.menuService.ListMenuItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(items, pagination.NewPagination(page, perPage, total))
	response.SuccessWithPagination(c, 200, "Menu items retrieved successfully", result)
}

// ListAvailable handles GET /menu/available
func (h *MenuHandler) ListAvailable(c *gin.Context) {
	items, err := h.menuService.ListAvailable(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Available menu items retrieved successfully", items)
}

// Get handles GET /menu/:id
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetMenuItem(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item retrieved successfully", item)
}

// Create handles POST /menu
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), &service.CreateMenuItemInput{
		Name:     req.Name,
		Category: enum.Category(req.Category),
		Price:    req.Price,
		Status:   enum.ItemStatus(req.Status),
		ImageURL: req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Menu item created successfully", item)
}

// Update handles PUT /menu/:id
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateMenuItemInput{
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	}
	if req.Category != nil {
		category := enum.Category(*req.Category)
		input.Category = &category
	}
	if req.Status != nil {
		status := enum.ItemStatus(*req.Status)
		input.Status = &status
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), uint(id), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item updated successfully", item)
}

// Delete handles DELETE /menu/:id
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteMenuItem(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item deleted successfully", nil)
}
