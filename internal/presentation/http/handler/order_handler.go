package handler

import (
	"strconv"
	"time"

	"github.com/almadina/pos-api/internal/application/service"
	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/repository"
	"github.com/almadina/pos-api/internal/presentation/http/dto/request"
	"github.com/almadina/pos-api/internal/presentation/http/dto/response"
	"github.com/almadina/pos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService   *service.OrderService
	printerService *service.PrinterService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, printerService *service.PrinterService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		printerService: printerService,
	}
}

func orderInputFromRequest(req *request.CreateOrderRequest) *service.CreateOrderInput {
	input := &service.CreateOrderInput{
		UseServiceCharge: req.UseServiceCharge,
	}
	// Invalid numeric input is coerced to zero rather than rejected.
	if req.Discount > 0 {
		input.Discount = req.Discount
	}
	for _, line := range req.Items {
		input.Lines = append(input.Lines, service.OrderLineInput{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}
	return input
}

// Preview handles POST /orders/preview. Nothing is persisted: the response
// carries the priced order and its receipt for the confirmation screen.
func (h *OrderHandler) Preview(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.PreviewOrder(c.Request.Context(), orderInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.printerService.ComposeReceipt(c.Request.Context(), order)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order preview generated", gin.H{
		"order":   order,
		"receipt": receipt,
	})
}

// Create handles POST /orders. Requires an Idempotency-Key header.
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), orderInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// orderDateWindow turns start_date/end_date/day query values into an
// inclusive-start, exclusive-end window. end_date and day name whole calendar
// days, so the exclusive bound is midnight after the named day; orders placed
// on the end date stay inside the window. day wins over the range params.
func orderDateWindow(startStr, endStr, dayStr string) (start, end *time.Time) {
	if dayStr != "" {
		if day, err := time.Parse("2006-01-02", dayStr); err == nil {
			next := day.AddDate(0, 0, 1)
			return &day, &next
		}
	}
	if startStr != "" {
		if s, err := time.Parse("2006-01-02", startStr); err == nil {
			start = &s
		}
	}
	if endStr != "" {
		if e, err := time.Parse("2006-01-02", endStr); err == nil {
			next := e.AddDate(0, 0, 1)
			end = &next
		}
	}
	return start, end
}

// List handles GET /orders (supports both page-based and cursor-based pagination)
func (h *OrderHandler) List(c *gin.Context) {
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	params.StartDate, params.EndDate = orderDateWindow(
		c.Query("start_date"), c.Query("end_date"), c.Query("day"))

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(orders, pagination.NewPagination(page, perPage, total))
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// listWithCursor handles listing orders with cursor-based pagination
func (h *OrderHandler) listWithCursor(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	params := &repository.OrderCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    c.Query("cursor"),
			Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
			Limit:     limit,
		},
		Search: c.Query("search"),
	}

	params.StartDate, params.EndDate = orderDateWindow(
		c.Query("start_date"), c.Query("end_date"), c.Query("day"))

	orders, err := h.orderService.ListOrdersWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	cursorPagination, pageItems := pagination.NewCursorPagination(orders, params.Cursor.Limit,
		func(o entity.Order) string { return o.ID.String() },
		func(o entity.Order) time.Time { return o.CreatedAt })
	cursorPagination.HasPrev = params.Cursor.Cursor != ""

	result := pagination.NewCursorPaginatedResult(pageItems, cursorPagination)
	response.OK(c, "Orders retrieved successfully", result)
}

// Get handles GET /orders/:id. The ID may be the internal UUID or the
// human-readable order number ("#1247", URL-encoded).
func (h *OrderHandler) Get(c *gin.Context) {
	idParam := c.Param("id")

	if id, err := uuid.Parse(idParam); err == nil {
		order, err := h.orderService.GetOrder(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Order retrieved successfully", order)
		return
	}

	order, err := h.orderService.GetOrderByNo(c.Request.Context(), idParam)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// Delete handles DELETE /orders/:id. Deleting rewrites sales history, so the
// caller must pass ?confirm=true as an explicit acknowledgement.
func (h *OrderHandler) Delete(c *gin.Context) {
	if c.Query("confirm") != "true" {
		response.BadRequest(c, "Order deletion requires confirm=true")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order deleted successfully", nil)
}
