package handler

import (
	"github.com/almadina/pos-api/internal/application/service"
	"github.com/almadina/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PrinterHandler handles receipt printing HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status handles GET /printer/status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus())
}

// TestPrint handles POST /printer/test
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		// Return the receipt anyway so the caller can see what would print
		response.OK(c, "Printer unavailable, returning receipt data", receipt)
		return
	}
	response.OK(c, "Test page printed", receipt)
}

// PrintOrder handles POST /orders/:id/print
func (h *PrinterHandler) PrintOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	receipt, err := h.printerService.PrintOrderReceipt(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			response.OK(c, "Printer unavailable, returning receipt data", receipt)
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed", receipt)
}
