package service

import (
	"context"
	"fmt"
	"log"

	"github.com/almadina/pos-api/internal/config"
	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/repository"
	"github.com/almadina/pos-api/pkg/apperror"
	"github.com/almadina/pos-api/pkg/printer"
	"github.com/google/uuid"
)

// PrinterService handles receipt composition and thermal printing.
type PrinterService struct {
	printer      printer.Printer
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	billing      config.BillingConfig
	printerType  string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
	billing config.BillingConfig,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:      p,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		billing:      billing,
		printerType:  printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// ComposeReceipt builds the printable receipt for an order. Used both for the
// on-screen preview and as the input to the thermal printer.
func (s *PrinterService) ComposeReceipt(ctx context.Context, order *entity.Order) (*entity.Receipt, error) {
	symbol := "৳"
	if settings, err := s.settingsRepo.Get(ctx); err == nil && settings != nil {
		symbol = settings.CurrencySymbol
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			RestaurantName: s.billing.RestaurantName,
			Address:        s.billing.Address,
			Phone:          s.billing.Phone,
		},
		OrderNo:        order.OrderNo,
		Date:           order.OrderDate.Format("2006-01-02"),
		Time:           order.OrderDate.Format("15:04"),
		Subtotal:       float64(order.Subtotal) / 100,
		Tax:            float64(order.Tax) / 100,
		Discount:       float64(order.Discount) / 100,
		ServiceCharge:  float64(order.ServiceCharge) / 100,
		GrandTotal:     float64(order.GrandTotal) / 100,
		CurrencySymbol: symbol,
	}

	for _, line := range order.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: float64(line.UnitPrice) / 100,
			Total:     float64(line.LineTotal) / 100,
		})
	}

	return receipt, nil
}

// PrintOrderReceipt fetches an order and prints its receipt.
// The composed receipt is returned either way so the handler can render it as
// JSON when no physical printer is attached.
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderID uuid.UUID) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt, err := s.ComposeReceipt(ctx, order)
	if err != nil {
		return nil, err
	}

	data := FormatReceipt(receipt, s.billing.FooterMessage)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %s): %v", order.OrderNo, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// TestPrint sends a test page to the printer.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			RestaurantName: "PRINTER TEST",
			Address:        "Test Address",
			Phone:          "+880 000 000 000",
		},
		OrderNo: "#0000",
		Date:    "Test Date",
		Time:    "00:00",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		Subtotal:   20.00,
		Tax:        0.00,
		GrandTotal: 20.00,
	}

	data := FormatReceipt(receipt, "Test complete")
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, footer string) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.RestaurantName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.TextF("Contact: %s", r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Order info
	doc.KeyValue("Order:", r.OrderNo).
		KeyValue("Date:", r.Date).
		KeyValue("Time:", r.Time)

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals. Discount and service charge rows only appear when charged.
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.Subtotal))
	if r.Tax > 0 {
		doc.KeyValue("Tax:", fmt.Sprintf("%.2f", r.Tax))
	}
	if r.Discount > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-%.2f", r.Discount))
	}
	if r.ServiceCharge > 0 {
		doc.KeyValue("Service Charge:", fmt.Sprintf("%.2f", r.ServiceCharge))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.GrandTotal)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text(footer).
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
