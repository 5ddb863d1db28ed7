package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
)

// ExportService renders books and documents into downloadable files.
type ExportService struct {
	txnRepo      repository.TransactionRepository
	purchaseRepo repository.PurchaseRepository
	invoiceRepo  repository.InvoiceRepository
	settingsRepo repository.SettingsRepository
}

// NewExportService creates a new export service
func NewExportService(
	txnRepo repository.TransactionRepository,
	purchaseRepo repository.PurchaseRepository,
	invoiceRepo repository.InvoiceRepository,
	settingsRepo repository.SettingsRepository,
) *ExportService {
	return &ExportService{
		txnRepo:      txnRepo,
		purchaseRepo: purchaseRepo,
		invoiceRepo:  invoiceRepo,
		settingsRepo: settingsRepo,
	}
}

// ExportPurchasesCSV writes the full purchase book to CSV.
func (s *ExportService) ExportPurchasesCSV(ctx context.Context) ([]byte, string, error) {
	purchases, err := s.purchaseRepo.FindAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load purchases: %w", err)
	}

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write([]string{"Purchase Report", time.Now().Format("2006-01-02 15:04")})
	_ = writer.Write([]string{""})
	_ = writer.Write([]string{"Date", "Vendor", "Description", "Category", "Status", "Amount"})

	var total float64
	for _, p := range purchases {
		total += p.Amount
		_ = writer.Write([]string{
			p.Date.Format("2006-01-02"),
			p.VendorName,
			p.Description,
			p.Category,
			p.Status,
			fmt.Sprintf("%.2f", p.Amount),
		})
	}
	_ = writer.Write([]string{""})
	_ = writer.Write([]string{"Total", "", "", "", "", fmt.Sprintf("%.2f", total)})

	writer.Flush()

	filename := fmt.Sprintf("purchases_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportLedgerXLSX writes the full transaction ledger to a spreadsheet.
func (s *ExportService) ExportLedgerXLSX(ctx context.Context) ([]byte, string, error) {
	transactions, err := s.txnRepo.FindAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load transactions: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Ledger"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", "General Ledger")
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	_ = f.SetCellValue(sheet, "A3", "Date")
	_ = f.SetCellValue(sheet, "B3", "Description")
	_ = f.SetCellValue(sheet, "C3", "Type")
	_ = f.SetCellValue(sheet, "D3", "Category")
	_ = f.SetCellValue(sheet, "E3", "Amount")

	var income, expenses float64
	row := 4
	for _, t := range transactions {
		if t.IsIncome() {
			income += t.Amount
		} else {
			expenses += t.Amount
		}
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), t.Date.Format("2006-01-02"))
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), t.Description)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), t.Type)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), t.Category)
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), t.Amount)
		row++
	}

	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total Income")
	_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), income)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total Expenses")
	_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), expenses)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Net Profit")
	_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), income-expenses)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ledger_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportInvoicePDF renders a single invoice as a printable PDF.
func (s *ExportService) ExportInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load invoice: %w", err)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		settings = models.DefaultAgencySettings()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(120, 10, settings.Name)
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "INVOICE", "", 0, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(120, 6, settings.Tagline)
	pdf.CellFormat(0, 6, invoice.InvoiceNumber, "", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(40, 8, "Billed To:")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(80, 6, invoice.ClientName)
	pdf.CellFormat(0, 6, "Date: "+invoice.Date.Format("02/01/2006"), "", 0, "R", false, 0, "")
	pdf.Ln(6)
	pdf.Cell(80, 6, invoice.ClientEmail)
	pdf.CellFormat(0, 6, "Due: "+invoice.DueDate.Format("02/01/2006"), "", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(224, 224, 224)
	pdf.CellFormat(100, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 0, "R", true, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, item := range invoice.Items {
		pdf.CellFormat(100, 8, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%g", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.Quantity*item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.Ln(8)
	}
	pdf.Ln(4)

	writeTotalRow := func(label string, amount float64, bold bool) {
		if bold {
			pdf.SetFont("Arial", "B", 10)
		} else {
			pdf.SetFont("Arial", "", 10)
		}
		pdf.CellFormat(155, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f %s", amount, invoice.Currency), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	writeTotalRow("Subtotal:", invoice.Subtotal(), false)
	if invoice.DiscountAmount > 0 {
		writeTotalRow("Discount:", -invoice.DiscountAmount, false)
	}
	writeTotalRow(fmt.Sprintf("Tax (%.0f%%):", invoice.TaxRate), invoice.Total-(invoice.Subtotal()-invoice.DiscountAmount), false)
	writeTotalRow("Total:", invoice.Total, true)
	if invoice.AdvancePayment > 0 || invoice.PaidAmount > 0 {
		writeTotalRow("Paid:", invoice.AdvancePayment+invoice.PaidAmount, false)
		writeTotalRow("Balance Due:", invoice.Outstanding(), true)
	}

	if settings.BankDetails != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(40, 6, "Payment Details")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, settings.BankDetails, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render invoice PDF: %w", err)
	}

	filename := fmt.Sprintf("%s.pdf", invoice.InvoiceNumber)
	return buf.Bytes(), filename, nil
}
