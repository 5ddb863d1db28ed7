package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"

	"github.com/FilmsDust/agency-os/internal/config"
	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
	"github.com/FilmsDust/agency-os/pkg/logger"
)

//go:embed templates/email/*.html
var emailTemplates embed.FS

// EmailService sends billing notifications. When no API key is configured
// every send becomes a logged no-op so invoice flows keep working offline.
type EmailService struct {
	config       *config.Config
	settingsRepo repository.SettingsRepository
	resendClient *resend.Client
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config, settingsRepo repository.SettingsRepository) *EmailService {
	return &EmailService{
		config:       cfg,
		settingsRepo: settingsRepo,
		resendClient: resend.NewClient(cfg.ResendAPIKey),
	}
}

type invoiceItemEmailData struct {
	Description string
	Quantity    string
	UnitPrice   string
}

func (s *EmailService) invoiceData(ctx context.Context, invoice *models.Invoice) map[string]any {
	agencyName := "AdvertsGen"
	if settings, err := s.settingsRepo.Get(ctx); err == nil {
		agencyName = settings.Name
	}

	items := make([]invoiceItemEmailData, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, invoiceItemEmailData{
			Description: item.Description,
			Quantity:    fmt.Sprintf("%g", item.Quantity),
			UnitPrice:   fmt.Sprintf("%.2f", item.UnitPrice),
		})
	}

	return map[string]any{
		"AgencyName":    agencyName,
		"ClientName":    invoice.ClientName,
		"InvoiceNumber": invoice.InvoiceNumber,
		"Date":          invoice.Date.Format("02/01/2006"),
		"DueDate":       invoice.DueDate.Format("02/01/2006"),
		"Currency":      invoice.Currency,
		"Total":         fmt.Sprintf("%.2f", invoice.Total),
		"Items":         items,
	}
}

// SendInvoiceIssued emails a freshly issued invoice to the client.
func (s *EmailService) SendInvoiceIssued(ctx context.Context, invoice *models.Invoice) error {
	return s.send(ctx, invoice, "invoice_issued.html",
		fmt.Sprintf("Invoice %s from your agency", invoice.InvoiceNumber))
}

// SendInvoiceOverdue emails a payment reminder for a lapsed invoice.
func (s *EmailService) SendInvoiceOverdue(ctx context.Context, invoice *models.Invoice) error {
	return s.send(ctx, invoice, "invoice_overdue.html",
		fmt.Sprintf("Payment reminder: invoice %s is overdue", invoice.InvoiceNumber))
}

func (s *EmailService) send(ctx context.Context, invoice *models.Invoice, templateName, subject string) error {
	if s.config.ResendAPIKey == "" {
		logger.Info("Email delivery skipped, no API key configured",
			"invoice_id", invoice.ID, "to", invoice.ClientEmail)
		return nil
	}
	if invoice.ClientEmail == "" {
		logger.Warn("Email delivery skipped, client has no email address",
			"invoice_id", invoice.ID, "client", invoice.ClientName)
		return nil
	}

	body, err := s.renderTemplate(templateName, s.invoiceData(ctx, invoice))
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      []string{invoice.ClientEmail},
		Subject: subject,
		Html:    body,
	}
	if _, err := s.resendClient.Emails.Send(params); err != nil {
		logger.Error("Failed to send email", "to", invoice.ClientEmail, "invoice_id", invoice.ID, "error", err)
		return err
	}

	logger.Info("Email sent", "to", invoice.ClientEmail, "subject", subject)
	return nil
}

func (s *EmailService) renderTemplate(name string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(emailTemplates, "templates/email/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
