package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
)

//go:embed templates/documents/*.html
var documentTemplates embed.FS

// DocumentService renders client-facing documents from HTML templates.
type DocumentService struct {
	proposalRepo repository.ProposalRepository
	settingsRepo repository.SettingsRepository
}

// NewDocumentService creates a new document service
func NewDocumentService(proposalRepo repository.ProposalRepository, settingsRepo repository.SettingsRepository) *DocumentService {
	return &DocumentService{
		proposalRepo: proposalRepo,
		settingsRepo: settingsRepo,
	}
}

// GenerateProposalPDF renders a proposal into a client-ready PDF document.
func (s *DocumentService) GenerateProposalPDF(ctx context.Context, proposalID string) (*bytes.Buffer, string, error) {
	proposal, err := s.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load proposal: %w", err)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		settings = models.DefaultAgencySettings()
	}

	type sectionData struct {
		Title   string
		Content string
	}
	sections := make([]sectionData, 0, len(proposal.Sections))
	for _, sec := range proposal.Sections {
		sections = append(sections, sectionData{Title: sec.Title, Content: sec.Content})
	}

	data := map[string]any{
		"AgencyName":     settings.Name,
		"AgencyTagline":  settings.Tagline,
		"AgencyPhone":    settings.Phone,
		"AgencyEmail":    settings.Email,
		"ClientName":     proposal.ClientName,
		"ClientIndustry": proposal.ClientIndustry,
		"ProjectTitle":   proposal.ProjectTitle,
		"Duration":       proposal.Duration,
		"QuoteNo":        proposal.QuoteNo,
		"Date":           proposal.Date.Format("02/01/2006"),
		"TotalAmount":    fmt.Sprintf("%.2f", proposal.TotalAmount),
		"AdvanceAmount":  "",
		"Sections":       sections,
	}
	if proposal.AdvanceAmount > 0 {
		data["AdvanceAmount"] = fmt.Sprintf("%.2f", proposal.AdvanceAmount)
	}

	pdf, err := s.generatePDF("proposal.html", data)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("proposal_%s.pdf", proposal.QuoteNo)
	return pdf, filename, nil
}

// generatePDF renders an embedded HTML template and converts it with
// wkhtmltopdf. Requires the wkhtmltopdf binary on the host.
func (s *DocumentService) generatePDF(templateName string, data interface{}) (*bytes.Buffer, error) {
	tmpl, err := template.ParseFS(documentTemplates, "templates/documents/"+templateName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(buf.Bytes()))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}

	return pdfg.Buffer(), nil
}
