package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/FilmsDust/agency-os/internal/ai"
	"github.com/FilmsDust/agency-os/internal/repository"
	"github.com/FilmsDust/agency-os/pkg/logger"
)

// Fallback strings returned when the text generator is unavailable. The
// assistant never propagates provider errors to its callers.
const (
	auditFallback      = "System offline."
	auditEmptyFallback = "Unable to generate audit findings."
	chatFallback       = "Error connecting to AI. Please try again later."
	chatEmptyFallback  = "I'm sorry, I couldn't process that. Try asking about your profit or expenses."
)

// AssistantService answers free-form finance questions and writes audit
// narratives over the ledger and invoice book.
type AssistantService struct {
	txnRepo     repository.TransactionRepository
	invoiceRepo repository.InvoiceRepository
	generator   ai.TextGenerator
}

// NewAssistantService creates a new assistant service
func NewAssistantService(
	txnRepo repository.TransactionRepository,
	invoiceRepo repository.InvoiceRepository,
	generator ai.TextGenerator,
) *AssistantService {
	return &AssistantService{
		txnRepo:     txnRepo,
		invoiceRepo: invoiceRepo,
		generator:   generator,
	}
}

// financialContext serializes the full ledger and invoice book for prompting.
// Single-tenant data volumes make whole-dataset prompts workable.
func (s *AssistantService) financialContext(ctx context.Context) (string, string, error) {
	transactions, err := s.txnRepo.FindAll(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to load transactions: %w", err)
	}
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to load invoices: %w", err)
	}

	txnJSON, err := json.Marshal(transactions)
	if err != nil {
		return "", "", fmt.Errorf("failed to serialize transactions: %w", err)
	}
	invJSON, err := json.Marshal(invoices)
	if err != nil {
		return "", "", fmt.Errorf("failed to serialize invoices: %w", err)
	}
	return string(txnJSON), string(invJSON), nil
}

// GenerateAuditReport writes a plain-language audit narrative over the
// current books. Provider failures return a fallback string, never an error.
func (s *AssistantService) GenerateAuditReport(ctx context.Context, agencyName string) string {
	txnJSON, invJSON, err := s.financialContext(ctx)
	if err != nil {
		logger.Error("Failed to build audit context", "error", err)
		return auditFallback
	}

	prompt := fmt.Sprintf(
		"Act as a Senior Financial Auditor for %s.\n"+
			"Analyze this PKR transactional data:\n"+
			"Transactions: %s\n"+
			"Invoices: %s\n\n"+
			"Provide a professional Audit Report in plain language.\n"+
			"Include operating efficiency, cash leaks, and actionable growth tips for Pakistan.",
		agencyName, txnJSON, invJSON,
	)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.Warn("Audit narrative generation failed", "error", err)
		return auditFallback
	}
	if text == "" {
		return auditEmptyFallback
	}
	return text
}

// Chat answers a finance question against the current books. Provider
// failures return a fallback string, never an error.
func (s *AssistantService) Chat(ctx context.Context, agencyName, query string) string {
	txnJSON, invJSON, err := s.financialContext(ctx)
	if err != nil {
		logger.Error("Failed to build chat context", "error", err)
		return chatFallback
	}

	prompt := fmt.Sprintf(
		"You are the %s Finance Assistant.\n"+
			"Current Data:\n"+
			"Transactions: %s\n"+
			"Invoices: %s\n\n"+
			"User Query: %q\n\n"+
			"Rules:\n"+
			"- Answer in plain, helpful language.\n"+
			"- Be concise (max 3-4 sentences).\n"+
			"- If asked about specific numbers, calculate them accurately from the data provided.\n"+
			"- Always use PKR (Rs.) for money.",
		agencyName, txnJSON, invJSON, query,
	)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.Warn("Assistant chat failed", "error", err)
		return chatFallback
	}
	if text == "" {
		return chatEmptyFallback
	}
	return text
}
