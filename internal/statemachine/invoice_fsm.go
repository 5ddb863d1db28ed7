package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/FilmsDust/agency-os/internal/models"
)

// InvoiceFSM wraps an invoice with its state machine
type InvoiceFSM struct {
	invoice *models.Invoice
	fsm     *fsm.FSM
}

// NewInvoiceFSM creates a new invoice state machine
func NewInvoiceFSM(invoice *models.Invoice) *InvoiceFSM {
	iffsm := &InvoiceFSM{
		invoice: invoice,
	}

	iffsm.fsm = fsm.NewFSM(
		invoice.Status,
		fsm.Events{
			// draft → sent
			{Name: "send", Src: []string{models.InvoiceStatusDraft}, Dst: models.InvoiceStatusSent},

			// draft/sent/overdue → paid, exactly once; paid is terminal
			{Name: "pay", Src: []string{models.InvoiceStatusDraft, models.InvoiceStatusSent, models.InvoiceStatusOverdue}, Dst: models.InvoiceStatusPaid},

			// sent → overdue (scheduled sweep past due date)
			{Name: "lapse", Src: []string{models.InvoiceStatusSent}, Dst: models.InvoiceStatusOverdue},

			// draft/sent/overdue → cancelled
			{Name: "cancel", Src: []string{models.InvoiceStatusDraft, models.InvoiceStatusSent, models.InvoiceStatusOverdue}, Dst: models.InvoiceStatusCancelled},
		},
		fsm.Callbacks{},
	)

	return iffsm
}

// Pay transitions the invoice to paid state
func (i *InvoiceFSM) Pay(ctx context.Context) error {
	if !i.invoice.MayMarkPaid() {
		return fmt.Errorf("invoice cannot be paid in current state: %s", i.invoice.Status)
	}

	if err := i.fsm.Event(ctx, "pay"); err != nil {
		return fmt.Errorf("failed to pay invoice: %w", err)
	}

	i.invoice.Status = i.fsm.Current()
	return nil
}

// Lapse transitions the invoice to overdue state
func (i *InvoiceFSM) Lapse(ctx context.Context) error {
	if err := i.fsm.Event(ctx, "lapse"); err != nil {
		return fmt.Errorf("failed to mark invoice overdue: %w", err)
	}

	i.invoice.Status = i.fsm.Current()
	return nil
}

// Cancel transitions the invoice to cancelled state
func (i *InvoiceFSM) Cancel(ctx context.Context) error {
	if !i.invoice.MayCancel() {
		return fmt.Errorf("invoice cannot be cancelled in current state: %s", i.invoice.Status)
	}

	if err := i.fsm.Event(ctx, "cancel"); err != nil {
		return fmt.Errorf("failed to cancel invoice: %w", err)
	}

	i.invoice.Status = i.fsm.Current()
	return nil
}

// Current returns the current state
func (i *InvoiceFSM) Current() string {
	return i.fsm.Current()
}

// Can checks if a transition is possible
func (i *InvoiceFSM) Can(event string) bool {
	return i.fsm.Can(event)
}
