package statemachine

import (
	"context"
	"testing"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInvoicePayFromSent(t *testing.T) {
	inv := &models.Invoice{Status: models.InvoiceStatusSent}
	f := NewInvoiceFSM(inv)

	err := f.Pay(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, inv.Status)
}

func TestInvoicePayIsNotRepeatable(t *testing.T) {
	inv := &models.Invoice{Status: models.InvoiceStatusPaid}
	f := NewInvoiceFSM(inv)

	err := f.Pay(context.Background())
	assert.Error(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, inv.Status)
}

func TestInvoiceCancelPaidRejected(t *testing.T) {
	inv := &models.Invoice{Status: models.InvoiceStatusPaid}
	f := NewInvoiceFSM(inv)

	err := f.Cancel(context.Background())
	assert.Error(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, inv.Status)
}

func TestInvoiceLapseOnlyFromSent(t *testing.T) {
	inv := &models.Invoice{Status: models.InvoiceStatusSent}
	f := NewInvoiceFSM(inv)

	assert.NoError(t, f.Lapse(context.Background()))
	assert.Equal(t, models.InvoiceStatusOverdue, inv.Status)

	// Overdue invoices can still be paid.
	f2 := NewInvoiceFSM(inv)
	assert.NoError(t, f2.Pay(context.Background()))
	assert.Equal(t, models.InvoiceStatusPaid, inv.Status)
}

func TestLeadFunnelMoves(t *testing.T) {
	lead := &models.Lead{Status: models.LeadStatusNew}
	f := NewLeadFSM(lead)

	assert.NoError(t, f.MoveTo(context.Background(), models.LeadStatusNegotiation))
	assert.Equal(t, models.LeadStatusNegotiation, lead.Status)

	// Walking a stage backwards is allowed while the lead is open.
	f = NewLeadFSM(lead)
	assert.NoError(t, f.MoveTo(context.Background(), models.LeadStatusContacted))
	assert.Equal(t, models.LeadStatusContacted, lead.Status)
}

func TestLeadTerminalStages(t *testing.T) {
	lead := &models.Lead{Status: models.LeadStatusLost}
	f := NewLeadFSM(lead)

	err := f.MoveTo(context.Background(), models.LeadStatusContacted)
	assert.Error(t, err)
	assert.Equal(t, models.LeadStatusLost, lead.Status)
}
