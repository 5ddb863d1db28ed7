package finance

import (
	"testing"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNetProfitEqualsIncomeMinusExpenses(t *testing.T) {
	transactions := []models.Transaction{
		{Amount: 500000, Type: models.TransactionTypeIncome},
		{Amount: 120000, Type: models.TransactionTypeExpense},
		{Amount: 80000, Type: models.TransactionTypeExpense},
		{Amount: 25000, Type: models.TransactionTypeIncome},
	}

	assert.Equal(t, 525000.0, TotalIncome(transactions))
	assert.Equal(t, 200000.0, TotalExpenses(transactions))
	assert.Equal(t, TotalIncome(transactions)-TotalExpenses(transactions), NetProfit(transactions))
}

func TestEmptyCollectionsYieldZero(t *testing.T) {
	assert.Zero(t, TotalIncome(nil))
	assert.Zero(t, TotalExpenses(nil))
	assert.Zero(t, NetProfit(nil))
	assert.Zero(t, TotalInvoiced(nil))
	assert.Zero(t, TotalCollected(nil))
	assert.Zero(t, OutstandingReceivables(nil))
	assert.Zero(t, PayrollLiability(nil))
	assert.Zero(t, PipelineValue(nil))

	snapshot := Summarize(nil, nil, nil, nil)
	assert.Equal(t, Snapshot{}, snapshot)
}

func TestOutstandingReceivables(t *testing.T) {
	invoices := []models.Invoice{
		{Total: 116000, AdvancePayment: 20000, PaidAmount: 0},
		{Total: 58000, AdvancePayment: 0, PaidAmount: 58000},
	}

	assert.Equal(t, 174000.0, TotalInvoiced(invoices))
	assert.Equal(t, 78000.0, TotalCollected(invoices))
	assert.Equal(t, 96000.0, OutstandingReceivables(invoices))
}

func TestOutstandingReceivablesMayBeNegative(t *testing.T) {
	// Overpayment recorded; the figure must not be floored at zero.
	invoices := []models.Invoice{
		{Total: 50000, AdvancePayment: 10000, PaidAmount: 50000},
	}

	assert.Equal(t, -10000.0, OutstandingReceivables(invoices))
}

func TestPayrollLiabilityExcludesNonActiveStaff(t *testing.T) {
	staff := []models.Staff{
		{Salary: 100000, Status: models.StaffStatusActive},
		{Salary: 50000, Status: models.StaffStatusExited},
	}

	assert.Equal(t, 100000.0, PayrollLiability(staff))
}

func TestPayrollLiabilityExcludesOnLeave(t *testing.T) {
	staff := []models.Staff{
		{Salary: 90000, Status: models.StaffStatusActive},
		{Salary: 70000, Status: models.StaffStatusOnLeave},
	}

	assert.Equal(t, 90000.0, PayrollLiability(staff))
}

func TestPipelineValueExcludesClosedLeads(t *testing.T) {
	leads := []models.Lead{
		{Value: 200000, Status: models.LeadStatusNew},
		{Value: 50000, Status: models.LeadStatusWon},
		{Value: 75000, Status: models.LeadStatusLost},
		{Value: 30000, Status: models.LeadStatusNegotiation},
	}

	assert.Equal(t, 230000.0, PipelineValue(leads))
}

func TestPerClientStats(t *testing.T) {
	projects := []models.Project{
		{ClientID: "c1", Status: models.ProjectStatusActive},
		{ClientID: "c1", Status: models.ProjectStatusCompleted},
		{ClientID: "c2", Status: models.ProjectStatusActive},
	}
	invoices := []models.Invoice{
		{ClientID: "c1", Status: models.InvoiceStatusSent},
		{ClientID: "c1", Status: models.InvoiceStatusPaid},
		{ClientID: "c1", Status: models.InvoiceStatusOverdue},
		{ClientID: "c1", Status: models.InvoiceStatusCancelled},
		{ClientID: "c2", Status: models.InvoiceStatusSent},
	}

	stats := PerClientStats("c1", projects, invoices)
	assert.Equal(t, 1, stats.ActiveProjectCount)
	assert.Equal(t, 2, stats.TotalProjectCount)
	// Sent and overdue count as unpaid; paid and cancelled do not.
	assert.Equal(t, 2, stats.UnpaidInvoiceCount)
}

func TestSummarizeDoesNotMutateInputs(t *testing.T) {
	transactions := []models.Transaction{
		{Amount: 1000, Type: models.TransactionTypeIncome},
	}
	invoices := []models.Invoice{
		{Total: 1160, AdvancePayment: 100},
	}

	before := transactions[0]
	beforeInv := invoices[0]

	snapshot := Summarize(transactions, invoices, nil, nil)

	assert.Equal(t, before, transactions[0])
	assert.Equal(t, beforeInv, invoices[0])
	assert.Equal(t, 1000.0, snapshot.TotalIncome)
	assert.Equal(t, 1060.0, snapshot.OutstandingReceivables)
}
