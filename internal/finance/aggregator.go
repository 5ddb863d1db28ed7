// Package finance computes derived financial figures from the raw record
// collections. Every function is pure: no I/O, no stored state, no mutation
// of inputs. Callers recompute on demand; nothing here is cached.
package finance

import (
	"github.com/FilmsDust/agency-os/internal/models"
)

// Snapshot is the full set of derived figures for the dashboard.
type Snapshot struct {
	TotalIncome            float64 `json:"total_income"`
	TotalExpenses          float64 `json:"total_expenses"`
	NetProfit              float64 `json:"net_profit"`
	TotalInvoiced          float64 `json:"total_invoiced"`
	TotalCollected         float64 `json:"total_collected"`
	OutstandingReceivables float64 `json:"outstanding_receivables"`
	PayrollLiability       float64 `json:"payroll_liability"`
	PipelineValue          float64 `json:"pipeline_value"`
}

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(transactions []models.Transaction) float64 {
	var sum float64
	for _, t := range transactions {
		if t.Type == models.TransactionTypeIncome {
			sum += t.Amount
		}
	}
	return sum
}

// TotalExpenses sums the amounts of all expense transactions.
func TotalExpenses(transactions []models.Transaction) float64 {
	var sum float64
	for _, t := range transactions {
		if t.Type == models.TransactionTypeExpense {
			sum += t.Amount
		}
	}
	return sum
}

// NetProfit is income minus expenses.
func NetProfit(transactions []models.Transaction) float64 {
	return TotalIncome(transactions) - TotalExpenses(transactions)
}

// TotalInvoiced sums the fixed totals of all invoices, paid or not.
func TotalInvoiced(invoices []models.Invoice) float64 {
	var sum float64
	for _, inv := range invoices {
		sum += inv.Total
	}
	return sum
}

// TotalCollected sums advance payments plus recorded paid amounts.
func TotalCollected(invoices []models.Invoice) float64 {
	var sum float64
	for _, inv := range invoices {
		sum += inv.AdvancePayment + inv.PaidAmount
	}
	return sum
}

// OutstandingReceivables is invoiced minus collected. Negative when an
// overpayment has been recorded; deliberately not floored at zero.
func OutstandingReceivables(invoices []models.Invoice) float64 {
	return TotalInvoiced(invoices) - TotalCollected(invoices)
}

// PayrollLiability sums the monthly salaries of active staff.
func PayrollLiability(staff []models.Staff) float64 {
	var sum float64
	for _, s := range staff {
		if s.Status == models.StaffStatusActive {
			sum += s.Salary
		}
	}
	return sum
}

// PipelineValue sums the value of leads still in the open funnel,
// excluding won and lost.
func PipelineValue(leads []models.Lead) float64 {
	var sum float64
	for _, l := range leads {
		if l.Status != models.LeadStatusWon && l.Status != models.LeadStatusLost {
			sum += l.Value
		}
	}
	return sum
}

// PerClientStats counts a client's projects and unpaid invoices.
func PerClientStats(clientID string, projects []models.Project, invoices []models.Invoice) models.ClientStats {
	var stats models.ClientStats
	for _, p := range projects {
		if p.ClientID != clientID {
			continue
		}
		stats.TotalProjectCount++
		if p.Status == models.ProjectStatusActive {
			stats.ActiveProjectCount++
		}
	}
	for _, inv := range invoices {
		if inv.ClientID != clientID {
			continue
		}
		// Cancelled bills are void, not outstanding.
		if inv.Status != models.InvoiceStatusPaid && inv.Status != models.InvoiceStatusCancelled {
			stats.UnpaidInvoiceCount++
		}
	}
	return stats
}

// Summarize computes the full dashboard snapshot in one pass over each
// collection.
func Summarize(transactions []models.Transaction, invoices []models.Invoice, staff []models.Staff, leads []models.Lead) Snapshot {
	income := TotalIncome(transactions)
	expenses := TotalExpenses(transactions)
	invoiced := TotalInvoiced(invoices)
	collected := TotalCollected(invoices)

	return Snapshot{
		TotalIncome:            income,
		TotalExpenses:          expenses,
		NetProfit:              income - expenses,
		TotalInvoiced:          invoiced,
		TotalCollected:         collected,
		OutstandingReceivables: invoiced - collected,
		PayrollLiability:       PayrollLiability(staff),
		PipelineValue:          PipelineValue(leads),
	}
}
