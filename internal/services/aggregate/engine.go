// Package aggregate folds invoices, bank movements and wire receipts into
// the monthly cash-flow report and the per-counterparty ledger. One batch
// pass, pure in-memory; nothing is persisted between runs.
package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"cashflow-dashboard-backend/internal/models"
	"cashflow-dashboard-backend/internal/services/classify"
	"cashflow-dashboard-backend/internal/services/matching"
	"cashflow-dashboard-backend/internal/services/normalize"
)

// conceptBlocklist filters banking noise out of the recurring-expenses
// view: tax lines, fees, interest and the bank's own wording. Matched
// against the normalized label, exact or prefix.
var conceptBlocklist = []string{
	"NO GRAVADA", "INMEDIATA", "ENVIADA", "DEBIN", "CREDIN",
	"IMPUESTO PAIS", "RG ", "LEY ", "INTERESES", "MANTENIMIENTO", "DB ", "IVA ", "IIBB",
	"COMISION", "SANTANDER", "CREDITO", "VARIOS", "A ", "DE ",
}

func blockedConcept(name string) bool {
	for _, b := range conceptBlocklist {
		if name == b || strings.HasPrefix(name, b) {
			return true
		}
	}
	return false
}

// Engine runs the aggregation. It holds no state across runs; every Run
// starts from empty totals and a fresh invoice pool.
type Engine struct {
	classifier *classify.Classifier
}

func New(classifier *classify.Classifier) *Engine {
	return &Engine{classifier: classifier}
}

// Run folds the three record streams into one report. The core never
// errors: records are assumed fully typed and valid, which is the upstream
// extraction adapters' contract to enforce.
func (e *Engine) Run(invoices []models.Invoice, movements []models.BankMovement, receipts []models.WireReceipt) *models.Report {
	months := make(map[string]*models.MonthlySummary)
	monthFor := func(key string, date time.Time) *models.MonthlySummary {
		if key == "" {
			key = models.MonthKey(date)
		}
		m, ok := months[key]
		if !ok {
			m = &models.MonthlySummary{Month: key}
			months[key] = m
		}
		return m
	}

	clients := newClientIndex()
	concepts := newConceptIndex()

	// Issued invoices feed the ARCA figure only. They are a tax-compliance
	// reference, not cash that moved.
	for _, inv := range invoices {
		m := monthFor(inv.MonthKey, inv.Date)
		m.ARCA = m.ARCA.Add(inv.Amount)
	}

	// Wire receipts are always income, and every sender is provisionally a
	// client until the matcher says otherwise.
	for _, r := range receipts {
		m := monthFor(r.MonthKey, r.Date)
		m.Income = m.Income.Add(r.Amount)
		m.Result = m.Result.Add(r.Amount)
		clients.add(r.Description, models.TransactionDetail{
			Date:         r.Date,
			OriginalDesc: r.Description,
			Amount:       r.Amount,
			Source:       r.Source,
		})
	}

	for _, mv := range movements {
		m := monthFor(mv.MonthKey, mv.Date)
		category, isOwn := e.classifier.Classify(mv.Description, mv.Amount, mv.Source)

		if mv.Amount.IsPositive() {
			if isOwn {
				// Money shuffled between the operator's own accounts is not
				// new income.
				m.OwnTransfers = m.OwnTransfers.Add(mv.Amount)
				continue
			}
			m.Income = m.Income.Add(mv.Amount)
			m.Result = m.Result.Add(mv.Amount)
			clients.add(mv.Description, models.TransactionDetail{
				Date:         mv.Date,
				OriginalDesc: mv.Description,
				Amount:       mv.Amount,
				Source:       mv.Source,
			})
			continue
		}

		// Negative and zero amounts both land here.
		absAmount := mv.Amount.Abs()
		m.Result = m.Result.Add(mv.Amount)
		if category == models.CategoryCardPayment {
			m.CreditCardPayments = m.CreditCardPayments.Add(absAmount)
		} else {
			m.Expenses = m.Expenses.Add(absAmount)
		}

		// Recurring-merchant view: only real operating expenses qualify.
		if !isOwn && category != models.CategoryCardPayment {
			label := normalize.Normalize(mv.Description)
			if !blockedConcept(label) && len(label) > 2 {
				concepts.add(label, models.TransactionDetail{
					Date:         mv.Date,
					OriginalDesc: mv.Description,
					Amount:       absAmount,
					Source:       mv.Source,
				})
			}
		}
	}

	return &models.Report{
		ReportID:          uuid.New(),
		GeneratedAt:       time.Now(),
		MonthlyHistory:    e.buildHistory(months),
		PotentialClients:  e.buildClients(clients, invoices),
		RecurringExpenses: e.buildRecurring(concepts),
		Totals:            e.buildTotals(months),
	}
}

func (e *Engine) buildHistory(months map[string]*models.MonthlySummary) []*models.MonthlySummary {
	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	history := make([]*models.MonthlySummary, 0, len(keys))
	for _, k := range keys {
		history = append(history, months[k])
	}
	return history
}

func (e *Engine) buildTotals(months map[string]*models.MonthlySummary) models.Totals {
	var t models.Totals
	for _, m := range months {
		t.ARCA = t.ARCA.Add(m.ARCA)
		t.Income = t.Income.Add(m.Income)
		t.Expenses = t.Expenses.Add(m.Expenses)
		t.Result = t.Result.Add(m.Result)
	}
	return t
}

// buildClients sorts each counterparty's transactions date-descending, runs
// the matcher over the groups in insertion order, and only then sorts the
// groups alphabetically for presentation.
func (e *Engine) buildClients(clients *clientIndex, invoices []models.Invoice) []*models.PotentialClient {
	list := clients.ordered()
	for _, c := range list {
		txs := c.Transactions
		sort.SliceStable(txs, func(i, j int) bool {
			return txs[i].Date.After(txs[j].Date)
		})
	}

	matching.Annotate(list, matching.NewPool(invoices))

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

func (e *Engine) buildRecurring(concepts *conceptIndex) []*models.RecurringConcept {
	var list []*models.RecurringConcept
	for _, c := range concepts.ordered() {
		if !c.Total.IsPositive() {
			continue
		}
		details := c.Details
		sort.SliceStable(details, func(i, j int) bool {
			return details[i].Date.After(details[j].Date)
		})
		list = append(list, c)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Total.GreaterThan(list[j].Total)
	})
	return list
}
