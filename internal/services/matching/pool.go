// Package matching pairs incoming payments against issued invoices.
//
// The matcher is first-fit by construction: invoices are scanned in pool
// order and the first acceptable one wins, even when a closer candidate
// appears later. Downstream reporting is defined against this exact
// behavior, so it must not be replaced with a best-fit assignment.
package matching

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cashflow-dashboard-backend/internal/models"
)

// Amounts within one peso count as equal; statements and invoices round
// independently.
var amountTolerance = decimal.NewFromInt(1)

// Date window in days, invoice date relative to the payment date. An
// invoice may precede the payment by up to 5 days or follow it by up to 45
// (commercial credit terms). Both ends inclusive.
const (
	minDeltaDays = -5
	maxDeltaDays = 45
)

type entry struct {
	amount        decimal.Decimal
	date          time.Time
	recipientName string
	recipientCUIT string
	matched       bool
}

// Pool is the working set of invoices available to one matcher run. Each
// entry can be claimed at most once; the pool is discarded after the run.
type Pool struct {
	entries []entry
}

// NewPool builds the working set in the order the invoices arrive. That
// order is part of the matching contract.
func NewPool(invoices []models.Invoice) *Pool {
	entries := make([]entry, 0, len(invoices))
	for _, inv := range invoices {
		entries = append(entries, entry{
			amount:        inv.Amount.Abs(),
			date:          inv.Date,
			recipientName: inv.RecipientName,
			recipientCUIT: inv.RecipientCUIT,
		})
	}
	return &Pool{entries: entries}
}

// Size returns the number of invoices in the pool.
func (p *Pool) Size() int {
	return len(p.entries)
}

// MatchedCount returns how many invoices have been claimed so far.
func (p *Pool) MatchedCount() int {
	n := 0
	for i := range p.entries {
		if p.entries[i].matched {
			n++
		}
	}
	return n
}

// Claim scans the pool for the first unclaimed invoice acceptable for the
// given payment and consumes it. counterpartyKey is the raw grouping key of
// the payer; identity checks run against it.
func (p *Pool) Claim(counterpartyKey string, txDate time.Time, txAmount decimal.Decimal) bool {
	keyUpper := strings.ToUpper(strings.TrimSpace(counterpartyKey))
	keyCompact := strings.ReplaceAll(strings.ToUpper(counterpartyKey), " ", "")

	for i := range p.entries {
		e := &p.entries[i]
		if e.matched {
			continue
		}

		matchAmount := e.amount.Sub(txAmount).Abs().LessThan(amountTolerance)
		deltaDays := calendarDaysBetween(txDate, e.date)
		matchDate := deltaDays >= minDeltaDays && deltaDays <= maxDeltaDays
		matchIdentity := identityMatches(e, keyUpper, keyCompact)
		anonymous := e.recipientName == "" && e.recipientCUIT == ""

		if (matchAmount && matchDate && matchIdentity) ||
			(matchAmount && matchIdentity) ||
			(matchAmount && matchDate && anonymous) {
			e.matched = true
			return true
		}
	}
	return false
}

// calendarDaysBetween returns to - from in whole calendar days. Both dates
// are truncated to midnight first so a timestamped payment date cannot
// shift the window boundaries.
func calendarDaysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

// identityMatches checks the invoice recipient against the counterparty
// key: the CUIT (with or without hyphens) as a substring of the compacted
// key, or at least 60% of the recipient-name tokens appearing in it.
func identityMatches(e *entry, keyUpper, keyCompact string) bool {
	if e.recipientCUIT != "" {
		compactCUIT := strings.ReplaceAll(e.recipientCUIT, "-", "")
		if strings.Contains(keyCompact, e.recipientCUIT) || strings.Contains(keyCompact, compactCUIT) {
			return true
		}
	}

	if e.recipientName != "" {
		var tokens []string
		for _, t := range strings.Fields(strings.ToUpper(e.recipientName)) {
			if len(t) > 2 {
				tokens = append(tokens, t)
			}
		}
		if len(tokens) == 0 {
			return false
		}
		hits := 0
		for _, t := range tokens {
			if strings.Contains(keyUpper, t) {
				hits++
			}
		}
		return float64(hits) >= float64(len(tokens))*0.6
	}

	return false
}

// Annotate resolves is_invoiced for every transaction of every client,
// walking clients in the order given and each client's transactions in
// their stored (date-descending) order.
func Annotate(clients []*models.PotentialClient, pool *Pool) {
	for _, client := range clients {
		for i := range client.Transactions {
			tx := &client.Transactions[i]
			tx.IsInvoiced = pool.Claim(client.Name, tx.Date, tx.Amount)
		}
	}
}
