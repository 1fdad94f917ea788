package aggregate

import (
	"cashflow-dashboard-backend/internal/models"
	"cashflow-dashboard-backend/internal/services/normalize"
)

// clientIndex groups income transactions by their raw description. It is an
// insertion-ordered map: iteration order feeds the matcher and therefore
// affects which invoice a payment claims, so the order is an explicit
// contract rather than whatever a plain map yields.
//
// The key stays the raw, non-normalized description on purpose: merging
// near-duplicate descriptions risks folding two real counterparties into
// one, which is worse for tax review than listing one twice.
type clientIndex struct {
	keys  []string
	byKey map[string]*models.PotentialClient
}

func newClientIndex() *clientIndex {
	return &clientIndex{byKey: make(map[string]*models.PotentialClient)}
}

func (ix *clientIndex) add(key string, det models.TransactionDetail) {
	client, ok := ix.byKey[key]
	if !ok {
		client = &models.PotentialClient{
			Name:        key,
			DisplayName: displayName(key),
		}
		ix.byKey[key] = client
		ix.keys = append(ix.keys, key)
	}
	client.Count++
	client.Total = client.Total.Add(det.Amount)
	client.Transactions = append(client.Transactions, models.ClientTransaction{TransactionDetail: det})
}

// ordered returns the groups in insertion order.
func (ix *clientIndex) ordered() []*models.PotentialClient {
	out := make([]*models.PotentialClient, 0, len(ix.keys))
	for _, k := range ix.keys {
		out = append(out, ix.byKey[k])
	}
	return out
}

// displayName derives a human label from the raw key, falling back to the
// key itself when no sender name can be extracted.
func displayName(key string) string {
	if name, ok := normalize.ExtractSenderName(key); ok {
		return name
	}
	return key
}

// conceptIndex is the same insertion-ordered grouping for normalized
// expense concepts.
type conceptIndex struct {
	keys  []string
	byKey map[string]*models.RecurringConcept
}

func newConceptIndex() *conceptIndex {
	return &conceptIndex{byKey: make(map[string]*models.RecurringConcept)}
}

func (ix *conceptIndex) add(name string, det models.TransactionDetail) {
	concept, ok := ix.byKey[name]
	if !ok {
		concept = &models.RecurringConcept{Name: name}
		ix.byKey[name] = concept
		ix.keys = append(ix.keys, name)
	}
	concept.Count++
	concept.Total = concept.Total.Add(det.Amount)
	concept.Details = append(concept.Details, det)
}

func (ix *conceptIndex) ordered() []*models.RecurringConcept {
	out := make([]*models.RecurringConcept, 0, len(ix.keys))
	for _, k := range ix.keys {
		out = append(out, ix.byKey[k])
	}
	return out
}
