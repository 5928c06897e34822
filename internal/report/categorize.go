package report

import (
	"github.com/petebray/monzoreport/pkg/monzo"
)

// descriptionWidth is the fixed display width descriptions are
// truncated to
const descriptionWidth = 18

// Expense is a single categorized expenditure. Amount is in major
// currency units and always positive.
type Expense struct {
	Description string
	Amount      float64
}

// Summary holds expenses bucketed by category display name
type Summary struct {
	set     CategorySet
	buckets map[string][]Expense
}

// Categorize partitions transactions into one bucket per category,
// keeping debits only. Amounts are converted from minor to major
// units and their sign flipped to a positive magnitude. Transactions
// with an unknown category tag land in the fallback bucket. Pure
// function of its input.
func Categorize(txns []*monzo.Transaction, set CategorySet) *Summary {
	s := &Summary{
		set:     set,
		buckets: make(map[string][]Expense, set.Len()),
	}

	for _, key := range s.set.keys {
		s.buckets[DisplayName(key)] = []Expense{}
	}

	fallback := DisplayName(FallbackCategory)

	for _, txn := range txns {
		amount := float64(txn.Amount) / 100.0

		// Only consider expenses
		if amount >= 0 {
			continue
		}

		key := txn.Category
		if key == "" {
			key = FallbackCategory
		}

		name := DisplayName(key)
		if _, ok := s.buckets[name]; !ok {
			name = fallback
		}

		s.buckets[name] = append(s.buckets[name], Expense{
			Description: truncate(txn.Description, descriptionWidth),
			Amount:      -amount,
		})
	}

	return s
}

// Categories returns the category display names in enumeration order
func (s *Summary) Categories() []string {
	return s.set.Names()
}

// Expenses returns the expenses recorded under a category display name
func (s *Summary) Expenses(category string) []Expense {
	return s.buckets[category]
}

// CategoryTotal sums the expense amounts in one category
func (s *Summary) CategoryTotal(category string) float64 {
	var total float64
	for _, e := range s.buckets[category] {
		total += e.Amount
	}
	return total
}

// GrandTotal sums expense amounts across every category
func (s *Summary) GrandTotal() float64 {
	var total float64
	for name := range s.buckets {
		total += s.CategoryTotal(name)
	}
	return total
}

// truncate returns the first n characters of str
func truncate(str string, n int) string {
	runes := []rune(str)
	if len(runes) <= n {
		return str
	}
	return string(runes[:n])
}
