package usecases

import (
	"sort"
	"strconv"
	"strings"

	"apexrenting/internal/entities"
)

// Expense aggregation over an already-fetched invoice set. Pure functions,
// no I/O. Amounts come in as string-like decimals and accumulate in
// float64, which is fine for display and not for ledgers.

const uncategorized = "Uncategorized"

type MonthlyTotal struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type ExpenseTotals struct {
	GrandTotal   float64 `json:"grand_total"`
	InvoiceCount int     `json:"invoice_count"`
}

// ComparisonReport holds one row per month with a value for each of the
// top categories; categories outside the top set are excluded entirely.
type ComparisonReport struct {
	Categories []string        `json:"categories"`
	Rows       []ComparisonRow `json:"rows"`
}

type ComparisonRow struct {
	Month  string             `json:"month"`
	Values map[string]float64 `json:"values"`
}

func amountOf(inv entities.Invoice) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(inv.Amount), 64)
	if err != nil {
		return 0
	}
	return value
}

func categoryOf(inv entities.Invoice) string {
	if strings.TrimSpace(inv.Category) == "" {
		return uncategorized
	}
	return inv.Category
}

// monthKey derives "YYYY-MM" from an invoice date. The zero-padded key
// makes lexicographic and chronological order coincide.
func monthKey(invoiceDate string) string {
	if len(invoiceDate) >= 7 {
		return invoiceDate[:7]
	}
	return invoiceDate
}

// MonthlyTotals buckets invoices by month and sums amounts, ascending by
// month key.
func MonthlyTotals(invoices []entities.Invoice) []MonthlyTotal {
	buckets := map[string]float64{}
	for _, inv := range invoices {
		buckets[monthKey(inv.InvoiceDate)] += amountOf(inv)
	}

	totals := make([]MonthlyTotal, 0, len(buckets))
	for month, total := range buckets {
		totals = append(totals, MonthlyTotal{Month: month, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Month < totals[j].Month })
	return totals
}

// CategoryTotals buckets by category, descending by total. Ties break by
// name so the order is deterministic.
func CategoryTotals(invoices []entities.Invoice) []CategoryTotal {
	buckets := map[string]float64{}
	for _, inv := range invoices {
		buckets[categoryOf(inv)] += amountOf(inv)
	}

	totals := make([]CategoryTotal, 0, len(buckets))
	for category, total := range buckets {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// TopCategoryComparison picks the topN categories by overall total and
// emits one row per month present in the data, with a value per top
// category (0 where that category had no invoices that month).
func TopCategoryComparison(invoices []entities.Invoice, topN int) ComparisonReport {
	byTotal := CategoryTotals(invoices)
	if topN > len(byTotal) {
		topN = len(byTotal)
	}

	top := make([]string, 0, topN)
	isTop := map[string]bool{}
	for _, ct := range byTotal[:topN] {
		top = append(top, ct.Category)
		isTop[ct.Category] = true
	}

	months := map[string]map[string]float64{}
	for _, inv := range invoices {
		month := monthKey(inv.InvoiceDate)
		row, ok := months[month]
		if !ok {
			row = make(map[string]float64, topN)
			for _, category := range top {
				row[category] = 0
			}
			months[month] = row
		}
		if category := categoryOf(inv); isTop[category] {
			row[category] += amountOf(inv)
		}
	}

	rows := make([]ComparisonRow, 0, len(months))
	for month, values := range months {
		rows = append(rows, ComparisonRow{Month: month, Values: values})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })

	return ComparisonReport{Categories: top, Rows: rows}
}

// Totals sums the whole set for the summary card.
func Totals(invoices []entities.Invoice) ExpenseTotals {
	var grand float64
	for _, inv := range invoices {
		grand += amountOf(inv)
	}
	return ExpenseTotals{GrandTotal: grand, InvoiceCount: len(invoices)}
}
