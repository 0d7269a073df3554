package domain

// ExpenseTotals are the per-payment-type sums over a set of expenses.
type ExpenseTotals struct {
	OnCredit Money `json:"onCredit"`
	UpFront  Money `json:"upFront"`
}

// IncomeTotals is the unconditional sum over a set of incomes.
type IncomeTotals struct {
	Income Money `json:"income"`
}

// AggregateExpenses folds expense amounts into per-type totals. Records with
// a type outside {1, 2} are skipped; they still appear in the listing, they
// just count towards neither bucket. An empty input yields zero totals.
func AggregateExpenses(expenses []Expense) ExpenseTotals {
	var totals ExpenseTotals
	for _, expense := range expenses {
		switch expense.Type {
		case ExpenseOnCredit:
			totals.OnCredit = totals.OnCredit.Add(expense.Amount)
		case ExpenseUpFront:
			totals.UpFront = totals.UpFront.Add(expense.Amount)
		}
	}
	return totals
}

// AggregateIncomes sums every income amount. An empty input yields a zero
// total.
func AggregateIncomes(incomes []Income) IncomeTotals {
	var totals IncomeTotals
	for _, income := range incomes {
		totals.Income = totals.Income.Add(income.Amount)
	}
	return totals
}
