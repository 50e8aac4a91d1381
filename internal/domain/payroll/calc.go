package payroll

import "github.com/shopspring/decimal"

// ComputeNetPay returns basic + bonuses - deductions rounded to cents.
func ComputeNetPay(basic, bonuses, deductions decimal.Decimal) decimal.Decimal {
	return basic.Add(bonuses).Sub(deductions).Round(2)
}
