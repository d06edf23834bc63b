// Package zakat holds the eligibility rules for the three calculation modes.
// Every function is pure: the caller supplies the inputs and the composed
// gold price, and gets back the full breakdown of the calculation.
package zakat

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeHarta      Type = "harta"
	TypePerusahaan Type = "perusahaan"
	TypeProfesi    Type = "profesi"
)

const (
	// NisabGoldGrams is the gold-denominated nisab for wealth and company zakat.
	NisabGoldGrams = 85
	// HaulDays approximates one lunar year.
	HaulDays = 354
	// NisabRiceKg and RicePricePerKg define the rice-denominated nisab for
	// professional income zakat.
	NisabRiceKg    = 520
	RicePricePerKg = 13000
)

// Rate is the zakat rate applied to the eligible base.
var Rate = decimal.RequireFromString("0.025")

var riceNisab = decimal.NewFromInt(NisabRiceKg).Mul(decimal.NewFromInt(RicePricePerKg))

type WealthInput struct {
	Cash            decimal.Decimal
	GoldSilver      decimal.Decimal
	Stocks          decimal.Decimal
	RentalProperty  decimal.Decimal
	Debt            decimal.Decimal
	StartDate       time.Time
	CalculationDate time.Time
}

type CompanyInput struct {
	Cash               decimal.Decimal
	Inventory          decimal.Decimal
	Receivables        decimal.Decimal
	CurrentLiabilities decimal.Decimal
	StartDate          time.Time
	CalculationDate    time.Time
}

type IncomeInput struct {
	MonthlyIncome decimal.Decimal
	Payday        time.Time
}

// Result is the full breakdown of a single calculation. ZakatDue is zero
// whenever the eligibility gate fails and is never negative.
type Result struct {
	TotalAssets  decimal.Decimal
	EligibleBase decimal.Decimal
	Nisab        decimal.Decimal
	DaysPassed   int
	HaulReached  bool
	ZakatDue     decimal.Decimal
}

// GoldNisab is the wealth/company threshold for the given composed gold price.
func GoldNisab(goldPriceIDRPerGram decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(NisabGoldGrams).Mul(goldPriceIDRPerGram)
}

// RiceNisab is the income-mode threshold. It is a constant and does not
// depend on the price service.
func RiceNisab() decimal.Decimal {
	return riceNisab
}

// DaysPassed counts whole days between the two dates, rounding partial days
// up. It returns 0 when either date is unset, which also leaves the haul
// unreached.
func DaysPassed(startDate, calculationDate time.Time) int {
	if startDate.IsZero() || calculationDate.IsZero() {
		return 0
	}
	diff := calculationDate.Sub(startDate)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// HaulReached reports whether the holding period spans at least a lunar year.
func HaulReached(startDate, calculationDate time.Time) bool {
	if startDate.IsZero() || calculationDate.IsZero() {
		return false
	}
	return DaysPassed(startDate, calculationDate) >= HaulDays
}

// CalculateWealth applies the harta rules: the eligible base is total assets
// minus debt, and zakat is due only above the gold nisab with haul reached.
func CalculateWealth(in WealthInput, goldPriceIDRPerGram decimal.Decimal) Result {
	total := in.Cash.Add(in.GoldSilver).Add(in.Stocks).Add(in.RentalProperty)
	base := total.Sub(in.Debt)
	return gatedResult(total, base, GoldNisab(goldPriceIDRPerGram), in.StartDate, in.CalculationDate)
}

// CalculateCompany applies the perusahaan rules over current assets and
// current liabilities.
func CalculateCompany(in CompanyInput, goldPriceIDRPerGram decimal.Decimal) Result {
	total := in.Cash.Add(in.Inventory).Add(in.Receivables)
	base := total.Sub(in.CurrentLiabilities)
	return gatedResult(total, base, GoldNisab(goldPriceIDRPerGram), in.StartDate, in.CalculationDate)
}

// CalculateIncome applies the profesi rules. The monthly income is compared
// directly against the rice nisab: the check runs once per pay period, so the
// gate and the 2.5% base stay in the same unit. There is no haul.
func CalculateIncome(in IncomeInput) Result {
	nisab := RiceNisab()
	result := Result{
		TotalAssets:  in.MonthlyIncome,
		EligibleBase: in.MonthlyIncome,
		Nisab:        nisab,
		ZakatDue:     decimal.Zero,
	}
	if in.MonthlyIncome.GreaterThanOrEqual(nisab) {
		result.ZakatDue = in.MonthlyIncome.Mul(Rate)
	}
	return result
}

func gatedResult(total, base, nisab decimal.Decimal, startDate, calculationDate time.Time) Result {
	result := Result{
		TotalAssets:  total,
		EligibleBase: base,
		Nisab:        nisab,
		DaysPassed:   DaysPassed(startDate, calculationDate),
		HaulReached:  HaulReached(startDate, calculationDate),
		ZakatDue:     decimal.Zero,
	}
	if base.GreaterThanOrEqual(nisab) && nisab.IsPositive() && result.HaulReached {
		result.ZakatDue = base.Mul(Rate)
	}
	return result
}
