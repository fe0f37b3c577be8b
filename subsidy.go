package main

import (
	"math"
)

// Rule tables for 人材開発支援助成金（事業展開等リスキリング支援コース）, 令和7年度.
// Fixed by the guidelines; not part of the config file.

// SubsidyCap is the maximum total subsidy per application (円)
const SubsidyCap = 100_000_000

// MinTrainingHours is the minimum total OFF-JT hours for a plan to qualify
const MinTrainingHours = 10

// SizeThreshold holds the SME upper limits for an industry.
// CapitalLimit is in 万円 (10,000 yen units).
type SizeThreshold struct {
	CapitalLimit  float64 `json:"capital_limit"`
	EmployeeLimit int     `json:"employee_limit"`
}

var sizeThresholds = map[Industry]SizeThreshold{
	IndustryManufacturing: {CapitalLimit: 30000, EmployeeLimit: 300},
	IndustryWholesale:     {CapitalLimit: 10000, EmployeeLimit: 100},
	IndustryService:       {CapitalLimit: 5000, EmployeeLimit: 100},
	IndustryRetail:        {CapitalLimit: 5000, EmployeeLimit: 50},
	IndustryOther:         {CapitalLimit: 30000, EmployeeLimit: 300},
}

// Rates holds the subsidy rates for a company size
type Rates struct {
	ExpenseRate float64 `json:"expense_rate"`  // Fraction of training cost reimbursed
	WagePerHour float64 `json:"wage_per_hour"` // 円 per trainee per training hour
}

var subsidyRates = map[SizeClass]Rates{
	SizeSME:   {ExpenseRate: 0.75, WagePerHour: 1000},
	SizeLarge: {ExpenseRate: 0.60, WagePerHour: 500},
}

// ExpenseLimits holds the per-trainee expense subsidy caps by total-hours tier
type ExpenseLimits struct {
	Tier1 float64 `json:"tier1"` // under 100 hours
	Tier2 float64 `json:"tier2"` // 100 to 199 hours
	Tier3 float64 `json:"tier3"` // 200 hours or more
}

var expenseLimits = map[SizeClass]ExpenseLimits{
	SizeSME:   {Tier1: 300000, Tier2: 400000, Tier3: 500000},
	SizeLarge: {Tier1: 200000, Tier2: 250000, Tier3: 300000},
}

// ThresholdFor returns the SME thresholds for an industry.
// Unknown industries get a zero threshold; callers validate with ParseIndustry first.
func ThresholdFor(industry Industry) SizeThreshold {
	return sizeThresholds[industry]
}

// RatesFor returns the subsidy rates for a company size
func RatesFor(size SizeClass) Rates {
	return subsidyRates[size]
}

// Classify determines the company size.
// A company is an SME if it meets EITHER the capital OR the headcount limit.
func Classify(industry Industry, capital float64, employees int) SizeClass {
	threshold := ThresholdFor(industry)
	if capital <= threshold.CapitalLimit || employees <= threshold.EmployeeLimit {
		return SizeSME
	}
	return SizeLarge
}

// ResolveExpenseLimit returns the per-trainee expense cap for the total training hours.
// Tier boundaries at 100 and 200 hours belong to the higher tier.
func ResolveExpenseLimit(size SizeClass, totalHours float64) float64 {
	limits := expenseLimits[size]
	switch {
	case totalHours >= 200:
		return limits.Tier3
	case totalHours >= 100:
		return limits.Tier2
	default:
		return limits.Tier1
	}
}

// SubsidyResult is the full breakdown of one calculation.
// Amounts are kept at float precision; flooring to whole yen happens in FormatYen.
type SubsidyResult struct {
	SizeClass      SizeClass `json:"size_class"`
	ExpenseRate    float64   `json:"expense_rate"`
	WagePerHour    float64   `json:"wage_per_hour"`
	ExpenseLimit   float64   `json:"expense_limit"`
	TraineeCount   int       `json:"trainee_count"`
	TotalHours     float64   `json:"total_hours"`
	CostPerTrainee float64   `json:"cost_per_trainee"`
	TotalCost      float64   `json:"total_cost"`

	ExpensePerTrainee     float64 `json:"expense_per_trainee"`
	TotalExpenseSubsidy   float64 `json:"total_expense_subsidy"`
	WageSubsidyPerTrainee float64 `json:"wage_subsidy_per_trainee"`
	TotalWageSubsidy      float64 `json:"total_wage_subsidy"`
	TotalSubsidy          float64 `json:"total_subsidy"`
	NetCostA              float64 `json:"net_cost_a"` // cost minus expense subsidy, may be negative
	NetCostB              float64 `json:"net_cost_b"` // NetCostA minus wage subsidy, floored at 0
}

// ComputeSubsidy calculates the expense and wage subsidy for a training plan.
// The order of operations is significant:
//  1. the expense cap is applied per trainee, before multiplying by headcount
//  2. the overall cap is applied to the combined expense + wage total
//  3. NetCostA is left unclamped, NetCostB is floored at zero
func ComputeSubsidy(size SizeClass, training TrainingProfile) SubsidyResult {
	rates := RatesFor(size)
	totalHours := training.TotalHours()
	limit := ResolveExpenseLimit(size, totalHours)
	trainees := float64(training.TraineeCount)

	r := SubsidyResult{
		SizeClass:      size,
		ExpenseRate:    rates.ExpenseRate,
		WagePerHour:    rates.WagePerHour,
		ExpenseLimit:   limit,
		TraineeCount:   training.TraineeCount,
		TotalHours:     totalHours,
		CostPerTrainee: training.CostPerTrainee,
		TotalCost:      training.TotalCost(),
	}

	r.ExpensePerTrainee = math.Min(training.CostPerTrainee*rates.ExpenseRate, limit)
	r.TotalExpenseSubsidy = r.ExpensePerTrainee * trainees

	r.WageSubsidyPerTrainee = totalHours * rates.WagePerHour
	r.TotalWageSubsidy = r.WageSubsidyPerTrainee * trainees

	r.TotalSubsidy = math.Min(r.TotalExpenseSubsidy+r.TotalWageSubsidy, SubsidyCap)

	r.NetCostA = r.TotalCost - r.TotalExpenseSubsidy
	r.NetCostB = math.Max(r.NetCostA-r.TotalWageSubsidy, 0)

	return r
}

// ExpenseCapReached reports whether the per-trainee limit cut the expense subsidy
// below the nominal rate.
func (r SubsidyResult) ExpenseCapReached() bool {
	return r.ExpensePerTrainee < r.CostPerTrainee*r.ExpenseRate
}

// NetCostAPerTrainee returns NetCostA per trainee, floored to whole yen.
// Only meaningful when TraineeCount > 0 (see IsValid).
func (r SubsidyResult) NetCostAPerTrainee() float64 {
	return math.Floor(r.NetCostA / float64(r.TraineeCount))
}

// NetCostBPerTrainee returns NetCostB per trainee, floored to whole yen.
// Only meaningful when TraineeCount > 0 (see IsValid).
func (r SubsidyResult) NetCostBPerTrainee() float64 {
	return math.Floor(r.NetCostB / float64(r.TraineeCount))
}

// IsValid is the presentation gate: results and reports are shown only for plans
// with at least MinTrainingHours hours, one trainee and a positive cost.
func IsValid(training TrainingProfile) bool {
	return training.TotalHours() >= MinTrainingHours &&
		training.TraineeCount > 0 &&
		training.CostPerTrainee > 0
}
