package main

import (
	"math"
	"testing"
)

// Subsidy Calculation Tests
//
// These tests validate the calculation rules of 人材開発支援助成金
// （事業展開等リスキリング支援コース）for 令和7年度.
//
// SME thresholds (capital 万円 / regular employees):
// - 製造業・建設業・運輸業, その他: 30,000 / 300
// - 卸売業: 10,000 / 100
// - サービス業: 5,000 / 100
// - 小売業: 5,000 / 50
//
// Rates: SME 75% + 1,000円/h, Large 60% + 500円/h
// Per-trainee expense limits: SME 30/40/50万円, Large 20/25/30万円 (<100h / 100-199h / 200h+)

// tolerance for floating point comparisons (1円)
const yenTolerance = 1.0

func assertYenEquals(t *testing.T, expected, actual float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > yenTolerance {
		t.Errorf("%s: expected %.0f円, got %.0f円 (diff: %.0f円)",
			description, expected, actual, actual-expected)
	}
}

// =============================================================================
// Company Size Classification
// =============================================================================

func TestClassify_Thresholds(t *testing.T) {
	tests := []struct {
		name      string
		industry  Industry
		capital   float64
		employees int
		expected  SizeClass
	}{
		{"manufacturing at both limits", IndustryManufacturing, 30000, 300, SizeSME},
		{"manufacturing above both limits", IndustryManufacturing, 30001, 301, SizeLarge},
		{"wholesale capital under, employees over", IndustryWholesale, 8000, 150, SizeSME},
		{"wholesale capital over, employees under", IndustryWholesale, 20000, 80, SizeSME},
		{"wholesale above both", IndustryWholesale, 10001, 101, SizeLarge},
		{"service at capital limit", IndustryService, 5000, 1000, SizeSME},
		{"service above both", IndustryService, 5001, 101, SizeLarge},
		{"retail employees at limit", IndustryRetail, 100000, 50, SizeSME},
		{"retail above both", IndustryRetail, 5001, 51, SizeLarge},
		{"other industry above both", IndustryOther, 30001, 301, SizeLarge},
		{"nothing entered", IndustryManufacturing, 0, 0, SizeSME},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.industry, tt.capital, tt.employees)
			if got != tt.expected {
				t.Errorf("Classify(%s, %.0f, %d) = %s, expected %s",
					tt.industry, tt.capital, tt.employees, got, tt.expected)
			}
		})
	}
}

func TestClassify_WholesaleInclusiveOr(t *testing.T) {
	// Capital 8000 ≤ 10000 qualifies even though 150 employees > 100
	if got := Classify(IndustryWholesale, 8000, 150); got != SizeSME {
		t.Errorf("expected SME for 卸売業 8000万円/150名, got %s", got)
	}
}

func TestThresholdFor_EveryIndustry(t *testing.T) {
	for _, ind := range Industries {
		th := ThresholdFor(ind)
		if th.CapitalLimit <= 0 || th.EmployeeLimit <= 0 {
			t.Errorf("%s has no SME threshold: %+v", ind, th)
		}
	}
}

// =============================================================================
// Expense Limit Tiers
// =============================================================================

func TestResolveExpenseLimit_Tiers(t *testing.T) {
	tests := []struct {
		size     SizeClass
		hours    float64
		expected float64
	}{
		{SizeSME, 0, 300000},
		{SizeSME, 10, 300000},
		{SizeSME, 99.9, 300000},
		{SizeSME, 100, 400000},
		{SizeSME, 199, 400000},
		{SizeSME, 199.9, 400000},
		{SizeSME, 200, 500000},
		{SizeSME, 1000, 500000},
		{SizeLarge, 99.9, 200000},
		{SizeLarge, 100, 250000},
		{SizeLarge, 199, 250000},
		{SizeLarge, 200, 300000},
	}

	for _, tt := range tests {
		got := ResolveExpenseLimit(tt.size, tt.hours)
		assertYenEquals(t, tt.expected, got, tt.size.String()+" limit at "+FormatNumber(tt.hours)+"h")
	}
}

// =============================================================================
// Subsidy Computation
// =============================================================================

func TestComputeSubsidy_SMEBasic(t *testing.T) {
	// 4 trainees × 4 days × 7h, 40,000円 each
	training := TrainingProfile{TraineeCount: 4, Days: 4, HoursPerDay: 7, CostPerTrainee: 40000}
	r := ComputeSubsidy(SizeSME, training)

	assertYenEquals(t, 28, r.TotalHours, "totalHours")
	assertYenEquals(t, 160000, r.TotalCost, "totalCost")
	assertYenEquals(t, 30000, r.ExpensePerTrainee, "expensePerTrainee")
	assertYenEquals(t, 120000, r.TotalExpenseSubsidy, "totalExpenseSubsidy")
	assertYenEquals(t, 28000, r.WageSubsidyPerTrainee, "wageSubsidyPerTrainee")
	assertYenEquals(t, 112000, r.TotalWageSubsidy, "totalWageSubsidy")
	assertYenEquals(t, 232000, r.TotalSubsidy, "totalSubsidy")
	assertYenEquals(t, 40000, r.NetCostA, "netCostA")
	assertYenEquals(t, 0, r.NetCostB, "netCostB")

	if r.ExpenseCapReached() {
		t.Error("30,000円 per trainee should not reach the 300,000円 limit")
	}
}

func TestComputeSubsidy_LargeCompany(t *testing.T) {
	// 10 trainees × 5 days × 6h, 100,000円 each
	training := TrainingProfile{TraineeCount: 10, Days: 5, HoursPerDay: 6, CostPerTrainee: 100000}
	r := ComputeSubsidy(SizeLarge, training)

	assertYenEquals(t, 0.60, r.ExpenseRate, "expenseRate")
	assertYenEquals(t, 500, r.WagePerHour, "wagePerHour")
	assertYenEquals(t, 200000, r.ExpenseLimit, "expenseLimit")
	assertYenEquals(t, 60000, r.ExpensePerTrainee, "expensePerTrainee")
	assertYenEquals(t, 600000, r.TotalExpenseSubsidy, "totalExpenseSubsidy")
	assertYenEquals(t, 15000, r.WageSubsidyPerTrainee, "wageSubsidyPerTrainee")
	assertYenEquals(t, 150000, r.TotalWageSubsidy, "totalWageSubsidy")
	assertYenEquals(t, 750000, r.TotalSubsidy, "totalSubsidy")
	assertYenEquals(t, 400000, r.NetCostA, "netCostA")
	assertYenEquals(t, 250000, r.NetCostB, "netCostB")
}

func TestComputeSubsidy_PerTraineeLimitAppliedBeforeHeadcount(t *testing.T) {
	// 1,000,000円 × 75% = 750,000円, limited to 300,000円 per trainee (28h)
	training := TrainingProfile{TraineeCount: 3, Days: 4, HoursPerDay: 7, CostPerTrainee: 1000000}
	r := ComputeSubsidy(SizeSME, training)

	assertYenEquals(t, 300000, r.ExpensePerTrainee, "expensePerTrainee")
	assertYenEquals(t, 900000, r.TotalExpenseSubsidy, "totalExpenseSubsidy")
	if !r.ExpenseCapReached() {
		t.Error("expected the per-trainee limit to be reported as reached")
	}
}

func TestComputeSubsidy_LimitFollowsHours(t *testing.T) {
	// Same cost, different hours tier
	cost := 1000000.0
	tests := []struct {
		days     int
		hours    float64
		expected float64
	}{
		{14, 7, 300000},    // 98h
		{20, 5, 400000},    // 100h
		{25, 8, 500000},    // 200h
		{28, 7.5, 500000},  // 210h
		{12, 8.25, 300000}, // 99h
	}

	for _, tt := range tests {
		training := TrainingProfile{TraineeCount: 1, Days: tt.days, HoursPerDay: tt.hours, CostPerTrainee: cost}
		r := ComputeSubsidy(SizeSME, training)
		assertYenEquals(t, tt.expected, r.ExpensePerTrainee,
			"expense at "+FormatNumber(r.TotalHours)+"h")
	}
}

func TestComputeSubsidy_TotalCap(t *testing.T) {
	// 300 trainees × 250h: expense 500,000 + wage 250,000 per trainee = 225,000,000円
	training := TrainingProfile{TraineeCount: 300, Days: 50, HoursPerDay: 5, CostPerTrainee: 1000000}
	r := ComputeSubsidy(SizeSME, training)

	assertYenEquals(t, 150000000, r.TotalExpenseSubsidy, "totalExpenseSubsidy")
	assertYenEquals(t, 75000000, r.TotalWageSubsidy, "totalWageSubsidy")
	assertYenEquals(t, SubsidyCap, r.TotalSubsidy, "totalSubsidy capped")

	// Net costs use the uncapped components
	assertYenEquals(t, 300000000-150000000, r.NetCostA, "netCostA")
	assertYenEquals(t, 300000000-150000000-75000000, r.NetCostB, "netCostB")
}

func TestComputeSubsidy_NetCostAMayBeNegative(t *testing.T) {
	// Negative cost is outside the validity gate but the engine stays total
	training := TrainingProfile{TraineeCount: 2, Days: 2, HoursPerDay: 7, CostPerTrainee: -10000}
	r := ComputeSubsidy(SizeSME, training)

	if r.NetCostA >= 0 {
		t.Errorf("expected negative netCostA, got %.0f", r.NetCostA)
	}
	assertYenEquals(t, 0, r.NetCostB, "netCostB floored at zero")
}

func TestComputeSubsidy_ZeroInputs(t *testing.T) {
	r := ComputeSubsidy(SizeSME, TrainingProfile{})

	assertYenEquals(t, 0, r.TotalCost, "totalCost")
	assertYenEquals(t, 0, r.TotalSubsidy, "totalSubsidy")
	assertYenEquals(t, 0, r.NetCostA, "netCostA")
	assertYenEquals(t, 0, r.NetCostB, "netCostB")
	assertYenEquals(t, 300000, r.ExpenseLimit, "expenseLimit at 0h")
}

func TestNetCostPerTrainee_Floored(t *testing.T) {
	// 3 trainees, 10h, 10,001円: netCostA = 30003 - 22502.25 = 7500.75
	training := TrainingProfile{TraineeCount: 3, Days: 1, HoursPerDay: 10, CostPerTrainee: 10001}
	r := ComputeSubsidy(SizeSME, training)

	if got := r.NetCostAPerTrainee(); got != 2500 {
		t.Errorf("NetCostAPerTrainee = %v, expected 2500", got)
	}
	if got := r.NetCostBPerTrainee(); got != 0 {
		t.Errorf("NetCostBPerTrainee = %v, expected 0", got)
	}
}

// =============================================================================
// Validity Gate
// =============================================================================

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		training TrainingProfile
		expected bool
	}{
		{"typical plan", TrainingProfile{TraineeCount: 4, Days: 4, HoursPerDay: 7, CostPerTrainee: 40000}, true},
		{"exactly 10 hours", TrainingProfile{TraineeCount: 1, Days: 2, HoursPerDay: 5, CostPerTrainee: 1}, true},
		{"9 hours", TrainingProfile{TraineeCount: 1, Days: 1, HoursPerDay: 9, CostPerTrainee: 40000}, false},
		{"9.5 hours", TrainingProfile{TraineeCount: 1, Days: 1, HoursPerDay: 9.5, CostPerTrainee: 40000}, false},
		{"no trainees", TrainingProfile{TraineeCount: 0, Days: 4, HoursPerDay: 7, CostPerTrainee: 40000}, false},
		{"zero cost", TrainingProfile{TraineeCount: 4, Days: 4, HoursPerDay: 7, CostPerTrainee: 0}, false},
		{"negative cost", TrainingProfile{TraineeCount: 4, Days: 4, HoursPerDay: 7, CostPerTrainee: -1}, false},
		{"empty", TrainingProfile{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.training); got != tt.expected {
				t.Errorf("IsValid(%+v) = %v, expected %v", tt.training, got, tt.expected)
			}
		})
	}
}
