package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatYen formats an amount as whole yen with ja-JP digit grouping, e.g. "1,234円".
// Fractions are floored here and nowhere else.
func FormatYen(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "-"
	}
	return groupDigits(decimal.NewFromFloat(amount).Floor().String()) + "円"
}

// FormatNumber formats a count or hours value without trailing zeros
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRate formats a fraction as a percentage number, e.g. 0.75 -> "75"
func FormatRate(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).String()
}

func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// PrintHeader prints the simulator banner
func PrintHeader() {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║        人材開発支援助成金（事業展開等リスキリング支援コース）シミュレーター        ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println("  令和7年度（2025.4〜2026.3）対応")
	fmt.Println()
}

// PrintEvaluation prints inputs, size classification and the subsidy breakdown
func PrintEvaluation(eval Evaluation) {
	r := eval.Result

	fmt.Println("企業情報:")
	fmt.Println("──────────")
	fmt.Printf("  業種:         %s\n", eval.Company.Industry)
	fmt.Printf("  資本金:       %s\n", capitalText(eval))
	fmt.Printf("  従業員数:     %s\n", employeesText(eval))
	fmt.Printf("  判定結果:     %s（経費助成率 %s%% / 賃金助成 %s/h）\n",
		eval.SizeLabel, FormatRate(r.ExpenseRate), FormatYen(r.WagePerHour))
	fmt.Println()

	fmt.Println("訓練情報:")
	fmt.Println("──────────")
	fmt.Printf("  受講者数:     %d名\n", eval.Training.TraineeCount)
	fmt.Printf("  訓練日数:     %d日間 × %s時間\n", eval.Training.Days, FormatNumber(eval.Training.HoursPerDay))
	fmt.Printf("  総訓練時間:   %s時間\n", FormatNumber(r.TotalHours))
	fmt.Printf("  1人あたり経費: %s\n", FormatYen(r.CostPerTrainee))
	fmt.Println()

	if !eval.Valid {
		fmt.Println("⚠️  入力が不足しています（総訓練時間10時間以上・受講者数・研修費用が必要です）")
		if r.TotalHours > 0 && r.TotalHours < MinTrainingHours {
			fmt.Println("⚠️  10時間以上必要")
		}
		return
	}

	fmt.Println("シミュレーション結果:")
	fmt.Println("──────────────────────")
	fmt.Printf("  %-24s %16s   %s × %d名\n", "訓練経費合計", FormatYen(r.TotalCost), FormatYen(r.CostPerTrainee), r.TraineeCount)
	fmt.Printf("  %-24s %16s   助成率%s%%（上限: %s/人）\n", "経費助成", FormatYen(r.TotalExpenseSubsidy), FormatRate(r.ExpenseRate), FormatYen(r.ExpenseLimit))
	fmt.Printf("  %-24s %16s   %s/h × %sh × %d名\n", "賃金助成", FormatYen(r.TotalWageSubsidy), FormatYen(r.WagePerHour), FormatNumber(r.TotalHours), r.TraineeCount)
	fmt.Printf("  %-24s %16s\n", "助成金合計", FormatYen(r.TotalSubsidy))
	fmt.Println()
	fmt.Printf("  実質負担額A（訓練経費 − 経費助成）:   %s（1人あたり：%s）\n", FormatYen(r.NetCostA), FormatYen(r.NetCostAPerTrainee()))
	fmt.Printf("  実質負担額B（賃金助成も含めた場合）: %s（1人あたり：%s）\n", FormatYen(r.NetCostB), FormatYen(r.NetCostBPerTrainee()))
	fmt.Printf("  ※ 賃金助成（%s）は訓練中の人件費補填として別途受給されます\n", FormatYen(r.TotalWageSubsidy))

	if eval.CapReached {
		fmt.Println()
		fmt.Printf("⚠️  1人あたり経費助成限度額（%s）に達しているため、助成率どおりの満額にはなりません。\n", FormatYen(r.ExpenseLimit))
	}
	fmt.Println()
}

// PrintChecklistSummary prints checklist and task progress
func PrintChecklistSummary(s Session) {
	if s.AllCriticalSatisfied() {
		fmt.Println("✅ 必須要件を全てクリアしています")
	} else {
		fmt.Printf("⚠️  未チェックの必須要件が%d件あります\n", s.UncheckedCritical())
	}
	done, total := s.CompletedTasks()
	fmt.Printf("準備タスク: %d / %d 完了\n", done, total)
}

func capitalText(eval Evaluation) string {
	if !eval.CapitalEntered {
		return "未入力"
	}
	return FormatYen(eval.Company.Capital * 10000)
}

func employeesText(eval Evaluation) string {
	if eval.Company.EmployeeCount == 0 {
		return "未入力"
	}
	return strconv.Itoa(eval.Company.EmployeeCount) + "名"
}
