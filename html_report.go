package main

import (
	"html/template"
	"io"
)

// HTMLReport renders a self-contained printable HTML document
type HTMLReport struct {
	// AutoPrint opens the browser print dialog once the page has loaded
	AutoPrint bool
}

func (HTMLReport) ContentType() string { return "text/html; charset=utf-8" }
func (HTMLReport) Extension() string   { return "html" }

// htmlReportView holds the preformatted values used by the template
type htmlReportView struct {
	ID           string
	CreatedDate  string
	Industry     string
	Capital      string
	Employees    string
	SizeLabel    string
	IsSME        bool
	Trainees     int
	Days         int
	HoursPerDay  string
	TotalHours   string
	CostPerHead  string
	TotalCost    string
	Expense      string
	ExpenseRate  string
	ExpenseLimit string
	Wage         string
	WagePerHour  string
	Total        string
	NetA         string
	NetAPerHead  string
	NetB         string
	NetBPerHead  string
	CapReached   bool
	Checks       []reportCheckRow
	Phases       []reportTaskPhase
	Disclaimer   []string
	Issuer       string
	AutoPrint    bool
}

// Render writes the report
func (h HTMLReport) Render(w io.Writer, data ReportData) error {
	e := data.Evaluation
	r := e.Result
	view := htmlReportView{
		ID:           data.ID,
		CreatedDate:  data.CreatedAt.Format("2006/1/2"),
		Industry:     string(e.Company.Industry),
		Capital:      capitalText(e),
		Employees:    employeesText(e),
		SizeLabel:    e.SizeLabel,
		IsSME:        e.SizeClass == SizeSME,
		Trainees:     e.Training.TraineeCount,
		Days:         e.Training.Days,
		HoursPerDay:  FormatNumber(e.Training.HoursPerDay),
		TotalHours:   FormatNumber(r.TotalHours),
		CostPerHead:  FormatYen(r.CostPerTrainee),
		TotalCost:    FormatYen(r.TotalCost),
		Expense:      FormatYen(r.TotalExpenseSubsidy),
		ExpenseRate:  FormatRate(r.ExpenseRate),
		ExpenseLimit: FormatYen(r.ExpenseLimit),
		Wage:         FormatYen(r.TotalWageSubsidy),
		WagePerHour:  FormatYen(r.WagePerHour),
		Total:        FormatYen(r.TotalSubsidy),
		NetA:         FormatYen(r.NetCostA),
		NetAPerHead:  FormatYen(r.NetCostAPerTrainee()),
		NetB:         FormatYen(r.NetCostB),
		NetBPerHead:  FormatYen(r.NetCostBPerTrainee()),
		CapReached:   e.CapReached,
		Checks:       data.checkRows(),
		Phases:       data.taskPhases(),
		Disclaimer:   reportDisclaimer,
		Issuer:       data.Issuer,
		AutoPrint:    h.AutoPrint,
	}
	return htmlReportTemplate.Execute(w, view)
}

var htmlReportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>助成金シミュレーション結果</title>
<style>
  body{font-family:'Hiragino Sans','Yu Gothic',sans-serif;max-width:800px;margin:0 auto;padding:40px 30px;color:#1e293b;font-size:13px;}
  h1{font-size:20px;color:#1a56db;border-bottom:2px solid #1a56db;padding-bottom:8px;}
  h2{font-size:16px;margin-top:28px;color:#334155;border-left:4px solid #1a56db;padding-left:10px;}
  h3{margin:16px 0 8px;color:#1a56db;}
  table{border-collapse:collapse;width:100%;margin:10px 0;}
  th{background:#f1f5f9;padding:8px 10px;border:1px solid #ddd;text-align:left;font-size:12px;}
  td{padding:8px 10px;border:1px solid #ddd;font-size:12px;}
  .amount{text-align:right;font-weight:bold;}
  .highlight{background:#eff6ff;padding:16px;border-radius:8px;margin:12px 0;}
  .warning{color:#b45309;font-size:12px;}
  .critical{color:#dc2626;}
  .advisory{color:#2563eb;}
  .note{font-size:11px;color:#64748b;margin-top:20px;padding-top:10px;border-top:1px solid #e5e7eb;}
  @media print{body{padding:20px;}}
</style>
</head>
<body>
<h1>人材開発支援助成金（事業展開等リスキリング支援コース）<br>シミュレーション結果</h1>
<p style="color:#64748b;font-size:12px;">作成日：{{.CreatedDate}}　No. {{.ID}}</p>

<h2>企業情報・訓練概要</h2>
<table>
<tr><th>業種</th><td>{{.Industry}}</td></tr>
<tr><th>資本金</th><td>{{.Capital}}</td></tr>
<tr><th>従業員数</th><td>{{.Employees}}</td></tr>
<tr><th>企業規模判定</th><td style="font-weight:bold;color:{{if .IsSME}}#059669{{else}}#2563eb{{end}}">{{.SizeLabel}}</td></tr>
<tr><th>受講予定者数</th><td>{{.Trainees}}名</td></tr>
<tr><th>訓練日数</th><td>{{.Days}}日間</td></tr>
<tr><th>1日あたり訓練時間</th><td>{{.HoursPerDay}}時間</td></tr>
<tr><th>総訓練時間</th><td>{{.TotalHours}}時間</td></tr>
<tr><th>1人あたり訓練経費</th><td>{{.CostPerHead}}</td></tr>
</table>

<h2>助成金シミュレーション</h2>
<div class="highlight">
<table>
<tr><th>項目</th><th>金額</th><th>備考</th></tr>
<tr><td>訓練経費合計</td><td class="amount">{{.TotalCost}}</td><td>{{.CostPerHead}} × {{.Trainees}}名</td></tr>
<tr><td>経費助成</td><td class="amount">{{.Expense}}</td><td>助成率{{.ExpenseRate}}%（上限: {{.ExpenseLimit}}/人）</td></tr>
<tr><td>賃金助成</td><td class="amount">{{.Wage}}</td><td>{{.WagePerHour}}/時間 × {{.TotalHours}}h × {{.Trainees}}名</td></tr>
<tr style="background:#dbeafe;"><td style="font-weight:bold;">助成金合計</td><td class="amount" style="color:#1a56db;font-size:15px;">{{.Total}}</td><td></td></tr>
<tr style="background:#f0fdf4;"><td style="font-weight:bold;">実質負担額A（経費助成のみ差引）</td><td class="amount" style="color:#059669;font-size:15px;">{{.NetA}}</td><td>1人あたり：{{.NetAPerHead}}</td></tr>
<tr style="background:#e6fffa;"><td style="font-weight:bold;">実質負担額B（賃金助成も含む）</td><td class="amount" style="color:#0d9488;font-size:15px;">{{.NetB}}</td><td>1人あたり：{{.NetBPerHead}}</td></tr>
</table>
</div>
{{if .CapReached}}<p class="warning">⚠️ 1人あたり経費助成限度額（{{.ExpenseLimit}}）に達しているため、助成率どおりの満額にはなりません。</p>{{end}}
<p style="font-size:11px;color:#94a3b8;">※ 実質負担額A：訓練経費から経費助成を差し引いた額（直接的な研修コスト負担）<br>※ 実質負担額B：さらに賃金助成を差し引いた額（賃金助成は訓練中の人件費補填として別途受給）</p>

<h2>申請要件チェックリスト</h2>
<table>
<tr><th style="width:40px;">✓</th><th>要件</th><th style="width:60px;">区分</th></tr>
{{range .Checks}}<tr><td>{{if .Checked}}✅{{else}}⬜{{end}}</td><td>{{.Text}}</td>{{if .Critical}}<td class="critical">必須</td>{{else}}<td class="advisory">推奨</td>{{end}}</tr>
{{end}}</table>

<h2>準備タスクリスト</h2>
{{range .Phases}}<h3>{{.Title}}</h3>
{{range .Tasks}}<div style="padding:4px 0;"><span>{{if .Checked}}✅{{else}}⬜{{end}}</span> {{.Text}}</div>
{{end}}{{end}}
<div class="note">
{{range .Disclaimer}}<p>⚠️ {{.}}</p>
{{end}}{{if .Issuer}}<p style="margin-top:8px;">作成：{{.Issuer}}</p>{{end}}
</div>
{{if .AutoPrint}}<script>window.addEventListener("load",function(){setTimeout(function(){window.print();},500);});</script>{{end}}
</body>
</html>
`))
