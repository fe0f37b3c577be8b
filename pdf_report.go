package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
)

// ErrPDFFontRequired is returned when no Japanese TrueType font is configured.
// The PDF core fonts only cover Latin-1.
var ErrPDFFontRequired = errors.New("PDF output requires report.pdf_font (a TrueType font with Japanese glyphs)")

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight

	pdfFontFamily = "jp"
)

// PDFReport renders the report as an A4 PDF
type PDFReport struct {
	FontPath string
}

func (PDFReport) ContentType() string { return "application/pdf" }
func (PDFReport) Extension() string   { return "pdf" }

// pdfReportWriter carries the document being built
type pdfReportWriter struct {
	pdf  *fpdf.Fpdf
	data ReportData
}

// Render writes the PDF
func (p PDFReport) Render(w io.Writer, data ReportData) error {
	if p.FontPath == "" {
		return ErrPDFFontRequired
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddUTF8Font(pdfFontFamily, "", p.FontPath)
	pdf.AddUTF8Font(pdfFontFamily, "B", p.FontPath)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("load font %s: %w", p.FontPath, err)
	}
	pdf.SetTitle("助成金シミュレーション結果", true)

	r := &pdfReportWriter{pdf: pdf, data: data}
	pdf.AddPage()
	r.addTitle()
	r.addProfileSection()
	r.addSubsidySection()
	r.addChecklistSection()
	r.addTaskSection()
	r.addDisclaimer()

	return pdf.Output(w)
}

func (r *pdfReportWriter) addTitle() {
	r.pdf.SetFont(pdfFontFamily, "B", 16)
	r.pdf.SetTextColor(26, 86, 219)
	r.pdf.MultiCell(contentWidth, 8, "人材開発支援助成金（事業展開等リスキリング支援コース）\nシミュレーション結果", "", "L", false)
	r.pdf.SetDrawColor(26, 86, 219)
	r.pdf.Line(marginLeft, r.pdf.GetY()+1, marginLeft+contentWidth, r.pdf.GetY()+1)
	r.pdf.Ln(3)

	r.pdf.SetFont(pdfFontFamily, "", 9)
	r.pdf.SetTextColor(100, 116, 139)
	r.pdf.CellFormat(contentWidth, 5,
		fmt.Sprintf("作成日：%s　No. %s", r.data.CreatedAt.Format("2006/1/2"), r.data.ID), "", 1, "L", false, 0, "")
	r.pdf.Ln(2)
}

func (r *pdfReportWriter) addProfileSection() {
	e := r.data.Evaluation
	r.drawSectionHeader("企業情報・訓練概要")

	rows := [][2]string{
		{"業種", string(e.Company.Industry)},
		{"資本金", capitalText(e)},
		{"従業員数", employeesText(e)},
		{"企業規模判定", e.SizeLabel},
		{"受講予定者数", strconv.Itoa(e.Training.TraineeCount) + "名"},
		{"訓練日数", strconv.Itoa(e.Training.Days) + "日間"},
		{"1日あたり訓練時間", FormatNumber(e.Training.HoursPerDay) + "時間"},
		{"総訓練時間", FormatNumber(e.Result.TotalHours) + "時間"},
		{"1人あたり訓練経費", FormatYen(e.Result.CostPerTrainee)},
	}
	widths := []float64{55, contentWidth - 55}
	for _, row := range rows {
		r.drawTableRow([]string{row[0], row[1]}, widths, []string{"L", "L"}, false)
	}
	r.pdf.Ln(4)
}

func (r *pdfReportWriter) addSubsidySection() {
	res := r.data.Evaluation.Result
	r.drawSectionHeader("助成金シミュレーション")

	widths := []float64{62, 40, contentWidth - 102}
	aligns := []string{"L", "R", "L"}
	r.drawTableHeader([]string{"項目", "金額", "備考"}, widths)
	r.drawTableRow([]string{"訓練経費合計", FormatYen(res.TotalCost),
		fmt.Sprintf("%s × %d名", FormatYen(res.CostPerTrainee), res.TraineeCount)}, widths, aligns, false)
	r.drawTableRow([]string{"経費助成", FormatYen(res.TotalExpenseSubsidy),
		fmt.Sprintf("助成率%s%%（上限: %s/人）", FormatRate(res.ExpenseRate), FormatYen(res.ExpenseLimit))}, widths, aligns, false)
	r.drawTableRow([]string{"賃金助成", FormatYen(res.TotalWageSubsidy),
		fmt.Sprintf("%s/時間 × %sh × %d名", FormatYen(res.WagePerHour), FormatNumber(res.TotalHours), res.TraineeCount)}, widths, aligns, false)
	r.drawTableRow([]string{"助成金合計", FormatYen(res.TotalSubsidy), ""}, widths, aligns, true)
	r.drawTableRow([]string{"実質負担額A（経費助成のみ差引）", FormatYen(res.NetCostA),
		"1人あたり：" + FormatYen(res.NetCostAPerTrainee())}, widths, aligns, true)
	r.drawTableRow([]string{"実質負担額B（賃金助成も含む）", FormatYen(res.NetCostB),
		"1人あたり：" + FormatYen(res.NetCostBPerTrainee())}, widths, aligns, true)
	r.pdf.Ln(2)

	r.pdf.SetFont(pdfFontFamily, "", 8)
	if r.data.Evaluation.CapReached {
		r.pdf.SetTextColor(180, 83, 9)
		r.pdf.MultiCell(contentWidth, 4,
			fmt.Sprintf("※ 1人あたり経費助成限度額（%s）に達しているため、助成率どおりの満額にはなりません。", FormatYen(res.ExpenseLimit)),
			"", "L", false)
	}
	r.pdf.SetTextColor(148, 163, 184)
	r.pdf.MultiCell(contentWidth, 4,
		"※ 実質負担額A：訓練経費から経費助成を差し引いた額（直接的な研修コスト負担）\n"+
			"※ 実質負担額B：さらに賃金助成を差し引いた額（賃金助成は訓練中の人件費補填として別途受給）",
		"", "L", false)
	r.pdf.Ln(4)
}

func (r *pdfReportWriter) addChecklistSection() {
	r.drawSectionHeader("申請要件チェックリスト")

	widths := []float64{12, contentWidth - 32, 20}
	aligns := []string{"C", "L", "C"}
	r.drawTableHeader([]string{"済", "要件", "区分"}, widths)
	for _, row := range r.data.checkRows() {
		kind := "推奨"
		if row.Critical {
			kind = "必須"
		}
		r.drawTableRow([]string{checkMark(row.Checked), row.Text, kind}, widths, aligns, false)
	}
	r.pdf.Ln(4)
}

func (r *pdfReportWriter) addTaskSection() {
	r.drawSectionHeader("準備タスクリスト")

	for _, phase := range r.data.taskPhases() {
		r.pdf.SetFont(pdfFontFamily, "B", 10)
		r.pdf.SetTextColor(26, 86, 219)
		r.pdf.CellFormat(contentWidth, 7, phase.Title, "", 1, "L", false, 0, "")

		r.pdf.SetFont(pdfFontFamily, "", 9)
		r.pdf.SetTextColor(30, 41, 59)
		for _, task := range phase.Tasks {
			r.pdf.CellFormat(10, 5, checkMark(task.Checked), "", 0, "L", false, 0, "")
			r.pdf.MultiCell(contentWidth-10, 5, task.Text, "", "L", false)
		}
	}
	r.pdf.Ln(4)
}

func (r *pdfReportWriter) addDisclaimer() {
	r.pdf.SetDrawColor(229, 231, 235)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(2)

	r.pdf.SetFont(pdfFontFamily, "", 8)
	r.pdf.SetTextColor(100, 116, 139)
	for _, line := range reportDisclaimer {
		r.pdf.MultiCell(contentWidth, 4, "※ "+line, "", "L", false)
	}
	if r.data.Issuer != "" {
		r.pdf.Ln(2)
		r.pdf.CellFormat(contentWidth, 4, "作成："+r.data.Issuer, "", 1, "L", false, 0, "")
	}
}

// Helper functions

func checkMark(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func (r *pdfReportWriter) drawSectionHeader(title string) {
	r.pdf.SetFont(pdfFontFamily, "B", 12)
	r.pdf.SetTextColor(51, 65, 85)
	r.pdf.SetFillColor(26, 86, 219)
	r.pdf.Rect(marginLeft, r.pdf.GetY()+1, 1.2, 6, "F")
	r.pdf.SetX(marginLeft + 3)
	r.pdf.CellFormat(contentWidth-3, 8, title, "", 1, "L", false, 0, "")
	r.pdf.Ln(1)
}

func (r *pdfReportWriter) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(241, 245, 249)
	r.pdf.SetTextColor(30, 41, 59)
	r.pdf.SetDrawColor(221, 221, 221)
	r.pdf.SetFont(pdfFontFamily, "B", 9)

	for i, header := range headers {
		r.pdf.CellFormat(widths[i], 7, header, "1", 0, "L", true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReportWriter) drawTableRow(cells []string, widths []float64, aligns []string, isBold bool) {
	r.pdf.SetTextColor(30, 41, 59)
	r.pdf.SetDrawColor(221, 221, 221)
	if isBold {
		r.pdf.SetFont(pdfFontFamily, "B", 9)
		r.pdf.SetFillColor(239, 246, 255)
	} else {
		r.pdf.SetFont(pdfFontFamily, "", 9)
		r.pdf.SetFillColor(255, 255, 255)
	}

	// Rows grow to fit the tallest wrapped cell
	lineHeight := 6.0
	lines := 1
	for i, cell := range cells {
		if n := len(r.pdf.SplitText(cell, widths[i]-2)); n > lines {
			lines = n
		}
	}
	height := lineHeight * float64(lines)

	_, pageH := r.pdf.GetPageSize()
	if r.pdf.GetY()+height > pageH-marginBottom {
		r.pdf.AddPage()
	}

	x, y := r.pdf.GetXY()
	for i, cell := range cells {
		r.pdf.Rect(x, y, widths[i], height, "FD")
		r.pdf.SetXY(x+1, y)
		r.pdf.MultiCell(widths[i]-2, lineHeight, cell, "", aligns[i], false)
		x += widths[i]
	}
	r.pdf.SetXY(marginLeft, y+height)
}
