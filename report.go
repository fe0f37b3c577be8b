package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ErrReportNotAvailable is returned when the form does not pass the validity gate
var ErrReportNotAvailable = errors.New("report not available: training hours, trainees and cost are required")

// Disclaimer lines printed at the end of every report
var reportDisclaimer = []string{
	"本シミュレーションは概算です。実際の助成金額は審査により変動する場合があります。",
	"令和7年度（2025年4月〜2026年3月）の要項に基づいています。",
	"詳細は管轄労働局にご確認ください。",
}

// ReportData is everything a printable report shows
type ReportData struct {
	ID         string
	CreatedAt  time.Time
	Form       FormInput
	Evaluation Evaluation
	Checks     map[string]bool
	TaskChecks map[string]bool
	Issuer     string
}

// NewReportData snapshots a session for rendering
func NewReportData(s Session, issuer string) ReportData {
	return ReportData{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now(),
		Form:       s.Form,
		Evaluation: s.Evaluate(),
		Checks:     copyFlags(s.Checks),
		TaskChecks: copyFlags(s.TaskChecks),
		Issuer:     issuer,
	}
}

// ReportRenderer turns report data into a document
type ReportRenderer interface {
	Render(w io.Writer, data ReportData) error
	ContentType() string
	Extension() string
}

// GenerateReport renders a report into memory.
// Reports are only produced for evaluations that pass the validity gate.
func GenerateReport(renderer ReportRenderer, data ReportData) ([]byte, error) {
	if !data.Evaluation.Valid {
		return nil, ErrReportNotAvailable
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s report: %w", renderer.Extension(), err)
	}
	reportsTotal.WithLabelValues(renderer.Extension()).Inc()
	return buf.Bytes(), nil
}

// WriteReportFile renders a report into outputDir and returns the file path
func WriteReportFile(outputDir string, renderer ReportRenderer, data ReportData) (string, error) {
	content, err := GenerateReport(renderer, data)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	filename := fmt.Sprintf("subsidy-report-%s-%s.%s",
		data.CreatedAt.Format("2006-01-02-150405"), data.ID[:8], renderer.Extension())
	path := filepath.Join(outputDir, filename)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// reportCheckRow is one checklist line as printed
type reportCheckRow struct {
	Checked  bool
	Text     string
	Critical bool
}

// reportTaskPhase is one task phase as printed
type reportTaskPhase struct {
	Title string
	Tasks []reportTaskRow
}

type reportTaskRow struct {
	Checked bool
	Text    string
}

func (d ReportData) checkRows() []reportCheckRow {
	rows := make([]reportCheckRow, 0, len(EligibilityCriteria))
	for _, c := range EligibilityCriteria {
		rows = append(rows, reportCheckRow{Checked: d.Checks[c.ID], Text: c.Text, Critical: c.Critical})
	}
	return rows
}

func (d ReportData) taskPhases() []reportTaskPhase {
	phases := make([]reportTaskPhase, 0, len(TaskPhases))
	for _, p := range TaskPhases {
		phase := reportTaskPhase{Title: p.Title}
		for i, t := range p.Tasks {
			phase.Tasks = append(phase.Tasks, reportTaskRow{Checked: d.TaskChecks[TaskKey(p.Title, i)], Text: t})
		}
		phases = append(phases, phase)
	}
	return phases
}
