package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportSession is a presentable session with some checklist progress
func reportSession(t *testing.T) Session {
	t.Helper()
	form := DefaultFormInput()
	form.Capital = "5000"
	form.Employees = "80"
	form.Trainees = "4"
	form.CostPerTrainee = "40000"

	s := NewSession(form)
	var err error
	s, err = s.ToggleCheck("e1")
	require.NoError(t, err)
	s, err = s.ToggleTask(TaskKey(TaskPhases[0].Title, 0))
	require.NoError(t, err)
	return s
}

// japaneseFont returns a TrueType font with Japanese glyphs, if one is installed
func japaneseFont() string {
	candidates := []string{
		os.Getenv("SUBSIDY_TEST_FONT"),
		"/usr/share/fonts/opentype/ipaexfont-gothic/ipaexg.ttf",
		"/usr/share/fonts/truetype/fonts-japanese-gothic.ttf",
		"/usr/share/fonts/truetype/takao-gothic/TakaoPGothic.ttf",
		"/Library/Fonts/Arial Unicode.ttf",
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

type failingRenderer struct{}

func (failingRenderer) Render(io.Writer, ReportData) error { return errors.New("disk on fire") }
func (failingRenderer) ContentType() string               { return "text/plain" }
func (failingRenderer) Extension() string                 { return "txt" }

func TestNewReportData(t *testing.T) {
	s := reportSession(t)
	data := NewReportData(s, "テスト株式会社")

	_, err := uuid.Parse(data.ID)
	assert.NoError(t, err)
	assert.False(t, data.CreatedAt.IsZero())
	assert.True(t, data.Evaluation.Valid)
	assert.Equal(t, "テスト株式会社", data.Issuer)

	// The snapshot must not share maps with the live session
	data.Checks["e2"] = true
	assert.False(t, s.Checks["e2"])
}

func TestGenerateReport_RequiresValidPlan(t *testing.T) {
	data := NewReportData(NewSession(DefaultFormInput()), "")

	_, err := GenerateReport(HTMLReport{}, data)
	assert.ErrorIs(t, err, ErrReportNotAvailable)

	_, err = GenerateReport(PDFReport{FontPath: "/nonexistent.ttf"}, data)
	assert.ErrorIs(t, err, ErrReportNotAvailable)
}

func TestGenerateReport_WrapsRendererError(t *testing.T) {
	_, err := GenerateReport(failingRenderer{}, NewReportData(reportSession(t), ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render txt report")
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestHTMLReport_Content(t *testing.T) {
	data := NewReportData(reportSession(t), "CX Value Lab株式会社")
	content, err := GenerateReport(HTMLReport{}, data)
	require.NoError(t, err)

	html := string(content)
	for _, want := range []string{
		"シミュレーション結果",
		data.ID,
		"製造業・建設業・運輸業",
		"50,000,000円",
		"80名",
		"中小企業",
		"160,000円",
		"120,000円",
		"112,000円",
		"232,000円",
		"40,000円",
		"1人あたり：10,000円",
		"助成率75%",
		"申請要件チェックリスト",
		"準備タスクリスト",
		"管轄労働局",
		"作成：CX Value Lab株式会社",
	} {
		assert.Contains(t, html, want)
	}
	assert.Equal(t, 1+1, strings.Count(html, "✅"), "one criterion and one task are checked")
	assert.NotContains(t, html, "window.print")
	assert.NotContains(t, html, "限度額（", "cap warning only when the limit is reached")
}

func TestHTMLReport_AutoPrintAndCapWarning(t *testing.T) {
	s := reportSession(t)
	s, err := s.SetField(FieldCostPerTrainee, "1000000")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, HTMLReport{AutoPrint: true}.Render(&buf, NewReportData(s, "")))

	assert.Contains(t, buf.String(), "window.print")
	assert.Contains(t, buf.String(), "1人あたり経費助成限度額（300,000円）")
	assert.NotContains(t, buf.String(), "作成：")
}

func TestPDFReport_RequiresFont(t *testing.T) {
	var buf bytes.Buffer
	err := PDFReport{}.Render(&buf, NewReportData(reportSession(t), ""))
	assert.ErrorIs(t, err, ErrPDFFontRequired)
	assert.Zero(t, buf.Len())

	err = PDFReport{FontPath: filepath.Join(t.TempDir(), "missing.ttf")}.Render(&buf, NewReportData(reportSession(t), ""))
	assert.ErrorContains(t, err, "load font")
}

func TestPDFReport_Render(t *testing.T) {
	font := japaneseFont()
	if font == "" {
		t.Skip("no Japanese TrueType font installed; set SUBSIDY_TEST_FONT to run")
	}

	content, err := GenerateReport(PDFReport{FontPath: font}, NewReportData(reportSession(t), "CX Value Lab株式会社"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestWriteReportFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	data := NewReportData(reportSession(t), "")

	path, err := WriteReportFile(dir, HTMLReport{}, data)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "subsidy-report-"))
	assert.True(t, strings.HasSuffix(path, data.ID[:8]+".html"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), data.ID)
}

func TestWriteReportFile_InvalidPlanWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	_, err := WriteReportFile(dir, HTMLReport{}, NewReportData(NewSession(DefaultFormInput()), ""))
	assert.ErrorIs(t, err, ErrReportNotAvailable)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}
