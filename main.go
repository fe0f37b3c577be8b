package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
)

// formFlags maps value flags onto form fields
var formFlags = map[string]string{
	"industry":  FieldIndustry,
	"capital":   FieldCapital,
	"employees": FieldEmployees,
	"trainees":  FieldTrainees,
	"days":      FieldDays,
	"hours":     FieldHoursPerDay,
	"cost":      FieldCostPerTrainee,
}

// consoleOptions collects the console-mode flags
type consoleOptions struct {
	configFile string
	html       bool
	pdf        bool
	outDir     string
	values     map[string]string // form field -> raw flag value
}

func main() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `人材開発支援助成金（事業展開等リスキリング支援コース）シミュレーター

Estimates the expense subsidy, wage subsidy and net training cost for a
reskilling plan under the 令和7年度 rules, and tracks the application
eligibility checklist and preparation tasks.

MODES:
  GUI (default)   Embedded browser window with three tabs:
                  シミュレーション / 要件チェック / タスクリスト
  -web            Same UI served to the system browser
  -console        Terminal mode. Without value flags the form is prompted
                  interactively; with value flags it runs non-interactively.

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                                   GUI (falls back to console)
  %s -web -addr :8080                  Web server on a fixed port
  %s -console                          Interactive console prompts
  %s -industry 2 -capital 8000 -employees 150 \
      -trainees 4 -days 4 -hours 7 -cost 40000 -html
                                       Non-interactive run with HTML report

Configuration:
  config.yaml holds the server address, logging, report output settings and
  the initial form values. Without a config file the built-in defaults are
  used. PDF output requires report.pdf_font (a TrueType font with Japanese
  glyphs).
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	// Command line flags
	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	consoleMode := flag.Bool("console", false, "Use console interface instead of GUI (default is GUI)")
	webMode := flag.Bool("web", false, "Start web server mode (opens external browser)")
	uiMode := flag.Bool("ui", false, "Start embedded browser mode (webview window)")
	webAddr := flag.String("addr", "", "Web server address (overrides server.addr, use :0 for auto port)")
	generateHTML := flag.Bool("html", false, "Write a printable HTML report and open it")
	generatePDF := flag.Bool("pdf", false, "Write a PDF report (requires report.pdf_font)")
	outDir := flag.String("out", "", "Report output directory (overrides report.output_dir)")
	flag.String("industry", "", "業種: 1-5 or category name")
	flag.String("capital", "", "資本金 (万円)")
	flag.String("employees", "", "常時雇用する労働者数")
	flag.String("trainees", "", "受講予定者数")
	flag.String("days", "", "訓練日数")
	flag.String("hours", "", "1日あたり訓練時間")
	flag.String("cost", "", "1人あたり訓練経費 (円)")
	flag.Parse()

	// Only flags given on the command line override the form
	values := map[string]string{}
	flag.Visit(func(f *flag.Flag) {
		if field, ok := formFlags[f.Name]; ok {
			values[field] = f.Value.String()
		}
	})

	// Embedded browser mode
	if *uiMode {
		if err := runEmbeddedUI(*configFile, *webAddr); err != nil {
			fmt.Fprintf(os.Stderr, "Embedded UI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Web server mode (external browser)
	if *webMode {
		if err := runWebServer(*configFile, *webAddr); err != nil {
			fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := consoleOptions{
		configFile: *configFile,
		html:       *generateHTML,
		pdf:        *generatePDF,
		outDir:     *outDir,
		values:     values,
	}

	// Any output or value flag implies console mode (for automation/scripting)
	useConsole := *consoleMode || *generateHTML || *generatePDF || len(values) > 0
	if useConsole {
		runConsoleMode(opts)
		return
	}

	// Default: GUI mode
	if err := runGUI(*configFile, *webAddr); err != nil {
		fmt.Fprintf(os.Stderr, "GUI error: %v\n", err)
		// Fall back to console mode if GUI fails
		fmt.Println("Falling back to console mode...")
		runConsoleMode(opts)
	}
}

// loadRuntime loads and validates the config and builds the logger
func loadRuntime(configFile string) (*Config, *zap.Logger, error) {
	config, err := LoadConfigOrDefault(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}
	if errs := config.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "config: %v\n", e)
		}
		return nil, nil, fmt.Errorf("%s: %d invalid setting(s)", configFile, len(errs))
	}

	logger, err := NewLogger(config.Logging)
	if err != nil {
		return nil, nil, err
	}
	return config, logger, nil
}

// runWebServer serves the UI and blocks
func runWebServer(configFile, addr string) error {
	config, logger, err := loadRuntime(configFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if addr == "" {
		addr = config.Server.Addr
	}
	return NewWebServer(config, addr, logger).Start()
}

// runConsoleMode runs the application in console/terminal mode
func runConsoleMode(opts consoleOptions) {
	config, logger, err := loadRuntime(opts.configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	_, statErr := os.Stat(opts.configFile)
	configMissing := os.IsNotExist(statErr)

	PrintHeader()

	session := NewSession(config.Defaults)
	if len(opts.values) > 0 {
		for field, value := range opts.values {
			if field == FieldIndustry {
				industry, err := validateIndustryChoice(value)
				if err != nil {
					fmt.Fprintf(os.Stderr, "-industry: %v\n", err)
					os.Exit(1)
				}
				value = string(industry)
			}
			next, err := session.SetField(field, value)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
			session = next
		}
	} else {
		builder := NewInteractiveFormBuilder(os.Stdin, os.Stdout, config.Defaults)
		form := builder.BuildForm()
		session = NewSession(form)
		if builder.PromptYesNo("申請要件チェックリストも確認しますか？") {
			fmt.Println()
			session = builder.PromptChecklist(session)
		}
		if configMissing && builder.PromptYesNo(fmt.Sprintf("設定ファイル %s を作成しますか？", opts.configFile)) {
			if err := SaveConfig(config, opts.configFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			} else {
				fmt.Printf("Configuration saved to %s\n", opts.configFile)
				fmt.Println("You can edit this file to adjust settings for future runs.")
			}
		}
		fmt.Println()
	}

	eval := session.Evaluate()
	calculationsTotal.WithLabelValues(eval.SizeClass.String()).Inc()
	logger.Debug("evaluated form",
		zap.String("industry", string(eval.Company.Industry)),
		zap.Stringer("size_class", eval.SizeClass),
		zap.Bool("valid", eval.Valid),
	)

	PrintEvaluation(eval)
	PrintChecklistSummary(session)

	if !opts.html && !opts.pdf {
		return
	}

	outDir := config.Report.OutputDir
	if opts.outDir != "" {
		outDir = opts.outDir
	}
	data := NewReportData(session, config.Report.Issuer)

	if opts.html {
		path, err := WriteReportFile(outDir, HTMLReport{}, data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating HTML report: %v\n", err)
		} else {
			fmt.Printf("HTML report: %s\n", path)
			logger.Info("report written", zap.String("path", path), zap.String("report_id", data.ID))
			if abs, err := filepath.Abs(path); err == nil {
				openBrowser(abs)
			}
		}
	}
	if opts.pdf {
		path, err := WriteReportFile(outDir, PDFReport{FontPath: config.Report.PDFFont}, data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating PDF report: %v\n", err)
		} else {
			fmt.Printf("PDF report:  %s\n", path)
			logger.Info("report written", zap.String("path", path), zap.String("report_id", data.ID))
		}
	}
}

// openBrowser opens a file or URL in the default browser
func openBrowser(target string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", target)
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", target)
	default:
		fmt.Fprintf(os.Stderr, "Cannot open browser on %s\n", runtime.GOOS)
		return
	}

	err := cmd.Start()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
	}
}
