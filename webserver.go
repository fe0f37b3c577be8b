package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// WebServer hosts the UI for the one interactive session of this process
type WebServer struct {
	config *Config
	addr   string
	logger *zap.Logger

	mu      sync.Mutex
	session Session
}

// NewWebServer creates a new web server instance
func NewWebServer(config *Config, addr string, logger *zap.Logger) *WebServer {
	return &WebServer{
		config:  config,
		addr:    addr,
		logger:  logger,
		session: NewSession(config.Defaults),
	}
}

// APIIndustry describes one industry category and its SME limits
type APIIndustry struct {
	Name          string  `json:"name"`
	CapitalLimit  float64 `json:"capital_limit"`
	EmployeeLimit int     `json:"employee_limit"`
}

// APITask is a task with its toggle key
type APITask struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// APITaskPhase is a task phase as sent to the UI
type APITaskPhase struct {
	Title string    `json:"title"`
	Tasks []APITask `json:"tasks"`
}

// APIConfigResponse carries the fixed tables and form defaults
type APIConfigResponse struct {
	Industries       []APIIndustry            `json:"industries"`
	Rates            map[string]Rates         `json:"rates"`
	ExpenseLimits    map[string]ExpenseLimits `json:"expense_limits"`
	Criteria         []Criterion              `json:"criteria"`
	Phases           []APITaskPhase           `json:"phases"`
	Defaults         FormInput                `json:"defaults"`
	MinTrainingHours float64                  `json:"min_training_hours"`
	SubsidyCap       float64                  `json:"subsidy_cap"`
	PDFAvailable     bool                     `json:"pdf_available"`
}

// APIEvaluation adds display strings to an evaluation
type APIEvaluation struct {
	Evaluation
	Display map[string]string `json:"display"`
}

// APISessionResponse is returned by every session endpoint
type APISessionResponse struct {
	Success              bool           `json:"success"`
	Error                string         `json:"error,omitempty"`
	Session              *Session       `json:"session,omitempty"`
	Evaluation           *APIEvaluation `json:"evaluation,omitempty"`
	AllCriticalSatisfied bool           `json:"all_critical_satisfied"`
	UncheckedCritical    int            `json:"unchecked_critical"`
	TasksDone            int            `json:"tasks_done"`
	TasksTotal           int            `json:"tasks_total"`
}

// ExportRequest asks for a report file to be written to the output directory
type ExportRequest struct {
	Format string `json:"format"` // "html" or "pdf"
}

// ExportResponse reports where the file was written
type ExportResponse struct {
	Success  bool   `json:"success"`
	FilePath string `json:"file_path,omitempty"`
	Message  string `json:"message"`
}

// Handler builds the HTTP routes
func (ws *WebServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", ws.handleIndex)
	mux.HandleFunc("/api/config", ws.handleGetConfig)
	mux.HandleFunc("/api/session", ws.handleGetSession)
	mux.HandleFunc("/api/session/action", ws.handleSessionAction)
	mux.HandleFunc("/api/session/reset", ws.handleSessionReset)
	mux.HandleFunc("/api/calculate", ws.handleCalculate)
	mux.HandleFunc("/api/report.html", ws.handleReportHTML)
	mux.HandleFunc("/api/report.pdf", ws.handleReportPDF)
	mux.HandleFunc("/api/export", ws.handleExport)
	mux.Handle("/metrics", promhttp.Handler())

	return ws.requestLogger(mux)
}

// listen opens the listener and returns the browser URL for it
func (ws *WebServer) listen() (net.Listener, string, error) {
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return nil, "", err
	}

	actualAddr := listener.Addr().String()
	url := fmt.Sprintf("http://%s", actualAddr)

	// If listening on all interfaces, use localhost for the URL
	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") || strings.HasPrefix(actualAddr, "[::]:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		url = fmt.Sprintf("http://localhost:%s", port)
	}
	return listener, url, nil
}

// Start starts the web server and blocks
func (ws *WebServer) Start() error {
	listener, url, err := ws.listen()
	if err != nil {
		return err
	}

	ws.logger.Info("starting web server", zap.String("addr", listener.Addr().String()), zap.String("url", url))

	if ws.config.Server.OpenBrowser {
		go openBrowser(url)
	}

	server := &http.Server{Handler: ws.Handler(), ReadHeaderTimeout: 10 * time.Second}
	return server.Serve(listener)
}

// StartForEmbedded starts the server and returns the URL and a cleanup function.
// Unlike Start(), this does NOT open the browser and does NOT block.
func (ws *WebServer) StartForEmbedded() (url string, cleanup func(), err error) {
	listener, url, err := ws.listen()
	if err != nil {
		return "", nil, err
	}

	ws.logger.Info("starting embedded web server", zap.String("addr", listener.Addr().String()))

	server := &http.Server{Handler: ws.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ws.logger.Error("server error", zap.Error(err))
		}
	}()

	cleanup = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			ws.logger.Warn("server shutdown", zap.Error(err))
		}
	}

	return url, cleanup, nil
}

// statusRecorder captures the response status for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (ws *WebServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		latency := time.Since(start)
		httpRequestDuration.WithLabelValues(r.URL.Path).Observe(latency.Seconds())
		ws.logger.Debug("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("latency", latency),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func sendJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APISessionResponse{Success: false, Error: message})
}

// handleIndex serves the main web UI
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, webUIHTML)
}

// handleGetConfig returns the fixed tables and the form defaults
func (ws *WebServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	resp := APIConfigResponse{
		Rates:            map[string]Rates{},
		ExpenseLimits:    map[string]ExpenseLimits{},
		Criteria:         EligibilityCriteria,
		Defaults:         ws.config.Defaults,
		MinTrainingHours: MinTrainingHours,
		SubsidyCap:       SubsidyCap,
		PDFAvailable:     ws.config.Report.PDFFont != "",
	}
	for _, ind := range Industries {
		t := ThresholdFor(ind)
		resp.Industries = append(resp.Industries, APIIndustry{Name: string(ind), CapitalLimit: t.CapitalLimit, EmployeeLimit: t.EmployeeLimit})
	}
	for _, size := range []SizeClass{SizeSME, SizeLarge} {
		resp.Rates[size.String()] = RatesFor(size)
		resp.ExpenseLimits[size.String()] = expenseLimits[size]
	}
	for _, p := range TaskPhases {
		phase := APITaskPhase{Title: p.Title}
		for i, t := range p.Tasks {
			phase.Tasks = append(phase.Tasks, APITask{Key: TaskKey(p.Title, i), Text: t})
		}
		resp.Phases = append(resp.Phases, phase)
	}

	writeJSON(w, http.StatusOK, resp)
}

// evaluate computes the evaluation with display strings
func (ws *WebServer) evaluate(form FormInput) *APIEvaluation {
	eval := EvaluateForm(form)
	calculationsTotal.WithLabelValues(eval.SizeClass.String()).Inc()

	r := eval.Result
	display := map[string]string{
		"capital":                  capitalText(eval),
		"employees":                employeesText(eval),
		"expense_rate":             FormatRate(r.ExpenseRate),
		"wage_per_hour":            FormatYen(r.WagePerHour),
		"expense_limit":            FormatYen(r.ExpenseLimit),
		"total_hours":              FormatNumber(r.TotalHours),
		"cost_per_trainee":         FormatYen(r.CostPerTrainee),
		"total_cost":               FormatYen(r.TotalCost),
		"total_expense_subsidy":    FormatYen(r.TotalExpenseSubsidy),
		"total_wage_subsidy":       FormatYen(r.TotalWageSubsidy),
		"total_subsidy":            FormatYen(r.TotalSubsidy),
		"net_cost_a":               FormatYen(r.NetCostA),
		"net_cost_b":               FormatYen(r.NetCostB),
		"expense_per_trainee":      FormatYen(r.ExpensePerTrainee),
		"wage_subsidy_per_trainee": FormatYen(r.WageSubsidyPerTrainee),
	}
	if eval.Valid {
		display["net_cost_a_per_trainee"] = FormatYen(r.NetCostAPerTrainee())
		display["net_cost_b_per_trainee"] = FormatYen(r.NetCostBPerTrainee())
	}
	return &APIEvaluation{Evaluation: eval, Display: display}
}

func (ws *WebServer) sessionResponse(s Session) APISessionResponse {
	done, total := s.CompletedTasks()
	return APISessionResponse{
		Success:              true,
		Session:              &s,
		Evaluation:           ws.evaluate(s.Form),
		AllCriticalSatisfied: s.AllCriticalSatisfied(),
		UncheckedCritical:    s.UncheckedCritical(),
		TasksDone:            done,
		TasksTotal:           total,
	}
}

func (ws *WebServer) currentSession() Session {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.session
}

// handleGetSession returns the session and its evaluation
func (ws *WebServer) handleGetSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, ws.sessionResponse(ws.currentSession()))
}

// handleSessionAction applies one transition to the session
func (ws *WebServer) handleSessionAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var action Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		sendJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if action.Type == ActionSetField && action.Field == FieldIndustry {
		industry, err := ParseIndustry(action.Value)
		if err != nil {
			sendJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		action.Value = string(industry)
	}

	ws.mu.Lock()
	next, err := ws.session.Apply(action)
	if err == nil {
		ws.session = next
	}
	ws.mu.Unlock()

	if err != nil {
		sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	sessionActionsTotal.WithLabelValues(action.Type).Inc()
	writeJSON(w, http.StatusOK, ws.sessionResponse(next))
}

// handleSessionReset restores the configured defaults
func (ws *WebServer) handleSessionReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	ws.mu.Lock()
	ws.session = NewSession(ws.config.Defaults)
	s := ws.session
	ws.mu.Unlock()

	ws.logger.Info("session reset")
	writeJSON(w, http.StatusOK, ws.sessionResponse(s))
}

// handleCalculate evaluates a form without touching the session
func (ws *WebServer) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var form FormInput
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		sendJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	industry, err := ParseIndustry(form.Industry)
	if err != nil {
		sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	form.Industry = string(industry)

	writeJSON(w, http.StatusOK, APISessionResponse{Success: true, Evaluation: ws.evaluate(form)})
}

func (ws *WebServer) renderer(format string) (ReportRenderer, bool) {
	switch format {
	case "html":
		return HTMLReport{AutoPrint: true}, true
	case "pdf":
		return PDFReport{FontPath: ws.config.Report.PDFFont}, true
	default:
		return nil, false
	}
}

func reportErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrReportNotAvailable):
		return http.StatusConflict
	case errors.Is(err, ErrPDFFontRequired):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (ws *WebServer) serveReport(w http.ResponseWriter, r *http.Request, format string, attachment bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	renderer, _ := ws.renderer(format)
	data := NewReportData(ws.currentSession(), ws.config.Report.Issuer)
	content, err := GenerateReport(renderer, data)
	if err != nil {
		ws.logger.Warn("report generation failed", zap.String("format", format), zap.Error(err))
		http.Error(w, err.Error(), reportErrorStatus(err))
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	if attachment {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"subsidy-report-%s.%s\"",
			data.CreatedAt.Format("2006-01-02"), renderer.Extension()))
	}
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
	w.Write(content)
}

// handleReportHTML returns the printable document for the current session
func (ws *WebServer) handleReportHTML(w http.ResponseWriter, r *http.Request) {
	ws.serveReport(w, r, "html", false)
}

// handleReportPDF returns the PDF for browser download
func (ws *WebServer) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	ws.serveReport(w, r, "pdf", true)
}

// handleExport writes a report file into the configured output directory
func (ws *WebServer) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ExportResponse{Message: "Method not allowed"})
		return
	}

	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ExportResponse{Message: "Invalid request: " + err.Error()})
		return
	}
	renderer, ok := ws.renderer(req.Format)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ExportResponse{Message: fmt.Sprintf("Unknown format %q", req.Format)})
		return
	}

	data := NewReportData(ws.currentSession(), ws.config.Report.Issuer)
	path, err := WriteReportFile(ws.config.Report.OutputDir, renderer, data)
	if err != nil {
		writeJSON(w, reportErrorStatus(err), ExportResponse{Message: err.Error()})
		return
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	ws.logger.Info("report exported", zap.String("path", absPath), zap.String("report_id", data.ID))
	writeJSON(w, http.StatusOK, ExportResponse{
		Success:  true,
		FilePath: absPath,
		Message:  fmt.Sprintf("Report saved to %s", absPath),
	})
}
