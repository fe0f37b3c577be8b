package main

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCriterion = errors.New("unknown eligibility criterion")
	ErrUnknownTask      = errors.New("unknown task")
	ErrUnknownField     = errors.New("unknown form field")
	ErrUnknownAction    = errors.New("unknown session action")
)

// Criterion is one item of the application eligibility checklist
type Criterion struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Critical bool   `json:"critical"` // 必須 when true, 推奨 otherwise
}

// EligibilityCriteria is the fixed checklist for the course
var EligibilityCriteria = []Criterion{
	{ID: "e1", Text: "雇用保険適用事業所である", Critical: true},
	{ID: "e2", Text: "受講対象者は全員雇用保険被保険者である", Critical: true},
	{ID: "e3", Text: "訓練時間は10時間以上を予定している", Critical: true},
	{ID: "e4", Text: "OFF-JT（業務と区別した訓練）として実施する", Critical: true},
	{ID: "e5", Text: "事業展開（新規事業・DX・GX等）に関連する訓練である", Critical: true},
	{ID: "e6", Text: "事業展開は訓練開始日から3年以内に実施予定、または6ヶ月以内に実施済み", Critical: true},
	{ID: "e7", Text: "職業能力開発推進者を選任している（または選任予定）", Critical: false},
	{ID: "e8", Text: "事業内職業能力開発計画を策定している（または策定予定）", Critical: false},
	{ID: "e9", Text: "過去に同助成金で離職率50%以上が2回以上発生していない", Critical: true},
	{ID: "e10", Text: "訓練経費は全額事業主が負担する（受講者負担なし）", Critical: true},
	{ID: "e11", Text: "訓練期間中、受講者に賃金を適正に支払う", Critical: true},
	{ID: "e12", Text: "受講者は訓練時間の80%以上を受講できる見込みがある", Critical: false},
}

// TaskPhase is one step of the application workflow
type TaskPhase struct {
	Title string   `json:"title"`
	Tasks []string `json:"tasks"`
}

// TaskPhases is the fixed preparation task list
var TaskPhases = []TaskPhase{
	{
		Title: "Step 0：事前準備",
		Tasks: []string{
			"職業能力開発推進者の選任（未選任の場合）",
			"事業内職業能力開発計画の策定",
			"上記計画を自社の労働者へ周知",
		},
	},
	{
		Title: "Step 1：計画届の提出（訓練開始6ヶ月前〜1ヶ月前）",
		Tasks: []string{
			"職業訓練実施計画届（様式第1-1号）の作成",
			"事業展開等実施計画（様式第1-3号）の作成",
			"対象労働者一覧（様式第3-1号）の作成",
			"事前確認書（様式第11号）の作成",
			"訓練カリキュラム・受講案内等の準備",
			"【事業内訓練の場合】OFF-JT講師要件確認書（様式第10号）の作成",
			"【事業外訓練の場合】教育訓練機関との契約書・受講案内・申込書の写し準備",
			"管轄労働局へ計画届を提出",
		},
	},
	{
		Title: "Step 2：訓練実施",
		Tasks: []string{
			"計画に基づき訓練を実施",
			"受講者の出席・受講状況を記録",
			"訓練経費の全額を支払い（支給申請までに完了）",
		},
	},
	{
		Title: "Step 3：支給申請（訓練終了翌日から2ヶ月以内）",
		Tasks: []string{
			"支給申請書（様式第4-2号）の作成",
			"賃金助成の内訳（様式第5号）の作成",
			"経費助成の内訳（様式第6-2号）の作成",
			"OFF-JT実施状況報告書（様式第8-1号）の作成",
			"受講者の雇用契約書または労働条件通知書の写し",
			"受講者の賃金台帳または給与明細書の写し",
			"受講者の出勤簿またはタイムカードの写し",
			"【事業外訓練の場合】支給申請承諾書（様式第12号）",
			"訓練経費の請求書・領収書または振込通知書の写し",
			"管轄労働局へ支給申請書を提出",
		},
	},
}

// TaskKey identifies a task by phase title and position
func TaskKey(phase string, index int) string {
	return fmt.Sprintf("%s-%d", phase, index)
}

func findCriterion(id string) (Criterion, bool) {
	for _, c := range EligibilityCriteria {
		if c.ID == id {
			return c, true
		}
	}
	return Criterion{}, false
}

func isTaskKey(key string) bool {
	for _, phase := range TaskPhases {
		for i := range phase.Tasks {
			if TaskKey(phase.Title, i) == key {
				return true
			}
		}
	}
	return false
}

// Session is the complete state of one interactive session.
// Transitions return a new Session; the receiver is never modified.
type Session struct {
	Form       FormInput       `json:"form"`
	Checks     map[string]bool `json:"checks"`
	TaskChecks map[string]bool `json:"task_checks"`
}

// NewSession starts a session from the given form values
func NewSession(form FormInput) Session {
	return Session{
		Form:       form,
		Checks:     map[string]bool{},
		TaskChecks: map[string]bool{},
	}
}

func copyFlags(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ToggleCheck flips an eligibility criterion
func (s Session) ToggleCheck(id string) (Session, error) {
	if _, ok := findCriterion(id); !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownCriterion, id)
	}
	next := s
	next.Checks = copyFlags(s.Checks)
	next.Checks[id] = !s.Checks[id]
	return next, nil
}

// ToggleTask flips a preparation task
func (s Session) ToggleTask(key string) (Session, error) {
	if !isTaskKey(key) {
		return s, fmt.Errorf("%w: %q", ErrUnknownTask, key)
	}
	next := s
	next.TaskChecks = copyFlags(s.TaskChecks)
	next.TaskChecks[key] = !s.TaskChecks[key]
	return next, nil
}

// SetField replaces one raw form value
func (s Session) SetField(field, value string) (Session, error) {
	form, ok := s.Form.set(field, value)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	next := s
	next.Form = form
	return next, nil
}

// Action types understood by Apply
const (
	ActionToggleCheck = "toggle_check"
	ActionToggleTask  = "toggle_task"
	ActionSetField    = "set_field"
)

// Action is a serializable session transition
type Action struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`    // criterion id or task key
	Field string `json:"field,omitempty"` // form field for set_field
	Value string `json:"value,omitempty"`
}

// Apply dispatches an action to the matching transition
func (s Session) Apply(a Action) (Session, error) {
	switch a.Type {
	case ActionToggleCheck:
		return s.ToggleCheck(a.ID)
	case ActionToggleTask:
		return s.ToggleTask(a.ID)
	case ActionSetField:
		return s.SetField(a.Field, a.Value)
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}

// AllCriticalSatisfied reports whether every critical criterion is checked
func (s Session) AllCriticalSatisfied() bool {
	return s.UncheckedCritical() == 0
}

// UncheckedCritical counts critical criteria still unchecked
func (s Session) UncheckedCritical() int {
	n := 0
	for _, c := range EligibilityCriteria {
		if c.Critical && !s.Checks[c.ID] {
			n++
		}
	}
	return n
}

// CompletedTasks counts checked tasks
func (s Session) CompletedTasks() (done, total int) {
	for _, phase := range TaskPhases {
		for i := range phase.Tasks {
			total++
			if s.TaskChecks[TaskKey(phase.Title, i)] {
				done++
			}
		}
	}
	return done, total
}

// Evaluation is the derived view of a session's form
type Evaluation struct {
	Company          CompanyProfile  `json:"company"`
	Training         TrainingProfile `json:"training"`
	SizeClass        SizeClass       `json:"size_class"`
	SizeLabel        string          `json:"size_label"`
	Result           SubsidyResult   `json:"result"`
	Valid            bool            `json:"valid"`
	CapReached       bool            `json:"cap_reached"`
	CapitalEntered   bool            `json:"capital_entered"`
	EmployeesEntered bool            `json:"employees_entered"`
}

// EvaluateForm classifies the company and computes the subsidy for raw form values
func EvaluateForm(form FormInput) Evaluation {
	company, training := form.Profiles()
	size := company.SizeClass()
	result := ComputeSubsidy(size, training)
	return Evaluation{
		Company:          company,
		Training:         training,
		SizeClass:        size,
		SizeLabel:        size.Label(),
		Result:           result,
		Valid:            IsValid(training),
		CapReached:       result.ExpenseCapReached(),
		CapitalEntered:   form.Capital != "",
		EmployeesEntered: form.Employees != "",
	}
}

// Evaluate recomputes the evaluation for the current form
func (s Session) Evaluate() Evaluation {
	return EvaluateForm(s.Form)
}
