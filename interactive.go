package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// validateIndustryChoice accepts a menu number or an exact category name
func validateIndustryChoice(input string) (Industry, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ValidationError{Field: FieldIndustry, Message: "業種を選択してください"}
	}
	industry, err := ParseIndustry(input)
	if err != nil {
		return "", ValidationError{Field: FieldIndustry,
			Message: fmt.Sprintf("1〜%dの番号で選択してください (入力: %s)", len(Industries), input)}
	}
	return industry, nil
}

// validateLooseNumber rejects text with no leading number.
// Callers treat the error as a warning: the value is still read as 0.
func validateLooseNumber(input, field string) error {
	input = strings.TrimSpace(input)
	if input == "" || looseFloatPattern.MatchString(input) {
		return nil
	}
	return ValidationError{Field: field, Message: fmt.Sprintf("%q は数値として読み取れないため 0 として計算します", input)}
}

// InteractiveFormBuilder fills the simulator form from terminal prompts
type InteractiveFormBuilder struct {
	reader *bufio.Reader
	out    io.Writer
	form   FormInput
}

// NewInteractiveFormBuilder creates a builder seeded with default values
func NewInteractiveFormBuilder(in io.Reader, out io.Writer, defaults FormInput) *InteractiveFormBuilder {
	return &InteractiveFormBuilder{
		reader: bufio.NewReader(in),
		out:    out,
		form:   defaults,
	}
}

func (b *InteractiveFormBuilder) readLine() (string, bool) {
	line, err := b.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// promptString prompts for a value, keeping defaultVal on empty input
func (b *InteractiveFormBuilder) promptString(prompt, defaultVal string) string {
	if defaultVal != "" {
		fmt.Fprintf(b.out, "%s [%s]: ", prompt, defaultVal)
	} else {
		fmt.Fprintf(b.out, "%s: ", prompt)
	}
	input, ok := b.readLine()
	if !ok || input == "" {
		return defaultVal
	}
	return input
}

// promptNumber prompts for a free-text number.
// Unreadable input is kept as typed and warned about.
func (b *InteractiveFormBuilder) promptNumber(prompt, field, defaultVal string) string {
	value := b.promptString(prompt, defaultVal)
	if err := validateLooseNumber(value, field); err != nil {
		fmt.Fprintf(b.out, "  ⚠ %s\n", err.(ValidationError).Message)
	}
	return value
}

// promptIndustry shows the category menu and loops until a valid choice
func (b *InteractiveFormBuilder) promptIndustry(defaultVal string) string {
	defaultChoice := ""
	for i, ind := range Industries {
		fmt.Fprintf(b.out, "  %d. %s\n", i+1, ind)
		if string(ind) == defaultVal {
			defaultChoice = strconv.Itoa(i + 1)
		}
	}
	for {
		input := b.promptString("業種を番号で選択", defaultChoice)
		industry, err := validateIndustryChoice(input)
		if err == nil {
			return string(industry)
		}
		fmt.Fprintf(b.out, "  ⚠ %s\n", err.(ValidationError).Message)
		if !b.hasMoreInput() {
			return defaultVal
		}
	}
}

// hasMoreInput reports whether more input can still arrive
func (b *InteractiveFormBuilder) hasMoreInput() bool {
	_, err := b.reader.Peek(1)
	return err == nil
}

// PromptYesNo asks a yes/no question; anything but y/yes is no
func (b *InteractiveFormBuilder) PromptYesNo(prompt string) bool {
	fmt.Fprintf(b.out, "%s (y/N): ", prompt)
	input, _ := b.readLine()
	input = strings.ToLower(input)
	return input == "y" || input == "yes"
}

// BuildForm walks through every form field
func (b *InteractiveFormBuilder) BuildForm() FormInput {
	f := b.form

	fmt.Fprintln(b.out, "企業情報")
	fmt.Fprintln(b.out, "────────")
	f.Industry = b.promptIndustry(f.Industry)
	f.Capital = b.promptNumber("資本金（万円、未入力可）", FieldCapital, f.Capital)
	f.Employees = b.promptNumber("常時雇用する労働者数（名、未入力可）", FieldEmployees, f.Employees)
	fmt.Fprintln(b.out)

	fmt.Fprintln(b.out, "訓練内容")
	fmt.Fprintln(b.out, "────────")
	f.Trainees = b.promptNumber("受講予定者数（名）", FieldTrainees, f.Trainees)
	f.Days = b.promptNumber("訓練日数（日）", FieldDays, f.Days)
	f.HoursPerDay = b.promptNumber("1日あたり訓練時間（時間）", FieldHoursPerDay, f.HoursPerDay)
	f.CostPerTrainee = b.promptNumber("1人あたり訓練経費（円）", FieldCostPerTrainee, f.CostPerTrainee)
	fmt.Fprintln(b.out)

	b.form = f
	return f
}

// PromptChecklist asks about each eligibility criterion and applies the answers
func (b *InteractiveFormBuilder) PromptChecklist(s Session) Session {
	fmt.Fprintln(b.out, "申請要件チェック")
	fmt.Fprintln(b.out, "────────────────")
	for _, c := range EligibilityCriteria {
		kind := "推奨"
		if c.Critical {
			kind = "必須"
		}
		if b.PromptYesNo(fmt.Sprintf("[%s] %s", kind, c.Text)) != s.Checks[c.ID] {
			if next, err := s.ToggleCheck(c.ID); err == nil {
				s = next
			}
		}
	}
	fmt.Fprintln(b.out)
	return s
}
