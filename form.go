package main

import (
	"regexp"
	"strconv"
	"strings"
)

// FormInput holds the raw text of the simulator form.
// Values are free text; unparsable numbers are read as 0 rather than rejected.
type FormInput struct {
	Industry       string `yaml:"industry" json:"industry"`
	Capital        string `yaml:"capital" json:"capital"` // 万円
	Employees      string `yaml:"employees" json:"employees"`
	Trainees       string `yaml:"trainees" json:"trainees"`
	Days           string `yaml:"days" json:"days"`
	HoursPerDay    string `yaml:"hours_per_day" json:"hours_per_day"`
	CostPerTrainee string `yaml:"cost_per_trainee" json:"cost_per_trainee"` // 円
}

// Form field names accepted by SetField
const (
	FieldIndustry       = "industry"
	FieldCapital        = "capital"
	FieldEmployees      = "employees"
	FieldTrainees       = "trainees"
	FieldDays           = "days"
	FieldHoursPerDay    = "hours_per_day"
	FieldCostPerTrainee = "cost_per_trainee"
)

// DefaultFormInput is the form state before the user types anything
func DefaultFormInput() FormInput {
	return FormInput{
		Industry:    string(IndustryManufacturing),
		Days:        "4",
		HoursPerDay: "7",
	}
}

var (
	looseFloatPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
	looseIntPattern   = regexp.MustCompile(`^[+-]?\d+`)
)

// parseLooseFloat reads the leading decimal number of s, or 0 if there is none
func parseLooseFloat(s string) float64 {
	m := looseFloatPattern.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseLooseInt reads the leading integer of s, or 0 if there is none.
// "7.5" reads as 7.
func parseLooseInt(s string) int {
	m := looseIntPattern.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return v
}

// Profiles converts the form into company and training profiles
func (f FormInput) Profiles() (CompanyProfile, TrainingProfile) {
	company := CompanyProfile{
		Industry:      Industry(f.Industry),
		Capital:       parseLooseFloat(f.Capital),
		EmployeeCount: parseLooseInt(f.Employees),
	}
	training := TrainingProfile{
		TraineeCount:   parseLooseInt(f.Trainees),
		Days:           parseLooseInt(f.Days),
		HoursPerDay:    parseLooseFloat(f.HoursPerDay),
		CostPerTrainee: parseLooseFloat(f.CostPerTrainee),
	}
	return company, training
}

// set returns a copy of the form with one field replaced
func (f FormInput) set(field, value string) (FormInput, bool) {
	switch field {
	case FieldIndustry:
		f.Industry = value
	case FieldCapital:
		f.Capital = value
	case FieldEmployees:
		f.Employees = value
	case FieldTrainees:
		f.Trainees = value
	case FieldDays:
		f.Days = value
	case FieldHoursPerDay:
		f.HoursPerDay = value
	case FieldCostPerTrainee:
		f.CostPerTrainee = value
	default:
		return f, false
	}
	return f, true
}
