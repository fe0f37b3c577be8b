package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownIndustry is returned when an industry name is not one of the fixed categories
var ErrUnknownIndustry = errors.New("unknown industry")

// Industry is the industry category used for company-size classification
type Industry string

const (
	IndustryManufacturing Industry = "製造業・建設業・運輸業"
	IndustryWholesale     Industry = "卸売業"
	IndustryService       Industry = "サービス業"
	IndustryRetail        Industry = "小売業"
	IndustryOther         Industry = "その他の業種（農業・漁業・林業等）"
)

// Industries lists the categories in display order
var Industries = []Industry{
	IndustryManufacturing,
	IndustryWholesale,
	IndustryService,
	IndustryRetail,
	IndustryOther,
}

func (i Industry) String() string {
	return string(i)
}

// ParseIndustry matches a category name, or a 1-based index into Industries
func ParseIndustry(s string) (Industry, error) {
	s = strings.TrimSpace(s)
	for _, ind := range Industries {
		if string(ind) == s {
			return ind, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(Industries) {
		return Industries[n-1], nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIndustry, s)
}

// SizeClass is the company size category
type SizeClass int

const (
	SizeSME   SizeClass = iota // 中小企業
	SizeLarge                  // 大企業
)

func (s SizeClass) String() string {
	switch s {
	case SizeSME:
		return "sme"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Label returns the Japanese display name
func (s SizeClass) Label() string {
	switch s {
	case SizeSME:
		return "中小企業"
	case SizeLarge:
		return "大企業"
	default:
		return "不明"
	}
}

// MarshalText encodes the size class as "sme" or "large"
func (s SizeClass) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes "sme" or "large"
func (s *SizeClass) UnmarshalText(text []byte) error {
	switch string(text) {
	case "sme":
		*s = SizeSME
	case "large":
		*s = SizeLarge
	default:
		return fmt.Errorf("unknown size class %q", string(text))
	}
	return nil
}

// CompanyProfile describes the applying company
type CompanyProfile struct {
	Industry      Industry `json:"industry"`
	Capital       float64  `json:"capital"` // 万円
	EmployeeCount int      `json:"employee_count"`
}

// SizeClass classifies the company
func (c CompanyProfile) SizeClass() SizeClass {
	return Classify(c.Industry, c.Capital, c.EmployeeCount)
}

// TrainingProfile describes the planned OFF-JT training
type TrainingProfile struct {
	TraineeCount   int     `json:"trainee_count"`
	Days           int     `json:"days"`
	HoursPerDay    float64 `json:"hours_per_day"`
	CostPerTrainee float64 `json:"cost_per_trainee"` // 円
}

// TotalHours returns days × hours per day
func (t TrainingProfile) TotalHours() float64 {
	return float64(t.Days) * t.HoursPerDay
}

// TotalCost returns cost per trainee × trainees
func (t TrainingProfile) TotalCost() float64 {
	return t.CostPerTrainee * float64(t.TraineeCount)
}
