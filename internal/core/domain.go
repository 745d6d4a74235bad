package core

import (
	"errors"
	"strings"
	"time"
)

const (
	CategoryHome        Category = "Home"
	CategoryKitchen     Category = "Kitchen"
	CategorySports      Category = "Sports"
	CategoryEducation   Category = "Education"
	CategoryTravel      Category = "Travel"
	CategoryElectricity Category = "Electricity"
	CategoryMedical     Category = "Medical"
	CategoryOthers      Category = "Others"
)

const (
	PeriodDays   PeriodType = "days"
	PeriodMonths PeriodType = "months"
	PeriodYears  PeriodType = "years"
)

type (
	// Category is one of the fixed expense categories.
	Category string

	// PeriodType labels the cadence a goal is saved on.
	PeriodType string

	// Expense is a single recorded expenditure. Records are immutable once
	// stored; a correction is a delete plus a fresh add.
	Expense struct {
		ID       string    `json:"id"`
		Name     string    `json:"name"`
		Amount   float64   `json:"amount"`
		Category Category  `json:"category"`
		Date     time.Time `json:"date"`
	}

	// Goal is a savings target with a linear contribution schedule.
	Goal struct {
		ID              string     `json:"id"`
		Name            string     `json:"name"`
		TargetAmount    float64    `json:"targetAmount"`
		CurrentAmount   float64    `json:"currentAmount"`
		SavingFrequency string     `json:"savingFrequency"`
		PeriodType      PeriodType `json:"periodType"`
		PeriodCount     int        `json:"periodCount"`
		Date            time.Time  `json:"date"`
	}

	// UserProfile is the per-installation singleton profile. Avatar is an
	// opaque encoded image reference and may be empty.
	UserProfile struct {
		Name       string `json:"name"`
		Profession string `json:"profession"`
		Avatar     string `json:"avatar,omitempty"`
	}
)

var (
	ErrEmptyID         = errors.New("empty id")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrEmptyName       = errors.New("empty name")
	ErrNegativeAmount  = errors.New("negative amount")
	ErrInvalidCategory = errors.New("invalid category")
	ErrZeroTarget      = errors.New("target amount must be positive")
	ErrInvalidPeriod   = errors.New("invalid period")
)

// Categories lists every valid expense category in display order.
func Categories() []Category {
	return []Category{
		CategoryHome, CategoryKitchen, CategorySports, CategoryEducation,
		CategoryTravel, CategoryElectricity, CategoryMedical, CategoryOthers,
	}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryHome, CategoryKitchen, CategorySports, CategoryEducation,
		CategoryTravel, CategoryElectricity, CategoryMedical, CategoryOthers:
		return true
	default:
		return false
	}
}

func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodDays, PeriodMonths, PeriodYears:
		return true
	default:
		return false
	}
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if e.Amount < 0 {
		return ErrNegativeAmount
	}
	if !e.Category.IsValid() {
		return ErrInvalidCategory
	}
	return nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if g.TargetAmount <= 0 {
		return ErrZeroTarget
	}
	if g.CurrentAmount < 0 {
		return ErrNegativeAmount
	}
	if !g.PeriodType.IsValid() {
		return ErrInvalidPeriod
	}
	if g.PeriodCount < 1 {
		return ErrInvalidPeriod
	}
	return nil
}

func (u UserProfile) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
