package models

import (
	"errors"
	"strings"
)

type AddRecordRequest struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Age   int     `json:"age"`
	Group string  `json:"group"`
	Score float64 `json:"score"`
}

func (r AddRecordRequest) Validate() error {
	var errs []string

	if r.ID <= 0 {
		errs = append(errs, "id must be greater than zero")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if r.Age < 0 {
		errs = append(errs, "age cannot be negative")
	}
	if r.Score < 0 {
		errs = append(errs, "score cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type RecordResponse struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Age   int     `json:"age"`
	Group string  `json:"group"`
	Score float64 `json:"score"`
}

type RegistryReportResponse struct {
	TotalRecords int    `json:"totalRecords"`
	AverageScore string `json:"averageScore"`
	Text         string `json:"text"`
}
