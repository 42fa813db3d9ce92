package config

import (
	"github.com/go-playground/validator/v10"
)

var reportCategories = map[string]struct{}{
	"roads_transport":     {},
	"water_sewage":        {},
	"electricity":         {},
	"waste_management":    {},
	"public_safety":       {},
	"parks_recreation":    {},
	"street_lighting":     {},
	"noise_pollution":     {},
	"air_pollution":       {},
	"building_violations": {},
	"other":               {},
}

var reportStatuses = map[string]struct{}{
	"submitted":   {},
	"validated":   {},
	"in_progress": {},
	"resolved":    {},
	"rejected":    {},
	"duplicate":   {},
}

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("report_category", validateReportCategory)
	_ = v.RegisterValidation("report_status", validateReportStatus)
	return v
}

func validateReportCategory(fl validator.FieldLevel) bool {
	_, ok := reportCategories[fl.Field().String()]
	return ok
}

func validateReportStatus(fl validator.FieldLevel) bool {
	_, ok := reportStatuses[fl.Field().String()]
	return ok
}

func IsReportCategory(s string) bool {
	_, ok := reportCategories[s]
	return ok
}
