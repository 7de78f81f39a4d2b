package dto

import "github.com/aarondl/null/v8"

type AIAssessmentInput struct {
	Environment         string   `json:"environment" validate:"required,min=2,max=120"`
	UsagePattern        string   `json:"usage_pattern" validate:"required,min=2,max=250"`
	KnownIssues         []string `json:"known_issues"`
	InternetConnected   bool     `json:"internet_connected"`
	LastMaintenanceDays null.Int `json:"last_maintenance_days" validate:"omitempty,gte=0"`
}

type AIAssessmentOutput struct {
	RiskScore       int      `json:"risk_score"`
	RiskFactors     []string `json:"risk_factors"`
	Recommendations []string `json:"recommendations"`
}
