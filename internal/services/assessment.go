package services

import (
	"fmt"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
)

// AssessmentService produces a deterministic, rule-based security risk
// assessment for a piece of equipment. There is no model behind it; the
// evaluation order is fixed and determines the order of the output lists.
type AssessmentService struct{}

func NewAssessmentService() *AssessmentService {
	return &AssessmentService{}
}

func (s *AssessmentService) Generate(equipment *entities.Equipment, payload dto.AIAssessmentInput) dto.AIAssessmentOutput {
	score := 2
	riskFactors := []string{}
	recommendations := []string{
		"Keep maintenance logs updated and review monthly",
		"Limit equipment access to authorized staff only",
		"Enable audit logging for operational changes",
	}

	switch equipment.Status {
	case entities.EquipmentStatusMaintenance:
		score += 3
		riskFactors = append(riskFactors, "Equipment is currently under maintenance")
	case entities.EquipmentStatusInUse:
		score += 1
		riskFactors = append(riskFactors, "Equipment is under continuous usage")
	case entities.EquipmentStatusDecommissioned:
		score += 4
		riskFactors = append(riskFactors, "Equipment is decommissioned and high risk")
	case entities.EquipmentStatusAvailable:
		// no status contribution
	}

	if payload.InternetConnected {
		score += 2
		riskFactors = append(riskFactors, "Network-connected equipment has expanded attack surface")
		recommendations = append(recommendations, "Segment this device on a restricted network")
	}

	if issueCount := len(payload.KnownIssues); issueCount > 0 {
		if issueCount > 3 {
			score += 3
		} else {
			score += issueCount
		}
		riskFactors = append(riskFactors, fmt.Sprintf("%d known issue(s) reported", issueCount))
		recommendations = append(recommendations, "Resolve known issues and re-assess risk")
	}

	if payload.LastMaintenanceDays.Valid && payload.LastMaintenanceDays.Int > 180 {
		score += 2
		riskFactors = append(riskFactors, "Maintenance appears overdue")
		recommendations = append(recommendations, "Schedule preventive maintenance immediately")
	}

	if score > 10 {
		score = 10
	}
	if score < 1 {
		score = 1
	}

	if score >= 8 {
		recommendations = append(recommendations, "Escalate this asset for urgent security review")
	} else if score >= 5 {
		recommendations = append(recommendations, "Plan remediation in the next maintenance cycle")
	}

	if len(riskFactors) == 0 {
		riskFactors = append(riskFactors, "No significant issues detected in provided input")
	}

	return dto.AIAssessmentOutput{
		RiskScore:       score,
		RiskFactors:     riskFactors,
		Recommendations: recommendations,
	}
}
