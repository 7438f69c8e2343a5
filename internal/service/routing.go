package service

import (
	"strings"

	"github.com/incidentdesk/backend/internal/models"
)

// TeamForKBCategory routes on the category of a matched KB document.
func TeamForKBCategory(category string) string {
	switch category {
	case models.CategoryEmail:
		return models.TeamInfrastructure
	case models.CategoryNetwork:
		return models.TeamNetwork
	case models.CategoryApplication:
		return models.TeamApplicationSupport
	default:
		return models.TeamGeneralSupport
	}
}

// TeamForCategory routes on a free-form ticket category, case-insensitively.
func TeamForCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "email", "server":
		return models.TeamInfrastructure
	case "network", "vpn", "connectivity":
		return models.TeamNetwork
	case "application", "software":
		return models.TeamApplicationSupport
	case "hardware":
		return models.TeamHardwareSupport
	case "security":
		return models.TeamSecurity
	default:
		return models.TeamGeneralSupport
	}
}
