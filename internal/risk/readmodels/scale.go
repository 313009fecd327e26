package readmodels

import "riskdesk/internal/risk/models"

// CompanyScale is a company scale with its type and ordered levels.
type CompanyScale struct {
	Scale  *models.CompanyScale
	Levels []*models.ScaleLevel
}
