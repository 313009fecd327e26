package handler

import "riskdesk/internal/enrichment/models"

type CompanyProposalData struct {
	Activity      string `json:"activity"`
	CreationYear  *int   `json:"creationYear"`
	ParentCompany string `json:"parentCompany"`
	MarketScope   string `json:"marketScope"`
}

type EnrichCompanyResponse struct {
	Success bool                 `json:"success"`
	Data    *CompanyProposalData `json:"data"`
}

type DescribeImpactResponse struct {
	ImpactDescription string `json:"impactDescription"`
}

func toEnrichCompanyResponse(p *models.CompanyProposal) *EnrichCompanyResponse {
	return &EnrichCompanyResponse{
		Success: true,
		Data: &CompanyProposalData{
			Activity:      p.Activity,
			CreationYear:  p.CreationYear,
			ParentCompany: p.ParentCompany,
			MarketScope:   p.MarketScope,
		},
	}
}
