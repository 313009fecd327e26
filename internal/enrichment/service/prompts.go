package service

import (
	"fmt"
	"strings"

	"riskdesk/internal/enrichment/generator"
	"riskdesk/internal/enrichment/models"
)

const companySystemPrompt = `You help risk auditors complete company profiles.
Answer with a single JSON object and nothing else, using exactly these keys:
"activity" (main business activity, one short sentence),
"creationYear" (four digit year as a number, or null),
"parentCompany" (name of the parent group, or null),
"marketScope" (one of "local", "national", "european", "international", or null).
Use null for anything you are not confident about. Never invent a parent company.`

const impactSystemPrompt = `You are a risk analyst writing for an audit report.
Describe the concrete consequences for the organisation if the risk scenario occurred:
financial, operational, legal, reputational and human impacts where relevant.
Write plain prose without headings or lists, in at most %d words.`

func companyPrompt(req models.CompanyRequest) generator.Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Company name: %s\n", req.CompanyName)
	if req.Description != "" {
		fmt.Fprintf(&b, "Known description: %s\n", req.Description)
	}
	return generator.Prompt{
		System: companySystemPrompt,
		User:   b.String(),
		Format: generator.FormatJSON,
	}
}

func impactPrompt(req models.ImpactRequest) generator.Prompt {
	return generator.Prompt{
		System: fmt.Sprintf(impactSystemPrompt, models.MaxImpactWords),
		User:   "Risk scenario: " + req.ScenarioDescription,
		Format: generator.FormatText,
	}
}
