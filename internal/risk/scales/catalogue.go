package scales

import "riskdesk/internal/risk/models"

// Required scale names. A company needs one likelihood-category scale under
// any name and each impact scale under exactly these names.
const (
	NameLikelihood  = "likelihood"
	NameFinancial   = "financial_impact"
	NameReputation  = "reputational_impact"
	NameLegal       = "legal_impact"
	NameOperational = "operational_impact"
	NameHuman       = "human_impact"
)

// ImpactNames lists the impact scales every company must hold.
var ImpactNames = []string{NameFinancial, NameReputation, NameLegal, NameOperational, NameHuman}

// RequiredCount is the number of scales a fully seeded company holds.
func RequiredCount() int {
	return len(ImpactNames) + 1
}

type levelStyle struct {
	name  string
	color string
}

var levelStyles = [4]levelStyle{
	{name: "Low", color: "#22c55e"},
	{name: "Medium", color: "#eab308"},
	{name: "High", color: "#f97316"},
	{name: "Critical", color: "#ef4444"},
}

var likelihoodDescriptions = [4]string{
	"Rare: not expected to happen within the next ten years",
	"Possible: could happen once every few years",
	"Likely: expected to happen about once a year",
	"Almost certain: expected to happen several times a year",
}

var financialDescriptions = [4]string{
	"Loss below 1% of annual revenue, absorbed by the current budget",
	"Loss between 1% and 5% of annual revenue, requires budget reallocation",
	"Loss between 5% and 20% of annual revenue, jeopardises yearly objectives",
	"Loss above 20% of annual revenue, threatens the company's survival",
}

var genericImpactDescriptions = [4]string{
	"Limited impact, handled within normal operations",
	"Noticeable impact requiring management attention",
	"Serious impact on objectives, stakeholders or compliance",
	"Critical impact with lasting consequences for the organisation",
}

func levels(descriptions [4]string) []models.LevelTemplate {
	out := make([]models.LevelTemplate, 0, len(levelStyles))
	for i, style := range levelStyles {
		out = append(out, models.LevelTemplate{
			LevelValue:  i + 1,
			Name:        style.name,
			Description: descriptions[i],
			Color:       style.color,
		})
	}
	return out
}

// DefaultTemplates returns a fresh copy of the built-in scale catalogue:
// one likelihood template followed by the five impact templates.
func DefaultTemplates() []*models.ScaleTemplate {
	impact := func(name, description string, d [4]string) *models.ScaleTemplate {
		return &models.ScaleTemplate{
			Name:        name,
			Category:    models.CategoryImpact,
			Description: description,
			Levels:      levels(d),
		}
	}
	return []*models.ScaleTemplate{
		{
			Name:        NameLikelihood,
			Category:    models.CategoryLikelihood,
			Description: "How often the scenario is expected to occur",
			Levels:      levels(likelihoodDescriptions),
		},
		impact(NameFinancial, "Direct and indirect financial losses", financialDescriptions),
		impact(NameReputation, "Damage to brand image and stakeholder trust", genericImpactDescriptions),
		impact(NameLegal, "Regulatory sanctions, litigation and contractual penalties", genericImpactDescriptions),
		impact(NameOperational, "Disruption of business processes and services", genericImpactDescriptions),
		impact(NameHuman, "Harm to the health, safety or wellbeing of people", genericImpactDescriptions),
	}
}
