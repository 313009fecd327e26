package templates

import (
	"encoding/json"

	"github.com/google/uuid"

	"riskdesk/internal/risk/models"
	"riskdesk/pkg/domain"
)

type wireTemplate struct {
	ID                  string `json:"id"`
	Domain              string `json:"domain"`
	ScenarioDescription string `json:"scenario_description"`
	Threat              string `json:"threat"`
	Vulnerability       string `json:"vulnerability"`
}

// DecodeTemplates reads a JSON array of templates. Anything that is not an
// array decodes to an empty list. Elements that are null or not objects come
// back as nil entries; malformed IDs come back as the nil ID. Group drops both.
func DecodeTemplates(data []byte) []*models.Template {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return []*models.Template{}
	}

	out := make([]*models.Template, 0, len(raw))
	for _, item := range raw {
		var w *wireTemplate
		if err := json.Unmarshal(item, &w); err != nil || w == nil {
			out = append(out, nil)
			continue
		}
		var templateID domain.TemplateID
		if parsed, err := uuid.Parse(w.ID); err == nil {
			templateID = domain.TemplateID(parsed)
		}
		out = append(out, &models.Template{
			ID:                  templateID,
			Domain:              w.Domain,
			ScenarioDescription: w.ScenarioDescription,
			Threat:              w.Threat,
			Vulnerability:       w.Vulnerability,
		})
	}
	return out
}
