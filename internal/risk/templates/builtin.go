package templates

import (
	_ "embed"

	"riskdesk/internal/risk/models"
)

// catalogue.json mirrors the rows seeded by migrations/00002_catalogue.sql.
//
//go:embed catalogue.json
var builtinCatalogue []byte

// Builtin returns the catalogue shipped with the binary, used when no
// database is configured.
func Builtin() []*models.Template {
	return DecodeTemplates(builtinCatalogue)
}
