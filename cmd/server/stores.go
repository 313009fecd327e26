package main

import (
	"database/sql"

	"riskdesk/internal/audit/catalogue"
	auditservice "riskdesk/internal/audit/service"
	auditstore "riskdesk/internal/audit/store/audit"
	frameworkstore "riskdesk/internal/audit/store/framework"
	themestore "riskdesk/internal/audit/store/theme"
	companyservice "riskdesk/internal/company/service"
	companystore "riskdesk/internal/company/store/company"
	"riskdesk/internal/platform/database"
	"riskdesk/internal/risk/scales"
	riskservice "riskdesk/internal/risk/service"
	scalestore "riskdesk/internal/risk/store/scale"
	scenariostore "riskdesk/internal/risk/store/scenario"
	templatestore "riskdesk/internal/risk/store/template"
	"riskdesk/internal/risk/templates"
)

type scaleStore interface {
	scales.Store
	riskservice.ScaleReader
}

// stores holds one store per aggregate. The same value backs every service
// that reads that aggregate, so the overview sees what the modules write.
type stores struct {
	companies  companyservice.CompanyStore
	audits     auditservice.AuditStore
	themes     auditservice.ThemeStore
	frameworks auditservice.FrameworkStore
	scenarios  riskservice.ScenarioStore
	templates  riskservice.TemplateStore
	scales     scaleStore
}

// newStores returns PostgreSQL stores when db is set and in-memory ones
// otherwise. In memory the read-only catalogues are loaded from the
// embedded defaults; in PostgreSQL the migrations seed them.
func newStores(db *sql.DB) *stores {
	if db == nil {
		return &stores{
			companies:  companystore.NewInMemory(),
			audits:     auditstore.NewInMemory(),
			themes:     themestore.NewInMemory(),
			frameworks: frameworkstore.NewInMemory(catalogue.Frameworks()...),
			scenarios:  scenariostore.NewInMemory(),
			templates:  templatestore.NewInMemory(templates.Builtin()...),
			scales:     scalestore.NewInMemory(),
		}
	}
	return &stores{
		companies:  companystore.NewPostgres(db),
		audits:     auditstore.NewPostgres(db),
		themes:     themestore.NewPostgres(db),
		frameworks: frameworkstore.NewPostgres(db),
		scenarios:  scenariostore.NewPostgres(db),
		templates:  templatestore.NewPostgres(db),
		scales:     scalestore.NewPostgres(db),
	}
}

func dbOf(pool *database.Pool) *sql.DB {
	if pool == nil {
		return nil
	}
	return pool.DB()
}
