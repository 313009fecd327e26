package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	auditservice "riskdesk/internal/audit/service"
	frameworkstore "riskdesk/internal/audit/store/framework"
	themestore "riskdesk/internal/audit/store/theme"
	companystore "riskdesk/internal/company/store/company"
	riskmetrics "riskdesk/internal/risk/metrics"
	"riskdesk/internal/risk/scales"
	riskservice "riskdesk/internal/risk/service"
	scalestore "riskdesk/internal/risk/store/scale"
	"riskdesk/pkg/domain"
)

func NewSeedCommand() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Create default catalogue data",
	}
	seedCmd.AddCommand(newSeedTemplatesCommand())
	seedCmd.AddCommand(newSeedScalesCommand())
	seedCmd.AddCommand(newSeedThemesCommand())
	return seedCmd
}

func newSeedTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Create the built-in risk scale templates if none exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			seeder := scales.New(scalestore.NewPostgres(e.pool.DB()), scales.WithLogger(e.logger))
			n, err := seeder.EnsureGlobalTemplates(cmd.Context())
			if err != nil {
				return err
			}
			e.logger.Info("risk scale templates seeded", "created", n)
			return nil
		},
	}
}

func newSeedScalesCommand() *cobra.Command {
	scalesCmd := &cobra.Command{
		Use:   "scales",
		Short: "Give a company its likelihood and impact scales",
		Long: "Clones every risk scale template the company does not hold yet. " +
			"Running it again is harmless. The report is printed as JSON.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := cmd.Flags().GetString("company")
			if err != nil {
				return err
			}
			companyID, err := domain.ParseCompanyID(raw)
			if err != nil {
				return err
			}

			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			db := e.pool.DB()
			store := scalestore.NewPostgres(db)
			metrics := riskmetrics.New()
			seeder := scales.New(store, scales.WithLogger(e.logger), scales.WithMetrics(metrics))
			svc := riskservice.NewScaleService(seeder, store,
				riskservice.WithLogger(e.logger),
				riskservice.WithCompanyChecker(companystore.NewPostgres(db)),
			)

			report, err := svc.Seed(cmd.Context(), companyID)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
	scalesCmd.Flags().String("company", "", "company id (UUID)")
	_ = scalesCmd.MarkFlagRequired("company")
	return scalesCmd
}

func newSeedThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "Create the default audit themes if the catalogue is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			db := e.pool.DB()
			svc := auditservice.NewCatalogueService(themestore.NewPostgres(db), frameworkstore.NewPostgres(db),
				auditservice.WithLogger(e.logger),
			)
			n, err := svc.EnsureDefaultThemes(cmd.Context())
			if err != nil {
				return err
			}
			e.logger.Info("audit themes seeded", "created", n)
			return nil
		},
	}
}
