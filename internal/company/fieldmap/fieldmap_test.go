package fieldmap

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskdesk/internal/company/models"
	"riskdesk/pkg/domain"
	"riskdesk/pkg/optional"
)

func sampleCompany() *models.Company {
	year := 1987
	audited := time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	return &models.Company{
		ID:            domain.CompanyID(uuid.New()),
		Name:          "Acme Logistics",
		Slug:          "acme-logistics",
		Description:   "Freight forwarding",
		Activity:      "Transport",
		CreationYear:  &year,
		MarketScope:   "international",
		LastAuditDate: &audited,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestRoundTrip(t *testing.T) {
	c := sampleCompany()

	row := ToRow(c)

	assert.Nil(t, row.ParentCompany, "empty text is stored as NULL")
	require.NotNil(t, row.CreationYear)
	assert.Equal(t, int64(1987), *row.CreationYear)
	assert.Equal(t, c, FromRow(row))
	assert.Len(t, row.Values(), len(Columns))
	assert.Len(t, row.Targets(), len(Columns))
}

func TestToUpdate(t *testing.T) {
	cases := []struct {
		name  string
		patch Patch
		want  map[string]any
	}{
		{"empty patch", Patch{}, map[string]any{}},
		{
			"rename rewrites slug",
			Patch{Name: optional.Of("Acme Group")},
			map[string]any{"name": "Acme Group", "slug": "acme-group"},
		},
		{
			"empty text clears",
			Patch{Activity: optional.Of(""), ParentCompany: optional.NullOf[string]()},
			map[string]any{"activity": nil, "parent_company": nil},
		},
		{
			"creation year",
			Patch{CreationYear: optional.Of(2001)},
			map[string]any{"creation_year": int64(2001)},
		},
		{
			"null creation year",
			Patch{CreationYear: optional.NullOf[int]()},
			map[string]any{"creation_year": nil},
		},
		{
			"empty last audit date is an explicit null",
			Patch{LastAuditDate: optional.Of("")},
			map[string]any{"last_audit_date": nil},
		},
		{
			"last audit date",
			Patch{LastAuditDate: optional.Of("2024-01-15")},
			map[string]any{"last_audit_date": "2024-01-15"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToUpdate(tc.patch))
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("merges present fields only", func(t *testing.T) {
		c := sampleCompany()

		got, err := Apply(c, Patch{
			Name:          optional.Of("Acme Group"),
			Description:   optional.Of(""),
			CreationYear:  optional.NullOf[int](),
			LastAuditDate: optional.Of("2024-01-15"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Group", got.Name)
		assert.Equal(t, "acme-group", got.Slug)
		assert.Empty(t, got.Description)
		assert.Nil(t, got.CreationYear)
		assert.Equal(t, "Transport", got.Activity)
		require.NotNil(t, got.LastAuditDate)
		assert.Equal(t, "2024-01-15", got.LastAuditDate.Format("2006-01-02"))
		assert.Equal(t, "Acme Logistics", c.Name, "input is not mutated")
	})

	t.Run("clears last audit date", func(t *testing.T) {
		got, err := Apply(sampleCompany(), Patch{LastAuditDate: optional.NullOf[string]()})
		require.NoError(t, err)
		assert.Nil(t, got.LastAuditDate)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := Apply(sampleCompany(), Patch{LastAuditDate: optional.Of("15/01/2024")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "last_audit_date")
	})
}
