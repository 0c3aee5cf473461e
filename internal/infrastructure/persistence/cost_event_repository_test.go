package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockCostEventRepository creates a GormCostEventRepository with a mocked SQL connection
func newMockCostEventRepository(t *testing.T) (*GormCostEventRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCostEventRepository(gormDB), mock, mockDB
}

func TestGormCostEventRepository_FindByID(t *testing.T) {
	t.Run("finds existing cost event", func(t *testing.T) {
		repo, mock, mockDB := newMockCostEventRepository(t)
		defer mockDB.Close()

		eventID := uuid.New()
		tenantID := uuid.New()
		jobID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "job_id", "kind", "amount", "description", "vendor", "external_ref", "incurred_at"}).
			AddRow(eventID, tenantID, jobID, "labor", decimal.NewFromInt(650), "Crew day rate", "", "", time.Now())

		mock.ExpectQuery(`SELECT \* FROM "cost_events" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, eventID, 1).
			WillReturnRows(rows)

		event, err := repo.FindByID(context.Background(), tenantID, eventID)

		assert.NoError(t, err)
		assert.NotNil(t, event)
		assert.Equal(t, eventID, event.ID)
		assert.Equal(t, budget.CostKindLabor, event.Kind)
		assert.True(t, event.Amount.Equal(decimal.NewFromInt(650)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent cost event", func(t *testing.T) {
		repo, mock, mockDB := newMockCostEventRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		eventID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "cost_events" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, eventID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		event, err := repo.FindByID(context.Background(), tenantID, eventID)

		assert.Error(t, err)
		assert.Nil(t, event)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCostEventRepository_Save(t *testing.T) {
	t.Run("saves cost event", func(t *testing.T) {
		repo, mock, mockDB := newMockCostEventRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		jobID := uuid.New()
		event, err := budget.NewCostEvent(tenantID, jobID, budget.CostKindMaterial, decimal.NewFromInt(1750), budget.CostEventDetails{Description: "Shingle order", Vendor: "ABC Supply"}, time.Now())
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "cost_events"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Save(context.Background(), event)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCostEventRepository_Delete(t *testing.T) {
	t.Run("deletes existing cost event", func(t *testing.T) {
		repo, mock, mockDB := newMockCostEventRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		eventID := uuid.New()

		mock.ExpectExec(`DELETE FROM "cost_events" WHERE tenant_id = \$1 AND id = \$2`).
			WithArgs(tenantID, eventID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), tenantID, eventID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent cost event", func(t *testing.T) {
		repo, mock, mockDB := newMockCostEventRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		eventID := uuid.New()

		mock.ExpectExec(`DELETE FROM "cost_events" WHERE tenant_id = \$1 AND id = \$2`).
			WithArgs(tenantID, eventID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), tenantID, eventID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCostEventRepository_SumByJob(t *testing.T) {
	t.Run("aggregates per-kind totals", func(t *testing.T) {
		repo, mock, mockDB := newMockCostEventRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		jobID := uuid.New()

		rows := sqlmock.NewRows([]string{"kind", "total"}).
			AddRow("material", decimal.NewFromInt(1750)).
			AddRow("labor", decimal.NewFromInt(650))

		mock.ExpectQuery(`SELECT kind, COALESCE\(SUM\(amount\), 0\) AS total FROM "cost_events" WHERE tenant_id = \$1 AND job_id = \$2 GROUP BY .*kind.*`).
			WithArgs(tenantID, jobID).
			WillReturnRows(rows)

		totals, err := repo.SumByJob(context.Background(), tenantID, jobID)

		assert.NoError(t, err)
		require.Len(t, totals, 2)
		assert.Equal(t, budget.CostKindMaterial, totals[0].Kind)
		assert.True(t, totals[0].Total.Equal(decimal.NewFromInt(1750)))
		assert.Equal(t, budget.CostKindLabor, totals[1].Kind)
		assert.True(t, totals[1].Total.Equal(decimal.NewFromInt(650)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCostEventRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements CostEventRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockCostEventRepository(t)
		defer mockDB.Close()

		var _ budget.CostEventRepository = repo
	})
}
