package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
)

func newReport(companyID, sectorID string, ts time.Time, health string) *entities.DiagnosticReport {
	return entities.NewDiagnosticReport(uuid.NewString(), risk.Report{
		CompanyID:       companyID,
		SectorID:        sectorID,
		Timestamp:       ts,
		Author:          "RT",
		HealthEffects:   health,
		Sources:         map[int]string{0: "Metas"},
		HealthByTheme:   map[int]string{0: health},
		MeasuresByTheme: map[int]string{},
	})
}

func TestReportRepository_AppendKeepsSingleMain(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository(newTestDB(t))
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, newReport("c1", "s1", base, "primeiro")))
	require.NoError(t, repo.Append(ctx, newReport("c1", "s1", base.Add(time.Hour), "segundo")))
	require.NoError(t, repo.Append(ctx, newReport("c1", "s2", base, "outro setor")))

	current, err := repo.FindCurrent(ctx, "c1", "s1")
	require.NoError(t, err)
	assert.Equal(t, "segundo", current.AgravosSaude)
	assert.True(t, current.IsMain)
	assert.Equal(t, map[int]string{0: "Metas"}, current.FontesGeradoras.Data())

	history, err := repo.History(ctx, "c1", "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "segundo", history[0].AgravosSaude)
	assert.True(t, history[0].IsMain)
	assert.False(t, history[1].IsMain)

	// O outro setor continua com sua versão vigente
	other, err := repo.FindCurrent(ctx, "c1", "s2")
	require.NoError(t, err)
	assert.Equal(t, "outro setor", other.AgravosSaude)

	all, err := repo.History(ctx, "c1", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReportRepository_FindCurrentNotFound(t *testing.T) {
	repo := NewReportRepository(newTestDB(t))

	_, err := repo.FindCurrent(context.Background(), "c1", "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}
