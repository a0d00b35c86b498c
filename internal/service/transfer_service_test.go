package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"scenario-server/internal/models"
	"scenario-server/internal/repository/mocks"
	"scenario-server/internal/service"
	"scenario-server/internal/transfer"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type txBeginnerMock struct {
	mock.Mock
}

func (m *txBeginnerMock) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func encodeWorkbook(t *testing.T, scenarios []models.Scenario, regions []models.Region) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, transfer.Encode(&buf, scenarios, regions))
	return &buf
}

func TestTransferService_Export(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	scenarioRepo := new(mocks.ScenarioRepository)
	regionRepo := new(mocks.RegionRepository)
	svc := service.NewTransferService(scenarioRepo, regionRepo, nil, new(txBeginnerMock), nil, zap.NewNop())

	scenarioID := uuid.New()
	scenarios := []models.Scenario{{
		ID:        scenarioID,
		UserID:    userID,
		Title:     "The Ashfall Basin",
		MainIdea:  "A water war is brewing between the basin factions.",
		KeyThemes: []string{"scarcity", "loyalty"},
		Status:    models.ScenarioStatusActive,
	}}
	regions := []models.Region{{
		ID:              uuid.New(),
		ScenarioID:      scenarioID,
		Name:            "Drywell",
		Type:            models.RegionTypeSettlement,
		Population:      3200,
		Resources:       []string{"grain", "well water"},
		ThreatLevel:     1,
		PoliticalStance: models.StanceFriendly,
	}}

	scenarioRepo.On("ListByUserID", mock.Anything, mock.Anything, userID).Return(scenarios, nil).Once()
	regionRepo.On("ListByScenarioID", mock.Anything, mock.Anything, scenarioID).Return(regions, nil).Once()

	var buf bytes.Buffer
	err := svc.Export(ctx, userID, &buf)
	require.NoError(t, err)

	// Книга должна декодироваться обратно без потерь по смысловым полям
	wb, rowErrs, err := transfer.Decode(&buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, wb.Scenarios, 1)
	require.Len(t, wb.Regions, 1)

	assert.Equal(t, scenarioID.String(), wb.Scenarios[0].Key)
	assert.Equal(t, "The Ashfall Basin", wb.Scenarios[0].Scenario.Title)
	assert.Equal(t, []string{"scarcity", "loyalty"}, wb.Scenarios[0].Scenario.KeyThemes)
	assert.Equal(t, scenarioID.String(), wb.Regions[0].ScenarioKey)
	assert.Equal(t, 3200, wb.Regions[0].Region.Population)
	assert.Equal(t, models.StanceFriendly, wb.Regions[0].Region.PoliticalStance)
	scenarioRepo.AssertExpectations(t)
	regionRepo.AssertExpectations(t)
}

func TestTransferService_Import(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newService := func() (*service.TransferService, *mocks.ScenarioRepository, *mocks.RegionRepository, *txBeginnerMock) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		txBeginner := new(txBeginnerMock)
		svc := service.NewTransferService(scenarioRepo, regionRepo, nil, txBeginner, nil, zap.NewNop())
		return svc, scenarioRepo, regionRepo, txBeginner
	}

	t.Run("Invalid rows reject the whole workbook", func(t *testing.T) {
		svc, scenarioRepo, _, txBeginner := newService()

		// Шесть сценариев с короткой идеей: шесть ошибок, в ответ попадут пять
		scenarios := make([]models.Scenario, 0, 6)
		for i := 0; i < 6; i++ {
			scenarios = append(scenarios, models.Scenario{
				ID:       uuid.New(),
				Title:    fmt.Sprintf("Scenario %d", i+1),
				MainIdea: "short",
				Status:   models.ScenarioStatusDraft,
			})
		}
		buf := encodeWorkbook(t, scenarios, nil)

		result, err := svc.Import(ctx, userID, buf)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.Success)
		assert.Len(t, result.Errors, 5)
		assert.Equal(t, 1, result.ErrorsOmitted)
		assert.Contains(t, result.Errors[0], "mainIdea must be at least 10 characters")
		assert.Zero(t, result.Imported.Scenarios)
		// Ничего не должно дойти до базы
		txBeginner.AssertNotCalled(t, "Begin", mock.Anything)
		scenarioRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Region referencing unknown scenario rejects the import", func(t *testing.T) {
		svc, _, regionRepo, txBeginner := newService()

		scenarios := []models.Scenario{{
			ID:       uuid.New(),
			Title:    "Valid scenario",
			MainIdea: "A long enough main idea for validation.",
			Status:   models.ScenarioStatusDraft,
		}}
		regions := []models.Region{{
			ID:              uuid.New(),
			ScenarioID:      uuid.New(), // ключа нет на листе Scenarios
			Name:            "Orphan region",
			Type:            models.RegionTypeSettlement,
			ThreatLevel:     2,
			PoliticalStance: models.StanceNeutral,
		}}
		buf := encodeWorkbook(t, scenarios, regions)

		result, err := svc.Import(ctx, userID, buf)

		require.NoError(t, err)
		assert.False(t, result.Success)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "references unknown scenario id")
		assert.Zero(t, result.ErrorsOmitted)
		txBeginner.AssertNotCalled(t, "Begin", mock.Anything)
		regionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Duplicate scenario ids are rejected", func(t *testing.T) {
		svc, _, _, txBeginner := newService()

		dupID := uuid.New()
		scenarios := []models.Scenario{
			{ID: dupID, Title: "First", MainIdea: "A long enough main idea.", Status: models.ScenarioStatusDraft},
			{ID: dupID, Title: "Second", MainIdea: "Another long enough idea.", Status: models.ScenarioStatusDraft},
		}
		buf := encodeWorkbook(t, scenarios, nil)

		result, err := svc.Import(ctx, userID, buf)

		require.NoError(t, err)
		assert.False(t, result.Success)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "duplicate id")
		txBeginner.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Unreadable file is a malformed workbook", func(t *testing.T) {
		svc, _, _, _ := newService()

		result, err := svc.Import(ctx, userID, bytes.NewBufferString("definitely not an xlsx"))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, models.ErrWorkbookMalformed)
	})
}
