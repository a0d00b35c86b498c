package service

import (
	"context"
	"fmt"
	"io"

	"scenario-server/internal/cache"
	"scenario-server/internal/models"
	"scenario-server/internal/repository"
	"scenario-server/internal/transfer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Сколько ошибок строк попадает в ответ импорта; остальное - счетчиком.
const maxReportedImportErrors = 5

// TransferService - экспорт и импорт сценариев с регионами через xlsx.
// Импорт строго атомарный: либо вся книга, либо ничего.
type TransferService struct {
	scenarioRepo repository.ScenarioRepository
	regionRepo   repository.RegionRepository
	db           repository.DBTX
	txBeginner   repository.TxBeginner
	listCache    *cache.ListCache
	logger       *zap.Logger
}

func NewTransferService(
	scenarioRepo repository.ScenarioRepository,
	regionRepo repository.RegionRepository,
	db repository.DBTX,
	txBeginner repository.TxBeginner,
	listCache *cache.ListCache,
	logger *zap.Logger,
) *TransferService {
	return &TransferService{
		scenarioRepo: scenarioRepo,
		regionRepo:   regionRepo,
		db:           db,
		txBeginner:   txBeginner,
		listCache:    listCache,
		logger:       logger.Named("TransferService"),
	}
}

// Export пишет в w книгу со всеми сценариями и регионами пользователя.
// Область выгрузки определяется только токеном, чужие данные не попадают.
func (s *TransferService) Export(ctx context.Context, userID uuid.UUID, w io.Writer) error {
	scenarios, err := s.scenarioRepo.ListByUserID(ctx, s.db, userID)
	if err != nil {
		return err
	}
	var regions []models.Region
	for i := range scenarios {
		scenarioRegions, err := s.regionRepo.ListByScenarioID(ctx, s.db, scenarios[i].ID)
		if err != nil {
			return err
		}
		regions = append(regions, scenarioRegions...)
	}
	s.logger.Info("Exporting workbook",
		zap.String("userID", userID.String()),
		zap.Int("scenarios", len(scenarios)),
		zap.Int("regions", len(regions)))
	return transfer.Encode(w, scenarios, regions)
}

// Import читает книгу из r и создает все ее сценарии и регионы за одну
// транзакцию. Любая ошибка валидации отменяет импорт целиком; в результат
// попадают первые пять ошибок и счетчик остальных.
func (s *TransferService) Import(ctx context.Context, userID uuid.UUID, r io.Reader) (*models.ImportResult, error) {
	wb, rowErrs, err := transfer.Decode(r)
	if err != nil {
		return nil, err
	}

	errs := make([]string, 0, len(rowErrs))
	for _, re := range rowErrs {
		errs = append(errs, re.Error())
	}

	// Валидация по тем же правилам, что и CRUD
	scenarioKeys := make(map[string]bool, len(wb.Scenarios))
	for i := range wb.Scenarios {
		row := &wb.Scenarios[i]
		if scenarioKeys[row.Key] {
			errs = append(errs, transfer.RowError{Sheet: transfer.SheetScenarios, Row: row.Row, Message: "duplicate id"}.Error())
			continue
		}
		scenarioKeys[row.Key] = true
		if row.Scenario.Status == "" {
			row.Scenario.Status = models.ScenarioStatusDraft
		}
		if verr := validateScenario(&row.Scenario); verr != nil {
			errs = append(errs, rowMessages(transfer.SheetScenarios, row.Row, verr)...)
		}
	}
	for i := range wb.Regions {
		row := &wb.Regions[i]
		if !scenarioKeys[row.ScenarioKey] {
			errs = append(errs, transfer.RowError{Sheet: transfer.SheetRegions, Row: row.Row, Message: "references unknown scenario id"}.Error())
			continue
		}
		if verr := validateRegion(&row.Region); verr != nil {
			errs = append(errs, rowMessages(transfer.SheetRegions, row.Row, verr)...)
		}
	}

	if len(errs) > 0 {
		result := &models.ImportResult{Success: false}
		if len(errs) > maxReportedImportErrors {
			result.Errors = errs[:maxReportedImportErrors]
			result.ErrorsOmitted = len(errs) - maxReportedImportErrors
		} else {
			result.Errors = errs
		}
		return result, nil
	}

	tx, err := s.txBeginner.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	idByKey := make(map[string]uuid.UUID, len(wb.Scenarios))
	for i := range wb.Scenarios {
		row := &wb.Scenarios[i]
		row.Scenario.UserID = userID
		if err := s.scenarioRepo.Create(ctx, tx, &row.Scenario); err != nil {
			return nil, err
		}
		idByKey[row.Key] = row.Scenario.ID
	}
	for i := range wb.Regions {
		row := &wb.Regions[i]
		row.Region.ScenarioID = idByKey[row.ScenarioKey]
		if err := s.regionRepo.Create(ctx, tx, &row.Region); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit import transaction: %w", err)
	}

	keys := make([]string, 0, len(idByKey)+1)
	keys = append(keys, scenariosCacheKey(userID))
	for _, id := range idByKey {
		keys = append(keys, regionsCacheKey(id))
	}
	s.listCache.Invalidate(ctx, keys...)

	s.logger.Info("Workbook imported",
		zap.String("userID", userID.String()),
		zap.Int("scenarios", len(wb.Scenarios)),
		zap.Int("regions", len(wb.Regions)))

	return &models.ImportResult{
		Success: true,
		Imported: models.ImportCounts{
			Scenarios: len(wb.Scenarios),
			Regions:   len(wb.Regions),
		},
	}, nil
}

// rowMessages разворачивает ошибку валидации в сообщения с привязкой к строке.
func rowMessages(sheet string, row int, err error) []string {
	verr, ok := models.AsValidationError(err)
	if !ok {
		return []string{transfer.RowError{Sheet: sheet, Row: row, Message: err.Error()}.Error()}
	}
	out := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, transfer.RowError{Sheet: sheet, Row: row, Message: f.Field + " " + f.Message}.Error())
	}
	return out
}
