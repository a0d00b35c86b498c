package transfer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"scenario-server/internal/models"

	"github.com/xuri/excelize/v2"
)

// Кодек xlsx-книги с двумя листами: "Scenarios" и "Regions".
// Порядок колонок фиксированный, первая строка - заголовки.
// Списки (темы, ресурсы, маршруты) сериализуются через "|".

const (
	SheetScenarios = "Scenarios"
	SheetRegions   = "Regions"

	listSeparator = "|"
)

var scenarioHeader = []string{
	"ID", "Title", "Main Idea", "World Context", "Political Situation", "Key Themes", "Status",
}

var regionHeader = []string{
	"ID", "Scenario ID", "Name", "Type", "Description", "Controlling Faction",
	"Population", "Resources", "Threat Level", "Political Stance", "Trade Routes",
}

// ScenarioRow - строка листа Scenarios. Key - идентификатор строки внутри
// книги; при импорте он связывает регионы со сценарием и не обязан быть UUID.
type ScenarioRow struct {
	Key      string
	Row      int
	Scenario models.Scenario
}

// RegionRow - строка листа Regions. ScenarioKey ссылается на Key сценария.
type RegionRow struct {
	ScenarioKey string
	Row         int
	Region      models.Region
}

// RowError - ошибка конкретной строки книги.
type RowError struct {
	Sheet   string
	Row     int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s row %d: %s", e.Sheet, e.Row, e.Message)
}

// Workbook - распарсенное содержимое книги.
type Workbook struct {
	Scenarios []ScenarioRow
	Regions   []RegionRow
}

func joinList(items []string) string {
	return strings.Join(items, listSeparator)
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, listSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Encode пишет книгу в w. Сценарии и регионы идут в порядке входных срезов,
// регионы ссылаются на сценарии по их UUID.
func Encode(w io.Writer, scenarios []models.Scenario, regions []models.Region) error {
	f := excelize.NewFile()
	defer f.Close()

	// excelize создает дефолтный лист Sheet1, переименовываем его
	if err := f.SetSheetName("Sheet1", SheetScenarios); err != nil {
		return fmt.Errorf("failed to set up scenarios sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetRegions); err != nil {
		return fmt.Errorf("failed to set up regions sheet: %w", err)
	}

	if err := writeRow(f, SheetScenarios, 1, scenarioHeader); err != nil {
		return err
	}
	for i := range scenarios {
		s := &scenarios[i]
		row := []string{
			s.ID.String(),
			s.Title,
			s.MainIdea,
			s.WorldContext,
			s.PoliticalSituation,
			joinList(s.KeyThemes),
			string(s.Status),
		}
		if err := writeRow(f, SheetScenarios, i+2, row); err != nil {
			return err
		}
	}

	if err := writeRow(f, SheetRegions, 1, regionHeader); err != nil {
		return err
	}
	for i := range regions {
		r := &regions[i]
		row := []string{
			r.ID.String(),
			r.ScenarioID.String(),
			r.Name,
			string(r.Type),
			r.Description,
			r.ControllingFaction,
			strconv.Itoa(r.Population),
			joinList(r.Resources),
			strconv.Itoa(r.ThreatLevel),
			string(r.PoliticalStance),
			joinList(r.TradeRoutes),
		}
		if err := writeRow(f, SheetRegions, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

// Decode читает книгу из r. Структурные проблемы книги (нет листа, нечитаемый
// файл) возвращаются как error; проблемы отдельных строк копятся в []RowError,
// при этом остальные строки продолжают парситься.
func Decode(r io.Reader) (*Workbook, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", models.ErrWorkbookMalformed, err)
	}
	defer f.Close()

	wb := &Workbook{}
	var rowErrs []RowError

	scenarioRows, err := f.GetRows(SheetScenarios)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: missing sheet %q", models.ErrWorkbookMalformed, SheetScenarios)
	}
	for i, cells := range scenarioRows {
		if i == 0 {
			continue // заголовок
		}
		rowNum := i + 1
		if rowEmpty(cells) {
			continue
		}
		get := cellGetter(cells)
		key := strings.TrimSpace(get(0))
		if key == "" {
			rowErrs = append(rowErrs, RowError{SheetScenarios, rowNum, "missing id"})
			continue
		}
		wb.Scenarios = append(wb.Scenarios, ScenarioRow{
			Key: key,
			Row: rowNum,
			Scenario: models.Scenario{
				Title:              get(1),
				MainIdea:           get(2),
				WorldContext:       get(3),
				PoliticalSituation: get(4),
				KeyThemes:          splitList(get(5)),
				Status:             models.ScenarioStatus(strings.TrimSpace(get(6))),
			},
		})
	}

	regionRows, err := f.GetRows(SheetRegions)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: missing sheet %q", models.ErrWorkbookMalformed, SheetRegions)
	}
	for i, cells := range regionRows {
		if i == 0 {
			continue
		}
		rowNum := i + 1
		if rowEmpty(cells) {
			continue
		}
		get := cellGetter(cells)
		scenarioKey := strings.TrimSpace(get(1))
		if scenarioKey == "" {
			rowErrs = append(rowErrs, RowError{SheetRegions, rowNum, "missing scenario id"})
			continue
		}
		population, err := parseIntCell(get(6))
		if err != nil {
			rowErrs = append(rowErrs, RowError{SheetRegions, rowNum, "population must be an integer"})
			continue
		}
		threat, err := parseIntCell(get(8))
		if err != nil {
			rowErrs = append(rowErrs, RowError{SheetRegions, rowNum, "threat level must be an integer"})
			continue
		}
		wb.Regions = append(wb.Regions, RegionRow{
			ScenarioKey: scenarioKey,
			Row:         rowNum,
			Region: models.Region{
				Name:               get(2),
				Type:               models.RegionType(strings.TrimSpace(get(3))),
				Description:        get(4),
				ControllingFaction: get(5),
				Population:         population,
				Resources:          splitList(get(7)),
				ThreatLevel:        threat,
				PoliticalStance:    models.PoliticalStance(strings.TrimSpace(get(9))),
				TradeRoutes:        splitList(get(10)),
			},
		})
	}

	return wb, rowErrs, nil
}

// cellGetter прячет рваные строки xlsx: GetRows обрезает пустой хвост.
func cellGetter(cells []string) func(int) string {
	return func(idx int) string {
		if idx < len(cells) {
			return cells[idx]
		}
		return ""
	}
}

func rowEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseIntCell(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	return strconv.Atoi(trimmed)
}
