package transfer_test

import (
	"bytes"
	"testing"

	"scenario-server/internal/models"
	"scenario-server/internal/transfer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbook_RoundTrip(t *testing.T) {
	scenarioID := uuid.New()
	scenarios := []models.Scenario{{
		ID:                 scenarioID,
		Title:              "The Ashfall Basin",
		MainIdea:           "A water war is brewing between the basin factions.",
		WorldContext:       "Post-collapse desert basin.",
		PoliticalSituation: "Uneasy truce held by the Brokers' Table.",
		KeyThemes:          []string{"scarcity", "loyalty", "faith"},
		Status:             models.ScenarioStatusActive,
	}}
	regions := []models.Region{{
		ID:                 uuid.New(),
		ScenarioID:         scenarioID,
		Name:               "Crossroads Market",
		Type:               models.RegionTypeTradeHub,
		Description:        "Neutral ground for every caravan.",
		ControllingFaction: "Dustwalker Caravans",
		Population:         5600,
		Resources:          []string{"trade goods", "information"},
		ThreatLevel:        2,
		PoliticalStance:    models.StanceNeutral,
		TradeRoutes:        []string{"Glass Road", "Eastern Pass"},
	}}

	var buf bytes.Buffer
	require.NoError(t, transfer.Encode(&buf, scenarios, regions))

	wb, rowErrs, err := transfer.Decode(&buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)

	require.Len(t, wb.Scenarios, 1)
	got := wb.Scenarios[0]
	assert.Equal(t, scenarioID.String(), got.Key)
	assert.Equal(t, scenarios[0].Title, got.Scenario.Title)
	assert.Equal(t, scenarios[0].MainIdea, got.Scenario.MainIdea)
	assert.Equal(t, scenarios[0].WorldContext, got.Scenario.WorldContext)
	assert.Equal(t, scenarios[0].PoliticalSituation, got.Scenario.PoliticalSituation)
	assert.Equal(t, scenarios[0].KeyThemes, got.Scenario.KeyThemes)
	assert.Equal(t, models.ScenarioStatusActive, got.Scenario.Status)

	require.Len(t, wb.Regions, 1)
	gotRegion := wb.Regions[0]
	assert.Equal(t, scenarioID.String(), gotRegion.ScenarioKey)
	assert.Equal(t, regions[0].Name, gotRegion.Region.Name)
	assert.Equal(t, regions[0].Type, gotRegion.Region.Type)
	assert.Equal(t, regions[0].Population, gotRegion.Region.Population)
	assert.Equal(t, regions[0].Resources, gotRegion.Region.Resources)
	assert.Equal(t, regions[0].ThreatLevel, gotRegion.Region.ThreatLevel)
	assert.Equal(t, regions[0].PoliticalStance, gotRegion.Region.PoliticalStance)
	assert.Equal(t, regions[0].TradeRoutes, gotRegion.Region.TradeRoutes)
}

func TestWorkbook_DecodeMalformed(t *testing.T) {
	t.Run("Not an xlsx file", func(t *testing.T) {
		_, _, err := transfer.Decode(bytes.NewBufferString("plain text"))
		assert.ErrorIs(t, err, models.ErrWorkbookMalformed)
	})

	t.Run("Missing scenarios sheet", func(t *testing.T) {
		f := excelize.NewFile()
		defer f.Close()
		var buf bytes.Buffer
		require.NoError(t, f.Write(&buf))

		_, _, err := transfer.Decode(&buf)
		assert.ErrorIs(t, err, models.ErrWorkbookMalformed)
	})
}

// buildWorkbook собирает книгу из сырых строк для проверки построчных ошибок.
func buildWorkbook(t *testing.T, scenarioRows, regionRows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", transfer.SheetScenarios))
	_, err := f.NewSheet(transfer.SheetRegions)
	require.NoError(t, err)

	for i, row := range scenarioRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(transfer.SheetScenarios, cell, &row))
	}
	for i, row := range regionRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(transfer.SheetRegions, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestWorkbook_DecodeRowErrors(t *testing.T) {
	scenarioHeader := []interface{}{"ID", "Title", "Main Idea", "World Context", "Political Situation", "Key Themes", "Status"}
	regionHeader := []interface{}{"ID", "Scenario ID", "Name", "Type", "Description", "Controlling Faction",
		"Population", "Resources", "Threat Level", "Political Stance", "Trade Routes"}

	t.Run("Missing ids are reported per row", func(t *testing.T) {
		buf := buildWorkbook(t,
			[][]interface{}{
				scenarioHeader,
				{"", "No id here", "Long enough main idea.", "", "", "", "draft"},
				{"s2", "Has id", "Long enough main idea.", "", "", "", "draft"},
			},
			[][]interface{}{
				regionHeader,
				{"r1", "", "Orphan", "settlement", "", "", "10", "", "1", "neutral", ""},
			},
		)

		wb, rowErrs, err := transfer.Decode(buf)
		require.NoError(t, err)

		require.Len(t, rowErrs, 2)
		assert.Equal(t, "Scenarios row 2: missing id", rowErrs[0].Error())
		assert.Equal(t, "Regions row 2: missing scenario id", rowErrs[1].Error())
		// Валидные строки продолжают парситься
		require.Len(t, wb.Scenarios, 1)
		assert.Equal(t, "s2", wb.Scenarios[0].Key)
		assert.Empty(t, wb.Regions)
	})

	t.Run("Non-integer numeric cells are reported", func(t *testing.T) {
		buf := buildWorkbook(t,
			[][]interface{}{scenarioHeader},
			[][]interface{}{
				regionHeader,
				{"r1", "s1", "Bad population", "settlement", "", "", "many", "", "1", "neutral", ""},
				{"r2", "s1", "Bad threat", "settlement", "", "", "10", "", "high", "neutral", ""},
			},
		)

		_, rowErrs, err := transfer.Decode(buf)
		require.NoError(t, err)

		require.Len(t, rowErrs, 2)
		assert.Contains(t, rowErrs[0].Error(), "population must be an integer")
		assert.Contains(t, rowErrs[1].Error(), "threat level must be an integer")
	})

	t.Run("Blank rows are skipped", func(t *testing.T) {
		buf := buildWorkbook(t,
			[][]interface{}{
				scenarioHeader,
				{"", "", "", "", "", "", ""},
				{"s1", "Title", "Long enough main idea.", "", "", "", "draft"},
			},
			[][]interface{}{regionHeader},
		)

		wb, rowErrs, err := transfer.Decode(buf)
		require.NoError(t, err)
		assert.Empty(t, rowErrs)
		require.Len(t, wb.Scenarios, 1)
		assert.Equal(t, 3, wb.Scenarios[0].Row)
	})
}
