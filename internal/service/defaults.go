package service

import "scenario-server/internal/models"

// defaultRegions - фиксированный стартовый набор из десяти регионов.
// Контент статический: это удобный дефолт для нового сценария, а не генерация.
func defaultRegions() []models.Region {
	return []models.Region{
		{
			Name:               "Ashfall City",
			Type:               models.RegionTypeCity,
			Description:        "The last walled metropolis of the basin, built around a pre-collapse water purification plant.",
			ControllingFaction: "Civic Concord",
			Population:         48000,
			Resources:          []string{"clean water", "manufactured goods", "archives"},
			ThreatLevel:        2,
			PoliticalStance:    models.StanceNeutral,
			TradeRoutes:        []string{"Glass Road", "Northern Causeway"},
		},
		{
			Name:               "Drywell",
			Type:               models.RegionTypeSettlement,
			Description:        "A farming settlement clustered around three deep wells; its harvest feeds half the basin.",
			ControllingFaction: "Wellkeepers",
			Population:         3200,
			Resources:          []string{"grain", "livestock", "well water"},
			ThreatLevel:        1,
			PoliticalStance:    models.StanceFriendly,
			TradeRoutes:        []string{"Glass Road"},
		},
		{
			Name:               "The Glass Flats",
			Type:               models.RegionTypeWasteland,
			Description:        "Fused sand plains left by the old war. Scavengers cross it for salvage; few cross it twice.",
			ControllingFaction: "",
			Population:         150,
			Resources:          []string{"salvage", "rare alloys"},
			ThreatLevel:        5,
			PoliticalStance:    models.StanceHostile,
			TradeRoutes:        []string{},
		},
		{
			Name:               "Bastion Rock",
			Type:               models.RegionTypeFortress,
			Description:        "A mountain garrison controlling the only pass to the eastern valleys.",
			ControllingFaction: "Iron Covenant",
			Population:         1800,
			Resources:          []string{"ordnance", "fuel"},
			ThreatLevel:        4,
			PoliticalStance:    models.StanceHostile,
			TradeRoutes:        []string{"Eastern Pass"},
		},
		{
			Name:               "Crossroads Market",
			Type:               models.RegionTypeTradeHub,
			Description:        "Neutral ground where every caravan in the basin eventually stops. Disputes are settled by the Brokers' Table.",
			ControllingFaction: "Dustwalker Caravans",
			Population:         5600,
			Resources:          []string{"trade goods", "information", "mercenaries"},
			ThreatLevel:        2,
			PoliticalStance:    models.StanceNeutral,
			TradeRoutes:        []string{"Glass Road", "Eastern Pass", "Southern Spur"},
		},
		{
			Name:               "Furnace Works",
			Type:               models.RegionTypeIndustrial,
			Description:        "Smelters and machine shops running on reclaimed coal. The Works sells to anyone who pays in water chits.",
			ControllingFaction: "Smeltmasters Guild",
			Population:         7400,
			Resources:          []string{"steel", "tools", "coal"},
			ThreatLevel:        3,
			PoliticalStance:    models.StanceNeutral,
			TradeRoutes:        []string{"Northern Causeway"},
		},
		{
			Name:               "Saltmarsh Landing",
			Type:               models.RegionTypeSettlement,
			Description:        "Fisherfolk stilts over the brine marsh. Isolated, superstitious, and fiercely loyal to their own.",
			ControllingFaction: "Marsh Families",
			Population:         900,
			Resources:          []string{"fish", "salt", "reed craft"},
			ThreatLevel:        2,
			PoliticalStance:    models.StanceFriendly,
			TradeRoutes:        []string{"Southern Spur"},
		},
		{
			Name:               "The Sunken Library",
			Type:               models.RegionTypeWasteland,
			Description:        "A flooded pre-collapse archive. Scholars pay caravan escorts triple to reach it.",
			ControllingFaction: "Order of the Page",
			Population:         60,
			Resources:          []string{"archives", "relics"},
			ThreatLevel:        4,
			PoliticalStance:    models.StanceNeutral,
			TradeRoutes:        []string{},
		},
		{
			Name:               "Verdant Hold",
			Type:               models.RegionTypeFortress,
			Description:        "A terraced greenhouse-fortress. Its seed vault makes it the most courted power in the basin.",
			ControllingFaction: "Stewards of the Vault",
			Population:         2600,
			Resources:          []string{"seeds", "produce", "medicine"},
			ThreatLevel:        3,
			PoliticalStance:    models.StanceAllied,
			TradeRoutes:        []string{"Northern Causeway"},
		},
		{
			Name:               "Pilgrim's Rest",
			Type:               models.RegionTypeCity,
			Description:        "A temple city on the old highway, grown rich on tithes and toll gates.",
			ControllingFaction: "Keepers of the Flame",
			Population:         15000,
			Resources:          []string{"tolls", "textiles", "scripture"},
			ThreatLevel:        2,
			PoliticalStance:    models.StanceFriendly,
			TradeRoutes:        []string{"Glass Road", "Southern Spur"},
		},
	}
}
