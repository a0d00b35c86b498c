package service

import "scenario-server/internal/models"

// Таблицы фаз по режимам. Времена - ориентиры для четырехчасовой сессии,
// советы считаются от накопленных минут относительно плана.

type pacingPhase struct {
	name    string
	minutes int
}

var roadPhases = []pacingPhase{
	{"departure", 30},
	{"travel", 75},
	{"encounter", 60},
	{"climax", 45},
	{"resolution", 30},
}

var cityPhases = []pacingPhase{
	{"arrival", 20},
	{"investigation", 70},
	{"complication", 50},
	{"confrontation", 60},
	{"aftermath", 40},
}

func phasesFor(mode models.CreatorMode) []pacingPhase {
	if mode == models.CreatorModeCity {
		return cityPhases
	}
	return roadPhases
}

// computePacing сравнивает фактическое время с плановой границей текущей
// фазы. Индекс фазы за пределами таблицы прижимается к последней фазе.
func computePacing(session *models.Session) models.PacingAdvice {
	phases := phasesFor(session.CreatorMode)

	idx := session.CurrentPhase
	if idx < 0 {
		idx = 0
	}
	if idx >= len(phases) {
		idx = len(phases) - 1
	}

	// Плановое время - сумма всех фаз до текущей включительно.
	expected := 0
	for i := 0; i <= idx; i++ {
		expected += phases[i].minutes
	}

	advice := models.PacingAdvice{
		Phase:           phases[idx].name,
		PhaseIndex:      idx,
		ElapsedMinutes:  session.Duration,
		ExpectedMinutes: expected,
	}

	// Допуск +-15 минут, чтобы совет не дергался на границе.
	const slack = 15
	switch {
	case session.Duration > expected+slack:
		advice.Advice = "behind schedule: consider tightening the current phase or cutting an optional scene"
	case session.Duration < expected-slack && idx > 0:
		advice.Advice = "ahead of schedule: there is room for an extra scene or deeper roleplay"
	default:
		advice.Advice = "on pace: keep the current rhythm"
	}
	return advice
}
