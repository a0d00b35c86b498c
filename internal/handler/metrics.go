package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счетчики бизнес-операций. HTTP-метрики (латентность, статусы) снимает
// gin-prometheus, здесь только то, что интересно поверх них.
var (
	scenariosCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scenarios_created_total",
		Help: "Сколько сценариев было создано.",
	})
	regionsSeededTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "regions_seeded_total",
		Help: "Сколько раз выполнялся сидинг дефолтных регионов.",
	})
	workbookTransfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workbook_transfers_total",
		Help: "Импорты и экспорты книг, по направлению и исходу.",
	}, []string{"direction", "outcome"})
)
