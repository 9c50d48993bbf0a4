// Package missions derives the weekly gamified challenges and keeps
// their progress in sync with fresh transactions.
package missions

import (
	"fmt"
	"time"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/summary"
)

// maxActive caps how many missions are generated per week.
const maxActive = 4

// missionWindow is the lifetime of every mission.
const missionWindow = 7 * 24 * time.Hour

// GenerateWeekly evaluates the candidate mission templates against the
// user's summary and returns at most 4 missions in fixed generation
// order. Every mission starts at now and ends exactly 7 days later.
func GenerateWeekly(s summary.FinanceSummary, transactions []models.Transaction, now time.Time) []models.Mission {
	var missions []models.Mission
	weekEnd := now.Add(missionWindow)

	base := func() models.Mission {
		return models.Mission{
			Progress:  0,
			Status:    models.MissionStatusActive,
			StartDate: now,
			EndDate:   weekEnd,
		}
	}

	// Delivery acima de 10% da renda.
	if s.PercentByCategory[models.CategoryDelivery] > 10 {
		m := base()
		m.ID = models.MissionReduceDelivery
		m.Title = "3 Dias Sem Delivery"
		m.Description = "Fique 3 dias consecutivos sem pedir delivery. Cozinhe em casa!"
		m.Type = models.MissionTypeReduction
		m.TargetValue = 3
		m.Category = models.CategoryDelivery
		missions = append(missions, m)
	}

	// Sempre presente: economizar 5% da renda ou R$ 50.
	savingsGoal := s.IncomeMonth * 0.05
	if savingsGoal < 50 {
		savingsGoal = 50
	}
	saveMission := base()
	saveMission.ID = models.MissionSaveAmount
	saveMission.Title = fmt.Sprintf("Economizar R$ %.0f", savingsGoal)
	saveMission.Description = fmt.Sprintf("Poupe R$ %.0f esta semana reduzindo gastos supérfluos.", savingsGoal)
	saveMission.Type = models.MissionTypeSavings
	saveMission.TargetValue = savingsGoal
	missions = append(missions, saveMission)

	// Assinaturas acima de 8% da renda.
	if s.PercentByCategory[models.CategorySubscriptions] > 8 {
		m := base()
		m.ID = models.MissionReviewSubscriptions
		m.Title = "Revisar Assinaturas"
		m.Description = "Cancele pelo menos 2 assinaturas que você não usa regularmente."
		m.Type = models.MissionTypeReview
		m.TargetValue = 2
		m.Category = models.CategorySubscriptions
		missions = append(missions, m)
	}

	// Pouco registro de transações no mês.
	if s.TransactionCount < 10 {
		m := base()
		m.ID = models.MissionTrackExpenses
		m.Title = "Registrar Todos os Gastos"
		m.Description = "Registre pelo menos 7 transações esta semana. Controle é poder!"
		m.Type = models.MissionTypeTracking
		m.TargetValue = 7
		missions = append(missions, m)
	}

	// Lazer acima de 25% da renda: reduzir 20% do gasto atual.
	if s.PercentByCategory[models.CategoryLeisure] > 25 {
		targetReduction := s.ExpenseByCategory[models.CategoryLeisure] * 0.2
		m := base()
		m.ID = models.MissionReduceLeisure
		m.Title = "Reduzir Lazer em 20%"
		m.Description = fmt.Sprintf("Economize R$ %.0f em lazer esta semana.", targetReduction)
		m.Type = models.MissionTypeReduction
		m.TargetValue = targetReduction
		m.Category = models.CategoryLeisure
		missions = append(missions, m)
	}

	// Apps de transporte acima de 12% da renda.
	if s.PercentByCategory[models.CategoryRideHailing] > 12 {
		m := base()
		m.ID = models.MissionPublicTransport
		m.Title = "5 Dias de Transporte Público"
		m.Description = "Use transporte público ou carona por 5 dias esta semana."
		m.Type = models.MissionTypeReduction
		m.TargetValue = 5
		m.Category = models.CategoryRideHailing
		missions = append(missions, m)
	}

	// Três ou mais gastos noturnos no histórico.
	night := 0
	for _, t := range transactions {
		if t.Type == models.TransactionTypeExpense && summary.IsNightHour(t.Date.Hour()) {
			night++
		}
	}
	if night >= 3 {
		m := base()
		m.ID = models.MissionNoImpulse
		m.Title = "Zero Compras Noturnas"
		m.Description = "Evite compras entre 22h e 2h por 7 dias. Regra das 24 horas!"
		m.Type = models.MissionTypeReduction
		m.TargetValue = 7
		missions = append(missions, m)
	}

	if len(missions) > maxActive {
		missions = missions[:maxActive]
	}
	return missions
}
