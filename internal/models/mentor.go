package models

import "time"

// Severity classifies advisory messages produced by the rule engine.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarn    Severity = "warn"
	SeverityAlert   Severity = "alert"
	SeveritySuccess Severity = "success"
)

// Level is the coarse low/medium/high scale used by tips and
// detected spending patterns.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// MentorMessage is a rendered advisory produced by a firing rule.
// Messages are derived fresh on every evaluation and never persisted.
type MentorMessage struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Severity Severity `json:"severity"`
	Icon     string   `json:"icon,omitempty"`
}

// MissionType groups missions by the behavior they target.
type MissionType string

const (
	MissionTypeSavings   MissionType = "savings"
	MissionTypeReduction MissionType = "reduction"
	MissionTypeTracking  MissionType = "tracking"
	MissionTypeReview    MissionType = "review"
)

// MissionStatus is the lifecycle state of a mission. Completed and
// failed are terminal.
type MissionStatus string

const (
	MissionStatusActive    MissionStatus = "active"
	MissionStatusCompleted MissionStatus = "completed"
	MissionStatusFailed    MissionStatus = "failed"
)

// Known mission identifiers. The catalog is fixed; no mission is
// invented at runtime.
const (
	MissionReduceDelivery      = "reduce-delivery"
	MissionSaveAmount          = "save-amount"
	MissionReviewSubscriptions = "review-subscriptions"
	MissionTrackExpenses       = "track-expenses"
	MissionReduceLeisure       = "reduce-leisure"
	MissionPublicTransport     = "public-transport"
	MissionNoImpulse           = "no-impulse"
)

// MissionIDs lists every known mission identifier.
var MissionIDs = []string{
	MissionReduceDelivery,
	MissionSaveAmount,
	MissionReviewSubscriptions,
	MissionTrackExpenses,
	MissionReduceLeisure,
	MissionPublicTransport,
	MissionNoImpulse,
}

// Mission is a 7-day gamified micro-goal tied to spending behavior.
// Missions are persisted as JSON through the key-value store, not as rows.
type Mission struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Type         MissionType   `json:"type"`
	TargetValue  float64       `json:"target_value"`
	CurrentValue float64       `json:"current_value"`
	Progress     int           `json:"progress"`
	Status       MissionStatus `json:"status"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	Category     Category      `json:"category,omitempty"`
}

// Tip is a short piece of advice surfaced on the dashboard.
type Tip struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Severity Level  `json:"severity"`
}

// MentorConfig holds user-tunable mentor preferences persisted in the
// key-value store.
type MentorConfig struct {
	SavingsGoalPercent   float64  `json:"savings_goal_percent"`
	EnabledRuleIDs       []string `json:"enabled_rule_ids"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
}
