package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/mentor"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/models"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/services"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/storage"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/testutil"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/validator"
)

var frozenNow = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

// setupRouter wires the full handler stack over an in-memory database.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Register()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	transactionService := services.NewTransactionService(db)
	mentorService := mentor.NewService(storage.NewMemory(),
		mentor.WithClock(func() time.Time { return frozenNow }))

	transactionHandler := NewTransactionHandler(transactionService)
	mentorHandler := NewMentorHandler(mentorService, transactionService)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/transactions", transactionHandler.CreateTransaction)
	v1.GET("/transactions", transactionHandler.GetTransactions)
	v1.GET("/transactions/:id", transactionHandler.GetTransactionByID)
	v1.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	v1.GET("/summary", mentorHandler.GetSummary)
	v1.GET("/mentor/feedback", mentorHandler.GetFeedback)
	v1.GET("/mentor/tips", mentorHandler.GetTips)
	v1.POST("/mentor/answer", mentorHandler.PostQuickAnswer)
	v1.GET("/mentor/missions", mentorHandler.GetMissions)
	v1.PUT("/mentor/missions/:id", mentorHandler.UpdateMission)
	v1.GET("/mentor/rules", mentorHandler.GetRules)
	v1.PUT("/mentor/rules", mentorHandler.SetRules)
	return router, db
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func TestCreateTransactionEndpoint(t *testing.T) {
	t.Run("creates_valid_transaction", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doRequest(t, router, http.MethodPost, "/api/v1/transactions",
			`{"description":"Almoço","amount":45.9,"category":"Restaurantes","type":"EXPENSE"}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var created map[string]any
		decodeBody(t, w, &created)
		if created["id"] == "" {
			t.Error("expected a generated id")
		}
	})

	t.Run("rejects_unknown_category", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doRequest(t, router, http.MethodPost, "/api/v1/transactions",
			`{"description":"x","amount":10,"category":"Cripto","type":"EXPENSE"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects_bad_date", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doRequest(t, router, http.MethodPost, "/api/v1/transactions",
			`{"description":"x","amount":10,"category":"Mercado","type":"EXPENSE","date":"ontem"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestTransactionLookupEndpoints(t *testing.T) {
	router, db := setupRouter(t)
	created := testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, 500)

	t.Run("get_by_id", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/transactions/"+created.ID, "")
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get_missing_returns_404", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/transactions/00000000-0000-0000-0000-000000000000", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		w := doRequest(t, router, http.MethodDelete, "/api/v1/transactions/"+created.ID, "")
		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", w.Code)
		}
	})
}

func TestMentorFeedbackEndpoint(t *testing.T) {
	t.Run("returns_stage_and_message", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doRequest(t, router, http.MethodGet, "/api/v1/mentor/feedback?name=Ana&goal=1000", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var fb struct {
			Stage   string `json:"stage"`
			Message string `json:"message"`
		}
		decodeBody(t, w, &fb)
		if fb.Stage != "iniciante" {
			t.Errorf("expected iniciante for an empty ledger, got %s", fb.Stage)
		}
		if !strings.Contains(fb.Message, "Ana") {
			t.Errorf("expected personalized message, got %q", fb.Message)
		}
	})

	t.Run("rejects_non_positive_goal", func(t *testing.T) {
		router, _ := setupRouter(t)

		for _, goal := range []string{"0", "-10", "abc"} {
			w := doRequest(t, router, http.MethodGet, "/api/v1/mentor/feedback?goal="+goal, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("goal %q: expected 400, got %d", goal, w.Code)
			}
		}
	})
}

func TestQuickAnswerEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("answers_purchase_question", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/mentor/answer",
			`{"question":"Posso comprar algo de R$ 300?"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var answer struct {
			Text    string   `json:"text"`
			Sources []string `json:"sources"`
		}
		decodeBody(t, w, &answer)
		if answer.Text == "" {
			t.Error("expected a non-empty answer")
		}
		if answer.Sources == nil {
			t.Error("expected sources to serialize as an empty array")
		}
	})

	t.Run("requires_question", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/mentor/answer", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestMissionEndpoints(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("lists_weekly_missions", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/mentor/missions", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var missions []map[string]any
		decodeBody(t, w, &missions)
		if len(missions) == 0 {
			t.Fatal("expected at least one mission")
		}
	})

	t.Run("manual_update_unknown_mission", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/api/v1/mentor/missions/not-a-mission",
			`{"current_value":1}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestRuleEndpoints(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("lists_full_catalog", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/mentor/rules", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var infos []RuleInfo
		decodeBody(t, w, &infos)
		if len(infos) != 26 {
			t.Errorf("expected 26 rules, got %d", len(infos))
		}
	})

	t.Run("narrows_selection", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/api/v1/mentor/rules",
			`{"enabled_ids":["deficit-critical"]}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
		}

		w = doRequest(t, router, http.MethodGet, "/api/v1/mentor/rules", "")
		var infos []RuleInfo
		decodeBody(t, w, &infos)

		enabled := 0
		for _, info := range infos {
			if info.Enabled {
				enabled++
			}
		}
		if enabled != 1 {
			t.Errorf("expected exactly one enabled rule, got %d", enabled)
		}
	})

	t.Run("rejects_unknown_rule", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/api/v1/mentor/rules",
			`{"enabled_ids":["bogus"]}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestSummaryEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/summary", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp SummaryResponse
	decodeBody(t, w, &resp)
	if resp.Summary.TransactionCount < 0 {
		t.Error("unexpected summary payload")
	}
}
