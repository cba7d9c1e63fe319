package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/PavaniTiago/advisor-api/internal/application/usecases"
	"github.com/PavaniTiago/advisor-api/internal/domain/advisory"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/analytics"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/memory"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/seed"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/session"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	clock := repositories.Clock(func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) })
	store := memory.New(seed.MustLoad(), memory.WithLatency(memory.Latency{}), memory.WithClock(clock))
	events := analytics.NewMemoryQueue(0)
	uc := usecases.New(usecases.Deps{
		Repos:         store.Registry(),
		Sessions:      session.NewMemoryStore(0),
		Tracker:       analytics.NewTracker(events, nil),
		Feed:          events,
		Conversations: cache.New[*advisory.Conversation](context.Background(), 0),
		ChatTTL:       time.Hour,
		Clock:         clock,
		InvestURL:     "https://invest.example.com",
	})
	app := fiber.New()
	SetupRoutes(app, uc, nil)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode, out
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	status, body := do(t, app, "POST", "/api/v1/auth/login", "", map[string]string{"email": email, "password": "qualquer"})
	if status != 200 {
		t.Fatalf("login %s: %d %v", email, status, body)
	}
	return body["token"].(string)
}

func TestHealthAndPublicRoutes(t *testing.T) {
	app := newTestApp(t)
	if status, body := do(t, app, "GET", "/api/v1/health", "", nil); status != 200 || body["status"] != "healthy" {
		t.Fatalf("health: %d %v", status, body)
	}
	status, body := do(t, app, "GET", "/api/v1/plans", "", nil)
	if status != 200 || len(body["data"].([]any)) != 3 {
		t.Fatalf("plans: %d %v", status, body)
	}
	if status, _ := do(t, app, "GET", "/api/v1/plans/abc", "", nil); status != 400 {
		t.Fatalf("non-numeric plan id: %d", status)
	}
	if status, _ := do(t, app, "GET", "/api/v1/plans/42", "", nil); status != 404 {
		t.Fatalf("unknown plan: %d", status)
	}
}

func TestAuthRoutes(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, "POST", "/api/v1/auth/login", "", map[string]string{"email": "ghost@example.com"})
	if status != 401 || body["error"] != "Invalid credentials" {
		t.Fatalf("bad login: %d %v", status, body)
	}

	status, body = do(t, app, "POST", "/api/v1/auth/register", "", map[string]string{"name": "Davi", "email": "davi@example.com"})
	if status != 201 || body["token"] == "" {
		t.Fatalf("register: %d %v", status, body)
	}
	token := body["token"].(string)
	if status, _ := do(t, app, "POST", "/api/v1/auth/register", "", map[string]string{"name": "Davi", "email": "davi@example.com"}); status != 409 {
		t.Fatalf("duplicate register: %d", status)
	}

	status, body = do(t, app, "GET", "/api/v1/me", token, nil)
	if status != 200 || body["full_name"] != "Davi" {
		t.Fatalf("me: %d %v", status, body)
	}
	if status, _ := do(t, app, "POST", "/api/v1/auth/logout", token, nil); status != 204 {
		t.Fatalf("logout: %d", status)
	}
	if status, _ := do(t, app, "GET", "/api/v1/me", token, nil); status != 401 {
		t.Fatalf("me after logout: %d", status)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/api/v1/me", "/api/v1/history", "/api/v1/cards", "/api/v1/suitability/questions"} {
		if status, _ := do(t, app, "GET", path, "", nil); status != 401 {
			t.Fatalf("%s without token: %d", path, status)
		}
	}
}

func TestSuitabilityRoutes(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "carla.mendes@example.com")

	status, body := do(t, app, "GET", "/api/v1/suitability/questions", token, nil)
	if status != 200 || len(body["questions"].([]any)) != 5 {
		t.Fatalf("questions: %d %v", status, body)
	}
	if status, _ := do(t, app, "GET", "/api/v1/suitability/latest", token, nil); status != 409 {
		t.Fatalf("latest without evaluation: %d", status)
	}

	status, body = do(t, app, "POST", "/api/v1/suitability", token, map[string]any{
		"answers": map[string]string{"1": "preservar", "3": "nenhuma"},
	})
	if status != 422 {
		t.Fatalf("incomplete answers: %d %v", status, body)
	}
	if ids := body["questions"].([]any); len(ids) != 3 {
		t.Fatalf("missing ids: %v", ids)
	}

	status, body = do(t, app, "POST", "/api/v1/suitability", token, map[string]any{
		"answers": map[string]string{"1": "crescer_alto", "2": "muito_longo", "3": "avancada", "4": "compraria_mais", "5": "acima_30"},
	})
	if status != 201 || body["profile"] != "Aggressive" || body["score"] != float64(20) {
		t.Fatalf("submit: %d %v", status, body)
	}
}

func TestChatToRecommendation(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "ana.souza@example.com")

	status, conv := do(t, app, "POST", "/api/v1/chat", token, nil)
	if status != 201 {
		t.Fatalf("start chat: %d %v", status, conv)
	}
	id := conv["conversation_id"].(string)

	status, reply := do(t, app, "POST", "/api/v1/chat/"+id+"/messages", token, map[string]string{"content": "Quero me aposentar"})
	if status != 200 || reply["type"] != "assistant" {
		t.Fatalf("send: %d %v", status, reply)
	}
	status, sess := do(t, app, "POST", "/api/v1/chat/"+id+"/end", token, nil)
	if status != 201 || sess["session_compiled"] != "Quero me aposentar" {
		t.Fatalf("end: %d %v", status, sess)
	}

	status, rec := do(t, app, "POST", "/api/v1/recommendations", token, map[string]any{"session_id": sess["session_id"]})
	if status != 201 {
		t.Fatalf("request recommendation: %d %v", status, rec)
	}
	recID := int(rec["recommendation_id"].(float64))
	if rec["suitability_id"] != float64(1) {
		t.Fatalf("recommendation not tied to latest suitability: %v", rec)
	}

	path := "/api/v1/recommendations/" + strconv.Itoa(recID)
	if status, body := do(t, app, "GET", path, token, nil); status != 200 || body["output"] == nil {
		t.Fatalf("get recommendation: %d %v", status, body)
	}
	if status, body := do(t, app, "POST", path+"/invest", token, nil); status != 200 || body["url"] != "https://invest.example.com" {
		t.Fatalf("invest: %d %v", status, body)
	}

	other := login(t, app, "bruno.lima@example.com")
	if status, _ := do(t, app, "GET", path, other, nil); status != 404 {
		t.Fatalf("foreign recommendation: %d", status)
	}
	if status, _ := do(t, app, "GET", "/api/v1/recommendations/x1", token, nil); status != 400 {
		t.Fatalf("non-numeric id: %d", status)
	}
}

func TestCheckoutAndCards(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "carla.mendes@example.com")

	card := map[string]string{"number": "9999 9999 9999 9999", "holder_name": "Carla Mendes", "expiry": "25/12", "cvv": "999"}

	bad := map[string]string{"number": "4111 1111 1111 1111", "holder_name": "Carla", "expiry": "25/12", "cvv": "999"}
	status, body := do(t, app, "POST", "/api/v1/checkout", token, map[string]any{"plan_id": 1, "card": bad})
	if status != 422 || body["field"] != "number" {
		t.Fatalf("bad card checkout: %d %v", status, body)
	}

	status, body = do(t, app, "POST", "/api/v1/checkout", token, map[string]any{"plan_id": 2, "card": card, "save_card": true})
	if status != 201 {
		t.Fatalf("checkout: %d %v", status, body)
	}
	contract := body["contract"].(map[string]any)
	if contract["status"] != "active" || contract["expires_at"] != "2025-07-10" {
		t.Fatalf("contract: %v", contract)
	}
	saved := body["card"].(map[string]any)
	if saved["masked_number"] != "**** **** **** 9999" {
		t.Fatalf("card: %v", saved)
	}

	status, body = do(t, app, "GET", "/api/v1/history", token, nil)
	if status != 200 || len(body["payments"].([]any)) != 1 || len(body["cards"].([]any)) != 1 {
		t.Fatalf("history: %d %v", status, body)
	}

	cardPath := "/api/v1/cards/" + strconv.Itoa(int(saved["card_id"].(float64)))
	if status, _ := do(t, app, "DELETE", cardPath, token, nil); status != 204 {
		t.Fatalf("delete card: %d", status)
	}
	if status, _ := do(t, app, "DELETE", cardPath, token, nil); status != 404 {
		t.Fatalf("delete card twice: %d", status)
	}
}

func TestSessionStatusAndActivity(t *testing.T) {
	app := newTestApp(t)

	if status, body := do(t, app, "GET", "/api/v1/auth/session", "", nil); status != 200 || body["authenticated"] != false {
		t.Fatalf("anonymous session: %d %v", status, body)
	}
	token := login(t, app, "bruno.lima@example.com")
	if status, body := do(t, app, "GET", "/api/v1/auth/session", token, nil); status != 200 || body["authenticated"] != true {
		t.Fatalf("logged session: %d %v", status, body)
	}

	if status, _ := do(t, app, "GET", "/api/v1/cards", token, nil); status != 200 {
		t.Fatalf("cards: %d", status)
	}
	if status, _ := do(t, app, "DELETE", "/api/v1/cards/99", token, nil); status != 404 {
		t.Fatalf("delete unknown card: %d", status)
	}

	status, body := do(t, app, "GET", "/api/v1/activity?limit=2", token, nil)
	if status != 200 {
		t.Fatalf("activity: %d %v", status, body)
	}
	events := body["data"].([]any)
	if len(events) != 2 {
		t.Fatalf("activity returned %d events, want 2", len(events))
	}
	latest := events[0].(map[string]any)
	if latest["event"] != "error" || latest["error_type"] != "card_delete_failed" {
		t.Fatalf("latest activity %v", latest)
	}
	page := events[1].(map[string]any)
	if page["event"] != "page_view" || page["page_name"] != "cards" {
		t.Fatalf("page view %v", page)
	}

	if status, _ := do(t, app, "GET", "/api/v1/activity", "", nil); status != 401 {
		t.Fatalf("activity without token: %d", status)
	}
}
