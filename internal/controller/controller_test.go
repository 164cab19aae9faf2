package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"study-assistant-be/internal/model"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/repository/memory"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/internal/service"
	"study-assistant-be/pkg/database"
	"study-assistant-be/pkg/tutor"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testApp struct {
	app       *fiber.App
	token     string
	visitorId string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := database.NewInMemoryDB()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	log := logger.NewNopLogger()
	factory := unitofwork.NewRepositoryFactory(db)
	themeService := service.NewThemeService(memory.NewVisitorPreferenceRepository())
	chatbotService := service.NewChatbotService(factory, tutor.NewKeywordEngine(log), nil, log)
	studyService := service.NewStudyService(factory, themeService)

	app := fiber.New(fiber.Config{ErrorHandler: serverutils.NewFiberErrorHandler(log)})
	app.Use(serverutils.ErrorHandlerMiddleware(log))
	app.Use(serverutils.VisitorMiddleware(time.Hour))

	api := app.Group("/api")
	NewChatbotController(chatbotService, testSecret, 10).RegisterRoutes(api)
	NewStudyController(studyService, testSecret).RegisterRoutes(api)
	NewThemeController(themeService).RegisterRoutes(api)
	NewProfileController(service.NewProfileService(factory), testSecret).RegisterRoutes(api)

	token, err := serverutils.IssueToken(testSecret, 1, time.Hour)
	require.NoError(t, err)

	return &testApp{app: app, token: token, visitorId: uuid.NewString()}
}

func (a *testApp) do(t *testing.T, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.AddCookie(&http.Cookie{Name: serverutils.VisitorCookieName, Value: a.visitorId})

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp.StatusCode, decoded
}

func (a *testApp) createSession(t *testing.T) uint {
	t.Helper()
	status, body := a.do(t, http.MethodPost, "/api/chatbot/v1/session", "")
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	return uint(data["id"].(float64))
}

func TestSendChat(t *testing.T) {
	a := newTestApp(t)
	sessionId := a.createSession(t)

	status, body := a.do(t, http.MethodPost, "/api/chatbot/v1/send",
		`{"session_id": `+jsonNumber(sessionId)+`, "message": "Can you help me with calculus?"}`)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Can you help me with calculus?", body["session_title"])
	ai := body["ai_message"].(map[string]interface{})
	assert.Equal(t, tutor.MathematicsTemplate, ai["content"])
}

func TestSendChatErrors(t *testing.T) {
	a := newTestApp(t)
	sessionId := a.createSession(t)

	tests := []struct {
		name       string
		method     string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed json",
			method:     http.MethodPost,
			body:       `{"session_id": `,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid JSON data",
		},
		{
			name:       "empty body",
			method:     http.MethodPost,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid JSON data",
		},
		{
			name:       "blank message",
			method:     http.MethodPost,
			body:       `{"session_id": ` + jsonNumber(sessionId) + `, "message": "   "}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Message cannot be empty",
		},
		{
			name:       "unknown session",
			method:     http.MethodPost,
			body:       `{"session_id": 9999, "message": "hello"}`,
			wantStatus: http.StatusNotFound,
			wantError:  "Chat session not found",
		},
		{
			name:       "wrong method",
			method:     http.MethodGet,
			wantStatus: http.StatusMethodNotAllowed,
			wantError:  "Invalid request method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := a.do(t, tt.method, "/api/chatbot/v1/send", tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestChatRoutesRequireToken(t *testing.T) {
	a := newTestApp(t)
	a.token = ""

	status, body := a.do(t, http.MethodGet, "/api/chatbot/v1/sessions", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Missing token", body["error"])
}

func TestSessionLifecycle(t *testing.T) {
	a := newTestApp(t)
	first := a.createSession(t)
	second := a.createSession(t)

	status, body := a.do(t, http.MethodGet, "/api/chatbot/v1/sessions", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 2)

	status, _ = a.do(t, http.MethodGet, "/api/chatbot/v1/sessions/"+jsonNumber(first), "")
	assert.Equal(t, http.StatusOK, status)

	status, body = a.do(t, http.MethodDelete, "/api/chatbot/v1/sessions/"+jsonNumber(second), "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(first), data["next_session_id"])

	status, body = a.do(t, http.MethodGet, "/api/chatbot/v1/sessions/"+jsonNumber(second), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Chat session not found", body["error"])

	status, _ = a.do(t, http.MethodGet, "/api/chatbot/v1/sessions/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStudyTips(t *testing.T) {
	a := newTestApp(t)

	status, body := a.do(t, http.MethodGet, "/api/study/v1/tips?subject=Science", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Science", body["subject"])
	assert.Equal(t, []interface{}{
		"Create concept maps to connect ideas",
		"Do hands-on experiments when possible",
		"Watch educational videos for visual learning",
		"Form study groups to discuss concepts",
	}, body["tips"])

	status, body = a.do(t, http.MethodGet, "/api/study/v1/tips", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "general", body["subject"])
}

func TestThemeToggle(t *testing.T) {
	a := newTestApp(t)

	status, body := a.do(t, http.MethodGet, "/api/theme/v1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "light", body["current_theme"])

	status, body = a.do(t, http.MethodPost, "/api/theme/v1/toggle", `{"theme": "dark"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]interface{}{"status": "success", "theme": "dark"}, body)

	status, body = a.do(t, http.MethodGet, "/api/theme/v1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "dark", body["current_theme"])
	assert.Equal(t, true, body["is_dark"])

	status, body = a.do(t, http.MethodPost, "/api/theme/v1/toggle", `{}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "light", body["theme"])

	status, body = a.do(t, http.MethodPost, "/api/theme/v1/toggle", `not json`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid JSON data", body["error"])
}

func TestHomeWorksAnonymously(t *testing.T) {
	a := newTestApp(t)
	a.token = ""

	status, body := a.do(t, http.MethodGet, "/api/home", "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "light", data["current_theme"])
	assert.Nil(t, data["user_id"])

	status, _ = a.do(t, http.MethodGet, "/api/about", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestProfile(t *testing.T) {
	a := newTestApp(t)

	status, body := a.do(t, http.MethodGet, "/api/profile/v1", "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["user_id"])
	assert.Equal(t, "light", data["theme_preference"])
}

func jsonNumber(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
