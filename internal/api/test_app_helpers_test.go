package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/essgate/internal/db"
	"github.com/terraincognita07/essgate/internal/i18n"
	"github.com/terraincognita07/essgate/internal/models"
	"github.com/terraincognita07/essgate/internal/secrets"
	"github.com/terraincognita07/essgate/internal/services"
	"github.com/terraincognita07/essgate/internal/session"
)

const (
	testEmployeeUsername = "jdoe"
	testEmployeeID       = "HR-EMP-00001"
	testEmployeeAppID    = "APP-1001"
	testAppPassword      = "pin-4821"
	testManagerUsername  = "hr.admin"
	testManagerPassword  = "StrongPass1"
)

type testEnv struct {
	app       *fiber.App
	directory *services.DirectoryService
	store     *db.ServiceStore
}

func newTestEnv(t *testing.T, cookieSecure bool) *testEnv {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "essgate-api.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("load sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	box, err := secrets.NewBox([]byte("api-test-secret-key-0123456789abcdef"))
	if err != nil {
		t.Fatalf("create secret box: %v", err)
	}
	sessions, err := session.NewManager([]byte("api-test-session-key-0123456789abcd"), time.Hour)
	if err != nil {
		t.Fatalf("create session manager: %v", err)
	}
	i18nManager, err := i18n.NewEmbeddedManager("en")
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}

	store := db.NewServiceStore(database)
	handler, err := NewHandler(Dependencies{
		Mobile: services.NewMobileAuthService(services.MobileAuthDependencies{
			Store:    store,
			Box:      box,
			Sessions: sessions,
			Reporter: services.NewErrorReporter(store.ErrorLogs(), nil),
		}),
		Accounts:     services.NewAccountAuthService(store.Accounts(), box, sessions, nil),
		I18n:         i18nManager,
		CookieSecure: cookieSecure,
		SessionTTL:   sessions.TTL(),
	})
	if err != nil {
		t.Fatalf("create handler: %v", err)
	}

	env := &testEnv{
		app:       NewApp(handler, nil),
		directory: services.NewDirectoryService(store, box),
		store:     store,
	}
	env.seed(t)
	return env
}

func (env *testEnv) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	if _, err := env.directory.CreateAccount(ctx, services.CreateAccountInput{
		Username: testEmployeeUsername,
		Email:    "jdoe@example.com",
		FullName: "Jane Doe",
		Role:     models.RoleEmployee,
	}); err != nil {
		t.Fatalf("create employee account: %v", err)
	}
	if _, err := env.directory.CreateEmployee(ctx, services.CreateEmployeeInput{
		ID:              testEmployeeID,
		AccountUsername: testEmployeeUsername,
		EmployeeName:    "Jane Doe",
		AllowESS:        true,
		AppID:           testEmployeeAppID,
		AppPassword:     testAppPassword,
	}); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	if _, err := env.directory.CreateAccount(ctx, services.CreateAccountInput{
		Username: testManagerUsername,
		Email:    "hr@example.com",
		FullName: "HR Admin",
		Role:     models.RoleHRManager,
		Password: testManagerPassword,
	}); err != nil {
		t.Fatalf("create manager account: %v", err)
	}
}

type resultBody struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    *services.LoginData `json:"data"`
}

type requestOption func(request *http.Request)

func withHeader(name string, value string) requestOption {
	return func(request *http.Request) {
		request.Header.Set(name, value)
	}
}

func withCookie(name string, value string) requestOption {
	return func(request *http.Request) {
		request.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

func (env *testEnv) doJSON(t *testing.T, method string, path string, payload any, options ...requestOption) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for _, option := range options {
		option(request)
	}

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func readResult(t *testing.T, response *http.Response, expectedStatus int) resultBody {
	t.Helper()

	if response.StatusCode != expectedStatus {
		t.Fatalf("expected status %d, got %d", expectedStatus, response.StatusCode)
	}
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	result := resultBody{}
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
	return result
}

func (env *testEnv) mobileLogin(t *testing.T, identifier string, password string, deviceID string, options ...requestOption) (*http.Response, resultBody) {
	t.Helper()

	response := env.doJSON(t, http.MethodPost, "/api/mobile/login", fiber.Map{
		"usr":          identifier,
		"app_password": password,
		"device_id":    deviceID,
		"device_model": "Pixel 7",
		"device_brand": "Google",
	}, options...)
	return response, readResult(t, response, http.StatusOK)
}

func (env *testEnv) managerSessionToken(t *testing.T) string {
	t.Helper()

	response := env.doJSON(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"usr":      testManagerUsername,
		"password": testManagerPassword,
	})
	result := readResult(t, response, http.StatusOK)
	if !result.Success {
		t.Fatalf("expected manager console login to succeed, got %q", result.Message)
	}
	token := responseCookieValue(response.Cookies(), sessionCookieName)
	if token == "" {
		t.Fatal("expected session cookie on console login")
	}
	return token
}

func apiTokenHeader(data *services.LoginData) requestOption {
	return withHeader("Authorization", "token "+data.APIKey+":"+data.APISecret)
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	if cookie := responseCookie(cookies, name); cookie != nil {
		return cookie.Value
	}
	return ""
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie != nil && cookie.Name == name {
			return cookie
		}
	}
	return nil
}
