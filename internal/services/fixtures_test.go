package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/essgate/internal/models"
	"github.com/terraincognita07/essgate/internal/secrets"
	"github.com/terraincognita07/essgate/internal/session"
)

var fixtureNow = time.Date(2026, time.April, 2, 8, 15, 0, 0, time.UTC)

type mobileFixture struct {
	store    *memoryStore
	box      *secrets.Box
	sessions *session.Manager
	service  *MobileAuthService
}

func newMobileFixture(t *testing.T) *mobileFixture {
	t.Helper()

	box, err := secrets.NewBox([]byte("services-test-secret-key-0123456789"))
	require.NoError(t, err)
	sessions, err := session.NewManager([]byte("services-test-session-key-0123456789"), time.Hour)
	require.NoError(t, err)

	store := newMemoryStore()
	service := NewMobileAuthService(MobileAuthDependencies{
		Store:    store,
		Box:      box,
		Sessions: sessions,
		Now:      func() time.Time { return fixtureNow },
	})
	return &mobileFixture{store: store, box: box, sessions: sessions, service: service}
}

type seedOptions struct {
	role         string
	appID        string
	appPassword  string
	allowESS     bool
	deviceID     string
	requireReset bool
	passwordHash string
	disabled     bool
}

func (fixture *mobileFixture) seed(t *testing.T, username string, email string, employeeID string, options seedOptions) {
	t.Helper()
	ctx := context.Background()

	role := options.role
	if role == "" {
		role = models.RoleEmployee
	}
	require.NoError(t, fixture.store.Accounts().Create(ctx, &models.Account{
		Username:     username,
		Email:        email,
		Role:         role,
		PasswordHash: options.passwordHash,
		Enabled:      !options.disabled,
	}))
	if employeeID == "" {
		return
	}

	sealed, err := fixture.box.Seal(secrets.PurposeAppPassword, options.appPassword)
	require.NoError(t, err)
	employee := models.Employee{
		ID:                   employeeID,
		AccountUsername:      username,
		EmployeeName:         "Employee " + username,
		AllowESS:             options.allowESS,
		AppPassword:          sealed,
		RequirePasswordReset: options.requireReset,
	}
	if options.appID != "" {
		appID := options.appID
		employee.AppID = &appID
	}
	if options.deviceID != "" {
		deviceID := options.deviceID
		registeredAt := fixtureNow.Add(-24 * time.Hour)
		employee.DeviceID = &deviceID
		employee.DeviceRegisteredOn = &registeredAt
	}
	require.NoError(t, fixture.store.Employees().Create(ctx, &employee))
}

func (fixture *mobileFixture) storedAppPassword(t *testing.T, employeeID string) string {
	t.Helper()
	plaintext, err := fixture.box.Open(secrets.PurposeAppPassword, fixture.store.employee(employeeID).AppPassword)
	require.NoError(t, err)
	return plaintext
}

func deviceOf(employee models.Employee) string {
	if employee.DeviceID == nil {
		return ""
	}
	return *employee.DeviceID
}

var (
	hrManager = SessionContext{Username: "hr", Role: models.RoleHRManager}
	employeeE = SessionContext{Username: "e", Role: models.RoleEmployee}
)
