package services

import (
	"context"
	"errors"
	"sync"

	"github.com/terraincognita07/essgate/internal/models"
	"gorm.io/gorm"
)

type memoryState struct {
	accounts  map[string]models.Account
	employees map[string]models.Employee
	errorLogs []models.ErrorLog
}

func (state *memoryState) clone() *memoryState {
	cloned := &memoryState{
		accounts:  make(map[string]models.Account, len(state.accounts)),
		employees: make(map[string]models.Employee, len(state.employees)),
		errorLogs: append([]models.ErrorLog(nil), state.errorLogs...),
	}
	for key, account := range state.accounts {
		cloned.accounts[key] = account
	}
	for key, employee := range state.employees {
		cloned.employees[key] = employee
	}
	return cloned
}

type memoryFaults struct {
	appIDLookup    error
	updateAPICreds error
	// beforeBind runs inside BindDevice before the compare-and-swap.
	beforeBind func(state *memoryState, employeeID string)
}

// memoryStore is an in-memory Store. Transactions work on a copy of the
// state that replaces the current state only when fn succeeds.
type memoryStore struct {
	mu     *sync.Mutex
	state  *memoryState
	faults *memoryFaults
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		mu: &sync.Mutex{},
		state: &memoryState{
			accounts:  map[string]models.Account{},
			employees: map[string]models.Employee{},
		},
		faults: &memoryFaults{},
	}
}

func (store *memoryStore) Accounts() AccountRepository { return memoryAccounts{store} }
func (store *memoryStore) Employees() EmployeeRepository { return memoryEmployees{store} }
func (store *memoryStore) ErrorLogs() ErrorLogRepository { return memoryErrorLogs{store} }

func (store *memoryStore) WithinTransaction(_ context.Context, fn func(tx Store) error) error {
	tx := &memoryStore{mu: &sync.Mutex{}, state: store.state.clone(), faults: store.faults}
	if err := fn(tx); err != nil {
		return err
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	store.state = tx.state
	return nil
}

func (store *memoryStore) account(username string) models.Account {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state.accounts[username]
}

func (store *memoryStore) employee(employeeID string) models.Employee {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state.employees[employeeID]
}

func (store *memoryStore) errorLogs() []models.ErrorLog {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]models.ErrorLog(nil), store.state.errorLogs...)
}

type memoryAccounts struct{ store *memoryStore }

func (repo memoryAccounts) FindByUsername(_ context.Context, username string) (models.Account, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	account, ok := repo.store.state.accounts[username]
	if !ok {
		return models.Account{}, gorm.ErrRecordNotFound
	}
	return account, nil
}

func (repo memoryAccounts) FindByEmail(_ context.Context, email string) (models.Account, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	for _, account := range repo.store.state.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return models.Account{}, gorm.ErrRecordNotFound
}

func (repo memoryAccounts) FindByAPIKey(_ context.Context, apiKey string) (models.Account, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	for _, account := range repo.store.state.accounts {
		if account.APIKey != nil && *account.APIKey == apiKey {
			return account, nil
		}
	}
	return models.Account{}, gorm.ErrRecordNotFound
}

func (repo memoryAccounts) Create(_ context.Context, account *models.Account) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	if _, exists := repo.store.state.accounts[account.Username]; exists {
		return errors.New("duplicate account")
	}
	repo.store.state.accounts[account.Username] = *account
	return nil
}

func (repo memoryAccounts) UpdateAPICredentials(_ context.Context, username string, apiKey string, sealedSecret string) error {
	if repo.store.faults.updateAPICreds != nil {
		return repo.store.faults.updateAPICreds
	}
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	account, ok := repo.store.state.accounts[username]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	key := apiKey
	account.APIKey = &key
	account.APISecret = sealedSecret
	repo.store.state.accounts[username] = account
	return nil
}

type memoryEmployees struct{ store *memoryStore }

func (repo memoryEmployees) FindByID(_ context.Context, employeeID string) (models.Employee, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	employee, ok := repo.store.state.employees[employeeID]
	if !ok {
		return models.Employee{}, gorm.ErrRecordNotFound
	}
	return employee, nil
}

func (repo memoryEmployees) FindByAppID(_ context.Context, appID string) (models.Employee, error) {
	if repo.store.faults.appIDLookup != nil {
		return models.Employee{}, repo.store.faults.appIDLookup
	}
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	for _, employee := range repo.store.state.employees {
		if employee.AppID != nil && *employee.AppID == appID {
			return employee, nil
		}
	}
	return models.Employee{}, gorm.ErrRecordNotFound
}

func (repo memoryEmployees) FindByAccount(_ context.Context, username string) (models.Employee, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	for _, employee := range repo.store.state.employees {
		if employee.AccountUsername == username {
			return employee, nil
		}
	}
	return models.Employee{}, gorm.ErrRecordNotFound
}

func (repo memoryEmployees) Create(_ context.Context, employee *models.Employee) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	if _, exists := repo.store.state.employees[employee.ID]; exists {
		return errors.New("duplicate employee")
	}
	repo.store.state.employees[employee.ID] = *employee
	return nil
}

func (repo memoryEmployees) BindDevice(_ context.Context, employeeID string, binding models.DeviceBinding) (bool, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	if repo.store.faults.beforeBind != nil {
		repo.store.faults.beforeBind(repo.store.state, employeeID)
	}
	employee, ok := repo.store.state.employees[employeeID]
	if !ok || employee.HasBoundDevice() {
		return false, nil
	}
	deviceID := binding.DeviceID
	registeredAt := binding.RegisteredAt
	employee.DeviceID = &deviceID
	employee.DeviceRegisteredOn = &registeredAt
	employee.DeviceModel = binding.Model
	employee.DeviceBrand = binding.Brand
	repo.store.state.employees[employeeID] = employee
	return true, nil
}

func (repo memoryEmployees) ClearDevice(_ context.Context, employeeID string) (bool, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	employee, ok := repo.store.state.employees[employeeID]
	if !ok {
		return false, nil
	}
	employee.DeviceID = nil
	employee.DeviceRegisteredOn = nil
	employee.DeviceModel = ""
	employee.DeviceBrand = ""
	repo.store.state.employees[employeeID] = employee
	return true, nil
}

func (repo memoryEmployees) UpdateAppPassword(_ context.Context, employeeID string, sealedPassword string, requirePasswordReset bool) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	employee, ok := repo.store.state.employees[employeeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	employee.AppPassword = sealedPassword
	employee.RequirePasswordReset = requirePasswordReset
	repo.store.state.employees[employeeID] = employee
	return nil
}

type memoryErrorLogs struct{ store *memoryStore }

func (repo memoryErrorLogs) Create(_ context.Context, entry *models.ErrorLog) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	repo.store.state.errorLogs = append(repo.store.state.errorLogs, *entry)
	return nil
}
