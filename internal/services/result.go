package services

// Result is the uniform outcome of every mobile and console operation.
type Result struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    *LoginData `json:"data,omitempty"`

	MessageKey   string `json:"-"`
	SessionToken string `json:"-"`
}

type LoginData struct {
	EmployeeID           string `json:"employee_id"`
	EmployeeName         string `json:"employee_name"`
	User                 string `json:"user"`
	APIKey               string `json:"api_key"`
	APISecret            string `json:"api_secret"`
	DeviceID             string `json:"device_id"`
	AppID                string `json:"app_id,omitempty"`
	RequirePasswordReset bool   `json:"require_password_reset"`
}

func succeeded(key string) Result {
	return Result{Success: true, Message: EnglishMessage(key), MessageKey: key}
}

func failed(key string) Result {
	return Result{Success: false, Message: EnglishMessage(key), MessageKey: key}
}

// Failure builds an unsuccessful result for a message key. Transports use it
// for requests rejected before reaching a service.
func Failure(key string) Result {
	return failed(key)
}
