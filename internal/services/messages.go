package services

import "errors"

// Message keys double as i18n keys. englishMessages holds the text returned
// when the transport does not localise.
const (
	MsgLoginSuccessful          = "mobile.login_successful"
	MsgDeviceReset              = "mobile.device_reset"
	MsgPasswordChanged          = "mobile.password_changed"
	MsgPasswordReset            = "mobile.password_reset"
	MsgPasswordSet              = "mobile.password_set"
	MsgInvalidInput             = "errors.invalid_input"
	MsgUnknownIdentifier        = "errors.unknown_identifier"
	MsgNoEmployeeRecord         = "errors.no_employee_record"
	MsgSelfServiceDisabled      = "errors.self_service_disabled"
	MsgPasswordNotSet           = "errors.password_not_set"
	MsgInvalidCredentials       = "errors.invalid_credentials"
	MsgCurrentPasswordIncorrect = "errors.current_password_incorrect"
	MsgDeviceMismatch           = "errors.device_mismatch"
	MsgPermissionDenied         = "errors.permission_denied"
	MsgLoginFailed              = "errors.login_failed"
	MsgInternal                 = "errors.internal"
	MsgConsoleLoginSuccessful   = "auth.login_successful"
	MsgConsoleLoginFailed       = "auth.invalid_credentials"
	MsgLoggedOut                = "auth.logged_out"
	MsgAuthenticationRequired   = "auth.required"
)

var englishMessages = map[string]string{
	MsgLoginSuccessful:          "Login successful",
	MsgDeviceReset:              "Device ID has been reset successfully. Employee can now login from a new device.",
	MsgPasswordChanged:          "App password changed successfully",
	MsgPasswordReset:            "App password has been reset successfully",
	MsgPasswordSet:              "App password has been updated",
	MsgInvalidInput:             "Required information is missing or invalid",
	MsgUnknownIdentifier:        "User does not exist",
	MsgNoEmployeeRecord:         "No employee record found for this user",
	MsgSelfServiceDisabled:      "Employee Self Service is not enabled for this account",
	MsgPasswordNotSet:           "App password not set. Please contact administrator",
	MsgInvalidCredentials:       "Invalid app password",
	MsgCurrentPasswordIncorrect: "Current app password is incorrect",
	MsgDeviceMismatch:           "Access denied. This account is registered to a different device",
	MsgPermissionDenied:         "Insufficient permissions",
	MsgLoginFailed:              "An error occurred during login. Please try again",
	MsgInternal:                 "An error occurred. Please try again",
	MsgConsoleLoginSuccessful:   "Logged in",
	MsgConsoleLoginFailed:       "Invalid username or password",
	MsgLoggedOut:                "Logged out",
	MsgAuthenticationRequired:   "Authentication required",
}

// EnglishMessage returns the default text for key, or key itself when unknown.
func EnglishMessage(key string) string {
	if message, ok := englishMessages[key]; ok {
		return message
	}
	return key
}

// MessageKeys lists every key a Result can carry.
func MessageKeys() []string {
	keys := make([]string, 0, len(englishMessages))
	for key := range englishMessages {
		keys = append(keys, key)
	}
	return keys
}

// messageKeyFor maps a business error to its message key. ok is false for
// errors outside the taxonomy.
func messageKeyFor(err error) (key string, ok bool) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return MsgInvalidInput, true
	case errors.Is(err, ErrUnknownIdentifier):
		return MsgUnknownIdentifier, true
	case errors.Is(err, ErrNoEmployeeRecord):
		return MsgNoEmployeeRecord, true
	case errors.Is(err, ErrSelfServiceDisabled):
		return MsgSelfServiceDisabled, true
	case errors.Is(err, ErrPasswordNotSet):
		return MsgPasswordNotSet, true
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials, true
	case errors.Is(err, ErrDeviceMismatch):
		return MsgDeviceMismatch, true
	case errors.Is(err, ErrPermissionDenied):
		return MsgPermissionDenied, true
	default:
		return "", false
	}
}
