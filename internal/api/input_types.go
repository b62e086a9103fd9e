package api

type mobileLoginInput struct {
	Identifier  string `json:"usr" form:"usr"`
	AppPassword string `json:"app_password" form:"app_password"`
	DeviceID    string `json:"device_id" form:"device_id"`
	DeviceModel string `json:"device_model" form:"device_model"`
	DeviceBrand string `json:"device_brand" form:"device_brand"`
}

type changeAppPasswordInput struct {
	OldAppPassword string `json:"old_app_password" form:"old_app_password"`
	NewAppPassword string `json:"new_app_password" form:"new_app_password"`
}

type resetAppPasswordInput struct {
	NewPassword string `json:"new_password" form:"new_password"`
}

type setAppPasswordInput struct {
	NewPassword          string `json:"new_password" form:"new_password"`
	RequirePasswordReset bool   `json:"require_password_reset" form:"require_password_reset"`
}

type consoleLoginInput struct {
	Identifier string `json:"usr" form:"usr"`
	Password   string `json:"password" form:"password"`
}
