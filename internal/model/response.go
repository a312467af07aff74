package model

import "time"

// ResponseDto — ответ на операции изменения данных.
type ResponseDto struct {
	StatusCode string `json:"statusCode"`
	StatusMsg  string `json:"statusMsg"`
}

// ErrorResponse — тело ответа при ошибке.
type ErrorResponse struct {
	APIPath      string    `json:"apiPath"`
	ErrorCode    string    `json:"errorCode"`
	ErrorMessage string    `json:"errorMessage"`
	ErrorTime    time.Time `json:"errorTime"`
}

// ContactInfo отдаётся эндпоинтом /api/contact-info.
type ContactInfo struct {
	Message       string   `json:"message"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	OnCallSupport []string `json:"onCallSupport"`
	Address       string   `json:"address"`
}
