package domain

// Общий конверт ответа
type APIError struct {
	Code int    `json:"code,omitempty"`
	Kind string `json:"kind,omitempty"` // стабильный машиночитаемый вид ошибки
	Text string `json:"text,omitempty"`
}

type APIEnvelope struct {
	Error    *APIError `json:"error,omitempty"`
	Response any       `json:"response,omitempty"`
	Data     any       `json:"data,omitempty"`
}

// Утилиты для сборки конвертов
func OkResponse(resp any) APIEnvelope { return APIEnvelope{Response: resp} }
func OkData(data any) APIEnvelope     { return APIEnvelope{Data: data} }
func Fail(code int, text string) APIEnvelope {
	return APIEnvelope{Error: &APIError{Code: code, Text: text}}
}
func FailKind(code int, kind, text string) APIEnvelope {
	return APIEnvelope{Error: &APIError{Code: code, Kind: kind, Text: text}}
}
