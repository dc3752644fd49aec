package dto

// Response sobre uniforme de todas las respuestas HTTP.
// Un statusCode distinto de 2xx implica data nula.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

// OK sobre de éxito (200).
func OK(message string, data any) Response {
	return Response{StatusCode: 200, Message: message, Data: data}
}

// Fail sobre de error; nunca lleva datos.
func Fail(status int, message string) Response {
	return Response{StatusCode: status, Message: message}
}

// ListQuery parámetros de consulta de los listados.
type ListQuery struct {
	Search    string `query:"search" validate:"max=200"`
	PageIndex int    `query:"pageIndex" validate:"omitempty,min=1"`
	PageSize  int    `query:"pageSize" validate:"omitempty,min=1,max=100"`
}

// ConfirmationResponse id afectado por una mutación.
type ConfirmationResponse struct {
	ID string `json:"id"`
}
