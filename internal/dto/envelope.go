package dto

// Response общий конверт ответов API.
type Response struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func Fail(message string) Response {
	return Response{Error: true, Message: message}
}

func OK(message string) Response {
	return Response{Message: message}
}
