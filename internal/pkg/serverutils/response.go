package serverutils

type Response[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) *Response[T] {
	return &Response[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

// ErrorBody is the shape of every error the API returns.
type ErrorBody struct {
	Error string `json:"error"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Error: message}
}
