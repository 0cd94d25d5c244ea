// Package types defines the shared API response envelope
package types

// Slug is a type for the slug field in the response.
// It is mainly used for the client to understand the type of the response.
type Slug string

const (
	// SuccessSlug indicates a successful response
	SuccessSlug Slug = "success"
	// ErrorSlug indicates a generic error response
	ErrorSlug Slug = "error"
	// InvalidInputSlug indicates the request was malformed
	InvalidInputSlug Slug = "invalid-input"
	// NotFoundSlug indicates the requested entity does not exist
	NotFoundSlug Slug = "not-found"
	// NothingToBillSlug indicates invoice generation found no billable work
	NothingToBillSlug Slug = "nothing-to-bill"
	// ServerErrorSlug indicates an internal failure
	ServerErrorSlug Slug = "server-error"
)

// SlugResponse is the response type for the API
type SlugResponse struct {
	Slug  Slug        `json:"slug"`
	Error string      `json:"error,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

// ErrInvalidInput returns a SlugResponse with the InvalidInputSlug and the error message
func ErrInvalidInput(msg string) SlugResponse {
	return SlugResponse{
		Slug:  InvalidInputSlug,
		Error: msg,
	}
}

// ErrNotFound returns a SlugResponse with the NotFoundSlug and the error message
func ErrNotFound(msg string) SlugResponse {
	return SlugResponse{
		Slug:  NotFoundSlug,
		Error: msg,
	}
}

// ErrServer returns a SlugResponse with the ServerErrorSlug and the error message
func ErrServer(msg string) SlugResponse {
	return SlugResponse{
		Slug:  ServerErrorSlug,
		Error: msg,
	}
}

// NothingToBill returns a SlugResponse telling the caller no invoice was needed
func NothingToBill(msg string) SlugResponse {
	return SlugResponse{
		Slug:  NothingToBillSlug,
		Error: msg,
	}
}

// Success returns a SlugResponse with the SuccessSlug and the data
func Success(data interface{}) SlugResponse {
	return SlugResponse{
		Slug: SuccessSlug,
		Data: data,
	}
}
