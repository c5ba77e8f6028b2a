package httputil

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

// Request bodies of this API are tiny
const maxBodyBytes = 64 << 10

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	if statusCode == http.StatusNoContent || body == nil {
		w.WriteHeader(statusCode)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigDefault.NewEncoder(w).Encode(body)
}

// DecodeJSON reads one JSON document from body into v.
func DecodeJSON(body io.Reader, v any) error {
	return sonic.ConfigDefault.NewDecoder(io.LimitReader(body, maxBodyBytes)).Decode(v)
}
