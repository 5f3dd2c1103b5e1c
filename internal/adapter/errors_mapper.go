package adapter

import (
	"encoding/json"
	"net/http"
	"strings"
)

// maxMessageLength bounds raw, non-JSON bodies copied into error messages.
const maxMessageLength = 256

func mapHTTPError(statusCode int, body []byte) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	message := serverMessage(body)
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &HTTPError{StatusCode: statusCode, Message: message}
}

// serverMessage extracts the human-readable message from an error body.
// Recognised shapes:
//
//	{"detail": "Order not found"}
//	{"detail": [{"loc": [...], "msg": "field required"}]}
//	{"error": {"code": "...", "message": "..."}}
func serverMessage(body []byte) string {
	body = []byte(strings.TrimSpace(string(body)))
	if len(body) == 0 {
		return ""
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
		Error  *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return truncate(string(body))
	}

	if envelope.Error != nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}

	if len(envelope.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
			return detail
		}

		var validation []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(envelope.Detail, &validation); err == nil {
			msgs := make([]string, 0, len(validation))
			for _, v := range validation {
				if v.Msg != "" {
					msgs = append(msgs, v.Msg)
				}
			}
			return strings.Join(msgs, "; ")
		}
	}

	return truncate(string(body))
}

func truncate(s string) string {
	if len(s) <= maxMessageLength {
		return s
	}
	return s[:maxMessageLength] + "..."
}
