package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// envelope is the superset of the backend's response conventions. Older
// deployments use a "success" flag, newer ones "ok"; failures carry an
// "error" string and sometimes an "issues" list. decodeResponse folds all
// of them into one verdict.
type envelope struct {
	Success *bool    `json:"success"`
	OK      *bool    `json:"ok"`
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Issues  []string `json:"issues"`
}

// decodeResponse normalizes a backend response. A response fails iff the
// HTTP status is not 2xx, an explicit success/ok flag is false, or an
// error/issues field is present. On success the same body is decoded into
// out (when non-nil).
func decodeResponse(statusCode int, body []byte, out any) error {
	var env envelope
	// A non-JSON body is tolerated; the status code decides then.
	_ = json.Unmarshal(body, &env)

	failed := statusCode < 200 || statusCode > 299 ||
		(env.Success != nil && !*env.Success) ||
		(env.OK != nil && !*env.OK) ||
		env.Error != "" || len(env.Issues) > 0

	if failed {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = http.StatusText(statusCode)
		}
		switch statusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%s: %w", msg, ErrNotAuthenticated)
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", msg, ErrNotFound)
		}
		return &RejectionError{Message: msg, Issues: env.Issues}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
