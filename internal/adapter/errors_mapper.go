package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-site-keeper/internal/validators"
	"github.com/MKhiriev/go-site-keeper/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:           ErrBadRequest,
	http.StatusUnauthorized:         ErrUnauthorized,
	http.StatusNotFound:             ErrNotFound,
	http.StatusConflict:             ErrConflict,
	http.StatusUnsupportedMediaType: ErrUnsupportedMedia,
	http.StatusTooManyRequests:      ErrTooManyRequests,
	http.StatusInternalServerError:  ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx and 304 responses. Otherwise it decodes
// the server's [models.ErrorResponse]; a 422 body with violations becomes a
// [*validators.ConfigError].
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if (code >= http.StatusOK && code < http.StatusMultipleChoices) || code == http.StatusNotModified {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
	}
	if message == "" {
		message = http.StatusText(code)
	}

	if code == http.StatusUnprocessableEntity {
		if cfgErr := validators.FromResponse(errResp); cfgErr != nil {
			return cfgErr
		}
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, code, message)
}
