package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/service"
	"github.com/MKhiriev/go-site-keeper/internal/sitefile"
	"github.com/MKhiriev/go-site-keeper/internal/store"
	"github.com/MKhiriev/go-site-keeper/internal/utils"
	"github.com/MKhiriev/go-site-keeper/internal/validators"
	"github.com/MKhiriev/go-site-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidRequestBody:               http.StatusBadRequest,
	ErrInvalidQueryParam:                http.StatusBadRequest,

	sitefile.ErrUnsupportedFormat: http.StatusUnsupportedMediaType,
	sitefile.ErrTrailingContent:   http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidRevisionID:       http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrPublishConflict:         http.StatusConflict,

	store.ErrRevisionNotFound: http.StatusNotFound,
	store.ErrRevisionConflict: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrEncodingConfig:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var cfgErr *validators.ConfigError
	if errors.As(err, &cfgErr) {
		return http.StatusUnprocessableEntity
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Rejected
// configurations carry their violations; server errors hide their cause.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var cfgErr *validators.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		log.Info().Int("violations", len(cfgErr.Violations)).Msg("site configuration rejected")
		utils.WriteJSON(w, cfgErr.Response(), status)
	case status >= http.StatusInternalServerError:
		log.Err(err).Msg("request failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(status)}, status)
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
	}
}
