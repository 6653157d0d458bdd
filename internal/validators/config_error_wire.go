package validators

import "github.com/MKhiriev/go-site-keeper/models"

// ConfigErrorMessage is the top-level error text of a rejected configuration
// in HTTP responses.
const ConfigErrorMessage = "invalid site configuration"

// Response converts e to its HTTP wire form.
func (e *ConfigError) Response() models.ErrorResponse {
	resp := models.ErrorResponse{
		Error:      ConfigErrorMessage,
		Violations: make([]models.ViolationResponse, 0, len(e.Violations)),
	}
	for _, v := range e.Violations {
		resp.Violations = append(resp.Violations, models.ViolationResponse{
			Kind:    string(v.Kind),
			Field:   v.Field,
			Value:   v.Value,
			Message: v.Message,
		})
	}
	return resp
}

// FromResponse rebuilds a ConfigError from its wire form. It returns nil when
// resp carries no violations.
func FromResponse(resp models.ErrorResponse) *ConfigError {
	if len(resp.Violations) == 0 {
		return nil
	}

	e := &ConfigError{Violations: make([]Violation, 0, len(resp.Violations))}
	for _, v := range resp.Violations {
		e.Violations = append(e.Violations, Violation{
			Kind:    ViolationKind(v.Kind),
			Field:   v.Field,
			Value:   v.Value,
			Message: v.Message,
		})
	}
	return e
}
