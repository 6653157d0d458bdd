package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Violation sentinels. A [ConfigError] unwraps to one of these per violation,
// so callers can test for a kind with [errors.Is].
var (
	ErrUnknownModule          = errors.New("unknown module")
	ErrDuplicateModule        = errors.New("duplicate module")
	ErrInvalidEnumValue       = errors.New("invalid enum value")
	ErrMalformedMetadataEntry = errors.New("malformed metadata entry")
	ErrMalformedLinkEntry     = errors.New("malformed link entry")
	ErrInvalidAttributeName   = errors.New("invalid attribute name")
)
