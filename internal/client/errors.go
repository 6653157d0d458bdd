package client

import "errors"

var (
	// ErrConfigRejected is returned by commands whose document did not
	// assemble. The violations have already been printed.
	ErrConfigRejected = errors.New("site configuration rejected")
	ErrNoToken        = errors.New("no publisher token configured, set ADAPTER_TOKEN or --token")
)
