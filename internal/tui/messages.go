package tui

import "github.com/MKhiriev/go-site-keeper/models"

type loadedMsg struct {
	snapshot Snapshot
	err      error
}

type publishedMsg struct {
	revision models.Revision
	created  bool
	err      error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
