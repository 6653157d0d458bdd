// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/sitefile"
	"github.com/MKhiriev/go-site-keeper/internal/utils"
	"github.com/MKhiriev/go-site-keeper/models"
)

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	sections, err := decodeSections(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cfg, err := h.services.SiteConfigService.Validate(r.Context(), sections)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, cfg, http.StatusOK)
}

func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	author, ok := utils.GetPublisherFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	sections, err := decodeSections(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rev, created, err := h.services.SiteConfigService.Publish(r.Context(), sections, author)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	log.Debug().Str("revision_id", rev.ID).Bool("created", created).Msg("publish handled")

	w.Header().Set("ETag", etag(rev))
	utils.WriteJSON(w, rev, status)
}

func (h *Handler) latest(w http.ResponseWriter, r *http.Request) {
	rev, err := h.services.SiteConfigService.Latest(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	tag := etag(rev)
	w.Header().Set("ETag", tag)
	if etagMatches(r.Header.Get("If-None-Match"), tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	utils.WriteJSON(w, rev, http.StatusOK)
}

func (h *Handler) revision(w http.ResponseWriter, r *http.Request) {
	rev, err := h.services.SiteConfigService.Revision(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("ETag", etag(rev))
	utils.WriteJSON(w, rev, http.StatusOK)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, r, fmt.Errorf("%w: limit must be a positive integer, got %q", ErrInvalidQueryParam, raw))
			return
		}
		limit = parsed
	}

	revisions, err := h.services.SiteConfigService.History(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RevisionList{Revisions: revisions, Length: len(revisions)}, http.StatusOK)
}

// head serves the head fragment of the latest revision, or of the revision
// named by the "id" query parameter. With "format=json" the fragment parts
// are returned separately.
func (h *Handler) head(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rendered, err := h.services.SiteConfigService.RenderHead(r.Context(), query.Get("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch query.Get("format") {
	case "", "html":
		utils.WriteHTML(w, rendered.Head+rendered.ColorModeScript, http.StatusOK)
	case "json":
		utils.WriteJSON(w, rendered, http.StatusOK)
	default:
		writeError(w, r, fmt.Errorf("%w: unknown format %q", ErrInvalidQueryParam, query.Get("format")))
	}
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.SiteConfigService.Preview(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteHTML(w, doc, http.StatusOK)
}

// decodeSections reads a site document from the request body. YAML bodies
// are accepted with a YAML content type; everything else is read as JSON.
func decodeSections(w http.ResponseWriter, r *http.Request) (models.Sections, error) {
	format := sitefile.FormatJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return models.Sections{}, fmt.Errorf("%w: %w", sitefile.ErrUnsupportedFormat, err)
		}
		switch mediaType {
		case "application/json", "text/json":
		case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
			format = sitefile.FormatYAML
		default:
			return models.Sections{}, fmt.Errorf("%w: %s", sitefile.ErrUnsupportedFormat, mediaType)
		}
	}

	sections, err := sitefile.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), format)
	if err != nil {
		return models.Sections{}, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return sections, nil
}

func etag(rev models.Revision) string {
	return strconv.Quote(rev.Checksum)
}

// etagMatches reports whether an If-None-Match header value selects tag.
// The header may list several tags or be "*". Comparison is weak, so a W/
// prefix on either side is ignored.
func etagMatches(header, tag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}

	tag = strings.TrimPrefix(tag, "W/")
	for candidate := range strings.SplitSeq(header, ",") {
		if strings.TrimPrefix(strings.TrimSpace(candidate), "W/") == tag {
			return true
		}
	}
	return false
}
