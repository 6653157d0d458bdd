//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SiteConfigServiceWrapper

package service

import (
	"context"

	"github.com/MKhiriev/go-site-keeper/models"
)

// SiteConfigService assembles, publishes and serves site configuration
// revisions.
type SiteConfigService interface {
	// Validate assembles sections into a Configuration without storing it.
	// A rejected document yields a *validators.ConfigError.
	Validate(ctx context.Context, sections models.Sections) (models.Configuration, error)

	// Publish assembles sections and stores the result as a new revision.
	// created is false when the document equals the latest revision, in
	// which case that revision is returned unchanged.
	Publish(ctx context.Context, sections models.Sections, author string) (rev models.Revision, created bool, err error)

	Latest(ctx context.Context) (models.Revision, error)
	Revision(ctx context.Context, id string) (models.Revision, error)

	// History returns up to limit revisions, newest first. A non-positive
	// limit selects the default page size.
	History(ctx context.Context, limit int) ([]models.Revision, error)

	// RenderHead renders the revision with the given ID, or the latest one
	// when id is empty.
	RenderHead(ctx context.Context, id string) (models.RenderedHead, error)

	// Preview renders a complete HTML document for the latest revision.
	Preview(ctx context.Context) (string, error)
}

// AuthService issues and verifies publisher tokens.
type AuthService interface {
	CreateToken(ctx context.Context, publisher string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SiteConfigServiceWrapper defines middleware composition for
// SiteConfigService. Implementations wrap an existing SiteConfigService to
// add behavior such as metrics.
type SiteConfigServiceWrapper interface {
	Wrap(SiteConfigService) SiteConfigService
}
