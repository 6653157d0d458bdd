// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-site-keeper/internal/adapter"
	"github.com/MKhiriev/go-site-keeper/internal/assembler"
	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/sitefile"
	"github.com/MKhiriev/go-site-keeper/internal/tui"
	"github.com/MKhiriev/go-site-keeper/internal/utils"
	"github.com/MKhiriev/go-site-keeper/internal/validators"
	"github.com/MKhiriev/go-site-keeper/internal/workers"
	"github.com/MKhiriev/go-site-keeper/models"
)

// App runs sitectl commands. Output meant for the operator goes to out;
// diagnostics go to the file logger.
type App struct {
	cfg       *config.ClientConfig
	adapter   adapter.ServerAdapter
	assembler *assembler.Assembler
	newUI     UIFactory
	buildInfo models.AppBuildInfo

	out    io.Writer
	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, serverAdapter adapter.ServerAdapter, newUI UIFactory, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	registry := validators.DefaultModuleRegistry()
	for _, name := range cfg.ExtraModules {
		registry.Register(name)
	}

	return &App{
		cfg:       cfg,
		adapter:   serverAdapter,
		assembler: assembler.New(validators.NewSiteConfigValidator(registry)),
		newUI:     newUI,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}
}

// Validate assembles the document at path, locally or on the server when
// remote is set, and prints the resulting configuration in format.
func (a *App) Validate(ctx context.Context, path string, remote bool, format sitefile.Format) error {
	sections, err := sitefile.Load(path)
	if err != nil {
		return err
	}

	var cfg models.Configuration
	if remote {
		cfg, err = a.adapter.Validate(ctx, sections)
	} else {
		cfg, err = a.assembler.Build(ctx, sections)
	}
	if err != nil {
		return a.reportConfigError(err)
	}

	return sitefile.Encode(a.out, cfg, format)
}

// Publish sends the document at path to the server as a new revision.
func (a *App) Publish(ctx context.Context, path string) error {
	if a.adapter.Token() == "" {
		return ErrNoToken
	}

	sections, err := sitefile.Load(path)
	if err != nil {
		return err
	}

	return a.publish(ctx, sections)
}

func (a *App) publish(ctx context.Context, sections models.Sections) error {
	rev, created, err := a.adapter.Publish(ctx, sections)
	if err != nil {
		return a.reportConfigError(err)
	}

	if created {
		fmt.Fprintf(a.out, "published revision #%d %s (checksum %s)\n", rev.Number, rev.ID, rev.Checksum)
	} else {
		fmt.Fprintf(a.out, "unchanged, latest is revision #%d %s\n", rev.Number, rev.ID)
	}
	return nil
}

// Latest prints the latest revision, or the revision id when it is set.
func (a *App) Latest(ctx context.Context, id string) error {
	var (
		rev models.Revision
		err error
	)
	if id == "" {
		rev, err = a.adapter.Latest(ctx)
	} else {
		rev, err = a.adapter.Revision(ctx, id)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(rev)
}

// History prints up to limit revisions, newest first.
func (a *App) History(ctx context.Context, limit int) error {
	revisions, err := a.adapter.History(ctx, limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tID\tCREATED\tAUTHOR\tCHECKSUM")
	for _, rev := range revisions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			rev.Number, rev.ID, rev.CreatedAt.Format(time.RFC3339), rev.Author, shortChecksum(rev.Checksum))
	}
	return w.Flush()
}

// Head prints the rendered head fragments of a revision; an empty id selects
// the latest one.
func (a *App) Head(ctx context.Context, id string) error {
	head, err := a.adapter.Head(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "<!-- revision %s -->\n%s\n", head.RevisionID, head.Head)
	fmt.Fprintf(a.out, "<!-- body attributes -->\n%s\n", head.BodyAttrs)
	fmt.Fprintf(a.out, "<!-- color mode -->\n%s\n", head.ColorModeScript)
	return nil
}

// Watch publishes the document at path and then republishes it after every
// change until ctx is cancelled.
func (a *App) Watch(ctx context.Context, path string) error {
	if a.adapter.Token() == "" {
		return ErrNoToken
	}

	if err := a.Publish(ctx, path); err != nil && !errors.Is(err, ErrConfigRejected) {
		return err
	}

	watcher, err := workers.NewFileWatcher(path, a.cfg.Workers.DebounceInterval, a.republish, a.logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "watching %s, press ctrl+c to stop\n", path)
	return workers.NewWorkers(watcher).Run(ctx)
}

// republish is the watch handler. Errors are printed and returned for the
// watcher to log.
func (a *App) republish(ctx context.Context, path string) error {
	err := a.Publish(ctx, path)
	if err != nil && !errors.Is(err, ErrConfigRejected) {
		fmt.Fprintf(a.out, "publish failed: %v\n", err)
	}
	return err
}

// Preview opens the interactive preview of the document at path.
func (a *App) Preview(ctx context.Context, path string) error {
	if _, err := sitefile.FormatOf(path); err != nil {
		return err
	}

	var publisher tui.Publisher
	if a.adapter.Token() != "" {
		publisher = a.adapter
	}

	ui, err := a.newUI(fileSource{path: path, assembler: a.assembler}, publisher)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	return ui.Run(ctx)
}

// Token mints a publisher token for subject with the locally configured
// sign key.
func (a *App) Token(subject string) error {
	token, err := utils.GenerateJWTToken(a.cfg.App.TokenIssuer, subject, a.cfg.App.TokenDuration, a.cfg.App.TokenSignKey)
	if err != nil {
		return fmt.Errorf("%w: token sign key, issuer and subject are required", err)
	}

	fmt.Fprintln(a.out, token.String())
	return nil
}

// Version prints the client build and the server version. An unreachable
// server is reported but not treated as a failure.
func (a *App) Version(ctx context.Context) error {
	fmt.Fprintf(a.out, "sitectl %s (date %s, commit %s)\n", a.buildInfo.Version(), a.buildInfo.Date(), a.buildInfo.Commit())

	serverVersion, err := a.adapter.Version(ctx)
	if err != nil {
		a.logger.Err(err).Msg("server version request failed")
		fmt.Fprintln(a.out, "server: unavailable")
		return nil
	}

	fmt.Fprintf(a.out, "server: %s\n", serverVersion)
	return nil
}

// reportConfigError prints the violations of a rejected configuration and
// returns ErrConfigRejected. Other errors pass through.
func (a *App) reportConfigError(err error) error {
	var cfgErr *validators.ConfigError
	if !errors.As(err, &cfgErr) {
		return err
	}

	fmt.Fprintf(a.out, "%s:\n", validators.ConfigErrorMessage)
	for _, v := range cfgErr.Violations {
		fmt.Fprintf(a.out, "  %s\t%s\t%s\n", v.Kind, v.Field, v.Message)
	}
	return fmt.Errorf("%w: %d violations", ErrConfigRejected, len(cfgErr.Violations))
}

func shortChecksum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
