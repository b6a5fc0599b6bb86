package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/tartampluch/go-age/internal/config"
)

// ImportConfig contains all parameters required to import a birth date.
type ImportConfig struct {
	Mode      string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath string // Absolute path to the .vcf file
	WebURL    string // CardDAV or WebDAV URL
	WebUser   string // HTTP Basic Auth Username
	WebPass   string // HTTP Basic Auth Password
}

// Importer fetches a vCard source and extracts the contact's birth date.
type Importer struct {
	Fetcher VCardFetcher // Interface for network abstraction.
}

// Run opens the configured source and returns the first usable contact.
func (im *Importer) Run(ctx context.Context, cfg ImportConfig) (Person, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
	)
	log.Info(config.MsgImportStart)

	reader, err := im.acquireStream(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return Person{}, ctx.Err()
		}
		return Person{}, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	// Best effort close. Errors in Close() for read-only sources are rarely actionable.
	defer func() { _ = reader.Close() }()

	person, err := ExtractBirthday(ctx, reader)
	if err != nil {
		return Person{}, err
	}

	log.Info(config.MsgImportDone,
		config.LogKeyName, person.Name,
		config.LogKeyDOB, person.DateOfBirth.String(),
		config.LogKeyDuration, time.Since(start).Milliseconds())
	return person, nil
}

// acquireStream opens the appropriate data source based on configuration.
func (im *Importer) acquireStream(ctx context.Context, cfg ImportConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if im.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return im.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}
