package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/adapters/media_storage"
	"github.com/JanviSingh1712/portfolio/adapters/persistence"
	"github.com/JanviSingh1712/portfolio/internal/application/service"
	"github.com/JanviSingh1712/portfolio/internal/config"
	"github.com/JanviSingh1712/portfolio/internal/content"
	"github.com/JanviSingh1712/portfolio/internal/domain/certification"
	"github.com/JanviSingh1712/portfolio/internal/domain/introduction"
	"github.com/JanviSingh1712/portfolio/internal/domain/project"
	"github.com/JanviSingh1712/portfolio/pkg/auth"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

// seed checks the built-in content, copies it into Postgres and uploads the
// images it references. Each step runs only when its settings are present.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env).With(zap.String("component", "seed"))
	defer appLogger.Sync()
	ctx := context.Background()

	intro := content.Introduction()
	certs := content.Certifications()
	projects := content.Projects()

	if err := validate(certs, projects); err != nil {
		appLogger.Fatal("Built-in content is invalid", err)
	}
	appLogger.Info("Content validated", zap.Int("certifications", len(certs)), zap.Int("projects", len(projects)))

	if password := os.Getenv("OWNER_PASSWORD"); password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			appLogger.Fatal("Cannot hash password", err)
		}
		fmt.Printf("OWNER_PASSWORD_HASH=%s\n", hash)
	}

	if cfg.Cloudinary.CloudName != "" {
		uploader, err := media_storage.NewCloudinaryAdapter(cfg.Cloudinary.CloudName, cfg.Cloudinary.ApiKey, cfg.Cloudinary.ApiSecret, cfg.Cloudinary.Folder, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Cloudinary", err)
		}
		if err := uploadImages(ctx, uploader, cfg.App.PublicDir, cfg.Cloudinary.Folder, imageRefs(intro, projects), appLogger); err != nil {
			appLogger.Fatal("Image upload failed", err)
		}
	}

	if cfg.DB.DSN == "" {
		appLogger.Info("db.dsn not set, skipping database seed")
		return
	}

	if err := migrateUp(cfg.DB.DSN); err != nil {
		appLogger.Fatal("Cannot run migrations", err)
	}

	dbPool, err := persistence.NewPostgresPool(ctx, cfg.DB.DSN, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	if err := persistence.NewContentWriter(dbPool, appLogger).Replace(ctx, intro, certs, projects); err != nil {
		appLogger.Fatal("Cannot write content", err)
	}
	appLogger.Info("Seed finished")
}

func validate(certs []certification.Certification, projects []*project.Project) error {
	return errors.Join(certification.ValidateList(certs), project.ValidateList(projects))
}

func migrateUp(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// imageRefs lists the local image references in display order, without
// duplicates. Absolute URLs are already hosted and are skipped.
func imageRefs(in *introduction.Introduction, projects []*project.Project) []string {
	seen := make(map[string]bool)
	var refs []string
	add := func(ref *string) {
		if ref == nil || *ref == "" || media_storage.IsAbsoluteURL(*ref) || seen[*ref] {
			return
		}
		seen[*ref] = true
		refs = append(refs, *ref)
	}

	add(in.ProfileImageURL)
	for _, p := range projects {
		add(p.ImageURL)
	}
	return refs
}

func uploadImages(ctx context.Context, uploader service.Uploader, publicDir, folder string, refs []string, log logger.Logger) error {
	for _, ref := range refs {
		path := filepath.Join(publicDir, filepath.FromSlash(strings.TrimLeft(ref, "/")))
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Warn("Image missing from public dir, skipping", zap.String("path", path))
				continue
			}
			return err
		}

		url, err := uploader.Upload(ctx, f, folder, media_storage.AssetName(ref))
		f.Close()
		if err != nil {
			return fmt.Errorf("upload %s: %w", ref, err)
		}
		log.Info("Image uploaded", zap.String("ref", ref), zap.String("url", url))
	}
	return nil
}
