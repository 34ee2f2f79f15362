package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/internal/domain/certification"
	"github.com/JanviSingh1712/portfolio/internal/domain/introduction"
	"github.com/JanviSingh1712/portfolio/internal/domain/project"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

// ContentWriter replaces the stored content with a new snapshot. It is the
// only writer and is used by the seed command.
type ContentWriter struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewContentWriter(db *pgxpool.Pool, logger logger.Logger) *ContentWriter {
	return &ContentWriter{db: db, logger: logger}
}

// Replace stores the snapshot in one transaction. List positions follow
// slice order so reads return the records in the order given here.
func (w *ContentWriter) Replace(ctx context.Context, in *introduction.Introduction, certs []certification.Certification, projects []*project.Project) error {
	tx, err := w.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return apperror.NewInternal("failed to begin content transaction", err)
	}
	defer tx.Rollback(ctx)

	if err := upsertIntroduction(ctx, tx, in); err != nil {
		return err
	}
	if err := replaceCertifications(ctx, tx, certs); err != nil {
		return err
	}
	if err := replaceProjects(ctx, tx, projects); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit content", err)
	}
	w.logger.Info("Content replaced",
		zap.Int("certifications", len(certs)),
		zap.Int("projects", len(projects)),
	)
	return nil
}

func upsertIntroduction(ctx context.Context, tx pgx.Tx, in *introduction.Introduction) error {
	query := `
		INSERT INTO introduction (id, full_name, role, degree, university, graduation_year, bio,
		                          profile_image_url, linkedin_url, github_url, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			role = EXCLUDED.role,
			degree = EXCLUDED.degree,
			university = EXCLUDED.university,
			graduation_year = EXCLUDED.graduation_year,
			bio = EXCLUDED.bio,
			profile_image_url = EXCLUDED.profile_image_url,
			linkedin_url = EXCLUDED.linkedin_url,
			github_url = EXCLUDED.github_url,
			updated_at = NOW()
	`
	_, err := tx.Exec(ctx, query,
		in.FullName, in.Role,
		in.Education.Degree, in.Education.University, in.Education.GraduationYear,
		in.Bio, in.ProfileImageURL, in.LinkedInURL, in.GitHubURL,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert introduction", err)
	}
	return nil
}

func replaceCertifications(ctx context.Context, tx pgx.Tx, certs []certification.Certification) error {
	if _, err := tx.Exec(ctx, `DELETE FROM certifications`); err != nil {
		return apperror.NewInternal("failed to clear certifications", err)
	}
	if len(certs) == 0 {
		return nil
	}

	insert := psql.Insert("certifications").
		Columns("title", "position", "issuing_organization", "description", "icon", "url")
	for i, c := range certs {
		insert = insert.Values(c.Title, i, c.IssuingOrganization, c.Description, c.Icon, c.URL)
	}
	return execBuilder(ctx, tx, insert, "certifications")
}

func replaceProjects(ctx context.Context, tx pgx.Tx, projects []*project.Project) error {
	if _, err := tx.Exec(ctx, `DELETE FROM projects`); err != nil {
		return apperror.NewInternal("failed to clear projects", err)
	}
	if len(projects) == 0 {
		return nil
	}

	insert := psql.Insert("projects").
		Columns("id", "position", "title", "description", "technologies",
			"image_url", "data_ai_hint", "github_link", "live_demo_link")
	for i, p := range projects {
		insert = insert.Values(p.ID, i, p.Title, p.Description, p.Technologies,
			p.ImageURL, p.DataAIHint, p.GitHubLink, p.LiveDemoLink)
	}
	return execBuilder(ctx, tx, insert, "projects")
}

func execBuilder(ctx context.Context, tx pgx.Tx, b sq.InsertBuilder, table string) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert for "+table, err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to insert "+table, err)
	}
	return nil
}
