package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JanviSingh1712/portfolio/internal/domain/introduction"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type postgresIntroductionRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresIntroductionRepo(db *pgxpool.Pool, logger logger.Logger) introduction.Repository {
	return &postgresIntroductionRepo{db: db, logger: logger}
}

func (r *postgresIntroductionRepo) Get(ctx context.Context) (*introduction.Introduction, error) {
	query := `
		SELECT full_name, role, degree, university, graduation_year, bio,
		       profile_image_url, linkedin_url, github_url
		FROM introduction
		WHERE id = 1
	`
	in := &introduction.Introduction{}
	err := r.db.QueryRow(ctx, query).Scan(
		&in.FullName,
		&in.Role,
		&in.Education.Degree,
		&in.Education.University,
		&in.Education.GraduationYear,
		&in.Bio,
		&in.ProfileImageURL,
		&in.LinkedInURL,
		&in.GitHubURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("introduction", "1")
		}
		return nil, apperror.NewInternal("failed to query introduction", err)
	}
	return in, nil
}
