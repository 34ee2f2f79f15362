package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JanviSingh1712/portfolio/internal/domain/certification"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type postgresCertificationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCertificationRepo(db *pgxpool.Pool, logger logger.Logger) certification.Repository {
	return &postgresCertificationRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresCertificationRepo) List(ctx context.Context) ([]certification.Certification, error) {
	sql, args, err := psql.
		Select("title", "issuing_organization", "description", "icon", "url").
		From("certifications").
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list certifications query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query certifications", err)
	}
	defer rows.Close()

	certs := make([]certification.Certification, 0)
	for rows.Next() {
		var c certification.Certification
		if err := rows.Scan(&c.Title, &c.IssuingOrganization, &c.Description, &c.Icon, &c.URL); err != nil {
			return nil, apperror.NewInternal("failed to scan certification row", err)
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating certification rows", err)
	}
	return certs, nil
}
