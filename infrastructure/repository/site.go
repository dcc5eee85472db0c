package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/order-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-reports-api/internal/domain"
)

const (
	sitesTable   = "sites s"
	sitesColumns = "s.id, s.slug, s.display_name, s.created_at"
)

type SiteRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Site, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Site, error)
	List(ctx context.Context) ([]*domain.Site, error)
}

type siteRepository struct {
	conn *postgres.Connection
}

func NewSiteRepository(conn *postgres.Connection) SiteRepository {
	return &siteRepository{
		conn: conn,
	}
}

func (r *siteRepository) GetByID(ctx context.Context, id string) (*domain.Site, error) {
	return r.getByField(ctx, squirrel.Eq{"s.id": id})
}

func (r *siteRepository) GetBySlug(ctx context.Context, slug string) (*domain.Site, error) {
	return r.getByField(ctx, squirrel.Eq{"s.slug": slug})
}

func (r *siteRepository) getByField(ctx context.Context, where squirrel.Eq) (*domain.Site, error) {
	query, args, err := squirrel.
		Select(sitesColumns).
		From(sitesTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	site, err := scanSite(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear site: %w", err)
	}

	return site, nil
}

func (r *siteRepository) List(ctx context.Context) ([]*domain.Site, error) {
	query, args, err := squirrel.
		Select(sitesColumns).
		From(sitesTable).
		OrderBy("s.slug ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sites := make([]*domain.Site, 0)
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear site: %w", err)
		}
		sites = append(sites, site)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sites, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSite(row rowScanner) (*domain.Site, error) {
	site := &domain.Site{}

	err := row.Scan(
		&site.ID,
		&site.Slug,
		&site.DisplayName,
		&site.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return site, nil
}
