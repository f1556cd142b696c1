package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudcarver/text2image"
	"github.com/cloudcarver/text2image/pkg/codec"
	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const (
	connectRetryLimit = 10
	connectRetryDelay = 3 * time.Second
)

// PgStore keeps task outputs in the task_outputs table.
type PgStore struct {
	p *pgxpool.Pool
}

func NewPgStore(cfg *config.Config) (*PgStore, error) {
	dsn := *cfg.Storage.Pg.DSN

	pgCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse pgxpool config")
	}
	pgCfg.MaxConns = 10
	pgCfg.MinConns = 1

	var (
		p     *pgxpool.Pool
		retry = 0
	)
	for {
		err := func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			pool, err := pgxpool.NewWithConfig(ctx, pgCfg)
			if err != nil {
				log.Warnf("failed to init pgxpool: %s", err.Error())
				return errors.Wrap(err, "failed to init pgxpool")
			}
			if err := pool.Ping(ctx); err != nil {
				log.Warnf("failed to ping database: %s", err.Error())
				pool.Close()
				return errors.Wrap(err, "failed to ping db")
			}
			p = pool
			return nil
		}()
		if err == nil {
			break
		}
		if retry >= connectRetryLimit {
			return nil, err
		}
		retry++
		time.Sleep(connectRetryDelay)
	}

	if err := migrateUp(pgCfg); err != nil {
		p.Close()
		return nil, err
	}

	return &PgStore{p: p}, nil
}

func migrateUp(pgCfg *pgxpool.Config) error {
	d, err := iofs.New(text2image.Migrations, "sql/migrations")
	if err != nil {
		return errors.Wrap(err, "failed to create migration source driver")
	}
	url := fmt.Sprintf("pgx5://%s:%s@%s:%d/%s?x-migrations-table=text2image_migrations",
		pgCfg.ConnConfig.User,
		pgCfg.ConnConfig.Password,
		pgCfg.ConnConfig.Host,
		pgCfg.ConnConfig.Port,
		pgCfg.ConnConfig.Database,
	)
	m, err := migrate.NewWithSourceInstance("iofs", d, url)
	if err != nil {
		return errors.Wrap(err, "failed to init migrate")
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to migrate up")
	}
	return nil
}

func (s *PgStore) Put(ctx context.Context, key Key, fd codec.FieldData) error {
	_, err := s.p.Exec(ctx, `
		INSERT INTO task_outputs (task_id, field, content_type, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (task_id, field) DO UPDATE
		SET content_type = EXCLUDED.content_type, data = EXCLUDED.data, created_at = CURRENT_TIMESTAMP`,
		key.TaskID, key.Field, string(fd.Type), fd.Data,
	)
	if err != nil {
		return errors.Wrapf(err, "failed to store %s", key)
	}
	return nil
}

func (s *PgStore) Get(ctx context.Context, key Key) (codec.FieldData, error) {
	var (
		contentType string
		data        []byte
	)
	err := s.p.QueryRow(ctx,
		`SELECT content_type, data FROM task_outputs WHERE task_id = $1 AND field = $2`,
		key.TaskID, key.Field,
	).Scan(&contentType, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return codec.FieldData{}, ErrNotFound
		}
		return codec.FieldData{}, errors.Wrapf(err, "failed to load %s", key)
	}
	return codec.FieldData{Data: data, Type: codec.ContentType(contentType)}, nil
}

func (s *PgStore) Delete(ctx context.Context, taskID uuid.UUID) error {
	if _, err := s.p.Exec(ctx, `DELETE FROM task_outputs WHERE task_id = $1`, taskID); err != nil {
		return errors.Wrapf(err, "failed to delete outputs of task %s", taskID)
	}
	return nil
}

func (s *PgStore) Close() {
	s.p.Close()
}
