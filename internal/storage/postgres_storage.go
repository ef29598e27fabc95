package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"MemoryStoryAgent/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const createProfilesTablePostgres = `
CREATE TABLE IF NOT EXISTS profiles (
	user_id TEXT PRIMARY KEY,
	email TEXT NOT NULL,
	age INTEGER NOT NULL,
	cultural_background TEXT NOT NULL,
	language TEXT NOT NULL,
	gender TEXT NOT NULL,
	country TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS profiles_email_idx ON profiles (email);`

// PostgresStore는 profiles 테이블 하나에 프로필을 저장한다
type PostgresStore struct {
	pool *pgxpool.Pool
}

// 풀 생성, 연결 확인, 테이블 생성
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, unavailable("pinging database", err)
	}

	if _, err := pool.Exec(ctx, createProfilesTablePostgres); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating profiles table: %w", err)
	}

	zap.L().Info("NewPostgresStore(): connected")
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) GetUserMetadata(ctx context.Context, userID string) (models.UserMetadata, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return models.UserMetadata{}, unavailable("acquiring connection", err)
	}
	defer conn.Release()

	query := `
		SELECT cultural_background, language
		FROM profiles
		WHERE user_id = $1
	`
	var meta models.UserMetadata
	err = conn.QueryRow(ctx, query, userID).Scan(&meta.CulturalBackground, &meta.Language)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.UserMetadata{}, ErrNotFound
	}
	if err != nil {
		return models.UserMetadata{}, unavailable("querying profile", err)
	}
	return meta, nil
}

func (s *PostgresStore) CreateProfile(ctx context.Context, profile models.UserProfile) (string, error) {
	if err := validateProfile(profile); err != nil {
		return "", err
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return "", unavailable("acquiring connection", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO profiles (user_id, email, age, cultural_background, language, gender, country, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	userID := uuid.NewString()
	_, err = conn.Exec(ctx, query,
		userID,
		profile.Email,
		profile.Age,
		profile.CulturalBackground,
		profile.Language,
		profile.Gender,
		profile.Country,
		time.Now().UTC(),
	)
	if err != nil {
		return "", unavailable("inserting profile", err)
	}
	return userID, nil
}

func (s *PostgresStore) FindUserIDByEmail(ctx context.Context, email string) (string, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return "", unavailable("acquiring connection", err)
	}
	defer conn.Release()

	query := `
		SELECT user_id
		FROM profiles
		WHERE email = $1
		ORDER BY created_at
		LIMIT 1
	`
	var userID string
	err = conn.QueryRow(ctx, query, email).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", unavailable("querying profile by email", err)
	}
	return userID, nil
}

// 커넥션 풀 종료
func (s *PostgresStore) Close(_ context.Context) error {
	s.pool.Close()
	return nil
}
