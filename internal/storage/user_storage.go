package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"MemoryStoryAgent/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const createProfilesTable = `
CREATE TABLE IF NOT EXISTS profiles (
		"user_id" TEXT PRIMARY KEY,
		"email" TEXT NOT NULL,
		"age" INTEGER NOT NULL,
		"cultural_background" TEXT NOT NULL,
		"language" TEXT NOT NULL,
		"gender" TEXT NOT NULL,
		"country" TEXT NOT NULL,
		"created_at" DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS profiles_email_idx ON profiles(email);`

// 잠금 대기 5초, WAL 모드
const sqlitePragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// SQLiteStore는 로컬 개발용 단일 파일 프로필 저장소
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("NewSQLiteStore(): failed to create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path+sqlitePragmas)
	if err != nil {
		return nil, fmt.Errorf("NewSQLiteStore(): failed to open database: %w", err)
	}
	// SQLite는 쓰기 잠금이 하나뿐이라 커넥션 하나로 요청을 줄 세운다
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, unavailable("NewSQLiteStore()", err)
	}
	if _, err := db.ExecContext(ctx, createProfilesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("NewSQLiteStore(): failed to create profiles table: %w", err)
	}
	zap.L().Info("NewSQLiteStore(): init and create table successfully", zap.String("path", path))
	return &SQLiteStore{db: db}, nil
}

// 요청마다 커넥션 하나를 세션으로 빌려 쓰고 반환
func (s *SQLiteStore) session(ctx context.Context, op string) (*sql.Conn, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, unavailable(op, err)
	}
	return conn, nil
}

func (s *SQLiteStore) GetUserMetadata(ctx context.Context, userID string) (models.UserMetadata, error) {
	conn, err := s.session(ctx, "SQLiteStore.GetUserMetadata()")
	if err != nil {
		return models.UserMetadata{}, err
	}
	defer conn.Close()

	var meta models.UserMetadata
	row := conn.QueryRowContext(ctx, "SELECT cultural_background, language FROM profiles WHERE user_id = ?", userID)
	if err := row.Scan(&meta.CulturalBackground, &meta.Language); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserMetadata{}, ErrNotFound
		}
		return models.UserMetadata{}, unavailable("SQLiteStore.GetUserMetadata()", err)
	}
	return meta, nil
}

func (s *SQLiteStore) CreateProfile(ctx context.Context, profile models.UserProfile) (string, error) {
	if err := validateProfile(profile); err != nil {
		return "", err
	}

	conn, err := s.session(ctx, "SQLiteStore.CreateProfile()")
	if err != nil {
		return "", err
	}
	defer conn.Close()

	userID := uuid.NewString()
	_, err = conn.ExecContext(ctx,
		`INSERT INTO profiles(user_id, email, age, cultural_background, language, gender, country, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, profile.Email, profile.Age, profile.CulturalBackground,
		profile.Language, profile.Gender, profile.Country, time.Now().UTC(),
	)
	if err != nil {
		return "", unavailable("SQLiteStore.CreateProfile()", err)
	}
	return userID, nil
}

// 같은 이메일이 여러 건이면 가장 먼저 가입한 프로필
func (s *SQLiteStore) FindUserIDByEmail(ctx context.Context, email string) (string, error) {
	conn, err := s.session(ctx, "SQLiteStore.FindUserIDByEmail()")
	if err != nil {
		return "", err
	}
	defer conn.Close()

	var userID string
	row := conn.QueryRowContext(ctx, "SELECT user_id FROM profiles WHERE email = ? ORDER BY rowid LIMIT 1", email)
	if err := row.Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", unavailable("SQLiteStore.FindUserIDByEmail()", err)
	}
	return userID, nil
}

func (s *SQLiteStore) Close(_ context.Context) error {
	return s.db.Close()
}
