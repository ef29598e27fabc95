/**
* Name: 			database.go
* Description: 		프로필 저장소 인터페이스와 백엔드 선택
* Workflow: 		설정값으로 neo4j / sqlite / postgres 중 하나를 열고 Store로 반환
 */

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"MemoryStoryAgent/internal/models"
)

var (
	ErrNotFound         = errors.New("profile not found")
	ErrValidation       = errors.New("profile field missing")
	ErrStoreUnavailable = errors.New("profile store unavailable")
)

const (
	BackendNeo4j    = "neo4j"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Store는 사용자 프로필 저장소. 모든 메서드는 세션을 하나 열고 반환 전에 반드시 닫는다.
type Store interface {
	GetUserMetadata(ctx context.Context, userID string) (models.UserMetadata, error)
	CreateProfile(ctx context.Context, profile models.UserProfile) (string, error)
	FindUserIDByEmail(ctx context.Context, email string) (string, error)
	Close(ctx context.Context) error
}

type Config struct {
	Backend       string
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string
	SQLitePath    string
	DatabaseURL   string
}

// Open은 설정된 백엔드로 연결하고 연결 확인까지 마친 Store를 돌려준다
func Open(ctx context.Context, cfg Config) (Store, error) {
	var (
		store Store
		err   error
	)
	// nil 포인터가 non-nil 인터페이스로 새지 않도록 에러를 먼저 확인
	switch strings.ToLower(cfg.Backend) {
	case BackendNeo4j, "":
		var s *GraphStore
		if s, err = NewGraphStore(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword); err == nil {
			store = s
		}
	case BackendSQLite:
		var s *SQLiteStore
		if s, err = NewSQLiteStore(ctx, cfg.SQLitePath); err == nil {
			store = s
		}
	case BackendPostgres:
		var s *PostgresStore
		if s, err = NewPostgresStore(ctx, cfg.DatabaseURL); err == nil {
			store = s
		}
	default:
		return nil, fmt.Errorf("storage.Open(): unknown backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

// 여섯 필드 모두 필수
func validateProfile(p models.UserProfile) error {
	if strings.TrimSpace(p.Email) == "" ||
		p.Age <= 0 ||
		strings.TrimSpace(p.CulturalBackground) == "" ||
		strings.TrimSpace(p.Language) == "" ||
		strings.TrimSpace(p.Gender) == "" ||
		strings.TrimSpace(p.Country) == "" {
		return ErrValidation
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
