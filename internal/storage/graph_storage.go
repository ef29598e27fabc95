package storage

import (
	"context"
	"fmt"

	"MemoryStoryAgent/internal/models"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

const (
	queryUserMetadata = `MATCH (u:Person {userID: $userID})
RETURN u.culturalBackground AS culturalBackground, u.language AS language`

	queryCreatePerson = `CREATE (u:Person {
	userID: $userID,
	email: $email,
	age: $age,
	culturalBackground: $culturalBackground,
	language: $language,
	gender: $gender,
	country: $country
})`

	queryUserIDByEmail = `MATCH (u:Person {email: $email}) RETURN u.userID AS userID LIMIT 1`
)

// graphSession은 쿼리 하나를 실행하고 결과를 모두 읽어오는 최소 단위
type graphSession interface {
	Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error)
	Close(ctx context.Context) error
}

type sessionOpener func(ctx context.Context) graphSession

// GraphStore는 Neo4j의 Person 노드에 프로필을 저장한다
type GraphStore struct {
	open        sessionOpener
	closeDriver func(ctx context.Context) error
}

func NewGraphStore(ctx context.Context, uri, user, password string) (*GraphStore, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("NewGraphStore(): failed to create driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, unavailable("NewGraphStore()", err)
	}
	zap.L().Info("NewGraphStore(): connected", zap.String("uri", uri))

	return &GraphStore{
		open: func(ctx context.Context) graphSession {
			return &driverSession{session: driver.NewSession(ctx, neo4j.SessionConfig{})}
		},
		closeDriver: driver.Close,
	}, nil
}

func (s *GraphStore) GetUserMetadata(ctx context.Context, userID string) (models.UserMetadata, error) {
	session := s.open(ctx)
	defer closeSession(ctx, session)

	records, err := session.Run(ctx, queryUserMetadata, map[string]any{"userID": userID})
	if err != nil {
		return models.UserMetadata{}, unavailable("GraphStore.GetUserMetadata()", err)
	}
	if len(records) == 0 {
		return models.UserMetadata{}, ErrNotFound
	}

	return models.UserMetadata{
		CulturalBackground: recordString(records[0], "culturalBackground"),
		Language:           recordString(records[0], "language"),
	}, nil
}

func (s *GraphStore) CreateProfile(ctx context.Context, profile models.UserProfile) (string, error) {
	if err := validateProfile(profile); err != nil {
		return "", err
	}

	session := s.open(ctx)
	defer closeSession(ctx, session)

	userID := uuid.NewString()
	_, err := session.Run(ctx, queryCreatePerson, map[string]any{
		"userID":             userID,
		"email":              profile.Email,
		"age":                int64(profile.Age),
		"culturalBackground": profile.CulturalBackground,
		"language":           profile.Language,
		"gender":             profile.Gender,
		"country":            profile.Country,
	})
	if err != nil {
		return "", unavailable("GraphStore.CreateProfile()", err)
	}
	return userID, nil
}

func (s *GraphStore) FindUserIDByEmail(ctx context.Context, email string) (string, error) {
	session := s.open(ctx)
	defer closeSession(ctx, session)

	records, err := session.Run(ctx, queryUserIDByEmail, map[string]any{"email": email})
	if err != nil {
		return "", unavailable("GraphStore.FindUserIDByEmail()", err)
	}
	if len(records) == 0 {
		return "", ErrNotFound
	}

	userID := recordString(records[0], "userID")
	if userID == "" {
		return "", ErrNotFound
	}
	return userID, nil
}

func (s *GraphStore) Close(ctx context.Context) error {
	if s.closeDriver == nil {
		return nil
	}
	return s.closeDriver(ctx)
}

func closeSession(ctx context.Context, session graphSession) {
	if err := session.Close(ctx); err != nil {
		zap.L().Warn("GraphStore: failed to close session", zap.Error(err))
	}
}

// 속성이 없거나 문자열이 아니면 빈 문자열
func recordString(record *neo4j.Record, key string) string {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return ""
	}
	str, _ := value.(string)
	return str
}

type driverSession struct {
	session neo4j.SessionWithContext
}

func (d *driverSession) Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	result, err := d.session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	return result.Collect(ctx)
}

func (d *driverSession) Close(ctx context.Context) error {
	return d.session.Close(ctx)
}
