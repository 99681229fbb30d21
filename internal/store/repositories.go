package store

import "github.com/MKhiriev/go-cbt-forms/internal/logger"

// Repositories bundles every persistence contract the service layer depends
// on. All three are backed by the same PostgreSQL connection.
type Repositories struct {
	UserRepository           UserRepository
	QuestionRepository       QuestionRepository
	TokenBlacklistRepository TokenBlacklistRepository
}

// NewRepositories constructs the full repository set over db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db, log),
		QuestionRepository:       NewQuestionRepository(db, log),
		TokenBlacklistRepository: NewTokenBlacklistRepository(db, log),
	}
}
