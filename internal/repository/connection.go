package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// ConnectionRepository defines persistence operations for teaching connections.
type ConnectionRepository interface {
	Create(ctx context.Context, connection *models.Connection) error
	GetByID(ctx context.Context, id uint) (*models.Connection, error)
	GetActiveByTriple(ctx context.Context, teacherID, learnerID, skillID uint) (*models.Connection, error)
	UpdateStatus(ctx context.Context, connectionID uint, status models.ConnectionStatus) error
	ListAsTeacher(ctx context.Context, userID uint) ([]models.Connection, error)
	ListAsLearner(ctx context.Context, userID uint) ([]models.Connection, error)
	ListAccepted(ctx context.Context, userID uint) ([]models.Connection, error)
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository returns a new ConnectionRepository implementation.
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, connection *models.Connection) error {
	if err := r.db.WithContext(ctx).Create(connection).Error; err != nil {
		if isUniqueConstraintError(err) {
			// Lost the check-then-insert race; the partial unique index on the
			// triple caught the duplicate.
			return models.NewConflictError("Connection request already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	var connection models.Connection
	if err := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Learner").
		Preload("Skill").
		First(&connection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Connection", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &connection, nil
}

// GetActiveByTriple finds the pending or accepted connection for an exact
// (teacher, learner, skill) triple. Rejected connections do not block a new
// request and are excluded. Returns (nil, nil) when no active connection exists.
func (r *connectionRepository) GetActiveByTriple(ctx context.Context, teacherID, learnerID, skillID uint) (*models.Connection, error) {
	var connection models.Connection
	if err := r.db.WithContext(ctx).
		Where("teacher_id = ? AND learner_id = ? AND skill_id = ? AND status <> ?",
			teacherID, learnerID, skillID, models.ConnectionStatusRejected).
		First(&connection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &connection, nil
}

func (r *connectionRepository) UpdateStatus(ctx context.Context, connectionID uint, status models.ConnectionStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("id = ?", connectionID).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) ListAsTeacher(ctx context.Context, userID uint) ([]models.Connection, error) {
	return r.list(ctx, "teacher_id = ?", userID)
}

func (r *connectionRepository) ListAsLearner(ctx context.Context, userID uint) ([]models.Connection, error) {
	return r.list(ctx, "learner_id = ?", userID)
}

// ListAccepted returns every accepted connection with the user on either side.
func (r *connectionRepository) ListAccepted(ctx context.Context, userID uint) ([]models.Connection, error) {
	var connections []models.Connection
	if err := r.db.WithContext(ctx).
		Where("(teacher_id = ? OR learner_id = ?) AND status = ?",
			userID, userID, models.ConnectionStatusAccepted).
		Preload("Teacher").
		Preload("Learner").
		Preload("Skill").
		Order("created_at DESC").
		Find(&connections).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return connections, nil
}

func (r *connectionRepository) list(ctx context.Context, query string, userID uint) ([]models.Connection, error) {
	var connections []models.Connection
	if err := r.db.WithContext(ctx).
		Where(query, userID).
		Preload("Teacher").
		Preload("Learner").
		Preload("Skill").
		Order("created_at DESC").
		Find(&connections).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return connections, nil
}
