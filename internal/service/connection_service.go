package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
)

// ConnectionService provides the teaching-connection lifecycle:
// request -> accept | reject, with accepted and rejected terminal.
type ConnectionService struct {
	connectionRepo repository.ConnectionRepository
	userRepo       repository.UserRepository
	skillRepo      repository.SkillRepository
}

// ConnectionAction is a response to a pending connection request.
type ConnectionAction string

const (
	// ConnectionActionAccept transitions pending -> accepted. Teacher only.
	ConnectionActionAccept ConnectionAction = "accept"
	// ConnectionActionReject transitions pending -> rejected. Either party
	// may reject: the counterpart declines, the requester withdraws.
	ConnectionActionReject ConnectionAction = "reject"
)

// ConnectionOverview groups a user's connections by role plus the accepted
// ones on either side.
type ConnectionOverview struct {
	AsTeacher []models.Connection `json:"as_teacher"`
	AsLearner []models.Connection `json:"as_learner"`
	Active    []models.Connection `json:"active"`
}

// NewConnectionService returns a new ConnectionService.
func NewConnectionService(
	connectionRepo repository.ConnectionRepository,
	userRepo repository.UserRepository,
	skillRepo repository.SkillRepository,
) *ConnectionService {
	return &ConnectionService{
		connectionRepo: connectionRepo,
		userRepo:       userRepo,
		skillRepo:      skillRepo,
	}
}

// Request creates a pending connection between the acting user and the target
// user for one skill. The acting user's role derives solely from mode, never
// from stored profile roles. A pending or accepted connection for the same
// (teacher, learner, skill) triple blocks a new request; a rejected one does
// not.
func (s *ConnectionService) Request(ctx context.Context, actingUserID, otherUserID, skillID uint, mode models.ConnectionMode, message string) (*models.Connection, error) {
	if actingUserID == otherUserID {
		return nil, models.NewValidationError("Cannot request a connection with yourself")
	}

	var teacherID, learnerID uint
	switch mode {
	case models.ConnectionModeAsLearner:
		teacherID, learnerID = otherUserID, actingUserID
	case models.ConnectionModeAsTeacher:
		teacherID, learnerID = actingUserID, otherUserID
	default:
		return nil, models.NewValidationError("Invalid connection mode")
	}

	if _, err := s.userRepo.GetByID(ctx, otherUserID); err != nil {
		return nil, err
	}
	if _, err := s.skillRepo.GetByID(ctx, skillID); err != nil {
		return nil, err
	}

	existing, err := s.connectionRepo.GetActiveByTriple(ctx, teacherID, learnerID, skillID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == models.ConnectionStatusAccepted {
			return nil, models.NewConflictError("Connection already established for this skill")
		}
		return nil, models.NewConflictError("Connection request already exists")
	}

	connection := &models.Connection{
		TeacherID: teacherID,
		LearnerID: learnerID,
		SkillID:   skillID,
		Status:    models.ConnectionStatusPending,
		Message:   message,
	}
	if err := s.connectionRepo.Create(ctx, connection); err != nil {
		return nil, err
	}

	observability.ConnectionTransitions.WithLabelValues(string(models.ConnectionStatusPending)).Inc()
	return s.connectionRepo.GetByID(ctx, connection.ID)
}

// Respond accepts or rejects a pending connection request. Accepting is
// permitted only for the connection's teacher; rejecting is permitted for
// either party. The status is unchanged on any failure.
func (s *ConnectionService) Respond(ctx context.Context, connectionID, actingUserID uint, action ConnectionAction) (*models.Connection, error) {
	connection, err := s.connectionRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}

	var status models.ConnectionStatus
	switch action {
	case ConnectionActionAccept:
		if connection.TeacherID != actingUserID {
			return nil, models.NewUnauthorizedError("Only the teacher can accept a connection request")
		}
		status = models.ConnectionStatusAccepted
	case ConnectionActionReject:
		if connection.TeacherID != actingUserID && connection.LearnerID != actingUserID {
			return nil, models.NewUnauthorizedError("You can only respond to your own connection requests")
		}
		status = models.ConnectionStatusRejected
	default:
		return nil, models.NewValidationError("Invalid connection action")
	}

	if connection.IsTerminal() {
		return nil, models.NewConflictError("Connection request is not pending")
	}

	if err := s.connectionRepo.UpdateStatus(ctx, connectionID, status); err != nil {
		return nil, err
	}

	observability.ConnectionTransitions.WithLabelValues(string(status)).Inc()
	return s.connectionRepo.GetByID(ctx, connectionID)
}

// ListFor returns the user's connections grouped by role, plus every accepted
// connection with the user on either side.
func (s *ConnectionService) ListFor(ctx context.Context, userID uint) (*ConnectionOverview, error) {
	asTeacher, err := s.connectionRepo.ListAsTeacher(ctx, userID)
	if err != nil {
		return nil, err
	}
	asLearner, err := s.connectionRepo.ListAsLearner(ctx, userID)
	if err != nil {
		return nil, err
	}
	active, err := s.connectionRepo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ConnectionOverview{
		AsTeacher: asTeacher,
		AsLearner: asLearner,
		Active:    active,
	}, nil
}
