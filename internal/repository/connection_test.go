package repository

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionRepository_Integration(t *testing.T) {
	repo := NewConnectionRepository(testDB)
	ctx := context.Background()

	teacher := createTestUser(t, "conn_teacher")
	learner := createTestUser(t, "conn_learner")
	skill := createTestSkill(t, "conn_skill")

	t.Run("Create and GetByID", func(t *testing.T) {
		connection := &models.Connection{
			TeacherID: teacher.ID,
			LearnerID: learner.ID,
			SkillID:   skill.ID,
			Status:    models.ConnectionStatusPending,
			Message:   "Could you teach me?",
		}
		err := repo.Create(ctx, connection)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, connection.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ConnectionStatusPending, got.Status)
		assert.Equal(t, teacher.Username, got.Teacher.Username)
		assert.Equal(t, learner.Username, got.Learner.Username)
		assert.Equal(t, skill.Name, got.Skill.Name)
	})

	t.Run("duplicate active triple is rejected", func(t *testing.T) {
		duplicate := &models.Connection{
			TeacherID: teacher.ID,
			LearnerID: learner.ID,
			SkillID:   skill.ID,
			Status:    models.ConnectionStatusPending,
		}
		err := repo.Create(ctx, duplicate)
		require.Error(t, err)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeConflict, appErr.Code)
	})

	t.Run("GetActiveByTriple finds pending connection", func(t *testing.T) {
		got, err := repo.GetActiveByTriple(ctx, teacher.ID, learner.ID, skill.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.ConnectionStatusPending, got.Status)
	})

	t.Run("UpdateStatus to rejected frees the triple", func(t *testing.T) {
		existing, err := repo.GetActiveByTriple(ctx, teacher.ID, learner.ID, skill.ID)
		require.NoError(t, err)
		require.NotNil(t, existing)

		err = repo.UpdateStatus(ctx, existing.ID, models.ConnectionStatusRejected)
		require.NoError(t, err)

		// Rejected rows are kept but no longer block a new request.
		got, err := repo.GetActiveByTriple(ctx, teacher.ID, learner.ID, skill.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		kept, err := repo.GetByID(ctx, existing.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ConnectionStatusRejected, kept.Status)

		// A fresh request for the same triple is allowed again.
		retry := &models.Connection{
			TeacherID: teacher.ID,
			LearnerID: learner.ID,
			SkillID:   skill.ID,
			Status:    models.ConnectionStatusPending,
		}
		require.NoError(t, repo.Create(ctx, retry))
	})

	t.Run("ListAsTeacher, ListAsLearner, ListAccepted", func(t *testing.T) {
		existing, err := repo.GetActiveByTriple(ctx, teacher.ID, learner.ID, skill.ID)
		require.NoError(t, err)
		require.NotNil(t, existing)
		require.NoError(t, repo.UpdateStatus(ctx, existing.ID, models.ConnectionStatusAccepted))

		asTeacher, err := repo.ListAsTeacher(ctx, teacher.ID)
		require.NoError(t, err)
		assert.Len(t, asTeacher, 2) // rejected history plus the accepted retry

		asLearner, err := repo.ListAsLearner(ctx, learner.ID)
		require.NoError(t, err)
		assert.Len(t, asLearner, 2)

		accepted, err := repo.ListAccepted(ctx, teacher.ID)
		require.NoError(t, err)
		require.Len(t, accepted, 1)
		assert.Equal(t, models.ConnectionStatusAccepted, accepted[0].Status)

		acceptedForLearner, err := repo.ListAccepted(ctx, learner.ID)
		require.NoError(t, err)
		assert.Len(t, acceptedForLearner, 1)
	})

	t.Run("GetByID unknown returns not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999)
		require.Error(t, err)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}
