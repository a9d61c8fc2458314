package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "teamlab/api/v1"
	"teamlab/internal/model"
)

func TestCreateAssignment_OpensDraftDeliveries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t)
	env.seedStudents(t, course, "s1", "s2")

	_, err := env.assignment.CreateAssignment(ctx, "impostor", &v1.CreateAssignmentRequest{
		CourseId: course.Id, Title: "lab 1", DueAt: env.clock.Add(24 * time.Hour),
	})
	assert.ErrorIs(t, err, v1.ErrNotCourseTeacher)

	data, err := env.assignment.CreateAssignment(ctx, course.TeacherId, &v1.CreateAssignmentRequest{
		CourseId: course.Id, Title: "lab 1", DueAt: env.clock.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "lab 1", data.Title)

	for _, id := range []string{"s1", "s2"} {
		delivery, err := env.assignmentRepo.GetDelivery(ctx, data.Id, id)
		require.NoError(t, err)
		require.NotNil(t, delivery)
		assert.Equal(t, model.DeliveryStatusDraft, delivery.Status)
		assert.False(t, delivery.Locked)
	}
}

func TestDeliveryTransitions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t)
	env.seedStudents(t, course, "s1")

	data, err := env.assignment.CreateAssignment(ctx, course.TeacherId, &v1.CreateAssignmentRequest{
		CourseId: course.Id, Title: "lab 1", DueAt: env.clock.Add(24 * time.Hour),
	})
	require.NoError(t, err)

	delivery, err := env.assignment.ReadDelivery(ctx, "s1", data.Id)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryStatusRead, delivery.Status)

	delivery, err = env.assignment.SubmitDelivery(ctx, "s1", data.Id)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryStatusSubmitted, delivery.Status)

	// submitted is terminal
	_, err = env.assignment.SubmitDelivery(ctx, "s1", data.Id)
	assert.ErrorIs(t, err, v1.ErrDeliveryLocked)
	_, err = env.assignment.ReadDelivery(ctx, "s1", data.Id)
	assert.ErrorIs(t, err, v1.ErrDeliveryLocked)
}

func TestFinalizeOverdue(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	course := env.seedCourse(t)
	env.seedStudents(t, course, "s1", "s2")

	data, err := env.assignment.CreateAssignment(ctx, course.TeacherId, &v1.CreateAssignmentRequest{
		CourseId: course.Id, Title: "lab 1", DueAt: env.clock.Add(time.Hour),
	})
	require.NoError(t, err)

	// s1 submits in time, s2 never does
	_, err = env.assignment.SubmitDelivery(ctx, "s1", data.Id)
	require.NoError(t, err)

	env.clock = env.clock.Add(2 * time.Hour)

	finalized, err := env.assignment.FinalizeOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, finalized)

	delivery, err := env.assignmentRepo.GetDelivery(ctx, data.Id, "s2")
	require.NoError(t, err)
	require.NotNil(t, delivery)
	assert.Equal(t, model.DeliveryStatusSubmitted, delivery.Status)
	assert.True(t, delivery.Locked)

	// a second pass finds nothing open
	finalized, err = env.assignment.FinalizeOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, finalized)
}
