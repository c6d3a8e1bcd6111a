package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
	"github.com/Vijaykarthik1/tnstc-leave/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLeaveRequestRepository(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := postgresql.NewUserRepository(db)
	repo := postgresql.NewLeaveRequestRepository(db)

	driver, err := users.Create(ctx, user.User{GoogleID: "g-1", Email: "ravi@example.com", Name: "Ravi", Role: user.RoleDriver})
	require.NoError(t, err)

	newRequest := func(from, to time.Time) leave.LeaveRequest {
		lr, err := repo.Create(ctx, leave.LeaveRequest{
			UserID:    driver.ID,
			FullName:  "Ravi",
			Role:      leave.RequesterDriver,
			RouteFrom: "Chennai",
			RouteTo:   "Madurai",
			FromDate:  from,
			ToDate:    to,
			LeaveType: leave.LeaveTypeCasual,
		})
		require.NoError(t, err)
		return lr
	}

	t.Run("create starts pending", func(t *testing.T) {
		lr := newRequest(date(2025, 3, 10), date(2025, 3, 12))
		assert.NotEmpty(t, lr.ID)
		assert.Equal(t, leave.StatusPending, lr.Status)
		assert.Empty(t, lr.Reliever)
		assert.Equal(t, date(2025, 3, 10), lr.FromDate)
	})

	t.Run("update status only once", func(t *testing.T) {
		lr := newRequest(date(2025, 4, 1), date(2025, 4, 2))

		approved, err := repo.UpdateStatus(ctx, lr.ID, leave.StatusPending, leave.StatusApproved, "Sathish M")
		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, approved.Status)
		assert.Equal(t, "Sathish M", approved.Reliever)

		_, err = repo.UpdateStatus(ctx, lr.ID, leave.StatusPending, leave.StatusRejected, "")
		assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	})

	t.Run("update unknown id", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, "missing", leave.StatusPending, leave.StatusRejected, "")
		assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	})

	t.Run("list by user with range", func(t *testing.T) {
		all, err := repo.ListByUser(ctx, driver.ID, nil, nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		from, to := date(2025, 4, 1), date(2025, 4, 30)
		april, err := repo.ListByUser(ctx, driver.ID, &from, &to)
		require.NoError(t, err)
		require.Len(t, april, 1)
		assert.Equal(t, date(2025, 4, 1), april[0].FromDate)
	})

	t.Run("summary and monthly stats", func(t *testing.T) {
		s, err := repo.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, leave.Summary{Total: 2, Approved: 1, Pending: 1}, s)

		stats, err := repo.MonthlyStats(ctx, 2025)
		require.NoError(t, err)
		assert.Equal(t, []leave.MonthlyStat{
			{Month: 3, Total: 1},
			{Month: 4, Total: 1, Approved: 1},
		}, stats)
	})
}

func TestUserRepository(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(db)

	created, err := repo.Create(ctx, user.User{GoogleID: "g-2", Email: "a@example.com", Name: "Admin", Role: user.RoleAdmin})
	require.NoError(t, err)

	got, err := repo.GetByGoogleID(ctx, "g-2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, repo.UpdateProfilePhoto(ctx, created.ID, "http://localhost/uploads/a.png"))
	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/uploads/a.png", got.ProfilePhoto)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.ErrorIs(t, repo.UpdateProfilePhoto(ctx, "missing", "x"), user.ErrUserNotFound)
}
