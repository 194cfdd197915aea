package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"salonbooking/internal/domain"
	"salonbooking/internal/testutil"
)

func TestCleanup_DeletesOnlyOldReadNotifications(t *testing.T) {
	repo := NewRepository(testutil.NewDB(t))
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	seed := func(isRead bool, age time.Duration) string {
		n := &domain.Notification{
			UserID: "C1", UserType: domain.UserTypeCustomer, Title: "t", Message: "m",
			IsRead: isRead, CreatedAt: now.Add(-age), UpdatedAt: now.Add(-age),
		}
		require.NoError(t, repo.Create(ctx, n))
		return n.ID
	}
	oldRead := seed(true, 100*24*time.Hour)
	oldUnread := seed(false, 100*24*time.Hour)
	recentRead := seed(true, 10*24*time.Hour)

	c := NewCleanup(repo, 90, zaptest.NewLogger(t))
	c.now = func() time.Time { return now }

	deleted, err := c.RunOnce(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = repo.GetByID(ctx, oldRead)
	assert.Error(t, err)
	_, err = repo.GetByID(ctx, oldUnread)
	assert.NoError(t, err)
	_, err = repo.GetByID(ctx, recentRead)
	assert.NoError(t, err)
}

func TestCleanup_StartRejectsBadSpec(t *testing.T) {
	c := NewCleanup(NewRepository(testutil.NewDB(t)), 0, nil)
	assert.Equal(t, 90*24*time.Hour, c.retention)
	assert.Error(t, c.Start("not a cron spec"))
}

func TestCleanup_StartAndStop(t *testing.T) {
	c := NewCleanup(NewRepository(testutil.NewDB(t)), 30, zaptest.NewLogger(t))
	require.NoError(t, c.Start("@daily"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	c.Stop(ctx)
	assert.NoError(t, ctx.Err())
}
