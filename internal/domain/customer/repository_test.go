package customer

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/apperr"
	"salonbooking/internal/testutil"
)

func TestUpsert_Idempotent(t *testing.T) {
	repo := NewRepository(testutil.NewDB(t))
	ctx := context.Background()

	first, err := repo.Upsert(ctx, "biz-1", "Ann Lee", "Ann@Example.com ", "555-0100")
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, "biz-1", "Ann L.", "ann@example.com", "")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "ann@example.com", second.Email)
	assert.Equal(t, "Ann Lee", second.Name)
	assert.False(t, second.HasPassword())
}

func TestUpsert_ScopedPerBusiness(t *testing.T) {
	repo := NewRepository(testutil.NewDB(t))
	ctx := context.Background()

	a, err := repo.Upsert(ctx, "biz-1", "Ann", "ann@example.com", "")
	require.NoError(t, err)
	b, err := repo.Upsert(ctx, "biz-2", "Ann", "ann@example.com", "")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestUpsert_ConcurrentCallersShareOneRow(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	ids := make([]string, 8)
	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := repo.Upsert(ctx, "biz-1", "Ann", "ann@example.com", "")
			if err == nil {
				ids[i] = c.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}

	var count int64
	require.NoError(t, db.Model(&domain.Customer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := NewRepository(testutil.NewDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.True(t, apperr.IsNotFound(err))
}

func TestSetCredentials(t *testing.T) {
	repo := NewRepository(testutil.NewDB(t))
	ctx := context.Background()

	c, err := repo.Upsert(ctx, "biz-1", "Ann", "ann@example.com", "")
	require.NoError(t, err)

	require.NoError(t, repo.SetCredentials(ctx, c.ID, "Ann Lee", "555-0101", "hash"))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.HasPassword())
	assert.Equal(t, "Ann Lee", got.Name)
	assert.Equal(t, "555-0101", got.Phone)
}
