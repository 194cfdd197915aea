package appointment

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salonbooking/internal/pkg/apperr"
	"salonbooking/internal/testutil"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewRepository(db), mock
}

func TestRepository_ListStorageError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).
		WillReturnError(errors.New("connection reset by peer"))

	_, _, err := repo.List(context.Background(), "B1", ListFilter{})
	require.Error(t, err)

	var storageErr *apperr.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "fetch appointments", storageErr.Op)
	assert.Contains(t, storageErr.Error(), "connection reset by peer")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByIDStorageError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnError(errors.New("too many connections"))

	_, err := repo.GetByID(context.Background(), "A1")
	assert.True(t, apperr.IsStorage(err))
	assert.False(t, apperr.IsNotFound(err))
}

func TestRepository_DeleteStorageError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "appointments"`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "A1")
	assert.True(t, apperr.IsStorage(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_StorageErrorIsRedacted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).
		WillReturnError(errors.New("password authentication failed for user salon"))

	svc := NewService(repo, nil, nil, nil, time.UTC)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))

	rr := testutil.DoJSON(r, http.MethodGet, "/api/appointments?businessId=B1", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch appointments"}`, rr.Body.String())
}
