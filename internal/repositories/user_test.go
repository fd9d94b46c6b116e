package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

var userRowColumns = []string{"id", "email", "name", "credits", "total_usage", "first_upload_at", "role", "created_at", "updated_at"}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("Alice@Example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(id.String(), "alice@example.com", "Alice", 100, 4, nil, "user", now, now))

	user, err := repo.GetByEmail(context.Background(), "Alice@Example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, 100, user.Credits)
	assert.Equal(t, 4, user.TotalUsage)
	assert.Nil(t, user.FirstUploadAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	user, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserReadRepository_GetByID_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM users`).WillReturnError(sql.ErrConnDone)

	user, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Nil(t, user)
}

func TestUserWriteRepository_DebitCredits(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		rows        *sqlmock.Rows
		wantBalance int
		wantErr     error
	}{
		{
			name:        "sufficient balance",
			rows:        sqlmock.NewRows([]string{"credits"}).AddRow(98),
			wantBalance: 98,
		},
		{
			name:    "insufficient balance",
			rows:    sqlmock.NewRows([]string{"credits"}),
			wantErr: sql.ErrNoRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserWriteRepository(db)

			mock.ExpectQuery(`UPDATE users SET credits = credits - \$2`).
				WithArgs(userID, 2).
				WillReturnRows(tt.rows)

			balance, err := repo.DebitCredits(context.Background(), userID, 2)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantBalance, balance)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserWriteRepository_MarkFirstUpload(t *testing.T) {
	userID := uuid.New()

	t.Run("first", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`first_upload_at IS NULL`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		first, err := NewUserWriteRepository(db).MarkFirstUpload(context.Background(), userID)
		assert.NoError(t, err)
		assert.True(t, first)
	})

	t.Run("already set", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`first_upload_at IS NULL`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		first, err := NewUserWriteRepository(db).MarkFirstUpload(context.Background(), userID)
		assert.NoError(t, err)
		assert.False(t, first)
	})
}

func TestUserWriteRepository_DebitCredits_UsesContextTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	txm := NewTxManager(db)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE users`).WillReturnRows(sqlmock.NewRows([]string{"credits"}))
	mock.ExpectRollback()

	err := txm.WithTx(context.Background(), func(ctx context.Context) error {
		_, err := repo.DebitCredits(ctx, userID, 5)
		return err
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func insertUser(t *testing.T, db *sqlx.DB, credits int) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(`INSERT INTO users (id, email, name, credits) VALUES ($1, $2, $3, $4)`,
		id, id.String()+"@example.com", "Test", credits)
	require.NoError(t, err)
	return id
}

func TestUserWriteRepository_ConcurrentDebits(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	userID := insertUser(t, db, 10)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.DebitCredits(context.Background(), userID, 2)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	var credits, usage int
	require.NoError(t, db.QueryRow(`SELECT credits, total_usage FROM users WHERE id = $1`, userID).Scan(&credits, &usage))

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, 0, credits)
	assert.Equal(t, 5, usage)
}

func TestUserWriteRepository_MarkFirstUpload_Once(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	userID := insertUser(t, db, 3)

	first, err := repo.MarkFirstUpload(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, first)

	first, err = repo.MarkFirstUpload(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, first)
}
