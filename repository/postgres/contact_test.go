package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lDirtyl/goit-final-aws-email-db/domain"
	"github.com/lDirtyl/goit-final-aws-email-db/domain/model"
	"github.com/lDirtyl/goit-final-aws-email-db/pkg/logger"
)

func newMockRepository(t *testing.T) (*contactRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	repo := &contactRepository{
		db:     gormDB,
		logger: logger.NoOpLogger(),
	}
	return repo, mock, db
}

func TestContactRepository_Create(t *testing.T) {
	repo, mock, db := newMockRepository(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts"`).
		WithArgs("Jane Doe", "jane@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	contact := &model.Contact{Name: "Jane Doe", Email: "jane@example.com"}
	err := repo.Create(context.Background(), contact)

	require.NoError(t, err)
	assert.Equal(t, uint(7), contact.ID, "Create should backfill the assigned identifier")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Create_StorageError(t *testing.T) {
	repo, mock, db := newMockRepository(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.Contact{Name: "x", Email: "x@example.com"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_List(t *testing.T) {
	repo, mock, db := newMockRepository(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(1, "andrii", "andrii@example.com").
		AddRow(2, "olena", "olena@example.com")
	mock.ExpectQuery(`SELECT (.+) FROM "contacts" ORDER BY id ASC`).
		WillReturnRows(rows)

	contacts, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, uint(1), contacts[0].ID)
	assert.Equal(t, "olena", contacts[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_List_Empty(t *testing.T) {
	repo, mock, db := newMockRepository(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "contacts" ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	contacts, err := repo.List(context.Background())

	require.NoError(t, err, "Empty table must not be an error")
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_SearchByName(t *testing.T) {
	repo, mock, db := newMockRepository(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "contacts" WHERE name LIKE (.+) ORDER BY id ASC`).
		WithArgs("%len%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(2, "olena", "olena@example.com"))

	contacts, err := repo.SearchByName(context.Background(), "len")

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "olena", contacts[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_GetByName_NotFound(t *testing.T) {
	repo, mock, db := newMockRepository(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "contacts" WHERE name = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	contact, err := repo.GetByName(context.Background(), "nobody")

	assert.Nil(t, contact)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Count(t *testing.T) {
	repo, mock, db := newMockRepository(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
