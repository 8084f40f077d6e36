package repository

import (
	"context"
	"testing"
	"time"

	"social_feed/pkg/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var profileColumns = []string{"user_id", "nickname", "description", "profile_image_url", "follower_count", "following_count", "post_count", "created_at"}

func TestProfileRepository_GetByUserID(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "user_profiles" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows(profileColumns).
				AddRow("u-1", "neo", nil, nil, 2, 3, 4, time.Now()))

		row, err := repo.GetByUserID(ctx, "u-1")

		require.NoError(t, err)
		assert.Equal(t, "u-1", row.UserID)
		assert.Equal(t, "neo", *row.Nickname)
		assert.Nil(t, row.Description)
		assert.Equal(t, int64(2), row.FollowerCount)
		assert.Equal(t, int64(4), row.PostCount)
	})

	t.Run("No rows", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "user_profiles" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows(profileColumns))

		row, err := repo.GetByUserID(ctx, "missing")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, row)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_ListByUserIDs(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "user_profiles" WHERE user_id IN \(\$1,\$2\)`).
		WithArgs("u-1", "u-2").
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow("u-1", "neo", nil, nil, 0, 0, 0, time.Now()).
			AddRow("u-2", nil, nil, nil, 0, 0, 0, time.Now()))

	rows, err := repo.ListByUserIDs(context.Background(), []string{"u-1", "u-2"})

	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Nil(t, rows[1].Nickname)
	assert.NoError(t, mock.ExpectationsWereMet())
}
