package repository

import (
	"context"
	"testing"
	"time"

	"social_feed/pkg/testutil"
	"social_feed/pkg/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFollowRepository_FollowingIDs(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewFollowRepository(db)

	mock.ExpectQuery(`SELECT "following_id" FROM "follows" WHERE follower_id = \$1 AND following_id IN \(\$2,\$3\)`).
		WithArgs("me", "a", "b").
		WillReturnRows(sqlmock.NewRows([]string{"following_id"}).AddRow("b"))

	ids, err := repo.FollowingIDs(context.Background(), "me", []string{"a", "b"})

	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_ListFollowers(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewFollowRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "follows" WHERE following_id = \$1 ORDER BY created_at desc LIMIT \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"follower_id", "following_id", "created_at"}).
			AddRow("a", "me", now).
			AddRow("b", "me", now.Add(-time.Minute)))
	mock.ExpectQuery(`SELECT \* FROM "user_profiles" WHERE "user_profiles"."user_id" IN \(\$1,\$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "nickname"}).AddRow("a", "neo"))

	rows, err := repo.ListFollowers(context.Background(), "me", utils.Pagination{Limit: 10})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].FollowerProfile)
	assert.Equal(t, "neo", *rows[0].FollowerProfile.Nickname)
	assert.Nil(t, rows[1].FollowerProfile)
	assert.Nil(t, rows[0].FollowingProfile)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Counts(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .*follower_count.* FROM "user_profiles" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"follower_count", "following_count"}).AddRow(3, 5))

		counts, err := repo.Counts(ctx, "u-1")

		require.NoError(t, err)
		assert.Equal(t, int64(3), counts.FollowerCount)
		assert.Equal(t, int64(5), counts.FollowingCount)
	})

	t.Run("Missing profile", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .*follower_count.* FROM "user_profiles" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"follower_count", "following_count"}))

		_, err := repo.Counts(ctx, "ghost")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
