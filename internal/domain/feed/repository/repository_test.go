package repository

import (
	"context"
	"testing"
	"time"

	"social_feed/internal/domain/feed/model"
	"social_feed/pkg/database"
	"social_feed/pkg/testutil"
	"social_feed/pkg/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var feedColumns = []string{"id", "user_id", "images", "caption", "likes_count", "comments_count", "shared_count", "created_at"}

func TestFeedRepository_List(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewFeedRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "feeds" ORDER BY created_at desc LIMIT \$1`).
		WillReturnRows(sqlmock.NewRows(feedColumns).
			AddRow(2, "u-2", "{b.jpg}", "second", 0, 0, 0, now).
			AddRow(1, "u-1", "{a.jpg,c.jpg}", "first", 5, 1, 0, now.Add(-time.Hour)))
	mock.ExpectQuery(`SELECT \* FROM "user_profiles" WHERE "user_profiles"."user_id" IN \(\$1,\$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "nickname"}).AddRow("u-1", "neo"))

	rows, err := repo.List(context.Background(), utils.Pagination{Limit: 5})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].ID)
	assert.Nil(t, rows[0].Profile)
	assert.Equal(t, []string{"a.jpg", "c.jpg"}, []string(rows[1].Images))
	require.NotNil(t, rows[1].Profile)
	assert.Equal(t, "neo", *rows[1].Profile.Nickname)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedRepository_GetOwnerID(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .*user_id.* FROM "feeds" WHERE id = \$1`).
			WithArgs(int64(7), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u-1"))

		owner, err := repo.GetOwnerID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "u-1", owner)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .*user_id.* FROM "feeds" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		_, err := repo.GetOwnerID(ctx, 404)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestFeedRepository_Create(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewFeedRepository(db)

	mock.ExpectQuery(`INSERT INTO "feeds" .*RETURNING`).
		WillReturnRows(sqlmock.NewRows(feedColumns).AddRow(10, "u-1", "{a.jpg}", "hi", 0, 0, 0, time.Now()))

	row := &model.FeedRow{UserID: "u-1", Images: []string{"a.jpg"}, Caption: "hi"}
	err := repo.Create(context.Background(), row)

	require.NoError(t, err)
	assert.Equal(t, int64(10), row.ID)
	assert.Equal(t, int64(0), row.LikesCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedRepository_Delete(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewFeedRepository(db)

	t.Run("Deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM "feeds" WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 7))
	})

	t.Run("Nothing deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM "feeds" WHERE id = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 8), gorm.ErrRecordNotFound)
	})
}

func TestLikeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicate like is a unique violation", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := NewLikeRepository(db)
		mock.ExpectQuery(`INSERT INTO "feed_likes"`).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err := repo.Create(ctx, &model.FeedLikeRow{FeedID: 1, UserID: "u-1"})

		assert.True(t, database.IsUniqueViolation(err))
	})

	t.Run("Batch membership", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := NewLikeRepository(db)
		mock.ExpectQuery(`SELECT "feed_id" FROM "feed_likes" WHERE user_id = \$1 AND feed_id IN \(\$2,\$3,\$4\)`).
			WithArgs("u-1", int64(1), int64(2), int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"feed_id"}).AddRow(2))

		ids, err := repo.LikedFeedIDs(ctx, "u-1", []int64{1, 2, 3})

		require.NoError(t, err)
		assert.Equal(t, []int64{2}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Exists", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := NewLikeRepository(db)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "feed_likes" WHERE feed_id = \$1 AND user_id = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		ok, err := repo.Exists(ctx, 1, "u-1")

		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestCommentRepository_ListByFeed(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewCommentRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "feed_comments" WHERE feed_id = \$1 ORDER BY created_at asc`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "feed_id", "user_id", "parent_comment_id", "content", "created_at"}).
			AddRow(1, 7, "u-1", nil, "first", now).
			AddRow(2, 7, "u-2", 1, "reply", now.Add(time.Second)))
	mock.ExpectQuery(`SELECT \* FROM "user_profiles" WHERE "user_profiles"."user_id" IN \(\$1,\$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "nickname"}))

	rows, err := repo.ListByFeed(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[0].ParentCommentID)
	assert.Equal(t, int64(1), *rows[1].ParentCommentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
