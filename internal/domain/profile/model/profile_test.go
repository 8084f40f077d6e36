package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMapProfile(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	row := ProfileRow{
		UserID:          "u-1",
		Nickname:        strPtr("neo"),
		Description:     nil,
		ProfileImageURL: strPtr("https://img/neo.png"),
		FollowerCount:   3,
		FollowingCount:  7,
		PostCount:       12,
		CreatedAt:       created,
	}

	p := MapProfile(row)

	assert.Equal(t, Profile{
		UserID:          "u-1",
		Nickname:        strPtr("neo"),
		Description:     nil,
		ProfileImageURL: strPtr("https://img/neo.png"),
		FollowerCount:   3,
		FollowingCount:  7,
		PostCount:       12,
		CreatedAt:       created,
	}, p)
	assert.Equal(t, p, MapProfile(row))
}

func TestMapProfileSummary(t *testing.T) {
	t.Run("Missing relation", func(t *testing.T) {
		s := MapProfileSummary(nil)

		assert.Equal(t, "", s.UserID)
		assert.Nil(t, s.Nickname)
		assert.Nil(t, s.ProfileImageURL)
	})

	t.Run("Present relation", func(t *testing.T) {
		s := MapProfileSummary(&ProfileRow{UserID: "u-2", Nickname: strPtr("trinity")})

		assert.Equal(t, "u-2", s.UserID)
		assert.Equal(t, "trinity", *s.Nickname)
		assert.Nil(t, s.ProfileImageURL)
	})
}

func TestUpdateProfileParams(t *testing.T) {
	t.Run("Absent vs null", func(t *testing.T) {
		var p UpdateProfileParams
		require.NoError(t, json.Unmarshal([]byte(`{"nickname":"morpheus","description":null}`), &p))

		cols := p.Columns()

		assert.Len(t, cols, 2)
		assert.Equal(t, "morpheus", *(cols["nickname"].(*string)))
		assert.Nil(t, cols["description"].(*string))
		_, hasImage := cols["profile_image_url"]
		assert.False(t, hasImage)
	})

	t.Run("Empty patch", func(t *testing.T) {
		var p UpdateProfileParams
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

		assert.Empty(t, p.Columns())
	})

	t.Run("Constructors", func(t *testing.T) {
		p := UpdateProfileParams{Nickname: Some("a"), ProfileImageURL: Null()}

		cols := p.Columns()

		assert.Equal(t, "a", *(cols["nickname"].(*string)))
		assert.Nil(t, cols["profile_image_url"].(*string))
	})
}
