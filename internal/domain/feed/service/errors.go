package service

import "social_feed/pkg/apperr"

var (
	ErrAlreadyLiked      = apperr.New(apperr.ErrAlreadyExists, "Already liked this feed")
	ErrAlreadyBookmarked = apperr.New(apperr.ErrAlreadyExists, "Already bookmarked this feed")

	ErrUpdateFeedForbidden    = apperr.New(apperr.ErrForbidden, "Not authorized to update this feed")
	ErrDeleteFeedForbidden    = apperr.New(apperr.ErrForbidden, "Not authorized to delete this feed")
	ErrUpdateCommentForbidden = apperr.New(apperr.ErrForbidden, "Not authorized to update this comment")
	ErrDeleteCommentForbidden = apperr.New(apperr.ErrForbidden, "Not authorized to delete this comment")
)
