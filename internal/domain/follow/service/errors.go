package service

import "social_feed/pkg/apperr"

var (
	ErrAlreadyFollowing = apperr.New(apperr.ErrDomainRule, "Already following this user")
	ErrCannotFollowSelf = apperr.New(apperr.ErrDomainRule, "Cannot follow yourself")
	ErrNotFollowing     = apperr.New(apperr.ErrDomainRule, "Not following this user")
)
