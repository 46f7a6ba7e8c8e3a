package domain

import "errors"

var (
	ErrInvalidInput = errors.New("invalid request")
	ErrPollNotFound = errors.New("poll not found")
	ErrNotOwner     = errors.New("requester is not the poll owner")
	ErrPollExpired  = errors.New("poll has expired")
	ErrUserNotFound = errors.New("user not found")
)
