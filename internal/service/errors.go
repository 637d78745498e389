package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("invalid request parameters")
	ErrUserNotFound         = errors.New("user not found")
	ErrPartnerNotFound      = errors.New("food partner not found")
	ErrFoodNotFound         = errors.New("food not found")
	ErrCommentNotFound      = errors.New("comment not found or not authorized")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrChallengeNotFound    = errors.New("challenge not found")
	ErrEmailTaken           = errors.New("account with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAlreadyFollowing     = errors.New("already following this partner")
	ErrNotFollowing         = errors.New("not following this partner")
	ErrAlreadyJoined        = errors.New("already joined this challenge")
	ErrGeoRequired          = errors.New("latitude and longitude are required for distance sorting")
	UnauthorizedError       = errors.New("not authorized")
	UnExpectedError         = errors.New("something went wrong, please try again later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrPartnerNotFound:      NotFound,
	ErrFoodNotFound:         NotFound,
	ErrCommentNotFound:      NotFound,
	ErrNotificationNotFound: NotFound,
	ErrChallengeNotFound:    NotFound,
	ErrEmailTaken:           Conflict,
	ErrInvalidCredentials:   Unauthorized,
	ErrAlreadyFollowing:     BadRequest,
	ErrNotFollowing:         BadRequest,
	ErrAlreadyJoined:        BadRequest,
	ErrGeoRequired:          BadRequest,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}
