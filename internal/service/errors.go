package service

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrRequestNotFound      = errors.New("no pending membership request")
	ErrRequestExists        = errors.New("membership request already pending")
	ErrAlreadyMember        = errors.New("user is already a member of this organization")
	ErrReapplyNotAllowed    = errors.New("re-application after denial is not allowed")
)
