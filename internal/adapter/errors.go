package adapter

import "errors"

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrConflict     = errors.New("account already exists")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNoToken      = errors.New("no session token, log in first")
)
