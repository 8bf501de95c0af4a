package service

import "errors"

var (
	ErrHashingPassword = errors.New("password hashing failed")
	ErrSavingImage     = errors.New("saving product image failed")
)
