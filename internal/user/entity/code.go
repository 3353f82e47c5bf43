package entity

import (
	"net/http"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgerror"
)

//nolint:gochecknoglobals // immutable error codes
var (
	CodeUserNotFound   = pkgerror.NewCode("USER_NOT_FOUND", "user not found", http.StatusNotFound)
	CodeUserEmailTaken = pkgerror.NewCode("USER_EMAIL_TAKEN", "email is already registered", http.StatusConflict)
)
