package inbound

import (
	"context"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goadvice/internal/user/entity"
	"github.com/shandysiswandi/goadvice/internal/user/usecase"
)

type uc interface {
	Create(ctx context.Context, in usecase.CreateInput) (entity.User, error)
	Get(ctx context.Context, id int64) (entity.User, error)
	Delete(ctx context.Context, id int64) error
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/users", end.Create)
	r.GET("/users/:id", end.Get)
	r.DELETE("/users/:id", end.Delete)
}
