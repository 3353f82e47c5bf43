package inbound

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goadvice/internal/user/entity"
	"github.com/shandysiswandi/goadvice/internal/user/usecase"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Create(ctx context.Context, r *http.Request) (any, error) {
	var in usecase.CreateInput
	if err := pkgrouter.Bind(r, &in, nil); err != nil {
		return nil, err
	}

	user, err := h.uc.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	return CreateUserResponse{User: toHTTPUser(user)}, nil
}

func (h *HTTPEndpoint) Get(ctx context.Context, r *http.Request) (any, error) {
	id, err := parseID(pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	user, err := h.uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toHTTPUser(user), nil
}

func (h *HTTPEndpoint) Delete(ctx context.Context, r *http.Request) (any, error) {
	id, err := parseID(pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		return nil, err
	}

	return nil, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, pkgerror.NewBusiness(fmt.Sprintf("invalid user id %q", raw), pkgerror.CodeInvalidArgument)
	}
	return id, nil
}

func toHTTPUser(u entity.User) User {
	return User{
		ID:        strconv.FormatInt(u.ID, 10),
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
	}
}
