package user

import (
	"github.com/shandysiswandi/goadvice/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkguid"
	"github.com/shandysiswandi/goadvice/internal/user/inbound"
	"github.com/shandysiswandi/goadvice/internal/user/store"
	"github.com/shandysiswandi/goadvice/internal/user/usecase"
)

type Dependency struct {
	Router    *pkgrouter.Router
	Validator usecase.Validator
	ID        pkguid.NumberID
}

func New(dep Dependency) error {
	if dep.ID == nil {
		sf, err := pkguid.NewSnowflake()
		if err != nil {
			return err
		}
		dep.ID = sf
	}

	uc := usecase.New(usecase.Dependency{
		Store:     store.NewInMemoryStore(),
		Validator: dep.Validator,
		ID:        dep.ID,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
