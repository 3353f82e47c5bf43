package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkguid"
	"github.com/shandysiswandi/goadvice/internal/user"
)

func (a *App) initModules() {
	if !a.config.GetBool("modules.user.enabled") {
		return
	}

	ids, err := pkguid.NewSnowflakeNode(a.config.GetInt("uid.node"))
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}

	if err := user.New(user.Dependency{
		Router:    a.router,
		Validator: a.validator,
		ID:        ids,
	}); err != nil {
		slog.Error("failed to init module user", "error", err)
		os.Exit(1)
	}
}
