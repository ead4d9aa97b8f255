package media

import (
	"log/slog"
	"path/filepath"
	"strings"

	"student-wellness-system/config"
	"student-wellness-system/internal/global/logger"
	globalmedia "student-wellness-system/internal/global/media"
)

var (
	log   *slog.Logger
	store *globalmedia.Store
)

type ModuleMedia struct{}

func (m *ModuleMedia) GetName() string {
	return "Media"
}

func (m *ModuleMedia) Init() {
	log = logger.New("Media")

	cfg := config.Get()
	saveDir := filepath.Join(cfg.Storage.Home, "covers")
	baseURL := strings.TrimRight(cfg.Domain, "/") + "/" + cfg.Prefix + "/static/covers"
	store = globalmedia.NewStore(saveDir, baseURL)
}
