package pavoconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/pavo/configs"
	"github.com/reusee/pavo/logs"
)

//go:embed schema.cue
var schema string

var configFileNames = []string{
	"pavo.cue",
	".pavo.cue",
}

// ConfigsLoader loads pavo.cue and .pavo.cue from the working directory,
// the user config directory and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	loader := configs.NewLoader(findConfigFiles(dirs), schema)
	paths, err := loader.Paths()
	if err != nil {
		logger.Warn("config file",
			"error", err,
		)
	} else if len(paths) > 0 {
		logger.Debug("config file",
			"paths", paths,
		)
	}
	return loader
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range configFileNames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
