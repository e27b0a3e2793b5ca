// Package autoload initializes the global logger from the LOG_* environment
// on import, so main can blank-import it before any other setup runs.
package autoload

import (
	configx "github.com/witsarut/careermate/pkg/config"
	logx "github.com/witsarut/careermate/pkg/logger"
)

func init() {
	cfg, err := configx.New[logx.Config]("LOG")
	if err != nil {
		logx.Init()
		return
	}
	logx.Init(*cfg)
}
