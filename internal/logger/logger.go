package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

const serviceName = "eventhub-service"

var Logger zerolog.Logger

// Init configures the global logger from LOG_LEVEL / LOG_FORMAT.
// It is safe to call before config.Load so early failures are still logged.
func Init() {
	Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Setup builds the package and global loggers. Unknown levels fall back to info,
// anything other than "json" renders with the console writer.
func Setup(levelName, format string, w io.Writer) {
	levelName = strings.TrimSpace(levelName)
	if levelName == "" {
		levelName = "info"
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		Logger = zerolog.New(w)
	} else {
		Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		})
	}
	Logger = Logger.With().Timestamp().Str("service", serviceName).Logger().Level(level)

	zlog.Logger = Logger
}
