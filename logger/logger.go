package logger

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	LOG_ENABLE          = "OTUSUB_LOGLEVEL"
	LOG_PATH            = "OTUSUB_LOGPATH"
	LOG_TIMEOUT         = "OTUSUB_TIMEOUT"
	LOG_DEFAULT_TIMEOUT = 24
	DEBUG_LOGGING       = 10
	INFO_LOGGING        = 20
	WARNING_LOGGING     = 30
	ERROR_LOGGING       = 40
	CRITICAL_LOGGING    = 50
)

var (
	Log *logrus.Logger
)

func init() {
	logPath := "/tmp/"
	if env := os.Getenv(LOG_PATH); len(env) > 0 {
		logPath = env
	}
	timeout := LOG_DEFAULT_TIMEOUT
	if env := os.Getenv(LOG_TIMEOUT); len(env) > 0 {
		if t, err := strconv.Atoi(env); err == nil {
			timeout = t
		}
	}
	logfile := logPath + "otusub.log"
	// Expire the log file after the configured timeout; the first
	// line holds the creation stamp
	if f, err := os.Open(logfile); err == nil {
		scanner := bufio.NewScanner(f)
		scanner.Scan()
		f.Close()
		if tag, terr := time.Parse(time.RFC3339, scanner.Text()); terr == nil {
			if int(time.Since(tag).Hours()) > timeout {
				os.Remove(logfile)
			}
		} else {
			os.Remove(logfile)
		}
	}
	Log = logrus.New()
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Log.SetLevel(logrusLevel(LogLevel()))
	Log.SetOutput(os.Stderr)
	f, err := os.OpenFile(logfile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		Log.Warnf("logger cannot open file: %v", err)
		return
	}
	if stat, serr := f.Stat(); serr == nil {
		if stat.Size() == 0 {
			f.WriteString(time.Now().Format(time.RFC3339) + "\n")
			f.Sync()
		}
	}
	Log.SetOutput(io.MultiWriter(os.Stderr, f))
}

func LogLevel() int {
	if env, err := strconv.Atoi(os.Getenv(LOG_ENABLE)); err == nil {
		return env
	}
	return CRITICAL_LOGGING
}

func logrusLevel(level int) logrus.Level {
	switch {
	case level <= DEBUG_LOGGING:
		return logrus.DebugLevel
	case level <= INFO_LOGGING:
		return logrus.InfoLevel
	case level <= WARNING_LOGGING:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

func DebugObj(name string, v interface{}) {
	data, _ := json.MarshalIndent(v, "", " ")
	Log.Debugf("%s:\n%s", name, data)
}

func DebugPrintf(format string, a ...interface{}) {
	Log.Debugf(format, a...)
}

func InfoObj(name string, v interface{}) {
	data, _ := json.MarshalIndent(v, "", " ")
	Log.Infof("%s:\n%s", name, data)
}

func InfoPrintf(format string, a ...interface{}) {
	Log.Infof(format, a...)
}

func WarningObj(name string, v interface{}) {
	data, _ := json.MarshalIndent(v, "", " ")
	Log.Warnf("%s:\n%s", name, data)
}

func WarningPrintf(format string, a ...interface{}) {
	Log.Warnf(format, a...)
}

func ErrorObj(name string, v interface{}) {
	data, _ := json.MarshalIndent(v, "", " ")
	Log.Errorf("%s:\n%s", name, data)
}

func ErrorPrintf(format string, a ...interface{}) {
	Log.Errorf(format, a...)
}

func CriticalObj(name string, v interface{}) {
	data, _ := json.MarshalIndent(v, "", " ")
	Log.Errorf("CRITICAL %s:\n%s", name, data)
}

func CriticalPrintf(format string, a ...interface{}) {
	Log.Errorf("CRITICAL "+format, a...)
}
