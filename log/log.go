package log

import (
	"io"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"

	"tool-permission/config"
)

var (
	Log        *Logger
	serverName string
)

type Logger struct {
	*logrus.Logger
}

func Init(cfg *config.LoggerConfig) error {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	l.SetReportCaller(cfg.ReportCaller)

	switch cfg.Formatter {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	default:
		l.SetFormatter(&logrus.TextFormatter{TimestampFormat: "2006-01-02 15:04:05", FullTimestamp: true})
	}

	var writers []io.Writer
	if !cfg.DisableConsole {
		writers = append(writers, os.Stdout)
	}
	if cfg.Write {
		writer, err := rotatelogs.New(
			path.Join(cfg.Path, cfg.FileName+".%Y%m%d%H.log"),
			rotatelogs.WithLinkName(path.Join(cfg.Path, cfg.FileName+".log")),
			rotatelogs.WithMaxAge(cfg.MaxAge*time.Hour),
			rotatelogs.WithRotationTime(cfg.RotationTime*time.Hour),
		)
		if err != nil {
			return err
		}
		writers = append(writers, writer)
	}
	if len(writers) == 0 {
		l.SetOutput(ioutil.Discard)
	} else {
		l.SetOutput(io.MultiWriter(writers...))
	}

	initServerName()
	Log = &Logger{Logger: l}
	return nil
}

// WithAlarm 带上服务名，供日志采集侧触发告警
func (l *Logger) WithAlarm() *logrus.Entry {
	return l.WithField("alarm", serverName)
}

// 主机名形如 xxx-yyy-6f9c-d7xq，去掉后两段得到服务名
func initServerName() {
	hostName, err := os.Hostname()
	if err != nil {
		serverName = "unknown"
		return
	}
	tempArr := strings.Split(hostName, "-")
	if len(tempArr) > 2 {
		serverName = strings.Join(tempArr[:len(tempArr)-2], "-")
	} else {
		serverName = hostName
	}
}
