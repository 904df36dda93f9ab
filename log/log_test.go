package log

import (
	"strings"
	"testing"

	"tool-permission/config"
)

func TestFormatLog(t *testing.T) {
	err := Init(&config.LoggerConfig{
		Level:          "info",
		Formatter:      "json",
		DisableConsole: true,
		Write:          true,
		Path:           t.TempDir(),
		FileName:       "permission",
		MaxAge:         24,
		RotationTime:   7 * 24,
		Debug:          false,
		ReportCaller:   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	Log.WithAlarm().Error("sign service error:", 234234)
}

func TestGetServerName(t *testing.T) {
	hostName := "permission-server-6f9c-d7xq"
	tempArr := strings.Split(hostName, "-")
	if len(tempArr) > 2 {
		serverName = strings.Join(tempArr[:len(tempArr)-2], "-")
	} else {
		serverName = hostName
	}
	if serverName != "permission-server" {
		t.Errorf("serverName = %s, want permission-server", serverName)
	}
}
