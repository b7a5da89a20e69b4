package shared

import (
	"fmt"
	"os"
	"strings"
)

const (
	versionFileName   = "version.txt"
	userAgentTemplate = "Follower-Bot/%s (+%s)"
)

type IUserAgent interface {
	Value() string
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent(cfg *Config) IUserAgent {
	return &userAgent{
		userAgentValue: buildUserAgentString(cfg.AppName),
	}
}

func buildUserAgentString(appName string) string {
	versionBytes, _ := os.ReadFile(versionFileName)
	versionStr := strings.TrimSpace(string(versionBytes))
	versionStr = strings.TrimPrefix(versionStr, "v")
	if versionStr == "" {
		versionStr = "dev"
	}
	return fmt.Sprintf(userAgentTemplate, versionStr, appName)
}

func (ua *userAgent) Value() string {
	return ua.userAgentValue
}
