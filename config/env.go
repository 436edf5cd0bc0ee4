package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment selects secret handling, validation strictness and log format.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// ParseEnvironment maps an ENV value to an Environment. An empty value means
// development; ci wins over anything else.
func ParseEnvironment(name string, ci bool) (Environment, error) {
	if ci {
		return CI, nil
	}
	switch env := Environment(strings.ToLower(strings.TrimSpace(name))); env {
	case "":
		return Development, nil
	case Development, Test, CI, Production:
		return env, nil
	default:
		return "", fmt.Errorf("unknown environment: %s", name)
	}
}

func environmentFrom(v *viper.Viper) (Environment, error) {
	return ParseEnvironment(v.GetString("ENV"), v.GetBool("CI"))
}

// GetEnvironment reads the environment straight from the process. Commands
// use it to pick a log format before the configuration has loaded; an unknown
// ENV falls back to development.
func GetEnvironment() Environment {
	env, err := ParseEnvironment(os.Getenv("ENV"), os.Getenv("CI") == "true")
	if err != nil {
		return Development
	}
	return env
}
