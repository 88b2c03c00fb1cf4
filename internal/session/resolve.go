package session

import "github.com/Japjeet07/ChefMaker-sub000/internal/config"

const DefaultSessionName = "main"

// Resolve picks the session from the --session flag, then default_session of
// the layered config (config.toml, .env, CHEFCHAT_DEFAULT_SESSION), then "main".
// An unreadable config counts as unset.
func Resolve(flagOverride string) string {
	if flagOverride != "" {
		return flagOverride
	}
	cfg, err := config.LoadLayered(ConfigPath(), EnvPath())
	if err != nil {
		return DefaultSessionName
	}
	return FromConfig("", cfg)
}

// FromConfig is Resolve for callers that already loaded cfg.
func FromConfig(flagOverride string, cfg *config.Config) string {
	switch {
	case flagOverride != "":
		return flagOverride
	case cfg != nil && cfg.DefaultSession != "":
		return cfg.DefaultSession
	}
	return DefaultSessionName
}
