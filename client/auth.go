package client

import (
	"encoding/base64"
	"fmt"
)

// AuthType identifies the authentication method.
type AuthType string

const (
	// AuthNone disables authentication.
	AuthNone AuthType = ""
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic AuthType = "basic"
	// AuthBearer uses Bearer token authentication.
	AuthBearer AuthType = "bearer"
	// AuthAPIKey sends an API key in a header.
	AuthAPIKey AuthType = "apikey"
)

const defaultAPIKeyHeader = "X-API-Key"

// AuthConfig configures default request authentication. It is applied as
// headers during parameter resolution, so per-call header overrides can
// still replace it.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType `yaml:"type" mapstructure:"type"`
	// Username is the basic auth username.
	Username string `yaml:"username" mapstructure:"username"`
	// Password is the basic auth password.
	Password string `yaml:"password" mapstructure:"password"`
	// Token is the bearer token.
	Token string `yaml:"token" mapstructure:"token"`
	// Key is the API key value.
	Key string `yaml:"key" mapstructure:"key"`
	// Header is the API key header name. Defaults to X-API-Key.
	Header string `yaml:"header" mapstructure:"header"`
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// APIKeyAuth creates an API key auth config sent via header.
func APIKeyAuth(key string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, Header: defaultAPIKeyHeader}
}

// Validate checks the auth configuration.
func (a *AuthConfig) Validate() error {
	switch a.Type {
	case AuthNone:
		return nil
	case AuthBasic:
		if a.Username == "" {
			return fmt.Errorf("client: basic auth requires a username")
		}
	case AuthBearer:
		if a.Token == "" {
			return fmt.Errorf("client: bearer auth requires a token")
		}
	case AuthAPIKey:
		if a.Key == "" {
			return fmt.Errorf("client: api key auth requires a key")
		}
	default:
		return fmt.Errorf("client: unknown auth type %q", a.Type)
	}
	return nil
}

// apply writes the auth headers into a resolved header map. Existing
// entries are not replaced, so explicit overrides win.
func (a *AuthConfig) apply(headers map[string]string) {
	set := func(k, v string) {
		if _, ok := headers[k]; !ok {
			headers[k] = v
		}
	}
	switch a.Type {
	case AuthBasic:
		cred := base64.StdEncoding.EncodeToString([]byte(a.Username + ":" + a.Password))
		set("Authorization", "Basic "+cred)
	case AuthBearer:
		set("Authorization", "Bearer "+a.Token)
	case AuthAPIKey:
		name := a.Header
		if name == "" {
			name = defaultAPIKeyHeader
		}
		set(name, a.Key)
	}
}
