package client

import "testing"

func TestAuthApply(t *testing.T) {
	tests := []struct {
		name       string
		auth       *AuthConfig
		wantHeader string
		wantValue  string
	}{
		{"basic", BasicAuth("user", "pass"), "Authorization", "Basic dXNlcjpwYXNz"},
		{"bearer", BearerAuth("tok123"), "Authorization", "Bearer tok123"},
		{"apikey", APIKeyAuth("k-1"), "X-API-Key", "k-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			tt.auth.apply(headers)
			if headers[tt.wantHeader] != tt.wantValue {
				t.Errorf("expected %s=%q, got %q", tt.wantHeader, tt.wantValue, headers[tt.wantHeader])
			}
		})
	}
}

func TestAuthApplyDoesNotReplace(t *testing.T) {
	headers := map[string]string{"Authorization": "Bearer existing"}
	BearerAuth("new").apply(headers)
	if headers["Authorization"] != "Bearer existing" {
		t.Errorf("existing header must win, got %q", headers["Authorization"])
	}
}

func TestAuthValidate(t *testing.T) {
	if err := (&AuthConfig{Type: AuthBasic}).Validate(); err == nil {
		t.Error("basic auth without username should fail")
	}
	if err := (&AuthConfig{Type: "kerberos"}).Validate(); err == nil {
		t.Error("unknown auth type should fail")
	}
	if err := BasicAuth("u", "p").Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
