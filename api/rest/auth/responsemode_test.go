package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveResponseMode(t *testing.T) {
	tests := []struct {
		name        string
		referer     string
		mode        string
		frontendURL string
		want        ResponseMode
	}{
		{"swagger referer", "http://localhost:8080/api-docs/index.html", "", "https://app.example", ModePage},
		{"swagger flag", "", "swagger", "https://app.example", ModePage},
		{"swagger wins over api", "http://localhost:8080/api-docs/", "api", "", ModePage},
		{"api flag", "", "api", "https://app.example", ModeJSON},
		{"frontend redirect", "https://accounts.google.com/", "", "https://app.example", ModeRedirect},
		{"json fallback", "", "", "", ModeJSON},
		{"unknown mode falls through", "", "web", "", ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveResponseMode(tt.referer, tt.mode, tt.frontendURL))
		})
	}
}
