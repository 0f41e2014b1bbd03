package auth

import "strings"

// how the Google callback hands the token back to the caller
type ResponseMode int

const (
	ModeJSON ResponseMode = iota
	ModePage
	ModeRedirect
)

func (m ResponseMode) String() string {
	switch m {
	case ModePage:
		return "page"
	case ModeRedirect:
		return "redirect"
	}

	return "json"
}

// picks the callback response from the caller context: Swagger UI callers
// get a confirmation page, mode=api gets JSON, browsers are redirected to the
// frontend when one is configured
func ResolveResponseMode(referer, mode, frontendURL string) ResponseMode {
	switch {
	case strings.Contains(referer, "/api-docs") || mode == "swagger":
		return ModePage
	case mode == "api":
		return ModeJSON
	case frontendURL != "":
		return ModeRedirect
	}

	return ModeJSON
}
