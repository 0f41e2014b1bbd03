package auth

import (
	stderrors "errors"
	"net/http"
	"net/url"

	"codeberg.org/bookhub/server/bookhub/identity"
	"codeberg.org/bookhub/server/internal/auth"
	"codeberg.org/bookhub/server/internal/errors"
	"codeberg.org/bookhub/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

const (
	msgGoogleFailed      = "Google authentication failed."
	msgGoogleUnavailable = "Google authentication is not configured."

	// remembers ?mode= across the Google round trip
	modeSessionName = "bookhub_oauth_mode"
	modeSessionKey  = "mode"
)

var (
	beginAuth    = gothic.BeginAuthHandler
	completeAuth = gothic.CompleteUserAuth
)

// RegisterHandler godoc
// @Summary Register a new user
// @Description Create a local account with name, email and password. No token is issued
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/auth/register [post]
func RegisterHandler(svc IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		userID, err := svc.Register(c.Request.Context(), identity.Registration{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
		})

		if err != nil {
			respondIdentityError(c, err)
			return
		}

		c.JSON(http.StatusCreated, RegisterResponse{
			Message: "User registered successfully.",
			UserID:  userID,
		})
	}
}

// LoginHandler godoc
// @Summary Log in
// @Description Exchange email and password for a one-hour JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/auth/login [post]
func LoginHandler(svc IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		result, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondIdentityError(c, err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Message: "Login successful.",
			Token:   result.Token,
			User:    result.User,
		})
	}
}

// LogoutHandler godoc
// @Summary Log out
// @Description Tokens are stateless; the client discards its token
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/auth/logout [post]
// @Security BearerAuth
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.GetUserID(c)
		logger.FromContext(c.Request.Context()).Debug("user logged out", "user_id", userID)

		c.JSON(http.StatusOK, MessageResponse{Message: "User logged out successfully."})
	}
}

// ProfileHandler godoc
// @Summary Get current user
// @Description Profile of the token subject
// @Tags auth
// @Produce json
// @Success 200 {object} identity.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/auth/profile [get]
// @Security BearerAuth
func ProfileHandler(svc IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, auth.MsgHeaderMissing)
			return
		}

		profile, err := svc.Profile(c.Request.Context(), userID)
		if err != nil {
			respondIdentityError(c, err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// BeginGoogleHandler godoc
// @Summary Start Google sign-in
// @Description Redirects to Google. mode=api or mode=swagger selects the callback response
// @Tags auth
// @Param mode query string false "Callback response mode" Enums(api, swagger)
// @Success 302 {string} string "Redirect to Google"
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/auth/google [get]
func BeginGoogleHandler(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !opts.GoogleEnabled {
			errors.Unavailable(c, msgGoogleUnavailable)
			return
		}

		rememberMode(c, c.Query("mode"))
		setProvider(c)

		beginAuth(c.Writer, c.Request)
	}
}

// GoogleCallbackHandler godoc
// @Summary Google sign-in callback
// @Description Creates or links the account and returns a JWT as JSON, an HTML page, or a frontend redirect
// @Tags auth
// @Produce json,html
// @Param mode query string false "Response mode" Enums(api, swagger)
// @Success 200 {object} AuthResponse
// @Success 302 {string} string "Redirect to FRONTEND_URL/auth/callback?token="
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/auth/google/callback [get]
func GoogleCallbackHandler(svc IdentityService, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !opts.GoogleEnabled {
			errors.Unavailable(c, msgGoogleUnavailable)
			return
		}

		mode := c.Query("mode")
		if mode == "" {
			mode = recallMode(c)
		}

		setProvider(c)

		gothUser, err := completeAuth(c.Writer, c.Request)
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn("google authentication rejected", "error", err)
			errors.Unauthorized(c, msgGoogleFailed)
			return
		}

		result, outcome, err := svc.CompleteGoogleLogin(c.Request.Context(), identity.GoogleProfile{
			ID:    gothUser.UserID,
			Email: gothUser.Email,
			Name:  gothUser.Name,
		})

		if err != nil {
			respondIdentityError(c, err)
			return
		}

		logger.FromContext(c.Request.Context()).Info("google login",
			"user_id", result.UserID,
			"outcome", outcome.String(),
		)

		switch ResolveResponseMode(c.GetHeader("Referer"), mode, opts.FrontendURL) {
		case ModePage:
			renderConfirmation(c, result)
		case ModeRedirect:
			c.Redirect(http.StatusFound, opts.FrontendURL+"/auth/callback?token="+url.QueryEscape(result.Token))
		default:
			c.JSON(http.StatusOK, AuthResponse{
				Message: "Google authentication successful.",
				Token:   result.Token,
				User:    result.User,
			})
		}
	}
}

// GoogleFailureHandler godoc
// @Summary Google sign-in failure
// @Tags auth
// @Produce json
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/auth/google/failure [get]
func GoogleFailureHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		errors.Unauthorized(c, msgGoogleFailed)
	}
}

// translates identity errors into the JSON error envelope
func respondIdentityError(c *gin.Context, err error) {
	var idErr *identity.Error
	if !stderrors.As(err, &idErr) {
		errors.InternalError(c, "Internal server error.", err)
		return
	}

	switch {
	case stderrors.Is(err, identity.ErrValidation),
		stderrors.Is(err, identity.ErrConflict),
		stderrors.Is(err, identity.ErrInvalidCredentials):
		errors.BadRequest(c, idErr.Message)
	case stderrors.Is(err, identity.ErrNotFound):
		errors.NotFound(c, idErr.Message)
	default:
		errors.InternalError(c, idErr.Message, err)
	}
}

// gothic resolves the provider from the query string
func setProvider(c *gin.Context) {
	q := c.Request.URL.Query()
	q.Set("provider", auth.ProviderGoogle)
	c.Request.URL.RawQuery = q.Encode()
}

func rememberMode(c *gin.Context, mode string) {
	if mode == "" {
		return
	}

	session, err := gothic.Store.Get(c.Request, modeSessionName)
	if err != nil {
		logger.FromContext(c.Request.Context()).Debug("failed to open mode session", "error", err)
		return
	}

	session.Values[modeSessionKey] = mode
	if err := session.Save(c.Request, c.Writer); err != nil {
		logger.FromContext(c.Request.Context()).Debug("failed to save mode session", "error", err)
	}
}

// returns the mode stored by rememberMode and clears it
func recallMode(c *gin.Context) string {
	session, err := gothic.Store.Get(c.Request, modeSessionName)
	if err != nil {
		return ""
	}

	mode, _ := session.Values[modeSessionKey].(string)
	if mode == "" {
		return ""
	}

	session.Options.MaxAge = -1
	if err := session.Save(c.Request, c.Writer); err != nil {
		logger.FromContext(c.Request.Context()).Debug("failed to clear mode session", "error", err)
	}

	return mode
}
