package auth

import (
	"html/template"
	"net/http"

	"codeberg.org/bookhub/server/bookhub/identity"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

type confirmationData struct {
	Token string
	User  identity.UserSummary
}

var confirmationPage = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Authentication Successful</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; display: flex; justify-content: center; align-items: center; min-height: 100vh; margin: 0; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); }
    .container { background: white; padding: 40px; border-radius: 10px; box-shadow: 0 10px 40px rgba(0,0,0,0.2); max-width: 500px; text-align: center; }
    .token { background: #f5f5f5; padding: 20px; border-radius: 5px; margin: 20px 0; word-break: break-all; font-family: monospace; font-size: 12px; max-height: 150px; overflow-y: auto; }
    .user { background: #e3f2fd; padding: 15px; border-radius: 5px; margin: 20px 0; text-align: left; }
    button, a.back { color: white; border: none; padding: 10px 20px; border-radius: 5px; cursor: pointer; font-size: 16px; margin: 10px 5px; text-decoration: none; display: inline-block; }
    button { background: #667eea; }
    a.back { background: #4caf50; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Authentication Successful!</h1>
    <div class="user">
      <strong>Name:</strong> {{.User.Name}}<br>
      <strong>Email:</strong> {{.User.Email}}<br>
      <strong>Role:</strong> {{.User.Role}}
    </div>
    <p><strong>Your JWT Token:</strong></p>
    <div class="token" id="token">{{.Token}}</div>
    <button onclick="copyToken()">Copy Token</button>
    <a href="/api-docs/index.html" class="back">Back to Swagger</a>
    <p style="margin-top: 20px; font-size: 14px; color: #666;">
      To use this token in Swagger:<br>
      1. Click the "Authorize" button<br>
      2. Paste the token as "Bearer &lt;token&gt;"<br>
      3. Click "Authorize"
    </p>
  </div>
  <script>
    function copyToken() {
      navigator.clipboard.writeText(document.getElementById('token').textContent);
    }
  </script>
</body>
</html>
`))

// renders the token confirmation page shown to Swagger UI users
func renderConfirmation(c *gin.Context, result *identity.LoginResult) {
	c.Render(http.StatusOK, render.HTML{
		Template: confirmationPage,
		Name:     "confirmation",
		Data:     confirmationData{Token: result.Token, User: result.User},
	})
}
