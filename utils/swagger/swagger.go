package swagger

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SwaggerConfig controls the rendered Swagger UI page.
type SwaggerConfig struct {
	Title         string
	SwaggerDocURL string
	AuthURL       string
}

const swaggerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <link rel="stylesheet" type="text/css" href="https://petstore.swagger.io/swagger-ui.css" />
  <style>
    html { box-sizing: border-box; overflow-y: scroll; }
    *, *:before, *:after { box-sizing: inherit; }
    body { margin: 0; background: #fafafa; }

    .custom-auth-container { margin-bottom: 20px; }
    .custom-auth-container h4 {
      color: #3b4151;
      font-size: 14px;
      font-weight: 600;
      margin: 0 0 5px;
    }
    .custom-auth-container .description {
      color: #3b4151;
      font-size: 12px;
      margin: 0 0 15px;
    }
    .custom-auth-container label {
      color: #3b4151;
      font-size: 12px;
      font-weight: 600;
    }
    .custom-auth-container .auth-btn-wrapper { margin-bottom: 15px; }
    .custom-auth-container input {
      border: 2px solid #3b82f6 !important;
      border-radius: 4px !important;
      color: #3b4151 !important;
      font-size: 14px !important;
      padding: 8px 12px !important;
      width: 450px !important;
      height: 40px !important;
    }
    .custom-auth-container .btn.authorize {
      background: #4990e2;
      border: 1px solid #4990e2;
      border-radius: 4px;
      color: #ffffff;
      cursor: pointer;
      font-size: 14px;
      font-weight: 600;
      padding: 8px 16px;
    }
    .custom-auth-container .btn.authorize:disabled {
      background: #6c757d;
      cursor: not-allowed;
      opacity: 0.65;
    }
    .custom-auth-container .auth-separator {
      background: #ebebeb;
      border: none;
      height: 1px;
      margin: 20px 0;
    }
  </style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://petstore.swagger.io/swagger-ui-bundle.js" crossorigin></script>
  <script src="https://petstore.swagger.io/swagger-ui-standalone-preset.js" crossorigin></script>
  <script>
    window.AUTH_URL = '{{.AuthURL}}';

    window.onload = () => {
      window.ui = SwaggerUIBundle({
        url: '{{.SwaggerDocURL}}',
        dom_id: '#swagger-ui',
        deepLinking: true,
        presets: [
          SwaggerUIBundle.presets.apis,
          SwaggerUIStandalonePreset
        ],
        layout: "StandaloneLayout",
        onComplete: function() {
          attachAuthorizeButtonListener();
        }
      });
    };

    const attachAuthorizeButtonListener = () => {
      document.body.addEventListener("click", (event) => {
        if (event.target.closest(".authorize")) {
          setTimeout(addLoginForm, 500);
        }
      });
    };

    const addLoginForm = () => {
      const modalContent = document.querySelector(".modal-ux .modal-ux-content .auth-container");
      if (!modalContent) {
        return;
      }
      if (!document.querySelector(".custom-auth-container")) {
        modalContent.prepend(createAuthContainer());
      }
    };

    const createAuthContainer = () => {
      const authContainer = document.createElement("div");
      authContainer.className = "custom-auth-container";

      authContainer.innerHTML = ` + "`" + `
        <h4>Login</h4>
        <div class="wrapper">
          <p class="description">Returns a <code>token</code> for using in <code>BearerAuth</code></p>
          <div class="col_header"><label>Email:</label></div>
          <div class="auth-btn-wrapper">
            <input id="swagger-email" type="email" placeholder="Email" />
          </div>
          <div class="col_header"><label>Password:</label></div>
          <div class="auth-btn-wrapper">
            <input id="swagger-password" type="password" placeholder="Password" />
          </div>
          <div class="auth-btn-wrapper">
            <button id="swagger-login" class="btn authorize unlocked"><span>Login</span></button>
          </div>
        </div>
        <hr class="auth-separator">
      ` + "`" + `;

      attachLoginFunctionality(authContainer);
      return authContainer;
    };

    const attachLoginFunctionality = (container) => {
      container.querySelector("#swagger-login").onclick = async function () {
        const email = document.getElementById("swagger-email").value;
        const password = document.getElementById("swagger-password").value;
        const loginBtn = this;

        if (!email || !password) {
          alert("Email and password are required.");
          return;
        }

        loginBtn.disabled = true;
        loginBtn.innerHTML = '<span>Logging in...</span>';

        try {
          const response = await fetch(window.AUTH_URL, {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify({ email: email, password: password }),
          });

          const data = await response.json();

          if (response.ok) {
            const token = "Bearer " + (data.data?.access_token || data.access_token);
            if (window.ui) {
              window.ui.preauthorizeApiKey("BearerAuth", token);
              alert("Login successful! You are now authorized to use all APIs.");
              document.getElementById("swagger-email").value = '';
              document.getElementById("swagger-password").value = '';
            } else {
              alert("Login successful but couldn't auto-authorize. Token: " + token);
            }
          } else {
            alert("Login failed: " + (data.message || data.error || "Unknown error"));
          }
        } catch (err) {
          alert("An error occurred during login: " + err.message);
        } finally {
          loginBtn.disabled = false;
          loginBtn.innerHTML = '<span>Login</span>';
        }
      };
    };
  </script>
</body>
</html>`

// ServeSwaggerUI renders the Swagger UI page with the embedded login form.
// Logging in through the form pre-authorizes BearerAuth for every request
// fired from the UI.
func ServeSwaggerUI(config SwaggerConfig) gin.HandlerFunc {
	if config.Title == "" {
		config.Title = "API Documentation"
	}
	if config.SwaggerDocURL == "" {
		config.SwaggerDocURL = "/swagger/doc.json"
	}
	if config.AuthURL == "" {
		config.AuthURL = "/api/v1/auth/login"
	}

	tmpl := template.Must(template.New("swagger").Parse(swaggerHTML))

	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(c.Writer, config); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render Swagger UI"})
		}
	}
}
