package handlers

import (
	"net/http"
	"time"

	"scoreboard/internal/metrics"
	"scoreboard/internal/models"
	"scoreboard/internal/service"

	"github.com/gin-gonic/gin"
)

// SignUpRequest is the payload of POST /api/auth/signup.
type SignUpRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"s3cret"`
	// Role is honored only for callers holding an admin session.
	Role string `json:"role,omitempty" example:"user"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"s3cret"`
}

// RoleRequest is the payload of PUT /api/users/{username}/role.
type RoleRequest struct {
	Role string `json:"role" example:"admin"`
}

// signUp godoc
// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignUpRequest  true  "credentials"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input SignUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.SignUp(c.Request.Context(), service.SignUpInput{
		Username: input.Username,
		Password: input.Password,
		Role:     input.Role,
	}, currentSession(c))
	if err != nil {
		h.respondError(c, err, http.StatusBadRequest, "Error creating user", "auth_sign_up_failed", "username", input.Username)
		return
	}

	if h.log != nil {
		h.log.Infow("auth_signed_up", "username", user.Username, "role", user.Role)
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// login godoc
// @Summary      Log in
// @Description  Sets the session cookie on success.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "credentials"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	sess, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.opts.Metrics.ObserveLogin(metrics.LoginFailure)
		h.respondError(c, err, http.StatusBadRequest, "Error checking user", "auth_login_failed", "username", input.Username)
		return
	}

	token, err := h.opts.Codec.Encode(sess.ID, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		_ = h.services.Logout(c.Request.Context(), sess.ID)
		h.respondError(c, err, http.StatusBadRequest, "Error checking user", "auth_cookie_encode_failed")
		return
	}
	h.setSessionCookie(c, token, sess)
	h.opts.Metrics.ObserveLogin(metrics.LoginSuccess)

	if h.log != nil {
		h.log.Infow("auth_logged_in", "username", sess.Username, "role", sess.Role)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "role": sess.Role})
}

// logout godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	if sess := currentSession(c); sess != nil {
		if err := h.services.Logout(c.Request.Context(), sess.ID); err != nil {
			h.respondError(c, err, http.StatusNotFound, "Error logging out", "auth_logout_failed")
			return
		}
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// me godoc
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *Handler) me(c *gin.Context) {
	sess := currentSession(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": sess.Username, "role": sess.Role})
}

// setRole godoc
// @Summary      Grant or revoke the admin role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        username  path      string       true  "username"
// @Param        body      body      RoleRequest  true  "new role"
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /api/users/{username}/role [put]
func (h *Handler) setRole(c *gin.Context) {
	var input RoleRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	username := c.Param("username")

	if err := h.services.SetRole(c.Request.Context(), currentSession(c), username, input.Role); err != nil {
		h.respondError(c, err, http.StatusNotFound, "Error updating role", "user_set_role_failed", "username", username)
		return
	}
	if h.log != nil {
		h.log.Infow("user_role_set", "username", username, "role", input.Role)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated successfully"})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, sess *models.Session) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(time.Until(sess.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
