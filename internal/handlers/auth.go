package handlers

import (
	"net/http"

	ce "course_enrollment"
	"course_enrollment/internal/models"
	"course_enrollment/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Email    string `json:"email" binding:"required" example:"a@x.com"`
	Password string `json:"password" binding:"required" example:"pw123"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"pw123"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		abortBadRequest(c, err.Error())
		return false
	}
	return true
}

func toUserSummary(u *models.User) ce.UserSummary {
	return ce.UserSummary{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      registerRequest  true  "credentials"
// @Success      201    {object}  course_enrollment.UserSummary
// @Failure      400    {object}  course_enrollment.ErrorResponse
// @Failure      500    {object}  course_enrollment.ErrorResponse
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		h.respondError(c, err, "auth_register_failed", "username", input.Username)
		return
	}

	c.JSON(http.StatusCreated, toUserSummary(u))
}

// @Summary      Log in
// @Description  Unknown usernames and wrong passwords produce the same 401 body.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      loginRequest  true  "credentials"
// @Success      200    {object}  course_enrollment.TokenResponse
// @Failure      400    {object}  course_enrollment.ErrorResponse
// @Failure      401    {object}  course_enrollment.ErrorResponse
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, err, "auth_login_failed", "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, ce.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(h.services.TokenTTL().Seconds()),
	})
}
