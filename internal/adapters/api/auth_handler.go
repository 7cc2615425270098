package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripplanner.app/internal/core/user"
)

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type userData struct {
	User UserResponse `json:"user"`
}

// register handles POST /api/auth/register
func (s *HTTPServerAdapter) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindError(err))
		return
	}

	_, err := s.authUseCase.Register(c.Request.Context(), user.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	s.respond(c, http.StatusCreated, "User registered successfully", nil)
}

// login handles POST /api/auth/login
func (s *HTTPServerAdapter) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindError(err))
		return
	}

	session, err := s.authUseCase.Login(c.Request.Context(), user.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Token:   session.Token,
		User:    newUserResponse(session.User),
	})
}

// getProfile handles GET /api/auth/profile
func (s *HTTPServerAdapter) getProfile(c *gin.Context) {
	u, err := s.authUseCase.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "", userData{User: newUserResponse(u)})
}

// updateProfile handles PUT /api/auth/profile
func (s *HTTPServerAdapter) updateProfile(c *gin.Context) {
	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindError(err))
		return
	}

	u, err := s.authUseCase.UpdateProfile(c.Request.Context(), currentUserID(c), req.toDomain())
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "Profile updated", userData{User: newUserResponse(u)})
}

// deleteProfile handles DELETE /api/auth/profile
func (s *HTTPServerAdapter) deleteProfile(c *gin.Context) {
	if err := s.authUseCase.DeleteAccount(c.Request.Context(), currentUserID(c)); err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "Account deleted", nil)
}
