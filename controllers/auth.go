package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studio-console-backend/config"
	"studio-console-backend/models"
	"studio-console-backend/seed"
	"studio-console-backend/stores"
	"studio-console-backend/utils"
)

// AuthController serves login, logout and session endpoints over the auth
// store.
type AuthController struct {
	Auth  *stores.AuthStore
	Owner seed.OwnerAccount
	Cfg   *config.Config
}

type OwnerLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LineLoginInput struct {
	ExternalID string `json:"externalId" binding:"required"`
}

type UpdateProfileInput struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
	Phone  *string `json:"phone"`
}

// Login authenticates the demo owner account and starts an owner session.
func (ctl *AuthController) Login(c *gin.Context) {
	var input OwnerLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Email != ctl.Owner.Email || !utils.CheckPasswordHash(input.Password, ctl.Owner.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := ctl.Auth.LoginAsOwner(c.Request.Context(), stores.LoginProfile{
		ID:    ctl.Owner.ID,
		Name:  ctl.Owner.Name,
		Email: ctl.Owner.Email,
		Phone: ctl.Owner.Phone,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to start session")
		return
	}

	ctl.respondWithToken(c, user)
}

// LineLogin resolves an external identifier through the mock gateway and
// starts a customer session.
func (ctl *AuthController) LineLogin(c *gin.Context) {
	var input LineLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := ctl.Auth.LoginWithID(c.Request.Context(), input.ExternalID)
	if err != nil {
		if errors.Is(err, stores.ErrProfileNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "No profile for this identifier")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	ctl.respondWithToken(c, user)
}

// Logout ends the session and clears the persisted record and cookie.
func (ctl *AuthController) Logout(c *gin.Context) {
	ctl.Auth.Logout(c.Request.Context())
	c.SetCookie("token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the logged-in user.
func (ctl *AuthController) Me(c *gin.Context) {
	user := ctl.Auth.CurrentUser()
	if user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "No active session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile merges a partial update into the logged-in user.
func (ctl *AuthController) UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	ctl.Auth.UpdateUser(c.Request.Context(), stores.UserUpdate{
		Name:   input.Name,
		Email:  input.Email,
		Avatar: input.Avatar,
		Phone:  input.Phone,
	})

	user := ctl.Auth.CurrentUser()
	if user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "No active session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (ctl *AuthController) respondWithToken(c *gin.Context, user *models.User) {
	ttl := time.Duration(ctl.Cfg.JWTExpiryHours) * time.Hour
	token, err := utils.GenerateToken(user.ID, user.Role, ctl.Cfg.JWTSecret, ttl)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.SetCookie("token", token, int(ttl.Seconds()), "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
