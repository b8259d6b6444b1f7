package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-postgres-carbooks/config"
	"go-postgres-carbooks/models"
	"go-postgres-carbooks/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func currentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("user_id missing from context")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.New("user_id invalid")
	}
	return id, nil
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND is_active = true", in.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	now := time.Now()
	_ = config.DB.Model(&user).Update("last_login_at", &now).Error

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not issue token", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
			"role":      user.Role,
		},
	})
}

func Profile(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "error": err.Error()})
		return
	}
	utils.Success(c, "Profile loaded", user)
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func ChangePassword(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	var in ChangePasswordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Old password does not match"})
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err := config.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update password", "error": err.Error()})
		return
	}
	utils.Success(c, "Password updated", nil)
}

type CreateUserInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"` // admin | staff, default staff
}

func CreateUser(c *gin.Context) {
	var in CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}
	if in.Role == "" {
		in.Role = models.RoleStaff
	}
	if in.Role != models.RoleAdmin && in.Role != models.RoleStaff {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role must be admin or staff"})
		return
	}

	var exists models.User
	if err := config.DB.Where("email = ?", in.Email).First(&exists).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	user := models.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create user", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created", "data": user})
}

func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("id ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load users", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_users": len(users), "data": users})
}

type SetRoleInput struct {
	Role string `json:"role" binding:"required"`
}

func SetUserRole(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var in SetRoleInput
	if err := c.ShouldBindJSON(&in); err != nil || (in.Role != models.RoleAdmin && in.Role != models.RoleStaff) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role must be admin or staff"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err := config.DB.Model(&user).Update("role", in.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update role", "error": err.Error()})
		return
	}
	utils.Success(c, "Role updated", gin.H{"id": user.ID, "email": user.Email, "role": in.Role})
}

func DeactivateUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err := config.DB.Model(&user).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not deactivate user", "error": err.Error()})
		return
	}
	utils.Success(c, "User deactivated", nil)
}
