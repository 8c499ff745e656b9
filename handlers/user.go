package handlers

import (
	"net/http"

	"gallery/auth"
	"gallery/models"
	"gallery/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserRegisterRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}
type UserLoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}
type UserDeleteRequest struct {
	ID uint64 `json:"id" binding:"required"`
}
type AccountDeleteRequest struct {
	Password string `json:"password" binding:"required"`
}

func UserRegister(c *gin.Context) {
	postReq := UserRegisterRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	user, err := services.Register(postReq.Name, postReq.Email, postReq.Password)
	if err != nil {
		Abort(c, err)
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(user.ID)
	c.JSON(http.StatusOK, gin.H{"error": "", "id": user.ID, "name": user.Name, "usertype": user.Role})
}

func UserLogin(c *gin.Context) {
	postReq := UserLoginRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	user, err := services.Login(postReq.Email, postReq.Password)
	if err != nil {
		Abort(c, err)
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(user.ID)
	c.JSON(http.StatusOK, gin.H{"error": "", "id": user.ID, "name": user.Name, "usertype": user.Role})
}

func UserLogout(c *gin.Context, user *models.User) {
	auth.LoadSession(c).LogoutUser()
	c.JSON(http.StatusOK, OKResponse)
}

func UserList(c *gin.Context, user *models.User) {
	result, err := services.ListUsers(user)
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UserDelete removes another user's account (admins only). Deleting your own
// account goes through AccountDelete and its password check.
func UserDelete(c *gin.Context, user *models.User) {
	r := UserDeleteRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if err := services.DeleteUser(user, r.ID); err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// AccountDelete removes the acting user's own account. The current password
// must be re-entered; the session is invalidated before the cascade runs.
func AccountDelete(c *gin.Context, user *models.User) {
	r := AccountDeleteRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if err := services.DeleteAccount(user, r.Password); err != nil {
		Abort(c, err)
		return
	}
	auth.LoadSession(c).LogoutUser()
	c.JSON(http.StatusOK, OKResponse)
}
