package handlers

import (
	"errors"
	"journal-catalog/app/server/constants"
	"journal-catalog/app/server/jwt"
	"journal-catalog/app/server/models"
	"journal-catalog/app/server/services"
	"net/http"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Username and password are required.")
	}

	// 没有写用户名或密码
	if req.Username == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest, "Username and password are required.")
	}

	admin, err := a.admins.FindByUsername(rctx, req.Username)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return a.er(c, http.StatusUnauthorized, "Admin doesn't exist.")
		}
		a.l.Error("failed to find admin", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Server error")
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(req.Password, admin.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Server error")
	} else if !match {
		// 密码不一致
		return a.er(c, http.StatusUnauthorized, "Invalid username or password.")
	}

	// 签出 JWT
	expires := time.Now().Add(constants.AuthTokenDuration)
	token, err := a.jwt.SignToken(&jwt.Admin{
		ID:       admin.ID,
		Username: admin.Username,
		Expires:  expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Server error")
	}

	// 返回
	return c.JSON(http.StatusOK, &loginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

type adminCreateResponse struct {
	Message string        `json:"message"`
	Admin   *models.Admin `json:"admin"`
}

func (a *App) AdminCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Name, username, and password are required.")
	}
	if req.Name == "" || req.Username == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest, "Name, username, and password are required.")
	}

	admin, err := a.admins.Create(rctx, req.Name, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return a.er(c, http.StatusBadRequest, "Name must be between 2 and 50 characters.")
		case errors.Is(err, services.ErrConflict):
			return a.er(c, http.StatusConflict, "Username already exists.")
		default:
			a.l.Error("failed to create admin", zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "Server error")
		}
	}

	// 密码字段在模型上标记了 json:"-" ，不会出现在响应里
	return c.JSON(http.StatusCreated, &adminCreateResponse{
		Message: "Admin created successfully",
		Admin:   admin,
	})
}
