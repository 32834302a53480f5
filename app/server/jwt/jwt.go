package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWT struct {
	key []byte
}

type Admin struct {
	ID       uuid.UUID
	Username string
	Expires  int64 // Unix second
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

func (j *JWT) ParseAdmin(tokenString string) (*Admin, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	// 过期的 token 在这里直接被拒绝
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	// 映射字段
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	admin := &Admin{}

	idStr, ok := claims["id"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid id claim")
	}
	if admin.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("invalid id claim: %w", err)
	}

	if admin.Username, ok = claims["username"].(string); !ok {
		return nil, fmt.Errorf("invalid username claim")
	}

	if exp, ok := claims["exp"].(float64); ok {
		admin.Expires = int64(exp)
	}

	return admin, nil
}

func (j *JWT) SignToken(admin *Admin) (string, error) {
	// 创建声明
	claims := jwt.MapClaims{
		"id":       admin.ID.String(),
		"username": admin.Username,
		"exp":      admin.Expires,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名并返回
	return token.SignedString(j.key)
}
