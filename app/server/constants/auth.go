package constants

import "time"

const (
	AuthTokenDuration = 1 * time.Hour // 登录会话的有效时长
)
