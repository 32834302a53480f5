package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串，留空则不启用缓存
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于产生 JWT 签名，更新会导致旧有会话失效
	}
	Seed struct {
		AdminName     string // 初始管理员显示名称
		AdminUsername string // 初始管理员用户名
		AdminPassword string // 初始管理员密码，只在首次启动（管理员表为空）时使用
	}
}
