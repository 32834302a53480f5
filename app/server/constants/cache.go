package constants

import "time"

const (
	CacheKeyArticle = "catalog:article:%s" // %s -> article id
)

const (
	CacheExpireArticle = 1 * time.Hour
)
