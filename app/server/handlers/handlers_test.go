package handlers

import (
	"bytes"
	"encoding/json"
	"journal-catalog/app/server/jwt"
	"journal-catalog/app/server/models"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Article{},
		&models.Reference{},
		&models.Cited{},
	))

	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	e := echo.New()
	Register(e, NewApp(zap.NewNop(), db, nil, j), j)
	return e
}

func doJSON(e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func createAdmin(t *testing.T, e *echo.Echo) {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/admin", "", map[string]string{
		"name":     "Catalog Admin",
		"username": "admin",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func loginToken(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/login", "", map[string]string{
		"username": "admin",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func validArticleBody() map[string]any {
	return map[string]any{
		"journalTitle":       "J",
		"title":              "  Study of X  ",
		"coverImage":         "http://img.example/x.png",
		"volume":             "1",
		"part":               "2",
		"date":               "2024-01-01",
		"authors":            []string{"A"},
		"authors_university": []string{"U"},
		"link":               "http://x",
		"highlight":          []string{"h"},
		"introduction":       "i",
		"abstract":           "a",
		"reference_author":   "R",
		"reference_title":    "RT",
		"reference_host":     "RH",
	}
}

func TestAdminCreate(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/admin", "", map[string]string{
		"name":     "Catalog Admin",
		"username": "admin",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Admin created successfully", body["message"])

	// 响应里绝不能出现密码字段
	admin, ok := body["admin"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "admin", admin["username"])
	_, hasPassword := admin["password"]
	assert.False(t, hasPassword)

	// 重复用户名
	rec = doJSON(e, http.MethodPost, "/admin", "", map[string]string{
		"name":     "Someone Else",
		"username": "admin",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Username already exists.", decodeBody(t, rec)["message"])

	// 缺字段与名称长度
	rec = doJSON(e, http.MethodPost, "/admin", "", map[string]string{
		"username": "other",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/admin", "", map[string]string{
		"name":     "A",
		"username": "other",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	e := newTestServer(t)
	createAdmin(t, e)

	rec := doJSON(e, http.MethodPost, "/login", "", map[string]string{
		"username": "admin",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username and password are required.", decodeBody(t, rec)["message"])

	rec = doJSON(e, http.MethodPost, "/login", "", map[string]string{
		"username": "ghost",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Admin doesn't exist.", decodeBody(t, rec)["message"])

	rec = doJSON(e, http.MethodPost, "/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password.", decodeBody(t, rec)["message"])

	token := loginToken(t, e)
	assert.NotEmpty(t, token)
}

func TestArticleWritesRequireToken(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/articles", "", validArticleBody())
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/articles", "garbage-token", validArticleBody())
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/articles/00000000-0000-0000-0000-000000000000", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestArticleLifecycle(t *testing.T) {
	e := newTestServer(t)
	createAdmin(t, e)
	token := loginToken(t, e)

	// 第一次提交：新建
	rec := doJSON(e, http.MethodPost, "/articles", token, validArticleBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Article created successfully", body["message"])

	article, ok := body["article"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Study of X", article["title"])
	articleID, _ := article["id"].(string)
	require.NotEmpty(t, articleID)

	// 第二次提交同一标题：覆盖
	update := validArticleBody()
	update["reference_author"] = "R2"
	rec = doJSON(e, http.MethodPost, "/articles", token, update)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "Article updated successfully", body["message"])
	reference, ok := body["reference"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "R2", reference["reference_author"])

	// 缺少必填字段
	broken := validArticleBody()
	delete(broken, "abstract")
	rec = doJSON(e, http.MethodPost, "/articles", token, broken)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 公开读取
	rec = doJSON(e, http.MethodGet, "/articles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listBody := decodeBody(t, rec)
	articles, ok := listBody["articles"].([]any)
	require.True(t, ok)
	assert.Len(t, articles, 1)

	rec = doJSON(e, http.MethodGet, "/articles/"+articleID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	getBody := decodeBody(t, rec)
	got, ok := getBody["article"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Study of X", got["title"])

	// 删除并验证级联
	rec = doJSON(e, http.MethodDelete, "/articles/"+articleID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/articles/"+articleID, "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/articles/"+articleID, token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArticleGetUnknownID(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/articles/not-a-uuid", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
