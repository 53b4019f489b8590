//go:build integration
// +build integration

package docstore_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/docstore"
)

type DocstoreIntegrationSuite struct {
	suite.Suite

	adminDB    *sqlx.DB
	DB         *sqlx.DB
	testDBName string
	router     *gin.Engine
}

func TestDocstoreIntegrationSuite(t *testing.T) {
	suite.Run(t, new(DocstoreIntegrationSuite))
}

func (s *DocstoreIntegrationSuite) SetupSuite() {
	host := envOrDefault("MYSQL_HOST", "127.0.0.1")
	port := envOrDefault("MYSQL_PORT", "3306")
	rootUser := envOrDefault("MYSQL_ROOT_USER", "root")
	rootPassword := envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	database := envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "planetevent")+"_test")
	params := envOrDefault("MYSQL_PARAMS", "parseTime=true&multiStatements=true")

	adminDB, err := sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, "", params))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database))
	s.Require().NoError(err)

	db, err := sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, database, params))
	s.Require().NoError(err)
	s.DB = db
	s.testDBName = database
}

func (s *DocstoreIntegrationSuite) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}

	// Drop test database to keep local environment clean after integration runs.
	if s.adminDB != nil && s.testDBName != "" && strings.HasSuffix(s.testDBName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
		s.Require().NoError(err)
	}

	if s.adminDB != nil {
		s.Require().NoError(s.adminDB.Close())
	}
}

func (s *DocstoreIntegrationSuite) SetupTest() {
	_, err := s.DB.Exec(`
DROP TABLE IF EXISTS documents;
CREATE TABLE documents (
	id         VARCHAR(128) PRIMARY KEY,
	body       MEDIUMTEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
);
`)
	s.Require().NoError(err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := docstore.NewHandler(docstore.NewRepository(s.DB))
	docstore.RegisterRoutes(router, handler, docstore.NewHealthHandler(s.DB))
	s.router = router
}

func (s *DocstoreIntegrationSuite) TestDocumentLifecycle() {
	// Never written: 404.
	rec := s.do(http.MethodGet, "/documents/board", "")
	s.Require().Equal(http.StatusNotFound, rec.Code)

	// First write creates the document.
	rec = s.do(http.MethodPut, "/documents/board", `{"version":1,"tasks":[]}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/documents/board", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().JSONEq(`{"version":1,"tasks":[]}`, rec.Body.String())

	// A later write replaces the document wholesale.
	rec = s.do(http.MethodPut, "/documents/board", `{"version":2,"tasks":[{"id":"t1"}]}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/documents/board", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().JSONEq(`{"version":2,"tasks":[{"id":"t1"}]}`, rec.Body.String())
}

func (s *DocstoreIntegrationSuite) TestDocumentsAreIsolatedByID() {
	rec := s.do(http.MethodPut, "/documents/team-a", `{"version":1}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/documents/team-b", "")
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *DocstoreIntegrationSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Require().Equal(http.StatusOK, rec.Code)
}

func (s *DocstoreIntegrationSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func mysqlDSN(user, password, host, port, database, params string) string {
	if database == "" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/?%s", user, password, host, port, params)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, password, host, port, database, params)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
