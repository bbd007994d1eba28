package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carebook/utils"
)

func TestGetLoggerFallsBackToShared(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if got := getLogger(c); got != utils.GetLogger() {
		t.Error("getLogger without a context logger should return the shared logger")
	}
}

func TestGetLoggerPrefersContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	want := zap.NewNop()
	c.Set("logger", want)

	if got := getLogger(c); got != want {
		t.Error("getLogger should return the logger stored on the context")
	}
}
