//go:build unit
// +build unit

package v1

import (
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
)

const (
	testUserID  = "6f1c1f4e-8a53-4d7a-9a38-3f1f2f8a9e01"
	testOtherID = "0b9a2d44-1c7e-4f5b-8e2a-7d6c5b4a3f02"
	testItemID  = "c3d1e5f7-2a4b-4c6d-8e0f-1a2b3c4d5e03"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authedContext is NewJSONContext with the caller already authenticated
func authedContext(t *testing.T, method, path string, body interface{}, isStaff bool) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, w := testutil.NewJSONContext(t, method, path, body)
	c.Set(contextUserID, testUserID)
	c.Set(contextIsStaff, isStaff)
	return c, w
}

func withParams(c *gin.Context, kv ...string) *gin.Context {
	for i := 0; i+1 < len(kv); i += 2 {
		c.Params = append(c.Params, gin.Param{Key: kv[i], Value: kv[i+1]})
	}
	return c
}
