package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFail_WritesEnvelopeAndAborts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Writer.Header().Set("X-Request-ID", "rid-1")

	Fail(c, http.StatusConflict, ErrCodeAlreadyLogged, "habit already logged today")

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d; want 409", w.Code)
	}
	if !c.IsAborted() {
		t.Error("context not aborted")
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.RequestID != "rid-1" || resp.Code != ErrCodeAlreadyLogged {
		t.Errorf("envelope = %+v", resp)
	}
}

func TestOkAndNoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ok(c, http.StatusOK, gin.H{"x": 1})
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Errorf("ok: %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	noContent(c)
	if w.Code != http.StatusNoContent {
		t.Errorf("noContent status = %d", w.Code)
	}
}
