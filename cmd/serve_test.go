//go:build unit

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_RejectsUnknownJSONFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := binding.EnableDecoderDisallowUnknownFields
	t.Cleanup(func() { binding.EnableDecoderDisallowUnknownFields = prev })
	binding.EnableDecoderDisallowUnknownFields = false

	engine := newEngine()
	require.True(t, binding.EnableDecoderDisallowUnknownFields)

	engine.POST("/echo", func(c *gin.Context) {
		var body struct {
			RequestedTime string `json:"requestedTime"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	cases := map[string]int{
		`{"requestedTime":"15:00"}`:                 http.StatusOK,
		`{"requestedTime":"15:00","tableSize":"4"}`: http.StatusBadRequest,
	}
	for body, want := range cases {
		t.Run(body, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			engine.ServeHTTP(w, req)
			assert.Equal(t, want, w.Code)
		})
	}
}
