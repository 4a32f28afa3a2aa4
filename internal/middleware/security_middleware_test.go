package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestBuildContentSecurityPolicyPreviewAllowsInlineStyles(t *testing.T) {
	policy := buildContentSecurityPolicy(true)
	directives := parseContentSecurityPolicy(policy)

	styleSrc, ok := directives["style-src"]
	if !ok {
		t.Fatalf("expected style-src directive to be present in policy: %s", policy)
	}
	for _, required := range []string{"'self'", "'unsafe-inline'"} {
		if _, allowed := styleSrc[required]; !allowed {
			t.Fatalf("expected style-src to allow %s, policy: %s", required, policy)
		}
	}
	if _, ok := directives["img-src"]["https:"]; !ok {
		t.Fatalf("expected img-src to allow https images, policy: %s", policy)
	}
}

func TestBuildContentSecurityPolicyAPIStaysStrict(t *testing.T) {
	directives := parseContentSecurityPolicy(buildContentSecurityPolicy(false))
	if _, ok := directives["style-src"]; ok {
		t.Fatalf("api policy must not relax style-src")
	}
	if _, ok := directives["object-src"]["'none'"]; !ok {
		t.Fatalf("expected object-src 'none'")
	}
}

func TestSecurityHeadersMiddlewareSelectsPolicyByPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/api/v1/builder/sessions/:sid/preview", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/v1/builder/sessions/:sid", func(c *gin.Context) { c.Status(http.StatusOK) })

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/builder/sessions/abc/preview", nil))
	if !strings.Contains(recorder.Header().Get("Content-Security-Policy"), "'unsafe-inline'") {
		t.Fatalf("expected preview policy, got %q", recorder.Header().Get("Content-Security-Policy"))
	}
	if recorder.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("expected nosniff header")
	}

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/builder/sessions/abc", nil))
	if strings.Contains(recorder.Header().Get("Content-Security-Policy"), "'unsafe-inline'") {
		t.Fatalf("expected strict policy for api route")
	}
}

func parseContentSecurityPolicy(policy string) map[string]map[string]struct{} {
	result := make(map[string]map[string]struct{})

	for _, directive := range strings.Split(policy, ";") {
		directive = strings.TrimSpace(directive)
		if directive == "" {
			continue
		}

		parts := strings.Fields(directive)
		if len(parts) == 0 {
			continue
		}

		name := parts[0]
		values := make(map[string]struct{}, len(parts)-1)
		for _, value := range parts[1:] {
			values[value] = struct{}{}
		}

		result[name] = values
	}

	return result
}
