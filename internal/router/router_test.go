package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/axiomhq/nhuff/internal/handler"
	"github.com/axiomhq/nhuff/internal/repo"
	"github.com/axiomhq/nhuff/internal/service"
	"github.com/axiomhq/nhuff/pkg/logger"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewCodecService(repo.NewTableRepoInMemory(), logger.Nop(), 2)
	r := gin.New()
	Register(r, Dependencies{TableHandler: handler.NewTableHandler(svc)})
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := do(newTestEngine(), http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
}

func TestTableLifecycle(t *testing.T) {
	r := newTestEngine()

	w := do(r, http.MethodPost, "/api/v1/tables/demo?radix=2", "aabbbcccc")
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body)
	}
	var sum service.TableSummary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("create body: %v", err)
	}
	if sum.Name != "demo" || sum.Radix != 2 || sum.Symbols != 3 {
		t.Fatalf("summary %+v", sum)
	}

	w = do(r, http.MethodPost, "/api/v1/tables/demo/encode", "aabbbcccc")
	if w.Code != http.StatusOK || w.Body.String() != "10101111110000" {
		t.Fatalf("encode: %d %q", w.Code, w.Body)
	}

	w = do(r, http.MethodPost, "/api/v1/tables/demo/decode", "10101111110000")
	if w.Code != http.StatusOK || w.Body.String() != "aabbbcccc" {
		t.Fatalf("decode: %d %q", w.Code, w.Body)
	}

	w = do(r, http.MethodGet, "/api/v1/tables/demo", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("get body: %v", err)
	}
	if sum.Codes["63"] != "0" {
		t.Fatalf("codes %v", sum.Codes)
	}

	w = do(r, http.MethodGet, "/api/v1/tables", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"demo"`) {
		t.Fatalf("list: %d %s", w.Code, w.Body)
	}
}

func TestTableErrors(t *testing.T) {
	r := newTestEngine()
	if w := do(r, http.MethodPost, "/api/v1/tables/t?radix=2", "ab"); w.Code != http.StatusCreated {
		t.Fatalf("create: %d", w.Code)
	}

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"missing_table", http.MethodPost, "/api/v1/tables/none/encode", "a", http.StatusNotFound},
		{"missing_get", http.MethodGet, "/api/v1/tables/none", "", http.StatusNotFound},
		{"empty_training", http.MethodPost, "/api/v1/tables/e", "", http.StatusBadRequest},
		{"bad_radix", http.MethodPost, "/api/v1/tables/e?radix=1", "abc", http.StatusBadRequest},
		{"radix_not_int", http.MethodPost, "/api/v1/tables/e?radix=x", "abc", http.StatusBadRequest},
		{"unknown_symbol", http.MethodPost, "/api/v1/tables/t/encode", "abc", http.StatusBadRequest},
		{"malformed_stream", http.MethodPost, "/api/v1/tables/t/decode", "01x", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, tc.method, tc.path, tc.body)
			if w.Code != tc.want {
				t.Fatalf("status %d want %d: %s", w.Code, tc.want, w.Body)
			}
		})
	}
}
