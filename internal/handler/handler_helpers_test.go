package handler

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/castromatias32878-collab/WebVastum2025/internal/repository"
)

// brokenStore fails every operation the way an unreachable database would.
type brokenStore struct{}

func (brokenStore) err(op string) error {
	return fmt.Errorf("%w: %s: dial tcp 10.0.0.1:27017: connection refused", repository.ErrUnavailable, op)
}

func (s brokenStore) Insert(context.Context, string, any) (string, error) {
	return "", s.err("insert")
}

func (s brokenStore) FindSorted(context.Context, string, repository.Sort, int64, any) error {
	return s.err("find")
}

func (s brokenStore) FindProjected(context.Context, string, repository.Filter, []string, repository.Sort, int64, any) error {
	return s.err("find")
}

func (s brokenStore) DeleteByKey(context.Context, string, string, any) (int64, error) {
	return 0, s.err("delete")
}

func (s brokenStore) Ping(context.Context) error  { return s.err("ping") }
func (s brokenStore) Close(context.Context) error { return nil }

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

