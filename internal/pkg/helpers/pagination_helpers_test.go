package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCalculateOffsetLimit(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"negative page falls back to first", -5, 10, 0, 10},
		{"zero limit falls back to default", 2, 0, 10, DefaultPageSize},
		{"oversized limit falls back to default", 2, 500, 10, DefaultPageSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tc.page, tc.limit)
			if offset != tc.wantOffset || limit != tc.wantLimit {
				t.Fatalf("got offset %d limit %d, want offset %d limit %d", offset, limit, tc.wantOffset, tc.wantLimit)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 1},
	}

	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit values", "page=3&limit=25", 3, 25},
		{"garbage page", "page=abc&limit=25", 1, 25},
		{"negative limit", "page=2&limit=-1", 2, 10},
		{"limit over maximum", "page=2&limit=1000", 2, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/scholarships?"+tc.query, nil)

			page, limit := ParsePaginationParams(c)
			if page != tc.wantPage || limit != tc.wantLimit {
				t.Fatalf("got page %d limit %d, want page %d limit %d", page, limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}
