package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParseStart(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"/volunteers", 1},
		{"/volunteers?start=51", 51},
		{"/volunteers?start=0", 1},
		{"/volunteers?start=-5", 1},
		{"/volunteers?start=abc", 1},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.url, nil)
		if got := ParseStart(r); got != tt.want {
			t.Errorf("ParseStart(%q) = %d, want %d", tt.url, got, tt.want)
		}
	}
}

func TestTrimPage_Forward(t *testing.T) {
	rows := make([]int, PageSize+1)
	res := TrimPage(&rows, "", "")
	if len(rows) != PageSize {
		t.Errorf("len after trim: got %d, want %d", len(rows), PageSize)
	}
	if !res.HasNext {
		t.Error("surplus row should mean a next page")
	}
	if res.HasPrev {
		t.Error("first page has no previous page")
	}
}

func TestTrimPage_ForwardWithCursor(t *testing.T) {
	rows := make([]int, 10)
	res := TrimPage(&rows, "", "somecursor")
	if len(rows) != 10 {
		t.Errorf("short page must not be trimmed, got %d", len(rows))
	}
	if res.HasNext {
		t.Error("no surplus row means no next page")
	}
	if !res.HasPrev {
		t.Error("a cursor means we came from a previous page")
	}
}

func TestTrimPage_Backward(t *testing.T) {
	rows := make([]int, PageSize+1)
	res := TrimPage(&rows, "cursor", "")
	if len(rows) != PageSize {
		t.Errorf("len after trim: got %d, want %d", len(rows), PageSize)
	}
	if !res.HasPrev || !res.HasNext {
		t.Errorf("backward with surplus: got %+v", res)
	}
}

func TestComputeRange(t *testing.T) {
	r := ComputeRange(1, 50)
	if r.Start != 1 || r.End != 50 || r.NextStart != 51 {
		t.Errorf("first page: got %+v", r)
	}

	r = ComputeRange(51, 20)
	if r.Start != 51 || r.End != 70 || r.PrevStart != 1 {
		t.Errorf("second page: got %+v", r)
	}

	r = ComputeRange(1, 0)
	if r.Start != 0 || r.End != 0 {
		t.Errorf("empty page: got %+v", r)
	}
}
