package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusSeeOther)

	if rw.Status() != http.StatusSeeOther {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusSeeOther)
	}
	if w.Code != http.StatusSeeOther {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if !rw.Written() {
		t.Error("Written() = false, want true")
	}
}

func TestResponseWriter_WriteHeader_OnlyOnce(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusSeeOther)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.Status() != http.StatusSeeOther {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusSeeOther)
	}
	if w.Code != http.StatusSeeOther {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusSeeOther)
	}
}

func TestResponseWriter_Write(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	if rw.Written() {
		t.Fatal("Written() = true before any write")
	}

	n, err := rw.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 5 {
		t.Errorf("Write() n = %d, want 5", n)
	}
	if _, err := rw.Write([]byte(" world")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if rw.Status() != http.StatusOK {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusOK)
	}
	if rw.Size() != 11 {
		t.Errorf("Size() = %d, want 11", rw.Size())
	}
	if w.Body.String() != "hello world" {
		t.Errorf("body = %q, want %q", w.Body.String(), "hello world")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	if rw.Unwrap() != w {
		t.Error("Unwrap() did not return the underlying writer")
	}
}

func TestNewContext_ReusesResponseWriter(t *testing.T) {
	rw := NewResponseWriter(httptest.NewRecorder())
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	c := newContext(rw, r, nil)
	if c.response != rw {
		t.Error("newContext wrapped an existing *ResponseWriter again")
	}
}
