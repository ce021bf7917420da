// Package testutils holds helpers shared by tests across packages.
package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"litedata/pkg/types"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}

// Service is an in-process stand-in for the data service.
type Service struct {
	*httptest.Server

	Allowed     []string
	Filename    string
	Body        []byte
	PreviewRows []map[string]string

	exports atomic.Int32
	mu      sync.Mutex
	last    types.ExportRequest
}

// NewService starts a fake data service that allows allowed and answers
// every export with body. It is closed when the test ends.
func NewService(t *testing.T, allowed []string, filename string, body []byte) *Service {
	t.Helper()
	s := &Service{Allowed: allowed, Filename: filename, Body: body}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/common/get-config", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"message": "ok", "allowedDataTypes": s.Allowed})
	})
	mux.HandleFunc("/api/data/export", func(w http.ResponseWriter, r *http.Request) {
		var req types.ExportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, map[string]string{"error": err.Error()})
			return
		}
		s.exports.Add(1)
		s.mu.Lock()
		s.last = req
		s.mu.Unlock()
		if s.Filename != "" {
			w.Header().Set("Content-Disposition", `attachment; filename="`+s.Filename+`"`)
		}
		w.Write(s.Body)
	})
	mux.HandleFunc("/api/data/generate", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.PreviewRows)
	})
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok", "message": "running"})
	})

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// Exports returns how many export requests were accepted.
func (s *Service) Exports() int {
	return int(s.exports.Load())
}

// LastRequest returns the body of the most recent export request.
func (s *Service) LastRequest() types.ExportRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
