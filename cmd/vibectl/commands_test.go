package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/chameleon-site/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var testProjectID = uuid.MustParse("8f14e45f-ceea-4e7a-9c3b-2c1d4f5a6b7c")

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	write := func(w http.ResponseWriter, status int, body any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
	project := models.Project{ID: testProjectID, Title: "AeroGlass", Featured: true}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/vibes", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]any{"vibes": []models.VibeConfig{
			{Name: "Corporate", SliderPosition: 0, Config: datatypes.NewJSONType(models.Config{
				Colors: &models.Colors{Primary: "#1a365d"}, BorderRadius: "2px",
			})},
			{Name: "Wild", SliderPosition: 100, Config: datatypes.NewJSONType(models.Config{
				Colors: &models.Colors{Primary: "#ff006e"}, BorderRadius: "24px",
			})},
		}})
	})
	mux.HandleFunc("/api/projects", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]any{"projects": []models.Project{project}})
	})
	mux.HandleFunc("/api/projects/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/projects/"+testProjectID.String() {
			write(w, http.StatusOK, project)
			return
		}
		write(w, http.StatusNotFound, map[string]any{
			"error": map[string]string{"code": "NOT_FOUND", "message": "Project not found"},
		})
	})
	mux.HandleFunc("/api/about", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, models.About{Name: "NODAYSIDLE"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func runCmd(t *testing.T, server *httptest.Server, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{
		"--api-url", server.URL,
		"--cache-file", filepath.Join(t.TempDir(), "cache.json"),
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestThemeCommand_Nearest(t *testing.T) {
	out, err := runCmd(t, newTestServer(t), "theme", "--position", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "/* Corporate (0) */")
	assert.Contains(t, out, "--color-primary: #1a365d;")
	assert.Contains(t, out, "--border-radius: 2px;")
}

func TestThemeCommand_Blend(t *testing.T) {
	out, err := runCmd(t, newTestServer(t), "theme", "--position", "50", "--blend")
	require.NoError(t, err)
	assert.Contains(t, out, ":root {")
	assert.Contains(t, out, "--border-radius: 13px;")
	assert.NotContains(t, out, "#1a365d")
	assert.NotContains(t, out, "#ff006e")
}

func TestVibesCommand(t *testing.T) {
	out, err := runCmd(t, newTestServer(t), "vibes")
	require.NoError(t, err)
	assert.Contains(t, out, "POSITION")
	assert.Contains(t, out, "Corporate")
	assert.Contains(t, out, "#ff006e")
}

func TestProjectsCommand(t *testing.T) {
	out, err := runCmd(t, newTestServer(t), "projects")
	require.NoError(t, err)
	assert.Contains(t, out, testProjectID.String())
	assert.Contains(t, out, "AeroGlass")
	assert.Contains(t, out, "yes")
}

func TestProjectCommand(t *testing.T) {
	server := newTestServer(t)

	out, err := runCmd(t, server, "project", testProjectID.String())
	require.NoError(t, err)
	var got models.Project
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "AeroGlass", got.Title)

	_, err = runCmd(t, server, "project", uuid.NewString())
	assert.ErrorContains(t, err, "not found")

	_, err = runCmd(t, server, "project", "not-a-uuid")
	assert.ErrorContains(t, err, "not found")
}

func TestAboutCommand(t *testing.T) {
	out, err := runCmd(t, newTestServer(t), "about")
	require.NoError(t, err)
	assert.Contains(t, out, "NODAYSIDLE")
}

func TestClearCacheCommand(t *testing.T) {
	out, err := runCmd(t, newTestServer(t), "clear-cache")
	require.NoError(t, err)
	assert.Equal(t, "Vibe cache cleared\n", out)
}
