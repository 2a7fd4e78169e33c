package database

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/chameleon-site/errs"
	"github.com/rpupo63/chameleon-site/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type testDB struct {
	container testcontainers.Container
	dsn       string
	db        *gorm.DB
}

var (
	sharedTestDB     *testDB
	sharedTestDBOnce sync.Once
	sharedTestDBErr  error
)

func TestMain(m *testing.M) {
	code := m.Run()
	if sharedTestDB != nil {
		if sqlDB, err := sharedTestDB.db.DB(); err == nil {
			sqlDB.Close()
		}
		_ = sharedTestDB.container.Terminate(context.Background())
	}
	os.Exit(code)
}

// getTestDB returns a migrated PostgreSQL shared by every test in the package
func getTestDB(t *testing.T) *testDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedTestDBOnce.Do(func() {
		sharedTestDB, sharedTestDBErr = setupTestDB()
	})
	if sharedTestDBErr != nil {
		t.Skipf("PostgreSQL container unavailable: %v", sharedTestDBErr)
	}
	return sharedTestDB
}

func setupTestDB() (*testDB, error) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       "chameleon_test",
				"POSTGRES_USER":     "chameleon",
				"POSTGRES_PASSWORD": "test_password",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://chameleon:test_password@%s:%s/chameleon_test?sslmode=disable", host, port.Port())

	if err := RunMigrations(dsn); err != nil {
		container.Terminate(ctx)
		return nil, err
	}

	db, err := Open(ctx, Options{DSN: dsn, MaxOpenConns: 5})
	if err != nil {
		container.Terminate(ctx)
		return nil, err
	}

	return &testDB{container: container, dsn: dsn, db: db}, nil
}

func seeded(t *testing.T) Database {
	t.Helper()
	tdb := getTestDB(t)
	require.NoError(t, Seed(context.Background(), tdb.db, DefaultSeedData()))
	return New(tdb.db)
}

func TestDefaultSeedData(t *testing.T) {
	data := DefaultSeedData()

	require.Len(t, data.Vibes, 5)
	for i, want := range []int{0, 25, 50, 75, 100} {
		assert.Equal(t, want, data.Vibes[i].SliderPosition)
		style := data.Vibes[i].Style()
		require.NotNil(t, style.Colors)
		require.NotNil(t, style.Typography)
		assert.NotEmpty(t, style.BorderRadius)
	}

	titles := map[string]bool{}
	for _, p := range data.Projects {
		titles[p.Title] = true
	}
	assert.Len(t, data.Projects, 6)
	for _, cs := range data.CaseStudies {
		assert.True(t, titles[cs.ProjectTitle], "case study %q references unknown project", cs.CaseStudy.Title)
	}
	assert.Equal(t, "NODAYSIDLE", data.About.Name)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	tdb := getTestDB(t)
	assert.NoError(t, RunMigrations(tdb.dsn))
}

func TestProjectRepo(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()

	projects, err := db.ProjectRepo().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 6)
	for i := 1; i < len(projects); i++ {
		assert.False(t, projects[i].CreatedAt.After(projects[i-1].CreatedAt))
	}
	for _, p := range projects {
		assert.Nil(t, p.Content, "list view must not carry content")
		assert.Len(t, p.Images, 2)
		assert.NotEmpty(t, p.Tags)
	}

	featured, err := db.ProjectRepo().FindFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 6)
	for i := 0; i < 3; i++ {
		assert.True(t, featured[i].Featured)
	}
	for i := 3; i < 6; i++ {
		assert.False(t, featured[i].Featured)
	}

	project, err := db.ProjectRepo().FindByID(ctx, projects[0].ID)
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, projects[0].Title, project.Title)
	assert.NotNil(t, project.Content)
	assert.NotNil(t, project.GithubURL)

	missing, err := db.ProjectRepo().FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCaseStudyRepo_FindAll(t *testing.T) {
	db := seeded(t)

	caseStudies, err := db.CaseStudyRepo().FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, caseStudies, 3)

	for i, cs := range caseStudies {
		assert.Equal(t, i+1, cs.OrderIndex)
		require.NotNil(t, cs.ProjectTitle)
		require.NotNil(t, cs.ProjectThumbnail)
	}
	assert.Equal(t, "Cyber Brutalist to Art Deco", *caseStudies[0].ProjectTitle)
	assert.Equal(t, "GridHive", *caseStudies[2].ProjectTitle)
}

func TestAboutRepo_FindLatest(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()

	about, err := db.AboutRepo().FindLatest(ctx)
	require.NoError(t, err)
	require.NotNil(t, about)
	assert.Equal(t, "NODAYSIDLE", about.Name)
	assert.Len(t, about.Experience, 3)
	require.NotNil(t, about.SocialLinks)
	assert.Nil(t, about.SocialLinks.Linkedin)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, db.AboutRepo().Add(ctx, models.About{Name: "Updated"}))
	about, err = db.AboutRepo().FindLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Updated", about.Name)
}

func TestAboutRepo_FindLatest_Empty(t *testing.T) {
	tdb := getTestDB(t)
	require.NoError(t, Seed(context.Background(), tdb.db, SeedData{}))

	about, err := New(tdb.db).AboutRepo().FindLatest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, about)
}

func TestVibeConfigRepo_FindAllOrdered(t *testing.T) {
	db := seeded(t)

	vibes, err := db.VibeConfigRepo().FindAllOrdered(context.Background())
	require.NoError(t, err)
	require.Len(t, vibes, 5)
	assert.Equal(t, "Corporate Professional", vibes[0].Name)
	assert.Equal(t, "Wild Experimental", vibes[4].Name)
	assert.Equal(t, "#00ff9f", vibes[4].Style().Colors.Primary)
	assert.Equal(t, 1, vibes[4].Style().GridColumns)
}

func TestSeed_RollsBackOnFailure(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()

	bad := DefaultSeedData()
	bad.Vibes = append(bad.Vibes, vibePreset("Off the scale", 150, models.Config{}))

	err := Seed(ctx, getTestDB(t).db, bad)
	require.Error(t, err)
	assert.True(t, errs.IsTransactionFailedError(err))

	vibes, err := db.VibeConfigRepo().FindAllOrdered(ctx)
	require.NoError(t, err)
	assert.Len(t, vibes, 5)
	projects, err := db.ProjectRepo().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 6)
}

func TestNewDatabaseError_InvalidUUIDFromPostgres(t *testing.T) {
	tdb := getTestDB(t)

	err := tdb.db.Exec("SELECT ?::uuid", "not-a-uuid").Error
	require.Error(t, err)

	apiErr := errs.NewDatabaseError("find", "project", err)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, errs.CodeInvalidUUID, apiErr.Code)
}
