package test

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/internal/adapter"
	"CivicPulseAPI/internal/bootstrap"
	"CivicPulseAPI/internal/config"
	"CivicPulseAPI/internal/helper"
	"CivicPulseAPI/internal/model"
	"CivicPulseAPI/internal/websocket"
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var (
	testClient   *ent.Client
	testConfig   *config.AppConfig
	testRouter   *chi.Mux
	testHub      *websocket.Hub
	redisAdapter *adapter.RedisAdapter
)

func TestMain(m *testing.M) {

	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	err := godotenv.Load(filepath.Join(basepath, "../.env.test"))
	if err != nil {
		log.Printf("Warning: Error loading .env.test file: %v", err)
	}

	if os.Getenv("APP_PORT") == "" {
		os.Setenv("APP_PORT", "8080")
	}
	if os.Getenv("APP_ENV") == "" {
		os.Setenv("APP_ENV", "test")
	}
	if os.Getenv("DB_HOST") == "" {
		os.Setenv("DB_HOST", "localhost")
	}
	if os.Getenv("DB_PORT") == "" {
		os.Setenv("DB_PORT", "5432")
	}
	if os.Getenv("DB_USER") == "" {
		os.Setenv("DB_USER", "postgres")
	}
	if os.Getenv("DB_PASSWORD") == "" {
		os.Setenv("DB_PASSWORD", "postgres")
	}
	if os.Getenv("DB_NAME") == "" {
		os.Setenv("DB_NAME", "civicpulse_test")
	}
	if os.Getenv("DB_SSLMODE") == "" {
		os.Setenv("DB_SSLMODE", "disable")
	}

	os.Setenv("DB_MIGRATE", "true")

	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "secret")
	}
	if os.Getenv("JWT_EXP") == "" {
		os.Setenv("JWT_EXP", "86400")
	}

	os.Setenv("S3_BUCKET", "test-bucket")
	os.Setenv("S3_REGION", "us-east-1")
	os.Setenv("S3_ACCESS_KEY", "test")
	os.Setenv("S3_SECRET_KEY", "test")
	os.Setenv("S3_ENDPOINT", "http://localhost:9090")

	testConfig = config.LoadAppConfig()

	testClient = config.InitEnt(testConfig)

	if err := testClient.Schema.Create(context.Background()); err != nil {
		log.Fatalf("failed creating schema resources: %v", err)
	}

	redisAdapter, err = adapter.NewRedisAdapter(testConfig)
	if err != nil {
		log.Fatalf("failed to connect Redis for tests: %v", err)
	}

	validate := config.NewValidator()
	testRouter = config.NewChi(testConfig)
	s3Client := config.NewS3Client(testConfig)

	testHub = bootstrap.Init(testConfig, testClient, validate, s3Client, redisAdapter, testRouter)

	code := m.Run()

	testClient.Close()
	os.Exit(code)
}

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	testRouter.ServeHTTP(rr, req)
	return rr
}

func clearDatabase(ctx context.Context) {
	testClient.Vote.Delete().ExecX(ctx)
	testClient.StatusUpdate.Delete().ExecX(ctx)
	testClient.Comment.Delete().ExecX(ctx)
	testClient.Report.Delete().ExecX(ctx)
	testClient.Department.Delete().ExecX(ctx)
	testClient.User.Delete().ExecX(ctx)

	if redisAdapter != nil {
		redisAdapter.Client().FlushDB(ctx)
	}
}

func createCitizen(ctx context.Context, email string) *ent.User {
	return testClient.User.Create().
		SetEmail(email).
		SetFullName("Test Citizen").
		SaveX(ctx)
}

func createStaff(ctx context.Context, email string) *ent.User {
	return testClient.User.Create().
		SetEmail(email).
		SetFullName("Test Staff").
		SetRole("department_staff").
		SaveX(ctx)
}

func tokenFor(u *ent.User) string {
	token, _ := helper.GenerateJWT(testConfig.JWTSecret, testConfig.JWTExp, u.ID, string(u.Role))
	return token
}

func createDepartment(ctx context.Context, code string, categories []string, resolutionHours, escalationHours float64) *ent.Department {
	return testClient.Department.Create().
		SetCode(code).
		SetName("Department " + code).
		SetCategories(categories).
		SetResolutionHours(resolutionHours).
		SetEscalationThresholdHours(escalationHours).
		SaveX(ctx)
}

// createReport drives the real API so tests exercise the full request path.
func createReport(token string, req model.CreateReportRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest("POST", "/api/reports", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	return executeRequest(httpReq)
}

func defaultReportRequest() model.CreateReportRequest {
	return model.CreateReportRequest{
		Title:       "Broken streetlight on 5th Ave",
		Description: "The light has been out for a week and the corner is dark at night.",
		Category:    "street_lighting",
		Coordinates: []float64{-73.9857, 40.7484},
		Address: model.AddressDTO{
			Street: "5th Ave",
			City:   "New York",
		},
	}
}

func decodeData[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return envelope.Data
}
