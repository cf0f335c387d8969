// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/hashlab/backend/config"
	"github.com/hashlab/backend/internal/infra/dependency"
	"github.com/hashlab/backend/test/integration/mock"
)

// generousAttempts keeps the rate limiter out of the way for scenarios that
// are not about rate limiting.
const generousAttempts = 1000

// testContext holds the test state for each scenario.
type testContext struct {
	// Infrastructure
	server *httptest.Server
	engine *gin.Engine
	redis  *mock.Redis
	cfg    *config.Config

	// Last response
	response     *http.Response
	responseBody []byte

	// Hashing state
	storedHash     string
	producedHashes []string
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.RateLimit.MaxAttempts = generousAttempts
		if err := test.startServer(cfg); err != nil {
			return ctx, err
		}
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.stopServer()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, test.iSendNRequestsToWithBody)

	// Hashing steps
	ctx.Given(`^I have hashed the password "([^"]*)"$`, test.iHaveHashedThePassword)
	ctx.When(`^I hash the password "([^"]*)" (\d+) times$`, test.iHashThePasswordNTimes)
	ctx.When(`^I verify the password "([^"]*)" against the stored hash$`, test.iVerifyThePasswordAgainstTheStoredHash)
	ctx.Then(`^all produced hashes should be distinct$`, test.allProducedHashesShouldBeDistinct)
	ctx.Then(`^every produced hash should verify "([^"]*)"$`, test.everyProducedHashShouldVerify)

	// Rate limiting steps
	ctx.Given(`^the rate limit is (\d+) attempts per minute$`, test.theRateLimitIsAttemptsPerMinute)

	// Response steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should start with "([^"]*)"$`, test.theResponseFieldShouldStartWith)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
}

// startServer wires the application against a fresh miniredis and starts an
// httptest server.
func (t *testContext) startServer(cfg *config.Config) error {
	redisMock, err := mock.NewRedis()
	if err != nil {
		return fmt.Errorf("failed to start miniredis: %w", err)
	}

	injector := dependency.NewInjector(cfg, redisMock.Client, func() bool {
		return redisMock.Client.Ping(context.Background()).Err() == nil
	})

	t.cfg = cfg
	t.redis = redisMock
	t.engine = injector.Router.Setup(cfg.Server.Environment)
	t.server = httptest.NewServer(t.engine)
	t.response = nil
	t.responseBody = nil
	t.storedHash = ""
	t.producedHashes = nil
	return nil
}

func (t *testContext) stopServer() {
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
	if t.redis != nil {
		t.redis.Close()
		t.redis = nil
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("API server is not running")
	}
	return nil
}

func (t *testContext) theRateLimitIsAttemptsPerMinute(maxAttempts int) error {
	t.stopServer()

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.RateLimit.MaxAttempts = maxAttempts
	return t.startServer(cfg)
}

func (t *testContext) doRequest(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, t.server.URL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.server.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	t.response = resp
	t.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.doRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.doRequest(method, path, []byte(body.Content))
}

func (t *testContext) iSendNRequestsToWithBody(count int, method, path string, body *godog.DocString) error {
	for i := 0; i < count; i++ {
		if err := t.doRequest(method, path, []byte(body.Content)); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) iHaveHashedThePassword(password string) error {
	body, _ := json.Marshal(map[string]string{"password": password})
	if err := t.doRequest(http.MethodPost, "/api/v1/hashing/hash", body); err != nil {
		return err
	}
	if t.response.StatusCode != http.StatusOK {
		return fmt.Errorf("hash request failed with status %d: %s", t.response.StatusCode, t.responseBody)
	}

	fields, err := t.responseFields()
	if err != nil {
		return err
	}
	hash, ok := fields["hash"].(string)
	if !ok || hash == "" {
		return fmt.Errorf("hash missing from response: %s", t.responseBody)
	}
	t.storedHash = hash
	return nil
}

func (t *testContext) iHashThePasswordNTimes(password string, count int) error {
	t.producedHashes = nil
	for i := 0; i < count; i++ {
		if err := t.iHaveHashedThePassword(password); err != nil {
			return err
		}
		t.producedHashes = append(t.producedHashes, t.storedHash)
	}
	return nil
}

func (t *testContext) iVerifyThePasswordAgainstTheStoredHash(password string) error {
	if t.storedHash == "" {
		return fmt.Errorf("no stored hash; hash a password first")
	}
	body, _ := json.Marshal(map[string]string{"password": password, "hash": t.storedHash})
	return t.doRequest(http.MethodPost, "/api/v1/hashing/verify", body)
}

func (t *testContext) allProducedHashesShouldBeDistinct() error {
	seen := make(map[string]bool, len(t.producedHashes))
	for _, hash := range t.producedHashes {
		if seen[hash] {
			return fmt.Errorf("duplicate hash produced: %s", hash)
		}
		seen[hash] = true
	}
	return nil
}

func (t *testContext) everyProducedHashShouldVerify(password string) error {
	for _, hash := range t.producedHashes {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
			return fmt.Errorf("hash %s does not verify %q: %w", hash, password, err)
		}
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(status int) error {
	if t.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if t.response.StatusCode != status {
		return fmt.Errorf("response status = %d, want %d (body: %s)", t.response.StatusCode, status, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	var js json.RawMessage
	if err := json.Unmarshal(t.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w (body: %s)", err, t.responseBody)
	}
	return nil
}

func (t *testContext) responseFields() (map[string]any, error) {
	fields := map[string]any{}
	if err := json.Unmarshal(t.responseBody, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w (body: %s)", err, t.responseBody)
	}
	return fields, nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	fields, err := t.responseFields()
	if err != nil {
		return err
	}
	value, ok := fields[field]
	if !ok {
		return fmt.Errorf("field %q missing from response: %s", field, t.responseBody)
	}
	if fmt.Sprint(value) != expected {
		return fmt.Errorf("field %q = %v, want %q", field, value, expected)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	fields, err := t.responseFields()
	if err != nil {
		return err
	}
	if _, ok := fields[field]; !ok {
		return fmt.Errorf("field %q missing from response: %s", field, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	fields, err := t.responseFields()
	if err != nil {
		return err
	}
	if _, ok := fields[field]; ok {
		return fmt.Errorf("field %q unexpectedly present in response: %s", field, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldStartWith(field, prefix string) error {
	fields, err := t.responseFields()
	if err != nil {
		return err
	}
	value, ok := fields[field].(string)
	if !ok {
		return fmt.Errorf("field %q missing or not a string: %s", field, t.responseBody)
	}
	if !strings.HasPrefix(value, prefix) {
		return fmt.Errorf("field %q = %q, want prefix %q", field, value, prefix)
	}
	return nil
}
