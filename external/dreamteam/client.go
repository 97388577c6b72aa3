package dreamteam

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/bonus-tracker/internal/domain/gamemode"
	"github.com/riskibarqy/bonus-tracker/internal/platform/logging"
	"github.com/riskibarqy/bonus-tracker/internal/platform/resilience"
	"github.com/riskibarqy/bonus-tracker/internal/usecase"
)

var errDreamTeamTransient = crerr.New("dreamteam transient failure")

// errSessionExpired marks a 401/403 from a data endpoint. Callers refresh the
// session once and retry before treating the failure as terminal.
var errSessionExpired = crerr.New("dreamteam session expired")

const (
	defaultBaseURL = "https://dreamteam.sport5.co.il"
	defaultTimeout = 20 * time.Second
	maxBodyBytes   = 6 << 20
)

const (
	loginPath      = "/api/Account/Login"
	userTeamPath   = "/api/UserTeam/GetUserAndTeam"
	leagueDataPath = "/api/CustomLeagues/GetLeagueData"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Email          string
	Password       string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// session is the cookie-based login state. generation increments on every
// successful login so concurrent callers can tell whether somebody already
// refreshed the session they saw fail.
type session struct {
	cookie     string
	issuedAt   time.Time
	generation uint64
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight

	// authMu serializes login round-trips; mu guards credentials and session.
	authMu sync.Mutex
	mu     sync.Mutex

	email              string
	password           string
	configuredEmail    string
	configuredPassword string
	session            session
}

var (
	_ usecase.BonusDataProvider = (*Client)(nil)
	_ usecase.SessionManager    = (*Client)(nil)
)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	email := strings.TrimSpace(cfg.Email)
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:         httpClient,
		baseURL:            baseURL,
		logger:             logger,
		breaker:            resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled:     breakerCfg.Enabled,
		email:              email,
		password:           cfg.Password,
		configuredEmail:    email,
		configuredPassword: cfg.Password,
	}
}

// FetchUserTeam retrieves one manager's team and bonus usage for a game mode.
func (c *Client) FetchUserTeam(ctx context.Context, modeID gamemode.ID, userID int64) (usecase.ExternalUserTeam, error) {
	values := url.Values{}
	values.Set("seasonId", strconv.FormatInt(int64(modeID), 10))
	values.Set("userId", strconv.FormatInt(userID, 10))

	var envelope teamEnvelope
	if err := c.getJSON(ctx, userTeamPath, values, &envelope); err != nil {
		return usecase.ExternalUserTeam{}, err
	}
	if !envelope.Result {
		return usecase.ExternalUserTeam{}, fmt.Errorf(
			"%w: dreamteam user team user_id=%d: %s",
			usecase.ErrNotFound,
			userID,
			envelopeMessage(envelope.Error),
		)
	}

	return mapUserTeam(envelope.Data)
}

// FetchLeague retrieves the standings of a custom league, or of the main
// league table when leagueID is zero.
func (c *Client) FetchLeague(ctx context.Context, modeID gamemode.ID, leagueID int64) (usecase.ExternalLeague, error) {
	values := url.Values{}
	values.Set("seasonId", strconv.FormatInt(int64(modeID), 10))
	if leagueID > 0 {
		values.Set("leagueId", strconv.FormatInt(leagueID, 10))
	} else {
		values.Set("leagueId", "null")
	}
	values.Set("teamId", "null")
	values.Set("isPerRound", "false")
	values.Set("pageIndex", "0")
	values.Set("searchText", "")

	var envelope leagueEnvelope
	if err := c.getJSON(ctx, leagueDataPath, values, &envelope); err != nil {
		return usecase.ExternalLeague{}, err
	}
	if !envelope.Result {
		return usecase.ExternalLeague{}, fmt.Errorf(
			"%w: dreamteam league league_id=%d: %s",
			usecase.ErrNotFound,
			leagueID,
			envelopeMessage(envelope.Error),
		)
	}

	return mapLeague(envelope.Data)
}

// Authenticate establishes a session with the configured credentials. It is
// safe to call concurrently; only one login round-trip runs at a time.
func (c *Client) Authenticate(ctx context.Context) error {
	c.mu.Lock()
	seen := c.session.generation
	c.mu.Unlock()

	return c.refreshSession(ctx, seen)
}

// SwapCredentials replaces the active credentials and logs in with them. On
// failure the previous credentials and session are restored.
func (c *Client) SwapCredentials(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)

	c.authMu.Lock()
	defer c.authMu.Unlock()

	c.mu.Lock()
	previousEmail := c.email
	previousPassword := c.password
	previousSession := c.session
	c.email = email
	c.password = password
	c.session.cookie = ""
	c.mu.Unlock()

	if err := c.login(ctx); err != nil {
		c.mu.Lock()
		c.email = previousEmail
		c.password = previousPassword
		c.session.cookie = previousSession.cookie
		c.session.issuedAt = previousSession.issuedAt
		c.mu.Unlock()
		return err
	}

	return nil
}

// ResetCredentials drops the active session and falls back to the credentials
// the client was constructed with. When none were configured the client stays
// logged out until the next SwapCredentials.
func (c *Client) ResetCredentials(ctx context.Context) error {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	c.mu.Lock()
	c.email = c.configuredEmail
	c.password = c.configuredPassword
	c.session.cookie = ""
	hasCredentials := c.email != "" && c.password != ""
	c.mu.Unlock()

	if !hasCredentials {
		return nil
	}

	return c.login(ctx)
}

func (c *Client) Status() usecase.SessionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	return usecase.SessionStatus{
		Authenticated: c.session.cookie != "",
		Email:         maskEmail(c.email),
	}
}

func (c *Client) getJSON(ctx context.Context, path string, values url.Values, out any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "dreamteam circuit breaker rejected request", "state", c.breaker.State(), "path", path)
			return fmt.Errorf("%w: dreamteam circuit is open", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	if len(values) > 0 {
		fullURL += "?" + values.Encode()
	}

	raw, err, shared := c.flight.Do(fullURL, func() (any, error) {
		return c.executeAuthorized(ctx, fullURL)
	})
	if err != nil {
		c.recordCircuitResult(err)
		if stderrors.Is(err, errDreamTeamTransient) {
			c.logger.WarnContext(ctx, "dreamteam request failed", "url", fullURL, "error", err)
			return fmt.Errorf("%w: %s", usecase.ErrDependencyUnavailable, err.Error())
		}
		return err
	}
	c.recordCircuitResult(nil)

	body, ok := raw.([]byte)
	if !ok {
		return crerr.Newf("unexpected singleflight payload type %T", raw)
	}
	if shared {
		c.logger.DebugContext(ctx, "dreamteam response shared from in-flight request", "url", fullURL)
	}

	if err := sonic.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode dreamteam payload: %v", usecase.ErrMalformedResponse, err)
	}

	return nil
}

// executeAuthorized performs one authorized GET. A session rejection triggers
// exactly one refresh and one retry; a second rejection is terminal.
func (c *Client) executeAuthorized(ctx context.Context, fullURL string) ([]byte, error) {
	cookie, seen, err := c.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	body, err := c.executeRequest(ctx, fullURL, cookie)
	if err == nil {
		return body, nil
	}
	if !stderrors.Is(err, errSessionExpired) {
		return nil, err
	}

	c.logger.WarnContext(ctx, "dreamteam session rejected, re-authenticating", "url", fullURL)
	if err := c.refreshSession(ctx, seen); err != nil {
		return nil, err
	}

	c.mu.Lock()
	cookie = c.session.cookie
	c.mu.Unlock()

	body, err = c.executeRequest(ctx, fullURL, cookie)
	if err == nil {
		return body, nil
	}
	if stderrors.Is(err, errSessionExpired) {
		return nil, fmt.Errorf("%w: dreamteam rejected a freshly established session", usecase.ErrUnauthorized)
	}

	return nil, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL, cookie string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create dreamteam request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errDreamTeamTransient, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errDreamTeamTransient, err)
	}

	switch {
	case resp.StatusCode/100 == 2:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status=%d", errSessionExpired, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: dreamteam status=404", usecase.ErrNotFound)
	default:
		return nil, fmt.Errorf("%w: dreamteam status=%d body=%s", errDreamTeamTransient, resp.StatusCode, abbreviateBody(body))
	}
}

// ensureSession returns the current cookie, logging in first when no session
// exists yet. The returned generation identifies the session the caller got.
func (c *Client) ensureSession(ctx context.Context) (string, uint64, error) {
	c.mu.Lock()
	cookie := c.session.cookie
	seen := c.session.generation
	c.mu.Unlock()

	if cookie != "" {
		return cookie, seen, nil
	}

	if err := c.refreshSession(ctx, seen); err != nil {
		return "", 0, err
	}

	c.mu.Lock()
	cookie = c.session.cookie
	seen = c.session.generation
	c.mu.Unlock()

	return cookie, seen, nil
}

// refreshSession logs in unless another caller already advanced the session
// past the generation this caller saw fail.
func (c *Client) refreshSession(ctx context.Context, seen uint64) error {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	c.mu.Lock()
	current := c.session.generation
	cookie := c.session.cookie
	c.mu.Unlock()

	if current != seen && cookie != "" {
		return nil
	}

	return c.login(ctx)
}

// login performs the credential exchange. Callers must hold authMu.
func (c *Client) login(ctx context.Context) error {
	c.mu.Lock()
	email := c.email
	password := c.password
	c.mu.Unlock()

	if email == "" || password == "" {
		return fmt.Errorf("%w: dreamteam credentials are not configured", usecase.ErrUnauthorized)
	}

	payload, err := sonic.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("marshal login payload: %w", err)
	}

	fullURL := c.baseURL + loginPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "dreamteam login request", "url", fullURL, "curl_preview", buildLoginCurlPreview(fullURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.clearSession()
		return fmt.Errorf("%w: login request failed: %s", usecase.ErrDependencyUnavailable, redactSensitiveText(err.Error(), password))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.clearSession()
		return fmt.Errorf("%w: read login response: %v", usecase.ErrDependencyUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.clearSession()
		return fmt.Errorf("%w: dreamteam login status=%d", usecase.ErrUnauthorized, resp.StatusCode)
	}
	if contentType := resp.Header.Get("Content-Type"); !strings.Contains(contentType, "application/json") {
		c.clearSession()
		return fmt.Errorf("%w: dreamteam login returned content-type=%q", usecase.ErrUnauthorized, contentType)
	}

	var envelope loginEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		c.clearSession()
		return fmt.Errorf("%w: decode login response: %v", usecase.ErrUnauthorized, err)
	}
	if !envelope.Result {
		c.clearSession()
		return fmt.Errorf("%w: dreamteam login failed: %s", usecase.ErrUnauthorized, envelopeMessage(envelope.Error))
	}

	cookie := sessionCookie(resp)
	if cookie == "" {
		c.clearSession()
		return fmt.Errorf("%w: dreamteam login returned no session cookie", usecase.ErrUnauthorized)
	}

	c.mu.Lock()
	c.session.cookie = cookie
	c.session.issuedAt = time.Now()
	c.session.generation++
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "dreamteam session established", "email", maskEmail(email))
	return nil
}

func (c *Client) clearSession() {
	c.mu.Lock()
	c.session.cookie = ""
	c.mu.Unlock()
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	if isCircuitFailure(err) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}
