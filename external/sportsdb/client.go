package sportsdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/christianwondeson/sports-hub/internal/platform/logging"
	"github.com/christianwondeson/sports-hub/internal/platform/resilience"
	"github.com/christianwondeson/sports-hub/internal/usecase"
)

const (
	defaultBaseURL = "https://www.thesportsdb.com/api/v1/json"
	// defaultAPIKey is the provider's shared free-tier key.
	defaultAPIKey = "3"

	maxResponseBytes = 6 << 20
)

var errSportsDBTransient = crerr.New("thesportsdb transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to TheSportsDB v1 JSON API. The API key is a path segment, so
// it is redacted from every logged URL. Failed calls retry with a linear
// backoff; repeated transient failures trip the circuit breaker.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ usecase.FixtureProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		apiKey = defaultAPIKey
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         apiKey,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// UpcomingFixtures lists the next round of fixtures for a league. A null
// events array is an empty result, not an error.
func (c *Client) UpcomingFixtures(ctx context.Context, leagueID string) ([]usecase.UpstreamFixture, error) {
	var envelope eventsEnvelope
	if err := c.doJSON(ctx, "eventsnextleague.php", map[string]string{"id": leagueID}, &envelope); err != nil {
		return nil, err
	}

	fixtures := make([]usecase.UpstreamFixture, 0, len(envelope.Events))
	for _, record := range envelope.Events {
		fixtures = append(fixtures, mapEventRecord(record))
	}
	return fixtures, nil
}

// FixtureByID looks up a single fixture. found is false when the feed has no
// record for the id.
func (c *Client) FixtureByID(ctx context.Context, fixtureID string) (usecase.UpstreamFixture, bool, error) {
	var envelope eventsEnvelope
	if err := c.doJSON(ctx, "lookupevent.php", map[string]string{"id": fixtureID}, &envelope); err != nil {
		return usecase.UpstreamFixture{}, false, err
	}
	if len(envelope.Events) == 0 {
		return usecase.UpstreamFixture{}, false, nil
	}
	return mapEventRecord(envelope.Events[0]), true, nil
}

// Timeline fetches the discrete timeline feed for one fixture. Not every
// fixture has one; a null array is an empty result.
func (c *Client) Timeline(ctx context.Context, fixtureID string) ([]usecase.UpstreamTimelineEntry, error) {
	var envelope timelineEnvelope
	if err := c.doJSON(ctx, "lookuptimeline.php", map[string]string{"id": fixtureID}, &envelope); err != nil {
		return nil, err
	}

	entries := make([]usecase.UpstreamTimelineEntry, 0, len(envelope.Timeline))
	for _, record := range envelope.Timeline {
		entries = append(entries, usecase.UpstreamTimelineEntry{
			ID:       record.IDTimeline,
			Tag:      record.StrTimeline,
			Detail:   record.StrTimelineDetail,
			HomeFlag: record.StrHome,
			Time:     record.IntTime,
			Player:   record.StrPlayer,
			Assist:   record.StrAssist,
		})
	}
	return entries, nil
}

// LeagueByID fetches league metadata.
func (c *Client) LeagueByID(ctx context.Context, leagueID string) (usecase.UpstreamLeague, bool, error) {
	var envelope leaguesEnvelope
	if err := c.doJSON(ctx, "lookupleague.php", map[string]string{"id": leagueID}, &envelope); err != nil {
		return usecase.UpstreamLeague{}, false, err
	}
	if len(envelope.Leagues) == 0 {
		return usecase.UpstreamLeague{}, false, nil
	}

	record := envelope.Leagues[0]
	return usecase.UpstreamLeague{
		ID:            record.IDLeague,
		Name:          record.StrLeague,
		Country:       record.StrCountry,
		Badge:         record.StrBadge,
		CurrentSeason: record.StrCurrentSeason,
	}, true, nil
}

func mapEventRecord(record eventRecord) usecase.UpstreamFixture {
	return usecase.UpstreamFixture{
		ID:       record.IDEvent,
		LeagueID: record.IDLeague,
		League:   record.StrLeague,
		Season:   record.StrSeason,
		Round:    record.IntRound,
		Venue:    record.StrVenue,

		HomeTeamID: record.IDHomeTeam,
		HomeTeam:   record.StrHomeTeam,
		HomeBadge:  derefString(record.StrHomeTeamBadge),
		AwayTeamID: record.IDAwayTeam,
		AwayTeam:   record.StrAwayTeam,
		AwayBadge:  derefString(record.StrAwayTeamBadge),

		HomeScore:     derefString(record.IntHomeScore),
		AwayScore:     derefString(record.IntAwayScore),
		HomeScoreHalf: derefString(record.IntHomeScoreHalf),
		AwayScoreHalf: derefString(record.IntAwayScoreHalf),

		Status:    derefString(record.StrStatus),
		Timestamp: record.StrTimestamp,
		Date:      record.DateEvent,
		Time:      record.StrTime,

		HomeGoalDetails: derefString(record.StrHomeGoalDetails),
		AwayGoalDetails: derefString(record.StrAwayGoalDetails),
		HomeYellowCards: derefString(record.StrHomeYellowCards),
		AwayYellowCards: derefString(record.StrAwayYellowCards),
		HomeRedCards:    derefString(record.StrHomeRedCards),
		AwayRedCards:    derefString(record.StrAwayRedCards),
	}
}

func (c *Client) doJSON(ctx context.Context, endpoint string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "thesportsdb circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: sports data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + "/" + c.apiKey + "/" + endpoint
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := endpoint + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errSportsDBTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	c.logger.DebugContext(ctx, "thesportsdb request", "curl", c.requestPreview(fullURL))

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errSportsDBTransient, c.redactKey(err.Error()))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errSportsDBTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errSportsDBTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "thesportsdb request failed", "url", c.redactKey(fullURL), "error", lastErr)
	return nil, lastErr
}

// requestPreview renders the outgoing call as a copy-pasteable curl line with
// the API key already redacted.
func (c *Client) requestPreview(fullURL string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("curl -H 'accept: application/json' '")
	_, _ = buf.WriteString(c.redactKey(fullURL))
	_ = buf.WriteByte('\'')

	return buf.String()
}

// redactKey strips the API key path segment from anything that gets logged.
func (c *Client) redactKey(value string) string {
	if c.apiKey == "" {
		return value
	}
	return strings.ReplaceAll(value, "/"+c.apiKey+"/", "/REDACTED/")
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const maxLen = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > maxLen {
		return body[:maxLen] + "..."
	}
	return body
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
