// Package msgraph turns Outlook calendar entries into event drafts via the
// Microsoft Graph API, authenticated with the OAuth2 device code flow.
package msgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/oauth2"

	"github.com/divya20032004/custom-event-calendar/internal/model"
)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

var scopes = []string{
	"https://graph.microsoft.com/Calendars.Read",
	"offline_access",
}

func endpointConfig(tenantID, clientID string) *oauth2.Config {
	base := "https://login.microsoftonline.com/" + tenantID + "/oauth2/v2.0/"
	return &oauth2.Config{
		ClientID: clientID,
		Scopes:   scopes,
		Endpoint: oauth2.Endpoint{
			DeviceAuthURL: base + "devicecode",
			TokenURL:      base + "token",
			AuthStyle:     oauth2.AuthStyleInParams,
		},
	}
}

// Client is an authenticated Graph session. It is obtained through Connect
// and produces event drafts ready for the importer.
type Client struct {
	http *http.Client
}

// Connect returns an authenticated client. A cached token is reused or
// refreshed when possible; otherwise the device code flow runs and the user
// is asked to sign in through a browser. tenantID and clientID come from
// ~/.cec/config.json.
func Connect(ctx context.Context, tenantID, clientID string) (*Client, error) {
	cfg := endpointConfig(tenantID, clientID)

	tok, err := readCachedToken()
	if err != nil {
		// Corrupt cache — warn and re-auth.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		tok = nil
	}

	switch {
	case tok != nil && tok.Valid():
		// Cached token still good.
	case tok != nil && tok.RefreshToken != "":
		refreshed, rerr := cfg.TokenSource(ctx, tok).Token()
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "Token refresh failed (%v), re-authenticating...\n", rerr)
			tok = nil
			break
		}
		if werr := writeCachedToken(refreshed); werr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save refreshed token: %v\n", werr)
		}
		tok = refreshed
	default:
		tok = nil
	}

	if tok == nil {
		tok, err = signIn(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	return &Client{
		http: oauth2.NewClient(ctx, persistingSource{src: cfg.TokenSource(ctx, tok)}),
	}, nil
}

// signIn runs the device code flow and caches the resulting token.
func signIn(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	resp, err := cfg.DeviceAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("device auth request failed: %w", err)
	}

	fmt.Println()
	fmt.Println("To sign in, use a web browser to open the page:")
	fmt.Printf("  %s\n", resp.VerificationURI)
	fmt.Printf("Enter the code: %s\n", resp.UserCode)
	fmt.Println()

	tok, err := cfg.DeviceAccessToken(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("device authentication failed: %w", err)
	}
	if err := writeCachedToken(tok); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save token: %v\n", err)
	}
	return tok, nil
}

// persistingSource writes refreshed tokens back to the cache so the next run
// skips the sign-in.
type persistingSource struct {
	src oauth2.TokenSource
}

func (p persistingSource) Token() (*oauth2.Token, error) {
	tok, err := p.src.Token()
	if err != nil {
		return nil, err
	}
	_ = writeCachedToken(tok)
	return tok, nil
}

// graphEvent is the slice of the Graph calendarView payload this importer
// consumes.
type graphEvent struct {
	ID          string        `json:"id"`
	Subject     string        `json:"subject"`
	BodyPreview string        `json:"bodyPreview"`
	IsAllDay    bool          `json:"isAllDay"`
	IsCancelled bool          `json:"isCancelled"`
	Sensitivity string        `json:"sensitivity"` // "private" events are skipped
	ShowAs      string        `json:"showAs"`      // "free" events are skipped
	Start       graphDateTime `json:"start"`
	End         graphDateTime `json:"end"`
	Location    graphLocation `json:"location"`
}

type graphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type graphLocation struct {
	DisplayName string `json:"displayName"`
}

type calendarViewPage struct {
	Value    []graphEvent `json:"value"`
	NextLink string       `json:"@odata.nextLink"`
}

// FetchDrafts pulls the calendarView for [from, to] and maps each usable
// entry into an event draft. Cancelled, all-day, private and free entries
// are dropped; per-entry mapping failures are reported on stdout and counted
// in errCount. timezone is an IANA name ("" means UTC).
func (c *Client) FetchDrafts(ctx context.Context, from, to time.Time, timezone string, category model.Category) (drafts []model.Draft, errCount int, err error) {
	events, err := c.calendarView(ctx, from, to, timezone)
	if err != nil {
		return nil, 0, err
	}
	drafts, errCount = draftsFromGraph(events, timezone, category)
	return drafts, errCount, nil
}

// calendarView fetches all pages of the calendarView endpoint.
func (c *Client) calendarView(ctx context.Context, from, to time.Time, timezone string) ([]graphEvent, error) {
	q := url.Values{}
	q.Set("startDateTime", from.UTC().Format(time.RFC3339))
	q.Set("endDateTime", to.UTC().Format(time.RFC3339))
	q.Set("$top", "100")
	next := graphBaseURL + "/me/calendarView?" + q.Encode()

	var events []graphEvent
	for next != "" {
		page, err := c.fetchPage(ctx, next, timezone)
		if err != nil {
			return nil, err
		}
		events = append(events, page.Value...)
		next = page.NextLink
	}
	return events, nil
}

func (c *Client) fetchPage(ctx context.Context, endpoint, timezone string) (calendarViewPage, error) {
	var page calendarViewPage

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return page, fmt.Errorf("building calendarView request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if timezone != "" {
		// Asks Graph to render event times in this zone instead of UTC.
		req.Header.Set("Prefer", fmt.Sprintf(`outlook.timezone="%s"`, timezone))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return page, fmt.Errorf("calendarView request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return page, fmt.Errorf("graph API returned %d: %s", resp.StatusCode, msg)
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return page, fmt.Errorf("decoding calendarView page: %w", err)
	}
	return page, nil
}
