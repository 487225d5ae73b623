// Package enrich looks up entity surface text against Wikipedia, Wikidata,
// and GeoNames. Absence of data is a normal outcome, not an error: every
// lookup is attempt-once, and a network failure yields the same empty
// result as a miss.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/c360studio/narragraph/vocabulary/onto"
)

// maxResponseSize limits enrichment response bodies.
const maxResponseSize = 1 * 1024 * 1024 // 1MB

// Description is the free-text enrichment for an entity.
type Description struct {
	Text       string
	AltNames   []string
	ExternalID string
	Link       string
}

// LocationHint is the structured enrichment for a location entity.
type LocationHint struct {
	Class      string
	Country    string
	AdminLevel int
	ExternalID string
}

// Service bundles the three enrichment clients.
type Service struct {
	httpClient   *http.Client
	logger       *slog.Logger
	geonamesUser string

	wikipediaBase string
	wikidataBase  string
	geonamesBase  string
}

// Option configures a Service.
type Option func(*Service)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) { s.httpClient = c }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithBaseURLs overrides the service endpoints, for tests.
func WithBaseURLs(wikipedia, wikidata, geonames string) Option {
	return func(s *Service) {
		s.wikipediaBase = wikipedia
		s.wikidataBase = wikidata
		s.geonamesBase = geonames
	}
}

// New creates an enrichment service. geonamesUser may be empty, in which
// case GeoNames lookups always miss.
func New(geonamesUser string, opts ...Option) *Service {
	s := &Service{
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		logger:        slog.Default(),
		geonamesUser:  geonamesUser,
		wikipediaBase: "https://en.wikipedia.org/api/rest_v1",
		wikidataBase:  "https://www.wikidata.org/w/api.php",
		geonamesBase:  "http://api.geonames.org",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Wikipedia returns the page summary for the text's best-matching article.
func (s *Service) Wikipedia(ctx context.Context, text string) (Description, bool) {
	title := strings.ReplaceAll(strings.TrimSpace(text), " ", "_")
	if title == "" {
		return Description{}, false
	}
	endpoint := s.wikipediaBase + "/page/summary/" + url.PathEscape(title)

	var payload struct {
		Title   string `json:"title"`
		Extract string `json:"extract"`
		Type    string `json:"type"`
		Content struct {
			Desktop struct {
				Page string `json:"page"`
			} `json:"desktop"`
		} `json:"content_urls"`
	}
	if !s.get(ctx, endpoint, &payload) {
		return Description{}, false
	}
	if payload.Extract == "" || payload.Type == "disambiguation" {
		return Description{}, false
	}

	desc := Description{Text: payload.Extract, Link: payload.Content.Desktop.Page}
	if payload.Title != "" && !strings.EqualFold(payload.Title, text) {
		desc.AltNames = append(desc.AltNames, payload.Title)
	}
	return desc, true
}

// Wikidata returns the best entity match with its aliases and Q-identifier.
func (s *Service) Wikidata(ctx context.Context, text string) (Description, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Description{}, false
	}
	query := url.Values{
		"action":   {"wbsearchentities"},
		"search":   {text},
		"language": {"en"},
		"format":   {"json"},
		"limit":    {"1"},
	}
	endpoint := s.wikidataBase + "?" + query.Encode()

	var payload struct {
		Search []struct {
			ID          string   `json:"id"`
			Label       string   `json:"label"`
			Description string   `json:"description"`
			Aliases     []string `json:"aliases"`
		} `json:"search"`
	}
	if !s.get(ctx, endpoint, &payload) || len(payload.Search) == 0 {
		return Description{}, false
	}

	hit := payload.Search[0]
	desc := Description{
		Text:       hit.Description,
		ExternalID: hit.ID,
		AltNames:   hit.Aliases,
	}
	if hit.Label != "" && !strings.EqualFold(hit.Label, text) {
		desc.AltNames = append(desc.AltNames, hit.Label)
	}
	return desc, true
}

// GeoNames returns a location class hint, country, and administrative level
// for a place name.
func (s *Service) GeoNames(ctx context.Context, text string) (LocationHint, bool) {
	text = strings.TrimSpace(text)
	if text == "" || s.geonamesUser == "" {
		return LocationHint{}, false
	}
	query := url.Values{
		"q":        {text},
		"maxRows":  {"1"},
		"username": {s.geonamesUser},
	}
	endpoint := s.geonamesBase + "/searchJSON?" + query.Encode()

	var payload struct {
		Geonames []struct {
			GeonameID   int    `json:"geonameId"`
			CountryName string `json:"countryName"`
			Fcl         string `json:"fcl"`
			Fcode       string `json:"fcode"`
		} `json:"geonames"`
	}
	if !s.get(ctx, endpoint, &payload) || len(payload.Geonames) == 0 {
		return LocationHint{}, false
	}

	hit := payload.Geonames[0]
	hint := LocationHint{
		Country:    hit.CountryName,
		ExternalID: fmt.Sprintf("geonames:%d", hit.GeonameID),
	}
	hint.Class, hint.AdminLevel = classifyFeature(hit.Fcl, hit.Fcode)
	return hint, true
}

// classifyFeature maps GeoNames feature class/code onto ontology classes.
func classifyFeature(fcl, fcode string) (string, int) {
	switch {
	case fcode == "PCLI" || fcode == "PCL":
		return onto.Country, 0
	case strings.HasPrefix(fcode, "ADM"):
		level := 1
		if len(fcode) > 3 && fcode[3] >= '1' && fcode[3] <= '9' {
			level = int(fcode[3] - '0')
		}
		return onto.AdministrativeDivision, level
	case fcl == "P":
		return onto.PopulatedPlace, 0
	case fcl == "S":
		return onto.BuildingAndDwelling, 0
	case fcl == "H", fcl == "T", fcl == "V", fcl == "L", fcl == "U":
		return onto.GeographicFeature, 0
	default:
		return onto.Location, 0
	}
}

// get performs one GET and decodes JSON. Any failure logs and reports a
// miss; there is no retry.
func (s *Service) get(ctx context.Context, endpoint string, out any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		s.logger.Debug("enrichment request build failed", "error", err)
		return false
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Debug("enrichment request failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Debug("enrichment lookup missed", "status", resp.StatusCode)
		return false
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		s.logger.Debug("enrichment read failed", "error", err)
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		s.logger.Debug("enrichment decode failed", "error", err)
		return false
	}
	return true
}
