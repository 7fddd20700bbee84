package maplestory

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gamescope/nexctl/nexon"
)

// Client wraps the MapleStory endpoints of the Nexon Open API.
type Client struct {
	api    *nexon.Client
	logger zerolog.Logger
}

// NewClient creates a MapleStory resource client on top of an API client.
func NewClient(api *nexon.Client, logger zerolog.Logger) *Client {
	return &Client{api: api, logger: logger}
}

// GetOcid resolves a character name to its ocid.
func (c *Client) GetOcid(ctx context.Context, characterName string, opts *nexon.RequestOptions) (string, error) {
	if characterName == "" {
		return "", fmt.Errorf("character name is required")
	}

	query := url.Values{"character_name": {characterName}}
	resp, err := nexon.Get[nexon.Ocid](ctx, c.api, "maplestory/v1/id", query, nexon.OcidShape, opts)
	if err != nil {
		return "", fmt.Errorf("failed to resolve ocid: %w", err)
	}

	ocid, err := resp.Parse()
	if err != nil {
		return "", err
	}
	return ocid.Ocid, nil
}

// GetCharacterBasic fetches the basic profile for an ocid.
func (c *Client) GetCharacterBasic(ctx context.Context, ocid string, opts *nexon.RequestOptions) (CharacterBasic, error) {
	query := url.Values{"ocid": {ocid}}
	resp, err := nexon.Get[CharacterBasic](ctx, c.api, "maplestory/v1/character/basic", query, CharacterBasicShape, opts)
	if err != nil {
		return CharacterBasic{}, fmt.Errorf("failed to get character basic: %w", err)
	}

	basic, err := resp.Parse()
	if err != nil {
		return CharacterBasic{}, err
	}

	c.logger.Debug().
		Str("character", basic.CharacterName).
		Str("world", basic.WorldName).
		Int("level", basic.CharacterLevel).
		Msg("fetched MapleStory character basic")

	return basic, nil
}

// GetCharacterPopularity fetches the popularity snapshot for an ocid.
func (c *Client) GetCharacterPopularity(ctx context.Context, ocid string, opts *nexon.RequestOptions) (Popularity, error) {
	query := url.Values{"ocid": {ocid}}
	resp, err := nexon.Get[Popularity](ctx, c.api, "maplestory/v1/character/popularity", query, PopularityShape, opts)
	if err != nil {
		return Popularity{}, fmt.Errorf("failed to get character popularity: %w", err)
	}
	return resp.Parse()
}

// GetOverallRanking fetches one page of the overall ranking for a date
// (KST, formatted 2006-01-02). An empty worldName queries all worlds.
func (c *Client) GetOverallRanking(ctx context.Context, date, worldName string, page int, opts *nexon.RequestOptions) ([]RankingEntry, error) {
	if page < 1 {
		page = 1
	}

	query := url.Values{
		"date": {date},
		"page": {strconv.Itoa(page)},
	}
	if worldName != "" {
		query.Set("world_name", worldName)
	}

	resp, err := nexon.Get[RankingPage](ctx, c.api, "maplestory/v1/ranking/overall", query, RankingPageShape, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get overall ranking: %w", err)
	}

	rankingPage, err := resp.Parse()
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("page", page).
		Int("count", len(rankingPage.Ranking)).
		Msg("fetched MapleStory overall ranking")

	return rankingPage.Ranking, nil
}
