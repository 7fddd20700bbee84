package hit2

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/gamescope/nexctl/nexon"
)

// Client wraps the HIT2 endpoints of the Nexon Open API.
type Client struct {
	api    *nexon.Client
	logger zerolog.Logger
}

// NewClient creates a HIT2 resource client on top of an API client.
func NewClient(api *nexon.Client, logger zerolog.Logger) *Client {
	return &Client{api: api, logger: logger}
}

// GetOcid resolves a character name on a world to its ocid.
func (c *Client) GetOcid(ctx context.Context, worldName, characterName string, opts *nexon.RequestOptions) (string, error) {
	if characterName == "" {
		return "", fmt.Errorf("character name is required")
	}

	query := url.Values{
		"world_name":     {worldName},
		"character_name": {characterName},
	}
	resp, err := nexon.Get[nexon.Ocid](ctx, c.api, "hit2/v1/id", query, nexon.OcidShape, opts)
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
	resp, err := nexon.Get[CharacterBasic](ctx, c.api, "hit2/v1/character/basic", query, CharacterBasicShape, opts)
	if err != nil {
		return CharacterBasic{}, fmt.Errorf("failed to get character basic: %w", err)
	}

	basic, err := resp.Parse()
	if err != nil {
		return CharacterBasic{}, err
	}

	c.logger.Debug().
		Str("character", basic.CharacterName).
		Str("server", basic.ServerName).
		Int("level", basic.CharacterLevel).
		Msg("fetched HIT2 character basic")

	return basic, nil
}
