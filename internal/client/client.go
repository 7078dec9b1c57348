package client

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gbasileGP/profgetter/internal/config"
	"github.com/gbasileGP/profgetter/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const playerStatsPath = "/v2/player/{player}/stats"

// StatsClient talks to the Wynncraft player stats API.
type StatsClient struct {
	client *resty.Client
	logger *logrus.Logger
}

func NewStatsClient(cfg *config.Config, logger *logrus.Logger) *StatsClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIEndpoint, "/")).
		SetTimeout(cfg.Timeout)

	if logger == nil {
		logger = logrus.New()
	}

	return &StatsClient{
		client: client,
		logger: logger,
	}
}

// GetPlayerStats fetches and decodes the stats of a single player. It makes
// exactly one request and never retries.
func (s *StatsClient) GetPlayerStats(ctx context.Context, player string) (*model.PlayerStatsResponse, error) {
	if strings.TrimSpace(player) == "" {
		return nil, &model.InvalidDataError{Reason: "player name is empty"}
	}

	log := s.logger.WithField("player", player)
	log.Debug("client: GetPlayerStats - Fetching player stats")

	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("player", player).
		Get(playerStatsPath)
	if err != nil {
		log.WithError(err).Error("client: GetPlayerStats - Request failed")
		return nil, &model.NetworkError{Player: player, Err: err}
	}
	if resp.IsError() {
		log.WithField("status", resp.Status()).Error("client: GetPlayerStats - Unexpected status")
		return nil, &model.NetworkError{Player: player, StatusCode: resp.StatusCode()}
	}

	body := resp.Body()
	log.WithField("body", string(body)).Debug("client: GetPlayerStats - Response data")
	if !gjson.ValidBytes(body) {
		log.Error("client: GetPlayerStats - Response body is not JSON")
		return nil, &model.ParseError{Player: player, Err: errors.New("response body is not valid JSON")}
	}

	var stats model.PlayerStatsResponse
	if err := json.Unmarshal(body, &stats); err != nil {
		log.WithError(err).Error("client: GetPlayerStats - Unexpected response shape")
		return nil, &model.InvalidDataError{Reason: "unexpected response shape", Err: err}
	}

	log.WithFields(logrus.Fields{
		"status":  resp.Status(),
		"records": len(stats.Data),
	}).Debug("client: GetPlayerStats - Successfully fetched player stats")

	return &stats, nil
}
