package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gbasileGP/profgetter/internal/format"
	"github.com/gbasileGP/profgetter/internal/model"
	"github.com/gbasileGP/profgetter/internal/resolver"
	"github.com/sirupsen/logrus"
)

// StatsFetcher fetches the stats payload of a player.
type StatsFetcher interface {
	GetPlayerStats(ctx context.Context, player string) (*model.PlayerStatsResponse, error)
}

// Report is the outcome of one successful lookup.
type Report struct {
	Player   string
	Choices  []resolver.Choice
	Selected resolver.Choice
}

// ProfessionService runs the fetch, resolve and format pipeline.
type ProfessionService struct {
	stats  StatsFetcher
	sink   format.Sink
	styles format.Styles
	logger *logrus.Logger
}

// NewProfessionService creates a service writing its output to sink.
func NewProfessionService(stats StatsFetcher, sink format.Sink, styles format.Styles, logger *logrus.Logger) *ProfessionService {
	if styles.Out == nil {
		styles.Out = format.Plain{}
	}
	if styles.Err == nil {
		styles.Err = format.Plain{}
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &ProfessionService{
		stats:  stats,
		sink:   sink,
		styles: styles,
		logger: logger,
	}
}

// Lookup fetches the player's stats once and selects a character with policy.
// Nothing is written to the sink.
func (ps *ProfessionService) Lookup(ctx context.Context, player string, policy resolver.Policy) (*Report, error) {
	resp, err := ps.stats.GetPlayerStats(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("svc: Lookup - failed to fetch stats: %w", err)
	}

	record, err := resolver.PlayerRecord(resp)
	if err != nil {
		return nil, fmt.Errorf("svc: Lookup - %w", err)
	}

	selected, err := policy.Select(player, record)
	if err != nil {
		return nil, err
	}

	if ps.logger.IsLevelEnabled(logrus.TraceLevel) {
		if raw, err := json.Marshal(record.Characters); err == nil {
			ps.logger.WithField("characters", string(raw)).Trace("svc: Lookup - Characters data")
		}
	}

	ps.logger.WithFields(logrus.Fields{
		"player":     player,
		"characters": record.Characters.Len(),
		"selected":   selected.ID,
	}).Debug("svc: Lookup - Resolved character")

	return &Report{
		Player:   player,
		Choices:  resolver.SelectionList(record),
		Selected: selected,
	}, nil
}

// CheckProfLevels lists the player's characters and prints the professions of
// the first one.
func (ps *ProfessionService) CheckProfLevels(ctx context.Context, player string) error {
	report, err := ps.Lookup(ctx, player, resolver.AutoSelect{})
	if err != nil {
		return ps.fail(player, err)
	}

	ps.sink.Log(format.CharacterList(player, report.Choices, ps.styles.Out))
	ps.sink.Log(format.Professions(player, report.Selected.ID, report.Selected.Character, ps.styles.Out))
	ps.logger.WithFields(logrus.Fields{
		"player":    player,
		"character": report.Selected.ID,
	}).Info("svc: CheckProfLevels - Printed profession levels")
	return nil
}

// CheckCharacter prints the professions of one character. An unknown id is
// reported on the sink and is not an error.
func (ps *ProfessionService) CheckCharacter(ctx context.Context, player, characterID string) error {
	report, err := ps.Lookup(ctx, player, resolver.DirectSelect{CharacterID: characterID})
	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		ps.sink.Log(format.NotFound(notFound, ps.styles.Out))
		ps.logger.WithFields(logrus.Fields{
			"player":    player,
			"character": characterID,
		}).Warn("svc: CheckCharacter - Character not found")
		return nil
	}
	if err != nil {
		return ps.fail(player, err)
	}

	ps.sink.Log(format.Professions(player, report.Selected.ID, report.Selected.Character, ps.styles.Out))
	ps.logger.WithFields(logrus.Fields{
		"player":    player,
		"character": characterID,
	}).Info("svc: CheckCharacter - Printed profession levels")
	return nil
}

func (ps *ProfessionService) fail(player string, err error) error {
	ps.sink.Error(format.Failure(player, model.Cause(err), ps.styles.Err))
	ps.logger.WithError(err).WithField("player", player).Error("svc: Failed to check profession levels")
	return err
}
