package service

import (
	"context"

	"github.com/gbasileGP/profgetter/internal/command"
)

// Command names exposed by the profession service.
const (
	CheckProfLevelsCommand = "checkProfLevels"
	CheckCharacterCommand  = "checkCharacter"
)

// RegisterCommands (re)registers the profession commands on reg. Any previous
// registration under the same names is replaced.
func (ps *ProfessionService) RegisterCommands(reg *command.Registry, suggestions []string) error {
	ps.logger.Infof("svc: RegisterCommands - Refreshing %s command", CheckProfLevelsCommand)

	err := command.New(CheckProfLevelsCommand).
		WordArg("player").
		SuggestMatching(suggestions).
		Executes(func(ctx context.Context, inv command.Invocation) error {
			return ps.CheckProfLevels(ctx, inv.Arg("player"))
		}).
		Register(reg)
	if err != nil {
		return err
	}

	return command.New(CheckCharacterCommand).
		WordArg("player").
		WordArg("character").
		SuggestMatching(suggestions).
		Executes(func(ctx context.Context, inv command.Invocation) error {
			return ps.CheckCharacter(ctx, inv.Arg("player"), inv.Arg("character"))
		}).
		Register(reg)
}
