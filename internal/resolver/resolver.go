// Package resolver picks a character out of a player stats response.
package resolver

import (
	"fmt"

	"github.com/gbasileGP/profgetter/internal/model"
)

// Choice is one selectable character.
type Choice struct {
	ID        string
	Label     string // class type, suffixed with " (n)" when the type repeats
	Character model.CharacterRecord
}

// Policy decides which character of a player record is displayed.
type Policy interface {
	Select(player string, record *model.PlayerRecord) (Choice, error)
}

// PlayerRecord returns the first player record of resp, requiring at least one character.
func PlayerRecord(resp *model.PlayerStatsResponse) (*model.PlayerRecord, error) {
	if resp == nil || len(resp.Data) == 0 {
		return nil, &model.InvalidDataError{Reason: "response has no player data"}
	}
	record := &resp.Data[0]
	if record.Characters.Len() == 0 {
		return nil, &model.InvalidDataError{Reason: "no characters found in player data"}
	}
	return record, nil
}

// SelectionList groups characters by type, types ordered by first appearance.
// Types held by more than one character get a 1-based index in their label.
func SelectionList(record *model.PlayerRecord) []Choice {
	var types []string
	byType := make(map[string][]model.Entry[model.CharacterRecord])
	for _, e := range record.Characters.Entries() {
		t := e.Value.Type
		if _, seen := byType[t]; !seen {
			types = append(types, t)
		}
		byType[t] = append(byType[t], e)
	}

	choices := make([]Choice, 0, record.Characters.Len())
	for _, t := range types {
		group := byType[t]
		for i, e := range group {
			label := t
			if len(group) > 1 {
				label = fmt.Sprintf("%s (%d)", t, i+1)
			}
			choices = append(choices, Choice{ID: e.Key, Label: label, Character: e.Value})
		}
	}
	return choices
}

// AutoSelect picks the first entry of the selection list.
type AutoSelect struct{}

func (AutoSelect) Select(_ string, record *model.PlayerRecord) (Choice, error) {
	choices := SelectionList(record)
	if len(choices) == 0 {
		return Choice{}, &model.InvalidDataError{Reason: "no characters found in player data"}
	}
	return choices[0], nil
}

// DirectSelect picks the character with the given id.
type DirectSelect struct {
	CharacterID string
}

func (d DirectSelect) Select(player string, record *model.PlayerRecord) (Choice, error) {
	ch, ok := record.Characters.Get(d.CharacterID)
	if !ok {
		return Choice{}, &model.NotFoundError{Player: player, CharacterID: d.CharacterID}
	}
	for _, c := range SelectionList(record) {
		if c.ID == d.CharacterID {
			return c, nil
		}
	}
	return Choice{ID: d.CharacterID, Label: ch.Type, Character: ch}, nil
}
