package model

// PlayerStatsResponse represents the response structure of the player stats endpoint.
type PlayerStatsResponse struct {
	Data []PlayerRecord `json:"data"`
}

// PlayerRecord holds the characters of one player.
type PlayerRecord struct {
	Characters CharacterMap `json:"characters"`
}

// CharacterRecord holds a single character's class type and profession levels.
type CharacterRecord struct {
	Type        string        `json:"type"`
	Professions ProfessionMap `json:"professions"`
}

// ProfessionStats holds the level and the percentage towards the next level.
type ProfessionStats struct {
	Level int     `json:"level"`
	XP    float64 `json:"xp"`
}

// CharacterMap maps character ids to characters in response order.
type CharacterMap = OrderedMap[CharacterRecord]

// ProfessionMap maps profession names to their stats in response order.
type ProfessionMap = OrderedMap[ProfessionStats]
