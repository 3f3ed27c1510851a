package nhle

import (
	"bytes"

	"github.com/goccy/go-json"
)

// nameField is a player name part. The API localizes names as {"default": "Connor", "cs": ...};
// older payloads and fixtures use a plain string.
type nameField string

func (n *nameField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = nameField(s)
		return nil
	}
	var localized struct {
		Default string `json:"default"`
	}
	if err := json.Unmarshal(data, &localized); err != nil {
		return err
	}
	*n = nameField(localized.Default)
	return nil
}

type playerResponse struct {
	FirstName nameField `json:"firstName"`
	LastName  nameField `json:"lastName"`
}

type rosterResponse struct {
	Forwards   []playerResponse `json:"forwards"`
	Defensemen []playerResponse `json:"defensemen"`
	Goalies    []playerResponse `json:"goalies"`
}

type scheduleResponse struct {
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	ID       int64            `json:"id"`
	Season   int64            `json:"season"`
	AwayTeam gameTeamResponse `json:"awayTeam"`
	HomeTeam gameTeamResponse `json:"homeTeam"`
}

type gameTeamResponse struct {
	Abbrev string `json:"abbrev"`
}

// boxscoreResponse covers both layouts seen in the wild: players listed directly under
// awayTeam/homeTeam, or under playerByGameStats split by position.
type boxscoreResponse struct {
	AwayTeam          *boxscoreTeam `json:"awayTeam"`
	HomeTeam          *boxscoreTeam `json:"homeTeam"`
	PlayerByGameStats *struct {
		AwayTeam *boxscoreTeam `json:"awayTeam"`
		HomeTeam *boxscoreTeam `json:"homeTeam"`
	} `json:"playerByGameStats"`
}

type boxscoreTeam struct {
	Abbrev   string           `json:"abbrev"`
	Skaters  []playerResponse `json:"skaters"`
	Forwards []playerResponse `json:"forwards"`
	Defense  []playerResponse `json:"defense"`
	Goalies  []playerResponse `json:"goalies"`
}
