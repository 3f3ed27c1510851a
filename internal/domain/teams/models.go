package teams

// Team describes a franchise code the roster endpoint understands.
// Historical codes carry the current franchise they consolidate into.
type Team struct {
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"fullName"`
	Historical   bool   `json:"historical"`
	Successor    string `json:"successor"`
}

// Consolidated returns the code the team's players are filed under in the output.
func (t Team) Consolidated() string {
	if t.Successor != "" {
		return t.Successor
	}
	return t.Abbreviation
}
