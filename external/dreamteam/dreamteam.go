package dreamteam

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginEnvelope struct {
	Result bool   `json:"result"`
	Error  string `json:"error"`
}

type teamEnvelope struct {
	Result bool         `json:"result"`
	Error  string       `json:"error"`
	Data   *teamPayload `json:"data"`
}

type teamPayload struct {
	User     userInfo      `json:"user"`
	UserTeam *userTeamInfo `json:"userTeam"`
}

type userInfo struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type userTeamInfo struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"userId"`
	Name        string           `json:"name"`
	CreatorName string           `json:"creatorName"`
	Points      int64            `json:"points"`
	BonusesData []bonusUsageItem `json:"bonusesData"`
}

type bonusUsageItem struct {
	BonusID      int64  `json:"bonusId"`
	UsageRoundID int64  `json:"usageRoundId"`
	UsageDate    string `json:"usageDate"` // RFC3339 with fractional seconds and offset
}

type leagueEnvelope struct {
	Result bool           `json:"result"`
	Error  string         `json:"error"`
	Data   *leaguePayload `json:"data"`
}

type leaguePayload struct {
	LeagueName   string            `json:"leagueName"`
	CustomLeague *customLeagueInfo `json:"customLeague"`
	Teams        []leagueTeamItem  `json:"teams"`
}

type customLeagueInfo struct {
	ID       int64  `json:"id"`
	SeasonID int64  `json:"seasonId"`
	Name     string `json:"name"`
}

type leagueTeamItem struct {
	UserID     int64  `json:"userId"`
	Name       string `json:"name"`
	UserName   string `json:"userName"`
	TotalScore int64  `json:"totalScore"`
	RoundScore int64  `json:"roundScore"`
	Position   int64  `json:"position"`
}
