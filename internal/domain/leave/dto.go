package leave

type BalanceResponse struct {
	Year        int  `json:"year"`
	IsRegular   bool `json:"is_regular"`
	Lates       int  `json:"lates"`
	Absents     int  `json:"absents"`
	Occurrences int  `json:"occurrences"`

	SickAnnual    int `json:"sick_annual"`
	SickDeducted  int `json:"sick_deducted"`
	SickRemaining int `json:"sick_remaining"`

	VacationAnnual int `json:"vacation_annual"`
}
