package screening

type CheckType string

const (
	StandardCheck  CheckType = "standard_screening_check"
	ExtensiveCheck CheckType = "extensive_screening_check"
)

type Outcome string

const (
	OutcomeClear        Outcome = "clear"
	OutcomeAttention    Outcome = "attention"
	OutcomeNotProcessed Outcome = "not_processed"
)

type NameSearchMode string

const (
	SearchFuzzy   NameSearchMode = "fuzzy"
	SearchPrecise NameSearchMode = "precise"
)

// CheckRequest creates a screening check for an existing client.
type CheckRequest struct {
	ClientID         string    `json:"clientId"`
	Type             CheckType `json:"type"`
	EnableMonitoring bool      `json:"enableMonitoring"`
	Options          *Options  `json:"options,omitempty"`
}

type Options struct {
	ScreeningListsScope     *ListsScope     `json:"screeningListsScope,omitempty"`
	ScreeningNameSearchMode NameSearchMode  `json:"screeningNameSearchMode,omitempty"`
	ScreeningClassification *Classification `json:"screeningClassification,omitempty"`
}

type ListsScope struct {
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

type Classification struct {
	Watchlists   []string `json:"watchlists,omitempty"`
	PEPLevels    []string `json:"pepLevels,omitempty"`
	AdverseMedia []string `json:"adverseMedia,omitempty"`
}

// Match is one list hit. Confidence is in [0,1].
type Match struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Confidence   float64  `json:"confidence"`
	Category     string   `json:"category"`
	ListName     string   `json:"listName,omitempty"`
	PEPLevel     string   `json:"pepLevel,omitempty"`
	Sources      []string `json:"sources"`
	DateOfBirth  string   `json:"dateOfBirth,omitempty"`
	PlaceOfBirth string   `json:"placeOfBirth,omitempty"`
	Nationality  string   `json:"nationality,omitempty"`
	Description  string   `json:"description,omitempty"`
}

type Summary struct {
	WatchlistMatches    int `json:"watchlistMatches"`
	PEPMatches          int `json:"pepMatches"`
	AdverseMediaMatches int `json:"adverseMediaMatches"`
	TotalMatches        int `json:"totalMatches"`
}

type Breakdown struct {
	Summary Summary `json:"summary"`
	Matches []Match `json:"matches"`
}

// CheckResult is a screening check as reported by the API.
type CheckResult struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"clientId"`
	Type             CheckType `json:"type"`
	Outcome          Outcome   `json:"outcome"`
	Breakdown        Breakdown `json:"breakdown"`
	EnableMonitoring bool      `json:"enableMonitoring"`
	CreatedAt        string    `json:"createdAt"`
	UpdatedAt        string    `json:"updatedAt,omitempty"`
}
