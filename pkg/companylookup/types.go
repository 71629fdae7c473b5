package companylookup

// Company is the registry record returned by the lookup endpoint. Fields the
// API omits stay at their zero value; Active is a pointer so an absent flag is
// distinguishable from false.
type Company struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	RegistrationNumber   string         `json:"registrationNumber,omitempty"`
	IncorporationCountry string         `json:"incorporationCountry,omitempty"`
	IncorporationDate    string         `json:"incorporationDate,omitempty"`
	IncorporationType    string         `json:"incorporationType,omitempty"`
	Address              *Address       `json:"address,omitempty"`
	Active               *bool          `json:"active,omitempty"`
	SourceURL            string         `json:"sourceUrl,omitempty"`
	Owners               []Owner        `json:"owners,omitempty"`
	Officers             []Officer      `json:"officers,omitempty"`
	Filings              []Filing       `json:"filings,omitempty"`
	IndustryCodes        []IndustryCode `json:"industryCodes,omitempty"`
	CreatedAt            string         `json:"createdAt,omitempty"`
	UpdatedAt            string         `json:"updatedAt,omitempty"`
}

type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Owner is a shareholder. Shareholding is a percentage.
type Owner struct {
	ID              string  `json:"id,omitempty"`
	Name            string  `json:"name,omitempty"`
	Shareholding    float64 `json:"shareholding,omitempty"`
	AppointmentDate string  `json:"appointmentDate,omitempty"`
}

type Officer struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name,omitempty"`
	Role            string `json:"role,omitempty"`
	AppointmentDate string `json:"appointmentDate,omitempty"`
}

type Filing struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// IndustryCode is a classification entry, e.g. SIC or NAICS.
type IndustryCode struct {
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
	System      string `json:"system,omitempty"`
}

// DataQuality summarises how complete a Company record is.
type DataQuality struct {
	IsValid       bool     `json:"isValid"`
	MissingFields []string `json:"missingFields"`
	Warnings      []string `json:"warnings"`
}
