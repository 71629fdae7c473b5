package companylookup

import "complyhub/pkg/platform/apiclient"

// Branches a company lookup node can take.
const (
	BranchSuccess  = "success"
	BranchNotFound = "not_found"
	BranchError    = "error"
)

// Integration statuses, finer grained than the node branches.
const (
	StatusSuccess     = "success"
	StatusNotFound    = "not_found"
	StatusAuthError   = "auth_error"
	StatusRateLimited = "rate_limited"
	StatusError       = "error"
)

// WorkflowRecord is the shape handed to downstream workflow steps.
type WorkflowRecord struct {
	CompanyInfo  CompanyInfo      `json:"companyInfo"`
	Address      *Address         `json:"address"`
	Stakeholders Stakeholders     `json:"stakeholders"`
	Compliance   ComplianceRecord `json:"compliance"`
}

type CompanyInfo struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Country            string `json:"country,omitempty"`
	IncorporationDate  string `json:"incorporationDate,omitempty"`
	IsActive           bool   `json:"isActive"`
	Type               string `json:"type,omitempty"`
}

type Stakeholder struct {
	Name            string  `json:"name,omitempty"`
	Role            string  `json:"role,omitempty"`
	Shareholding    float64 `json:"shareholding,omitempty"`
	AppointmentDate string  `json:"appointmentDate,omitempty"`
}

type Stakeholders struct {
	Owners   []Stakeholder `json:"owners"`
	Officers []Stakeholder `json:"officers"`
}

type ComplianceRecord struct {
	SourceURL   string      `json:"sourceUrl,omitempty"`
	LastUpdated string      `json:"lastUpdated,omitempty"`
	DataQuality DataQuality `json:"dataQuality"`
}

// Integration is the outcome of a lookup as seen by a workflow step.
type Integration struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    *WorkflowRecord `json:"data,omitempty"`
	Raw     *Company        `json:"rawData,omitempty"`
}

// ToWorkflowRecord reshapes a company. An absent active flag is treated as
// active here even though ValidateCompanyData warns about it.
func ToWorkflowRecord(company Company) WorkflowRecord {
	isActive := true
	if company.Active != nil {
		isActive = *company.Active
	}

	var address *Address
	if company.Address != nil {
		a := *company.Address
		address = &a
	}

	owners := make([]Stakeholder, 0, len(company.Owners))
	for _, o := range company.Owners {
		owners = append(owners, Stakeholder{Name: o.Name, Shareholding: o.Shareholding, AppointmentDate: o.AppointmentDate})
	}
	officers := make([]Stakeholder, 0, len(company.Officers))
	for _, o := range company.Officers {
		officers = append(officers, Stakeholder{Name: o.Name, Role: o.Role, AppointmentDate: o.AppointmentDate})
	}

	return WorkflowRecord{
		CompanyInfo: CompanyInfo{
			ID:                 company.ID,
			Name:               company.Name,
			RegistrationNumber: company.RegistrationNumber,
			Country:            company.IncorporationCountry,
			IncorporationDate:  company.IncorporationDate,
			IsActive:           isActive,
			Type:               company.IncorporationType,
		},
		Address:      address,
		Stakeholders: Stakeholders{Owners: owners, Officers: officers},
		Compliance: ComplianceRecord{
			SourceURL:   company.SourceURL,
			LastUpdated: company.UpdatedAt,
			DataQuality: ValidateCompanyData(company),
		},
	}
}

// Branch picks the node output for a lookup response.
func Branch(resp apiclient.Response[Company]) string {
	switch {
	case resp.OK():
		return BranchSuccess
	case resp.ErrorCode() == CodeCompanyNotFound:
		return BranchNotFound
	default:
		return BranchError
	}
}

// ErrorStatus maps an error code onto an integration status.
func ErrorStatus(code string) string {
	switch code {
	case CodeCompanyNotFound:
		return StatusNotFound
	case apiclient.CodeUnauthorized:
		return StatusAuthError
	case apiclient.CodeRateLimited:
		return StatusRateLimited
	default:
		return StatusError
	}
}

// Integrate turns a lookup response into a workflow outcome.
func Integrate(resp apiclient.Response[Company]) Integration {
	if resp.Error != nil {
		status := ErrorStatus(resp.Error.Code)
		msg := resp.Error.Message
		switch status {
		case StatusNotFound:
			msg = "Company not found in database"
		case StatusAuthError:
			msg = "Please check your API credentials"
		case StatusRateLimited:
			msg = "Please retry after some time"
		}
		return Integration{Status: status, Message: msg}
	}
	if resp.Data == nil {
		return Integration{Status: StatusError, Message: "No data returned"}
	}

	record := ToWorkflowRecord(*resp.Data)
	raw := *resp.Data
	return Integration{Status: StatusSuccess, Data: &record, Raw: &raw}
}
