// Package interactions exposes the compliance clients as workflow nodes: a
// static descriptor the host renders, and a runner the host executes.
package interactions

// Descriptor is the host-independent description of a node.
type Descriptor struct {
	Name              string            `json:"name"`
	DisplayName       string            `json:"displayName"`
	Description       string            `json:"description"`
	Category          string            `json:"category"`
	Icon              string            `json:"icon"`
	Author            string            `json:"author"`
	Input             string            `json:"input"`
	Outputs           []Output          `json:"outputs"`
	Settings          []Field           `json:"settings"`
	Workflow          string            `json:"workflow"`
	InitialAttributes map[string]string `json:"initialAttributes"`
}

// Output is one branch a node can leave through.
type Output struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color"`
}

// Field is one settings-editor input. Path is the dotted attribute path the
// value is stored under.
type Field struct {
	Path        string   `json:"path"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder,omitempty"`
	Choices     []Choice `json:"choices,omitempty"`
}

type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// HasOutput reports whether branch is one of the declared outputs.
func (d Descriptor) HasOutput(branch string) bool {
	for _, o := range d.Outputs {
		if o.Name == branch {
			return true
		}
	}
	return false
}

const (
	author   = "Zenoo"
	category = "Compliance"
	icon     = "complycube"
)

// CompanyLookupDescriptor describes the company lookup node.
func CompanyLookupDescriptor() Descriptor {
	const description = "Retrieve detailed company information using ComplyCube"
	return Descriptor{
		Name:        CompanyLookupNode,
		DisplayName: "Company Lookup",
		Description: description,
		Category:    category,
		Icon:        icon,
		Author:      author,
		Input:       "default",
		Outputs: []Output{
			{Name: "success", DisplayName: "Found", Color: "green"},
			{Name: "not_found", DisplayName: "Not Found", Color: "orange"},
			{Name: "error", DisplayName: "Error", Color: "red"},
		},
		Settings: []Field{
			{Path: "attributes.companyId", Label: "Company ID", Placeholder: "Enter the company identifier to lookup"},
		},
		Workflow: "company-lookup/main.wf",
		InitialAttributes: map[string]string{
			"uri":         "company-lookup",
			"name":        "Company Lookup",
			"description": description,
		},
	}
}

// AMLScreeningDescriptor describes the AML screening node.
func AMLScreeningDescriptor() Descriptor {
	const description = "Perform AML and PEP screening using ComplyCube"
	return Descriptor{
		Name:        AMLScreeningNode,
		DisplayName: "AML Screening",
		Description: description,
		Category:    category,
		Icon:        icon,
		Author:      author,
		Input:       "default",
		Outputs: []Output{
			{Name: "clear", DisplayName: "Clear", Color: "green"},
			{Name: "attention", DisplayName: "Needs Attention", Color: "orange"},
			{Name: "not_processed", DisplayName: "Not Processed", Color: "orange"},
			{Name: "error", DisplayName: "Error", Color: "red"},
		},
		Settings: []Field{
			{Path: "attributes.clientId", Label: "Client ID", Placeholder: "Enter the client ID to screen"},
			{Path: "attributes.screeningType", Label: "Screening Type", Choices: []Choice{
				{Value: "standard_screening_check", Label: "Standard Screening"},
				{Value: "extensive_screening_check", Label: "Extensive Screening"},
			}},
			{Path: "attributes.searchMode", Label: "Search Mode", Choices: []Choice{
				{Value: "fuzzy", Label: "Fuzzy Matching"},
				{Value: "precise", Label: "Precise Matching"},
			}},
		},
		Workflow: "aml-screening/main.wf",
		InitialAttributes: map[string]string{
			"uri":         "aml-screening",
			"name":        "AML Screening",
			"description": description,
		},
	}
}

// ProofOfAddressDescriptor describes the proof of address node. It is listed
// so hosts can render it; its runner always leaves through "error".
func ProofOfAddressDescriptor() Descriptor {
	const description = "Verify proof of address documents using ComplyCube"
	return Descriptor{
		Name:        ProofOfAddressNode,
		DisplayName: "Proof of Address Check",
		Description: description,
		Category:    category,
		Icon:        icon,
		Author:      author,
		Input:       "default",
		Outputs: []Output{
			{Name: "success", DisplayName: "Verified", Color: "green"},
			{Name: "review", DisplayName: "Needs Review", Color: "orange"},
			{Name: "failed", DisplayName: "Failed", Color: "red"},
			{Name: "error", DisplayName: "Error", Color: "red"},
		},
		Settings: []Field{
			{Path: "attributes.clientId", Label: "Client ID", Placeholder: "Enter the ComplyCube client ID"},
			{Path: "attributes.documentId", Label: "Document ID", Placeholder: "Enter the document ID to verify"},
		},
		Workflow: "proof-of-address-check/main.wf",
		InitialAttributes: map[string]string{
			"uri":         "proof-of-address-check",
			"name":        "Proof of Address Check",
			"description": description,
		},
	}
}
