package draft

import (
	"go-bizdash/internal/domain"
	"go-bizdash/internal/employee"
)

// EmployeeDraft is the local working copy of one employee form. Field names
// match the employee mutation payloads so a submit can send the draft as-is.
type EmployeeDraft struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Image           string  `json:"image"`
	Department      string  `json:"department"`
	Salary          float64 `json:"salary"`
	Currency        string  `json:"currency"`
	TechStack       string  `json:"techStack"`
	IsEmployed      bool    `json:"isEmployed"`
	HiringDate      string  `json:"hiringDate"`
	TerminationDate string  `json:"terminationDate,omitempty"`
}

// EmployeeDraftPatch carries one round of form edits. Only present fields
// are applied; last write wins per field.
type EmployeeDraftPatch struct {
	FirstName       *string  `json:"firstName"`
	LastName        *string  `json:"lastName"`
	Image           *string  `json:"image"`
	Department      *string  `json:"department"`
	Salary          *float64 `json:"salary"`
	Currency        *string  `json:"currency"`
	TechStack       *string  `json:"techStack"`
	IsEmployed      *bool    `json:"isEmployed"`
	HiringDate      *string  `json:"hiringDate"`
	TerminationDate *string  `json:"terminationDate"`
}

// SeedEmployeeDraft copies the canonical record into a fresh draft.
func SeedEmployeeDraft(canonical employee.EmployeeResponse) EmployeeDraft {
	return EmployeeDraft{
		FirstName:       canonical.FirstName,
		LastName:        canonical.LastName,
		Image:           canonical.Image,
		Department:      canonical.Department,
		Salary:          canonical.Salary,
		Currency:        canonical.Currency,
		TechStack:       canonical.TechStack,
		IsEmployed:      canonical.IsEmployed,
		HiringDate:      canonical.HiringDate,
		TerminationDate: canonical.TerminationDate,
	}
}

// NewEmployeeDraft is the empty-form default for a create session.
func NewEmployeeDraft() EmployeeDraft {
	return EmployeeDraft{
		Department: string(domain.DepartmentDevelopment),
		Currency:   string(domain.CurrencyBAM),
		IsEmployed: true,
	}
}

// ApplyEmployeePatch merges a patch into the draft. A department change
// re-normalizes a stale N/A-class tech stack on the spot, before submit.
func ApplyEmployeePatch(d EmployeeDraft, p EmployeeDraftPatch) EmployeeDraft {
	if p.FirstName != nil {
		d.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		d.LastName = *p.LastName
	}
	if p.Image != nil {
		d.Image = *p.Image
	}
	if p.Department != nil {
		d.Department = *p.Department
	}
	if p.Salary != nil {
		d.Salary = *p.Salary
	}
	if p.Currency != nil {
		d.Currency = *p.Currency
	}
	if p.TechStack != nil {
		d.TechStack = *p.TechStack
	}
	if p.IsEmployed != nil {
		d.IsEmployed = *p.IsEmployed
	}
	if p.HiringDate != nil {
		d.HiringDate = *p.HiringDate
	}
	if p.TerminationDate != nil {
		d.TerminationDate = *p.TerminationDate
	}

	d.TechStack = string(domain.NormalizeTechStack(
		domain.Department(d.Department),
		domain.TechStack(d.TechStack),
	))
	return d
}

// DiffEmployeeDraft lists the fields where the draft diverges from the
// canonical record, keyed by payload field name.
func DiffEmployeeDraft(d EmployeeDraft, canonical employee.EmployeeResponse) map[string]any {
	changed := make(map[string]any)
	if d.FirstName != canonical.FirstName {
		changed["firstName"] = d.FirstName
	}
	if d.LastName != canonical.LastName {
		changed["lastName"] = d.LastName
	}
	if d.Image != canonical.Image {
		changed["image"] = d.Image
	}
	if d.Department != canonical.Department {
		changed["department"] = d.Department
	}
	if d.Salary != canonical.Salary {
		changed["salary"] = d.Salary
	}
	if d.Currency != canonical.Currency {
		changed["currency"] = d.Currency
	}
	if d.TechStack != canonical.TechStack {
		changed["techStack"] = d.TechStack
	}
	if d.IsEmployed != canonical.IsEmployed {
		changed["isEmployed"] = d.IsEmployed
	}
	if d.HiringDate != canonical.HiringDate {
		changed["hiringDate"] = d.HiringDate
	}
	if d.TerminationDate != canonical.TerminationDate {
		changed["terminationDate"] = d.TerminationDate
	}
	return changed
}

func (d EmployeeDraft) toCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Image:      d.Image,
		Department: d.Department,
		Salary:     d.Salary,
		Currency:   d.Currency,
		TechStack:  d.TechStack,
		HiringDate: d.HiringDate,
	}
}

func (d EmployeeDraft) toUpdateRequest() employee.UpdateEmployeeRequest {
	isEmployed := d.IsEmployed
	return employee.UpdateEmployeeRequest{
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Image:           d.Image,
		Department:      d.Department,
		Salary:          d.Salary,
		Currency:        d.Currency,
		TechStack:       d.TechStack,
		IsEmployed:      &isEmployed,
		TerminationDate: d.TerminationDate,
	}
}
