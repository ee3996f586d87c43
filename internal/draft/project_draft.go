package draft

import (
	"go-bizdash/internal/domain"
	"go-bizdash/internal/project"
)

type DraftAssignment struct {
	EmployeeID string `json:"employeeId"`
	PartTime   bool   `json:"partTime"`
}

// ProjectDraft is the local working copy of one project form.
type ProjectDraft struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	StartDate       string            `json:"startDate"`
	EndDate         string            `json:"endDate"`
	ActualEndDate   string            `json:"actualEndDate,omitempty"`
	ProjectType     string            `json:"projectType"`
	HourlyRate      float64           `json:"hourlyRate"`
	ProjectValueBAM float64           `json:"projectValueBAM"`
	ProjectVelocity float64           `json:"projectVelocity"`
	SalesChannel    string            `json:"salesChannel"`
	ProjectStatus   string            `json:"projectStatus"`
	Employees       []DraftAssignment `json:"employees"`
}

type ProjectDraftPatch struct {
	Name            *string            `json:"name"`
	Description     *string            `json:"description"`
	StartDate       *string            `json:"startDate"`
	EndDate         *string            `json:"endDate"`
	ActualEndDate   *string            `json:"actualEndDate"`
	ProjectType     *string            `json:"projectType"`
	HourlyRate      *float64           `json:"hourlyRate"`
	ProjectValueBAM *float64           `json:"projectValueBAM"`
	ProjectVelocity *float64           `json:"projectVelocity"`
	SalesChannel    *string            `json:"salesChannel"`
	ProjectStatus   *string            `json:"projectStatus"`
	Employees       *[]DraftAssignment `json:"employees"`
}

func SeedProjectDraft(canonical project.ProjectResponse) ProjectDraft {
	d := ProjectDraft{
		Name:            canonical.Name,
		Description:     canonical.Description,
		StartDate:       canonical.StartDate,
		EndDate:         canonical.EndDate,
		ActualEndDate:   canonical.ActualEndDate,
		ProjectType:     canonical.ProjectType,
		HourlyRate:      canonical.HourlyRate,
		ProjectValueBAM: canonical.ProjectValueBAM,
		ProjectVelocity: canonical.ProjectVelocity,
		SalesChannel:    canonical.SalesChannel,
		ProjectStatus:   canonical.ProjectStatus,
		Employees:       make([]DraftAssignment, 0, len(canonical.Employees)),
	}
	for _, a := range canonical.Employees {
		d.Employees = append(d.Employees, DraftAssignment{
			EmployeeID: a.Employee.ID,
			PartTime:   a.PartTime,
		})
	}
	return d
}

func NewProjectDraft() ProjectDraft {
	return ProjectDraft{
		ProjectType:   string(domain.ProjectTypeFixed),
		SalesChannel:  string(domain.SalesChannelOnline),
		ProjectStatus: string(domain.ProjectStatusActive),
		Employees:     []DraftAssignment{},
	}
}

// ApplyProjectPatch merges a patch into the draft. The Employees slice is
// replaced wholesale; a newly added assignment defaults to full-time unless
// the patch flags it part-time.
func ApplyProjectPatch(d ProjectDraft, p ProjectDraftPatch) ProjectDraft {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.StartDate != nil {
		d.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		d.EndDate = *p.EndDate
	}
	if p.ActualEndDate != nil {
		d.ActualEndDate = *p.ActualEndDate
	}
	if p.ProjectType != nil {
		d.ProjectType = *p.ProjectType
	}
	if p.HourlyRate != nil {
		d.HourlyRate = *p.HourlyRate
	}
	if p.ProjectValueBAM != nil {
		d.ProjectValueBAM = *p.ProjectValueBAM
	}
	if p.ProjectVelocity != nil {
		d.ProjectVelocity = *p.ProjectVelocity
	}
	if p.SalesChannel != nil {
		d.SalesChannel = *p.SalesChannel
	}
	if p.ProjectStatus != nil {
		d.ProjectStatus = *p.ProjectStatus
	}
	if p.Employees != nil {
		d.Employees = append([]DraftAssignment(nil), (*p.Employees)...)
	}
	return d
}

func DiffProjectDraft(d ProjectDraft, canonical project.ProjectResponse) map[string]any {
	changed := make(map[string]any)
	if d.Name != canonical.Name {
		changed["name"] = d.Name
	}
	if d.Description != canonical.Description {
		changed["description"] = d.Description
	}
	if d.StartDate != canonical.StartDate {
		changed["startDate"] = d.StartDate
	}
	if d.EndDate != canonical.EndDate {
		changed["endDate"] = d.EndDate
	}
	if d.ActualEndDate != canonical.ActualEndDate {
		changed["actualEndDate"] = d.ActualEndDate
	}
	if d.ProjectType != canonical.ProjectType {
		changed["projectType"] = d.ProjectType
	}
	if d.HourlyRate != canonical.HourlyRate {
		changed["hourlyRate"] = d.HourlyRate
	}
	if d.ProjectValueBAM != canonical.ProjectValueBAM {
		changed["projectValueBAM"] = d.ProjectValueBAM
	}
	if d.ProjectVelocity != canonical.ProjectVelocity {
		changed["projectVelocity"] = d.ProjectVelocity
	}
	if d.SalesChannel != canonical.SalesChannel {
		changed["salesChannel"] = d.SalesChannel
	}
	if d.ProjectStatus != canonical.ProjectStatus {
		changed["projectStatus"] = d.ProjectStatus
	}
	if !sameAssignments(d.Employees, canonical.Employees) {
		changed["employees"] = d.Employees
	}
	return changed
}

func sameAssignments(drafted []DraftAssignment, canonical []project.AssignmentResponse) bool {
	if len(drafted) != len(canonical) {
		return false
	}
	byID := make(map[string]bool, len(canonical))
	for _, a := range canonical {
		byID[a.Employee.ID] = a.PartTime
	}
	for _, a := range drafted {
		partTime, ok := byID[a.EmployeeID]
		if !ok || partTime != a.PartTime {
			return false
		}
	}
	return true
}

func (d ProjectDraft) assignmentRequests() []project.AssignmentRequest {
	reqs := make([]project.AssignmentRequest, 0, len(d.Employees))
	for _, a := range d.Employees {
		reqs = append(reqs, project.AssignmentRequest{
			EmployeeID: a.EmployeeID,
			PartTime:   a.PartTime,
		})
	}
	return reqs
}

func (d ProjectDraft) toCreateRequest() project.CreateProjectRequest {
	return project.CreateProjectRequest{
		Name:            d.Name,
		Description:     d.Description,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		ActualEndDate:   d.ActualEndDate,
		ProjectType:     d.ProjectType,
		HourlyRate:      d.HourlyRate,
		ProjectValueBAM: d.ProjectValueBAM,
		ProjectVelocity: d.ProjectVelocity,
		SalesChannel:    d.SalesChannel,
		ProjectStatus:   d.ProjectStatus,
		Employees:       d.assignmentRequests(),
	}
}

func (d ProjectDraft) toUpdateRequest() project.UpdateProjectRequest {
	return project.UpdateProjectRequest{
		Name:            d.Name,
		Description:     d.Description,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		ActualEndDate:   d.ActualEndDate,
		ProjectType:     d.ProjectType,
		HourlyRate:      d.HourlyRate,
		ProjectValueBAM: d.ProjectValueBAM,
		ProjectVelocity: d.ProjectVelocity,
		SalesChannel:    d.SalesChannel,
		ProjectStatus:   d.ProjectStatus,
		Employees:       d.assignmentRequests(),
	}
}
