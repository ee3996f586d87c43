package project

type AssignmentRequest struct {
	EmployeeID string `json:"employeeId" binding:"required,uuid"`
	PartTime   bool   `json:"partTime"`
}

type CreateProjectRequest struct {
	Name            string              `json:"name" binding:"required"`
	Description     string              `json:"description"`
	StartDate       string              `json:"startDate" binding:"required"`
	EndDate         string              `json:"endDate" binding:"required"`
	ActualEndDate   string              `json:"actualEndDate"`
	ProjectType     string              `json:"projectType" binding:"required"`
	HourlyRate      float64             `json:"hourlyRate" binding:"required,gt=0"`
	ProjectValueBAM float64             `json:"projectValueBAM" binding:"required,gt=0"`
	ProjectVelocity float64             `json:"projectVelocity"`
	SalesChannel    string              `json:"salesChannel" binding:"required"`
	ProjectStatus   string              `json:"projectStatus" binding:"required"`
	Employees       []AssignmentRequest `json:"employees"`
}

type UpdateProjectRequest struct {
	Name            string              `json:"name" binding:"required"`
	Description     string              `json:"description"`
	StartDate       string              `json:"startDate" binding:"required"`
	EndDate         string              `json:"endDate" binding:"required"`
	ActualEndDate   string              `json:"actualEndDate"`
	ProjectType     string              `json:"projectType" binding:"required"`
	HourlyRate      float64             `json:"hourlyRate" binding:"required,gt=0"`
	ProjectValueBAM float64             `json:"projectValueBAM" binding:"required,gt=0"`
	ProjectVelocity float64             `json:"projectVelocity"`
	SalesChannel    string              `json:"salesChannel" binding:"required"`
	ProjectStatus   string              `json:"projectStatus" binding:"required"`
	Employees       []AssignmentRequest `json:"employees"`
}

type EmployeeRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type AssignmentResponse struct {
	Employee EmployeeRef `json:"employee"`
	PartTime bool        `json:"partTime"`
}

type ProjectResponse struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	StartDate       string               `json:"startDate"`
	EndDate         string               `json:"endDate"`
	ActualEndDate   string               `json:"actualEndDate,omitempty"`
	ProjectType     string               `json:"projectType"`
	HourlyRate      float64              `json:"hourlyRate"`
	ProjectValueBAM float64              `json:"projectValueBAM"`
	ProjectVelocity float64              `json:"projectVelocity"`
	SalesChannel    string               `json:"salesChannel"`
	ProjectStatus   string               `json:"projectStatus"`
	StatusLabel     string               `json:"statusLabel"`
	StatusColor     string               `json:"statusColor"`
	Employees       []AssignmentResponse `json:"employees"`
}
