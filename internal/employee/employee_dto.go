package employee

type CreateEmployeeRequest struct {
	FirstName  string  `json:"firstName" binding:"required"`
	LastName   string  `json:"lastName" binding:"required"`
	Image      string  `json:"image"`
	Department string  `json:"department" binding:"required"`
	Salary     float64 `json:"salary" binding:"required,gt=0"`
	Currency   string  `json:"currency" binding:"required"`
	TechStack  string  `json:"techStack" binding:"required"`
	HiringDate string  `json:"hiringDate" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        string  `json:"lastName" binding:"required"`
	Image           string  `json:"image"`
	Department      string  `json:"department" binding:"required"`
	Salary          float64 `json:"salary" binding:"required,gt=0"`
	Currency        string  `json:"currency" binding:"required"`
	TechStack       string  `json:"techStack" binding:"required"`
	IsEmployed      *bool   `json:"isEmployed"`
	TerminationDate string  `json:"terminationDate"`
}

type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AssignmentResponse struct {
	Project  ProjectRef `json:"project"`
	PartTime bool       `json:"partTime"`
}

type EmployeeResponse struct {
	ID              string               `json:"id"`
	FirstName       string               `json:"firstName"`
	LastName        string               `json:"lastName"`
	Image           string               `json:"image,omitempty"`
	Department      string               `json:"department"`
	Salary          float64              `json:"salary"`
	Currency        string               `json:"currency"`
	TechStack       string               `json:"techStack"`
	TechStackLabel  string               `json:"techStackLabel"`
	IsEmployed      bool                 `json:"isEmployed"`
	HiringDate      string               `json:"hiringDate"`
	TerminationDate string               `json:"terminationDate,omitempty"`
	Projects        []AssignmentResponse `json:"projects"`
}
