package domain

// Role determines what a logged-in user may do. Admins manage records,
// guests only read them.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleGuest Role = "Guest"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleGuest
}

// TokenDenylistPrefix keys revoked JWT jtis in Redis. Logout writes the
// key, the auth middleware checks it.
const TokenDenylistPrefix = "token:denylist:"

type Department string

const (
	DepartmentAdministration Department = "Administration"
	DepartmentManagement     Department = "Management"
	DepartmentDevelopment    Department = "Development"
	DepartmentDesign         Department = "Design"
)

func (d Department) Valid() bool {
	switch d {
	case DepartmentAdministration, DepartmentManagement, DepartmentDevelopment, DepartmentDesign:
		return true
	}
	return false
}

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyBAM Currency = "BAM"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyBAM:
		return true
	}
	return false
}

// Unit returns the suffix shown after formatted amounts. BAM is rendered
// with its local "KM" mark.
func (c Currency) Unit() string {
	switch c {
	case CurrencyUSD:
		return "USD"
	case CurrencyEUR:
		return "EUR"
	case CurrencyBAM:
		return "KM"
	}
	return string(c)
}

type TechStack string

const (
	TechStackAdminNA   TechStack = "AdminNA"
	TechStackMgmtNA    TechStack = "MgmtNA"
	TechStackFullStack TechStack = "FullStack"
	TechStackBackend   TechStack = "Backend"
	TechStackFrontend  TechStack = "Frontend"
	TechStackUXUI      TechStack = "UXUI"
)

func (t TechStack) Valid() bool {
	switch t {
	case TechStackAdminNA, TechStackMgmtNA, TechStackFullStack, TechStackBackend, TechStackFrontend, TechStackUXUI:
		return true
	}
	return false
}

type ProjectType string

const (
	ProjectTypeFixed   ProjectType = "Fixed"
	ProjectTypeOnGoing ProjectType = "OnGoing"
)

func (p ProjectType) Valid() bool {
	return p == ProjectTypeFixed || p == ProjectTypeOnGoing
}

type SalesChannel string

const (
	SalesChannelOnline   SalesChannel = "Online"
	SalesChannelInPerson SalesChannel = "InPerson"
	SalesChannelReferral SalesChannel = "Referral"
	SalesChannelOther    SalesChannel = "Other"
)

func (s SalesChannel) Valid() bool {
	switch s {
	case SalesChannelOnline, SalesChannelInPerson, SalesChannelReferral, SalesChannelOther:
		return true
	}
	return false
}

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "Active"
	ProjectStatusOnHold    ProjectStatus = "OnHold"
	ProjectStatusInactive  ProjectStatus = "Inactive"
	ProjectStatusCompleted ProjectStatus = "Completed"
)

func (p ProjectStatus) Valid() bool {
	switch p {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusInactive, ProjectStatusCompleted:
		return true
	}
	return false
}

type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "Paid"
	InvoiceStatusSent    InvoiceStatus = "Sent"
	InvoiceStatusNotSent InvoiceStatus = "NotSent"
)

func (i InvoiceStatus) Valid() bool {
	switch i {
	case InvoiceStatusPaid, InvoiceStatusSent, InvoiceStatusNotSent:
		return true
	}
	return false
}
