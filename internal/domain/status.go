package domain

// StatusBadge is what list views render next to a status value: a display
// label plus a color token from the UI palette. Resolvers are total over
// their enumeration; anything unrecognized resolves to UnknownBadge instead
// of failing.
type StatusBadge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var UnknownBadge = StatusBadge{Label: "Unknown", Color: "slate"}

var projectStatusBadges = map[ProjectStatus]StatusBadge{
	ProjectStatusActive:    {Label: "Active", Color: "green"},
	ProjectStatusOnHold:    {Label: "On hold", Color: "yellow"},
	ProjectStatusInactive:  {Label: "Inactive", Color: "red"},
	ProjectStatusCompleted: {Label: "Completed", Color: "blue"},
}

func ProjectStatusBadge(s ProjectStatus) StatusBadge {
	if b, ok := projectStatusBadges[s]; ok {
		return b
	}
	return UnknownBadge
}

var invoiceStatusBadges = map[InvoiceStatus]StatusBadge{
	InvoiceStatusPaid:    {Label: "Paid", Color: "green"},
	InvoiceStatusSent:    {Label: "Sent", Color: "gold"},
	InvoiceStatusNotSent: {Label: "Not sent", Color: "red"},
}

func InvoiceStatusBadge(s InvoiceStatus) StatusBadge {
	if b, ok := invoiceStatusBadges[s]; ok {
		return b
	}
	return UnknownBadge
}

var salesChannelLabels = map[SalesChannel]string{
	SalesChannelOnline:   "Online",
	SalesChannelInPerson: "In Person",
	SalesChannelReferral: "Referral",
	SalesChannelOther:    "Other",
}

func SalesChannelLabel(s SalesChannel) string {
	if l, ok := salesChannelLabels[s]; ok {
		return l
	}
	return "Unknown"
}

var techStackLabels = map[TechStack]string{
	TechStackAdminNA:   "N/A",
	TechStackMgmtNA:    "N/A",
	TechStackFullStack: "Full Stack",
	TechStackBackend:   "Back End",
	TechStackFrontend:  "Front End",
	TechStackUXUI:      "UX/UI",
}

func TechStackLabel(t TechStack) string {
	if l, ok := techStackLabels[t]; ok {
		return l
	}
	return "Unknown"
}

func DepartmentLabel(d Department) string {
	if d.Valid() {
		return string(d)
	}
	return "Unknown"
}
