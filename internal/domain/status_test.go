package domain_test

import (
	"testing"

	"go-bizdash/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestProjectStatusBadge_Total(t *testing.T) {
	for _, s := range []domain.ProjectStatus{
		domain.ProjectStatusActive,
		domain.ProjectStatusOnHold,
		domain.ProjectStatusInactive,
		domain.ProjectStatusCompleted,
	} {
		b := domain.ProjectStatusBadge(s)
		assert.NotEmpty(t, b.Label, "label for %s", s)
		assert.NotEmpty(t, b.Color, "color for %s", s)
	}
}

func TestProjectStatusBadge_OnHoldLabel(t *testing.T) {
	assert.Equal(t, "On hold", domain.ProjectStatusBadge(domain.ProjectStatusOnHold).Label)
}

func TestProjectStatusBadge_DistinctColors(t *testing.T) {
	seen := map[string]domain.ProjectStatus{}
	for _, s := range []domain.ProjectStatus{
		domain.ProjectStatusActive,
		domain.ProjectStatusOnHold,
		domain.ProjectStatusInactive,
		domain.ProjectStatusCompleted,
	} {
		color := domain.ProjectStatusBadge(s).Color
		prev, dup := seen[color]
		assert.False(t, dup, "%s and %s share color %s", prev, s, color)
		seen[color] = s
	}
}

func TestInvoiceStatusBadge_Total(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range []domain.InvoiceStatus{
		domain.InvoiceStatusPaid,
		domain.InvoiceStatusSent,
		domain.InvoiceStatusNotSent,
	} {
		b := domain.InvoiceStatusBadge(s)
		assert.NotEmpty(t, b.Label)
		assert.NotEmpty(t, b.Color)
		assert.False(t, seen[b.Color], "duplicate color %s", b.Color)
		seen[b.Color] = true
	}
}

func TestStatusBadge_UnknownValue(t *testing.T) {
	assert.Equal(t, domain.UnknownBadge, domain.ProjectStatusBadge("Archived"))
	assert.Equal(t, domain.UnknownBadge, domain.InvoiceStatusBadge(""))
}

func TestTechStackLabel(t *testing.T) {
	cases := map[domain.TechStack]string{
		domain.TechStackAdminNA:   "N/A",
		domain.TechStackMgmtNA:    "N/A",
		domain.TechStackFullStack: "Full Stack",
		domain.TechStackBackend:   "Back End",
		domain.TechStackFrontend:  "Front End",
		domain.TechStackUXUI:      "UX/UI",
	}
	for stack, want := range cases {
		assert.Equal(t, want, domain.TechStackLabel(stack))
	}
	assert.Equal(t, "Unknown", domain.TechStackLabel("Cobol"))
}
