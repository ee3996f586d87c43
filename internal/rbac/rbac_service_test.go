package rbac_test

import (
	"testing"

	"go-bizdash/internal/domain"
	"go-bizdash/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	cases := []struct {
		role     domain.Role
		resource string
		action   string
		allowed  bool
	}{
		{domain.RoleAdmin, "employee", "create", true},
		{domain.RoleAdmin, "invoice", "delete", true},
		{domain.RoleAdmin, "financials", "read", true},
		{domain.RoleGuest, "employee", "read", true},
		{domain.RoleGuest, "financials", "read", true},
		{domain.RoleGuest, "employee", "create", false},
		{domain.RoleGuest, "project", "update", false},
		{domain.RoleGuest, "invoice", "delete", false},
		{"Manager", "employee", "read", false},
	}

	for _, tc := range cases {
		allowed, err := svc.Enforce(domain.EnforceRequest{
			Role:     tc.role,
			Resource: tc.resource,
			Action:   tc.action,
		})
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, "%s %s:%s", tc.role, tc.resource, tc.action)
	}
}
