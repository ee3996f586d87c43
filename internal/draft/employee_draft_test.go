package draft_test

import (
	"testing"

	"go-bizdash/internal/draft"
	"go-bizdash/internal/employee"

	"github.com/stretchr/testify/assert"
)

func canonicalEmployee() employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         "6f1d4a2e-9c0b-4f3a-8d21-5e7b9a0c1d2e",
		FirstName:  "Amina",
		LastName:   "Begic",
		Department: "Development",
		Salary:     3500,
		Currency:   "BAM",
		TechStack:  "FullStack",
		IsEmployed: true,
		HiringDate: "2023-04-01",
	}
}

func TestSeedEmployeeDraft(t *testing.T) {
	canonical := canonicalEmployee()

	d := draft.SeedEmployeeDraft(canonical)

	assert.Equal(t, canonical.FirstName, d.FirstName)
	assert.Equal(t, canonical.LastName, d.LastName)
	assert.Equal(t, canonical.Department, d.Department)
	assert.Equal(t, canonical.Salary, d.Salary)
	assert.Equal(t, canonical.Currency, d.Currency)
	assert.Equal(t, canonical.TechStack, d.TechStack)
	assert.Equal(t, canonical.HiringDate, d.HiringDate)
	assert.True(t, d.IsEmployed)

	assert.Empty(t, draft.DiffEmployeeDraft(d, canonical))
}

func TestNewEmployeeDraft_Defaults(t *testing.T) {
	d := draft.NewEmployeeDraft()

	assert.Equal(t, "Development", d.Department)
	assert.Equal(t, "BAM", d.Currency)
	assert.True(t, d.IsEmployed)
	assert.Empty(t, d.TechStack)
}

func TestApplyEmployeePatch(t *testing.T) {
	t.Run("applies only present fields", func(t *testing.T) {
		d := draft.SeedEmployeeDraft(canonicalEmployee())

		lastName := "Begic-Kovac"
		salary := 4200.0
		d = draft.ApplyEmployeePatch(d, draft.EmployeeDraftPatch{
			LastName: &lastName,
			Salary:   &salary,
		})

		assert.Equal(t, "Begic-Kovac", d.LastName)
		assert.Equal(t, 4200.0, d.Salary)
		assert.Equal(t, "Amina", d.FirstName)
		assert.Equal(t, "FullStack", d.TechStack)
	})

	t.Run("department move to Administration swaps the sentinel", func(t *testing.T) {
		d := draft.EmployeeDraft{Department: "Management", TechStack: "MgmtNA"}

		dept := "Administration"
		d = draft.ApplyEmployeePatch(d, draft.EmployeeDraftPatch{Department: &dept})

		assert.Equal(t, "Administration", d.Department)
		assert.Equal(t, "AdminNA", d.TechStack)
	})

	t.Run("department move to Management swaps the sentinel", func(t *testing.T) {
		d := draft.EmployeeDraft{Department: "Administration", TechStack: "AdminNA"}

		dept := "Management"
		d = draft.ApplyEmployeePatch(d, draft.EmployeeDraftPatch{Department: &dept})

		assert.Equal(t, "MgmtNA", d.TechStack)
	})

	t.Run("move to Development leaves a stale sentinel in place", func(t *testing.T) {
		// No auto-fill for hands-on departments; validation rejects the
		// stale value at submit time instead.
		d := draft.EmployeeDraft{Department: "Administration", TechStack: "AdminNA"}

		dept := "Development"
		d = draft.ApplyEmployeePatch(d, draft.EmployeeDraftPatch{Department: &dept})

		assert.Equal(t, "Development", d.Department)
		assert.Equal(t, "AdminNA", d.TechStack)
	})

	t.Run("real stack on a hands-on department is kept", func(t *testing.T) {
		d := draft.EmployeeDraft{Department: "Development", TechStack: "Backend"}

		dept := "Design"
		d = draft.ApplyEmployeePatch(d, draft.EmployeeDraftPatch{Department: &dept})

		assert.Equal(t, "Backend", d.TechStack)
	})
}

func TestDiffEmployeeDraft(t *testing.T) {
	canonical := canonicalEmployee()

	t.Run("single changed field", func(t *testing.T) {
		d := draft.SeedEmployeeDraft(canonical)
		d.LastName = "Begic-Kovac"

		changed := draft.DiffEmployeeDraft(d, canonical)

		assert.Equal(t, map[string]any{"lastName": "Begic-Kovac"}, changed)
	})

	t.Run("multiple changed fields", func(t *testing.T) {
		d := draft.SeedEmployeeDraft(canonical)
		d.Salary = 4000
		d.IsEmployed = false
		d.TerminationDate = "2026-01-31"

		changed := draft.DiffEmployeeDraft(d, canonical)

		assert.Len(t, changed, 3)
		assert.Equal(t, 4000.0, changed["salary"])
		assert.Equal(t, false, changed["isEmployed"])
		assert.Equal(t, "2026-01-31", changed["terminationDate"])
	})

	t.Run("untouched draft diffs empty", func(t *testing.T) {
		d := draft.SeedEmployeeDraft(canonical)
		assert.Empty(t, draft.DiffEmployeeDraft(d, canonical))
	})
}
