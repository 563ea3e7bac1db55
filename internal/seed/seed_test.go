package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/clinic-roster/internal/domain"
	"github.com/spec-kit/clinic-roster/internal/repository/mocks"
	"github.com/spec-kit/clinic-roster/internal/seed"
	"github.com/spec-kit/clinic-roster/internal/testfixtures"
)

func TestSeeder_Run(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := testfixtures.NewMemoryStore()

	// pre-existing rows must be cleared
	stale := &domain.Department{Name: "Stale"}
	require.NoError(t, store.Departments().Create(ctx, stale))
	require.NoError(t, store.Employees().Create(ctx, &domain.Employee{
		FirstName: "Old", LastName: "Timer", Email: "lisa.harris@apollonia.com", DepartmentID: &stale.ID,
	}))

	seeder := seed.NewSeeder(store.Departments(), store.Employees(), zap.NewNop())
	res, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Departments: 11, Employees: 10}, res)

	depts, err := store.Departments().List(ctx)
	require.NoError(t, err)
	require.Len(t, depts, 11)
	assert.Equal(t, "Administration", depts[0].Name)

	emps, err := store.Employees().List(ctx)
	require.NoError(t, err)
	require.Len(t, emps, 10)
	assert.Equal(t, "Alvarez", emps[0].LastName)

	byName := make(map[string]string, len(depts))
	for _, d := range depts {
		byName[d.ID] = d.Name
	}
	for _, emp := range emps {
		require.NotNil(t, emp.DepartmentID)
		assert.True(t, emp.IsActive)
		if emp.Email == "leslie.roche@apollonia.com" {
			assert.Equal(t, "Orthodontics", byName[*emp.DepartmentID])
		}
	}
}

func TestSeeder_RunIsRepeatable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := testfixtures.NewMemoryStore()
	seeder := seed.NewSeeder(store.Departments(), store.Employees(), zap.NewNop())

	_, err := seeder.Run(ctx)
	require.NoError(t, err)
	_, err = seeder.Run(ctx)
	require.NoError(t, err)

	count, err := store.Employees().List(ctx)
	require.NoError(t, err)
	assert.Len(t, count, len(seed.Employees))
}

func TestSeeder_StopsWhenClearFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	deptRepo := new(mocks.DepartmentRepository)
	empRepo := new(mocks.EmployeeRepository)
	empRepo.On("DeleteAll", ctx).Return(assert.AnError)

	_, err := seed.NewSeeder(deptRepo, empRepo, zap.NewNop()).Run(ctx)

	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "clear employees")
	deptRepo.AssertNotCalled(t, "DeleteAll", mock.Anything)
}
