package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/clinic-roster/internal/domain"
	"github.com/spec-kit/clinic-roster/internal/repository/mocks"
	"github.com/spec-kit/clinic-roster/internal/service"
	"github.com/spec-kit/clinic-roster/internal/testfixtures"
	apperrors "github.com/spec-kit/clinic-roster/pkg/util/errorutil"
)

const unknownID = "9b2f9c4e-0d3c-4c55-8f5a-1a2b3c4d5e6f"

func newDepartmentService(store *testfixtures.MemoryStore) *service.DepartmentService {
	return service.NewDepartmentService(service.DepartmentDependencies{
		DepartmentRepo: store.Departments(),
		EmployeeRepo:   store.Employees(),
	})
}

func requireCode(t *testing.T, err error, code string) *apperrors.DomainError {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, code, domainErr.Code, domainErr.Message)
	return domainErr
}

func TestDepartmentService_ListSortedByName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newDepartmentService(testfixtures.NewMemoryStore())

	for _, name := range []string{"Surgery", "Administration", "Orthodontics", "Hygiene"} {
		_, err := svc.Create(ctx, domain.DepartmentInput{Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(list))
	for _, dept := range list {
		names = append(names, dept.Name)
	}
	assert.Equal(t, []string{"Administration", "Hygiene", "Orthodontics", "Surgery"}, names)
}

func TestDepartmentService_ListSortsByByteValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newDepartmentService(testfixtures.NewMemoryStore())

	for _, name := range []string{"administration", "Radiology", "Oral Surgery", "Oral-Surgery"} {
		_, err := svc.Create(ctx, domain.DepartmentInput{Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(list))
	for _, dept := range list {
		names = append(names, dept.Name)
	}
	assert.Equal(t, []string{"Oral Surgery", "Oral-Surgery", "Radiology", "administration"}, names)
}

func TestDepartmentService_CreateValidation(t *testing.T) {
	t.Parallel()

	store := testfixtures.NewMemoryStore()
	svc := newDepartmentService(store)

	_, err := svc.Create(context.Background(), domain.DepartmentInput{Name: "   ", Description: "nothing"})

	domainErr := requireCode(t, err, apperrors.CodeValidation)
	assert.Equal(t, "Department name is required", domainErr.Message)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDepartmentService_CreateTrimsAndGets(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newDepartmentService(testfixtures.NewMemoryStore())

	created, err := svc.Create(ctx, domain.DepartmentInput{Name: " Radiology ", Description: " Dental imaging "})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
	assert.Equal(t, "Radiology", got.Name)
	assert.Equal(t, "Dental imaging", got.Description)
}

func TestDepartmentService_GetNotFound(t *testing.T) {
	t.Parallel()

	svc := newDepartmentService(testfixtures.NewMemoryStore())

	_, err := svc.Get(context.Background(), unknownID)
	domainErr := requireCode(t, err, apperrors.CodeNotFound)
	assert.Equal(t, "Department not found", domainErr.Message)

	_, err = svc.Get(context.Background(), "not-an-id")
	requireCode(t, err, apperrors.CodeNotFound)
}

func TestDepartmentService_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newDepartmentService(testfixtures.NewMemoryStore())
	created, err := svc.Create(ctx, domain.DepartmentInput{Name: "Hygene", Description: "typo"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, domain.DepartmentInput{Name: "Hygiene"})
	require.NoError(t, err)
	assert.Equal(t, "Hygiene", updated.Name)
	assert.Empty(t, updated.Description)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = svc.Update(ctx, created.ID, domain.DepartmentInput{Name: ""})
	requireCode(t, err, apperrors.CodeValidation)

	_, err = svc.Update(ctx, unknownID, domain.DepartmentInput{Name: "Ghost"})
	requireCode(t, err, apperrors.CodeNotFound)
}

func TestDepartmentService_DeleteUnreferenced(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newDepartmentService(testfixtures.NewMemoryStore())
	created, err := svc.Create(ctx, domain.DepartmentInput{Name: "Radiology"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	requireCode(t, svc.Delete(ctx, created.ID), apperrors.CodeNotFound)
}

func TestDepartmentService_DeleteReferencedIsBlocked(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := testfixtures.NewMemoryStore()
	depts := newDepartmentService(store)
	emps := newEmployeeService(store)

	dept, err := depts.Create(ctx, domain.DepartmentInput{Name: "Surgery"})
	require.NoError(t, err)
	_, err = emps.Create(ctx, domain.EmployeeInput{
		FirstName: "Constance", LastName: "Smith", Email: "constance.smith@apollonia.com", DepartmentID: &dept.ID,
	})
	require.NoError(t, err)

	err = depts.Delete(ctx, dept.ID)
	domainErr := requireCode(t, err, apperrors.CodeConflict)
	assert.Equal(t, "Cannot delete department with assigned employees", domainErr.Message)
	assert.Equal(t, 400, domainErr.HTTPStatus)

	list, err := depts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, dept.ID, list[0].ID)
}

func TestDepartmentService_AcceptsOtherIDSpellings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newDepartmentService(testfixtures.NewMemoryStore())
	created, err := svc.Create(ctx, domain.DepartmentInput{Name: "Radiology"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, strings.ToUpper(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	updated, err := svc.Update(ctx, "{"+created.ID+"}", domain.DepartmentInput{Name: "Imaging"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	require.NoError(t, svc.Delete(ctx, "urn:uuid:"+created.ID))
}

func TestDepartmentService_PassesCanonicalIDToStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	deptRepo := new(mocks.DepartmentRepository)
	empRepo := new(mocks.EmployeeRepository)
	empRepo.On("CountByDepartment", ctx, unknownID).Return(0, nil)
	deptRepo.On("Delete", ctx, unknownID).Return(pgx.ErrNoRows)

	svc := service.NewDepartmentService(service.DepartmentDependencies{DepartmentRepo: deptRepo, EmployeeRepo: empRepo})

	requireCode(t, svc.Delete(ctx, "urn:uuid:"+strings.ToUpper(unknownID)), apperrors.CodeNotFound)
	deptRepo.AssertExpectations(t)
	empRepo.AssertExpectations(t)
}

func TestDepartmentService_DeleteChecksReferencesFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	deptRepo := new(mocks.DepartmentRepository)
	empRepo := new(mocks.EmployeeRepository)
	empRepo.On("CountByDepartment", ctx, unknownID).Return(2, nil)

	svc := service.NewDepartmentService(service.DepartmentDependencies{DepartmentRepo: deptRepo, EmployeeRepo: empRepo})

	require.ErrorIs(t, svc.Delete(ctx, unknownID), service.ErrDepartmentInUse)
	deptRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	empRepo.AssertExpectations(t)
}

func TestDepartmentService_StoreFailureIsInternal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	deptRepo := new(mocks.DepartmentRepository)
	deptRepo.On("List", ctx).Return(nil, assert.AnError)
	deptRepo.On("Create", ctx, mock.AnythingOfType("*domain.Department")).Return(assert.AnError)

	svc := service.NewDepartmentService(service.DepartmentDependencies{DepartmentRepo: deptRepo, EmployeeRepo: new(mocks.EmployeeRepository)})

	_, err := svc.List(ctx)
	domainErr := requireCode(t, err, apperrors.CodeInternal)
	assert.ErrorIs(t, domainErr, assert.AnError)

	_, err = svc.Create(ctx, domain.DepartmentInput{Name: "Radiology"})
	requireCode(t, err, apperrors.CodeInternal)
	deptRepo.AssertExpectations(t)
}
