package vehicles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-VehicleRegistry/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-VehicleRegistry/internal/service/vehicles/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeRepo in-memory реализация VehicleRepository для тестов
type fakeRepo struct {
	vehicles   map[int64]*domain.Vehicle
	nextID     int64
	lastFilter *domain.VehicleFilter
	failWith   error
}

func newFakeRepo(seed ...*domain.Vehicle) *fakeRepo {
	r := &fakeRepo{vehicles: make(map[int64]*domain.Vehicle), nextID: 1}
	for _, v := range seed {
		r.vehicles[v.ID] = v
		if v.ID >= r.nextID {
			r.nextID = v.ID + 1
		}
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	v.ID = r.nextID
	r.nextID++
	r.vehicles[v.ID] = v
	return v, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	v, ok := r.vehicles[id]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return v, nil
}

func (r *fakeRepo) GetWithFilter(_ context.Context, filter domain.VehicleFilter) ([]*domain.Vehicle, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.lastFilter = &filter
	result := make([]*domain.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		result = append(result, v)
	}
	return result, nil
}

func (r *fakeRepo) CountWithFilter(_ context.Context, _ domain.VehicleFilter) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	return int64(len(r.vehicles)), nil
}

func (r *fakeRepo) Update(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if _, ok := r.vehicles[v.ID]; !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	r.vehicles[v.ID] = v
	return v, nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.vehicles[id]; !ok {
		return vehicleRepo.ErrVehicleNotFound
	}
	delete(r.vehicles, id)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestService_List_NormalizesPagination(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListVehiclesRequest{Page: -3, PageSize: 0})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, domain.DefaultPageSize, repo.lastFilter.PageSize)
}

func TestService_List_CapsPageSize(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListVehiclesRequest{Page: 1, PageSize: 5000})
	require.NoError(t, err)

	assert.Equal(t, domain.MaxPageSize, repo.lastFilter.PageSize)
}

func TestService_List_PassesFiltersThrough(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	req := &models.ListVehiclesRequest{
		Name:     strPtr("Civic"),
		Brand:    strPtr("Honda"),
		Year:     intPtr(2020),
		Page:     2,
		PageSize: 25,
	}

	_, err := svc.List(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter)
	require.NotNil(t, repo.lastFilter.Name)
	assert.Equal(t, "Civic", *repo.lastFilter.Name)
	require.NotNil(t, repo.lastFilter.Brand)
	assert.Equal(t, "Honda", *repo.lastFilter.Brand)
	require.NotNil(t, repo.lastFilter.Year)
	assert.Equal(t, 2020, *repo.lastFilter.Year)
	assert.Equal(t, uint64(25), repo.lastFilter.Offset())
}

func TestService_List_BuildsPaginatedEnvelope(t *testing.T) {
	repo := newFakeRepo(
		&domain.Vehicle{ID: 1, Name: "Civic", Brand: "Honda", Year: 2020},
		&domain.Vehicle{ID: 2, Name: "Corolla", Brand: "Toyota", Year: 2021},
		&domain.Vehicle{ID: 3, Name: "Model 3", Brand: "Tesla", Year: 2022},
	)
	svc := NewService(repo, nopLogger{})

	result, err := svc.List(context.Background(), &models.ListVehiclesRequest{Page: 1, PageSize: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.TotalItems)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, 1, result.PageNumber)
	assert.False(t, result.HasPreviousPage)
	assert.True(t, result.HasNextPage)
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeRepo(&domain.Vehicle{ID: 1, Name: "Civic", Brand: "Honda", Year: 2020})
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, "Civic", result.Name)

	_, err = svc.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestService_Create_AssignsID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	result, err := svc.Create(context.Background(), &models.CreateVehicleRequest{
		Name: "X5", Brand: "BMW", Year: 2023,
	})
	require.NoError(t, err)

	assert.NotZero(t, result.ID)
	assert.Equal(t, "X5", result.Name)
	assert.Equal(t, "BMW", result.Brand)
	assert.Equal(t, 2023, result.Year)

	// Round-trip: созданная запись читается по присвоенному ID
	got, err := svc.GetByID(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Name, got.Name)
	assert.Equal(t, result.Brand, got.Brand)
	assert.Equal(t, result.Year, got.Year)
}

func TestService_Update(t *testing.T) {
	repo := newFakeRepo(&domain.Vehicle{ID: 1, Name: "Civic", Brand: "Honda", Year: 2020})
	svc := NewService(repo, nopLogger{})

	result, err := svc.Update(context.Background(), &models.UpdateVehicleRequest{
		ID: 1, Name: "Civic Type R", Brand: "Honda", Year: 2021,
	})
	require.NoError(t, err)
	assert.Equal(t, "Civic Type R", result.Name)
	assert.Equal(t, 2021, result.Year)

	_, err = svc.Update(context.Background(), &models.UpdateVehicleRequest{
		ID: 999, Name: "Ghost", Brand: "None", Year: 2000,
	})
	require.ErrorIs(t, err, ErrVehicleNotFound)

	_, err = svc.Update(context.Background(), &models.UpdateVehicleRequest{
		ID: 0, Name: "NoID", Brand: "None", Year: 2000,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	repo := newFakeRepo(&domain.Vehicle{ID: 1, Name: "Civic", Brand: "Honda", Year: 2020})
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.ErrorIs(t, svc.Delete(context.Background(), 1), ErrVehicleNotFound)
}
