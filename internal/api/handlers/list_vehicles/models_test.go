package list_vehicles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

func TestToServiceRequest_Defaults(t *testing.T) {
	req, err := ToServiceRequest("", "", "", "", "")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPage, req.Page)
	assert.Equal(t, domain.DefaultPageSize, req.PageSize)

	// Пустые параметры не превращаются в фильтры
	assert.Nil(t, req.Name)
	assert.Nil(t, req.Brand)
	assert.Nil(t, req.Year)
}

func TestToServiceRequest_AllParams(t *testing.T) {
	req, err := ToServiceRequest("2", "25", "Civic", "Honda", "2020")
	require.NoError(t, err)

	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 25, req.PageSize)
	require.NotNil(t, req.Name)
	assert.Equal(t, "Civic", *req.Name)
	require.NotNil(t, req.Brand)
	assert.Equal(t, "Honda", *req.Brand)
	require.NotNil(t, req.Year)
	assert.Equal(t, 2020, *req.Year)
}

func TestToServiceRequest_InvalidNumbers(t *testing.T) {
	_, err := ToServiceRequest("abc", "", "", "", "")
	require.Error(t, err)

	_, err = ToServiceRequest("", "abc", "", "", "")
	require.Error(t, err)

	_, err = ToServiceRequest("", "", "", "", "not-a-year")
	require.Error(t, err)
}
