package appointment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequest_CustomerByID(t *testing.T) {
	var req CreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"businessId":"b1","userId":"c1","serviceId":"s1","appointmentDate":"2026-03-10T10:00:00Z","notes":"hi"}`), &req))

	assert.Equal(t, "b1", req.BusinessID)
	assert.Equal(t, "s1", req.ServiceID)
	assert.Equal(t, "hi", req.Notes)
	assert.Equal(t, CustomerByID("c1"), req.Customer)
}

func TestCreateRequest_InlineCustomer(t *testing.T) {
	var req CreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"businessId":"b1","userId":{"name":"Ann","email":"ann@example.com","phone":"555"},"serviceId":"s1"}`), &req))

	assert.Equal(t, InlineCustomer{Name: "Ann", Email: "ann@example.com", Phone: "555"}, req.Customer)
}

func TestCreateRequest_MissingOrBadCustomer(t *testing.T) {
	var req CreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"businessId":"b1"}`), &req))
	assert.Nil(t, req.Customer)

	require.NoError(t, json.Unmarshal([]byte(`{"businessId":"b1","userId":null}`), &req))
	assert.Nil(t, req.Customer)

	assert.Error(t, json.Unmarshal([]byte(`{"businessId":"b1","userId":42}`), &req))
}
