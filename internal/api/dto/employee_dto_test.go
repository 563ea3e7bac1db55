package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/clinic-roster/internal/api/dto"
)

func TestEmployeeRequest_HireDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want *time.Time
	}{
		{name: "calendar date", body: `{"hireDate":"2021-03-04"}`, want: ptr(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC))},
		{name: "timestamp", body: `{"hireDate":"2021-03-04T10:30:00Z"}`, want: ptr(time.Date(2021, 3, 4, 10, 30, 0, 0, time.UTC))},
		{name: "null", body: `{"hireDate":null}`},
		{name: "empty", body: `{"hireDate":""}`},
		{name: "omitted", body: `{}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var req dto.EmployeeRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))

			got := req.HireDate.Ptr()
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tc.want.Equal(*got), "got %s", got)
		})
	}
}

func TestEmployeeRequest_BadHireDate(t *testing.T) {
	t.Parallel()

	var req dto.EmployeeRequest
	err := json.Unmarshal([]byte(`{"hireDate":"last tuesday"}`), &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hireDate")
}

func TestEmployeeResponse_NullDepartment(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(dto.EmployeeResponse{ID: "e1", FirstName: "Lisa"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "department")
	assert.Nil(t, decoded["department"])
	assert.Equal(t, "Lisa", decoded["firstName"])
}

func ptr(t time.Time) *time.Time { return &t }
