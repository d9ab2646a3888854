package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Salary Number `json:"salary"`
		Bonus  Number `json:"bonus"`
		Year   Number `json:"year"`
		Extra  Number `json:"extra"`
	}
	err := json.Unmarshal([]byte(`{"salary": 75000.5, "bonus": " 1200 ", "year": null, "extra": ""}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, Number("75000.5"), payload.Salary)
	assert.Equal(t, Number("1200"), payload.Bonus)
	assert.Equal(t, Number(""), payload.Year)
	assert.Equal(t, Number(""), payload.Extra)
}

func TestNumber_RejectsObjects(t *testing.T) {
	var n Number
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &n))
}
