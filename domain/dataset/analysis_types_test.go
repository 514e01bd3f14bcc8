package dataset

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantileRow_MarshalJSONWritesNaNAsNull(t *testing.T) {
	table := QuantileTable{
		Levels: []float64{0, 0.5, 1},
		Rows: []QuantileRow{
			{Column: "Purchase", Values: []float64{315.08, 550.5, 665.21}},
			{Column: "Click", Values: []float64{math.NaN(), math.NaN(), math.NaN()}},
		},
	}

	out, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"levels": [0, 0.5, 1],
		"rows": [
			{"column": "Purchase", "values": [315.08, 550.5, 665.21]},
			{"column": "Click", "values": [null, null, null]}
		]
	}`, string(out))
}
