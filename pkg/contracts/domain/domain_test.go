package domain

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable(t *testing.T) {
	n := Num(42.5)
	assert.True(t, n.Valid)
	assert.Equal(t, 42.5, n.Or(0))

	missing := Null()
	assert.False(t, missing.Valid)
	assert.Equal(t, -1.0, missing.Or(-1))
}

func TestNullable_JSON(t *testing.T) {
	data, err := json.Marshal(Num(1.5))
	require.NoError(t, err)
	assert.Equal(t, "1.5", string(data))

	data, err = json.Marshal(Null())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var n Nullable
	require.NoError(t, json.Unmarshal([]byte("null"), &n))
	assert.False(t, n.Valid)
	require.NoError(t, json.Unmarshal([]byte("3.25"), &n))
	assert.Equal(t, Num(3.25), n)
}

func TestTradeTable_DateRange(t *testing.T) {
	table := &TradeTable{Records: []TradeRecord{
		{Date: time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
	}}

	min, max, ok := table.DateRange()
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), min)
	assert.Equal(t, time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), max)

	_, _, ok = (&TradeTable{}).DateRange()
	assert.False(t, ok)
}

func TestMergedTable_Classifications(t *testing.T) {
	table := &MergedTable{Records: []MergedRecord{
		{Sentiment: SentimentRecord{Classification: "Fear"}},
		{Sentiment: SentimentRecord{Classification: "Greed"}},
		{Sentiment: SentimentRecord{Classification: "Fear"}},
	}}

	assert.Equal(t, []string{"Fear", "Greed"}, table.Classifications())
}

func TestSentimentGroupStats_MarshalInfinity(t *testing.T) {
	s := SentimentGroupStats{Classification: "Greed", ProfitFactor: math.Inf(1)}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "inf", decoded["profit_factor"])
	assert.Equal(t, "Greed", decoded["classification"])

	finite := SentimentGroupStats{Classification: "Fear", ProfitFactor: 2.5}
	data, err = json.Marshal(finite)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2.5, decoded["profit_factor"])
}
