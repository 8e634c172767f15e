package form

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextViewRendersScenario(t *testing.T) {
	b := &fakeBackend{
		geocode: map[string]geocodeReply{
			"Seoul Station": {res: seoul},
			"Busan Station": {res: busan},
		},
		distance: "325.3",
	}
	var out bytes.Buffer
	f := New(b, NewTextView(&out))
	ctx := context.Background()

	f.SearchLocation(ctx, Start, "Seoul Station")
	f.SearchLocation(ctx, End, "Busan Station")
	_, ok := f.CalculateDistance(ctx)
	require.True(t, ok)

	text := out.String()
	assert.Contains(t, text, "[start] Found: Seoul Station, Korea\n")
	assert.Contains(t, text, "[end] Found: Busan Station, Korea\n")
	assert.Contains(t, text, "[calc] Calculating...\n")
	assert.Contains(t, text, "Distance: 325.3 km\n")
	assert.True(t, strings.HasSuffix(text,
		"Map: https://www.openstreetmap.org/directions?engine=graphhopper_car&route=37.55%2C126.97%3B35.11%2C129.04\n"))
}
