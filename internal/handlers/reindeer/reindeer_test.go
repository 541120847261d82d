package reindeer

import (
	"testing"

	"hunt-api/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrengthLogic(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    uint64
		wantErr bool
	}{
		{
			name: "sums strength",
			body: `[{"name":"Dasher","strength":5},{"name":"Dancer","strength":6},{"name":"Prancer","strength":4},{"name":"Vixen","strength":7}]`,
			want: 22,
		},
		{name: "empty herd", body: `[]`, want: 0},
		{name: "no overflow past uint32", body: `[{"name":"a","strength":4294967295},{"name":"b","strength":1}]`, want: 4294967296},
		{name: "not an array", body: `{"name":"Dasher","strength":5}`, wantErr: true},
		{name: "negative strength", body: `[{"name":"Dasher","strength":-5}]`, wantErr: true},
		{name: "not json", body: `strong`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StrengthLogic([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, shared.ErrBadRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContestLogic(t *testing.T) {
	body := `[
		{"name":"Dasher","strength":5,"speed":50.4,"height":80,"antler_width":36,"snow_magic_power":9001,"favorite_food":"hay","cAnD13s_3ATeN-yesT3rdAy":2},
		{"name":"Dancer","strength":6,"speed":48.2,"height":65,"antler_width":37,"snow_magic_power":4004,"favorite_food":"grass","cAnD13s_3ATeN-yesT3rdAy":5}
	]`
	got, err := ContestLogic([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, &ContestResults{
		Fastest:  "Speeding past the finish line with a strength of 5 is Dasher",
		Tallest:  "Dasher is standing tall with his 36 cm wide antlers",
		Magician: "Dasher could blast you away with a snow magic power of 9001",
		Consumer: "Dancer ate lots of candies, but also some grass",
	}, got)
}

func TestContestLogic_FirstMaximumWins(t *testing.T) {
	body := `[
		{"name":"Comet","strength":1,"speed":10,"height":100,"antler_width":1,"snow_magic_power":7,"favorite_food":"pie","cAnD13s_3ATeN-yesT3rdAy":3},
		{"name":"Cupid","strength":2,"speed":10,"height":100,"antler_width":2,"snow_magic_power":7,"favorite_food":"cake","cAnD13s_3ATeN-yesT3rdAy":3}
	]`
	got, err := ContestLogic([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "Speeding past the finish line with a strength of 1 is Comet", got.Fastest)
	assert.Equal(t, "Comet is standing tall with his 1 cm wide antlers", got.Tallest)
	assert.Equal(t, "Comet could blast you away with a snow magic power of 7", got.Magician)
	assert.Equal(t, "Comet ate lots of candies, but also some pie", got.Consumer)
}

func TestContestLogic_Errors(t *testing.T) {
	for _, body := range []string{`[]`, `null`, `{}`, `[{"speed":"fast"}]`} {
		t.Run(body, func(t *testing.T) {
			got, err := ContestLogic([]byte(body))
			assert.Nil(t, got)
			assert.ErrorIs(t, err, shared.ErrBadRequest)
		})
	}
}
