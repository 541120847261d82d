package cookie

import (
	"testing"

	"hunt-api/internal/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecipeRequest(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    *RecipeRequest
		wantErr bool
	}{
		{
			name: "recipe and pantry",
			text: `{"recipe":{"flour":95,"sugar":50},"pantry":{"flour":385,"sugar":500}}`,
			want: &RecipeRequest{
				Recipe: IngredientMap{"flour": 95, "sugar": 50},
				Pantry: IngredientMap{"flour": 385, "sugar": 500},
			},
		},
		{
			name: "empty maps",
			text: `{"recipe":{},"pantry":{}}`,
			want: &RecipeRequest{Recipe: IngredientMap{}, Pantry: IngredientMap{}},
		},
		{
			name: "names are case sensitive and may contain spaces",
			text: `{"recipe":{"Flour":1,"baking powder":2},"pantry":{"flour":3}}`,
			want: &RecipeRequest{
				Recipe: IngredientMap{"Flour": 1, "baking powder": 2},
				Pantry: IngredientMap{"flour": 3},
			},
		},
		{
			name: "unknown top level fields are ignored",
			text: `{"recipe":{"a":1},"pantry":{"a":2},"oven":"hot"}`,
			want: &RecipeRequest{Recipe: IngredientMap{"a": 1}, Pantry: IngredientMap{"a": 2}},
		},
		{
			name: "repeated unknown fields are ignored",
			text: `{"oven":1,"recipe":{"a":1},"oven":[true],"pantry":{"a":2}} `,
			want: &RecipeRequest{Recipe: IngredientMap{"a": 1}, Pantry: IngredientMap{"a": 2}},
		},
		{name: "not json", text: `recipe please`, wantErr: true},
		{name: "empty text", text: ``, wantErr: true},
		{name: "top level array", text: `[]`, wantErr: true},
		{name: "top level null", text: `null`, wantErr: true},
		{name: "missing pantry", text: `{"recipe":{"a":1}}`, wantErr: true},
		{name: "missing recipe", text: `{"pantry":{"a":1}}`, wantErr: true},
		{name: "field names are exact", text: `{"Recipe":{"a":1},"pantry":{"a":1}}`, wantErr: true},
		{name: "null recipe", text: `{"recipe":null,"pantry":{}}`, wantErr: true},
		{name: "recipe is an array", text: `{"recipe":[1],"pantry":{}}`, wantErr: true},
		{name: "quantity is a string", text: `{"recipe":{"a":"1"},"pantry":{}}`, wantErr: true},
		{name: "negative quantity", text: `{"recipe":{"a":1},"pantry":{"a":-1}}`, wantErr: true},
		{name: "fractional quantity", text: `{"recipe":{"a":1.5},"pantry":{}}`, wantErr: true},
		{name: "nested object quantity", text: `{"recipe":{"a":{"b":1}},"pantry":{}}`, wantErr: true},
		{name: "duplicate ingredient", text: `{"recipe":{"a":1,"a":2},"pantry":{}}`, wantErr: true},
		{name: "null recipe quantity", text: `{"recipe":{"flour":null},"pantry":{"flour":5}}`, wantErr: true},
		{name: "null pantry quantity", text: `{"recipe":{"flour":1},"pantry":{"flour":null}}`, wantErr: true},
		{name: "null pantry", text: `{"recipe":{},"pantry":null}`, wantErr: true},
		{name: "duplicate recipe field", text: `{"recipe":{"flour":1},"recipe":{"x":1},"pantry":{"flour":5}}`, wantErr: true},
		{name: "duplicate pantry field", text: `{"recipe":{"a":1},"pantry":{"a":1},"pantry":{"a":9}}`, wantErr: true},
		{name: "unclosed object", text: `{"recipe":{},"pantry":{}`, wantErr: true},
		{name: "second document", text: `{"recipe":{},"pantry":{}} {}`, wantErr: true},
		{name: "trailing garbage", text: `{"recipe":{},"pantry":{}} extra`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecipeRequest(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, shared.ErrMalformedRequest)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseRecipeRequest() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIngredientMap_UnmarshalJSON(t *testing.T) {
	var m IngredientMap
	require.NoError(t, m.UnmarshalJSON([]byte(`{"flour": 18446744073709551615}`)))
	assert.Equal(t, IngredientMap{"flour": 18446744073709551615}, m)

	assert.Error(t, m.UnmarshalJSON([]byte(`{"flour": 18446744073709551616}`)))
	assert.Error(t, m.UnmarshalJSON([]byte(`null`)))
	assert.Error(t, m.UnmarshalJSON([]byte(`"flour"`)))
	assert.Error(t, m.UnmarshalJSON([]byte(`{"flour": null}`)))
	assert.Error(t, m.UnmarshalJSON([]byte(`{"flour": 1, "sugar": null}`)))
}
