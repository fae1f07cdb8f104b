package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/dossier-cli/internal/model"
)

func TestName_DirectField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Jane Doe", Name(map[string]any{"full_name": " Jane Doe "}))
	assert.Equal(t, "jdoe", Name(map[string]any{"username": "jdoe"}))
	assert.Equal(t, "Jane", Name(map[string]any{"DisplayName": "Jane"}))
}

func TestName_DirectFieldWinsOverParts(t *testing.T) {
	t.Parallel()

	got := Name(map[string]any{
		"full_name":  "Jane Doe",
		"first_name": "Janet",
		"last_name":  "Dough",
	})
	assert.Equal(t, "Jane Doe", got)
}

func TestName_ComposedParts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   map[string]any
		want string
	}{
		{
			"first middle last",
			map[string]any{"first_name": "Jane", "middle_name": "Q", "last_name": "Doe"},
			"Jane Q Doe",
		},
		{
			"missing middle",
			map[string]any{"first_name": "Jane", "last_name": "Doe"},
			"Jane Doe",
		},
		{
			"case variants",
			map[string]any{"FirstName": "Jane", "LName": "Doe"},
			"Jane Doe",
		},
		{
			"first only",
			map[string]any{"first": "Jane"},
			"Jane",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Name(tc.in))
		})
	}
}

func TestName_NestedNameObject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Jane Doe", Name(map[string]any{
		"name": map[string]any{"first": "Jane", "last": "Doe"},
	}))
	assert.Equal(t, "Jane Doe", Name(map[string]any{
		"name": map[string]any{"full": "Jane Doe"},
	}))
	assert.Equal(t, "Jane Doe", Name(map[string]any{
		"name": map[string]any{"value": "Jane Doe"},
	}))
}

func TestName_ArrayFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Jane Doe", Name(map[string]any{
		"aliases": []any{"", "Jane Doe", "J. Doe"},
	}))
	assert.Equal(t, "Jane Doe", Name(map[string]any{
		"people": []any{map[string]any{"full_name": "Jane Doe"}},
	}))
}

func TestName_ContainerRecursion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Jane Doe", Name(map[string]any{
		"user_info": map[string]any{
			"person": map[string]any{"first_name": "Jane", "last_name": "Doe"},
		},
	}))
}

func TestName_Miss(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Name(nil))
	assert.Empty(t, Name(map[string]any{}))
	assert.Empty(t, Name(map[string]any{"name": "   "}))
	assert.Empty(t, Name(map[string]any{"name": float64(42)}))
	assert.Empty(t, Name(map[string]any{"city": "Springfield"}))
}

func TestHasDetectedName(t *testing.T) {
	t.Parallel()

	assert.True(t, HasDetectedName(&model.Platform{
		Fields: map[string]any{"name": "Jane Doe"},
	}))
	assert.True(t, HasDetectedName(&model.Platform{
		Data: map[string]any{"full_name": "Jane Doe"},
	}))
	assert.True(t, HasDetectedName(&model.Platform{
		SpecFormat: []map[string]any{
			{"registered": true},
			{"name": "Jane Doe"},
		},
	}))
	assert.False(t, HasDetectedName(&model.Platform{
		Data: map[string]any{"city": "Springfield"},
	}))
	assert.False(t, HasDetectedName(nil))
}
