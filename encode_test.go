package ddbjson

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/olpa/ddbjson/types"
)

func TestMarshalValueScalars(t *testing.T) {
	c := require.New(t)

	av, err := MarshalValue(nil)
	c.NoError(err)
	c.Equal(&types.AttributeValueMemberNULL{Value: true}, av)

	av, err = MarshalValue(true)
	c.NoError(err)
	c.Equal(&types.AttributeValueMemberBOOL{Value: true}, av)

	av, err = MarshalValue("hello")
	c.NoError(err)
	c.Equal(&types.AttributeValueMemberS{Value: "hello"}, av)

	av, err = MarshalValue(json.Number("30"))
	c.NoError(err)
	c.Equal(&types.AttributeValueMemberN{Value: "30"}, av)

	av, err = MarshalValue(json.Number("4.5"))
	c.NoError(err)
	c.Equal(&types.AttributeValueMemberN{Value: "4.5"}, av)
}

func TestMarshalValueNativeNumbers(t *testing.T) {
	c := require.New(t)

	av, err := MarshalValue(42)
	c.NoError(err)
	c.Equal(&types.AttributeValueMemberN{Value: "42"}, av)

	av, err = MarshalValue(int64(-7))
	c.NoError(err)
	c.Equal(&types.AttributeValueMemberN{Value: "-7"}, av)

	// Whole floats keep their float-ness in the literal.
	av, err = MarshalValue(float64(3))
	c.NoError(err)
	c.Equal(&types.AttributeValueMemberN{Value: "3.0"}, av)

	av, err = MarshalValue(0.75)
	c.NoError(err)
	c.Equal(&types.AttributeValueMemberN{Value: "0.75"}, av)
}

func TestMarshalValueArraysAlwaysBecomeL(t *testing.T) {
	c := require.New(t)

	// Homogeneous string arrays still encode as L, never SS.
	av, err := MarshalValue([]any{"x", "y"})
	c.NoError(err)
	c.Equal(&types.AttributeValueMemberL{
		Value: []types.AttributeValue{
			&types.AttributeValueMemberS{Value: "x"},
			&types.AttributeValueMemberS{Value: "y"},
		},
	}, av)
}

func TestMarshalValueNested(t *testing.T) {
	c := require.New(t)

	av, err := MarshalValue(map[string]any{
		"user": map[string]any{
			"name":   "Alice",
			"scores": []any{json.Number("1"), json.Number("2.5")},
		},
	})
	c.NoError(err)

	c.Equal(&types.AttributeValueMemberM{
		Value: map[string]types.AttributeValue{
			"user": &types.AttributeValueMemberM{
				Value: map[string]types.AttributeValue{
					"name": &types.AttributeValueMemberS{Value: "Alice"},
					"scores": &types.AttributeValueMemberL{
						Value: []types.AttributeValue{
							&types.AttributeValueMemberN{Value: "1"},
							&types.AttributeValueMemberN{Value: "2.5"},
						},
					},
				},
			},
		},
	}, av)
}

func TestMarshalValueUnsupportedKind(t *testing.T) {
	c := require.New(t)

	_, err := MarshalValue(struct{}{})
	c.Error(err)
	c.Equal(types.ErrCodeUnsupportedNormalValueKind, errCode(t, err))

	_, err = MarshalValue(make(chan int))
	c.Error(err)
	c.Equal(types.ErrCodeUnsupportedNormalValueKind, errCode(t, err))
}

func TestMarshalItemNamesFailingField(t *testing.T) {
	c := require.New(t)

	_, err := MarshalItem(map[string]any{"bad": struct{}{}})
	c.Error(err)
	c.Contains(err.Error(), `field: "bad"`)
}

func TestEncodeValue(t *testing.T) {
	c := require.New(t)

	v, err := EncodeValue(&types.AttributeValueMemberS{Value: "hello"})
	c.NoError(err)
	c.Equal(map[string]any{"S": "hello"}, v)

	// The stored NULL payload is not consulted.
	v, err = EncodeValue(&types.AttributeValueMemberNULL{Value: false})
	c.NoError(err)
	c.Equal(map[string]any{"NULL": true}, v)

	v, err = EncodeValue(&types.AttributeValueMemberSS{Value: []string{"a", "b"}})
	c.NoError(err)
	c.Equal(map[string]any{"SS": []any{"a", "b"}}, v)

	v, err = EncodeValue(&types.AttributeValueMemberM{
		Value: map[string]types.AttributeValue{
			"n": &types.AttributeValueMemberN{Value: "1"},
		},
	})
	c.NoError(err)
	c.Equal(map[string]any{"M": map[string]any{"n": map[string]any{"N": "1"}}}, v)
}

func TestEncodeItemWrapping(t *testing.T) {
	c := require.New(t)

	item := map[string]types.AttributeValue{
		"name": &types.AttributeValueMemberS{Value: "Alice"},
	}

	doc, err := EncodeItem(item, false)
	c.NoError(err)
	c.Equal(map[string]any{"name": map[string]any{"S": "Alice"}}, doc)

	doc, err = EncodeItem(item, true)
	c.NoError(err)
	c.Equal(map[string]any{"Item": map[string]any{"name": map[string]any{"S": "Alice"}}}, doc)
}

func TestEncodeDecodeModelRoundTrip(t *testing.T) {
	c := require.New(t)

	item := map[string]types.AttributeValue{
		"s":    &types.AttributeValueMemberS{Value: "text"},
		"n":    &types.AttributeValueMemberN{Value: "1.5"},
		"b":    &types.AttributeValueMemberB{Value: "aGVsbG8="},
		"bool": &types.AttributeValueMemberBOOL{Value: true},
		"null": &types.AttributeValueMemberNULL{Value: true},
		"ss":   &types.AttributeValueMemberSS{Value: []string{"a"}},
		"ns":   &types.AttributeValueMemberNS{Value: []string{"1"}},
		"bs":   &types.AttributeValueMemberBS{Value: []string{"aGVsbG8="}},
		"l": &types.AttributeValueMemberL{
			Value: []types.AttributeValue{&types.AttributeValueMemberN{Value: "2"}},
		},
		"m": &types.AttributeValueMemberM{
			Value: map[string]types.AttributeValue{
				"inner": &types.AttributeValueMemberS{Value: "deep"},
			},
		},
	}

	encoded, err := EncodeItem(item, false)
	c.NoError(err)

	back, err := DecodeItem(encoded)
	c.NoError(err)
	c.Empty(cmp.Diff(item, back))
}
