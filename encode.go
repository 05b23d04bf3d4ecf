package ddbjson

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/olpa/ddbjson/types"
)

// MarshalValue converts a plain JSON value into its AttributeValue form.
// Arrays always become L, never SS, NS or BS: the set types exist only on
// the decode side, so a document that used sets changes tag shape after a
// round trip.
//
// Numbers may arrive as json.Number (from a decoder with UseNumber), or as
// native int, int64 or float64; the N literal is canonicalized either way,
// keeping the integer/float distinction in the text.
func MarshalValue(v any) (types.AttributeValue, error) {
	switch val := v.(type) {
	case nil:
		return &types.AttributeValueMemberNULL{Value: true}, nil
	case bool:
		return &types.AttributeValueMemberBOOL{Value: val}, nil
	case string:
		return &types.AttributeValueMemberS{Value: val}, nil
	case json.Number:
		n, err := decodeNumber(val.String())
		if err != nil {
			return nil, err
		}

		return &types.AttributeValueMemberN{Value: n.String()}, nil
	case int:
		return &types.AttributeValueMemberN{Value: strconv.Itoa(val)}, nil
	case int64:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(val, 10)}, nil
	case float64:
		return &types.AttributeValueMemberN{Value: formatFloat(val)}, nil
	case []any:
		values := make([]types.AttributeValue, len(val))

		for i, elem := range val {
			av, err := MarshalValue(elem)
			if err != nil {
				return nil, err
			}

			values[i] = av
		}

		return &types.AttributeValueMemberL{Value: values}, nil
	case map[string]any:
		values := make(map[string]types.AttributeValue, len(val))

		for key, elem := range val {
			av, err := MarshalValue(elem)
			if err != nil {
				return nil, err
			}

			values[key] = av
		}

		return &types.AttributeValueMemberM{Value: values}, nil
	}

	return nil, types.NewError(types.ErrCodeUnsupportedNormalValueKind,
		fmt.Sprintf("unsupported type: %T", v), nil)
}

// MarshalItem converts a plain JSON object into an attribute map, naming
// the failing top-level field on error.
func MarshalItem(doc map[string]any) (map[string]types.AttributeValue, error) {
	item := make(map[string]types.AttributeValue, len(doc))

	for key, value := range doc {
		av, err := MarshalValue(value)
		if err != nil {
			return nil, fmt.Errorf("%w; field: %q", err, key)
		}

		item[key] = av
	}

	return item, nil
}

// EncodeValue converts an AttributeValue back into the single-key tree
// form that serializes as DynamoDB JSON.
func EncodeValue(av types.AttributeValue) (any, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return map[string]any{"S": v.Value}, nil
	case *types.AttributeValueMemberN:
		return map[string]any{"N": v.Value}, nil
	case *types.AttributeValueMemberBOOL:
		return map[string]any{"BOOL": v.Value}, nil
	case *types.AttributeValueMemberNULL:
		return map[string]any{"NULL": true}, nil
	case *types.AttributeValueMemberM:
		m := make(map[string]any, len(v.Value))

		for key, elem := range v.Value {
			enc, err := EncodeValue(elem)
			if err != nil {
				return nil, err
			}

			m[key] = enc
		}

		return map[string]any{"M": m}, nil
	case *types.AttributeValueMemberL:
		l := make([]any, len(v.Value))

		for i, elem := range v.Value {
			enc, err := EncodeValue(elem)
			if err != nil {
				return nil, err
			}

			l[i] = enc
		}

		return map[string]any{"L": l}, nil
	case *types.AttributeValueMemberSS:
		return map[string]any{"SS": stringArray(v.Value)}, nil
	case *types.AttributeValueMemberNS:
		return map[string]any{"NS": stringArray(v.Value)}, nil
	case *types.AttributeValueMemberBS:
		return map[string]any{"BS": stringArray(v.Value)}, nil
	case *types.AttributeValueMemberB:
		return map[string]any{"B": v.Value}, nil
	}

	return nil, fmt.Errorf("unsupported AttributeValue type %T", av)
}

// EncodeItem converts an attribute map into the tagged tree form,
// optionally wrapped in the {"Item": ...} envelope.
func EncodeItem(item map[string]types.AttributeValue, wrapItem bool) (any, error) {
	doc := make(map[string]any, len(item))

	for key, av := range item {
		enc, err := EncodeValue(av)
		if err != nil {
			return nil, fmt.Errorf("%w; field: %q", err, key)
		}

		doc[key] = enc
	}

	if wrapItem {
		return map[string]any{"Item": doc}, nil
	}

	return doc, nil
}
