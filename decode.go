package ddbjson

import (
	"fmt"

	"github.com/olpa/ddbjson/types"
)

// DecodeValue converts one parsed DynamoDB JSON value into its
// AttributeValue form. The input is the tree a json.Decoder produces for a
// type object such as {"S": "hello"}: a map with exactly one key naming a
// DynamoDB type. Payload shapes are validated here; number literals in N
// and NS are checked but kept as text.
func DecodeValue(v any) (types.AttributeValue, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, types.NewError(types.ErrCodeMalformedTagObject,
			"expected DynamoDB type object", nil)
	}

	if len(obj) != 1 {
		return nil, types.NewError(types.ErrCodeMalformedTagObject,
			"DynamoDB type object must have exactly one key", nil)
	}

	var tag string
	var payload any

	for k, p := range obj {
		tag, payload = k, p
	}

	switch tag {
	case "S":
		s, ok := payload.(string)
		if !ok {
			return nil, typeMismatch("S type must be string")
		}

		return &types.AttributeValueMemberS{Value: s}, nil
	case "N":
		s, ok := payload.(string)
		if !ok {
			return nil, typeMismatch("N type must be string")
		}

		if !isNumberLiteral(s) {
			return nil, invalidNumber(s, nil)
		}

		return &types.AttributeValueMemberN{Value: s}, nil
	case "BOOL":
		b, ok := payload.(bool)
		if !ok {
			return nil, typeMismatch("BOOL type must be boolean")
		}

		return &types.AttributeValueMemberBOOL{Value: b}, nil
	case "NULL":
		// The payload is conventionally true but its value is ignored.
		return &types.AttributeValueMemberNULL{Value: true}, nil
	case "M":
		m, ok := payload.(map[string]any)
		if !ok {
			return nil, typeMismatch("M type must be object")
		}

		values := make(map[string]types.AttributeValue, len(m))

		for key, elem := range m {
			av, err := DecodeValue(elem)
			if err != nil {
				return nil, err
			}

			values[key] = av
		}

		return &types.AttributeValueMemberM{Value: values}, nil
	case "L":
		l, ok := payload.([]any)
		if !ok {
			return nil, typeMismatch("L type must be array")
		}

		values := make([]types.AttributeValue, len(l))

		for i, elem := range l {
			av, err := DecodeValue(elem)
			if err != nil {
				return nil, err
			}

			values[i] = av
		}

		return &types.AttributeValueMemberL{Value: values}, nil
	case "SS":
		ss, err := decodeStringSet(payload, "SS")
		if err != nil {
			return nil, err
		}

		return &types.AttributeValueMemberSS{Value: ss}, nil
	case "NS":
		ns, err := decodeStringSet(payload, "NS")
		if err != nil {
			return nil, err
		}

		for _, lit := range ns {
			if !isNumberLiteral(lit) {
				return nil, invalidNumber(lit, nil)
			}
		}

		return &types.AttributeValueMemberNS{Value: ns}, nil
	case "BS":
		bs, err := decodeStringSet(payload, "BS")
		if err != nil {
			return nil, err
		}

		return &types.AttributeValueMemberBS{Value: bs}, nil
	case "B":
		s, ok := payload.(string)
		if !ok {
			return nil, typeMismatch("B type must be string")
		}

		return &types.AttributeValueMemberB{Value: s}, nil
	}

	return nil, types.NewError(types.ErrCodeUnknownTag,
		fmt.Sprintf("unknown DynamoDB type: %s", tag), nil)
}

// DecodeItem converts a parsed DynamoDB JSON document into an attribute
// map. A document that is exactly {"Item": {...}} is unwrapped first;
// every other document decodes as the item itself.
func DecodeItem(doc any) (map[string]types.AttributeValue, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, types.NewError(types.ErrCodeMalformedTagObject,
			"expected JSON object", nil)
	}

	obj = unwrapItem(obj)

	item := make(map[string]types.AttributeValue, len(obj))

	for key, value := range obj {
		av, err := DecodeValue(value)
		if err != nil {
			return nil, fmt.Errorf("%w; field: %q", err, key)
		}

		item[key] = av
	}

	return item, nil
}

// unwrapItem removes the optional item envelope: a single "Item" key whose
// value is itself an object. Any other shape passes through unchanged; in
// particular a lone "Item" key with a non-object value stays put and fails
// later as a malformed attribute.
func unwrapItem(obj map[string]any) map[string]any {
	if len(obj) != 1 {
		return obj
	}

	inner, ok := obj["Item"].(map[string]any)
	if !ok {
		return obj
	}

	return inner
}

// UnmarshalValue converts an AttributeValue into its plain JSON form.
// Numbers are materialized per the literal recovery rule (see
// decodeNumber), sets flatten to plain arrays, and binary payloads stay
// base64 text.
func UnmarshalValue(av types.AttributeValue) (any, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value, nil
	case *types.AttributeValueMemberN:
		return decodeNumber(v.Value)
	case *types.AttributeValueMemberBOOL:
		return v.Value, nil
	case *types.AttributeValueMemberNULL:
		return nil, nil
	case *types.AttributeValueMemberM:
		result := make(map[string]any, len(v.Value))

		for key, elem := range v.Value {
			val, err := UnmarshalValue(elem)
			if err != nil {
				return nil, err
			}

			result[key] = val
		}

		return result, nil
	case *types.AttributeValueMemberL:
		result := make([]any, len(v.Value))

		for i, elem := range v.Value {
			val, err := UnmarshalValue(elem)
			if err != nil {
				return nil, err
			}

			result[i] = val
		}

		return result, nil
	case *types.AttributeValueMemberSS:
		return stringArray(v.Value), nil
	case *types.AttributeValueMemberNS:
		result := make([]any, len(v.Value))

		for i, lit := range v.Value {
			n, err := decodeNumber(lit)
			if err != nil {
				return nil, err
			}

			result[i] = n
		}

		return result, nil
	case *types.AttributeValueMemberBS:
		return stringArray(v.Value), nil
	case *types.AttributeValueMemberB:
		return v.Value, nil
	}

	return nil, fmt.Errorf("unsupported AttributeValue type %T", av)
}

// UnmarshalItem converts a whole attribute map into plain JSON values,
// naming the failing top-level field on error.
func UnmarshalItem(item map[string]types.AttributeValue) (map[string]any, error) {
	result := make(map[string]any, len(item))

	for key, av := range item {
		val, err := UnmarshalValue(av)
		if err != nil {
			return nil, fmt.Errorf("%w; field: %q", err, key)
		}

		result[key] = val
	}

	return result, nil
}

func decodeStringSet(payload any, tag string) ([]string, error) {
	l, ok := payload.([]any)
	if !ok {
		return nil, typeMismatch(tag + " type must be array")
	}

	items := make([]string, len(l))

	for i, elem := range l {
		s, ok := elem.(string)
		if !ok {
			return nil, typeMismatch(tag + " items must be strings")
		}

		items[i] = s
	}

	return items, nil
}

func stringArray(items []string) []any {
	result := make([]any, len(items))

	for i, s := range items {
		result[i] = s
	}

	return result
}

func typeMismatch(message string) error {
	return types.NewError(types.ErrCodeTypeMismatch, message, nil)
}
