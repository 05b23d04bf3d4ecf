// Package awsv2 bridges the ddbjson attribute model to the aws-sdk-go-v2
// DynamoDB types. The codec carries binary payloads as base64 text; this
// boundary is where they become real bytes on the way to the SDK and base64
// text again on the way back.
package awsv2

import (
	"encoding/base64"
	"fmt"

	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/olpa/ddbjson/types"
)

// maps types to dynamo

// ToSDKValue converts a model attribute value into its aws-sdk-go-v2 form.
// B and BS payloads are base64-decoded here; bad base64 surfaces as a
// SerializationException.
func ToSDKValue(av types.AttributeValue) (dynamodbtypes.AttributeValue, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return &dynamodbtypes.AttributeValueMemberS{Value: v.Value}, nil
	case *types.AttributeValueMemberN:
		return &dynamodbtypes.AttributeValueMemberN{Value: v.Value}, nil
	case *types.AttributeValueMemberBOOL:
		return &dynamodbtypes.AttributeValueMemberBOOL{Value: v.Value}, nil
	case *types.AttributeValueMemberNULL:
		return &dynamodbtypes.AttributeValueMemberNULL{Value: true}, nil
	case *types.AttributeValueMemberM:
		values, err := ToSDKItem(v.Value)
		if err != nil {
			return nil, err
		}

		return &dynamodbtypes.AttributeValueMemberM{Value: values}, nil
	case *types.AttributeValueMemberL:
		values := make([]dynamodbtypes.AttributeValue, len(v.Value))

		for i, elem := range v.Value {
			sdk, err := ToSDKValue(elem)
			if err != nil {
				return nil, err
			}

			values[i] = sdk
		}

		return &dynamodbtypes.AttributeValueMemberL{Value: values}, nil
	case *types.AttributeValueMemberSS:
		return &dynamodbtypes.AttributeValueMemberSS{Value: append([]string{}, v.Value...)}, nil
	case *types.AttributeValueMemberNS:
		return &dynamodbtypes.AttributeValueMemberNS{Value: append([]string{}, v.Value...)}, nil
	case *types.AttributeValueMemberBS:
		values := make([][]byte, len(v.Value))

		for i, elem := range v.Value {
			raw, err := decodeBase64(elem)
			if err != nil {
				return nil, err
			}

			values[i] = raw
		}

		return &dynamodbtypes.AttributeValueMemberBS{Value: values}, nil
	case *types.AttributeValueMemberB:
		raw, err := decodeBase64(v.Value)
		if err != nil {
			return nil, err
		}

		return &dynamodbtypes.AttributeValueMemberB{Value: raw}, nil
	}

	return nil, serializationError(fmt.Sprintf("unsupported attribute value type %T", av))
}

// ToSDKItem converts an attribute map into its aws-sdk-go-v2 form.
func ToSDKItem(item map[string]types.AttributeValue) (map[string]dynamodbtypes.AttributeValue, error) {
	output := make(map[string]dynamodbtypes.AttributeValue, len(item))

	for key, av := range item {
		sdk, err := ToSDKValue(av)
		if err != nil {
			return nil, err
		}

		output[key] = sdk
	}

	return output, nil
}

// maps dynamo to types

// FromSDKValue converts an aws-sdk-go-v2 attribute value into the model
// form, re-encoding binary payloads as base64 text.
func FromSDKValue(av dynamodbtypes.AttributeValue) (types.AttributeValue, error) {
	switch v := av.(type) {
	case *dynamodbtypes.AttributeValueMemberS:
		return &types.AttributeValueMemberS{Value: v.Value}, nil
	case *dynamodbtypes.AttributeValueMemberN:
		return &types.AttributeValueMemberN{Value: v.Value}, nil
	case *dynamodbtypes.AttributeValueMemberBOOL:
		return &types.AttributeValueMemberBOOL{Value: v.Value}, nil
	case *dynamodbtypes.AttributeValueMemberNULL:
		return &types.AttributeValueMemberNULL{Value: true}, nil
	case *dynamodbtypes.AttributeValueMemberM:
		values, err := FromSDKItem(v.Value)
		if err != nil {
			return nil, err
		}

		return &types.AttributeValueMemberM{Value: values}, nil
	case *dynamodbtypes.AttributeValueMemberL:
		values := make([]types.AttributeValue, len(v.Value))

		for i, elem := range v.Value {
			model, err := FromSDKValue(elem)
			if err != nil {
				return nil, err
			}

			values[i] = model
		}

		return &types.AttributeValueMemberL{Value: values}, nil
	case *dynamodbtypes.AttributeValueMemberSS:
		return &types.AttributeValueMemberSS{Value: append([]string{}, v.Value...)}, nil
	case *dynamodbtypes.AttributeValueMemberNS:
		return &types.AttributeValueMemberNS{Value: append([]string{}, v.Value...)}, nil
	case *dynamodbtypes.AttributeValueMemberBS:
		values := make([]string, len(v.Value))

		for i, raw := range v.Value {
			values[i] = base64.StdEncoding.EncodeToString(raw)
		}

		return &types.AttributeValueMemberBS{Value: values}, nil
	case *dynamodbtypes.AttributeValueMemberB:
		return &types.AttributeValueMemberB{Value: base64.StdEncoding.EncodeToString(v.Value)}, nil
	}

	return nil, serializationError(fmt.Sprintf("unsupported attribute value type %T", av))
}

// FromSDKItem converts an aws-sdk-go-v2 attribute map into the model form.
func FromSDKItem(item map[string]dynamodbtypes.AttributeValue) (map[string]types.AttributeValue, error) {
	output := make(map[string]types.AttributeValue, len(item))

	for key, av := range item {
		model, err := FromSDKValue(av)
		if err != nil {
			return nil, err
		}

		output[key] = model
	}

	return output, nil
}

func decodeBase64(text string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, serializationError(fmt.Sprintf("invalid base64 in binary attribute: %s", err))
	}

	return raw, nil
}

func serializationError(message string) error {
	return &smithy.GenericAPIError{Code: "SerializationException", Message: message}
}
