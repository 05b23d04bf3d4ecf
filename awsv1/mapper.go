// Package awsv1 bridges the ddbjson attribute model to the aws-sdk-go (v1)
// DynamoDB types. Like awsv2, this is the boundary where base64 text
// becomes raw bytes and back.
package awsv1

import (
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/olpa/ddbjson/types"
)

// ToSDKValue converts a model attribute value into the v1 pointer-struct
// form. Bad base64 in B or BS surfaces as a SerializationException.
func ToSDKValue(av types.AttributeValue) (*dynamodb.AttributeValue, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return &dynamodb.AttributeValue{S: aws.String(v.Value)}, nil
	case *types.AttributeValueMemberN:
		return &dynamodb.AttributeValue{N: aws.String(v.Value)}, nil
	case *types.AttributeValueMemberBOOL:
		return &dynamodb.AttributeValue{BOOL: aws.Bool(v.Value)}, nil
	case *types.AttributeValueMemberNULL:
		return &dynamodb.AttributeValue{NULL: aws.Bool(true)}, nil
	case *types.AttributeValueMemberM:
		values, err := ToSDKItem(v.Value)
		if err != nil {
			return nil, err
		}

		return &dynamodb.AttributeValue{M: values}, nil
	case *types.AttributeValueMemberL:
		values := make([]*dynamodb.AttributeValue, len(v.Value))

		for i, elem := range v.Value {
			sdk, err := ToSDKValue(elem)
			if err != nil {
				return nil, err
			}

			values[i] = sdk
		}

		return &dynamodb.AttributeValue{L: values}, nil
	case *types.AttributeValueMemberSS:
		return &dynamodb.AttributeValue{SS: aws.StringSlice(v.Value)}, nil
	case *types.AttributeValueMemberNS:
		return &dynamodb.AttributeValue{NS: aws.StringSlice(v.Value)}, nil
	case *types.AttributeValueMemberBS:
		values := make([][]byte, len(v.Value))

		for i, elem := range v.Value {
			raw, err := decodeBase64(elem)
			if err != nil {
				return nil, err
			}

			values[i] = raw
		}

		return &dynamodb.AttributeValue{BS: values}, nil
	case *types.AttributeValueMemberB:
		raw, err := decodeBase64(v.Value)
		if err != nil {
			return nil, err
		}

		return &dynamodb.AttributeValue{B: raw}, nil
	}

	return nil, awserr.New("SerializationException",
		fmt.Sprintf("unsupported attribute value type %T", av), nil)
}

// ToSDKItem converts an attribute map into the v1 form.
func ToSDKItem(item map[string]types.AttributeValue) (map[string]*dynamodb.AttributeValue, error) {
	output := make(map[string]*dynamodb.AttributeValue, len(item))

	for key, av := range item {
		sdk, err := ToSDKValue(av)
		if err != nil {
			return nil, err
		}

		output[key] = sdk
	}

	return output, nil
}

// FromSDKValue converts a v1 attribute value into the model form. The v1
// struct spreads the type alphabet over nullable fields; exactly one must
// be set, checked in field order matching the struct.
func FromSDKValue(av *dynamodb.AttributeValue) (types.AttributeValue, error) {
	switch {
	case av == nil:
		return nil, awserr.New("SerializationException", "nil attribute value", nil)
	case len(av.B) != 0:
		return &types.AttributeValueMemberB{Value: base64.StdEncoding.EncodeToString(av.B)}, nil
	case av.BOOL != nil:
		return &types.AttributeValueMemberBOOL{Value: aws.BoolValue(av.BOOL)}, nil
	case len(av.BS) != 0:
		values := make([]string, len(av.BS))

		for i, raw := range av.BS {
			values[i] = base64.StdEncoding.EncodeToString(raw)
		}

		return &types.AttributeValueMemberBS{Value: values}, nil
	case av.L != nil:
		values := make([]types.AttributeValue, len(av.L))

		for i, elem := range av.L {
			model, err := FromSDKValue(elem)
			if err != nil {
				return nil, err
			}

			values[i] = model
		}

		return &types.AttributeValueMemberL{Value: values}, nil
	case av.M != nil:
		values, err := FromSDKItem(av.M)
		if err != nil {
			return nil, err
		}

		return &types.AttributeValueMemberM{Value: values}, nil
	case av.N != nil:
		return &types.AttributeValueMemberN{Value: aws.StringValue(av.N)}, nil
	case len(av.NS) != 0:
		return &types.AttributeValueMemberNS{Value: aws.StringValueSlice(av.NS)}, nil
	case av.NULL != nil:
		return &types.AttributeValueMemberNULL{Value: true}, nil
	case av.S != nil:
		return &types.AttributeValueMemberS{Value: aws.StringValue(av.S)}, nil
	case len(av.SS) != 0:
		return &types.AttributeValueMemberSS{Value: aws.StringValueSlice(av.SS)}, nil
	}

	return nil, awserr.New("SerializationException", "attribute value has no type set", nil)
}

// FromSDKItem converts a v1 attribute map into the model form.
func FromSDKItem(item map[string]*dynamodb.AttributeValue) (map[string]types.AttributeValue, error) {
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
		return nil, awserr.New("SerializationException",
			fmt.Sprintf("invalid base64 in binary attribute: %s", text), err)
	}

	return raw, nil
}
