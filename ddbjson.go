// Package ddbjson converts between DynamoDB JSON and normal JSON.
//
// DynamoDB JSON wraps every value in an object with exactly one key naming
// its storage type, for example:
//
//	{"name": {"S": "Alice"}, "age": {"N": "30"}, "tags": {"SS": ["x", "y"]}}
//
// FromDynamo decodes such a document into ordinary JSON values; ToDynamo
// encodes ordinary values back. The integer/float distinction is preserved
// through the N literal text ("30" stays an integer, "30.0" stays a float),
// binary payloads travel as their base64 text without being decoded, and
// the set types SS, NS and BS flatten to plain arrays. Plain arrays always
// encode to L, so a document that used sets changes tag shape after a round
// trip while keeping the same data.
//
// The package operates on the value trees a json.Decoder produces and does
// no I/O of its own. Parse inputs with UseNumber so number literals reach
// the codec verbatim. DecodeValue and MarshalValue handle single values
// outside a document. The ddbjson command wraps the package for file and
// stream conversion; the awsv1 and awsv2 packages bridge the attribute
// model to the AWS SDKs.
package ddbjson

import (
	"encoding/json"
	"strings"

	"github.com/olpa/ddbjson/types"
)

// FromDynamo converts a parsed DynamoDB JSON document into normal JSON
// values. The document must be an object: either the attribute map itself
// or the map wrapped as {"Item": {...}}. The envelope, when present, is
// removed.
func FromDynamo(doc any) (map[string]any, error) {
	item, err := DecodeItem(doc)
	if err != nil {
		return nil, err
	}

	return UnmarshalItem(item)
}

// ToDynamo converts a parsed normal JSON object into a DynamoDB JSON
// document. With wrapItem the result carries the {"Item": ...} envelope,
// matching the shape DynamoDB's GetItem returns.
func ToDynamo(doc any, wrapItem bool) (any, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, types.NewError(types.ErrCodeTypeMismatch,
			"expected JSON object", nil)
	}

	item, err := MarshalItem(obj)
	if err != nil {
		return nil, err
	}

	return EncodeItem(item, wrapItem)
}

// LooksLikeSingleJSONValue reports whether probe holds one complete JSON
// value and nothing else. Drivers use it on the first line of a stream to
// tell JSON Lines input from a single multi-line document: a line that is
// a whole value by itself means line-oriented input. A blank line is not a
// value.
func LooksLikeSingleJSONValue(probe string) bool {
	trimmed := strings.TrimSpace(probe)
	if trimmed == "" {
		return false
	}

	return json.Valid([]byte(trimmed))
}
