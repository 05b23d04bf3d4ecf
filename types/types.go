package types

// AttributeValue is the union of DynamoDB attribute value types. In
// DynamoDB JSON every value is an object with exactly one key naming the
// storage type; each member type below models one such key.
//
// The union is closed: the ten member types in this package are the only
// implementations.
type AttributeValue interface {
	isAttributeValue()
}

// An attribute of type Binary. For example:
//
//	"B": "dGhpcyB0ZXh0IGlzIGJhc2U2NC1lbmNvZGVk"
//
// The payload is the base64 text itself, carried verbatim. Decoding it to
// raw bytes is left to the SDK adapters.
type AttributeValueMemberB struct {
	Value string
}

func (*AttributeValueMemberB) isAttributeValue() {}

// An attribute of type Boolean. For example:
//
//	"BOOL": true
type AttributeValueMemberBOOL struct {
	Value bool
}

func (*AttributeValueMemberBOOL) isAttributeValue() {}

// An attribute of type Binary Set. For example:
//
//	"BS": ["U3Vubnk=", "UmFpbnk=", "U25vd3k="]
//
// Elements are base64 texts, carried verbatim like B.
type AttributeValueMemberBS struct {
	Value []string
}

func (*AttributeValueMemberBS) isAttributeValue() {}

// An attribute of type List. For example:
//
//	"L": [ {"S": "Cookies"} , {"S": "Coffee"}, {"N": "3.14159"}]
type AttributeValueMemberL struct {
	Value []AttributeValue
}

func (*AttributeValueMemberL) isAttributeValue() {}

// An attribute of type Map. For example:
//
//	"M": {"Name": {"S": "Joe"}, "Age": {"N": "35"}}
type AttributeValueMemberM struct {
	Value map[string]AttributeValue
}

func (*AttributeValueMemberM) isAttributeValue() {}

// An attribute of type Number. For example:
//
//	"N": "123.45"
//
// Numbers are sent across the network to DynamoDB as strings, to maximize
// compatibility across languages and libraries. The literal stays text
// here for the same reason; recovering a native integer or float from it
// is the codec's job, not the model's.
type AttributeValueMemberN struct {
	Value string
}

func (*AttributeValueMemberN) isAttributeValue() {}

// An attribute of type Number Set. For example:
//
//	"NS": ["42.2", "-19", "7.5", "3.14"]
type AttributeValueMemberNS struct {
	Value []string
}

func (*AttributeValueMemberNS) isAttributeValue() {}

// An attribute of type Null. For example:
//
//	"NULL": true
//
// The wrapped boolean is conventionally true and is ignored on decode.
type AttributeValueMemberNULL struct {
	Value bool
}

func (*AttributeValueMemberNULL) isAttributeValue() {}

// An attribute of type String. For example:
//
//	"S": "Hello"
type AttributeValueMemberS struct {
	Value string
}

func (*AttributeValueMemberS) isAttributeValue() {}

// An attribute of type String Set. For example:
//
//	"SS": ["Giraffe", "Hippo" ,"Zebra"]
type AttributeValueMemberSS struct {
	Value []string
}

func (*AttributeValueMemberSS) isAttributeValue() {}
