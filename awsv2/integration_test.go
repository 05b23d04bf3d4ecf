package awsv2

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go/logging"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/olpa/ddbjson"
)

func startDynamoLocal(t *testing.T) string {
	t.Helper()

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "amazon/dynamodb-local:latest",
			ExposedPorts: []string{"8000/tcp"},
			WaitingFor:   wait.ForListeningPort("8000/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("skipping, cannot start dynamodb-local container: %v", err)
	}

	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	endpoint, err := container.Endpoint(ctx, "http")
	require.NoError(t, err)

	return endpoint
}

func newTestDynamoClient(t *testing.T, url string) *dynamodb.Client {
	t.Helper()

	ctx := context.Background()
	resolver := dynamodb.EndpointResolverFromURL(url)
	httpClient := &http.Client{
		Transport: &http.Transport{
			DisableKeepAlives:   true, // avoid reuse warnings
			DisableCompression:  true,
			MaxIdleConns:        1,
			MaxIdleConnsPerHost: 1,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 5 * time.Second,
			}).DialContext,
		},
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-east-1"),
		config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					if service == dynamodb.ServiceID {
						return resolver.ResolveEndpoint(region, dynamodb.EndpointResolverOptions{})
					}
					return aws.Endpoint{}, &aws.EndpointNotFoundError{}
				},
			),
		),
		config.WithHTTPClient(httpClient),
		config.WithLogger(logging.Nop{}),
		config.WithClientLogMode(0),
		config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     "test",
				SecretAccessKey: "test",
				SessionToken:    "test",
				Source:          "test",
			},
		}),
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	)
	require.NoError(t, err)

	return dynamodb.NewFromConfig(cfg)
}

func makeBasicTable(t *testing.T, cli *dynamodb.Client, table, hashKey string) {
	t.Helper()

	_, err := cli.CreateTable(context.Background(), &dynamodb.CreateTableInput{
		TableName: aws.String(table),
		AttributeDefinitions: []dynamodbtypes.AttributeDefinition{
			{
				AttributeName: aws.String(hashKey),
				AttributeType: dynamodbtypes.ScalarAttributeTypeS,
			},
		},
		KeySchema: []dynamodbtypes.KeySchemaElement{
			{
				AttributeName: aws.String(hashKey),
				KeyType:       dynamodbtypes.KeyTypeHash,
			},
		},
		BillingMode: dynamodbtypes.BillingModePayPerRequest,
	})
	require.NoError(t, err)
}

func TestPutAndGetThroughCodec(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	c := require.New(t)

	url := startDynamoLocal(t)
	cli := newTestDynamoClient(t, url)
	makeBasicTable(t, cli, "pokemons", "id")

	taggedJSON := `{
		"id": {"S": "001"},
		"name": {"S": "Bulbasaur"},
		"level": {"N": "5"},
		"accuracy": {"N": "0.75"},
		"shiny": {"BOOL": false},
		"types": {"SS": ["grass", "poison"]},
		"sprite": {"B": "aWNvbg=="},
		"moves": {"L": [{"S": "tackle"}, {"S": "growl"}]},
		"stats": {"M": {"hp": {"N": "45"}}}
	}`

	var doc any

	dec := json.NewDecoder(strings.NewReader(taggedJSON))
	dec.UseNumber()
	c.NoError(dec.Decode(&doc))

	item, err := ddbjson.DecodeItem(doc)
	c.NoError(err)

	sdkItem, err := ToSDKItem(item)
	c.NoError(err)

	ctx := context.Background()

	_, err = cli.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String("pokemons"),
		Item:      sdkItem,
	})
	c.NoError(err)

	out, err := cli.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String("pokemons"),
		Key: map[string]dynamodbtypes.AttributeValue{
			"id": &dynamodbtypes.AttributeValueMemberS{Value: "001"},
		},
		ConsistentRead: aws.Bool(true),
	})
	c.NoError(err)
	c.NotEmpty(out.Item)

	back, err := FromSDKItem(out.Item)
	c.NoError(err)

	got, err := ddbjson.UnmarshalItem(back)
	c.NoError(err)

	want, err := ddbjson.FromDynamo(doc)
	c.NoError(err)
	c.Equal(want, got)
}

func TestReadSeededStructThroughCodec(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	c := require.New(t)

	url := startDynamoLocal(t)
	cli := newTestDynamoClient(t, url)
	makeBasicTable(t, cli, "trainers", "id")

	type trainer struct {
		ID     string   `dynamodbav:"id"`
		Name   string   `dynamodbav:"name"`
		Badges int      `dynamodbav:"badges"`
		Towns  []string `dynamodbav:"towns"`
	}

	seeded, err := attributevalue.MarshalMap(trainer{
		ID:     "t1",
		Name:   "Misty",
		Badges: 3,
		Towns:  []string{"Cerulean"},
	})
	c.NoError(err)

	ctx := context.Background()

	_, err = cli.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String("trainers"),
		Item:      seeded,
	})
	c.NoError(err)

	out, err := cli.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String("trainers"),
		Key: map[string]dynamodbtypes.AttributeValue{
			"id": &dynamodbtypes.AttributeValueMemberS{Value: "t1"},
		},
		ConsistentRead: aws.Bool(true),
	})
	c.NoError(err)
	c.NotEmpty(out.Item)

	model, err := FromSDKItem(out.Item)
	c.NoError(err)

	plain, err := ddbjson.UnmarshalItem(model)
	c.NoError(err)

	c.Equal("Misty", plain["name"])
	c.Equal(json.Number("3"), plain["badges"])
	c.Equal([]any{"Cerulean"}, plain["towns"])
}
