package adapters

import (
	"context"
	"errors"
	"seo-blog-generator/config"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	items map[string]map[string]*dynamodb.AttributeValue
	err   error
}

func (f *fakeDynamo) GetItemWithContext(_ aws.Context, input *dynamodb.GetItemInput, _ ...request.Option) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[*input.Key["video_id"].S]}, nil
}

func (f *fakeDynamo) PutItemWithContext(_ aws.Context, input *dynamodb.PutItemInput, _ ...request.Option) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.items[*input.Item["video_id"].S] = input.Item
	return &dynamodb.PutItemOutput{}, nil
}

func newTestDynamoCache(svc *fakeDynamo, now time.Time) *dynamoTranscriptCache {
	cache := NewDynamoTranscriptCache(newTestLogger(), svc, &config.DynamoConfig{
		TableName:  "transcripts",
		TtlMinutes: 60,
	}).(*dynamoTranscriptCache)
	cache.now = func() time.Time { return now }
	return cache
}

func TestDynamoTranscriptCache_SaveThenGet(t *testing.T) {
	svc := &fakeDynamo{items: map[string]map[string]*dynamodb.AttributeValue{}}
	now := time.Unix(1700000000, 0)
	cache := newTestDynamoCache(svc, now)

	require.NoError(t, cache.Save(context.Background(), "dQw4w9WgXcQ", "a transcript"))

	item := svc.items["dQw4w9WgXcQ"]
	require.NotNil(t, item)
	assert.Equal(t, "a transcript", *item["transcript"].S)
	assert.Equal(t, "1700003600", *item["ttl"].N)

	transcript, ok, err := cache.Get(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a transcript", transcript)
}

func TestDynamoTranscriptCache_Miss(t *testing.T) {
	cache := newTestDynamoCache(&fakeDynamo{items: map[string]map[string]*dynamodb.AttributeValue{}}, time.Now())

	_, ok, err := cache.Get(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDynamoTranscriptCache_ExpiredItem(t *testing.T) {
	svc := &fakeDynamo{items: map[string]map[string]*dynamodb.AttributeValue{}}
	now := time.Unix(1700000000, 0)
	require.NoError(t, newTestDynamoCache(svc, now).Save(context.Background(), "dQw4w9WgXcQ", "old"))

	_, ok, err := newTestDynamoCache(svc, now.Add(2*time.Hour)).Get(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDynamoTranscriptCache_Errors(t *testing.T) {
	cause := errors.New("throttled")
	cache := newTestDynamoCache(&fakeDynamo{err: cause}, time.Now())

	_, _, err := cache.Get(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, cache.Save(context.Background(), "dQw4w9WgXcQ", "t"), cause)
}
