package adapters

import (
	"context"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/config"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

type dynamoTranscriptItem struct {
	VideoID    string `dynamodbav:"video_id"`
	Transcript string `dynamodbav:"transcript"`
	TTL        int64  `dynamodbav:"ttl"`
}

type dynamoTranscriptCache struct {
	logger       outbound.LoggerPort
	dynamoSvc    dynamodbiface.DynamoDBAPI
	dynamoConfig *config.DynamoConfig
	now          func() time.Time
}

func NewDynamoTranscriptCache(logger outbound.LoggerPort, dynamoSvc dynamodbiface.DynamoDBAPI,
	dynamoConfig *config.DynamoConfig) outbound.TranscriptCachePort {
	return &dynamoTranscriptCache{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
		now:          time.Now,
	}
}

func (c *dynamoTranscriptCache) Get(ctx context.Context, videoID string) (string, bool, error) {
	out, err := c.dynamoSvc.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.dynamoConfig.TableName),
		Key: map[string]*dynamodb.AttributeValue{
			"video_id": {S: aws.String(videoID)},
		},
	})
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read transcript item", map[string]interface{}{
			"video_id": videoID,
		})
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var item dynamoTranscriptItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		return "", false, err
	}
	// DynamoDB deletes expired items lazily, so expiry is checked here too.
	if item.TTL > 0 && c.now().Unix() >= item.TTL {
		return "", false, nil
	}
	return item.Transcript, true, nil
}

func (c *dynamoTranscriptCache) Save(ctx context.Context, videoID string, transcript string) error {
	item := dynamoTranscriptItem{
		VideoID:    videoID,
		Transcript: transcript,
		TTL:        c.now().Add(time.Duration(c.dynamoConfig.TtlMinutes) * time.Minute).Unix(),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to marshal transcript item", map[string]interface{}{
			"video_id": videoID,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.dynamoConfig.TableName),
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to save transcript item", map[string]interface{}{
			"video_id": videoID,
		})
		return err
	}

	return nil
}
