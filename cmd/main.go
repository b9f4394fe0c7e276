package main

import (
	"context"
	"fmt"
	"os"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/application/services"
	"seo-blog-generator/config"
	"seo-blog-generator/infrastructure/adapters"
	"seo-blog-generator/infrastructure/gin_interface/controllers"
	"seo-blog-generator/middleware"
	mockgenerator "seo-blog-generator/mock"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("Failed to load .env file")
	}

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	llmConfig, err := config.GetLLMConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get llm config")
	}

	cacheConfig, err := config.GetCacheConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get cache config")
	}

	zeroLogger := adapters.NewZerologWrapperWithOptions(os.Stderr, serverConfig.LogLevel, serverConfig.LogFormat == "console")

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(serverConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	ctx := context.Background()
	contentFetcher := adapters.NewContentFetcher(zeroLogger, 30*time.Second)

	var completer outbound.CompletionPort
	var transcriptFetcher outbound.TranscriptFetcherPort

	switch llmConfig.Provider {
	case config.ProviderMock:
		mockConfig := config.GetMockConfig()
		completer, err = mockgenerator.NewMockCompleter(mockConfig.AnswersFile, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load mock answers")
		}
		transcriptFetcher = mockgenerator.NewFileTranscriptReader(mockConfig.TranscriptDir, zeroLogger)
	case config.ProviderGemini:
		geminiConfig, err := config.GetGeminiConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get gemini config")
		}
		geminiCompleter, closeGemini, err := adapters.NewGeminiCompleter(ctx, geminiConfig, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create gemini client")
		}
		defer func() {
			if err := closeGemini(); err != nil {
				zeroLogger.Error(err, "Failed to close gemini client")
			}
		}()
		completer = geminiCompleter
	case config.ProviderCompatible:
		gptConfig, err := config.GetStreamingGptConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get gpt config")
		}
		completer = adapters.NewStreamCompleter(gptConfig, workerPool, zeroLogger)
	default:
		gptConfig, err := config.GetGptConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get gpt config")
		}
		completer = adapters.NewOpenAICompleter(gptConfig, zeroLogger)
	}
	completer = adapters.NewRateLimitedCompleter(completer, llmConfig.RequestsPerMinute)

	if transcriptFetcher == nil {
		transcriptFetcher = newTranscriptFetcher(ctx, cacheConfig, contentFetcher, zeroLogger)
	}

	domainProfiles := adapters.NewDomainProfileFetcher(adapters.NewPublicContentFetcher(zeroLogger, 15*time.Second), zeroLogger)

	blogSteps := services.NewBlogSteps(zeroLogger, completer, domainProfiles)

	blogPipeline, err := services.NewBlogPipeline(zeroLogger, transcriptFetcher, blogSteps)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build blog pipeline")
	}

	pooledPipeline := services.NewPooledBlogPipeline(zeroLogger, workerPool, blogPipeline)

	blogPipelineController := controllers.NewBlogPipelineController(zeroLogger, pooledPipeline)

	gin.SetMode(serverConfig.GinMode)
	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	if serverConfig.JwksURL != "" {
		authHandler, err := middleware.NewAuthHandler(serverConfig.JwksURL, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		router.Use(authHandler.AuthMiddleware("/health"))
	}

	blogPipelineController.RegisterRoutes(router)

	zeroLogger.InfoWithFields("Starting server", map[string]interface{}{
		"port":     serverConfig.Port,
		"provider": string(llmConfig.Provider),
		"cache":    string(cacheConfig.Backend),
	})

	err = router.Run(":" + serverConfig.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}

func newTranscriptFetcher(ctx context.Context, cacheConfig *config.CacheConfig, contentFetcher adapters.ContentFetcher,
	logger outbound.LoggerPort) outbound.TranscriptFetcherPort {
	transcriptConfig, err := config.GetTranscriptConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get transcript config")
	}

	authConfig, err := config.NewAuthorizerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get authorizer config")
	}

	var authorizer adapters.Authorizer
	if authConfig != nil {
		authorizer = adapters.NewCognitoAuthorizer(logger, authConfig, contentFetcher)
	}

	fetcher := adapters.NewTranscriptFetcher(transcriptConfig, contentFetcher, authorizer, logger)

	switch cacheConfig.Backend {
	case config.CacheRedis:
		rdb, err := adapters.NewRedisClient(ctx, cacheConfig.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to redis")
		}
		ttl := time.Duration(cacheConfig.TtlMinutes) * time.Minute
		return adapters.NewCachedTranscriptFetcher(adapters.NewRedisTranscriptCache(logger, rdb, ttl), fetcher, logger)
	case config.CacheDynamo:
		dynamoConfig, err := config.GetDynamoConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get dynamo config")
		}
		sess := session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		}))
		cache := adapters.NewDynamoTranscriptCache(logger, dynamodb.New(sess), dynamoConfig)
		return adapters.NewCachedTranscriptFetcher(cache, fetcher, logger)
	default:
		return fetcher
	}
}
