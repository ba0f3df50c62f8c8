package api

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/yeshu2004/real-time-pooling/api/controllers"
	"github.com/yeshu2004/real-time-pooling/api/transport"
	"github.com/yeshu2004/real-time-pooling/logging"
	"github.com/yeshu2004/real-time-pooling/session"
	"github.com/yeshu2004/real-time-pooling/storage"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	identityStorage, pollStorage, answerStorage := s.buildStorage()

	// Session core
	broker := session.NewBroker()
	ledger := session.NewLedger(answerStorage)
	coordinator := session.NewCoordinator(
		pollStorage,
		identityStorage,
		ledger,
		broker,
		time.Duration(s.config.TickIntervalMS)*time.Millisecond,
	)

	//Register controllers
	identityController := controllers.NewIdentityController(identityStorage)
	identityController.RegisterRoutes(r)
	pollController := controllers.NewPollController(coordinator)
	pollController.RegisterRoutes(r)
	eventsController := controllers.NewEventsController(broker, coordinator)
	eventsController.RegisterRoutes(r)

	//Do not run lambda helper locally. The event stream endpoint needs the
	//long-lived local server; lambda only serves the REST surface.
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

func (s *Server) buildStorage() (storage.IdentityStorage, storage.PollStorage, storage.AnswerStorage) {
	if s.config.Driver == "memory" {
		logging.Log.Warn("Using in-memory storage, nothing will survive a restart")
		return storage.NewMemoryIdentityStorage(), storage.NewMemoryPollStorage(), storage.NewMemoryAnswerStorage()
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	dynamoClient := dynamodb.NewFromConfig(cfg)

	identityStorage := &storage.DynamoIdentityStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameIdentities,
	}
	pollStorage := &storage.DynamoPollStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNamePolls,
	}
	answerStorage := &storage.DynamoAnswerStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameAnswers,
	}
	return identityStorage, pollStorage, answerStorage
}

// startLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// startLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
