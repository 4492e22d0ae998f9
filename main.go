package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	trustpb "messenger-service/pb/trust"

	"messenger-service/internal/auth"
	"messenger-service/internal/config"
	"messenger-service/internal/db"
	grpcclient "messenger-service/internal/grpc"
	"messenger-service/internal/handlers"
	"messenger-service/internal/middleware"
	"messenger-service/internal/observability"
	"messenger-service/internal/rabbitmq"
	"messenger-service/internal/repositories"
	"messenger-service/internal/telemetry"
	"messenger-service/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	shutdownTracing := observability.InitTracing(ctx, cfg.OTLPEndpoint, cfg.Environment)
	defer func() {
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	database, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}

	trustConn, err := grpc.NewClient(cfg.TrustGateAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		log.Fatalf("failed to connect to trust gate grpc: %v", err)
	}
	defer trustConn.Close()

	trustClient := grpcclient.NewTrustClient(
		trustpb.NewUserValidationClient(trustConn),
		cfg.TrustGateTimeout,
		cfg.TrustFailMode,
	)

	if publisher, err := observability.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange); err != nil {
		log.Printf("event publishing disabled: %v", err)
	} else {
		observability.SetPublisher(publisher)
		defer publisher.Close()
	}

	auditPublisher := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	defer auditPublisher.Close()
	auditEmitter := telemetry.NewAuditEmitter(auditPublisher, "audit.messenger", "messenger-service", cfg.Environment)

	verifier := auth.NewVerifier(cfg.JWTSecret)

	friendshipRepo := repositories.NewFriendshipRepo(database)
	messageRepo := repositories.NewMessageRepo(database)
	userRepo := repositories.NewUserRepo(database)

	hub := ws.NewHub()
	wsRouter := ws.NewRouter(hub, messageRepo)
	gateway := ws.NewGateway(hub, wsRouter, verifier, userRepo, trustClient)

	friendsHandler := handlers.NewFriendsHandler(friendshipRepo, userRepo, hub)
	messagesHandler := handlers.NewMessagesHandler(messageRepo, userRepo)

	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("messenger-service"))
	router.Use(observability.HTTPMetricsMiddleware())

	authMiddleware := middleware.AuthMiddleware(verifier)

	router.POST("/friends/requests", authMiddleware, friendsHandler.SendRequest)
	router.POST("/friends/respond", authMiddleware, friendsHandler.Respond)
	router.GET("/friends", authMiddleware, friendsHandler.ListFriends)
	router.GET("/friends/requests", authMiddleware, friendsHandler.ListPending)
	router.GET("/friends/online", authMiddleware, friendsHandler.OnlineFriendIDs)
	router.GET("/users/search", authMiddleware, friendsHandler.SearchUsers)
	router.GET("/users/:user_id/status", authMiddleware, friendsHandler.Status)
	router.GET("/messages/:user_id", authMiddleware, messagesHandler.GetHistory)

	router.GET("/ws", gateway.Handle)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterDebugRoutes(router, auditEmitter, hub, cfg.DebugRoutes)

	log.Printf("messenger-service listening on :%s trust_fail_mode=%s", cfg.Port, cfg.TrustFailMode)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
