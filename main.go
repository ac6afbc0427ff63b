package main

import (
	"log"
	"net/http"

	"skillforge_server/config"
	"skillforge_server/controllers"
	"skillforge_server/routes"
	"skillforge_server/services"
	"skillforge_server/socket"
	"skillforge_server/utils"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()
	utils.SetJWTSecret(cfg.JWTSecret)

	// Initialize DynamoDB client and stores
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	userStore := &services.DynamoUserStore{Dynamo: dynamoService}
	offerStore := &services.DynamoOfferStore{Dynamo: dynamoService}
	swapStore := &services.DynamoSwapStore{Dynamo: dynamoService}
	problemStore := &services.DynamoProblemStore{Dynamo: dynamoService}
	quizStore := &services.DynamoQuizStore{Dynamo: dynamoService}
	projectStore := &services.DynamoProjectStore{Dynamo: dynamoService}

	// Socket.IO server for swap lifecycle notifications
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize services
	aiService := &services.AIService{APIKey: cfg.OpenRouterAPIKey}
	judgeService := &services.Judge0Service{APIKey: cfg.Judge0APIKey}
	s3Service := &services.S3Service{Client: services.InitializeS3Client(cfg.AWSRegion), Bucket: cfg.ResumeBucket}

	userService := &services.UserService{Users: userStore}
	skillSwapService := &services.SkillSwapService{
		Offers:   offerStore,
		Users:    userStore,
		Notifier: &socket.Hub{Server: socketServer},
	}
	swapService := &services.SwapService{Swaps: swapStore, Users: userStore}
	dsaService := &services.DSAService{Problems: problemStore, Users: userService, Judge: judgeService}
	quizService := &services.QuizService{Quizzes: quizStore, Users: userService, AI: aiService}
	leaderboardService := &services.LeaderboardService{Users: userStore, Offers: offerStore}
	resumeService := &services.ResumeService{Storage: s3Service, AI: aiService, Problems: problemStore, Users: userService}
	projectService := &services.ProjectService{Projects: projectStore, Storage: s3Service}

	// Initialize the router
	r := mux.NewRouter()
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterAuthRoutes(r, userService)
	routes.RegisterUserRoutes(r, userService)
	routes.RegisterSkillSwapRoutes(r, skillSwapService)
	routes.RegisterSwapRoutes(r, swapService)
	routes.RegisterDSARoutes(r, dsaService)
	routes.RegisterQuizRoutes(r, quizService)
	routes.RegisterAIRoutes(r, aiService, userService)
	routes.RegisterLeaderboardRoutes(r, leaderboardService)
	routes.RegisterResumeRoutes(r, resumeService)
	routes.RegisterProjectRoutes(r, projectService)
	routes.RegisterSkillsRoutes(r, userService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
