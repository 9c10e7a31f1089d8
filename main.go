package main

import (
	"context"
	"formbuilder/config"
	"formbuilder/controller"
	"formbuilder/cron"
	"formbuilder/docs"
	"formbuilder/service"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// @title           Form Builder API
// @version         1.0
// @description     Dynamic forms with conditionally revealed sub questions.
// @BasePath        /api
func main() {
	t := time.Now()
	ctx := context.Background()

	cfg := config.Env()
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	err = r.SetTrustedProxies(nil)
	if err != nil {
		log.Println("Failed to set trusted proxies:", err)
		return
	}
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r, cfg.AllowedOrigins)

	cacheStore := persistence.NewInMemoryStore(time.Duration(cfg.SnapshotCacheSeconds) * time.Second)
	changes := service.NewChangeTracker(newPublisher(ctx, cfg), cacheStore, instanceId())
	if cfg.KafkaBroker != "" {
		listenForChanges(ctx, changes)
	}

	controller.SetRoutes(r, db, changes)
	cron.NewOrphanSweep(db, changes, time.Duration(cfg.OrphanSweepIntervalSeconds)*time.Second).Start(ctx)

	log.Println("Server started in", time.Since(t))
	err = r.Run(cfg.ListenAddr)
	if err != nil {
		log.Println("Failed to start server:", err)
	}
}

func instanceId() string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "formbuilder"
	}
	return hostname + "-" + uuid.NewString()
}

func newPublisher(ctx context.Context, cfg *config.Config) service.Publisher {
	if cfg.KafkaBroker == "" {
		log.Println("KAFKA_BROKER not set, change events are not published")
		return service.NoopPublisher{}
	}
	if err := config.CreateTopic(); err != nil {
		log.Printf("Failed to create topic %s: %v", config.ChangeTopic, err)
	}
	writer, err := config.GetWriter()
	if err != nil {
		log.Printf("Failed to create kafka writer: %v", err)
		return service.NoopPublisher{}
	}
	go func() {
		<-ctx.Done()
		writer.Close()
	}()
	return service.NewKafkaPublisher(writer)
}

func listenForChanges(ctx context.Context, changes *service.ChangeTracker) {
	reader, err := config.GetReader(changes.Source())
	if err != nil {
		log.Printf("Failed to create kafka reader: %v", err)
		return
	}
	cron.NewChangeListener(reader, changes).Listen(ctx)
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics"},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	idRe := regexp.MustCompile(`[a-z]+-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		url = idRe.ReplaceAllString(url, "?")
		return strings.TrimPrefix(url, "/api")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine, allowedOrigins []string) {
	corsConfigGetOptions := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	corsConfigOtherMethods := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			// the preflighted method decides which policy applies
			requestedMethod := c.GetHeader("Access-Control-Request-Method")
			if requestedMethod == "GET" || requestedMethod == "OPTIONS" {
				cors.New(corsConfigGetOptions)(c)
			} else {
				cors.New(corsConfigOtherMethods)(c)
			}
			c.AbortWithStatus(204)
			return
		}

		if c.Request.Method == "GET" {
			cors.New(corsConfigGetOptions)(c)
		} else {
			cors.New(corsConfigOtherMethods)(c)
		}
	})
}
