// Standalone intake service: the public endpoints only (apply, positions,
// inquiries), with no admin surface and no email. Useful for frontend
// development against a throwaway store.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifewood/careers-backend/internal/database"
	"github.com/lifewood/careers-backend/internal/mailer"
	"github.com/lifewood/careers-backend/internal/recruit/handler"
	"github.com/lifewood/careers-backend/internal/recruit/repository"
	"github.com/lifewood/careers-backend/internal/recruit/service"
)

func main() {
	port := os.Getenv("INTAKE_SERVICE_PORT")
	if port == "" {
		port = "5002"
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// Prefer Mongo when MONGODB_URI is provided; fall back to memory repos.
	var svc *service.Service
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		client, err := database.ConnectMongo(context.Background(), uri, 10*time.Second)
		if err != nil {
			log.Printf("warning: cannot connect to MongoDB (%v), using memory-backed store", err)
		} else {
			dbName := os.Getenv("MONGODB_DATABASE")
			if dbName == "" {
				dbName = "careers"
			}
			db := client.Database(dbName)
			svc = service.New(
				repository.NewMongoApplicationRepo(db.Collection("applications")),
				repository.NewMongoInquiryRepo(db.Collection("inquiries")),
				repository.NewMongoPositionRepo(db.Collection("positions")),
			)
		}
	}
	if svc == nil {
		svc = service.New(
			repository.NewMemoryApplicationRepo(),
			repository.NewMemoryInquiryRepo(),
			repository.NewMemoryPositionRepo(),
		)
	}

	h := handler.New(svc, nil, mailer.NewDispatcher(nil), nil)
	h.RegisterPublic(r)

	log.Printf("careers intake service listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
