package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/controllers"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/routes"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/utils"
)

func main() {
	config.LoadEnv()
	config.ConnectDB()

	mail := config.Mail()
	if mail.APIKey != "" {
		controllers.Mailer = utils.NewResendMailer(mail.APIKey, mail.From)
	} else {
		log.Println("RESEND_API_KEY not set, email notifications disabled")
	}

	r := gin.Default()

	allowed := strings.Split(os.Getenv("CORS_ORIGINS"), ",")
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if origin == "http://localhost:3000" {
				return true
			}
			for _, o := range allowed {
				if o != "" && origin == strings.TrimSpace(o) {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Sharothee wedding server is running")
	})

	if err := r.SetTrustedProxies(nil); err != nil {
		panic(err)
	}

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on port %s\n", port)
	r.Run(":" + port)
}
