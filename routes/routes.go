package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/controllers"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.GET("/me", middleware.AuthJWT(), controllers.Me)
		}

		// Public site data
		api.GET("/events", controllers.ListEvents)
		api.GET("/hotels", controllers.ListHotels)
		api.GET("/media", controllers.ListMedia)
		api.GET("/streams/live", controllers.ListLiveStreams)

		// Guest-facing RSVP flow
		rsvp := api.Group("/rsvp")
		{
			rsvp.POST("/token", controllers.LookupGuestByToken)
			rsvp.POST("", controllers.SubmitRSVP)
			rsvp.POST("/form", middleware.RateLimitPublicIntake(), controllers.SubmitRSVPForm)
		}

		api.POST("/contact", middleware.RateLimitPublicIntake(), controllers.CreateContactRequest)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthJWT())
		{
			admin.GET("/stats", controllers.GetStats)

			admin.GET("/guests", controllers.ListGuests)
			admin.POST("/guests", controllers.CreateGuest)
			admin.PUT("/guests/:id", controllers.UpdateGuest)
			admin.DELETE("/guests/:id", controllers.DeleteGuest)
			admin.GET("/guests/:id/rsvps", controllers.ListGuestRSVPs)

			admin.GET("/venues", controllers.ListVenues)
			admin.POST("/venues", controllers.CreateVenue)

			admin.POST("/events", controllers.CreateEvent)
			admin.PUT("/events/:id", controllers.UpdateEvent)
			admin.DELETE("/events/:id", controllers.DeleteEvent)
			admin.GET("/events/:id/rsvps", controllers.ListEventRSVPs)

			admin.GET("/rsvp/forms", controllers.ListRSVPFormSubmissions)
			admin.PATCH("/rsvp/forms/:id", controllers.UpdateRSVPFormSubmission)

			admin.GET("/contact", controllers.ListContactRequests)
			admin.PATCH("/contact/:id", controllers.UpdateContactRequest)

			admin.POST("/hotels", controllers.CreateHotel)
			admin.PUT("/hotels/:id", controllers.UpdateHotel)
			admin.DELETE("/hotels/:id", controllers.DeleteHotel)

			admin.POST("/media", controllers.UploadMedia)
			admin.PATCH("/media/:id", controllers.UpdateMedia)
			admin.DELETE("/media/:id", controllers.DeleteMedia)

			admin.GET("/streams", controllers.ListStreams)
			admin.POST("/streams", controllers.CreateStream)
			admin.PUT("/streams/:id", controllers.UpdateStream)
			admin.DELETE("/streams/:id", controllers.DeleteStream)

			admin.GET("/export/guests", controllers.ExportGuests)
		}
	}
}
