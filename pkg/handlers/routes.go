package handlers

import "github.com/gin-gonic/gin"

// Routes wires every endpoint onto the engine. Shared by the server binary
// and the serverless entrypoint.
func Routes(r *gin.Engine, h *Handler) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	api := r.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.GET("/shifts", h.ListShifts)
		api.GET("/shifts/mine", h.MyShifts)
		api.GET("/calendar/week", h.WeekCalendar)

		api.PUT("/availability", h.SubmitAvailability)
		api.GET("/availability/mine", h.MyAvailability)

		api.POST("/timeoff", h.RequestTimeOff)
		api.GET("/timeoff/mine", h.MyTimeOff)

		api.POST("/trades", h.OfferTrade)
		api.GET("/trades/open", h.OpenTrades)
		api.GET("/trades/mine", h.MyTrades)
		api.POST("/trades/:id/accept", h.AcceptTrade)

		mgr := api.Group("")
		mgr.Use(h.RequireManager())
		{
			mgr.POST("/shifts", h.CreateShift)
			mgr.GET("/availability", h.ListAvailability)
			mgr.GET("/timeoff", h.ListTimeOff)
			mgr.POST("/timeoff/:id/decision", h.DecideTimeOff)
			mgr.GET("/trades/pending", h.PendingTrades)
		}
	}
}
